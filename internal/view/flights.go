package view

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/domain/status"
	"github.com/devmajed/hr-admin/internal/models"
)

// Flights renders the business travel reservations. Reservations and the
// employee lookup table are fetched together; if either fetch fails the
// batch is discarded and the previous render survives.
type Flights struct {
	store  Store
	logger *zap.Logger

	Reservations []models.FlightReservation
	Loaded       bool

	employeeNames map[string]string
}

// NewFlights creates an unmounted flights view.
func NewFlights(store Store, logger *zap.Logger) *Flights {
	return &Flights{store: store, logger: logger}
}

// Load fetches reservations and employees concurrently. Both must succeed
// before any state is replaced.
func (v *Flights) Load(ctx context.Context) {
	defer func() { v.Loaded = true }()

	var (
		wg           sync.WaitGroup
		reservations []models.FlightReservation
		employees    []models.Employee
		errs         [2]error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		reservations, errs[0] = v.store.FlightReservations(ctx)
	}()
	go func() {
		defer wg.Done()
		employees, errs[1] = v.store.Employees(ctx, "")
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			v.logger.Error("Failed to fetch flight data", zap.Error(err))
			return
		}
	}

	v.Reservations = reservations
	v.employeeNames = make(map[string]string, len(employees))
	for _, e := range employees {
		v.employeeNames[e.ID] = e.FullName()
	}
}

// EmployeeName resolves an employee reference for display.
func (v *Flights) EmployeeName(employeeID string) string {
	if name, ok := v.employeeNames[employeeID]; ok {
		return name
	}
	return unknownLabel
}

// Route formats a reservation's itinerary as "Departure → Arrival".
func Route(r models.FlightReservation) string {
	return r.DepartureCity + " → " + r.ArrivalCity
}

// Actions lists the decision actions available for a reservation in the
// given status: approve and reject while pending, none afterwards. Booking
// happens outside this surface, so Booked is display-only here.
func (v *Flights) Actions(flightStatus string) []status.Action {
	return status.FlightMachine().AllowedActions(status.Status(flightStatus))
}

// Approve marks a reservation approved and re-fetches everything.
func (v *Flights) Approve(ctx context.Context, id string) *Alert {
	return v.update(ctx, id, status.ActionApprove)
}

// Reject marks a reservation rejected and re-fetches everything.
func (v *Flights) Reject(ctx context.Context, id string) *Alert {
	return v.update(ctx, id, status.ActionReject)
}

func (v *Flights) update(ctx context.Context, id string, action status.Action) *Alert {
	if err := v.store.UpdateFlightStatus(ctx, id, action); err != nil {
		v.logger.Error("Failed to update flight reservation", zap.String("id", id), zap.Error(err))
		return &Alert{Message: "Failed to update reservation status"}
	}
	v.Load(ctx)
	return nil
}
