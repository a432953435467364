package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

func flightsFixture() *fakeStore {
	return &fakeStore{
		employees: []models.Employee{
			{ID: "emp-1", FirstName: "Omar", LastName: "Khalid"},
		},
		flights: []models.FlightReservation{
			{ID: "fl-1", EmployeeID: "emp-1", DepartureCity: "Riyadh", ArrivalCity: "Dubai", FlightClass: "Business", Status: "Pending"},
			{ID: "fl-2", EmployeeID: "emp-gone", DepartureCity: "Jeddah", ArrivalCity: "Cairo", FlightClass: "Economy", Status: "Booked"},
		},
	}
}

func TestFlightsLoad(t *testing.T) {
	v := NewFlights(flightsFixture(), zap.NewNop())

	v.Load(context.Background())

	assert.True(t, v.Loaded)
	require.Len(t, v.Reservations, 2)
	assert.Equal(t, "Omar Khalid", v.EmployeeName("emp-1"))
	assert.Equal(t, "Unknown", v.EmployeeName("emp-gone"))
}

func TestFlightsLoadFailureKeepsPreviousBatch(t *testing.T) {
	store := flightsFixture()
	v := NewFlights(store, zap.NewNop())
	ctx := context.Background()

	v.Load(ctx)
	require.Len(t, v.Reservations, 2)

	store.setFailEmployees(true)
	v.Load(ctx)
	assert.Len(t, v.Reservations, 2, "one failed fetch discards the whole batch")
}

func TestFlightsRoute(t *testing.T) {
	r := models.FlightReservation{DepartureCity: "Riyadh", ArrivalCity: "Dubai"}
	assert.Equal(t, "Riyadh → Dubai", Route(r))
}

func TestFlightsActions(t *testing.T) {
	v := NewFlights(flightsFixture(), zap.NewNop())

	assert.Len(t, v.Actions("Pending"), 2)
	assert.Empty(t, v.Actions("Booked"), "booking is never initiated from this surface")
	assert.Empty(t, v.Actions("Approved"))
	assert.Empty(t, v.Actions("Rejected"))
}

func TestFlightsApproveAndRefetch(t *testing.T) {
	store := flightsFixture()
	v := NewFlights(store, zap.NewNop())
	ctx := context.Background()
	v.Load(ctx)

	before := store.flightCalls
	require.Nil(t, v.Approve(ctx, "fl-1"))
	assert.Equal(t, []string{"flight:fl-1:Approved"}, store.statusCalls)
	assert.Greater(t, store.flightCalls, before)
}

func TestFlightsRejectFailureAlerts(t *testing.T) {
	store := flightsFixture()
	store.failWrites = true
	v := NewFlights(store, zap.NewNop())
	ctx := context.Background()
	v.Load(ctx)

	alert := v.Reject(ctx, "fl-1")
	require.NotNil(t, alert)
	assert.Equal(t, "Failed to update reservation status", alert.Message)
}
