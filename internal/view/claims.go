package view

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/domain/status"
	"github.com/devmajed/hr-admin/internal/models"
)

// ClaimsTab selects which claim collection the claims view shows.
type ClaimsTab string

const (
	TabMedical ClaimsTab = "medical"
	TabVehicle ClaimsTab = "vehicle"
)

// Claims renders medical and vehicle claims side by side under a sub-tab
// switch. Both collections plus the employee and vehicle lookup tables are
// fetched together; if any of the four fetches fails the whole batch is
// discarded and the previous render survives.
type Claims struct {
	store  Store
	logger *zap.Logger

	Medical   []models.MedicalClaim
	Vehicle   []models.VehicleClaim
	ActiveTab ClaimsTab
	Loaded    bool

	employeeNames map[string]string
	vehicleInfo   map[string]string
}

// NewClaims creates an unmounted claims view showing the medical tab.
func NewClaims(store Store, logger *zap.Logger) *Claims {
	return &Claims{store: store, logger: logger, ActiveTab: TabMedical}
}

// Load fetches both claim collections and both lookup tables concurrently.
// All four must succeed before any state is replaced.
func (v *Claims) Load(ctx context.Context) {
	defer func() { v.Loaded = true }()

	var (
		wg        sync.WaitGroup
		medical   []models.MedicalClaim
		vehicle   []models.VehicleClaim
		employees []models.Employee
		vehicles  []models.Vehicle
		errs      [4]error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		medical, errs[0] = v.store.MedicalClaims(ctx)
	}()
	go func() {
		defer wg.Done()
		vehicle, errs[1] = v.store.VehicleClaims(ctx)
	}()
	go func() {
		defer wg.Done()
		employees, errs[2] = v.store.Employees(ctx, "")
	}()
	go func() {
		defer wg.Done()
		vehicles, errs[3] = v.store.Vehicles(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			v.logger.Error("Failed to fetch claims data", zap.Error(err))
			return
		}
	}

	v.Medical = medical
	v.Vehicle = vehicle
	v.employeeNames = make(map[string]string, len(employees))
	for _, e := range employees {
		v.employeeNames[e.ID] = e.FullName()
	}
	v.vehicleInfo = make(map[string]string, len(vehicles))
	for _, veh := range vehicles {
		v.vehicleInfo[veh.ID] = fmt.Sprintf("%s %s - %s", veh.Make, veh.Model, veh.LicensePlate)
	}
}

// Switch changes the active sub-tab without re-fetching.
func (v *Claims) Switch(tab ClaimsTab) {
	v.ActiveTab = tab
}

// EmployeeName resolves an employee reference for display.
func (v *Claims) EmployeeName(employeeID string) string {
	if name, ok := v.employeeNames[employeeID]; ok {
		return name
	}
	return unknownLabel
}

// VehicleInfo resolves a vehicle reference for display as "Make Model - PLATE".
func (v *Claims) VehicleInfo(vehicleID string) string {
	if info, ok := v.vehicleInfo[vehicleID]; ok {
		return info
	}
	return unknownLabel
}

// Actions lists the decision actions available for a claim in the given
// status: approve and reject while pending, none afterwards.
func (v *Claims) Actions(claimStatus string) []status.Action {
	return status.ClaimMachine().AllowedActions(status.Status(claimStatus))
}

// ApproveMedical marks a medical claim approved and re-fetches everything.
func (v *Claims) ApproveMedical(ctx context.Context, id string) *Alert {
	return v.updateMedical(ctx, id, status.ActionApprove)
}

// RejectMedical marks a medical claim rejected and re-fetches everything.
func (v *Claims) RejectMedical(ctx context.Context, id string) *Alert {
	return v.updateMedical(ctx, id, status.ActionReject)
}

// ApproveVehicle marks a vehicle claim approved and re-fetches everything.
func (v *Claims) ApproveVehicle(ctx context.Context, id string) *Alert {
	return v.updateVehicle(ctx, id, status.ActionApprove)
}

// RejectVehicle marks a vehicle claim rejected and re-fetches everything.
func (v *Claims) RejectVehicle(ctx context.Context, id string) *Alert {
	return v.updateVehicle(ctx, id, status.ActionReject)
}

func (v *Claims) updateMedical(ctx context.Context, id string, action status.Action) *Alert {
	if err := v.store.UpdateMedicalClaimStatus(ctx, id, action); err != nil {
		v.logger.Error("Failed to update medical claim", zap.String("id", id), zap.Error(err))
		return &Alert{Message: "Failed to update claim status"}
	}
	v.Load(ctx)
	return nil
}

func (v *Claims) updateVehicle(ctx context.Context, id string, action status.Action) *Alert {
	if err := v.store.UpdateVehicleClaimStatus(ctx, id, action); err != nil {
		v.logger.Error("Failed to update vehicle claim", zap.String("id", id), zap.Error(err))
		return &Alert{Message: "Failed to update claim status"}
	}
	v.Load(ctx)
	return nil
}
