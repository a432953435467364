package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/domain/status"
	"github.com/devmajed/hr-admin/internal/models"
)

func claimsFixture() *fakeStore {
	return &fakeStore{
		employees: []models.Employee{
			{ID: "emp-1", FirstName: "Sara", LastName: "Hassan", Department: models.DepartmentHR},
		},
		vehicles: []models.Vehicle{
			{ID: "veh-1", Make: "Toyota", Model: "Hilux", LicensePlate: "ABC-123"},
		},
		medical: []models.MedicalClaim{
			{ID: "med-1", ClaimNumber: "MED-AAAA1111", EmployeeID: "emp-1", Amount: 150, Status: "Pending"},
			{ID: "med-2", ClaimNumber: "MED-BBBB2222", EmployeeID: "emp-gone", Amount: 90, Status: "Approved"},
		},
		vehicleClaim: []models.VehicleClaim{
			{ID: "vc-1", ClaimNumber: "VEH-CCCC3333", VehicleID: "veh-1", Amount: 400, Status: "Pending"},
			{ID: "vc-2", ClaimNumber: "VEH-DDDD4444", VehicleID: "veh-gone", Amount: 75, Status: "Processing"},
		},
	}
}

func TestClaimsLoad(t *testing.T) {
	store := claimsFixture()
	v := NewClaims(store, zap.NewNop())

	v.Load(context.Background())

	assert.True(t, v.Loaded)
	assert.Len(t, v.Medical, 2)
	assert.Len(t, v.Vehicle, 2)
	assert.Equal(t, TabMedical, v.ActiveTab)
}

func TestClaimsLoadFailureKeepsPreviousBatch(t *testing.T) {
	store := claimsFixture()
	v := NewClaims(store, zap.NewNop())
	ctx := context.Background()

	v.Load(ctx)
	require.Len(t, v.Medical, 2)

	store.setFailEmployees(true)
	store.mu.Lock()
	store.medical = nil
	store.mu.Unlock()
	v.Load(ctx)

	assert.Len(t, v.Medical, 2, "one failed fetch discards the whole batch")
	assert.Equal(t, "Sara Hassan", v.EmployeeName("emp-1"), "lookup tables survive too")
}

func TestClaimsReferenceResolution(t *testing.T) {
	store := claimsFixture()
	v := NewClaims(store, zap.NewNop())
	v.Load(context.Background())

	assert.Equal(t, "Sara Hassan", v.EmployeeName("emp-1"))
	assert.Equal(t, "Unknown", v.EmployeeName("emp-gone"))
	assert.Equal(t, "Toyota Hilux - ABC-123", v.VehicleInfo("veh-1"))
	assert.Equal(t, "Unknown", v.VehicleInfo("veh-gone"))
}

func TestClaimsActions(t *testing.T) {
	v := NewClaims(claimsFixture(), zap.NewNop())

	assert.Equal(t, []status.Action{status.ActionApprove, status.ActionReject}, v.Actions("Pending"))
	for _, s := range []string{"Approved", "Rejected", "Processing", "Booked"} {
		assert.Empty(t, v.Actions(s), s)
	}
}

func TestClaimsSwitchDoesNotRefetch(t *testing.T) {
	store := claimsFixture()
	v := NewClaims(store, zap.NewNop())
	ctx := context.Background()
	v.Load(ctx)

	before := store.medicalCalls
	v.Switch(TabVehicle)
	assert.Equal(t, TabVehicle, v.ActiveTab)
	assert.Equal(t, before, store.medicalCalls)
}

func TestClaimsApproveIssuesTargetedWriteAndRefetches(t *testing.T) {
	store := claimsFixture()
	v := NewClaims(store, zap.NewNop())
	ctx := context.Background()
	v.Load(ctx)

	before := store.medicalCalls
	alert := v.ApproveMedical(ctx, "med-1")
	require.Nil(t, alert)

	assert.Equal(t, []string{"medical:med-1:Approved"}, store.statusCalls)
	assert.Greater(t, store.medicalCalls, before, "success re-fetches the batch")
}

func TestClaimsRejectVehicle(t *testing.T) {
	store := claimsFixture()
	v := NewClaims(store, zap.NewNop())
	ctx := context.Background()
	v.Load(ctx)

	require.Nil(t, v.RejectVehicle(ctx, "vc-1"))
	assert.Equal(t, []string{"vehicle:vc-1:Rejected"}, store.statusCalls)
}

func TestClaimsWriteFailureAlerts(t *testing.T) {
	store := claimsFixture()
	v := NewClaims(store, zap.NewNop())
	ctx := context.Background()
	v.Load(ctx)

	store.mu.Lock()
	store.failWrites = true
	store.mu.Unlock()
	before := store.medicalCalls

	alert := v.ApproveMedical(ctx, "med-1")
	require.NotNil(t, alert)
	assert.Equal(t, "Failed to update claim status", alert.Message)
	assert.Equal(t, before, store.medicalCalls, "failed write does not re-fetch")
}
