// Package view holds the administration view models. Each view owns its own
// fetched data for exactly as long as it is mounted; nothing is shared or
// cached across views, and every mount starts with a fresh fetch.
//
// Error visibility is asymmetric on purpose: read failures are logged and
// leave the view in its zero/stale state with no user-facing message, while
// write failures come back as a blocking Alert for the renderer to surface.
package view

import (
	"context"

	"github.com/devmajed/hr-admin/internal/domain/status"
	"github.com/devmajed/hr-admin/internal/models"
)

// Store is the record store surface the views consume.
// *recordstore.Client satisfies it.
type Store interface {
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
	Employees(ctx context.Context, department string) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, payload models.EmployeePayload) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, payload models.EmployeePayload) (models.Employee, error)
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	MedicalClaims(ctx context.Context) ([]models.MedicalClaim, error)
	VehicleClaims(ctx context.Context) ([]models.VehicleClaim, error)
	FlightReservations(ctx context.Context) ([]models.FlightReservation, error)
	UpdateMedicalClaimStatus(ctx context.Context, id string, action status.Action) error
	UpdateVehicleClaimStatus(ctx context.Context, id string, action status.Action) error
	UpdateFlightStatus(ctx context.Context, id string, action status.Action) error
}

// Alert is a blocking notification for a failed write. A nil *Alert means
// the write succeeded.
type Alert struct {
	Message string
}

// unknownLabel is rendered for references that resolve to no fetched record.
const unknownLabel = "Unknown"
