package repository

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

// DashboardRepository aggregates the counters served to the dashboard view.
type DashboardRepository struct {
	employees     *EmployeeRepository
	vehicles      *VehicleRepository
	medicalClaims *MedicalClaimRepository
	vehicleClaims *VehicleClaimRepository
	flights       *FlightRepository
	logger        *zap.Logger
}

// NewDashboardRepository creates a new dashboard repository over the
// collection repositories.
func NewDashboardRepository(db *sql.DB, logger *zap.Logger) *DashboardRepository {
	return &DashboardRepository{
		employees:     NewEmployeeRepository(db, logger),
		vehicles:      NewVehicleRepository(db, logger),
		medicalClaims: NewMedicalClaimRepository(db, logger),
		vehicleClaims: NewVehicleClaimRepository(db, logger),
		flights:       NewFlightRepository(db, logger),
		logger:        logger,
	}
}

// Stats computes the aggregate counters. The two pending-claim counters are
// served separately; summation is the dashboard's job.
func (r *DashboardRepository) Stats() (models.DashboardStats, error) {
	var stats models.DashboardStats
	var err error

	if stats.TotalEmployees, err = r.employees.Count(); err != nil {
		return stats, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.TotalVehicles, err = r.vehicles.Count(); err != nil {
		return stats, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.PendingMedicalClaims, err = r.medicalClaims.CountPending(); err != nil {
		return stats, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.PendingVehicleClaims, err = r.vehicleClaims.CountPending(); err != nil {
		return stats, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.PendingFlights, err = r.flights.CountPending(); err != nil {
		return stats, fmt.Errorf("dashboard stats: %w", err)
	}

	if stats.EmployeesByDepartment, err = r.employees.CountByDepartment(); err != nil {
		return stats, fmt.Errorf("dashboard stats: %w", err)
	}

	medical, err := r.medicalClaims.CountByStatus()
	if err != nil {
		return stats, fmt.Errorf("dashboard stats: %w", err)
	}
	vehicle, err := r.vehicleClaims.CountByStatus()
	if err != nil {
		return stats, fmt.Errorf("dashboard stats: %w", err)
	}
	stats.ClaimsByStatus = make(map[string]int)
	for s, n := range medical {
		stats.ClaimsByStatus[s] += n
	}
	for s, n := range vehicle {
		stats.ClaimsByStatus[s] += n
	}

	return stats, nil
}
