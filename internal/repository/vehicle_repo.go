package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

// VehicleRepository handles fleet vehicle database operations
type VehicleRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *sql.DB, logger *zap.Logger) *VehicleRepository {
	return &VehicleRepository{db: db, logger: logger}
}

const vehicleColumns = `id, license_plate, make, model, year, vin,
	assigned_employee_id, insurance_type, insurance_policy_number,
	insurance_expiry, is_fleet, created_at`

// Create inserts a new vehicle, assigning its store identity.
func (r *VehicleRepository) Create(v *models.Vehicle) error {
	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		v.ID, v.LicensePlate, v.Make, v.Model, v.Year, v.VIN,
		v.AssignedEmployeeID, v.InsuranceType, v.InsurancePolicyNo,
		v.InsuranceExpiry, v.IsFleet, v.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create vehicle", zap.Error(err))
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// List retrieves vehicles. When assignedOnly is non-nil it filters to
// vehicles with (true) or without (false) an assigned employee.
func (r *VehicleRepository) List(assignedOnly *bool) ([]models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	if assignedOnly != nil {
		if *assignedOnly {
			query += ` WHERE assigned_employee_id != ''`
		} else {
			query += ` WHERE assigned_employee_id = ''`
		}
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Failed to list vehicles", zap.Error(err))
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		err := rows.Scan(
			&v.ID, &v.LicensePlate, &v.Make, &v.Model, &v.Year, &v.VIN,
			&v.AssignedEmployeeID, &v.InsuranceType, &v.InsurancePolicyNo,
			&v.InsuranceExpiry, &v.IsFleet, &v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// GetByID retrieves a vehicle by store id. Returns (nil, nil) when absent.
func (r *VehicleRepository) GetByID(id string) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ?`

	var v models.Vehicle
	err := r.db.QueryRow(query, id).Scan(
		&v.ID, &v.LicensePlate, &v.Make, &v.Model, &v.Year, &v.VIN,
		&v.AssignedEmployeeID, &v.InsuranceType, &v.InsurancePolicyNo,
		&v.InsuranceExpiry, &v.IsFleet, &v.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get vehicle", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &v, nil
}

// Assign sets the employee a vehicle is assigned to. Returns false when no
// row matched.
func (r *VehicleRepository) Assign(id, employeeID string) (bool, error) {
	result, err := r.db.Exec(
		`UPDATE vehicles SET assigned_employee_id = ? WHERE id = ?`,
		employeeID, id,
	)
	if err != nil {
		r.logger.Error("Failed to assign vehicle", zap.String("id", id), zap.Error(err))
		return false, fmt.Errorf("failed to assign vehicle: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// Count returns the total number of vehicles.
func (r *VehicleRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM vehicles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return n, nil
}
