package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/domain/status"
	"github.com/devmajed/hr-admin/internal/models"
)

// VehicleClaimRepository handles vehicle claim database operations
type VehicleClaimRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewVehicleClaimRepository creates a new vehicle claim repository
func NewVehicleClaimRepository(db *sql.DB, logger *zap.Logger) *VehicleClaimRepository {
	return &VehicleClaimRepository{db: db, logger: logger}
}

const vehicleClaimColumns = `id, vehicle_id, claim_number, incident_date,
	description, amount, status, submitted_date, processed_date, notes`

// Create inserts a new claim. Identity, claim number, Pending status and
// submission time are assigned by the store.
func (r *VehicleClaimRepository) Create(c *models.VehicleClaim) error {
	c.ID = uuid.NewString()
	c.ClaimNumber = newClaimNumber("VEH")
	c.Status = status.Pending.String()
	c.SubmittedDate = time.Now().UTC()

	query := `
		INSERT INTO vehicle_claims (` + vehicleClaimColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		c.ID, c.VehicleID, c.ClaimNumber, c.IncidentDate,
		c.Description, c.Amount, c.Status, c.SubmittedDate,
		c.ProcessedDate, c.Notes,
	)
	if err != nil {
		r.logger.Error("Failed to create vehicle claim", zap.Error(err))
		return fmt.Errorf("failed to create vehicle claim: %w", err)
	}
	return nil
}

// List retrieves vehicle claims newest first, optionally filtered by
// vehicle and status.
func (r *VehicleClaimRepository) List(vehicleID, claimStatus string) ([]models.VehicleClaim, error) {
	query := `SELECT ` + vehicleClaimColumns + ` FROM vehicle_claims`
	var conds []string
	var args []interface{}
	if vehicleID != "" {
		conds = append(conds, "vehicle_id = ?")
		args = append(args, vehicleID)
	}
	if claimStatus != "" {
		conds = append(conds, "status = ?")
		args = append(args, claimStatus)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY submitted_date DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to list vehicle claims", zap.Error(err))
		return nil, fmt.Errorf("failed to list vehicle claims: %w", err)
	}
	defer rows.Close()

	claims := []models.VehicleClaim{}
	for rows.Next() {
		var c models.VehicleClaim
		var processed sql.NullTime
		err := rows.Scan(
			&c.ID, &c.VehicleID, &c.ClaimNumber, &c.IncidentDate,
			&c.Description, &c.Amount, &c.Status, &c.SubmittedDate,
			&processed, &c.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle claim: %w", err)
		}
		if processed.Valid {
			c.ProcessedDate = &processed.Time
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// UpdateStatus sets a claim's status and stamps the processing time.
// Returns false when no row matched.
func (r *VehicleClaimRepository) UpdateStatus(id, newStatus, notes string) (bool, error) {
	query := `UPDATE vehicle_claims SET status = ?, processed_date = ?`
	args := []interface{}{newStatus, time.Now().UTC()}
	if notes != "" {
		query += `, notes = ?`
		args = append(args, notes)
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		r.logger.Error("Failed to update vehicle claim status",
			zap.String("id", id), zap.String("status", newStatus), zap.Error(err))
		return false, fmt.Errorf("failed to update vehicle claim status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// CountByStatus returns vehicle claim counts grouped by status.
func (r *VehicleClaimRepository) CountByStatus() (map[string]int, error) {
	return countByStatus(r.db, "vehicle_claims")
}

// CountPending returns the number of Pending vehicle claims.
func (r *VehicleClaimRepository) CountPending() (int, error) {
	return countPending(r.db, "vehicle_claims")
}
