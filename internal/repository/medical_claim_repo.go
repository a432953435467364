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

// MedicalClaimRepository handles medical claim database operations
type MedicalClaimRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMedicalClaimRepository creates a new medical claim repository
func NewMedicalClaimRepository(db *sql.DB, logger *zap.Logger) *MedicalClaimRepository {
	return &MedicalClaimRepository{db: db, logger: logger}
}

const medicalClaimColumns = `id, employee_id, claim_number, provider_name,
	service_date, amount, description, status, submitted_date,
	processed_date, notes`

// newClaimNumber issues a human-readable claim code with the given prefix.
func newClaimNumber(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

// Create inserts a new claim. Identity, claim number, Pending status and
// submission time are assigned by the store.
func (r *MedicalClaimRepository) Create(c *models.MedicalClaim) error {
	c.ID = uuid.NewString()
	c.ClaimNumber = newClaimNumber("MED")
	c.Status = status.Pending.String()
	c.SubmittedDate = time.Now().UTC()

	query := `
		INSERT INTO medical_claims (` + medicalClaimColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		c.ID, c.EmployeeID, c.ClaimNumber, c.ProviderName,
		c.ServiceDate, c.Amount, c.Description, c.Status, c.SubmittedDate,
		c.ProcessedDate, c.Notes,
	)
	if err != nil {
		r.logger.Error("Failed to create medical claim", zap.Error(err))
		return fmt.Errorf("failed to create medical claim: %w", err)
	}
	return nil
}

// List retrieves medical claims newest first, optionally filtered by
// employee and status.
func (r *MedicalClaimRepository) List(employeeID, claimStatus string) ([]models.MedicalClaim, error) {
	query := `SELECT ` + medicalClaimColumns + ` FROM medical_claims`
	var conds []string
	var args []interface{}
	if employeeID != "" {
		conds = append(conds, "employee_id = ?")
		args = append(args, employeeID)
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
		r.logger.Error("Failed to list medical claims", zap.Error(err))
		return nil, fmt.Errorf("failed to list medical claims: %w", err)
	}
	defer rows.Close()

	claims := []models.MedicalClaim{}
	for rows.Next() {
		var c models.MedicalClaim
		var processed sql.NullTime
		err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.ClaimNumber, &c.ProviderName,
			&c.ServiceDate, &c.Amount, &c.Description, &c.Status, &c.SubmittedDate,
			&processed, &c.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medical claim: %w", err)
		}
		if processed.Valid {
			c.ProcessedDate = &processed.Time
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// UpdateStatus sets a claim's status and stamps the processing time.
// Notes are appended only when non-empty. Returns false when no row matched.
func (r *MedicalClaimRepository) UpdateStatus(id, newStatus, notes string) (bool, error) {
	query := `UPDATE medical_claims SET status = ?, processed_date = ?`
	args := []interface{}{newStatus, time.Now().UTC()}
	if notes != "" {
		query += `, notes = ?`
		args = append(args, notes)
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		r.logger.Error("Failed to update medical claim status",
			zap.String("id", id), zap.String("status", newStatus), zap.Error(err))
		return false, fmt.Errorf("failed to update medical claim status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// CountByStatus returns medical claim counts grouped by status.
func (r *MedicalClaimRepository) CountByStatus() (map[string]int, error) {
	return countByStatus(r.db, "medical_claims")
}

// CountPending returns the number of Pending medical claims.
func (r *MedicalClaimRepository) CountPending() (int, error) {
	return countPending(r.db, "medical_claims")
}

func countPending(db *sql.DB, table string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM ` + table + ` WHERE status = ?`
	if err := db.QueryRow(query, status.Pending.String()).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pending %s: %w", table, err)
	}
	return n, nil
}

func countByStatus(db *sql.DB, table string) (map[string]int, error) {
	rows, err := db.Query(`SELECT status, COUNT(*) FROM ` + table + ` GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s by status: %w", table, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var s string
		var n int
		if err := rows.Scan(&s, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[s] = n
	}
	return counts, rows.Err()
}
