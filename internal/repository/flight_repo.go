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

// FlightRepository handles flight reservation database operations
type FlightRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewFlightRepository creates a new flight reservation repository
func NewFlightRepository(db *sql.DB, logger *zap.Logger) *FlightRepository {
	return &FlightRepository{db: db, logger: logger}
}

const flightColumns = `id, employee_id, departure_city, arrival_city,
	departure_date, return_date, flight_class, purpose, status,
	estimated_cost, booking_reference, created_at`

// Create inserts a new reservation. Identity, Pending status and creation
// time are assigned by the store.
func (r *FlightRepository) Create(f *models.FlightReservation) error {
	f.ID = uuid.NewString()
	f.Status = status.Pending.String()
	f.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO flight_reservations (` + flightColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		f.ID, f.EmployeeID, f.DepartureCity, f.ArrivalCity,
		f.DepartureDate, f.ReturnDate, f.FlightClass, f.Purpose, f.Status,
		f.EstimatedCost, f.BookingReference, f.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create flight reservation", zap.Error(err))
		return fmt.Errorf("failed to create flight reservation: %w", err)
	}
	return nil
}

// List retrieves reservations newest first, optionally filtered by employee
// and status.
func (r *FlightRepository) List(employeeID, flightStatus string) ([]models.FlightReservation, error) {
	query := `SELECT ` + flightColumns + ` FROM flight_reservations`
	var conds []string
	var args []interface{}
	if employeeID != "" {
		conds = append(conds, "employee_id = ?")
		args = append(args, employeeID)
	}
	if flightStatus != "" {
		conds = append(conds, "status = ?")
		args = append(args, flightStatus)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to list flight reservations", zap.Error(err))
		return nil, fmt.Errorf("failed to list flight reservations: %w", err)
	}
	defer rows.Close()

	flights := []models.FlightReservation{}
	for rows.Next() {
		var f models.FlightReservation
		err := rows.Scan(
			&f.ID, &f.EmployeeID, &f.DepartureCity, &f.ArrivalCity,
			&f.DepartureDate, &f.ReturnDate, &f.FlightClass, &f.Purpose, &f.Status,
			&f.EstimatedCost, &f.BookingReference, &f.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight reservation: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// UpdateStatus sets a reservation's status; a booking reference is recorded
// only when non-empty. Returns false when no row matched.
func (r *FlightRepository) UpdateStatus(id, newStatus, bookingReference string) (bool, error) {
	query := `UPDATE flight_reservations SET status = ?`
	args := []interface{}{newStatus}
	if bookingReference != "" {
		query += `, booking_reference = ?`
		args = append(args, bookingReference)
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		r.logger.Error("Failed to update flight status",
			zap.String("id", id), zap.String("status", newStatus), zap.Error(err))
		return false, fmt.Errorf("failed to update flight status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// CountPending returns the number of Pending reservations.
func (r *FlightRepository) CountPending() (int, error) {
	return countPending(r.db, "flight_reservations")
}
