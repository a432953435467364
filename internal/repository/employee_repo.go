package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

// EmployeeRepository handles employee database operations
type EmployeeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *sql.DB, logger *zap.Logger) *EmployeeRepository {
	return &EmployeeRepository{db: db, logger: logger}
}

const employeeColumns = `id, employee_id, first_name, last_name, email, phone,
	department, position, hire_date, medical_insurance_tier,
	passport_number, passport_expiry, created_at, updated_at`

// Create inserts a new employee, assigning its store identity and timestamps.
func (r *EmployeeRepository) Create(e *models.Employee) error {
	e.ID = uuid.NewString()
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		e.ID, e.EmployeeID, e.FirstName, e.LastName, e.Email, e.Phone,
		e.Department, e.Position, e.HireDate, e.MedicalInsuranceTier,
		e.PassportNumber, e.PassportExpiry, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create employee", zap.Error(err))
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// GetByID retrieves an employee by store id. Returns (nil, nil) when absent.
func (r *EmployeeRepository) GetByID(id string) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`

	var e models.Employee
	err := r.db.QueryRow(query, id).Scan(
		&e.ID, &e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.Department, &e.Position, &e.HireDate, &e.MedicalInsuranceTier,
		&e.PassportNumber, &e.PassportExpiry, &e.CreatedAt, &e.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get employee", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &e, nil
}

// List retrieves employees, optionally constrained to an exact department
// match when department is non-empty.
func (r *EmployeeRepository) List(department string) ([]models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	var args []interface{}
	if department != "" {
		query += ` WHERE department = ?`
		args = append(args, department)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to list employees", zap.Error(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
			&e.Department, &e.Position, &e.HireDate, &e.MedicalInsuranceTier,
			&e.PassportNumber, &e.PassportExpiry, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update replaces the full field set of an existing employee and bumps
// updated_at. Returns false when no row matched.
func (r *EmployeeRepository) Update(id string, e *models.Employee) (bool, error) {
	query := `
		UPDATE employees SET
			employee_id = ?, first_name = ?, last_name = ?, email = ?, phone = ?,
			department = ?, position = ?, hire_date = ?, medical_insurance_tier = ?,
			passport_number = ?, passport_expiry = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		e.EmployeeID, e.FirstName, e.LastName, e.Email, e.Phone,
		e.Department, e.Position, e.HireDate, e.MedicalInsuranceTier,
		e.PassportNumber, e.PassportExpiry, time.Now().UTC(), id,
	)
	if err != nil {
		r.logger.Error("Failed to update employee", zap.String("id", id), zap.Error(err))
		return false, fmt.Errorf("failed to update employee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// Count returns the total number of employees.
func (r *EmployeeRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

// CountByDepartment returns employee counts grouped by department.
func (r *EmployeeRepository) CountByDepartment() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT department, COUNT(*) FROM employees GROUP BY department`)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by department: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var dept string
		var n int
		if err := rows.Scan(&dept, &n); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		counts[dept] = n
	}
	return counts, rows.Err()
}
