package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

// ProviderRepository handles medical service provider database operations
type ProviderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProviderRepository creates a new service provider repository
func NewProviderRepository(db *sql.DB, logger *zap.Logger) *ProviderRepository {
	return &ProviderRepository{db: db, logger: logger}
}

const providerColumns = `id, name, type, address, phone, email,
	network_tier, is_active, created_at`

// Create inserts a new service provider, assigning its store identity.
func (r *ProviderRepository) Create(p *models.ServiceProvider) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO service_providers (` + providerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		p.ID, p.Name, p.Type, p.Address, p.Phone, p.Email,
		p.NetworkTier, p.IsActive, p.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create service provider", zap.Error(err))
		return fmt.Errorf("failed to create service provider: %w", err)
	}
	return nil
}

// List retrieves providers, optionally restricted to a network tier and to
// active providers only.
func (r *ProviderRepository) List(networkTier string, activeOnly bool) ([]models.ServiceProvider, error) {
	query := `SELECT ` + providerColumns + ` FROM service_providers`
	var conds []string
	var args []interface{}
	if networkTier != "" {
		conds = append(conds, "network_tier = ?")
		args = append(args, networkTier)
	}
	if activeOnly {
		conds = append(conds, "is_active = 1")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to list service providers", zap.Error(err))
		return nil, fmt.Errorf("failed to list service providers: %w", err)
	}
	defer rows.Close()

	providers := []models.ServiceProvider{}
	for rows.Next() {
		var p models.ServiceProvider
		err := rows.Scan(
			&p.ID, &p.Name, &p.Type, &p.Address, &p.Phone, &p.Email,
			&p.NetworkTier, &p.IsActive, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service provider: %w", err)
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}
