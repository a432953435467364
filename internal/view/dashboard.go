package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

// Dashboard renders the aggregate counters. Counters the store response
// omits stay zero; a failed fetch is logged and likewise leaves zeros.
type Dashboard struct {
	store  Store
	logger *zap.Logger

	Stats  models.DashboardStats
	Loaded bool
}

// NewDashboard creates an unmounted dashboard view.
func NewDashboard(store Store, logger *zap.Logger) *Dashboard {
	return &Dashboard{store: store, logger: logger}
}

// Load fetches the counters. Failures stop the loading indicator without
// surfacing an error; the counters simply read zero.
func (d *Dashboard) Load(ctx context.Context) {
	defer func() { d.Loaded = true }()

	stats, err := d.store.DashboardStats(ctx)
	if err != nil {
		d.logger.Error("Failed to fetch dashboard stats", zap.Error(err))
		return
	}
	d.Stats = stats
}

// PendingClaims is the displayed pending-claims counter: the sum of both
// claim types, computed here rather than by the store.
func (d *Dashboard) PendingClaims() int {
	return d.Stats.PendingMedicalClaims + d.Stats.PendingVehicleClaims
}
