package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type handlers struct {
	stores Stores
	logger *zap.Logger
}

func newHandlers(stores Stores, logger *zap.Logger) *handlers {
	return &handlers{stores: stores, logger: logger}
}

// detail writes the error body shape the original API used.
func detail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"detail": msg})
}

// HealthCheck handles GET /health
func (h *handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "hr-admin",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// DashboardStats handles GET /api/dashboard
func (h *handlers) DashboardStats(c *gin.Context) {
	stats, err := h.stores.Dashboard.Stats()
	if err != nil {
		h.logger.Error("Failed to compute dashboard stats", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to compute dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
