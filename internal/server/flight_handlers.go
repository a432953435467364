package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/domain/status"
	"github.com/devmajed/hr-admin/internal/models"
)

// ListFlights handles GET /api/flight-reservations[?employee_id=&status=]
func (h *handlers) ListFlights(c *gin.Context) {
	flightStatus := c.Query("status")
	if flightStatus != "" && !status.ValidFlightStatus(status.Status(flightStatus)) {
		detail(c, http.StatusUnprocessableEntity, "unknown flight status: "+flightStatus)
		return
	}

	flights, err := h.stores.Flights.List(c.Query("employee_id"), flightStatus)
	if err != nil {
		h.logger.Error("Failed to list flight reservations", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to list flight reservations")
		return
	}
	c.JSON(http.StatusOK, flights)
}

// CreateFlight handles POST /api/flight-reservations
func (h *handlers) CreateFlight(c *gin.Context) {
	var flight models.FlightReservation
	if err := c.ShouldBindJSON(&flight); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid reservation payload: "+err.Error())
		return
	}
	if flight.EmployeeID == "" {
		detail(c, http.StatusUnprocessableEntity, "employee_id is required")
		return
	}
	if !models.ValidFlightClass(flight.FlightClass) {
		detail(c, http.StatusUnprocessableEntity, "unknown flight class: "+flight.FlightClass)
		return
	}

	if err := h.stores.Flights.Create(&flight); err != nil {
		h.logger.Error("Failed to create flight reservation", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to create flight reservation")
		return
	}
	c.JSON(http.StatusOK, flight)
}

// UpdateFlightStatus handles PUT /api/flight-reservations/:id/status?status=[&booking_reference=]
func (h *handlers) UpdateFlightStatus(c *gin.Context) {
	newStatus := c.Query("status")
	if !status.ValidFlightStatus(status.Status(newStatus)) {
		detail(c, http.StatusUnprocessableEntity, "unknown flight status: "+newStatus)
		return
	}

	id := c.Param("id")
	matched, err := h.stores.Flights.UpdateStatus(id, newStatus, c.Query("booking_reference"))
	if err != nil {
		h.logger.Error("Failed to update flight status", zap.String("id", id), zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to update flight status")
		return
	}
	if !matched {
		detail(c, http.StatusNotFound, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flight status updated successfully"})
}

// ListProviders handles GET /api/service-providers[?network_tier=&active_only=]
func (h *handlers) ListProviders(c *gin.Context) {
	tier := c.Query("network_tier")
	if tier != "" && !models.ValidInsuranceTier(tier) {
		detail(c, http.StatusUnprocessableEntity, "unknown insurance tier: "+tier)
		return
	}
	activeOnly := c.DefaultQuery("active_only", "true") == "true"

	providers, err := h.stores.Providers.List(tier, activeOnly)
	if err != nil {
		h.logger.Error("Failed to list service providers", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to list service providers")
		return
	}
	c.JSON(http.StatusOK, providers)
}

// CreateProvider handles POST /api/service-providers
func (h *handlers) CreateProvider(c *gin.Context) {
	var provider models.ServiceProvider
	if err := c.ShouldBindJSON(&provider); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid provider payload: "+err.Error())
		return
	}
	if !models.ValidInsuranceTier(provider.NetworkTier) {
		detail(c, http.StatusUnprocessableEntity, "unknown insurance tier: "+provider.NetworkTier)
		return
	}

	if err := h.stores.Providers.Create(&provider); err != nil {
		h.logger.Error("Failed to create service provider", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to create service provider")
		return
	}
	c.JSON(http.StatusOK, provider)
}
