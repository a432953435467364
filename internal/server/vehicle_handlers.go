package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

// ListVehicles handles GET /api/vehicles[?assigned_only=]
func (h *handlers) ListVehicles(c *gin.Context) {
	var assignedOnly *bool
	if raw := c.Query("assigned_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			detail(c, http.StatusUnprocessableEntity, "assigned_only must be a boolean")
			return
		}
		assignedOnly = &v
	}

	vehicles, err := h.stores.Vehicles.List(assignedOnly)
	if err != nil {
		h.logger.Error("Failed to list vehicles", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle handles POST /api/vehicles
func (h *handlers) CreateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid vehicle payload: "+err.Error())
		return
	}
	if !models.ValidVehicleInsuranceType(vehicle.InsuranceType) {
		detail(c, http.StatusUnprocessableEntity, "unknown insurance type: "+vehicle.InsuranceType)
		return
	}

	if err := h.stores.Vehicles.Create(&vehicle); err != nil {
		h.logger.Error("Failed to create vehicle", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to create vehicle")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// AssignVehicle handles PUT /api/vehicles/:id/assign?employee_id=
func (h *handlers) AssignVehicle(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		detail(c, http.StatusUnprocessableEntity, "employee_id is required")
		return
	}

	id := c.Param("id")
	matched, err := h.stores.Vehicles.Assign(id, employeeID)
	if err != nil {
		h.logger.Error("Failed to assign vehicle", zap.String("id", id), zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to assign vehicle")
		return
	}
	if !matched {
		detail(c, http.StatusNotFound, "Vehicle not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle assigned successfully"})
}
