package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/domain/status"
	"github.com/devmajed/hr-admin/internal/models"
)

// ListMedicalClaims handles GET /api/medical-claims[?employee_id=&status=]
func (h *handlers) ListMedicalClaims(c *gin.Context) {
	claimStatus := c.Query("status")
	if claimStatus != "" && !status.ValidClaimStatus(status.Status(claimStatus)) {
		detail(c, http.StatusUnprocessableEntity, "unknown claim status: "+claimStatus)
		return
	}

	claims, err := h.stores.MedicalClaims.List(c.Query("employee_id"), claimStatus)
	if err != nil {
		h.logger.Error("Failed to list medical claims", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to list medical claims")
		return
	}
	c.JSON(http.StatusOK, claims)
}

// CreateMedicalClaim handles POST /api/medical-claims
func (h *handlers) CreateMedicalClaim(c *gin.Context) {
	var claim models.MedicalClaim
	if err := c.ShouldBindJSON(&claim); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid claim payload: "+err.Error())
		return
	}
	if claim.EmployeeID == "" {
		detail(c, http.StatusUnprocessableEntity, "employee_id is required")
		return
	}

	if err := h.stores.MedicalClaims.Create(&claim); err != nil {
		h.logger.Error("Failed to create medical claim", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to create medical claim")
		return
	}
	c.JSON(http.StatusOK, claim)
}

// UpdateMedicalClaimStatus handles PUT /api/medical-claims/:id/status?status=[&notes=]
func (h *handlers) UpdateMedicalClaimStatus(c *gin.Context) {
	h.updateClaimStatus(c, "Claim not found", func(id, s, notes string) (bool, error) {
		return h.stores.MedicalClaims.UpdateStatus(id, s, notes)
	})
}

// ListVehicleClaims handles GET /api/vehicle-claims[?vehicle_id=&status=]
func (h *handlers) ListVehicleClaims(c *gin.Context) {
	claimStatus := c.Query("status")
	if claimStatus != "" && !status.ValidClaimStatus(status.Status(claimStatus)) {
		detail(c, http.StatusUnprocessableEntity, "unknown claim status: "+claimStatus)
		return
	}

	claims, err := h.stores.VehicleClaims.List(c.Query("vehicle_id"), claimStatus)
	if err != nil {
		h.logger.Error("Failed to list vehicle claims", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to list vehicle claims")
		return
	}
	c.JSON(http.StatusOK, claims)
}

// CreateVehicleClaim handles POST /api/vehicle-claims
func (h *handlers) CreateVehicleClaim(c *gin.Context) {
	var claim models.VehicleClaim
	if err := c.ShouldBindJSON(&claim); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid claim payload: "+err.Error())
		return
	}
	if claim.VehicleID == "" {
		detail(c, http.StatusUnprocessableEntity, "vehicle_id is required")
		return
	}

	if err := h.stores.VehicleClaims.Create(&claim); err != nil {
		h.logger.Error("Failed to create vehicle claim", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to create vehicle claim")
		return
	}
	c.JSON(http.StatusOK, claim)
}

// UpdateVehicleClaimStatus handles PUT /api/vehicle-claims/:id/status?status=[&notes=]
func (h *handlers) UpdateVehicleClaimStatus(c *gin.Context) {
	h.updateClaimStatus(c, "Claim not found", func(id, s, notes string) (bool, error) {
		return h.stores.VehicleClaims.UpdateStatus(id, s, notes)
	})
}

// updateClaimStatus validates the status vocabulary and applies the update.
// Transition legality is deliberately not enforced here; that gate lives in
// the review views and external processes set statuses of their own.
func (h *handlers) updateClaimStatus(c *gin.Context, notFound string, update func(id, s, notes string) (bool, error)) {
	newStatus := c.Query("status")
	if !status.ValidClaimStatus(status.Status(newStatus)) {
		detail(c, http.StatusUnprocessableEntity, "unknown claim status: "+newStatus)
		return
	}

	id := c.Param("id")
	matched, err := update(id, newStatus, c.Query("notes"))
	if err != nil {
		h.logger.Error("Failed to update claim status", zap.String("id", id), zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to update claim status")
		return
	}
	if !matched {
		detail(c, http.StatusNotFound, notFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Claim status updated successfully"})
}
