package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/report"
)

// ClaimsReport handles GET /api/reports/claims, streaming an xlsx workbook
// of both claim collections and the employee roster.
func (h *handlers) ClaimsReport(c *gin.Context) {
	medical, err := h.stores.MedicalClaims.List("", "")
	if err != nil {
		h.logger.Error("Failed to load medical claims for report", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to build claims report")
		return
	}
	vehicle, err := h.stores.VehicleClaims.List("", "")
	if err != nil {
		h.logger.Error("Failed to load vehicle claims for report", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to build claims report")
		return
	}
	employees, err := h.stores.Employees.List("")
	if err != nil {
		h.logger.Error("Failed to load employees for report", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to build claims report")
		return
	}
	vehicles, err := h.stores.Vehicles.List(nil)
	if err != nil {
		h.logger.Error("Failed to load vehicles for report", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to build claims report")
		return
	}

	workbook, err := report.NewBuilder(h.logger).ClaimsWorkbook(medical, vehicle, employees, vehicles)
	if err != nil {
		h.logger.Error("Failed to build claims workbook", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to build claims report")
		return
	}
	defer workbook.Close()

	c.Header("Content-Disposition", `attachment; filename="claims-report.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		h.logger.Error("Failed to stream claims workbook", zap.Error(err))
	}
}
