package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
	"github.com/devmajed/hr-admin/pkg/utils"
)

// ListEmployees handles GET /api/employees[?department=]
func (h *handlers) ListEmployees(c *gin.Context) {
	department := c.Query("department")
	if department != "" && !models.ValidDepartment(department) {
		detail(c, http.StatusUnprocessableEntity, "unknown department: "+department)
		return
	}

	employees, err := h.stores.Employees.List(department)
	if err != nil {
		h.logger.Error("Failed to list employees", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to list employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetEmployee handles GET /api/employees/:id
func (h *handlers) GetEmployee(c *gin.Context) {
	employee, err := h.stores.Employees.GetByID(c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to get employee", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to get employee")
		return
	}
	if employee == nil {
		detail(c, http.StatusNotFound, "Employee not found")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// CreateEmployee handles POST /api/employees
func (h *handlers) CreateEmployee(c *gin.Context) {
	payload, ok := h.bindEmployeePayload(c)
	if !ok {
		return
	}

	employee := employeeFromPayload(payload)
	if err := h.stores.Employees.Create(&employee); err != nil {
		h.logger.Error("Failed to create employee", zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to create employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// UpdateEmployee handles PUT /api/employees/:id
func (h *handlers) UpdateEmployee(c *gin.Context) {
	payload, ok := h.bindEmployeePayload(c)
	if !ok {
		return
	}

	id := c.Param("id")
	employee := employeeFromPayload(payload)
	matched, err := h.stores.Employees.Update(id, &employee)
	if err != nil {
		h.logger.Error("Failed to update employee", zap.String("id", id), zap.Error(err))
		detail(c, http.StatusInternalServerError, "failed to update employee")
		return
	}
	if !matched {
		detail(c, http.StatusNotFound, "Employee not found")
		return
	}

	updated, err := h.stores.Employees.GetByID(id)
	if err != nil || updated == nil {
		detail(c, http.StatusInternalServerError, "failed to read back employee")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// bindEmployeePayload decodes and validates the full employee field set.
// The two enumerated fields accept only their closed vocabularies.
func (h *handlers) bindEmployeePayload(c *gin.Context) (models.EmployeePayload, bool) {
	var payload models.EmployeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid employee payload: "+err.Error())
		return payload, false
	}

	required := map[string]string{
		"employee_id":            payload.EmployeeID,
		"first_name":             payload.FirstName,
		"last_name":              payload.LastName,
		"email":                  payload.Email,
		"phone":                  payload.Phone,
		"department":             payload.Department,
		"position":               payload.Position,
		"medical_insurance_tier": payload.MedicalInsuranceTier,
	}
	for field, value := range required {
		if value == "" {
			detail(c, http.StatusUnprocessableEntity, field+" is required")
			return payload, false
		}
	}
	if payload.HireDate.IsZero() {
		detail(c, http.StatusUnprocessableEntity, "hire_date is required")
		return payload, false
	}
	if err := utils.ValidateEmail(payload.Email); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return payload, false
	}
	if !models.ValidDepartment(payload.Department) {
		detail(c, http.StatusUnprocessableEntity, "unknown department: "+payload.Department)
		return payload, false
	}
	if !models.ValidInsuranceTier(payload.MedicalInsuranceTier) {
		detail(c, http.StatusUnprocessableEntity, "unknown insurance tier: "+payload.MedicalInsuranceTier)
		return payload, false
	}

	return payload, true
}

func employeeFromPayload(p models.EmployeePayload) models.Employee {
	return models.Employee{
		EmployeeID:           p.EmployeeID,
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		Email:                p.Email,
		Phone:                p.Phone,
		Department:           p.Department,
		Position:             p.Position,
		HireDate:             p.HireDate,
		MedicalInsuranceTier: p.MedicalInsuranceTier,
		PassportNumber:       p.PassportNumber,
		PassportExpiry:       p.PassportExpiry,
	}
}
