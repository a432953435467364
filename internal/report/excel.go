// Package report builds Excel workbooks for the administration views.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

// Builder renders claims workbooks.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a report builder.
func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{logger: logger}
}

// ClaimsWorkbook renders a workbook with one sheet per claim type plus the
// employee roster. Counterpart names are resolved the same way the claims
// view does: by id lookup, with "Unknown" for unresolved references.
func (b *Builder) ClaimsWorkbook(
	medical []models.MedicalClaim,
	vehicle []models.VehicleClaim,
	employees []models.Employee,
	vehicles []models.Vehicle,
) (*excelize.File, error) {
	f := excelize.NewFile()

	employeeNames := make(map[string]string, len(employees))
	for _, e := range employees {
		employeeNames[e.ID] = e.FullName()
	}
	vehicleNames := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		vehicleNames[v.ID] = fmt.Sprintf("%s %s - %s", v.Make, v.Model, v.LicensePlate)
	}
	lookup := func(names map[string]string, id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return "Unknown"
	}

	const medicalSheet = "Medical Claims"
	f.SetSheetName("Sheet1", medicalSheet)
	if err := writeRow(f, medicalSheet, 1, []interface{}{
		"Claim #", "Employee", "Provider", "Description", "Amount", "Status", "Submitted",
	}); err != nil {
		return nil, err
	}
	for i, c := range medical {
		err := writeRow(f, medicalSheet, i+2, []interface{}{
			c.ClaimNumber, lookup(employeeNames, c.EmployeeID), c.ProviderName,
			c.Description, c.Amount, c.Status, c.SubmittedDate.Format("2006-01-02"),
		})
		if err != nil {
			return nil, err
		}
	}

	const vehicleSheet = "Vehicle Claims"
	if _, err := f.NewSheet(vehicleSheet); err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}
	if err := writeRow(f, vehicleSheet, 1, []interface{}{
		"Claim #", "Vehicle", "Description", "Amount", "Status", "Submitted",
	}); err != nil {
		return nil, err
	}
	for i, c := range vehicle {
		err := writeRow(f, vehicleSheet, i+2, []interface{}{
			c.ClaimNumber, lookup(vehicleNames, c.VehicleID), c.Description,
			c.Amount, c.Status, c.SubmittedDate.Format("2006-01-02"),
		})
		if err != nil {
			return nil, err
		}
	}

	const rosterSheet = "Employees"
	if _, err := f.NewSheet(rosterSheet); err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}
	if err := writeRow(f, rosterSheet, 1, []interface{}{
		"Employee ID", "Name", "Email", "Department", "Position", "Insurance Tier", "Hire Date",
	}); err != nil {
		return nil, err
	}
	for i, e := range employees {
		err := writeRow(f, rosterSheet, i+2, []interface{}{
			e.EmployeeID, e.FullName(), e.Email, e.Department,
			e.Position, e.MedicalInsuranceTier, e.HireDate.String(),
		})
		if err != nil {
			return nil, err
		}
	}

	b.logger.Info("Claims workbook built",
		zap.Int("medical_claims", len(medical)),
		zap.Int("vehicle_claims", len(vehicle)),
		zap.Int("employees", len(employees)))

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", row, sheet, err)
	}
	return nil
}
