package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
	"github.com/devmajed/hr-admin/internal/recordstore"
	"github.com/devmajed/hr-admin/internal/repository"
	"github.com/devmajed/hr-admin/internal/view"
	"github.com/devmajed/hr-admin/migrations"
	"github.com/devmajed/hr-admin/pkg/database"
)

// newE2EClient wires a real sqlite-backed server behind an HTTP listener and
// returns a typed client against it plus the base URL for raw seeding.
func newE2EClient(t *testing.T) (*recordstore.Client, string) {
	t.Helper()
	logger := zap.NewNop()

	db, err := database.NewInMemory(logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.NewMigrator(db, logger).Run(migrations.FS))

	srv := New(Config{}, Stores{
		Employees:     repository.NewEmployeeRepository(db.DB, logger),
		Vehicles:      repository.NewVehicleRepository(db.DB, logger),
		MedicalClaims: repository.NewMedicalClaimRepository(db.DB, logger),
		VehicleClaims: repository.NewVehicleClaimRepository(db.DB, logger),
		Providers:     repository.NewProviderRepository(db.DB, logger),
		Flights:       repository.NewFlightRepository(db.DB, logger),
		Dashboard:     repository.NewDashboardRepository(db.DB, logger),
	}, logger)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return recordstore.NewClient(recordstore.Config{BaseURL: ts.URL}, logger), ts.URL
}

// seedMedicalClaim files a claim through the intake endpoint the way
// external submission systems do.
func seedMedicalClaim(t *testing.T, baseURL, employeeID string) {
	t.Helper()
	claim := models.MedicalClaim{
		EmployeeID:   employeeID,
		ProviderName: "City Hospital",
		ServiceDate:  models.NewDate(2024, 4, 1),
		Amount:       250,
		Description:  "Consultation",
	}
	body, err := json.Marshal(claim)
	require.NoError(t, err)

	resp, err := http.Post(baseURL+"/api/medical-claims", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func e2ePayload(employeeID, first, department string) models.EmployeePayload {
	return models.EmployeePayload{
		EmployeeID:           employeeID,
		FirstName:            first,
		LastName:             "Tester",
		Email:                first + "@example.com",
		Phone:                "555-0100",
		Department:           department,
		Position:             "Analyst",
		HireDate:             models.NewDate(2023, 5, 2),
		MedicalInsuranceTier: models.TierBasic,
	}
}

func TestSeededEmployeeAppearsUnderItsDepartmentFilter(t *testing.T) {
	client, _ := newE2EClient(t)
	ctx := context.Background()

	created, err := client.CreateEmployee(ctx, e2ePayload("E100", "Amal", models.DepartmentHR))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = client.CreateEmployee(ctx, e2ePayload("E101", "Fahad", models.DepartmentFinancial))
	require.NoError(t, err)

	hr, err := client.Employees(ctx, models.DepartmentHR)
	require.NoError(t, err)
	require.Len(t, hr, 1)
	assert.Equal(t, created.ID, hr[0].ID)

	board, err := client.Employees(ctx, models.DepartmentBoard)
	require.NoError(t, err)
	assert.Empty(t, board)

	all, err := client.Employees(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEmployeeUpdateRoundTrip(t *testing.T) {
	client, _ := newE2EClient(t)
	ctx := context.Background()

	created, err := client.CreateEmployee(ctx, e2ePayload("E100", "Amal", models.DepartmentHR))
	require.NoError(t, err)

	payload := e2ePayload("E100", "Amal", models.DepartmentFinancial)
	payload.PassportNumber = "P7654321"
	payload.PassportExpiry = models.NewDate(2031, 1, 1)

	updated, err := client.UpdateEmployee(ctx, created.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.DepartmentFinancial, updated.Department)
	assert.Equal(t, "P7654321", updated.PassportNumber)
	assert.Equal(t, "2031-01-01", updated.PassportExpiry.String())
}

func TestClaimLifecycleThroughViews(t *testing.T) {
	client, baseURL := newE2EClient(t)
	ctx := context.Background()
	logger := zap.NewNop()

	employee, err := client.CreateEmployee(ctx, e2ePayload("E100", "Amal", models.DepartmentHR))
	require.NoError(t, err)

	seedMedicalClaim(t, baseURL, employee.ID)
	claims := view.NewClaims(client, logger)

	claims.Load(ctx)
	require.Len(t, claims.Medical, 1)
	claim := claims.Medical[0]
	assert.Equal(t, "Pending", claim.Status)
	assert.Regexp(t, `^MED-[0-9A-F]{8}$`, claim.ClaimNumber)
	assert.Equal(t, "Amal Tester", claims.EmployeeName(claim.EmployeeID))
	assert.Len(t, claims.Actions(claim.Status), 2)

	require.Nil(t, claims.ApproveMedical(ctx, claim.ID))
	require.Len(t, claims.Medical, 1)
	assert.Equal(t, "Approved", claims.Medical[0].Status)
	assert.NotNil(t, claims.Medical[0].ProcessedDate)
	assert.Empty(t, claims.Actions(claims.Medical[0].Status), "decided claims offer no actions")
}

func TestDashboardCountsSeededData(t *testing.T) {
	client, baseURL := newE2EClient(t)
	ctx := context.Background()

	employee, err := client.CreateEmployee(ctx, e2ePayload("E100", "Amal", models.DepartmentHR))
	require.NoError(t, err)
	seedMedicalClaim(t, baseURL, employee.ID)

	dashboard := view.NewDashboard(client, zap.NewNop())
	dashboard.Load(ctx)

	assert.Equal(t, 1, dashboard.Stats.TotalEmployees)
	assert.Equal(t, 1, dashboard.PendingClaims())
	assert.Equal(t, 1, dashboard.Stats.EmployeesByDepartment[models.DepartmentHR])
	assert.Equal(t, 1, dashboard.Stats.ClaimsByStatus["Pending"])
}
