package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

type fakeEmployeeStore struct {
	employees []models.Employee
	failList  bool
}

func (f *fakeEmployeeStore) List(department string) ([]models.Employee, error) {
	if f.failList {
		return nil, errors.New("db closed")
	}
	if department == "" {
		return f.employees, nil
	}
	var out []models.Employee
	for _, e := range f.employees {
		if e.Department == department {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeStore) GetByID(id string) (*models.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			return &f.employees[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeStore) Create(e *models.Employee) error {
	e.ID = "emp-new"
	f.employees = append(f.employees, *e)
	return nil
}

func (f *fakeEmployeeStore) Update(id string, e *models.Employee) (bool, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			e.ID = id
			f.employees[i] = *e
			return true, nil
		}
	}
	return false, nil
}

type fakeClaimStore struct {
	medical    []models.MedicalClaim
	vehicle    []models.VehicleClaim
	lastUpdate string
	missing    bool
}

func (f *fakeClaimStore) List(string, string) ([]models.MedicalClaim, error) {
	return f.medical, nil
}

func (f *fakeClaimStore) Create(c *models.MedicalClaim) error {
	c.ID = "med-new"
	c.ClaimNumber = "MED-TEST0001"
	c.Status = "Pending"
	return nil
}

func (f *fakeClaimStore) UpdateStatus(id, status, notes string) (bool, error) {
	if f.missing {
		return false, nil
	}
	f.lastUpdate = id + ":" + status + ":" + notes
	return true, nil
}

type fakeVehicleClaimStore struct{ fakeClaimStore }

func (f *fakeVehicleClaimStore) List(string, string) ([]models.VehicleClaim, error) {
	return f.vehicle, nil
}

func (f *fakeVehicleClaimStore) Create(c *models.VehicleClaim) error {
	c.ID = "vc-new"
	c.ClaimNumber = "VEH-TEST0001"
	c.Status = "Pending"
	return nil
}

type fakeVehicleStore struct{ vehicles []models.Vehicle }

func (f *fakeVehicleStore) List(*bool) ([]models.Vehicle, error) { return f.vehicles, nil }
func (f *fakeVehicleStore) Create(v *models.Vehicle) error      { v.ID = "veh-new"; return nil }
func (f *fakeVehicleStore) Assign(id, employeeID string) (bool, error) {
	return id == "veh-1", nil
}

type fakeProviderStore struct{ providers []models.ServiceProvider }

func (f *fakeProviderStore) List(string, bool) ([]models.ServiceProvider, error) {
	return f.providers, nil
}
func (f *fakeProviderStore) Create(p *models.ServiceProvider) error { p.ID = "sp-new"; return nil }

type fakeFlightStore struct {
	flights    []models.FlightReservation
	lastUpdate string
}

func (f *fakeFlightStore) List(string, string) ([]models.FlightReservation, error) {
	return f.flights, nil
}

func (f *fakeFlightStore) Create(fl *models.FlightReservation) error {
	fl.ID = "fl-new"
	fl.Status = "Pending"
	return nil
}

func (f *fakeFlightStore) UpdateStatus(id, status, ref string) (bool, error) {
	if id != "fl-1" {
		return false, nil
	}
	f.lastUpdate = id + ":" + status + ":" + ref
	return true, nil
}

type fakeDashboardStore struct{ stats models.DashboardStats }

func (f *fakeDashboardStore) Stats() (models.DashboardStats, error) { return f.stats, nil }

type fixture struct {
	srv       *Server
	employees *fakeEmployeeStore
	medical   *fakeClaimStore
	vehicle   *fakeVehicleClaimStore
	flights   *fakeFlightStore
}

func newFixture() *fixture {
	f := &fixture{
		employees: &fakeEmployeeStore{employees: []models.Employee{
			{ID: "emp-1", EmployeeID: "E001", FirstName: "Sara", LastName: "Hassan", Department: models.DepartmentHR},
			{ID: "emp-2", EmployeeID: "E002", FirstName: "Omar", LastName: "Khalid", Department: models.DepartmentFinancial},
		}},
		medical: &fakeClaimStore{medical: []models.MedicalClaim{
			{ID: "med-1", ClaimNumber: "MED-AAAA1111", EmployeeID: "emp-1", Status: "Pending"},
		}},
		vehicle: &fakeVehicleClaimStore{},
		flights: &fakeFlightStore{flights: []models.FlightReservation{
			{ID: "fl-1", EmployeeID: "emp-1", Status: "Pending"},
		}},
	}

	f.srv = New(Config{}, Stores{
		Employees:     f.employees,
		Vehicles:      &fakeVehicleStore{},
		MedicalClaims: f.medical,
		VehicleClaims: f.vehicle,
		Providers:     &fakeProviderStore{},
		Flights:       f.flights,
		Dashboard: &fakeDashboardStore{stats: models.DashboardStats{
			TotalEmployees:       2,
			PendingMedicalClaims: 1,
			EmployeesByDepartment: map[string]int{
				models.DepartmentHR: 1,
			},
		}},
	}, zap.NewNop())
	return f
}

func (f *fixture) request(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(w, req)
	return w
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Detail
}

func validPayload() models.EmployeePayload {
	return models.EmployeePayload{
		EmployeeID:           "E003",
		FirstName:            "Lina",
		LastName:             "Saleh",
		Email:                "lina@example.com",
		Phone:                "555-0003",
		Department:           models.DepartmentHR,
		Position:             "Coordinator",
		HireDate:             models.NewDate(2023, time.February, 1),
		MedicalInsuranceTier: models.TierBasic,
	}
}

func TestHealthCheck(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestDashboardStats(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalEmployees)
	assert.Equal(t, 1, stats.EmployeesByDepartment[models.DepartmentHR])
}

func TestListEmployees(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var employees []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	assert.Len(t, employees, 2)
}

func TestListEmployeesDepartmentFilter(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodGet, "/api/employees?department=Human+Resources", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var employees []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	require.Len(t, employees, 1)
	assert.Equal(t, "emp-1", employees[0].ID)
}

func TestListEmployeesUnknownDepartment(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodGet, "/api/employees?department=Engineering", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeDetail(t, w), "unknown department")
}

func TestListEmployeesStoreFailure(t *testing.T) {
	f := newFixture()
	f.employees.failList = true
	w := f.request(t, http.MethodGet, "/api/employees", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, decodeDetail(t, w))
}

func TestGetEmployeeNotFound(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodGet, "/api/employees/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Employee not found", decodeDetail(t, w))
}

func TestCreateEmployee(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodPost, "/api/employees", validPayload())
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "emp-new", created.ID)
	assert.Equal(t, "E003", created.EmployeeID)
}

func TestCreateEmployeeValidation(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.EmployeePayload)
		wantDetail string
	}{
		{"missing first name", func(p *models.EmployeePayload) { p.FirstName = "" }, "first_name is required"},
		{"missing hire date", func(p *models.EmployeePayload) { p.HireDate = models.Date{} }, "hire_date is required"},
		{"malformed email", func(p *models.EmployeePayload) { p.Email = "not-an-email" }, "invalid email format"},
		{"unknown department", func(p *models.EmployeePayload) { p.Department = "Engineering" }, "unknown department"},
		{"unknown tier", func(p *models.EmployeePayload) { p.MedicalInsuranceTier = "Platinum" }, "unknown insurance tier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			payload := validPayload()
			tt.mutate(&payload)
			w := f.request(t, http.MethodPost, "/api/employees", payload)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, decodeDetail(t, w), tt.wantDetail)
		})
	}
}

func TestUpdateEmployee(t *testing.T) {
	f := newFixture()
	payload := validPayload()
	payload.FirstName = "Sarah"
	w := f.request(t, http.MethodPut, "/api/employees/emp-1", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "emp-1", updated.ID)
	assert.Equal(t, "Sarah", updated.FirstName)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodPut, "/api/employees/missing", validPayload())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Employee not found", decodeDetail(t, w))
}

func TestUpdateMedicalClaimStatus(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodPut, "/api/medical-claims/med-1/status?status=Approved&notes=ok", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "med-1:Approved:ok", f.medical.lastUpdate)
}

func TestUpdateClaimStatusUnknownVocabulary(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodPut, "/api/medical-claims/med-1/status?status=Booked", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeDetail(t, w), "unknown claim status")
}

func TestUpdateClaimStatusNotFound(t *testing.T) {
	f := newFixture()
	f.medical.missing = true
	w := f.request(t, http.MethodPut, "/api/medical-claims/missing/status?status=Rejected", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Claim not found", decodeDetail(t, w))
}

func TestUpdateFlightStatusWithBookingReference(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodPut, "/api/flight-reservations/fl-1/status?status=Booked&booking_reference=BK42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fl-1:Booked:BK42", f.flights.lastUpdate)
}

func TestUpdateFlightStatusRejectsProcessing(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodPut, "/api/flight-reservations/fl-1/status?status=Processing", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeDetail(t, w), "unknown flight status")
}

func TestCreateFlightUnknownClass(t *testing.T) {
	f := newFixture()
	flight := models.FlightReservation{EmployeeID: "emp-1", FlightClass: "Premium Economy"}
	w := f.request(t, http.MethodPost, "/api/flight-reservations", flight)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeDetail(t, w), "unknown flight class")
}

func TestCreateVehicleUnknownInsuranceType(t *testing.T) {
	f := newFixture()
	vehicle := models.Vehicle{LicensePlate: "ABC-123", InsuranceType: "Third party"}
	w := f.request(t, http.MethodPost, "/api/vehicles", vehicle)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeDetail(t, w), "unknown insurance type")
}

func TestAssignVehicleNotFound(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodPut, "/api/vehicles/missing/assign?employee_id=emp-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Vehicle not found", decodeDetail(t, w))
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture()
	w := f.request(t, http.MethodOptions, "/api/employees", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
