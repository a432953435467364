package view

import (
	"context"
	"sync"

	"github.com/devmajed/hr-admin/internal/domain/status"
	"github.com/devmajed/hr-admin/internal/models"
)

// fakeStore is an in-memory Store with per-method failure switches and call
// counters. Mutex-guarded because view loads fan out concurrently.
type fakeStore struct {
	mu sync.Mutex

	stats        models.DashboardStats
	employees    []models.Employee
	vehicles     []models.Vehicle
	medical      []models.MedicalClaim
	vehicleClaim []models.VehicleClaim
	flights      []models.FlightReservation

	failStats        bool
	failEmployees    bool
	failVehicles     bool
	failMedical      bool
	failVehicleClaim bool
	failFlights      bool
	failWrites       bool

	employeeCalls int
	medicalCalls  int
	flightCalls   int
	createCalls   int
	updateCalls   int
	statusCalls   []string
}

type storeFailure struct{ op string }

func (e *storeFailure) Error() string { return e.op + " unavailable" }

func (f *fakeStore) DashboardStats(context.Context) (models.DashboardStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failStats {
		return models.DashboardStats{}, &storeFailure{op: "dashboard"}
	}
	return f.stats, nil
}

func (f *fakeStore) Employees(_ context.Context, department string) ([]models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employeeCalls++
	if f.failEmployees {
		return nil, &storeFailure{op: "employees"}
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

func (f *fakeStore) CreateEmployee(_ context.Context, payload models.EmployeePayload) (models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failWrites {
		return models.Employee{}, &storeFailure{op: "create"}
	}
	created := models.Employee{
		ID:         "emp-new",
		EmployeeID: payload.EmployeeID,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Department: payload.Department,
	}
	f.employees = append(f.employees, created)
	return created, nil
}

func (f *fakeStore) UpdateEmployee(_ context.Context, id string, payload models.EmployeePayload) (models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.failWrites {
		return models.Employee{}, &storeFailure{op: "update"}
	}
	for i, e := range f.employees {
		if e.ID == id {
			f.employees[i].FirstName = payload.FirstName
			f.employees[i].LastName = payload.LastName
			f.employees[i].Department = payload.Department
			return f.employees[i], nil
		}
	}
	return models.Employee{}, &storeFailure{op: "update"}
}

func (f *fakeStore) Vehicles(context.Context) ([]models.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failVehicles {
		return nil, &storeFailure{op: "vehicles"}
	}
	return f.vehicles, nil
}

func (f *fakeStore) MedicalClaims(context.Context) ([]models.MedicalClaim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.medicalCalls++
	if f.failMedical {
		return nil, &storeFailure{op: "medical claims"}
	}
	return f.medical, nil
}

func (f *fakeStore) VehicleClaims(context.Context) ([]models.VehicleClaim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failVehicleClaim {
		return nil, &storeFailure{op: "vehicle claims"}
	}
	return f.vehicleClaim, nil
}

func (f *fakeStore) FlightReservations(context.Context) ([]models.FlightReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flightCalls++
	if f.failFlights {
		return nil, &storeFailure{op: "flights"}
	}
	return f.flights, nil
}

func (f *fakeStore) UpdateMedicalClaimStatus(_ context.Context, id string, action status.Action) error {
	return f.recordStatus("medical", id, action)
}

func (f *fakeStore) UpdateVehicleClaimStatus(_ context.Context, id string, action status.Action) error {
	return f.recordStatus("vehicle", id, action)
}

func (f *fakeStore) UpdateFlightStatus(_ context.Context, id string, action status.Action) error {
	return f.recordStatus("flight", id, action)
}

func (f *fakeStore) recordStatus(kind, id string, action status.Action) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return &storeFailure{op: kind + " status"}
	}
	f.statusCalls = append(f.statusCalls, kind+":"+id+":"+action.String())
	return nil
}

func (f *fakeStore) setFailEmployees(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failEmployees = v
}
