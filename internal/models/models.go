package models

import "time"

// Employee is a staff record. The id is assigned by the store; employee_id is
// the human-assigned business code and carries no identity semantics here.
type Employee struct {
	ID                   string    `json:"id"`
	EmployeeID           string    `json:"employee_id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	Department           string    `json:"department"`
	Position             string    `json:"position"`
	HireDate             Date      `json:"hire_date"`
	MedicalInsuranceTier string    `json:"medical_insurance_tier"`
	PassportNumber       string    `json:"passport_number"`
	PassportExpiry       Date      `json:"passport_expiry"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// FullName returns "First Last".
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeePayload is the full field set a form submits. Every field is always
// present in the marshaled body; optional fields are sent as empty strings.
type EmployeePayload struct {
	EmployeeID           string `json:"employee_id"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Department           string `json:"department"`
	Position             string `json:"position"`
	HireDate             Date   `json:"hire_date"`
	MedicalInsuranceTier string `json:"medical_insurance_tier"`
	PassportNumber       string `json:"passport_number"`
	PassportExpiry       Date   `json:"passport_expiry"`
}

// Vehicle is a fleet vehicle record.
type Vehicle struct {
	ID                  string    `json:"id"`
	LicensePlate        string    `json:"license_plate"`
	Make                string    `json:"make"`
	Model               string    `json:"model"`
	Year                int       `json:"year"`
	VIN                 string    `json:"vin"`
	AssignedEmployeeID  string    `json:"assigned_employee_id"`
	InsuranceType       string    `json:"insurance_type"`
	InsurancePolicyNo   string    `json:"insurance_policy_number"`
	InsuranceExpiry     Date      `json:"insurance_expiry"`
	IsFleet             bool      `json:"is_fleet"`
	CreatedAt           time.Time `json:"created_at"`
}

// MedicalClaim is an insurance claim filed against an employee's medical cover.
type MedicalClaim struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	ClaimNumber   string     `json:"claim_number"`
	ProviderName  string     `json:"provider_name"`
	ServiceDate   Date       `json:"service_date"`
	Amount        float64    `json:"amount"`
	Description   string     `json:"description"`
	Status        string     `json:"status"` // Pending, Approved, Rejected, Processing
	SubmittedDate time.Time  `json:"submitted_date"`
	ProcessedDate *time.Time `json:"processed_date,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// VehicleClaim is an insurance claim filed against a fleet vehicle.
type VehicleClaim struct {
	ID            string     `json:"id"`
	VehicleID     string     `json:"vehicle_id"`
	ClaimNumber   string     `json:"claim_number"`
	IncidentDate  Date       `json:"incident_date"`
	Description   string     `json:"description"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	SubmittedDate time.Time  `json:"submitted_date"`
	ProcessedDate *time.Time `json:"processed_date,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// ServiceProvider is a medical network provider (hospital, clinic, lab).
type ServiceProvider struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	NetworkTier string    `json:"network_tier"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// FlightReservation is a business travel booking request.
type FlightReservation struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	DepartureCity    string    `json:"departure_city"`
	ArrivalCity      string    `json:"arrival_city"`
	DepartureDate    Date      `json:"departure_date"`
	ReturnDate       Date      `json:"return_date"`
	FlightClass      string    `json:"flight_class"`
	Purpose          string    `json:"purpose"`
	Status           string    `json:"status"` // Pending, Approved, Rejected, Booked
	EstimatedCost    float64   `json:"estimated_cost"`
	BookingReference string    `json:"booking_reference,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// DashboardStats is the aggregate counter payload served to the dashboard.
type DashboardStats struct {
	TotalEmployees        int            `json:"total_employees"`
	TotalVehicles         int            `json:"total_vehicles"`
	PendingMedicalClaims  int            `json:"pending_medical_claims"`
	PendingVehicleClaims  int            `json:"pending_vehicle_claims"`
	PendingFlights        int            `json:"pending_flights"`
	EmployeesByDepartment map[string]int `json:"employees_by_department"`
	ClaimsByStatus        map[string]int `json:"claims_by_status"`
}
