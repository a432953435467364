package view

import (
	"errors"
	"fmt"

	"github.com/devmajed/hr-admin/internal/models"
)

var (
	// ErrUnknownDepartment is returned when the department is not one of
	// the enumerated values.
	ErrUnknownDepartment = errors.New("unknown department")

	// ErrUnknownTier is returned when the insurance tier is not one of the
	// enumerated values.
	ErrUnknownTier = errors.New("unknown insurance tier")
)

// EmployeeForm is the controlled field set of the employee form. All fields
// are raw input strings; Payload validates and produces the complete wire
// payload, with optional fields present as empty values.
type EmployeeForm struct {
	EmployeeID           string
	FirstName            string
	LastName             string
	Email                string
	Phone                string
	Department           string
	Position             string
	HireDate             string
	MedicalInsuranceTier string
	PassportNumber       string
	PassportExpiry       string
}

// FormForEmployee pre-fills the form from an existing record.
func FormForEmployee(e models.Employee) EmployeeForm {
	return EmployeeForm{
		EmployeeID:           e.EmployeeID,
		FirstName:            e.FirstName,
		LastName:             e.LastName,
		Email:                e.Email,
		Phone:                e.Phone,
		Department:           e.Department,
		Position:             e.Position,
		HireDate:             e.HireDate.String(),
		MedicalInsuranceTier: e.MedicalInsuranceTier,
		PassportNumber:       e.PassportNumber,
		PassportExpiry:       e.PassportExpiry.String(),
	}
}

// Payload validates the form and produces the full submission payload.
// Required fields must be non-empty; department and insurance tier accept
// only their closed vocabularies; passport fields may stay empty.
func (f EmployeeForm) Payload() (models.EmployeePayload, error) {
	var payload models.EmployeePayload

	required := []struct {
		name  string
		value string
	}{
		{"employee ID", f.EmployeeID},
		{"first name", f.FirstName},
		{"last name", f.LastName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"department", f.Department},
		{"position", f.Position},
		{"hire date", f.HireDate},
		{"insurance tier", f.MedicalInsuranceTier},
	}
	for _, field := range required {
		if field.value == "" {
			return payload, fmt.Errorf("%s is required", field.name)
		}
	}

	if !models.ValidDepartment(f.Department) {
		return payload, fmt.Errorf("%w: %s", ErrUnknownDepartment, f.Department)
	}
	if !models.ValidInsuranceTier(f.MedicalInsuranceTier) {
		return payload, fmt.Errorf("%w: %s", ErrUnknownTier, f.MedicalInsuranceTier)
	}

	hireDate, err := models.ParseDate(f.HireDate)
	if err != nil {
		return payload, err
	}
	passportExpiry, err := models.ParseDate(f.PassportExpiry)
	if err != nil {
		return payload, err
	}

	return models.EmployeePayload{
		EmployeeID:           f.EmployeeID,
		FirstName:            f.FirstName,
		LastName:             f.LastName,
		Email:                f.Email,
		Phone:                f.Phone,
		Department:           f.Department,
		Position:             f.Position,
		HireDate:             hireDate,
		MedicalInsuranceTier: f.MedicalInsuranceTier,
		PassportNumber:       f.PassportNumber,
		PassportExpiry:       passportExpiry,
	}, nil
}
