package models

// Department constants
const (
	DepartmentAdministration = "Administration's/Domestic workers"
	DepartmentBusinessDev    = "Business Development Department"
	DepartmentProjectMgmt    = "Projects Management"
	DepartmentProjectWorkers = "Projects workers"
	DepartmentFinancial      = "Financial Management & Accounts"
	DepartmentBoard          = "Board of Directors"
	DepartmentHR             = "Human Resources"
)

// Departments lists the closed set of departments in display order.
var Departments = []string{
	DepartmentAdministration,
	DepartmentBusinessDev,
	DepartmentProjectMgmt,
	DepartmentProjectWorkers,
	DepartmentFinancial,
	DepartmentBoard,
	DepartmentHR,
}

// Medical insurance tier constants
const (
	TierSeniorPremium40 = "Senior Premium 4.0"
	TierPremium40       = "Premium 4.0"
	TierPremium41       = "Premium 4.1"
	TierSeniorPremium21 = "Senior Premium 2.1"
	TierPremium21       = "Premium 2.1"
	TierPremium11       = "Premium 1.1"
	TierBasic           = "Basic"
	TierClassic         = "Classic"
)

// InsuranceTiers lists the closed set of medical insurance tiers.
var InsuranceTiers = []string{
	TierSeniorPremium40,
	TierPremium40,
	TierPremium41,
	TierSeniorPremium21,
	TierPremium21,
	TierPremium11,
	TierBasic,
	TierClassic,
}

// Vehicle insurance type constants
const (
	VehicleInsuranceComprehensive = "Comprehensive insurance"
	VehicleInsuranceThirdParty    = `Third party "against third parties"`
)

// VehicleInsuranceTypes lists the closed set of vehicle insurance types.
var VehicleInsuranceTypes = []string{
	VehicleInsuranceComprehensive,
	VehicleInsuranceThirdParty,
}

// Flight class constants
const (
	FlightClassEconomy  = "Economy"
	FlightClassBusiness = "Business"
	FlightClassFirst    = "First Class"
)

// FlightClasses lists the closed set of flight classes.
var FlightClasses = []string{
	FlightClassEconomy,
	FlightClassBusiness,
	FlightClassFirst,
}

// ValidDepartment reports whether dept is one of the enumerated departments.
func ValidDepartment(dept string) bool {
	return contains(Departments, dept)
}

// ValidInsuranceTier reports whether tier is one of the enumerated tiers.
func ValidInsuranceTier(tier string) bool {
	return contains(InsuranceTiers, tier)
}

// ValidVehicleInsuranceType reports whether t is a known vehicle insurance type.
func ValidVehicleInsuranceType(t string) bool {
	return contains(VehicleInsuranceTypes, t)
}

// ValidFlightClass reports whether class is one of the enumerated flight classes.
func ValidFlightClass(class string) bool {
	return contains(FlightClasses, class)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
