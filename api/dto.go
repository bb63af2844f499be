/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

CONVENTIONS:
  - Dates are "YYYY-MM-DD" strings
  - Money and meter readings are decimal strings, never floats
  - Optional fields are pointers and omitted when nil

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

// =============================================================================
// REQUESTS
// =============================================================================

// CreateTenantRequest creates a tenant record. Assignment happens
// separately via the assign endpoint.
type CreateTenantRequest struct {
	ID                 string  `json:"id"`
	LandlordID         string  `json:"landlordId"`
	Name               string  `json:"name"`
	MonthlyRent        string  `json:"monthlyRent"`
	DepositMoney       string  `json:"depositMoney"`
	ElectricityPerUnit *string `json:"electricityPerUnit,omitempty"`
}

// UpdateTenantRequest closes or edits a tenancy.
type UpdateTenantRequest struct {
	Name         *string `json:"name,omitempty"`
	EndingDate   *string `json:"endingDate,omitempty"`
	DepositMoney *string `json:"depositMoney,omitempty"`
}

// AssignUnitRequest moves a tenant into a unit as of a date.
type AssignUnitRequest struct {
	PropertyID string `json:"propertyId"`
	UnitID     string `json:"unitId"`
	Date       string `json:"date"`
}

// UnassignUnitRequest ends the current assignment as of a date.
type UnassignUnitRequest struct {
	Date string `json:"date"`
}

// RentChangeRequest appends a rate change to the tenant's schedule.
type RentChangeRequest struct {
	Amount        string `json:"amount"`
	EffectiveFrom string `json:"effectiveFrom"`
}

// PaymentRequest records a rent or electricity payment.
type PaymentRequest struct {
	Kind          string  `json:"kind"`
	Amount        string  `json:"amount"`
	PaidAt        string  `json:"paidAt"`
	MeterPrevious *string `json:"meterPrevious,omitempty"`
	MeterCurrent  *string `json:"meterCurrent,omitempty"`
}

// CreatePropertyRequest registers a property for a landlord.
type CreatePropertyRequest struct {
	ID         string `json:"id"`
	LandlordID string `json:"landlordId"`
	Name       string `json:"name"`
}

// CreateUnitRequest registers a unit under a property.
type CreateUnitRequest struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// LoadScenarioRequest loads a named demo scenario.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// =============================================================================
// RESPONSES
// =============================================================================

type TenantDTO struct {
	ID                 string  `json:"id"`
	LandlordID         string  `json:"landlordId"`
	Name               string  `json:"name"`
	PropertyID         *string `json:"propertyId,omitempty"`
	UnitID             *string `json:"unitId,omitempty"`
	StartingDate       *string `json:"startingDate,omitempty"`
	EndingDate         *string `json:"endingDate,omitempty"`
	MonthlyRent        string  `json:"monthlyRent"`
	DepositMoney       string  `json:"depositMoney"`
	ElectricityPerUnit *string `json:"electricityPerUnit,omitempty"`
	StartingUnit       *string `json:"startingUnit,omitempty"`
	CurrentUnit        *string `json:"currentUnit,omitempty"`
}

type PropertyDTO struct {
	ID         string `json:"id"`
	LandlordID string `json:"landlordId"`
	Name       string `json:"name"`
}

type UnitDTO struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	Label      string `json:"label"`
	Occupied   bool   `json:"occupied"`
	TenantID   string `json:"tenantId,omitempty"`
}

type PaymentDTO struct {
	Kind          string  `json:"kind"`
	Amount        string  `json:"amount"`
	PaidAt        string  `json:"paidAt"`
	MeterPrevious *string `json:"meterPrevious,omitempty"`
	MeterCurrent  *string `json:"meterCurrent,omitempty"`
}

// BillingDTO is the full reconstruction result for one tenant.
type BillingDTO struct {
	TenantID             string      `json:"tenantId"`
	Status               string      `json:"status"`
	Due                  string      `json:"due"`
	Overpaid             string      `json:"overpaid"`
	DueAmountDate        *string     `json:"dueAmountDate,omitempty"`
	TotalPaid            string      `json:"totalPaid"`
	TotalExpectedRent    string      `json:"totalExpectedRent"`
	TotalElectricityCost string      `json:"totalElectricityCost"`
	RentDue              string      `json:"rentDue"`
	ElectricityDue       string      `json:"electricityDue"`
	RentOverpaid         string      `json:"rentOverpaid"`
	ElectricityOverpaid  string      `json:"electricityOverpaid"`
	TotalRentPaid        string      `json:"totalRentPaid"`
	TotalElectricityPaid string      `json:"totalElectricityPaid"`
	DepositMoney         string      `json:"depositMoney"`
	Periods              []PeriodDTO `json:"periods"`
}

// PeriodDTO is one tenancy period's slice of the billing result.
type PeriodDTO struct {
	PropertyID          *string `json:"propertyId,omitempty"`
	StartDate           string  `json:"startDate"`
	EndDate             string  `json:"endDate"`
	ExpectedRent        string  `json:"expectedRent"`
	ExpectedElectricity string  `json:"expectedElectricity"`
	RentPaid            string  `json:"rentPaid"`
	ElectricityPaid     string  `json:"electricityPaid"`
	RentDue             string  `json:"rentDue"`
	ElectricityDue      string  `json:"electricityDue"`
	RentOverpaid        string  `json:"rentOverpaid"`
	ElectricityOverpaid string  `json:"electricityOverpaid"`
}

// PortfolioDTO aggregates billing across every tenant of a landlord.
type PortfolioDTO struct {
	LandlordID  string             `json:"landlordId"`
	TotalDue    string             `json:"totalDue"`
	TotalPaid   string             `json:"totalPaid"`
	StatusCount map[string]int     `json:"statusCount"`
	Tenants     []TenantBillingRef `json:"tenants"`
}

// TenantBillingRef is a one-line billing summary inside a portfolio.
type TenantBillingRef struct {
	TenantID string `json:"tenantId"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Due      string `json:"due"`
	Overpaid string `json:"overpaid"`
}

type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
