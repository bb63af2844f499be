/*
Package rent implements the rent-accounting reconstruction engine.

PURPOSE:
  Given a tenant's sparse history of property/unit assignments, rent-rate
  changes, electricity-meter readings, and payments, the engine
  deterministically computes, as of any instant, how much rent and utility
  cost was owed for each distinct occupancy interval, how much has been
  paid, and the resulting due/overpaid balance and lifecycle status.

DESIGN PRINCIPLES:
  1. Event-log reconstruction: everything is recomputed from the raw logs
     on every call. No stored running balance is trusted.
  2. Purity: the engine consumes an immutable TenantSnapshot and returns a
     result. Evaluating the same snapshot twice yields identical output.
  3. Precision: decimal.Decimal for every money and meter amount.
  4. Independence: rent and electricity balances never offset one another.

USAGE:
  result, err := rent.Evaluate(snapshot, rent.Today())

SEE ALSO:
  - segment.go:     occupancy-period reconstruction
  - schedule.go:    applicable monthly rent per calendar month
  - proration.go:   partial-month day-count rule
  - allocate.go:    FIFO payment allocation
  - status.go:      lifecycle classification
  - engine.go:      the two entry points
*/
package rent

import "github.com/shopspring/decimal"

// =============================================================================
// IDENTIFIERS
// =============================================================================

type TenantID string
type PropertyID string
type UnitID string

// =============================================================================
// EVENT LOG ENTRIES
// =============================================================================

// AssignmentEvent is one append-only entry of a tenant's assignment
// history, recorded whenever the property/unit assignment changes
// (including to nil on unassignment). Ordered ascending by UpdatedAt.
type AssignmentEvent struct {
	PropertyID *PropertyID
	UnitID     *UnitID
	UpdatedAt  Date
}

// RentChange records a monthly-rent rate taking effect at EffectiveFrom.
// One entry is created at tenancy start and one per rent increase.
// Entries are sorted ascending by EffectiveFrom with at most one change
// per instant, and none before the tenant's StartingDate.
type RentChange struct {
	Amount        decimal.Decimal
	EffectiveFrom Date
}

type PaymentKind string

const (
	PaymentRent        PaymentKind = "rent"
	PaymentElectricity PaymentKind = "electricity"
)

// Payment is an immutable recorded payment. Meter readings are carried on
// electricity payments only.
type Payment struct {
	Amount        decimal.Decimal
	PaidAt        Date
	Kind          PaymentKind
	MeterPrevious *decimal.Decimal
	MeterCurrent  *decimal.Decimal
}

// =============================================================================
// TENANT SNAPSHOT - Engine input
// =============================================================================

// TenantSnapshot is the full event history of one tenant as read from the
// record collaborator. The engine never mutates it.
//
// PropertyID/UnitID are the live assignment (nil when unassigned).
// History, RentChanges and Payments are the raw append-only logs.
type TenantSnapshot struct {
	TenantID TenantID

	PropertyID *PropertyID
	UnitID     *UnitID

	StartingDate *Date
	EndingDate   *Date

	MonthlyRent  decimal.Decimal
	DepositMoney decimal.Decimal

	ElectricityPerUnit *decimal.Decimal
	StartingUnit       *decimal.Decimal
	CurrentUnit        *decimal.Decimal

	RentChanges []RentChange
	History     []AssignmentEvent
	Payments    []Payment
}

// RentPayments returns the rent-kind payments in recorded order.
func (s *TenantSnapshot) RentPayments() []Payment {
	return s.paymentsOfKind(PaymentRent)
}

// ElectricityPayments returns the electricity-kind payments in recorded order.
func (s *TenantSnapshot) ElectricityPayments() []Payment {
	return s.paymentsOfKind(PaymentElectricity)
}

func (s *TenantSnapshot) paymentsOfKind(kind PaymentKind) []Payment {
	var out []Payment
	for _, p := range s.Payments {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// =============================================================================
// TENANCY PERIOD - Derived occupancy interval
// =============================================================================

// TenancyPeriod is a maximal interval during which the tenant occupied a
// single property. Derived by the segmenter, never persisted.
type TenancyPeriod struct {
	PropertyID *PropertyID
	StartDate  Date
	EndDate    Date
}

// SameProperty reports whether both periods reference the same non-nil
// property.
func (p TenancyPeriod) SameProperty(other TenancyPeriod) bool {
	if p.PropertyID == nil || other.PropertyID == nil {
		return false
	}
	return *p.PropertyID == *other.PropertyID
}

// =============================================================================
// STATUS
// =============================================================================

type Status string

const (
	// StatusUnassigned: no property ever assigned and no starting date.
	StatusUnassigned Status = "Unassigned"
	// StatusActive: currently assigned with total due <= 0.
	StatusActive Status = "Active"
	// StatusDue: assigned (or just onboarded) with an outstanding balance
	// or insufficient data to prove otherwise.
	StatusDue Status = "Due"
	// StatusInactive: tenancy explicitly or implicitly ended.
	StatusInactive Status = "Inactive"
)

// =============================================================================
// RESULTS
// =============================================================================

// PeriodResult is the billing outcome for one occupancy period.
type PeriodResult struct {
	PropertyID *PropertyID
	StartDate  Date
	EndDate    Date

	ExpectedRent        decimal.Decimal
	ExpectedElectricity decimal.Decimal
	PaidRent            decimal.Decimal
	PaidElectricity     decimal.Decimal

	RentDue             decimal.Decimal
	RentOverpaid        decimal.Decimal
	ElectricityDue      decimal.Decimal
	ElectricityOverpaid decimal.Decimal
}

// Due is the period's combined outstanding amount.
func (r PeriodResult) Due() decimal.Decimal {
	return r.RentDue.Add(r.ElectricityDue)
}

// Overpaid is the period's combined overpayment.
func (r PeriodResult) Overpaid() decimal.Decimal {
	return r.RentOverpaid.Add(r.ElectricityOverpaid)
}

// BillingResult is the aggregate outcome for one tenant.
type BillingResult struct {
	Status Status

	Due           decimal.Decimal
	Overpaid      decimal.Decimal
	DueAmountDate *Date // evaluation instant when Due > 0, else nil

	TotalPaid            decimal.Decimal
	TotalExpectedRent    decimal.Decimal
	TotalElectricityCost decimal.Decimal

	RentDue             decimal.Decimal
	ElectricityDue      decimal.Decimal
	RentOverpaid        decimal.Decimal
	ElectricityOverpaid decimal.Decimal

	TotalRentPaid        decimal.Decimal
	TotalElectricityPaid decimal.Decimal

	Periods []PeriodResult
}
