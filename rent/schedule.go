/*
schedule.go - Rent schedule resolution

The rent schedule is the ordered list of rate-change events applicable to
a tenant over time. Resolution answers "what was the monthly rent for
month M?" and is a pure scan over the sorted changes.
*/
package rent

import (
	"time"

	"github.com/shopspring/decimal"
)

// EffectiveRent returns the monthly rent applicable to the given calendar
// month.
//
// With no recorded changes the tenant's nominal rate applies. Otherwise
// the last change effective on or before the first day of the month wins;
// if every change post-dates the month, the first change's amount is used
// (the tenancy opened at that rate, it was just logged with its own
// effective date).
//
// A change never retroactively un-applies once its month arrives.
func EffectiveRent(year int, month time.Month, changes []RentChange, fallback decimal.Decimal) decimal.Decimal {
	if len(changes) == 0 {
		return fallback
	}

	monthStart := StartOfMonth(year, month)
	applicable := changes[0].Amount
	for _, c := range changes {
		if c.EffectiveFrom.After(monthStart) {
			break
		}
		applicable = c.Amount
	}
	return applicable
}

// validateRentChanges enforces the schedule invariants before any
// computation: ascending order, one change per instant, none preceding
// the tenancy start, no negative rates.
func validateRentChanges(changes []RentChange, startingDate *Date) error {
	for i, c := range changes {
		if c.Amount.IsNegative() {
			return &ValidationError{Field: "rentChanges", Reason: "negative rent amount"}
		}
		if startingDate != nil && c.EffectiveFrom.Before(*startingDate) {
			return &ValidationError{Field: "rentChanges", Reason: "effectiveFrom precedes startingDate"}
		}
		if i > 0 {
			prev := changes[i-1].EffectiveFrom
			if c.EffectiveFrom.Equal(prev) {
				return &ValidationError{Field: "rentChanges", Reason: "duplicate effectiveFrom"}
			}
			if c.EffectiveFrom.Before(prev) {
				return &ValidationError{Field: "rentChanges", Reason: "not sorted by effectiveFrom"}
			}
		}
	}
	return nil
}
