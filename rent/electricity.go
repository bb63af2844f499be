/*
electricity.go - Utility cost from meter-reading deltas

The meter is physically tied to the unit the tenant currently occupies, so
the cost is never apportioned across historical moves: the live-property
period carries the whole expectation.
*/
package rent

import "github.com/shopspring/decimal"

// ElectricityCost returns the utility charge for the snapshot: the meter
// delta times the per-unit rate when the rate and both readings are
// present and the current reading has not gone backwards, zero otherwise.
func ElectricityCost(s *TenantSnapshot) decimal.Decimal {
	if s.ElectricityPerUnit == nil || s.StartingUnit == nil || s.CurrentUnit == nil {
		return decimal.Zero
	}
	if s.CurrentUnit.LessThan(*s.StartingUnit) {
		return decimal.Zero
	}
	return s.CurrentUnit.Sub(*s.StartingUnit).Mul(*s.ElectricityPerUnit)
}

// electricityPeriodIndex picks the period that carries the electricity
// expectation: the most recent period matching the live property, falling
// back to the most recent period when none matches. Returns -1 with no
// periods.
func electricityPeriodIndex(periods []TenancyPeriod, live *PropertyID) int {
	if len(periods) == 0 {
		return -1
	}
	if live != nil {
		for i := len(periods) - 1; i >= 0; i-- {
			if periods[i].PropertyID != nil && *periods[i].PropertyID == *live {
				return i
			}
		}
	}
	return len(periods) - 1
}
