/*
status.go - Lifecycle classification

Maps the computed balance and the snapshot's lifecycle flags to a tenant
status. Classification runs after allocation, so "due" here is the final
combined outstanding amount.
*/
package rent

import "github.com/shopspring/decimal"

// Classify returns the tenant status for a snapshot whose combined due
// amount is known. endInferred reports that the effective end date was
// reconstructed from a history entry that nulled the assignment (see
// EffectiveEnd).
func Classify(s *TenantSnapshot, endInferred bool, due decimal.Decimal) Status {
	if neverAssigned(s) && s.StartingDate == nil {
		return StatusUnassigned
	}
	if s.EndingDate != nil || endInferred {
		return StatusInactive
	}
	if s.PropertyID == nil {
		// Onboarded (has a starting date) but nothing to bill against yet.
		return StatusDue
	}
	if due.IsPositive() {
		return StatusDue
	}
	return StatusActive
}

func neverAssigned(s *TenantSnapshot) bool {
	if s.PropertyID != nil {
		return false
	}
	for _, e := range s.History {
		if e.PropertyID != nil {
			return false
		}
	}
	return true
}
