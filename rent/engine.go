/*
engine.go - The two billing entry points

Evaluate computes the single-tenant aggregate result; EvaluateByProperty
returns the per-property overview. Both run the identical segmentation,
proration, and allocation pipeline; divergence between the two call
shapes is a defect, not a feature.

The engine is a pure, synchronous computation over a snapshot of the
tenant's full event history. It holds no state and may be invoked
concurrently on different tenants.
*/
package rent

import "github.com/shopspring/decimal"

// Evaluate reconstructs the billing ledger for one tenant as of now.
//
// Invalid input is rejected before any computation (ErrValidation);
// event logs contradicting the record model abort with
// ErrDataInconsistency rather than producing a partial balance.
func Evaluate(s *TenantSnapshot, now Date) (BillingResult, error) {
	if err := ValidateSnapshot(s); err != nil {
		return BillingResult{}, err
	}

	periods := Segments(s, now)
	_, endInferred := EffectiveEnd(s, now)

	expected := make([]decimal.Decimal, len(periods))
	totalExpectedRent := decimal.Zero
	for i, p := range periods {
		expected[i] = expectedRentForPeriod(p, now, s.RentChanges, s.MonthlyRent)
		totalExpectedRent = totalExpectedRent.Add(expected[i])
	}

	elecCost := ElectricityCost(s)
	elecIdx := electricityPeriodIndex(periods, s.PropertyID)

	alloc := allocate(expected, elecCost, elecIdx, s.RentPayments(), s.ElectricityPayments())

	result := BillingResult{
		TotalExpectedRent:    totalExpectedRent,
		TotalElectricityCost: elecCost,
		TotalRentPaid:        alloc.totalRentPaid,
		TotalElectricityPaid: alloc.totalElectricityPaid,
		TotalPaid:            alloc.totalRentPaid.Add(alloc.totalElectricityPaid),
		RentDue:              positivePart(totalExpectedRent.Sub(alloc.totalRentPaid)),
		RentOverpaid:         positivePart(alloc.totalRentPaid.Sub(totalExpectedRent)),
		ElectricityDue:       positivePart(elecCost.Sub(alloc.totalElectricityPaid)),
		ElectricityOverpaid:  positivePart(alloc.totalElectricityPaid.Sub(elecCost)),
		Periods:              make([]PeriodResult, len(periods)),
	}

	for i, p := range periods {
		pr := PeriodResult{
			PropertyID:          p.PropertyID,
			StartDate:           p.StartDate,
			EndDate:             p.EndDate,
			ExpectedRent:        expected[i],
			ExpectedElectricity: decimal.Zero,
			PaidRent:            alloc.paidRent[i],
			PaidElectricity:     alloc.paidElectricity[i],
		}
		if i == elecIdx {
			pr.ExpectedElectricity = elecCost
		}
		pr.RentDue = positivePart(pr.ExpectedRent.Sub(pr.PaidRent))
		pr.RentOverpaid = positivePart(pr.PaidRent.Sub(pr.ExpectedRent))
		pr.ElectricityDue = positivePart(pr.ExpectedElectricity.Sub(pr.PaidElectricity))
		pr.ElectricityOverpaid = positivePart(pr.PaidElectricity.Sub(pr.ExpectedElectricity))
		result.Periods[i] = pr
	}

	result.Due = result.RentDue.Add(result.ElectricityDue)
	result.Overpaid = result.RentOverpaid.Add(result.ElectricityOverpaid)

	if result.Due.IsPositive() {
		// Observation timestamp, not a scheduled due day.
		at := now
		result.DueAmountDate = &at
	}

	result.Status = Classify(s, endInferred, result.Due)
	return result, nil
}

// EvaluateByProperty returns the per-property overview: one result per
// occupancy period, keyed by its property. It is the same computation as
// Evaluate, exposing the period breakdown instead of the aggregate.
func EvaluateByProperty(s *TenantSnapshot, now Date) ([]PeriodResult, error) {
	result, err := Evaluate(s, now)
	if err != nil {
		return nil, err
	}
	return result.Periods, nil
}

// ValidateSnapshot rejects malformed input before computation. It never
// coerces: a snapshot that fails here yields no balance at all.
func ValidateSnapshot(s *TenantSnapshot) error {
	if s == nil {
		return &ValidationError{Field: "snapshot", Reason: "missing"}
	}
	if s.StartingDate == nil && (s.PropertyID != nil || s.UnitID != nil) {
		return &ValidationError{Field: "startingDate", Reason: "required while a unit is assigned"}
	}
	if s.MonthlyRent.IsNegative() {
		return &ValidationError{Field: "monthlyRent", Reason: "negative rate"}
	}
	if s.ElectricityPerUnit != nil && s.ElectricityPerUnit.IsNegative() {
		return &ValidationError{Field: "electricityPerUnit", Reason: "negative rate"}
	}
	if err := validateRentChanges(s.RentChanges, s.StartingDate); err != nil {
		return err
	}
	for i := 1; i < len(s.History); i++ {
		if s.History[i].UpdatedAt.Before(s.History[i-1].UpdatedAt) {
			return &DataInconsistencyError{TenantID: s.TenantID, Reason: "assignment history not ordered by updatedAt"}
		}
	}
	for _, p := range s.Payments {
		if p.Amount.IsNegative() {
			return &DataInconsistencyError{TenantID: s.TenantID, Reason: "payment with negative amount"}
		}
		if p.Kind != PaymentRent && p.Kind != PaymentElectricity {
			return &ValidationError{Field: "payments", Reason: "unknown payment kind"}
		}
	}
	return nil
}
