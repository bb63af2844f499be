/*
allocate.go - FIFO payment allocation

Rent and electricity are independent pools; they must never offset one
another. Rent payments are summed regardless of date and drained into the
periods oldest-first; whatever survives the last period is overpayment on
the most recent one. Electricity has a single expectation (the live
period's), credited with the same exhaust-then-overflow rule.
*/
package rent

import "github.com/shopspring/decimal"

// allocation is the outcome of distributing both payment pools over the
// periods' expectations. Paid/due/overpaid slices are index-aligned with
// the periods passed to allocate.
type allocation struct {
	paidRent            []decimal.Decimal
	paidElectricity     []decimal.Decimal
	rentOverpaid        decimal.Decimal
	electricityOverpaid decimal.Decimal

	totalRentPaid        decimal.Decimal
	totalElectricityPaid decimal.Decimal
}

// allocate distributes the summed rent pool across expectedRent in
// chronological order and the summed electricity pool into the single
// period at elecIdx (-1 when no period carries the meter).
func allocate(expectedRent []decimal.Decimal, expectedElectricity decimal.Decimal, elecIdx int, rentPayments, electricityPayments []Payment) allocation {
	n := len(expectedRent)
	a := allocation{
		paidRent:        make([]decimal.Decimal, n),
		paidElectricity: make([]decimal.Decimal, n),
	}
	for i := 0; i < n; i++ {
		a.paidRent[i] = decimal.Zero
		a.paidElectricity[i] = decimal.Zero
	}

	pool := decimal.Zero
	for _, p := range rentPayments {
		pool = pool.Add(p.Amount)
	}
	a.totalRentPaid = pool

	for i := 0; i < n && pool.IsPositive(); i++ {
		credit := decimal.Min(pool, expectedRent[i])
		a.paidRent[i] = credit
		pool = pool.Sub(credit)
	}
	if pool.IsPositive() {
		// Remainder lands on the most recent period as overpayment.
		if n > 0 {
			a.paidRent[n-1] = a.paidRent[n-1].Add(pool)
		}
		a.rentOverpaid = pool
	}

	elecPool := decimal.Zero
	for _, p := range electricityPayments {
		elecPool = elecPool.Add(p.Amount)
	}
	a.totalElectricityPaid = elecPool

	if elecIdx >= 0 && elecIdx < n {
		a.paidElectricity[elecIdx] = elecPool
		if over := elecPool.Sub(expectedElectricity); over.IsPositive() {
			a.electricityOverpaid = over
		}
	} else if elecPool.IsPositive() {
		a.electricityOverpaid = elecPool
	}

	return a
}

// positivePart returns max(0, d).
func positivePart(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
