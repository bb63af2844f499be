/*
proration.go - Partial-month rent proration

Proration here is deliberately NOT linear. Occupancy past mid-month bills
in full; anything shorter but non-empty bills at half; an empty overlap
bills nothing. This is a business rule, not an approximation; do not
replace it with days/daysInMonth arithmetic.
*/
package rent

import "github.com/shopspring/decimal"

// fullMonthDayThreshold is the inclusive day count at which a partial
// month bills as a full month.
const fullMonthDayThreshold = 16

var two = decimal.NewFromInt(2)

// MonthlyExpected returns the rent owed for one calendar month of an
// occupancy period.
//
// The month is clipped to the intersection with [periodStart, periodEnd]
// and with the days elapsed before now. The evaluation day itself and
// everything after it have not elapsed and are never billed. The clipped
// overlap is counted in inclusive days:
//
//	days >= daysInMonth -> full rent
//	days >= 16          -> full rent
//	days >= 1           -> half rent
//	otherwise           -> zero
//
// Explicit period boundaries (start date, termination date) are inclusive
// days; only the now-boundary is exclusive.
func MonthlyExpected(monthStart, monthEnd, periodStart, periodEnd, now Date, fullRent decimal.Decimal) decimal.Decimal {
	elapsed := now.AddDays(-1)

	from := monthStart.Max(periodStart)
	to := monthEnd.Min(periodEnd).Min(elapsed)

	days := InclusiveDays(from, to)
	switch {
	case days >= DaysInMonth(monthStart.Year(), monthStart.Month()):
		return fullRent
	case days >= fullMonthDayThreshold:
		return fullRent
	case days >= 1:
		return fullRent.Div(two)
	default:
		return decimal.Zero
	}
}

// expectedRentForPeriod walks every calendar month touched by the period
// and sums the prorated, schedule-resolved rent. The first month (the one
// containing the period start) and the last (containing the period end or
// "now") go through the same day-count rule.
func expectedRentForPeriod(period TenancyPeriod, now Date, changes []RentChange, fallback decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	if period.StartDate.After(now) {
		return total
	}

	cursor := StartOfMonth(period.StartDate.Year(), period.StartDate.Month())
	end := period.EndDate.Min(now)

	for cursor.BeforeOrEqual(end) {
		monthStart := cursor
		monthEnd := EndOfMonth(cursor.Year(), cursor.Month())

		full := EffectiveRent(cursor.Year(), cursor.Month(), changes, fallback)
		total = total.Add(MonthlyExpected(monthStart, monthEnd, period.StartDate, period.EndDate, now, full))

		cursor = cursor.AddMonths(1)
	}
	return total
}
