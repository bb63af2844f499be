/*
spec_test.go - Specification Tests for the Billing Engine

PURPOSE:
  These tests serve as EXECUTABLE SPECIFICATIONS of the system design.
  Each test documents a specific behavior and validates that the
  implementation conforms to it.

ORGANIZATION:
  Tests are grouped by behavior area:
  1. Engine Properties - Purity, idempotency, aggregate consistency
  2. Proration - The full/half/zero step function
  3. Rent Schedule - Rate resolution over time
  4. Segmentation - History to tenancy periods
  5. Payment Allocation - FIFO across periods, pool separation
  6. Electricity - Meter delta costing
  7. Status - Lifecycle classification

READING THESE TESTS:
  Each test has:
  - A descriptive name that states the behavior
  - GIVEN/WHEN/THEN comments explaining the scenario
  - Clear assertions with explanatory messages

These tests are intentionally verbose for documentation purposes.
*/
package rent_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/keystone/rent-engine/rent"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

func day(year int, month time.Month, d int) rent.Date {
	return rent.NewDate(year, month, d)
}

func money(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func moneyPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func propPtr(id string) *rent.PropertyID {
	p := rent.PropertyID(id)
	return &p
}

func unitPtr(id string) *rent.UnitID {
	u := rent.UnitID(id)
	return &u
}

func datePtr(d rent.Date) *rent.Date {
	return &d
}

// assignedTenant is the simplest billable snapshot: one property from
// startingDate, still occupied.
func assignedTenant(monthlyRent int64, start rent.Date) *rent.TenantSnapshot {
	return &rent.TenantSnapshot{
		TenantID:     "tenant-1",
		PropertyID:   propPtr("prop-a"),
		UnitID:       unitPtr("unit-1"),
		StartingDate: datePtr(start),
		MonthlyRent:  money(monthlyRent),
	}
}

func rentPayment(amount int64, paidAt rent.Date) rent.Payment {
	return rent.Payment{Kind: rent.PaymentRent, Amount: money(amount), PaidAt: paidAt}
}

func electricityPayment(amount int64, paidAt rent.Date) rent.Payment {
	return rent.Payment{Kind: rent.PaymentElectricity, Amount: money(amount), PaidAt: paidAt}
}

func mustEvaluate(t *testing.T, s *rent.TenantSnapshot, now rent.Date) rent.BillingResult {
	t.Helper()
	result, err := rent.Evaluate(s, now)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	return result
}

// =============================================================================
// SPEC 1: ENGINE PROPERTIES
// =============================================================================

func TestSpec_Engine_TwoFullMonthsBeforeEvaluationDay(t *testing.T) {
	// GIVEN: startingDate 2024-01-01, monthlyRent 10000, no rent changes,
	//        no payments
	// WHEN: evaluated on 2024-03-01
	// THEN: totalExpectedRent is exactly 20000 (Jan + Feb full months;
	//       March has not elapsed on the morning of March 1st)

	s := assignedTenant(10000, day(2024, time.January, 1))
	result := mustEvaluate(t, s, day(2024, time.March, 1))

	if !result.TotalExpectedRent.Equal(money(20000)) {
		t.Errorf("expected 20000, got %s", result.TotalExpectedRent)
	}
	if !result.Due.Equal(money(20000)) {
		t.Errorf("expected due 20000, got %s", result.Due)
	}
	if result.Status != rent.StatusDue {
		t.Errorf("expected status Due, got %s", result.Status)
	}
}

func TestSpec_Engine_Idempotent_SameInputSameOutput(t *testing.T) {
	// GIVEN: any snapshot
	// WHEN: evaluated twice with the same "now"
	// THEN: results are identical - evaluation reads the event logs and
	//       writes nothing

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.Payments = []rent.Payment{rentPayment(15000, day(2024, time.February, 1))}

	now := day(2024, time.April, 15)
	first := mustEvaluate(t, s, now)
	second := mustEvaluate(t, s, now)

	if !first.Due.Equal(second.Due) {
		t.Errorf("due drifted between evaluations: %s vs %s", first.Due, second.Due)
	}
	if !first.TotalExpectedRent.Equal(second.TotalExpectedRent) {
		t.Errorf("expected rent drifted: %s vs %s", first.TotalExpectedRent, second.TotalExpectedRent)
	}
	if first.Status != second.Status {
		t.Errorf("status drifted: %s vs %s", first.Status, second.Status)
	}
}

func TestSpec_Engine_AggregatesAreConsistent(t *testing.T) {
	// GIVEN: a snapshot with rent and electricity activity
	// THEN: Due = RentDue + ElectricityDue
	//       TotalPaid = TotalRentPaid + TotalElectricityPaid
	//       due and overpaid are never both positive for the same pool

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.ElectricityPerUnit = moneyPtr(8)
	s.StartingUnit = moneyPtr(1000)
	s.CurrentUnit = moneyPtr(1100)
	s.Payments = []rent.Payment{
		rentPayment(12000, day(2024, time.February, 1)),
		electricityPayment(500, day(2024, time.February, 1)),
	}

	result := mustEvaluate(t, s, day(2024, time.March, 1))

	if !result.Due.Equal(result.RentDue.Add(result.ElectricityDue)) {
		t.Error("Due must equal RentDue + ElectricityDue")
	}
	if !result.TotalPaid.Equal(result.TotalRentPaid.Add(result.TotalElectricityPaid)) {
		t.Error("TotalPaid must equal the sum of both pools")
	}
	if result.RentDue.IsPositive() && result.RentOverpaid.IsPositive() {
		t.Error("rent cannot be both due and overpaid")
	}
	if result.ElectricityDue.IsPositive() && result.ElectricityOverpaid.IsPositive() {
		t.Error("electricity cannot be both due and overpaid")
	}
	if result.Due.IsNegative() {
		t.Error("due must never be negative")
	}
}

func TestSpec_Engine_PerPropertyViewMatchesAggregate(t *testing.T) {
	// GIVEN: a tenant with a property move in the history
	// WHEN: computing both the aggregate and the per-property breakdown
	// THEN: period expectations sum to the aggregate expectation - the
	//       two entry points run the identical pipeline

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.PropertyID = propPtr("prop-b")
	s.History = []rent.AssignmentEvent{
		{PropertyID: propPtr("prop-a"), UnitID: unitPtr("unit-1"), UpdatedAt: day(2024, time.January, 1)},
		{PropertyID: propPtr("prop-b"), UnitID: unitPtr("unit-2"), UpdatedAt: day(2024, time.April, 10)},
	}

	now := day(2024, time.June, 1)
	aggregate := mustEvaluate(t, s, now)
	periods, err := rent.EvaluateByProperty(s, now)
	if err != nil {
		t.Fatalf("EvaluateByProperty failed: %v", err)
	}

	sum := decimal.Zero
	for _, p := range periods {
		sum = sum.Add(p.ExpectedRent)
	}
	if !sum.Equal(aggregate.TotalExpectedRent) {
		t.Errorf("period sum %s != aggregate %s", sum, aggregate.TotalExpectedRent)
	}
	if len(periods) != len(aggregate.Periods) {
		t.Errorf("period counts differ: %d vs %d", len(periods), len(aggregate.Periods))
	}
}

func TestSpec_Engine_DueAmountDateIsTheEvaluationInstant(t *testing.T) {
	// GIVEN: a tenant with outstanding rent
	// WHEN: evaluated
	// THEN: dueAmountDate is the evaluation instant, present only while
	//       something is owed

	s := assignedTenant(10000, day(2024, time.January, 1))
	now := day(2024, time.March, 1)

	result := mustEvaluate(t, s, now)
	if result.DueAmountDate == nil {
		t.Fatal("dueAmountDate must be set while due is positive")
	}
	if !result.DueAmountDate.Equal(now) {
		t.Errorf("dueAmountDate should be the evaluation instant, got %s", result.DueAmountDate)
	}

	// Pay it off: the date disappears.
	s.Payments = []rent.Payment{rentPayment(20000, day(2024, time.February, 20))}
	settled := mustEvaluate(t, s, now)
	if settled.DueAmountDate != nil {
		t.Error("dueAmountDate must be nil once nothing is owed")
	}
}

// =============================================================================
// SPEC 2: PRORATION - the full/half/zero step function
// =============================================================================

func TestSpec_Proration_SixteenDaysBillsFullMonth(t *testing.T) {
	// GIVEN: occupancy covering exactly 16 days of January
	// THEN: the full month is billed

	got := rent.MonthlyExpected(
		day(2024, time.January, 1), day(2024, time.January, 31),
		day(2024, time.January, 1), day(2024, time.January, 16),
		day(2024, time.June, 1),
		money(10000))

	if !got.Equal(money(10000)) {
		t.Errorf("16 days must bill full rent, got %s", got)
	}
}

func TestSpec_Proration_FifteenDaysBillsHalfMonth(t *testing.T) {
	// GIVEN: occupancy covering 15 days of January
	// THEN: half the month is billed - the threshold is 16, not "half the
	//       month's days"

	got := rent.MonthlyExpected(
		day(2024, time.January, 1), day(2024, time.January, 31),
		day(2024, time.January, 1), day(2024, time.January, 15),
		day(2024, time.June, 1),
		money(10000))

	if !got.Equal(money(5000)) {
		t.Errorf("15 days must bill half rent, got %s", got)
	}
}

func TestSpec_Proration_SingleDayBillsHalfMonth(t *testing.T) {
	// GIVEN: occupancy covering a single day
	// THEN: half the month is billed - any non-empty overlap below the
	//       threshold costs half

	got := rent.MonthlyExpected(
		day(2024, time.January, 1), day(2024, time.January, 31),
		day(2024, time.January, 31), day(2024, time.January, 31),
		day(2024, time.June, 1),
		money(10000))

	if !got.Equal(money(5000)) {
		t.Errorf("1 day must bill half rent, got %s", got)
	}
}

func TestSpec_Proration_NoOverlapBillsNothing(t *testing.T) {
	// GIVEN: a period that does not touch the month
	// THEN: nothing is billed

	got := rent.MonthlyExpected(
		day(2024, time.January, 1), day(2024, time.January, 31),
		day(2024, time.February, 1), day(2024, time.March, 1),
		day(2024, time.June, 1),
		money(10000))

	if !got.IsZero() {
		t.Errorf("no overlap must bill zero, got %s", got)
	}
}

func TestSpec_Proration_EvaluationDayHasNotElapsed(t *testing.T) {
	// GIVEN: a tenant occupying all of March
	// WHEN: evaluated on March 16
	// THEN: only March 1-15 have elapsed, so March bills half - the
	//       evaluation day itself is never billed

	got := rent.MonthlyExpected(
		day(2024, time.March, 1), day(2024, time.March, 31),
		day(2024, time.January, 1), day(2024, time.December, 31),
		day(2024, time.March, 16),
		money(10000))

	if !got.Equal(money(5000)) {
		t.Errorf("15 elapsed days must bill half rent, got %s", got)
	}

	// One day later the threshold is crossed.
	crossed := rent.MonthlyExpected(
		day(2024, time.March, 1), day(2024, time.March, 31),
		day(2024, time.January, 1), day(2024, time.December, 31),
		day(2024, time.March, 17),
		money(10000))
	if !crossed.Equal(money(10000)) {
		t.Errorf("16 elapsed days must bill full rent, got %s", crossed)
	}
}

func TestSpec_Proration_ShortMonthFullyOccupiedBillsFull(t *testing.T) {
	// GIVEN: February 2021 (28 days) occupied in full
	// THEN: the full month is billed via the daysInMonth branch

	got := rent.MonthlyExpected(
		day(2021, time.February, 1), day(2021, time.February, 28),
		day(2021, time.January, 1), day(2021, time.December, 31),
		day(2021, time.June, 1),
		money(10000))

	if !got.Equal(money(10000)) {
		t.Errorf("full short month must bill full rent, got %s", got)
	}
}

// =============================================================================
// SPEC 3: RENT SCHEDULE
// =============================================================================

func TestSpec_Schedule_RateChangeResolvesPerMonth(t *testing.T) {
	// GIVEN: rentChanges = [{1000, 2024-01-01}, {1500, 2024-03-01}]
	// THEN: February resolves to 1000 and March to 1500

	changes := []rent.RentChange{
		{Amount: money(1000), EffectiveFrom: day(2024, time.January, 1)},
		{Amount: money(1500), EffectiveFrom: day(2024, time.March, 1)},
	}

	feb := rent.EffectiveRent(2024, time.February, changes, money(9999))
	if !feb.Equal(money(1000)) {
		t.Errorf("February must resolve to 1000, got %s", feb)
	}

	mar := rent.EffectiveRent(2024, time.March, changes, money(9999))
	if !mar.Equal(money(1500)) {
		t.Errorf("March must resolve to 1500, got %s", mar)
	}
}

func TestSpec_Schedule_NoChangesFallsBackToNominalRate(t *testing.T) {
	// GIVEN: an empty schedule
	// THEN: the tenant's nominal monthly rent applies

	got := rent.EffectiveRent(2024, time.May, nil, money(7000))
	if !got.Equal(money(7000)) {
		t.Errorf("empty schedule must fall back to nominal rate, got %s", got)
	}
}

func TestSpec_Schedule_MonthBeforeFirstChangeUsesFirstChangeRate(t *testing.T) {
	// GIVEN: the first change post-dates the month being resolved
	// THEN: the first change's amount applies - the tenancy opened at
	//       that rate, it was just logged with its own effective date

	changes := []rent.RentChange{
		{Amount: money(1200), EffectiveFrom: day(2024, time.March, 15)},
	}

	got := rent.EffectiveRent(2024, time.January, changes, money(9999))
	if !got.Equal(money(1200)) {
		t.Errorf("pre-schedule month must use the first change's rate, got %s", got)
	}
}

func TestSpec_Schedule_MidMonthChangeAppliesNextMonth(t *testing.T) {
	// GIVEN: a change effective 2024-03-15
	// THEN: March (whose first day precedes the change) keeps the old
	//       rate; April gets the new one

	changes := []rent.RentChange{
		{Amount: money(1000), EffectiveFrom: day(2024, time.January, 1)},
		{Amount: money(1500), EffectiveFrom: day(2024, time.March, 15)},
	}

	mar := rent.EffectiveRent(2024, time.March, changes, money(9999))
	if !mar.Equal(money(1000)) {
		t.Errorf("March must keep the old rate, got %s", mar)
	}

	apr := rent.EffectiveRent(2024, time.April, changes, money(9999))
	if !apr.Equal(money(1500)) {
		t.Errorf("April must get the new rate, got %s", apr)
	}
}

// =============================================================================
// SPEC 4: SEGMENTATION
// =============================================================================

func TestSpec_Segments_NoHistoryYieldsSinglePeriod(t *testing.T) {
	// GIVEN: an assigned tenant with an empty history log
	// THEN: one period spans startingDate to now under the live property

	s := assignedTenant(10000, day(2024, time.January, 1))
	now := day(2024, time.June, 1)

	periods := rent.Segments(s, now)
	if len(periods) != 1 {
		t.Fatalf("expected 1 period, got %d", len(periods))
	}
	if !periods[0].StartDate.Equal(day(2024, time.January, 1)) {
		t.Errorf("period must start at startingDate, got %s", periods[0].StartDate)
	}
	if !periods[0].EndDate.Equal(now) {
		t.Errorf("open period must end at now, got %s", periods[0].EndDate)
	}
	if periods[0].PropertyID == nil || *periods[0].PropertyID != "prop-a" {
		t.Error("period must carry the live property")
	}
}

func TestSpec_Segments_MoveSplitsTheSpanAtTheMoveInstant(t *testing.T) {
	// GIVEN: history [A @ Jan 1, B @ Apr 10], live property B
	// THEN: two periods, sharing the Apr 10 boundary

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.PropertyID = propPtr("prop-b")
	s.History = []rent.AssignmentEvent{
		{PropertyID: propPtr("prop-a"), UpdatedAt: day(2024, time.January, 1)},
		{PropertyID: propPtr("prop-b"), UpdatedAt: day(2024, time.April, 10)},
	}
	now := day(2024, time.June, 1)

	periods := rent.Segments(s, now)
	if len(periods) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(periods))
	}
	if !periods[0].EndDate.Equal(day(2024, time.April, 10)) {
		t.Errorf("first period must close at the move, got %s", periods[0].EndDate)
	}
	if !periods[1].StartDate.Equal(day(2024, time.April, 10)) {
		t.Errorf("second period must open at the move, got %s", periods[1].StartDate)
	}
	if !periods[1].EndDate.Equal(now) {
		t.Errorf("live period must run to now, got %s", periods[1].EndDate)
	}
}

func TestSpec_Segments_UnassignmentInfersTheEnd(t *testing.T) {
	// GIVEN: history ends with a null assignment and no endingDate
	// THEN: the span ends at the null entry's instant, and the end is
	//       reported as inferred

	s := &rent.TenantSnapshot{
		TenantID:     "tenant-1",
		StartingDate: datePtr(day(2024, time.January, 1)),
		MonthlyRent:  money(10000),
		History: []rent.AssignmentEvent{
			{PropertyID: propPtr("prop-a"), UpdatedAt: day(2024, time.January, 1)},
			{PropertyID: nil, UpdatedAt: day(2024, time.March, 20)},
		},
	}
	now := day(2024, time.June, 1)

	end, inferred := rent.EffectiveEnd(s, now)
	if !inferred {
		t.Error("end must be reported as inferred")
	}
	if !end.Equal(day(2024, time.March, 20)) {
		t.Errorf("end must be the null entry's instant, got %s", end)
	}

	periods := rent.Segments(s, now)
	if len(periods) != 1 {
		t.Fatalf("expected 1 billable period, got %d", len(periods))
	}
	if !periods[0].EndDate.Equal(day(2024, time.March, 20)) {
		t.Errorf("billable period must close at the unassignment, got %s", periods[0].EndDate)
	}
}

func TestSpec_Segments_ExplicitEndingDateWins(t *testing.T) {
	// GIVEN: an endingDate before now
	// THEN: the span is clipped to it and the end is not "inferred"

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.EndingDate = datePtr(day(2024, time.March, 31))
	now := day(2024, time.June, 1)

	end, inferred := rent.EffectiveEnd(s, now)
	if inferred {
		t.Error("explicit endingDate is not an inferred end")
	}
	if !end.Equal(day(2024, time.March, 31)) {
		t.Errorf("end must be the endingDate, got %s", end)
	}
}

func TestSpec_Segments_SameDayMoveArtifactsAreDropped(t *testing.T) {
	// GIVEN: two assignment changes logged on the same day
	// THEN: the zero-duration period is dropped - a moment of occupancy
	//       must not bill half a month

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.PropertyID = propPtr("prop-c")
	s.History = []rent.AssignmentEvent{
		{PropertyID: propPtr("prop-a"), UpdatedAt: day(2024, time.January, 1)},
		{PropertyID: propPtr("prop-b"), UpdatedAt: day(2024, time.March, 5)},
		{PropertyID: propPtr("prop-c"), UpdatedAt: day(2024, time.March, 5)},
	}
	now := day(2024, time.June, 1)

	periods := rent.Segments(s, now)
	for _, p := range periods {
		if p.PropertyID != nil && *p.PropertyID == "prop-b" {
			t.Error("zero-duration period for prop-b must be dropped")
		}
	}
	if len(periods) != 2 {
		t.Fatalf("expected 2 periods after dropping the artifact, got %d", len(periods))
	}
}

func TestSpec_Segments_AdjacentSamePropertyPeriodsMerge(t *testing.T) {
	// GIVEN: consecutive history entries under the same property (a
	//        unit-only move)
	// THEN: they merge into one period

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.History = []rent.AssignmentEvent{
		{PropertyID: propPtr("prop-a"), UnitID: unitPtr("unit-1"), UpdatedAt: day(2024, time.January, 1)},
		{PropertyID: propPtr("prop-a"), UnitID: unitPtr("unit-2"), UpdatedAt: day(2024, time.March, 10)},
	}
	now := day(2024, time.June, 1)

	periods := rent.Segments(s, now)
	if len(periods) != 1 {
		t.Fatalf("same-property periods must merge, got %d periods", len(periods))
	}
	if !periods[0].StartDate.Equal(day(2024, time.January, 1)) || !periods[0].EndDate.Equal(now) {
		t.Errorf("merged period must span the whole tenancy, got [%s, %s]",
			periods[0].StartDate, periods[0].EndDate)
	}
}

// =============================================================================
// SPEC 5: PAYMENT ALLOCATION
// =============================================================================

func TestSpec_Allocation_OldestPeriodIsCreditedFirst(t *testing.T) {
	// GIVEN: a move from prop-a (Jan 1 - Apr 10) to prop-b, monthly rent
	//        1000, a single rent payment of 1200
	// WHEN: evaluated
	// THEN: prop-a's period absorbs the full 1200 before prop-b sees a
	//       single unit - FIFO by period order, not by payment date

	s := assignedTenant(1000, day(2024, time.January, 1))
	s.PropertyID = propPtr("prop-b")
	s.History = []rent.AssignmentEvent{
		{PropertyID: propPtr("prop-a"), UpdatedAt: day(2024, time.January, 1)},
		{PropertyID: propPtr("prop-b"), UpdatedAt: day(2024, time.April, 10)},
	}
	s.Payments = []rent.Payment{rentPayment(1200, day(2024, time.May, 1))}

	result := mustEvaluate(t, s, day(2024, time.June, 1))
	if len(result.Periods) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(result.Periods))
	}

	first := result.Periods[0]
	second := result.Periods[1]

	if !first.PaidRent.Equal(money(1200)) {
		t.Errorf("oldest period must absorb the whole payment, got %s", first.PaidRent)
	}
	if !second.PaidRent.IsZero() {
		t.Errorf("newer period must receive nothing, got %s", second.PaidRent)
	}
}

func TestSpec_Allocation_OverflowSpillsForward(t *testing.T) {
	// GIVEN: the same move, but a payment exceeding prop-a's expectation
	// THEN: the overflow credits prop-b's period

	s := assignedTenant(1000, day(2024, time.January, 1))
	s.PropertyID = propPtr("prop-b")
	s.History = []rent.AssignmentEvent{
		{PropertyID: propPtr("prop-a"), UpdatedAt: day(2024, time.January, 1)},
		{PropertyID: propPtr("prop-b"), UpdatedAt: day(2024, time.April, 10)},
	}
	s.Payments = []rent.Payment{rentPayment(5000, day(2024, time.May, 1))}

	result := mustEvaluate(t, s, day(2024, time.June, 1))
	first := result.Periods[0]
	second := result.Periods[1]

	if !first.PaidRent.Equal(first.ExpectedRent) {
		t.Errorf("oldest period must be exactly satisfied, got paid %s expected %s",
			first.PaidRent, first.ExpectedRent)
	}
	wantSecond := money(5000).Sub(first.ExpectedRent)
	if !second.PaidRent.Equal(wantSecond) {
		t.Errorf("overflow must credit the next period: want %s, got %s",
			wantSecond, second.PaidRent)
	}
}

func TestSpec_Allocation_SurplusBeyondAllPeriodsIsOverpayment(t *testing.T) {
	// GIVEN: rent payments exceeding every period's expectation
	// THEN: the surplus is rentOverpaid and lands on the most recent
	//       period; nothing is ever owed back as negative due

	s := assignedTenant(1000, day(2024, time.January, 1))
	s.Payments = []rent.Payment{rentPayment(10000, day(2024, time.February, 1))}

	result := mustEvaluate(t, s, day(2024, time.March, 1))

	if !result.RentDue.IsZero() {
		t.Errorf("nothing should be due, got %s", result.RentDue)
	}
	if !result.RentOverpaid.Equal(money(8000)) {
		t.Errorf("expected overpaid 8000, got %s", result.RentOverpaid)
	}
	if result.Due.IsNegative() {
		t.Error("due must never go negative")
	}
}

func TestSpec_Allocation_PoolsNeverOffsetEachOther(t *testing.T) {
	// GIVEN: overpaid rent and underpaid electricity
	// THEN: the rent surplus must NOT reduce the electricity debt

	s := assignedTenant(1000, day(2024, time.January, 1))
	s.ElectricityPerUnit = moneyPtr(8)
	s.StartingUnit = moneyPtr(1000)
	s.CurrentUnit = moneyPtr(1100)
	s.Payments = []rent.Payment{
		rentPayment(10000, day(2024, time.February, 1)), // way over
		electricityPayment(100, day(2024, time.February, 1)),
	}

	result := mustEvaluate(t, s, day(2024, time.March, 1))

	if !result.ElectricityDue.Equal(money(700)) {
		t.Errorf("electricity due must stay 700 regardless of rent surplus, got %s",
			result.ElectricityDue)
	}
	if !result.RentOverpaid.IsPositive() {
		t.Error("rent pool must show its surplus")
	}
}

// =============================================================================
// SPEC 6: ELECTRICITY
// =============================================================================

func TestSpec_Electricity_MeterDeltaTimesRate(t *testing.T) {
	// GIVEN: currentUnit = startingUnit + 100, rate 8
	// THEN: totalElectricityCost = 800; paying 500 leaves 300 due

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.ElectricityPerUnit = moneyPtr(8)
	s.StartingUnit = moneyPtr(1000)
	s.CurrentUnit = moneyPtr(1100)
	s.Payments = []rent.Payment{electricityPayment(500, day(2024, time.February, 1))}

	result := mustEvaluate(t, s, day(2024, time.March, 1))

	if !result.TotalElectricityCost.Equal(money(800)) {
		t.Errorf("expected cost 800, got %s", result.TotalElectricityCost)
	}
	if !result.ElectricityDue.Equal(money(300)) {
		t.Errorf("expected electricity due 300, got %s", result.ElectricityDue)
	}
}

func TestSpec_Electricity_MissingMeterDataCostsNothing(t *testing.T) {
	// GIVEN: no meter configuration
	// THEN: the electricity cost is zero, not an error

	s := assignedTenant(10000, day(2024, time.January, 1))
	if !rent.ElectricityCost(s).IsZero() {
		t.Error("missing meter data must cost zero")
	}

	// Rate without readings is equally zero.
	s.ElectricityPerUnit = moneyPtr(8)
	if !rent.ElectricityCost(s).IsZero() {
		t.Error("rate without readings must cost zero")
	}
}

func TestSpec_Electricity_BackwardsReadingCostsNothing(t *testing.T) {
	// GIVEN: currentUnit below startingUnit (meter swap, bad entry)
	// THEN: the engine bills zero rather than a negative charge; the
	//       write path is responsible for rejecting such readings

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.ElectricityPerUnit = moneyPtr(8)
	s.StartingUnit = moneyPtr(1100)
	s.CurrentUnit = moneyPtr(1000)

	if !rent.ElectricityCost(s).IsZero() {
		t.Error("backwards reading must cost zero")
	}
}

func TestSpec_Electricity_ChargedToTheLivePropertyPeriod(t *testing.T) {
	// GIVEN: a move from prop-a to prop-b with metered electricity
	// THEN: the whole electricity expectation sits on prop-b's period -
	//       the meter travels with the current unit

	s := assignedTenant(1000, day(2024, time.January, 1))
	s.PropertyID = propPtr("prop-b")
	s.History = []rent.AssignmentEvent{
		{PropertyID: propPtr("prop-a"), UpdatedAt: day(2024, time.January, 1)},
		{PropertyID: propPtr("prop-b"), UpdatedAt: day(2024, time.April, 10)},
	}
	s.ElectricityPerUnit = moneyPtr(8)
	s.StartingUnit = moneyPtr(1000)
	s.CurrentUnit = moneyPtr(1100)

	result := mustEvaluate(t, s, day(2024, time.June, 1))
	if len(result.Periods) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(result.Periods))
	}
	if !result.Periods[0].ExpectedElectricity.IsZero() {
		t.Error("historical period must carry no electricity expectation")
	}
	if !result.Periods[1].ExpectedElectricity.Equal(money(800)) {
		t.Errorf("live period must carry the full 800, got %s",
			result.Periods[1].ExpectedElectricity)
	}
}

// =============================================================================
// SPEC 7: STATUS
// =============================================================================

func TestSpec_Status_EndedTenancyIsInactiveEvenWhenSettled(t *testing.T) {
	// GIVEN: endingDate set and every month paid
	// THEN: status is Inactive, not Active - a closed tenancy never
	//       reactivates by being solvent

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.EndingDate = datePtr(day(2024, time.March, 31))
	s.Payments = []rent.Payment{rentPayment(30000, day(2024, time.March, 31))}

	result := mustEvaluate(t, s, day(2024, time.May, 1))
	if !result.Due.IsZero() {
		t.Fatalf("setup error: expected zero due, got %s", result.Due)
	}
	if result.Status != rent.StatusInactive {
		t.Errorf("expected Inactive, got %s", result.Status)
	}
}

func TestSpec_Status_NeverAssignedIsUnassigned(t *testing.T) {
	// GIVEN: a tenant record with no assignment and no starting date
	// THEN: status is Unassigned and nothing is billed

	s := &rent.TenantSnapshot{TenantID: "tenant-1", MonthlyRent: money(10000)}

	result := mustEvaluate(t, s, day(2024, time.June, 1))
	if result.Status != rent.StatusUnassigned {
		t.Errorf("expected Unassigned, got %s", result.Status)
	}
	if !result.TotalExpectedRent.IsZero() {
		t.Errorf("unassigned tenant must owe nothing, got %s", result.TotalExpectedRent)
	}
}

func TestSpec_Status_SettledAndOccupiedIsActive(t *testing.T) {
	// GIVEN: an occupied tenant fully paid up
	// THEN: status is Active

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.Payments = []rent.Payment{rentPayment(20000, day(2024, time.February, 25))}

	result := mustEvaluate(t, s, day(2024, time.March, 1))
	if result.Status != rent.StatusActive {
		t.Errorf("expected Active, got %s", result.Status)
	}
}

func TestSpec_Status_OutstandingBalanceIsDue(t *testing.T) {
	// GIVEN: an occupied tenant with partial payment
	// THEN: status is Due

	s := assignedTenant(10000, day(2024, time.January, 1))
	s.Payments = []rent.Payment{rentPayment(15000, day(2024, time.February, 25))}

	result := mustEvaluate(t, s, day(2024, time.March, 1))
	if result.Status != rent.StatusDue {
		t.Errorf("expected Due, got %s", result.Status)
	}
}

func TestSpec_Status_InferredEndIsInactive(t *testing.T) {
	// GIVEN: history ends with a null assignment, no explicit endingDate
	// THEN: status is Inactive - the unassignment closed the tenancy

	s := &rent.TenantSnapshot{
		TenantID:     "tenant-1",
		StartingDate: datePtr(day(2024, time.January, 1)),
		MonthlyRent:  money(10000),
		History: []rent.AssignmentEvent{
			{PropertyID: propPtr("prop-a"), UpdatedAt: day(2024, time.January, 1)},
			{PropertyID: nil, UpdatedAt: day(2024, time.March, 20)},
		},
		Payments: []rent.Payment{rentPayment(30000, day(2024, time.March, 20))},
	}

	result := mustEvaluate(t, s, day(2024, time.June, 1))
	if result.Status != rent.StatusInactive {
		t.Errorf("expected Inactive, got %s", result.Status)
	}
}
