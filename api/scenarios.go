/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built scenarios that populate the database with realistic
	data for testing and demos. Each scenario creates a landlord's
	properties, units, tenants, and the event logs (assignments, rent
	changes, payments) that demonstrate specific billing behaviors.

AVAILABLE SCENARIOS:

	steady-tenant:      Long tenancy, rent fully paid, Active status
	behind-on-rent:     Partial payments leaving a due balance
	mid-month-moves:    Property changes showing proration thresholds
	rate-increase:      Rent change mid-tenancy
	electricity:        Metered electricity on top of rent

HOW SCENARIOS WORK:
 1. Reset database (clear all data)
 2. Create properties and units
 3. Create tenants and assign units (event logs populate automatically)
 4. Append rent changes and payments

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "behind-on-rent"}

NOTE:

	Scenarios reset the database. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: Shared handler context
  - server.go: Route wiring
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/keystone/rent-engine/rent"
	"github.com/keystone/rent-engine/store/sqlite"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

const demoLandlord = "landlord-demo"

var scenarios = []ScenarioDTO{
	{
		ID:          "steady-tenant",
		Name:        "Steady Tenant",
		Description: "Two-year tenancy, rent fully paid every month",
	},
	{
		ID:          "behind-on-rent",
		Name:        "Behind On Rent",
		Description: "Partial payments leaving an outstanding balance",
	},
	{
		ID:          "mid-month-moves",
		Name:        "Mid-Month Moves",
		Description: "Property changes showing the half/full month proration rule",
	},
	{
		ID:          "rate-increase",
		Name:        "Rate Increase",
		Description: "Rent raised mid-tenancy via the rate schedule",
	},
	{
		ID:          "electricity",
		Name:        "Electricity Billing",
		Description: "Metered electricity charged on top of rent",
	},
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetCurrentScenario returns the currently loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	if h.currentScenario == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	for _, s := range scenarios {
		if s.ID == h.currentScenario {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}

	writeJSON(w, http.StatusOK, ScenarioDTO{
		ID:          h.currentScenario,
		Name:        h.currentScenario,
		Description: "Currently loaded scenario",
	})
}

// LoadScenario loads a predefined scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	if err := h.Store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}

	var err error
	switch req.ScenarioID {
	case "steady-tenant":
		err = loadSteadyTenantScenario(ctx, h)
	case "behind-on-rent":
		err = loadBehindOnRentScenario(ctx, h)
	case "mid-month-moves":
		err = loadMidMonthMovesScenario(ctx, h)
	case "rate-increase":
		err = loadRateIncreaseScenario(ctx, h)
	case "electricity":
		err = loadElectricityScenario(ctx, h)
	default:
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Unknown scenario: %s", req.ScenarioID), nil)
		return
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	h.currentScenario = req.ScenarioID
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "loaded",
		"scenario": req.ScenarioID,
	})
}

// ResetDatabase clears all data.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	h.currentScenario = ""
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// =============================================================================
// SCENARIO LOADERS
// =============================================================================

type scenarioBuilder struct {
	ctx   context.Context
	store *sqlite.Store
	err   error
}

func (b *scenarioBuilder) property(id, name string) {
	if b.err != nil {
		return
	}
	b.err = b.store.SaveProperty(b.ctx, sqlite.Property{
		ID: id, LandlordID: demoLandlord, Name: name,
	})
}

func (b *scenarioBuilder) unit(id, propertyID, label string) {
	if b.err != nil {
		return
	}
	b.err = b.store.SaveUnit(b.ctx, sqlite.Unit{ID: id, PropertyID: propertyID, Label: label})
}

func (b *scenarioBuilder) tenant(id, name, monthlyRent, deposit string) {
	if b.err != nil {
		return
	}
	b.err = b.store.SaveTenant(b.ctx, sqlite.Tenant{
		ID:           id,
		LandlordID:   demoLandlord,
		Name:         name,
		MonthlyRent:  dec(monthlyRent),
		DepositMoney: dec(deposit),
	})
}

func (b *scenarioBuilder) tenantWithMeter(id, name, monthlyRent, deposit, perUnit string) {
	if b.err != nil {
		return
	}
	rate := dec(perUnit)
	b.err = b.store.SaveTenant(b.ctx, sqlite.Tenant{
		ID:                 id,
		LandlordID:         demoLandlord,
		Name:               name,
		MonthlyRent:        dec(monthlyRent),
		DepositMoney:       dec(deposit),
		ElectricityPerUnit: &rate,
	})
}

func (b *scenarioBuilder) assign(tenantID, propertyID, unitID, date string) {
	if b.err != nil {
		return
	}
	b.err = b.store.AssignUnit(b.ctx, tenantID, propertyID, unitID,
		uuid.NewString(), uuid.NewString(), day(date))
}

func (b *scenarioBuilder) rentChange(tenantID, amount, effectiveFrom string) {
	if b.err != nil {
		return
	}
	b.err = b.store.AddRentChange(b.ctx, uuid.NewString(), tenantID, dec(amount), day(effectiveFrom))
}

func (b *scenarioBuilder) rentPayment(tenantID, amount, paidAt string) {
	if b.err != nil {
		return
	}
	b.err = b.store.AddPayment(b.ctx, uuid.NewString(), tenantID, rent.Payment{
		Kind:   rent.PaymentRent,
		Amount: dec(amount),
		PaidAt: day(paidAt),
	})
}

func (b *scenarioBuilder) electricityPayment(tenantID, amount, paidAt, meterPrev, meterCurr string) {
	if b.err != nil {
		return
	}
	prev := dec(meterPrev)
	curr := dec(meterCurr)
	b.err = b.store.AddPayment(b.ctx, uuid.NewString(), tenantID, rent.Payment{
		Kind:          rent.PaymentElectricity,
		Amount:        dec(amount),
		PaidAt:        day(paidAt),
		MeterPrevious: &prev,
		MeterCurrent:  &curr,
	})
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func day(s string) rent.Date {
	d, _ := rent.ParseDate(s)
	return d
}

// loadSteadyTenantScenario: long tenancy, every month paid in full.
func loadSteadyTenantScenario(ctx context.Context, h *Handler) error {
	b := &scenarioBuilder{ctx: ctx, store: h.Store}

	b.property("prop-oak", "Oak Street House")
	b.unit("unit-oak-1", "prop-oak", "1A")
	b.tenant("tenant-asha", "Asha Verma", "10000", "20000")
	b.assign("tenant-asha", "prop-oak", "unit-oak-1", "2024-01-01")

	for _, month := range []string{
		"2024-01-05", "2024-02-05", "2024-03-05", "2024-04-05",
		"2024-05-05", "2024-06-05",
	} {
		b.rentPayment("tenant-asha", "10000", month)
	}
	return b.err
}

// loadBehindOnRentScenario: partial payments leaving a balance.
func loadBehindOnRentScenario(ctx context.Context, h *Handler) error {
	b := &scenarioBuilder{ctx: ctx, store: h.Store}

	b.property("prop-elm", "Elm Court")
	b.unit("unit-elm-2", "prop-elm", "2B")
	b.tenant("tenant-raj", "Raj Patel", "12000", "24000")
	b.assign("tenant-raj", "prop-elm", "unit-elm-2", "2024-01-01")

	b.rentPayment("tenant-raj", "12000", "2024-01-03")
	b.rentPayment("tenant-raj", "6000", "2024-02-10")
	return b.err
}

// loadMidMonthMovesScenario: move between properties mid-month. The
// half/full month rule makes the move date matter.
func loadMidMonthMovesScenario(ctx context.Context, h *Handler) error {
	b := &scenarioBuilder{ctx: ctx, store: h.Store}

	b.property("prop-north", "North Block")
	b.property("prop-south", "South Block")
	b.unit("unit-north-1", "prop-north", "N1")
	b.unit("unit-south-1", "prop-south", "S1")
	b.tenant("tenant-mei", "Mei Lin", "8000", "16000")

	b.assign("tenant-mei", "prop-north", "unit-north-1", "2024-01-01")
	b.assign("tenant-mei", "prop-south", "unit-south-1", "2024-03-10")

	b.rentPayment("tenant-mei", "8000", "2024-01-04")
	b.rentPayment("tenant-mei", "8000", "2024-02-04")
	return b.err
}

// loadRateIncreaseScenario: rent raised after six months.
func loadRateIncreaseScenario(ctx context.Context, h *Handler) error {
	b := &scenarioBuilder{ctx: ctx, store: h.Store}

	b.property("prop-hill", "Hillside Flats")
	b.unit("unit-hill-3", "prop-hill", "3C")
	b.tenant("tenant-omar", "Omar Haddad", "9000", "18000")
	b.assign("tenant-omar", "prop-hill", "unit-hill-3", "2024-01-01")

	b.rentChange("tenant-omar", "9500", "2024-07-01")

	for _, month := range []string{
		"2024-01-02", "2024-02-02", "2024-03-02",
		"2024-04-02", "2024-05-02", "2024-06-02",
	} {
		b.rentPayment("tenant-omar", "9000", month)
	}
	b.rentPayment("tenant-omar", "9500", "2024-07-02")
	return b.err
}

// loadElectricityScenario: metered electricity on top of rent.
func loadElectricityScenario(ctx context.Context, h *Handler) error {
	b := &scenarioBuilder{ctx: ctx, store: h.Store}

	b.property("prop-lake", "Lakeview")
	b.unit("unit-lake-1", "prop-lake", "L1")
	b.tenantWithMeter("tenant-zoe", "Zoe Almeida", "11000", "22000", "8")
	b.assign("tenant-zoe", "prop-lake", "unit-lake-1", "2024-01-01")

	b.rentPayment("tenant-zoe", "11000", "2024-01-05")
	b.electricityPayment("tenant-zoe", "400", "2024-02-01", "1000", "1050")
	b.rentPayment("tenant-zoe", "11000", "2024-02-05")
	b.electricityPayment("tenant-zoe", "360", "2024-03-01", "1050", "1095")
	return b.err
}
