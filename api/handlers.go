/*
handlers.go - HTTP API handlers for the rent accounting engine

PURPOSE:
  Exposes the billing reconstruction engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Tenants:
    GET    /api/tenants                      List tenants for a landlord
    POST   /api/tenants                      Create tenant
    GET    /api/tenants/{id}                 Get tenant record
    PUT    /api/tenants/{id}                 Update tenant (end tenancy etc.)
    POST   /api/tenants/{id}/assign          Assign a unit
    POST   /api/tenants/{id}/unassign        End the current assignment
    POST   /api/tenants/{id}/rent-changes    Append a rent rate change
    GET    /api/tenants/{id}/payments        List payments
    POST   /api/tenants/{id}/payments        Record a payment
    GET    /api/tenants/{id}/billing         Full billing reconstruction
    GET    /api/tenants/{id}/billing/periods Per-property period breakdown

  Properties:
    GET    /api/properties                   List properties for a landlord
    POST   /api/properties                   Create property
    GET    /api/properties/{id}/units        List units
    POST   /api/properties/{id}/units        Create unit

  Portfolio:
    GET    /api/portfolio/billing            Billing rollup for a landlord

  Scenarios:
    GET    /api/scenarios                    List demo scenarios
    POST   /api/scenarios/load               Load a demo scenario
    POST   /api/scenarios/reset              Reset the database

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (store write or rent.Evaluate)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Tenant/property/unit not found
  - 409: Conflict (occupied unit, duplicate rent change)
  - 422: Data inconsistency detected during reconstruction
  - 500: Internal errors

BILLING IS A READ:
  The billing endpoints never write. Every response is recomputed from
  the event logs, so repeating a request cannot change any stored state.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/keystone/rent-engine/rent"
	"github.com/keystone/rent-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
	Log   *zap.Logger

	// Track currently loaded scenario
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Store: store, Log: log}
}

// =============================================================================
// TENANT HANDLERS
// =============================================================================

// ListTenants returns all tenants for the landlord in ?landlord_id=.
func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	landlordID := r.URL.Query().Get("landlord_id")
	if landlordID == "" {
		writeError(w, http.StatusBadRequest, "landlord_id query parameter is required", nil)
		return
	}

	tenants, err := h.Store.ListTenants(r.Context(), landlordID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list tenants", err)
		return
	}

	dtos := make([]TenantDTO, len(tenants))
	for i, t := range tenants {
		dtos[i] = toTenantDTO(t)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetTenant returns a single tenant record.
func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tenant, err := h.Store.GetTenant(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get tenant", err)
		return
	}
	if tenant == nil {
		writeError(w, http.StatusNotFound, "Tenant not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toTenantDTO(*tenant))
}

// CreateTenant creates a new tenant record, unassigned.
func (h *Handler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" || req.LandlordID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "id, landlordId and name are required", nil)
		return
	}

	monthlyRent, err := parseAmount(req.MonthlyRent, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid monthlyRent", err)
		return
	}
	deposit, err := parseAmount(req.DepositMoney, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid depositMoney", err)
		return
	}

	tenant := sqlite.Tenant{
		ID:           req.ID,
		LandlordID:   req.LandlordID,
		Name:         req.Name,
		MonthlyRent:  monthlyRent,
		DepositMoney: deposit,
	}
	if req.ElectricityPerUnit != nil {
		rate, err := parseAmount(*req.ElectricityPerUnit, false)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid electricityPerUnit", err)
			return
		}
		tenant.ElectricityPerUnit = &rate
	}

	if err := h.Store.SaveTenant(r.Context(), tenant); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create tenant", err)
		return
	}

	h.Log.Info("tenant created",
		zap.String("tenant_id", tenant.ID),
		zap.String("landlord_id", tenant.LandlordID))
	writeJSON(w, http.StatusCreated, toTenantDTO(tenant))
}

// UpdateTenant edits mutable tenant fields, most importantly endingDate.
func (h *Handler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tenant, err := h.Store.GetTenant(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get tenant", err)
		return
	}
	if tenant == nil {
		writeError(w, http.StatusNotFound, "Tenant not found", nil)
		return
	}

	var req UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.EndingDate != nil {
		d, err := rent.ParseDate(*req.EndingDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid endingDate format (use YYYY-MM-DD)", err)
			return
		}
		t := d.Time
		tenant.EndingDate = &t
	}
	if req.DepositMoney != nil {
		deposit, err := parseAmount(*req.DepositMoney, false)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid depositMoney", err)
			return
		}
		tenant.DepositMoney = deposit
	}

	if err := h.Store.SaveTenant(r.Context(), *tenant); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update tenant", err)
		return
	}
	writeJSON(w, http.StatusOK, toTenantDTO(*tenant))
}

// AssignUnit moves the tenant into a unit. Exactly one of two racing
// requests for the same vacant unit succeeds; the other gets 409.
func (h *Handler) AssignUnit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req AssignUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	at, err := rent.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	err = h.Store.AssignUnit(r.Context(), id, req.PropertyID, req.UnitID,
		uuid.NewString(), uuid.NewString(), at)
	if err != nil {
		writeDomainError(w, err, "Failed to assign unit")
		return
	}

	h.Log.Info("unit assigned",
		zap.String("tenant_id", id),
		zap.String("property_id", req.PropertyID),
		zap.String("unit_id", req.UnitID),
		zap.String("date", at.String()))
	w.WriteHeader(http.StatusNoContent)
}

// UnassignUnit ends the tenant's current assignment.
func (h *Handler) UnassignUnit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UnassignUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	at, err := rent.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	if err := h.Store.UnassignUnit(r.Context(), id, uuid.NewString(), at); err != nil {
		writeDomainError(w, err, "Failed to unassign unit")
		return
	}

	h.Log.Info("unit unassigned",
		zap.String("tenant_id", id),
		zap.String("date", at.String()))
	w.WriteHeader(http.StatusNoContent)
}

// AddRentChange appends a rate change to the tenant's schedule.
func (h *Handler) AddRentChange(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req RentChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	amount, err := parseAmount(req.Amount, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount", err)
		return
	}
	effectiveFrom, err := rent.ParseDate(req.EffectiveFrom)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid effectiveFrom format (use YYYY-MM-DD)", err)
		return
	}

	if err := h.Store.AddRentChange(r.Context(), uuid.NewString(), id, amount, effectiveFrom); err != nil {
		writeDomainError(w, err, "Failed to add rent change")
		return
	}

	h.Log.Info("rent change recorded",
		zap.String("tenant_id", id),
		zap.String("amount", amount.String()),
		zap.String("effective_from", effectiveFrom.String()))
	w.WriteHeader(http.StatusCreated)
}

// =============================================================================
// PAYMENT HANDLERS
// =============================================================================

// ListPayments returns the tenant's payment log, oldest first.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payments, err := h.Store.ListPayments(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list payments", err)
		return
	}

	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = PaymentDTO{
			Kind:          string(p.Kind),
			Amount:        p.Amount.String(),
			PaidAt:        p.PaidAt.String(),
			MeterPrevious: decimalStrPtr(p.MeterPrevious),
			MeterCurrent:  decimalStrPtr(p.MeterCurrent),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// AddPayment records a rent or electricity payment.
func (h *Handler) AddPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	amount, err := parseAmount(req.Amount, true)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount", err)
		return
	}
	paidAt, err := rent.ParseDate(req.PaidAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid paidAt format (use YYYY-MM-DD)", err)
		return
	}

	payment := rent.Payment{
		Kind:   rent.PaymentKind(req.Kind),
		Amount: amount,
		PaidAt: paidAt,
	}
	if req.MeterPrevious != nil {
		v, err := parseAmount(*req.MeterPrevious, false)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid meterPrevious", err)
			return
		}
		payment.MeterPrevious = &v
	}
	if req.MeterCurrent != nil {
		v, err := parseAmount(*req.MeterCurrent, false)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid meterCurrent", err)
			return
		}
		payment.MeterCurrent = &v
	}

	if err := h.Store.AddPayment(r.Context(), uuid.NewString(), id, payment); err != nil {
		writeDomainError(w, err, "Failed to record payment")
		return
	}

	h.Log.Info("payment recorded",
		zap.String("tenant_id", id),
		zap.String("kind", req.Kind),
		zap.String("amount", amount.String()),
		zap.String("paid_at", paidAt.String()))
	w.WriteHeader(http.StatusCreated)
}

// =============================================================================
// BILLING HANDLERS - pure reads, recomputed on every request
// =============================================================================

// GetBilling reconstructs the tenant's full billing state as of now
// (or ?as_of=YYYY-MM-DD).
func (h *Handler) GetBilling(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snap, now, err := h.loadForBilling(r)
	if err != nil {
		writeDomainError(w, err, "Failed to load tenant")
		return
	}

	result, err := rent.Evaluate(snap, now)
	if err != nil {
		writeDomainError(w, err, "Failed to evaluate billing")
		return
	}

	writeJSON(w, http.StatusOK, toBillingDTO(id, snap, result))
}

// GetBillingPeriods returns the per-property period breakdown.
func (h *Handler) GetBillingPeriods(w http.ResponseWriter, r *http.Request) {
	snap, now, err := h.loadForBilling(r)
	if err != nil {
		writeDomainError(w, err, "Failed to load tenant")
		return
	}

	periods, err := rent.EvaluateByProperty(snap, now)
	if err != nil {
		writeDomainError(w, err, "Failed to evaluate billing")
		return
	}

	dtos := make([]PeriodDTO, len(periods))
	for i, p := range periods {
		dtos[i] = toPeriodDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) loadForBilling(r *http.Request) (*rent.TenantSnapshot, rent.Date, error) {
	id := chi.URLParam(r, "id")

	now := rent.Today()
	if asOf := r.URL.Query().Get("as_of"); asOf != "" {
		d, err := rent.ParseDate(asOf)
		if err != nil {
			return nil, now, &rent.ValidationError{Field: "as_of", Reason: "use YYYY-MM-DD"}
		}
		now = d
	}

	snap, err := h.Store.LoadSnapshot(r.Context(), id)
	if err != nil {
		return nil, now, err
	}
	return snap, now, nil
}

// GetPortfolioBilling evaluates every tenant of the landlord in
// ?landlord_id= and aggregates the result.
func (h *Handler) GetPortfolioBilling(w http.ResponseWriter, r *http.Request) {
	landlordID := r.URL.Query().Get("landlord_id")
	if landlordID == "" {
		writeError(w, http.StatusBadRequest, "landlord_id query parameter is required", nil)
		return
	}

	now := rent.Today()
	if asOf := r.URL.Query().Get("as_of"); asOf != "" {
		d, err := rent.ParseDate(asOf)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid as_of format (use YYYY-MM-DD)", err)
			return
		}
		now = d
	}

	tenants, err := h.Store.ListTenants(r.Context(), landlordID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list tenants", err)
		return
	}

	portfolio := PortfolioDTO{
		LandlordID:  landlordID,
		StatusCount: map[string]int{},
		Tenants:     []TenantBillingRef{},
	}
	totalDue := decimal.Zero
	totalPaid := decimal.Zero

	for _, t := range tenants {
		snap, err := h.Store.LoadSnapshot(r.Context(), t.ID)
		if err != nil {
			writeDomainError(w, err, "Failed to load tenant "+t.ID)
			return
		}
		result, err := rent.Evaluate(snap, now)
		if err != nil {
			writeDomainError(w, err, "Failed to evaluate tenant "+t.ID)
			return
		}

		totalDue = totalDue.Add(result.Due)
		totalPaid = totalPaid.Add(result.TotalPaid)
		portfolio.StatusCount[string(result.Status)]++
		portfolio.Tenants = append(portfolio.Tenants, TenantBillingRef{
			TenantID: t.ID,
			Name:     t.Name,
			Status:   string(result.Status),
			Due:      result.Due.String(),
			Overpaid: result.Overpaid.String(),
		})
	}

	portfolio.TotalDue = totalDue.String()
	portfolio.TotalPaid = totalPaid.String()
	writeJSON(w, http.StatusOK, portfolio)
}

// =============================================================================
// PROPERTY / UNIT HANDLERS
// =============================================================================

func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	landlordID := r.URL.Query().Get("landlord_id")
	if landlordID == "" {
		writeError(w, http.StatusBadRequest, "landlord_id query parameter is required", nil)
		return
	}

	properties, err := h.Store.ListProperties(r.Context(), landlordID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list properties", err)
		return
	}

	dtos := make([]PropertyDTO, len(properties))
	for i, p := range properties {
		dtos[i] = PropertyDTO{ID: p.ID, LandlordID: p.LandlordID, Name: p.Name}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" || req.LandlordID == "" {
		writeError(w, http.StatusBadRequest, "id and landlordId are required", nil)
		return
	}

	p := sqlite.Property{ID: req.ID, LandlordID: req.LandlordID, Name: req.Name}
	if err := h.Store.SaveProperty(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create property", err)
		return
	}
	writeJSON(w, http.StatusCreated, PropertyDTO{ID: p.ID, LandlordID: p.LandlordID, Name: p.Name})
}

func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")

	units, err := h.Store.ListUnits(r.Context(), propertyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list units", err)
		return
	}

	dtos := make([]UnitDTO, len(units))
	for i, u := range units {
		dtos[i] = UnitDTO{
			ID:         u.ID,
			PropertyID: u.PropertyID,
			Label:      u.Label,
			Occupied:   u.Occupied,
			TenantID:   u.TenantID,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")

	var req CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required", nil)
		return
	}

	u := sqlite.Unit{ID: req.ID, PropertyID: propertyID, Label: req.Label}
	if err := h.Store.SaveUnit(r.Context(), u); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create unit", err)
		return
	}
	writeJSON(w, http.StatusCreated, UnitDTO{ID: u.ID, PropertyID: u.PropertyID, Label: u.Label})
}

// =============================================================================
// DTO CONVERSION
// =============================================================================

func toTenantDTO(t sqlite.Tenant) TenantDTO {
	dto := TenantDTO{
		ID:           t.ID,
		LandlordID:   t.LandlordID,
		Name:         t.Name,
		PropertyID:   t.PropertyID,
		UnitID:       t.UnitID,
		MonthlyRent:  t.MonthlyRent.String(),
		DepositMoney: t.DepositMoney.String(),
	}
	if t.StartingDate != nil {
		dto.StartingDate = strPtr(rent.DateOf(*t.StartingDate).String())
	}
	if t.EndingDate != nil {
		dto.EndingDate = strPtr(rent.DateOf(*t.EndingDate).String())
	}
	dto.ElectricityPerUnit = decimalStrPtr(t.ElectricityPerUnit)
	dto.StartingUnit = decimalStrPtr(t.StartingUnit)
	dto.CurrentUnit = decimalStrPtr(t.CurrentUnit)
	return dto
}

func toBillingDTO(tenantID string, snap *rent.TenantSnapshot, result rent.BillingResult) BillingDTO {
	dto := BillingDTO{
		TenantID:             tenantID,
		Status:               string(result.Status),
		Due:                  result.Due.String(),
		Overpaid:             result.Overpaid.String(),
		TotalPaid:            result.TotalPaid.String(),
		TotalExpectedRent:    result.TotalExpectedRent.String(),
		TotalElectricityCost: result.TotalElectricityCost.String(),
		RentDue:              result.RentDue.String(),
		ElectricityDue:       result.ElectricityDue.String(),
		RentOverpaid:         result.RentOverpaid.String(),
		ElectricityOverpaid:  result.ElectricityOverpaid.String(),
		TotalRentPaid:        result.TotalRentPaid.String(),
		TotalElectricityPaid: result.TotalElectricityPaid.String(),
		DepositMoney:         snap.DepositMoney.String(),
		Periods:              make([]PeriodDTO, len(result.Periods)),
	}
	if result.DueAmountDate != nil {
		dto.DueAmountDate = strPtr(result.DueAmountDate.String())
	}
	for i, p := range result.Periods {
		dto.Periods[i] = toPeriodDTO(p)
	}
	return dto
}

func toPeriodDTO(p rent.PeriodResult) PeriodDTO {
	dto := PeriodDTO{
		StartDate:           p.StartDate.String(),
		EndDate:             p.EndDate.String(),
		ExpectedRent:        p.ExpectedRent.String(),
		ExpectedElectricity: p.ExpectedElectricity.String(),
		RentPaid:            p.PaidRent.String(),
		ElectricityPaid:     p.PaidElectricity.String(),
		RentDue:             p.RentDue.String(),
		ElectricityDue:      p.ElectricityDue.String(),
		RentOverpaid:        p.RentOverpaid.String(),
		ElectricityOverpaid: p.ElectricityOverpaid.String(),
	}
	if p.PropertyID != nil {
		dto.PropertyID = strPtr(string(*p.PropertyID))
	}
	return dto
}

// =============================================================================
// HELPERS
// =============================================================================

func parseAmount(s string, requirePositive bool) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if requirePositive && !d.IsPositive() {
		return decimal.Zero, &rent.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if !requirePositive && d.IsNegative() {
		return decimal.Zero, &rent.ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	return d, nil
}

func decimalStrPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func strPtr(s string) *string { return &s }

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps the error taxonomy to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error, message string) {
	switch {
	case rent.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case rent.IsConflict(err):
		writeError(w, http.StatusConflict, message, err)
	case rent.IsValidation(err):
		writeError(w, http.StatusBadRequest, message, err)
	case rent.IsInconsistency(err):
		writeError(w, http.StatusUnprocessableEntity, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
