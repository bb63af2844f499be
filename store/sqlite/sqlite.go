/*
Package sqlite provides the SQLite-backed record collaborator.

PURPOSE:
  Owns the tenant/property/unit records and the three append-only event
  logs (assignment history, rent changes, payments) the billing engine
  reconstructs balances from. The engine itself never touches storage; it
  consumes the TenantSnapshot this package assembles.

APPEND-ONLY ENFORCEMENT:
  assignment_history, rent_changes and payments have no UPDATE or DELETE
  path. The engine recomputes everything from these logs on every read, so
  no stored running balance exists to get out of sync.

KEY TABLES:
  tenants:            Tenant records with live assignment and meter state
  properties, units:  Landlord inventory
  assignment_history: Immutable log of assignment changes
  rent_changes:       Immutable rent rate schedule
  payments:           Immutable payment log

CONCURRENCY:
  The one real concurrency concern of the system lives here: flipping a
  unit's occupancy flag and appending the history entry happen in a single
  SQL transaction, with the flip done as a compare-and-set
  (UPDATE ... WHERE occupied = 0). Two requests racing for the same
  vacant unit get exactly one success and one rent.ErrUnitOccupied.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/rent.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  snap, err := store.LoadSnapshot(ctx, tenantID)
  result, err := rent.Evaluate(snap, rent.Today())

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - rent/engine.go: The pure evaluation the snapshot feeds
  - api/handlers.go: HTTP surface over this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/keystone/rent-engine/rent"
)

const dateLayout = "2006-01-02"

// Store implements the record collaborator using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: writes are serialized by the mutex anyway, and a
	// ":memory:" database exists per connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS properties (
		id TEXT PRIMARY KEY,
		landlord_id TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_properties_landlord
		ON properties(landlord_id);

	CREATE TABLE IF NOT EXISTS units (
		id TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		label TEXT NOT NULL,
		occupied INTEGER NOT NULL DEFAULT 0,
		tenant_id TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_units_property
		ON units(property_id);

	CREATE TABLE IF NOT EXISTS tenants (
		id TEXT PRIMARY KEY,
		landlord_id TEXT NOT NULL,
		name TEXT NOT NULL,
		property_id TEXT,
		unit_id TEXT,
		starting_date TEXT,
		ending_date TEXT,
		monthly_rent TEXT NOT NULL DEFAULT '0',
		deposit_money TEXT NOT NULL DEFAULT '0',
		electricity_per_unit TEXT,
		starting_unit TEXT,
		current_unit TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tenants_landlord
		ON tenants(landlord_id);

	-- Append-only: one row per assignment change, including moves to null.
	CREATE TABLE IF NOT EXISTS assignment_history (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		property_id TEXT,
		unit_id TEXT,
		updated_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_tenant_date
		ON assignment_history(tenant_id, updated_at);

	-- Append-only. At most one change per effective instant per tenant.
	CREATE TABLE IF NOT EXISTS rent_changes (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		effective_from TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(tenant_id, effective_from)
	);

	CREATE INDEX IF NOT EXISTS idx_rent_changes_tenant
		ON rent_changes(tenant_id, effective_from);

	-- Append-only, immutable once recorded.
	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		amount TEXT NOT NULL,
		paid_at TEXT NOT NULL,
		meter_previous TEXT,
		meter_current TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_payments_tenant_date
		ON payments(tenant_id, paid_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PROPERTY / UNIT RECORDS
// =============================================================================

type Property struct {
	ID         string
	LandlordID string
	Name       string
	CreatedAt  time.Time
}

type Unit struct {
	ID         string
	PropertyID string
	Label      string
	Occupied   bool
	TenantID   string
	CreatedAt  time.Time
}

func (s *Store) SaveProperty(ctx context.Context, p Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO properties (id, landlord_id, name, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name
	`
	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.LandlordID, p.Name, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *Store) GetProperty(ctx context.Context, id string) (*Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Property
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, landlord_id, name, created_at FROM properties WHERE id = ?", id,
	).Scan(&p.ID, &p.LandlordID, &p.Name, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &p, nil
}

func (s *Store) ListProperties(ctx context.Context, landlordID string) ([]Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, landlord_id, name, created_at FROM properties WHERE landlord_id = ? ORDER BY name",
		landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Property
	for rows.Next() {
		var p Property
		var createdAt string
		if err := rows.Scan(&p.ID, &p.LandlordID, &p.Name, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) SaveUnit(ctx context.Context, u Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO units (id, property_id, label, occupied, tenant_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label
	`
	_, err := s.db.ExecContext(ctx, query,
		u.ID, u.PropertyID, u.Label, boolToInt(u.Occupied), nullString(u.TenantID),
		time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *Store) GetUnit(ctx context.Context, id string) (*Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, property_id, label, occupied, tenant_id, created_at FROM units WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	u, err := scanUnit(rows)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) ListUnits(ctx context.Context, propertyID string) ([]Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, property_id, label, occupied, tenant_id, created_at FROM units WHERE property_id = ? ORDER BY label",
		propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUnit(rows *sql.Rows) (Unit, error) {
	var u Unit
	var occupied int
	var tenantID sql.NullString
	var createdAt string
	if err := rows.Scan(&u.ID, &u.PropertyID, &u.Label, &occupied, &tenantID, &createdAt); err != nil {
		return u, err
	}
	u.Occupied = occupied != 0
	u.TenantID = tenantID.String
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return u, nil
}

// =============================================================================
// TENANT RECORDS
// =============================================================================

// Tenant is the stored tenant record.
type Tenant struct {
	ID                 string
	LandlordID         string
	Name               string
	PropertyID         *string
	UnitID             *string
	StartingDate       *time.Time
	EndingDate         *time.Time
	MonthlyRent        decimal.Decimal
	DepositMoney       decimal.Decimal
	ElectricityPerUnit *decimal.Decimal
	StartingUnit       *decimal.Decimal
	CurrentUnit        *decimal.Decimal
	CreatedAt          time.Time
}

func (s *Store) SaveTenant(ctx context.Context, t Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO tenants
		(id, landlord_id, name, property_id, unit_id, starting_date, ending_date,
		 monthly_rent, deposit_money, electricity_per_unit, starting_unit, current_unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			ending_date = excluded.ending_date,
			monthly_rent = excluded.monthly_rent,
			deposit_money = excluded.deposit_money,
			electricity_per_unit = excluded.electricity_per_unit
	`
	_, err := s.db.ExecContext(ctx, query,
		t.ID, t.LandlordID, t.Name,
		nullStringPtr(t.PropertyID), nullStringPtr(t.UnitID),
		nullDate(t.StartingDate), nullDate(t.EndingDate),
		t.MonthlyRent.String(), t.DepositMoney.String(),
		nullDecimal(t.ElectricityPerUnit), nullDecimal(t.StartingUnit), nullDecimal(t.CurrentUnit),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetTenant(ctx context.Context, id string) (*Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getTenant(ctx, s.db, id)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) getTenant(ctx context.Context, db querier, id string) (*Tenant, error) {
	var (
		t                                       Tenant
		propertyID, unitID                      sql.NullString
		startingDate, endingDate                sql.NullString
		monthlyRent, depositMoney               string
		electricityPerUnit, startingU, currentU sql.NullString
		createdAt                               string
	)

	err := db.QueryRowContext(ctx, `
		SELECT id, landlord_id, name, property_id, unit_id, starting_date, ending_date,
		       monthly_rent, deposit_money, electricity_per_unit, starting_unit, current_unit, created_at
		FROM tenants WHERE id = ?`, id,
	).Scan(&t.ID, &t.LandlordID, &t.Name, &propertyID, &unitID, &startingDate, &endingDate,
		&monthlyRent, &depositMoney, &electricityPerUnit, &startingU, &currentU, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t.PropertyID = strPtrFromNull(propertyID)
	t.UnitID = strPtrFromNull(unitID)
	t.StartingDate = datePtrFromNull(startingDate)
	t.EndingDate = datePtrFromNull(endingDate)
	t.MonthlyRent = mustDecimal(monthlyRent)
	t.DepositMoney = mustDecimal(depositMoney)
	t.ElectricityPerUnit = decimalPtrFromNull(electricityPerUnit)
	t.StartingUnit = decimalPtrFromNull(startingU)
	t.CurrentUnit = decimalPtrFromNull(currentU)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &t, nil
}

func (s *Store) ListTenants(ctx context.Context, landlordID string) ([]Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM tenants WHERE landlord_id = ? ORDER BY name", landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]Tenant, 0, len(ids))
	for _, id := range ids {
		t, err := s.getTenant(ctx, s.db, id)
		if err != nil {
			return nil, err
		}
		if t != nil {
			out = append(out, *t)
		}
	}
	return out, nil
}

// =============================================================================
// ASSIGNMENT - the atomic occupancy transition
// =============================================================================

// AssignUnit moves a tenant into a vacant unit as of the given date.
//
// The occupancy flip, the tenant update, and the history append happen in
// one SQL transaction; the flip is a compare-and-set, so concurrent
// assignments to the same unit resolve to one winner and one
// rent.ErrUnitOccupied. The first assignment also pins the tenant's
// starting date and opens the rent schedule at the current nominal rate.
func (s *Store) AssignUnit(ctx context.Context, tenantID, propertyID, unitID, historyID, rentChangeID string, at rent.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tenant, err := s.getTenant(ctx, tx, tenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return rent.ErrTenantNotFound
	}

	var unitProperty string
	err = tx.QueryRowContext(ctx, "SELECT property_id FROM units WHERE id = ?", unitID).Scan(&unitProperty)
	if err == sql.ErrNoRows {
		return rent.ErrUnitNotFound
	}
	if err != nil {
		return err
	}
	if unitProperty != propertyID {
		return &rent.DataInconsistencyError{
			TenantID: rent.TenantID(tenantID),
			Reason:   "unit does not belong to property",
		}
	}

	// Compare-and-set: only a vacant unit can be taken.
	res, err := tx.ExecContext(ctx,
		"UPDATE units SET occupied = 1, tenant_id = ? WHERE id = ? AND occupied = 0",
		tenantID, unitID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return rent.ErrUnitOccupied
	}

	// Free the unit the tenant is moving out of.
	if tenant.UnitID != nil {
		if _, err := tx.ExecContext(ctx,
			"UPDATE units SET occupied = 0, tenant_id = NULL WHERE id = ?", *tenant.UnitID); err != nil {
			return err
		}
	}

	firstAssignment := tenant.StartingDate == nil
	if _, err := tx.ExecContext(ctx, `
		UPDATE tenants SET property_id = ?, unit_id = ?,
			starting_date = COALESCE(starting_date, ?)
		WHERE id = ?`,
		propertyID, unitID, at.String(), tenantID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO assignment_history (id, tenant_id, property_id, unit_id, updated_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		historyID, tenantID, propertyID, unitID, at.String(),
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	if firstAssignment {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO rent_changes (id, tenant_id, amount, effective_from, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			rentChangeID, tenantID, tenant.MonthlyRent.String(), at.String(),
			time.Now().UTC().Format(time.RFC3339)); err != nil {
			if isUniqueConstraintError(err) {
				return rent.ErrDuplicateRentChange
			}
			return err
		}
	}

	return tx.Commit()
}

// UnassignUnit frees the tenant's unit and appends the null-assignment
// history entry, in one transaction.
func (s *Store) UnassignUnit(ctx context.Context, tenantID, historyID string, at rent.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tenant, err := s.getTenant(ctx, tx, tenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return rent.ErrTenantNotFound
	}

	if tenant.UnitID != nil {
		if _, err := tx.ExecContext(ctx,
			"UPDATE units SET occupied = 0, tenant_id = NULL WHERE id = ?", *tenant.UnitID); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE tenants SET property_id = NULL, unit_id = NULL WHERE id = ?", tenantID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO assignment_history (id, tenant_id, property_id, unit_id, updated_at, created_at)
		VALUES (?, ?, NULL, NULL, ?, ?)`,
		historyID, tenantID, at.String(),
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}

// =============================================================================
// RENT CHANGES (append-only)
// =============================================================================

// AddRentChange appends a rate change and bumps the tenant's nominal rate
// when the change is the most recent one.
func (s *Store) AddRentChange(ctx context.Context, id, tenantID string, amount decimal.Decimal, effectiveFrom rent.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenant, err := s.getTenant(ctx, s.db, tenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return rent.ErrTenantNotFound
	}
	if amount.IsNegative() {
		return &rent.ValidationError{Field: "amount", Reason: "negative rate"}
	}
	if tenant.StartingDate == nil {
		return &rent.ValidationError{Field: "effectiveFrom", Reason: "tenant has no startingDate"}
	}
	if effectiveFrom.Before(rent.DateOf(*tenant.StartingDate)) {
		return &rent.ValidationError{Field: "effectiveFrom", Reason: "precedes startingDate"}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO rent_changes (id, tenant_id, amount, effective_from, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		id, tenantID, amount.String(), effectiveFrom.String(),
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		if isUniqueConstraintError(err) {
			return rent.ErrDuplicateRentChange
		}
		return err
	}

	var latest sql.NullString
	if err := tx.QueryRowContext(ctx,
		"SELECT MAX(effective_from) FROM rent_changes WHERE tenant_id = ?", tenantID,
	).Scan(&latest); err != nil {
		return err
	}
	if latest.Valid && latest.String == effectiveFrom.String() {
		if _, err := tx.ExecContext(ctx,
			"UPDATE tenants SET monthly_rent = ? WHERE id = ?", amount.String(), tenantID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// =============================================================================
// PAYMENTS (append-only)
// =============================================================================

// AddPayment appends a payment. Electricity payments carry the meter
// reading pair; a current reading below the last recorded one is rejected
// before anything is written.
func (s *Store) AddPayment(ctx context.Context, id, tenantID string, p rent.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenant, err := s.getTenant(ctx, s.db, tenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return rent.ErrTenantNotFound
	}
	if !p.Amount.IsPositive() {
		return &rent.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if p.Kind != rent.PaymentRent && p.Kind != rent.PaymentElectricity {
		return &rent.ValidationError{Field: "kind", Reason: "must be rent or electricity"}
	}
	if p.Kind == rent.PaymentElectricity && p.MeterCurrent != nil {
		if tenant.CurrentUnit != nil && p.MeterCurrent.LessThan(*tenant.CurrentUnit) {
			return &rent.ValidationError{Field: "meterCurrent", Reason: "below last recorded reading"}
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO payments (id, tenant_id, kind, amount, paid_at, meter_previous, meter_current, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, tenantID, string(p.Kind), p.Amount.String(), p.PaidAt.String(),
		nullDecimal(p.MeterPrevious), nullDecimal(p.MeterCurrent),
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	if p.Kind == rent.PaymentElectricity && p.MeterCurrent != nil {
		if _, err := tx.ExecContext(ctx, `
			UPDATE tenants SET current_unit = ?,
				starting_unit = COALESCE(starting_unit, ?)
			WHERE id = ?`,
			p.MeterCurrent.String(), nullDecimal(p.MeterPrevious), tenantID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) ListPayments(ctx context.Context, tenantID string) ([]rent.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadPayments(ctx, tenantID)
}

// =============================================================================
// SNAPSHOT ASSEMBLY
// =============================================================================

// LoadSnapshot assembles the engine's input from the record and the three
// event logs. History rows referencing a property outside the tenant's
// landlord abort with a DataInconsistencyError rather than feeding the
// engine a misleading span.
func (s *Store) LoadSnapshot(ctx context.Context, tenantID string) (*rent.TenantSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tenant, err := s.getTenant(ctx, s.db, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, rent.ErrTenantNotFound
	}

	snap := &rent.TenantSnapshot{
		TenantID:           rent.TenantID(tenant.ID),
		MonthlyRent:        tenant.MonthlyRent,
		DepositMoney:       tenant.DepositMoney,
		ElectricityPerUnit: tenant.ElectricityPerUnit,
		StartingUnit:       tenant.StartingUnit,
		CurrentUnit:        tenant.CurrentUnit,
	}
	if tenant.PropertyID != nil {
		pid := rent.PropertyID(*tenant.PropertyID)
		snap.PropertyID = &pid
	}
	if tenant.UnitID != nil {
		uid := rent.UnitID(*tenant.UnitID)
		snap.UnitID = &uid
	}
	if tenant.StartingDate != nil {
		d := rent.DateOf(*tenant.StartingDate)
		snap.StartingDate = &d
	}
	if tenant.EndingDate != nil {
		d := rent.DateOf(*tenant.EndingDate)
		snap.EndingDate = &d
	}

	if snap.History, err = s.loadHistory(ctx, tenant); err != nil {
		return nil, err
	}
	if snap.RentChanges, err = s.loadRentChanges(ctx, tenantID); err != nil {
		return nil, err
	}
	if snap.Payments, err = s.loadPayments(ctx, tenantID); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *Store) loadHistory(ctx context.Context, tenant *Tenant) ([]rent.AssignmentEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT property_id, unit_id, updated_at
		FROM assignment_history
		WHERE tenant_id = ?
		ORDER BY updated_at ASC, created_at ASC`, tenant.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []rent.AssignmentEvent
	for rows.Next() {
		var propertyID, unitID sql.NullString
		var updatedAt string
		if err := rows.Scan(&propertyID, &unitID, &updatedAt); err != nil {
			return nil, err
		}

		var e rent.AssignmentEvent
		if propertyID.Valid {
			if err := s.checkOwnership(ctx, tenant, propertyID.String); err != nil {
				return nil, err
			}
			pid := rent.PropertyID(propertyID.String)
			e.PropertyID = &pid
		}
		if unitID.Valid {
			uid := rent.UnitID(unitID.String)
			e.UnitID = &uid
		}
		d, err := rent.ParseDate(updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse history date: %w", err)
		}
		e.UpdatedAt = d
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) checkOwnership(ctx context.Context, tenant *Tenant, propertyID string) error {
	var landlordID string
	err := s.db.QueryRowContext(ctx,
		"SELECT landlord_id FROM properties WHERE id = ?", propertyID).Scan(&landlordID)
	if err == sql.ErrNoRows || (err == nil && landlordID != tenant.LandlordID) {
		return &rent.DataInconsistencyError{
			TenantID: rent.TenantID(tenant.ID),
			Reason:   fmt.Sprintf("history references property %s outside landlord %s", propertyID, tenant.LandlordID),
		}
	}
	return err
}

func (s *Store) loadRentChanges(ctx context.Context, tenantID string) ([]rent.RentChange, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT amount, effective_from
		FROM rent_changes
		WHERE tenant_id = ?
		ORDER BY effective_from ASC`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []rent.RentChange
	for rows.Next() {
		var amount, effectiveFrom string
		if err := rows.Scan(&amount, &effectiveFrom); err != nil {
			return nil, err
		}
		d, err := rent.ParseDate(effectiveFrom)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rent change date: %w", err)
		}
		out = append(out, rent.RentChange{Amount: mustDecimal(amount), EffectiveFrom: d})
	}
	return out, rows.Err()
}

func (s *Store) loadPayments(ctx context.Context, tenantID string) ([]rent.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, amount, paid_at, meter_previous, meter_current
		FROM payments
		WHERE tenant_id = ?
		ORDER BY paid_at ASC, created_at ASC`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []rent.Payment
	for rows.Next() {
		var kind, amount, paidAt string
		var meterPrev, meterCurr sql.NullString
		if err := rows.Scan(&kind, &amount, &paidAt, &meterPrev, &meterCurr); err != nil {
			return nil, err
		}
		d, err := rent.ParseDate(paidAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse payment date: %w", err)
		}
		out = append(out, rent.Payment{
			Kind:          rent.PaymentKind(kind),
			Amount:        mustDecimal(amount),
			PaidAt:        d,
			MeterPrevious: decimalPtrFromNull(meterPrev),
			MeterCurrent:  decimalPtrFromNull(meterCurr),
		})
	}
	return out, rows.Err()
}

// =============================================================================
// UTILITIES
// =============================================================================

// ListLandlordIDs returns every landlord that has at least one tenant.
func (s *Store) ListLandlordIDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT landlord_id FROM tenants ORDER BY landlord_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Reset clears all data (demo scenarios and tests only).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{"payments", "rent_changes", "assignment_history", "tenants", "units", "properties"}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(dateLayout), Valid: true}
}

func nullDecimal(d *decimal.Decimal) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func strPtrFromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func datePtrFromNull(ns sql.NullString) *time.Time {
	if !ns.Valid {
		return nil
	}
	t, err := time.Parse(dateLayout, ns.String)
	if err != nil {
		return nil
	}
	return &t
}

func decimalPtrFromNull(ns sql.NullString) *decimal.Decimal {
	if !ns.Valid {
		return nil
	}
	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return nil
	}
	return &d
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
