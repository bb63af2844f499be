/*
sweep.go - Periodic billing sweep

PURPOSE:
  Periodically re-evaluates every tenant's billing state and logs a
  per-landlord portfolio summary (status counts, total outstanding).
  Billing is reconstructed on demand, so the sweep stores nothing; it
  exists to surface tenants falling due in the server logs without
  anyone polling the API.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - Evaluation is a pure read, so a sweep can never corrupt state
  - Errors on individual tenants are logged and skipped

USAGE:
  sweep := NewBillingSweep(store, logger)
  sweep.Start()
  // ... later
  sweep.Stop()

SEE ALSO:
  - handlers.go: GetPortfolioBilling (the on-demand equivalent)
*/
package api

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/keystone/rent-engine/rent"
	"github.com/keystone/rent-engine/store/sqlite"
)

// BillingSweep periodically evaluates all tenants and logs portfolio health.
type BillingSweep struct {
	Store         *sqlite.Store
	Log           *zap.Logger
	CheckInterval time.Duration
	Enabled       bool

	ticker *time.Ticker
	stop   chan bool
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewBillingSweep creates a new sweep with a one hour interval.
func NewBillingSweep(store *sqlite.Store, log *zap.Logger) *BillingSweep {
	if log == nil {
		log = zap.NewNop()
	}
	return &BillingSweep{
		Store:         store,
		Log:           log,
		CheckInterval: 1 * time.Hour,
		Enabled:       true,
		stop:          make(chan bool),
	}
}

// Start begins the sweep loop.
func (bs *BillingSweep) Start() {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.Enabled {
		bs.Log.Info("billing sweep disabled")
		return
	}

	bs.ticker = time.NewTicker(bs.CheckInterval)
	bs.wg.Add(1)

	go bs.run()

	bs.Log.Info("billing sweep started", zap.Duration("interval", bs.CheckInterval))
}

// Stop stops the sweep loop.
func (bs *BillingSweep) Stop() {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if bs.ticker != nil {
		bs.ticker.Stop()
		close(bs.stop)
		bs.wg.Wait()
		bs.Log.Info("billing sweep stopped")
	}
}

func (bs *BillingSweep) run() {
	defer bs.wg.Done()

	// Run immediately on start
	bs.sweep()

	for {
		select {
		case <-bs.ticker.C:
			bs.sweep()
		case <-bs.stop:
			return
		}
	}
}

func (bs *BillingSweep) sweep() {
	ctx := context.Background()
	now := rent.Today()

	landlords, err := bs.Store.ListLandlordIDs(ctx)
	if err != nil {
		bs.Log.Error("sweep failed to list landlords", zap.Error(err))
		return
	}

	for _, landlordID := range landlords {
		bs.sweepLandlord(ctx, landlordID, now)
	}
}

func (bs *BillingSweep) sweepLandlord(ctx context.Context, landlordID string, now rent.Date) {
	tenants, err := bs.Store.ListTenants(ctx, landlordID)
	if err != nil {
		bs.Log.Error("sweep failed to list tenants",
			zap.String("landlord_id", landlordID), zap.Error(err))
		return
	}

	statusCount := map[rent.Status]int{}
	totalDue := decimal.Zero
	dueTenants := 0

	for _, t := range tenants {
		snap, err := bs.Store.LoadSnapshot(ctx, t.ID)
		if err != nil {
			bs.Log.Warn("sweep skipping tenant",
				zap.String("tenant_id", t.ID), zap.Error(err))
			continue
		}
		result, err := rent.Evaluate(snap, now)
		if err != nil {
			bs.Log.Warn("sweep skipping tenant",
				zap.String("tenant_id", t.ID), zap.Error(err))
			continue
		}

		statusCount[result.Status]++
		if result.Due.IsPositive() {
			totalDue = totalDue.Add(result.Due)
			dueTenants++
		}
	}

	bs.Log.Info("portfolio sweep",
		zap.String("landlord_id", landlordID),
		zap.Int("tenants", len(tenants)),
		zap.Int("active", statusCount[rent.StatusActive]),
		zap.Int("due", statusCount[rent.StatusDue]),
		zap.Int("inactive", statusCount[rent.StatusInactive]),
		zap.Int("unassigned", statusCount[rent.StatusUnassigned]),
		zap.Int("tenants_owing", dueTenants),
		zap.String("total_due", totalDue.String()))
}

// RunNow triggers an immediate sweep (for testing/admin).
func (bs *BillingSweep) RunNow() {
	bs.sweep()
}
