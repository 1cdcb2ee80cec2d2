package commission

import (
	"context"
	"time"

	"backoffice/core/reconcile"
	"backoffice/core/record"
	"backoffice/core/tableview"

	"go.uber.org/zap"
)

// snapshotKey is the cache key for the dashboard dataset. There is only one
// dataset today; the store is keyed so tenant-scoped datasets can share it.
const snapshotKey = "dashboard"

// agencyColumns is the column order of the per-agency balance table.
var agencyColumns = []string{"agency_id", "name", "customers", "owed", "paid", "outstanding"}

// Summary is the dashboard summary payload.
type Summary struct {
	Stats reconcile.Statistics `json:"stats"`

	// GeneratedAt is when the underlying snapshot was derived; cached
	// responses report the original derivation time.
	GeneratedAt time.Time `json:"generated_at"`
}

// AgencyView is the filtered-and-sorted per-agency balance table.
type AgencyView struct {
	Term    string          `json:"term"`
	Sort    tableview.Sort  `json:"sort"`
	Count   int             `json:"count"`
	Records []record.Record `json:"records"`
}

// Service derives and caches the commission reconciliation views.
type Service struct {
	repo   *Repository
	store  *reconcile.Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates a new commission service. The TTL bounds how stale a
// cached snapshot may be before the next request rebuilds it; zero disables
// caching.
func NewService(repo *Repository, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		store:  reconcile.NewStore(),
		ttl:    ttl,
		logger: logger,
	}
}

// snapshot returns the current reconciliation snapshot, rebuilding it from
// the database when missing or expired.
func (s *Service) snapshot(ctx context.Context) (*reconcile.Snapshot, error) {
	return s.store.GetOrBuild(ctx, snapshotKey, func(ctx context.Context) (*reconcile.Snapshot, error) {
		started := time.Now()

		agencies, customers, orders, movements, err := s.repo.LoadCollections(ctx)
		if err != nil {
			return nil, err
		}

		snap := &reconcile.Snapshot{
			Stats:    reconcile.ComputeStatistics(agencies, customers, orders, movements),
			Balances: reconcile.AgencyBalances(agencies, customers, orders, movements),
			Built:    time.Now(),
			TTL:      s.ttl,
		}

		s.logger.Info("Rebuilt reconciliation snapshot",
			zap.Int("agencies", snap.Stats.TotalAgencies),
			zap.String("total_outstanding", snap.Stats.TotalOutstanding.String()),
			zap.Duration("took", time.Since(started)),
		)

		return snap, nil
	})
}

// Summary returns the dashboard summary statistics.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{Stats: snap.Stats, GeneratedAt: snap.Built}, nil
}

// Agencies returns the per-agency balance table, filtered by the search term
// and ordered by the sort key like any other list page.
func (s *Service) Agencies(ctx context.Context, term, sortKey string, dir tableview.Direction) (*AgencyView, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]record.Record, 0, len(snap.Balances))
	for _, b := range snap.Balances {
		records = append(records, record.Record{
			"agency_id":   b.AgencyID,
			"name":        b.Name,
			"customers":   b.Customers,
			"owed":        b.Owed.String(),
			"paid":        b.Paid.String(),
			"outstanding": b.Outstanding.String(),
		})
	}

	engine := tableview.New(records)
	engine.SearchFields = agencyColumns
	engine.SetSearch(term)
	if sortKey != "" {
		engine.SetSort(sortKey, dir)
	}

	view := engine.View()
	return &AgencyView{
		Term:    engine.Search(),
		Sort:    engine.Sort(),
		Count:   len(view),
		Records: view,
	}, nil
}

// Refresh drops the cached snapshot so the next request rebuilds it.
func (s *Service) Refresh() {
	s.store.Invalidate(snapshotKey)
}
