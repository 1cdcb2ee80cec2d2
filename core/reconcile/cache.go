package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Snapshot is a cached reconciliation pass: the summary statistics plus the
// per-agency breakdown, with the time it was built.
type Snapshot struct {
	Stats    Statistics
	Balances []Balance

	// Built is when this snapshot was derived.
	Built time.Time

	// TTL is the time-to-live. Zero disables caching.
	TTL time.Duration
}

// IsExpired returns true when the snapshot is past its TTL.
func (s *Snapshot) IsExpired() bool {
	if s.TTL == 0 {
		return true
	}
	return time.Since(s.Built) > s.TTL
}

// Builder loads the four source collections and derives a fresh snapshot.
type Builder func(ctx context.Context) (*Snapshot, error)

// Store caches reconciliation snapshots per dataset key so concurrent
// dashboard loads derive the statistics once instead of once per request.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	sf        singleflight.Group
}

// NewStore creates an empty snapshot store.
func NewStore() *Store {
	return &Store{snapshots: make(map[string]*Snapshot)}
}

// GetOrBuild returns a fresh snapshot for the key, building it through the
// builder when missing or expired. Singleflight collapses concurrent builds
// for the same key into one.
func (s *Store) GetOrBuild(ctx context.Context, key string, build Builder) (*Snapshot, error) {
	s.mu.RLock()
	snap, exists := s.snapshots[key]
	s.mu.RUnlock()

	if exists && !snap.IsExpired() {
		return snap, nil
	}

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot.
		s.mu.RLock()
		snap, exists := s.snapshots[key]
		s.mu.RUnlock()

		if exists && !snap.IsExpired() {
			return snap, nil
		}

		fresh, err := build(ctx)
		if err != nil {
			return nil, err
		}
		if fresh.Built.IsZero() {
			fresh.Built = time.Now()
		}

		s.mu.Lock()
		s.snapshots[key] = fresh
		s.mu.Unlock()

		return fresh, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Snapshot), nil
}

// Invalidate drops the snapshot for the key, forcing the next GetOrBuild to
// rebuild. Useful after a data refresh and in tests.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	delete(s.snapshots, key)
	s.mu.Unlock()
}
