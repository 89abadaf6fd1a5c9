// Package memory provides the in-memory chart repository. Charts are value
// objects with no external references, so a map behind a RWMutex is a
// complete persistence layer for a single-node deployment.
package memory

import (
	"context"
	"sync"
	"time"

	"jyotish-backend/internal/application/ports"
	"jyotish-backend/pkg/errors"
)

// ChartStore is a TTL-bounded in-memory implementation of ChartRepository.
type ChartStore struct {
	mu     sync.RWMutex
	charts map[string]*ports.StoredChart

	ttl      time.Duration
	maxItems int
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewChartStore creates a store and starts its cleanup loop. Call Close to
// stop the loop.
func NewChartStore(ttl, cleanupInterval time.Duration, maxItems int) *ChartStore {
	s := &ChartStore{
		charts:   make(map[string]*ports.StoredChart),
		ttl:      ttl,
		maxItems: maxItems,
		stopCh:   make(chan struct{}),
	}
	go s.cleanupLoop(cleanupInterval)
	return s
}

// Save stores a chart record. A full store evicts expired entries first and
// rejects the save only if eviction freed nothing.
func (s *ChartStore) Save(_ context.Context, record *ports.StoredChart) error {
	if record == nil || record.ID == "" {
		return errors.NewValidation("id", "chart record must carry an ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxItems > 0 && len(s.charts) >= s.maxItems {
		if _, exists := s.charts[record.ID]; !exists {
			s.evictExpiredLocked()
			if len(s.charts) >= s.maxItems {
				return errors.NewUnavailable("chart store is full")
			}
		}
	}
	s.charts[record.ID] = record
	return nil
}

// FindByID retrieves a chart record. Expired records report not-found.
func (s *ChartStore) FindByID(_ context.Context, id string) (*ports.StoredChart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.charts[id]
	if !exists || s.expired(record, time.Now()) {
		return nil, errors.NewNotFound("chart " + id + " not found")
	}
	return record, nil
}

// Len reports the live record count, expired entries included until the
// next sweep.
func (s *ChartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.charts)
}

// Close stops the cleanup loop.
func (s *ChartStore) Close() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *ChartStore) expired(record *ports.StoredChart, now time.Time) bool {
	return s.ttl > 0 && now.Sub(record.CreatedAt) > s.ttl
}

func (s *ChartStore) evictExpiredLocked() {
	now := time.Now()
	for id, record := range s.charts {
		if s.expired(record, now) {
			delete(s.charts, id)
		}
	}
}

func (s *ChartStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			s.evictExpiredLocked()
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}
