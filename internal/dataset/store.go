package dataset

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rotisserie/eris"

	"github.com/filipe4ndrade/dados-sds-provisorios/internal/domain"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/observability"
)

// Store caches loaded datasets in memory, keyed by dataset id. A dataset is
// loaded at most once per process under normal operation; a race on first
// population can load the same file twice, which is tolerated because loads
// are idempotent and the last writer wins with identical content.
//
// Reads after population take a shared lock only long enough to fetch the
// slice header; callers must treat the returned records as read-only.
type Store struct {
	dataDir string
	logger  *slog.Logger
	metrics *observability.Metrics

	mu    sync.RWMutex
	cache map[string][]domain.Record
}

// NewStore creates an empty store over the given data directory.
func NewStore(dataDir string, logger *slog.Logger, metrics *observability.Metrics) *Store {
	return &Store{
		dataDir: dataDir,
		logger:  logger,
		metrics: metrics,
		cache:   make(map[string][]domain.Record),
	}
}

// Records returns the canonical records for a dataset id, loading the
// spreadsheet on first access.
func (s *Store) Records(id string) ([]domain.Record, error) {
	s.mu.RLock()
	records, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		s.metrics.DatasetCache.WithLabelValues("hit").Inc()
		return records, nil
	}
	s.metrics.DatasetCache.WithLabelValues("miss").Inc()

	d, ok := ByID(id)
	if !ok {
		return nil, eris.Errorf("unknown dataset %q", id)
	}

	start := time.Now()
	records, err := Load(filepath.Join(s.dataDir, d.File), d)
	if err != nil {
		s.metrics.DatasetLoads.WithLabelValues(id, "error").Inc()
		return nil, err
	}

	s.metrics.DatasetLoads.WithLabelValues(id, "success").Inc()
	s.metrics.DatasetLoadDuration.Observe(time.Since(start).Seconds())
	s.metrics.RecordsLoaded.WithLabelValues(id).Add(float64(len(records)))
	s.logger.Info("dataset loaded",
		"dataset", id,
		"records", len(records),
		"duration", time.Since(start),
	)

	s.mu.Lock()
	s.cache[id] = records
	s.mu.Unlock()
	return records, nil
}

// CheckReadiness reports whether the store can serve traffic: the data
// directory must exist and every cataloged spreadsheet must be present.
func (s *Store) CheckReadiness(_ context.Context) error {
	if _, err := os.Stat(s.dataDir); err != nil {
		return eris.Wrap(err, "data directory not accessible")
	}
	for _, d := range Catalog() {
		if _, err := os.Stat(filepath.Join(s.dataDir, d.File)); err != nil {
			return eris.Wrapf(err, "dataset %s file missing", d.ID)
		}
	}
	return nil
}
