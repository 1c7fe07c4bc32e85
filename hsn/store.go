package hsn

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/hsncheck/pkg/metricskey"
	"github.com/effective-security/xlog"
)

// Fetcher returns raw records from the master data source.
// An empty result with a nil error is the uniform degraded signal for
// "source unreachable or empty"; implementations should not raise for
// expected failure modes.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// Store owns the loaded master data. It replaces the table and index
// together under a write lock, so readers never observe a half-updated
// pair. A fresh store is empty and validates everything as StatusError
// until the first successful Reload.
type Store struct {
	cfg     *Config
	fetcher Fetcher

	mu    sync.RWMutex
	table Table
	index Index
}

// NewStore creates a store over the given source.
func NewStore(cfg *Config, fetcher Fetcher) *Store {
	return &Store{
		cfg:     cfg,
		fetcher: fetcher,
		table:   Table{},
		index:   Index{},
	}
}

// Reload fetches the source and replaces the table and index wholesale.
// A missing source configuration or failed fetch installs empty data;
// stale data is never left behind. The returned error is informational:
// the store is in a consistent, queryable state either way.
func (s *Store) Reload(ctx context.Context) error {
	started := time.Now()
	defer metricskey.PerfMasterDataLoad.MeasureSince(started, "gsheet")
	metricskey.StatsMasterDataLoads.IncrCounter(1, "gsheet")

	if !s.cfg.SourceConfigured() {
		logger.KV(xlog.ERROR,
			"status", "source_not_configured",
			"spreadsheet_id", s.cfg.SpreadsheetID != "",
			"sheet_name", s.cfg.SheetName != "",
			"credentials_file", s.cfg.CredentialsFile != "")
		s.swap(Table{}, Index{})
		return nil
	}

	records, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.swap(Table{}, Index{})
		return errors.WithMessage(err, "failed to fetch master data")
	}

	table, index := Load(records, s.cfg.CodeColumn, s.cfg.DescColumn)
	metricskey.StatsMasterDataRows.IncrCounter(float64(len(table)), "gsheet")
	metricskey.StatsMasterDataRowsDropped.IncrCounter(float64(len(records)-len(table)), "gsheet")
	s.swap(table, index)
	return nil
}

func (s *Store) swap(table Table, index Index) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.index = index
}

// Lookup returns the description for a code.
func (s *Store) Lookup(code string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	desc, ok := s.index[code]
	return desc, ok
}

// Count returns the number of distinct codes loaded.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.index)
}

// Rows returns a copy of the canonical table.
func (s *Store) Rows() Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make(Table, len(s.table))
	copy(rows, s.table)
	return rows
}

// Validate checks the codes against the current index.
func (s *Store) Validate(codes ...string) []Verdict {
	s.mu.RLock()
	index := s.index
	s.mu.RUnlock()
	return Validate(codes, index)
}
