// Package progress holds the user's per-discipline completion state and
// persists it as a single JSON blob.
package progress

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/alexanderramin/fluxo/internal/domain"
	"github.com/alexanderramin/fluxo/internal/repository"
	"go.uber.org/zap"
)

// StorageKey is the key-value key holding the progress blob.
const StorageKey = "flowchartProgress"

// Store is the mutable progress overlay. Every mutation rewrites the whole
// persisted blob; there is no merging with other writers (last save wins).
// Store is not safe for concurrent use.
type Store struct {
	repo     repository.KVRepo
	logger   *zap.Logger
	statuses map[string]domain.ProgressStatus
}

// NewStore creates an empty store backed by repo. Call Load to read the
// persisted state.
func NewStore(repo repository.KVRepo, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		repo:     repo,
		logger:   logger,
		statuses: make(map[string]domain.ProgressStatus),
	}
}

// Load replaces the in-memory state with the persisted blob. Missing,
// unreadable or malformed data leaves the store empty; problems are logged
// and never returned.
func (s *Store) Load(ctx context.Context) {
	s.statuses = make(map[string]domain.ProgressStatus)

	blob, err := s.repo.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("reading progress failed, starting empty", zap.Error(err))
		}
		return
	}

	statuses, rejected, err := decode(blob)
	if err != nil {
		s.logger.Warn("malformed progress data, starting empty", zap.Error(err))
		return
	}
	if len(rejected) > 0 {
		slices.Sort(rejected)
		s.logger.Warn("dropping invalid progress entries", zap.Strings("codes", rejected))
	}
	s.statuses = statuses
	s.logger.Debug("progress loaded", zap.Int("entries", len(statuses)))
}

// Save writes the entire store as one blob.
func (s *Store) Save(ctx context.Context) error {
	blob, err := encode(s.statuses)
	if err != nil {
		return err
	}
	return s.repo.Put(ctx, StorageKey, blob)
}

// SetStatus records status for code and persists the store. Setting
// StatusPending removes the entry. The in-memory change is kept even when
// persisting fails.
func (s *Store) SetStatus(ctx context.Context, code string, status domain.ProgressStatus) error {
	if status == domain.StatusPending {
		delete(s.statuses, code)
	} else {
		s.statuses[code] = status
	}
	return s.Save(ctx)
}

// StatusOf returns the recorded status, or StatusPending when absent.
func (s *Store) StatusOf(code string) domain.ProgressStatus {
	return s.statuses[code]
}

// ResetAll clears every entry and persists the empty store.
func (s *Store) ResetAll(ctx context.Context) error {
	s.statuses = make(map[string]domain.ProgressStatus)
	return s.Save(ctx)
}

// Snapshot returns a copy of the current mapping.
func (s *Store) Snapshot() Snapshot {
	return Snapshot(maps.Clone(s.statuses))
}

// Len returns the number of non-pending entries.
func (s *Store) Len() int {
	return len(s.statuses)
}
