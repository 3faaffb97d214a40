package craa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/fluxo/internal/db"
	"github.com/alexanderramin/fluxo/internal/repository"
	"go.uber.org/zap"
)

// Storage keys of the worksheet fields.
const (
	KeyPrefix         = "craa_"
	KeyCurrentCRAA    = KeyPrefix + "currentCRAA"
	KeyCurrentCredits = KeyPrefix + "currentCredits"
	KeyDisciplines    = KeyPrefix + "disciplines"
)

// RepoFactory builds a KV repository on a connection or transaction.
type RepoFactory func(conn db.DBTX) repository.KVRepo

// Store persists the worksheet as three JSON values written in one
// transaction.
type Store struct {
	kv      repository.KVRepo
	uow     db.UnitOfWork
	newRepo RepoFactory
	logger  *zap.Logger
}

// NewStore creates a Store. kv serves reads; writes go through uow.
func NewStore(kv repository.KVRepo, uow db.UnitOfWork, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:  kv,
		uow: uow,
		newRepo: func(conn db.DBTX) repository.KVRepo {
			return repository.NewSQLiteKVRepo(conn)
		},
		logger: logger,
	}
}

// Load reads the worksheet. Missing or malformed values fall back to the
// defaults of NewWorksheet field by field; problems are logged, not returned.
func (s *Store) Load(ctx context.Context) Worksheet {
	ws := NewWorksheet()

	var craa, credits string
	if s.read(ctx, KeyCurrentCRAA, &craa) {
		ws.CurrentCRAA = craa
	}
	if s.read(ctx, KeyCurrentCredits, &credits) {
		ws.CurrentCredits = credits
	}
	var rows []Row
	if s.read(ctx, KeyDisciplines, &rows) && len(rows) > 0 {
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = NewRow().ID
			}
		}
		ws.Rows = rows
	}
	return ws
}

func (s *Store) read(ctx context.Context, key string, into any) bool {
	blob, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("reading craa value failed, using default", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(blob), into); err != nil {
		s.logger.Warn("malformed craa value, using default", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Save writes all three values atomically.
func (s *Store) Save(ctx context.Context, ws Worksheet) error {
	rows := ws.Rows
	if rows == nil {
		rows = []Row{}
	}
	values := []struct {
		key string
		v   any
	}{
		{KeyCurrentCRAA, ws.CurrentCRAA},
		{KeyCurrentCredits, ws.CurrentCredits},
		{KeyDisciplines, rows},
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.newRepo(tx)
		for _, kv := range values {
			data, err := json.Marshal(kv.v)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", kv.key, err)
			}
			if err := repo.Put(ctx, kv.key, string(data)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset deletes every stored worksheet value and returns a fresh worksheet.
func (s *Store) Reset(ctx context.Context) (Worksheet, error) {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.newRepo(tx)
		keys, err := repo.Keys(ctx, KeyPrefix)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Worksheet{}, err
	}
	return NewWorksheet(), nil
}
