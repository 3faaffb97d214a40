package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/fluxo/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

// readVal reads the kv_store value for key through a read-only transaction.
func readVal(uow *db.SQLiteUnitOfWork, key string) (string, bool) {
	var val string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key)
		if err := row.Scan(&val); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return val, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO kv_store (key, value) VALUES (?, ?)`, "craa_currentCRAA", `"8.5"`)
		return err
	})
	require.NoError(t, err)

	val, found := readVal(uow, "craa_currentCRAA")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, `"8.5"`, val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO kv_store (key, value) VALUES (?, ?)`, "craa_currentCredits", `"120"`)
		if err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readVal(uow, "craa_currentCredits")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestDB(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO kv_store (key, value) VALUES (?, ?)`, "craa_disciplines", "[]")
			panic("boom")
		})
	})

	_, found := readVal(uow, "craa_disciplines")
	assert.False(t, found, "row should not exist after panic rollback")
}
