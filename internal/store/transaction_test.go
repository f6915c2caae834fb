package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE items (name TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func countItems(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestRunInTransaction_Commit(t *testing.T) {
	db := openTestDB(t)

	err := RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, db))
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	boom := errors.New("boom")

	err := RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countItems(t, db))
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	db := openTestDB(t)

	assert.Panics(t, func() {
		_ = RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`)
			panic("unexpected")
		})
	})
	assert.Equal(t, 0, countItems(t, db))
}

func TestRunInTransaction_BeginFails(t *testing.T) {
	db := openTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunInTransaction(ctx, db, func(context.Context, *sql.Tx) error { return nil })

	assert.ErrorIs(t, err, ErrTransactionFailed)
}
