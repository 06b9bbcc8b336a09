package preference_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamvista/localekit/core/locale"
	"github.com/streamvista/localekit/core/preference"
	"github.com/streamvista/localekit/integration/database/pg"
)

type stubRow struct {
	vals []string
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		*(d.(*string)) = r.vals[i]
	}
	return nil
}

type stubDB struct {
	row      stubRow
	tag      pgconn.CommandTag
	execErr  error
	lastSQL  string
	lastArgs []any
}

func (db *stubDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.lastSQL, db.lastArgs = sql, args
	return db.row
}

func (db *stubDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.lastSQL, db.lastArgs = sql, args
	return db.tag, db.execErr
}

// stubTx routes the DB subset of pgx.Tx into a stubDB; the embedded interface
// covers the rest.
type stubTx struct {
	pgx.Tx
	db *stubDB
}

func (t stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.db.QueryRow(ctx, sql, args...)
}

func (t stubTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.db.Exec(ctx, sql, args...)
}

func TestPGProfileStoreGet(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns the stored pair", func(t *testing.T) {
		db := &stubDB{row: stubRow{vals: []string{"TR", "tr"}}}
		store := preference.NewPGProfileStore(db)

		pair, err := store.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, locale.Pair{Country: "TR", Language: "tr"}, pair)
		assert.Equal(t, []any{userID}, db.lastArgs)
	})

	t.Run("empty fields fill with defaults", func(t *testing.T) {
		db := &stubDB{row: stubRow{vals: []string{"", ""}}}
		store := preference.NewPGProfileStore(db)

		pair, err := store.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, locale.DefaultPair(), pair)
	})

	t.Run("garbage fields fall back per field", func(t *testing.T) {
		db := &stubDB{row: stubRow{vals: []string{"DE", "klingon"}}}
		store := preference.NewPGProfileStore(db)

		pair, err := store.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, locale.Pair{Country: "DE", Language: locale.DefaultLanguage}, pair)
	})

	t.Run("missing row maps to ErrProfileNotFound", func(t *testing.T) {
		db := &stubDB{row: stubRow{err: pgx.ErrNoRows}}
		store := preference.NewPGProfileStore(db)

		_, err := store.Get(ctx, userID)
		assert.ErrorIs(t, err, preference.ErrProfileNotFound)
	})
}

func TestPGProfileStoreSet(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	pair := locale.Pair{Country: "JP", Language: "ja"}

	t.Run("updates the row", func(t *testing.T) {
		db := &stubDB{tag: pgconn.NewCommandTag("UPDATE 1")}
		store := preference.NewPGProfileStore(db)

		require.NoError(t, store.Set(ctx, userID, pair))
		assert.Equal(t, []any{userID, "JP", "ja"}, db.lastArgs)
	})

	t.Run("zero rows affected maps to ErrProfileNotFound", func(t *testing.T) {
		db := &stubDB{tag: pgconn.NewCommandTag("UPDATE 0")}
		store := preference.NewPGProfileStore(db)

		assert.ErrorIs(t, store.Set(ctx, userID, pair), preference.ErrProfileNotFound)
	})

	t.Run("driver errors are wrapped", func(t *testing.T) {
		db := &stubDB{execErr: assert.AnError}
		store := preference.NewPGProfileStore(db)

		assert.ErrorIs(t, store.Set(ctx, userID, pair), assert.AnError)
	})
}

func TestPGProfileStoreContextTx(t *testing.T) {
	userID := uuid.New()

	// The pool stub errors on any use, so these tests fail loudly if the
	// store bypasses the attached transaction.
	pool := &stubDB{row: stubRow{err: assert.AnError}, execErr: assert.AnError}
	txDB := &stubDB{row: stubRow{vals: []string{"TR", "tr"}}, tag: pgconn.NewCommandTag("UPDATE 1")}
	ctx := pg.WithTx(context.Background(), stubTx{db: txDB})

	t.Run("get runs on the transaction", func(t *testing.T) {
		store := preference.NewPGProfileStore(pool)

		got, err := store.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, locale.Pair{Country: "TR", Language: "tr"}, got)
		assert.Empty(t, pool.lastSQL)
	})

	t.Run("set runs on the transaction", func(t *testing.T) {
		store := preference.NewPGProfileStore(pool)

		require.NoError(t, store.Set(ctx, userID, locale.Pair{Country: "TR", Language: "tr"}))
		assert.Equal(t, []any{userID, "TR", "tr"}, txDB.lastArgs)
		assert.Empty(t, pool.lastSQL)
	})
}
