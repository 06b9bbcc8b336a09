package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/streamvista/localekit/core/locale"
	"github.com/streamvista/localekit/integration/database/pg"
)

// ProfileStore is the authenticated preference tier: a durable record keyed
// by user ID. Get is absent only when the profile row itself is absent;
// missing fields inside an existing row fill with the defaults.
type ProfileStore interface {
	Get(ctx context.Context, userID uuid.UUID) (locale.Pair, error)
	Set(ctx context.Context, userID uuid.UUID, pair locale.Pair) error
}

// DB is the subset of pgxpool.Pool used by PGProfileStore, extracted so tests
// can substitute a stub connection.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PGProfileStore persists locale preferences on the user_profiles table.
// When the context carries a pg.WithTx transaction, both operations run
// inside it, so a locale write can join a larger profile update atomically.
type PGProfileStore struct {
	db DB
}

// NewPGProfileStore creates a Postgres-backed profile store.
func NewPGProfileStore(db DB) *PGProfileStore {
	return &PGProfileStore{db: db}
}

// querier returns the context transaction when one is attached, otherwise the
// pool. pgx.Tx satisfies DB, so both routes share the query code.
func (s *PGProfileStore) querier(ctx context.Context) DB {
	if tx, ok := pg.TxFromContext(ctx); ok {
		return tx
	}
	return s.db
}

// Get reads the profile's stored country/language fields.
func (s *PGProfileStore) Get(ctx context.Context, userID uuid.UUID) (locale.Pair, error) {
	var countryCode, languageCode string
	err := s.querier(ctx).QueryRow(ctx,
		`SELECT COALESCE(country_code, ''), COALESCE(language_code, '')
		 FROM user_profiles WHERE id = $1`,
		userID,
	).Scan(&countryCode, &languageCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return locale.Pair{}, ErrProfileNotFound
		}
		return locale.Pair{}, fmt.Errorf("preference: get profile: %w", err)
	}

	pair := locale.DefaultPair()
	if country, err := locale.ParseCountry(countryCode); err == nil {
		pair.Country = country
	}
	if language, err := locale.ParseLanguage(languageCode); err == nil {
		pair.Language = language
	}
	return pair, nil
}

// Set updates the profile's locale fields and stamps updated_at.
func (s *PGProfileStore) Set(ctx context.Context, userID uuid.UUID, pair locale.Pair) error {
	tag, err := s.querier(ctx).Exec(ctx,
		`UPDATE user_profiles
		 SET country_code = $2, language_code = $3, updated_at = now()
		 WHERE id = $1`,
		userID, string(pair.Country), string(pair.Language),
	)
	if err != nil {
		return fmt.Errorf("preference: update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
