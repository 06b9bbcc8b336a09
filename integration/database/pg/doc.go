// Package pg provides PostgreSQL connection management for the profile-backed
// preference tier.
//
// It wraps the pgx driver with retry-based connection establishment, pool
// tuning, goose migrations, and a health check probe. The migrations embedded
// here create the user_profiles table that preference.PGProfileStore reads
// and writes.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, logger); err != nil {
//		log.Fatal(err)
//	}
//
//	profiles := preference.NewPGProfileStore(pool)
//
// # Health checking
//
// Healthcheck returns a probe function for readiness endpoints:
//
//	check := pg.Healthcheck(pool)
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := check(r.Context()); err != nil {
//			http.Error(w, "database unhealthy", http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
//
// # Transactions
//
// WithTx and TxFromContext propagate a pgx.Tx through context so a locale
// preference write can join a larger profile update atomically. Error
// classification helpers (IsNotFoundError, IsDuplicateKeyError,
// IsForeignKeyViolationError, IsTxClosedError) give stable checks over raw
// driver errors.
package pg
