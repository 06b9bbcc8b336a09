// Package simple is the batteries-included composition root: it loads every
// component's configuration from the environment and wires the logger, the
// geolocation chain with its optional Redis cache, the optional
// Postgres-backed profile store, and the session manager with its routing
// gate.
//
//	app, err := simple.NewApp(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer app.Close()
//
//	mux := http.NewServeMux()
//	// ... register handlers ...
//	http.ListenAndServe(":8080", app.Gate()(mux))
package simple

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/streamvista/localekit/core/config"
	"github.com/streamvista/localekit/core/geo"
	"github.com/streamvista/localekit/core/logger"
	"github.com/streamvista/localekit/core/preference"
	"github.com/streamvista/localekit/core/session"
	"github.com/streamvista/localekit/integration/database/pg"
	"github.com/streamvista/localekit/integration/database/redis"
	"github.com/streamvista/localekit/middleware"
)

// App holds the wired locale subsystem.
type App struct {
	config  Config
	logger  *slog.Logger
	pool    *pgxpool.Pool
	cache   *goredis.Client
	manager *session.Manager
	health  []func(context.Context) error
}

// AppOption overrides a default component before wiring.
type AppOption func(*App) error

// NewApp loads configuration and connects every configured tier. Connection
// failures surface immediately; a missing DATABASE_URL or REDIS_URL is not a
// failure, the corresponding tier simply stays off.
func NewApp(ctx context.Context, opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{config: cfg}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}
	if app.logger == nil {
		app.logger = logger.New(cfg.Logger, nil)
	}

	managerOpts := []session.ManagerOption{session.WithLogger(app.logger)}
	geoOpts := []geo.Option{geo.WithLogger(app.logger)}

	if cfg.RedisURL != "" {
		client, err := redis.Connect(ctx, redis.Config{
			ConnectionURL:  cfg.RedisURL,
			RetryAttempts:  3,
			RetryInterval:  time.Second,
			ConnectTimeout: 30 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		app.cache = client
		app.health = append(app.health, redis.Healthcheck(client))
		geoOpts = append(geoOpts, geo.WithCache(geo.NewRedisCache(client, cfg.Geo.CacheTTL)))
	}
	managerOpts = append(managerOpts, session.WithGeoChain(geo.NewFromConfig(cfg.Geo, geoOpts...)))

	if cfg.DatabaseURL != "" {
		pgCfg := pg.Config{
			ConnectionString: cfg.DatabaseURL,
			RetryAttempts:    3,
			RetryInterval:    time.Second,
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			app.closeConnections()
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, pgCfg, app.logger); err != nil {
			pool.Close()
			app.closeConnections()
			return nil, err
		}
		app.pool = pool
		app.health = append(app.health, pg.Healthcheck(pool))
		managerOpts = append(managerOpts, session.WithProfileStore(preference.NewPGProfileStore(pool)))
	}

	app.manager = session.NewManagerFromConfig(cfg.Session, managerOpts...)
	return app, nil
}

// WithLogger replaces the configuration-built logger.
func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = log
		return nil
	}
}

// Manager returns the wired session manager.
func (a *App) Manager() *session.Manager { return a.manager }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Gate returns the language-prefix routing middleware bound to the manager.
func (a *App) Gate() func(http.Handler) http.Handler {
	return middleware.LanguageGateWithConfig(middleware.LanguageGateConfig{
		Manager: a.manager,
		Logger:  a.logger,
	})
}

// Healthcheck probes every connected backing service.
func (a *App) Healthcheck(ctx context.Context) error {
	var errs []error
	for _, check := range a.health {
		errs = append(errs, check(ctx))
	}
	return errors.Join(errs...)
}

// Close releases the manager and every open connection.
func (a *App) Close() error {
	var errs []error
	if a.manager != nil {
		errs = append(errs, a.manager.Close())
	}
	errs = append(errs, a.closeConnections())
	return errors.Join(errs...)
}

func (a *App) closeConnections() error {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
	if a.cache != nil {
		err := a.cache.Close()
		a.cache = nil
		return err
	}
	return nil
}
