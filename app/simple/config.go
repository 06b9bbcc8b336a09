package simple

import (
	"github.com/streamvista/localekit/core/geo"
	"github.com/streamvista/localekit/core/logger"
	"github.com/streamvista/localekit/core/session"
)

// Config aggregates the environment configuration of every wired component.
// The database and cache tiers are optional: an empty URL leaves that tier
// off and the subsystem degrades to cookie-and-geolocation operation.
type Config struct {
	Logger  logger.Config
	Geo     geo.Config
	Session session.Config

	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`
}
