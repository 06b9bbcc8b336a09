package logger

import (
	"log/slog"

	"github.com/streamvista/localekit/core/locale"
)

// Attribute helpers use the empty Attr pattern for nil safety, so callers can
// write log.Info("msg", logger.Error(err)) without explicit nil checks.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// ClientIP creates an attribute for client IP addresses.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

// UserID creates an attribute for user identifiers.
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// Country creates an attribute for a resolved country code.
func Country(code locale.CountryCode) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("country", string(code))
}

// Language creates an attribute for a resolved language code.
func Language(code locale.LanguageCode) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("language", string(code))
}

// LocalePair groups both halves of a resolved pair under the key "locale".
func LocalePair(p locale.Pair) slog.Attr {
	return slog.Attr{Key: "locale", Value: slog.GroupValue(
		slog.String("country", string(p.Country)),
		slog.String("language", string(p.Language)),
	)}
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Provider creates an attribute for a geolocation provider endpoint.
func Provider(endpoint string) slog.Attr {
	if endpoint == "" {
		return slog.Attr{}
	}
	return slog.String("provider", endpoint)
}
