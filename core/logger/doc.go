// Package logger provides structured logging built on log/slog.
//
// It contributes two things: a handler constructor (JSON for production, a
// colorized tint handler for local development) and a set of typed attribute
// helpers following the empty-Attr-for-nil pattern, which makes zero values
// safe to log without guards:
//
//	log := logger.New(cfg, os.Stderr)
//	log.Info("locale resolved",
//		logger.LocalePair(pair),
//		logger.ClientIP(ip),
//		logger.Error(err)) // no-op attr when err is nil
package logger
