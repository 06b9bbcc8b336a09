package preference

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/streamvista/localekit/core/locale"
	"github.com/streamvista/localekit/core/logger"
	"github.com/streamvista/localekit/pkg/async"
)

// Failure describes a profile write that could not be persisted. Failures are
// reported on a channel instead of being swallowed, so callers and tests can
// assert on them; the already-applied in-memory state is never rolled back,
// a locale pair is a soft preference.
type Failure struct {
	UserID uuid.UUID
	Pair   locale.Pair
	Seq    uint64
	Err    error
}

const defaultFailureBuffer = 16

// AsyncProfileWriter schedules profile writes off the caller's path.
// Each write carries the session's sequence stamp so the owner can discard
// acknowledgements that no longer match its in-memory state.
type AsyncProfileWriter struct {
	store    ProfileStore
	failures chan Failure
	log      *slog.Logger
}

// NewAsyncProfileWriter wraps a ProfileStore with asynchronous, channel-
// reporting writes. buffer bounds the failure channel; when it is full,
// further failures are logged and dropped rather than blocking persistence
// goroutines.
func NewAsyncProfileWriter(store ProfileStore, buffer int, log *slog.Logger) *AsyncProfileWriter {
	if buffer <= 0 {
		buffer = defaultFailureBuffer
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &AsyncProfileWriter{
		store:    store,
		failures: make(chan Failure, buffer),
		log:      log,
	}
}

// Write schedules persistence of pair for userID and returns immediately.
// The returned future completes when the write settles; fire-and-forget
// callers can ignore it. A writer built without a store completes every
// write with ErrNoProfileStore instead of dereferencing nil off-goroutine.
func (w *AsyncProfileWriter) Write(ctx context.Context, userID uuid.UUID, pair locale.Pair, seq uint64) *async.Future {
	if w.store == nil {
		return async.Exec(ctx, pair, func(ctx context.Context, p locale.Pair) error {
			w.report(Failure{UserID: userID, Pair: p, Seq: seq, Err: ErrNoProfileStore})
			return ErrNoProfileStore
		})
	}
	return async.Exec(ctx, pair, func(ctx context.Context, p locale.Pair) error {
		if err := w.store.Set(ctx, userID, p); err != nil {
			w.report(Failure{UserID: userID, Pair: p, Seq: seq, Err: err})
			return err
		}
		return nil
	})
}

// Failures exposes the failure stream for observers.
func (w *AsyncProfileWriter) Failures() <-chan Failure {
	return w.failures
}

func (w *AsyncProfileWriter) report(f Failure) {
	select {
	case w.failures <- f:
	default:
		w.log.Warn("profile write failure dropped, channel full",
			logger.UserID(f.UserID.String()),
			logger.LocalePair(f.Pair),
			logger.Error(f.Err))
	}
	w.log.Error("profile preference write failed",
		logger.UserID(f.UserID.String()),
		logger.LocalePair(f.Pair),
		logger.Error(f.Err))
}
