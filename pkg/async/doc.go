// Package async provides a minimal future for fire-and-forget operations.
//
// It exists for side effects that must not block the caller but whose
// failures still need a way back to an observer, such as persisting a locale
// preference to the profile store while the UI proceeds optimistically:
//
//	future := async.Exec(ctx, pair, func(ctx context.Context, p locale.Pair) error {
//		return store.Set(ctx, userID, p)
//	})
//	// ... caller carries on; a test can future.Await() to assert the outcome.
package async
