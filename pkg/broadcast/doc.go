// Package broadcast provides a generic in-memory pub/sub channel with
// non-blocking delivery.
//
// It carries the locale change notifications: any number of listeners can
// subscribe, a slow listener drops messages instead of stalling the
// broadcaster, and subscriptions clean themselves up when their context is
// cancelled.
//
//	b := broadcast.NewMemoryBroadcaster[session.ChangeEvent](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			refresh(msg.Data)
//		}
//	}()
//
//	b.Broadcast(ctx, broadcast.Message[session.ChangeEvent]{Data: ev})
//
// The Broadcaster and Subscriber interfaces leave room for pluggable
// backends; the in-memory implementation returns nil from every method and
// never panics on closed resources.
package broadcast
