package services

import (
	"context"
	"log"
	"time"
)

// Subscription is a cancellable background poll standing in for a live
// change feed: it re-fetches on a ticker and hands each authoritative
// snapshot to a callback. Stop tears the timer down; a subscription that
// keeps firing after Stop is a defect, not a tolerated cost.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the subscription and waits for its loop to exit.
func (s *Subscription) Stop() {
	s.cancel()
	<-s.done
}

// Subscribe starts polling fetch every interval, invoking onSnapshot with
// each successful result. The first fetch happens immediately. A transient
// fetch failure is logged and skipped; the subscriber keeps its prior state
// until the next successful poll.
func Subscribe[T any](ctx context.Context, interval time.Duration, fetch func(context.Context) (T, error), onSnapshot func(T)) *Subscription {
	pollCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		poll := func() {
			snapshot, err := fetch(pollCtx)
			if err != nil {
				if pollCtx.Err() == nil {
					log.Printf("⚠️ Subscription poll failed, keeping prior state: %v", err)
				}
				return
			}
			onSnapshot(snapshot)
		}

		poll()
		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
				poll()
			}
		}
	}()

	return sub
}
