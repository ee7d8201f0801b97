package application

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"volleyhub/internal/ports/input"
	"volleyhub/internal/ports/output"
)

var _ input.Subscription[int] = (*liveQuery[int])(nil)

// liveQuery re-runs query after every relevant change and delivers the full
// result set. Only the latest undelivered result is kept.
type liveQuery[T any] struct {
	updates  chan T
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
	schedule *refreshSchedule[T]
}

// refreshSchedule re-runs the query at the instant next returns for the last
// result, for results that go stale with time rather than with a change.
type refreshSchedule[T any] struct {
	next func(T) (time.Time, bool)
	now  func() time.Time
}

func startLiveQuery[T any](
	ctx context.Context,
	feed output.ChangeFeed,
	relevant func(output.Change) bool,
	query func(ctx context.Context) (T, error),
	schedule *refreshSchedule[T],
) (*liveQuery[T], error) {
	changes, release := feed.Subscribe()
	initial, err := query(ctx)
	if err != nil {
		release()
		return nil, err
	}
	lq := &liveQuery[T]{
		updates:  make(chan T, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		schedule: schedule,
	}
	lq.updates <- initial
	go lq.run(ctx, changes, release, relevant, query, initial)
	return lq, nil
}

func (lq *liveQuery[T]) Updates() <-chan T { return lq.updates }

// Unsubscribe returns once the change feed is released. A result still
// buffered at that point is discarded.
func (lq *liveQuery[T]) Unsubscribe() {
	lq.once.Do(func() { close(lq.stop) })
	<-lq.done
	for range lq.updates {
	}
}

func (lq *liveQuery[T]) run(
	ctx context.Context,
	changes <-chan output.Change,
	release func(),
	relevant func(output.Change) bool,
	query func(ctx context.Context) (T, error),
	initial T,
) {
	defer close(lq.done)
	defer close(lq.updates)
	defer release()

	var (
		timer  *time.Timer
		expiry <-chan time.Time
	)
	arm := func(v T) {
		if timer != nil {
			timer.Stop()
			expiry = nil
		}
		if lq.schedule == nil {
			return
		}
		at, ok := lq.schedule.next(v)
		if !ok {
			return
		}
		d := at.Sub(lq.schedule.now())
		if d < 0 {
			d = 0
		}
		timer = time.NewTimer(d)
		expiry = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	refresh := func(topic string) {
		res, err := query(ctx)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("topic", topic).Msg("❌ live query refresh failed")
			return
		}
		arm(res)
		lq.deliver(res)
	}

	arm(initial)
	for {
		select {
		case <-ctx.Done():
			return
		case <-lq.stop:
			return
		case <-expiry:
			expiry = nil
			refresh("timer")
		case c, ok := <-changes:
			if !ok {
				return
			}
			if !relevant(c) {
				continue
			}
			refresh(c.Topic)
		}
	}
}

func (lq *liveQuery[T]) deliver(v T) {
	for {
		select {
		case lq.updates <- v:
			return
		case <-lq.stop:
			return
		default:
		}
		// drop the stale pending result
		select {
		case <-lq.updates:
		default:
		}
	}
}

// topicChanged matches changes on topic, plus resync markers (empty topic).
func topicChanged(topic string) func(output.Change) bool {
	return func(c output.Change) bool {
		return c.Topic == "" || c.Topic == topic
	}
}

// userChanged matches changes on topic touching userID.
func userChanged(topic, userID string) func(output.Change) bool {
	return func(c output.Change) bool {
		if c.Topic == "" {
			return true
		}
		if c.Topic != topic {
			return false
		}
		return len(c.UserIDs) == 0 || slices.Contains(c.UserIDs, userID)
	}
}
