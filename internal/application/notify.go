package application

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"volleyhub/internal/ports/output"
)

// Notifiers fans a notification out to every configured notifier.
type Notifiers []output.Notifier

func (ns Notifiers) Notify(ctx context.Context, n output.Notification) error {
	var errs []error
	for _, x := range ns {
		if x == nil {
			continue
		}
		if err := x.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// notify delivers n after a commit. Failures are logged, never returned.
func notify(ctx context.Context, notifier output.Notifier, n output.Notification) {
	if notifier == nil {
		return
	}
	if n.OccurredAt.IsZero() {
		n.OccurredAt = time.Now().UTC()
	}
	if err := notifier.Notify(ctx, n); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("kind", n.Kind).Str("event_id", n.EventID).Msg("⚠️ notification failed")
	}
}

func publish(feed output.ChangeFeed, changes ...output.Change) {
	if feed == nil {
		return
	}
	for _, c := range changes {
		feed.Publish(c)
	}
}
