package application

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"volleyhub/internal/ports/input"
	"volleyhub/internal/ports/output"
)

var _ input.CloserUseCase = (*CloserService)(nil)

// CloserService finalizes events whose time window has elapsed.
type CloserService struct {
	events   output.EventRepository
	feed     output.ChangeFeed
	notifier output.Notifier
	now      func() time.Time
}

func NewCloserService(events output.EventRepository, feed output.ChangeFeed, notifier output.Notifier) *CloserService {
	return &CloserService{events: events, feed: feed, notifier: notifier, now: time.Now}
}

// CloseExpired flips every hold event ended by now to closed as one atomic
// batch. A second run with nothing newly expired closes nothing.
func (s *CloserService) CloseExpired(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "CloserService.CloseExpired")
	defer span.End()

	now := s.now()
	ids, err := s.events.CloseExpired(ctx, now)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("❌ close expired events")
		return 0, err
	}
	span.SetAttributes(attribute.Int("events.closed", len(ids)))
	log.Ctx(ctx).Info().Int("closed", len(ids)).Time("now", now).Msg("✅ expired events closed")
	if len(ids) == 0 {
		return 0, nil
	}

	publish(s.feed, output.Change{Topic: output.TopicEvents})
	notify(ctx, s.notifier, output.Notification{
		Kind:     output.NotifyEventsClosed,
		EventIDs: ids,
	})
	return len(ids), nil
}
