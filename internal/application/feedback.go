package application

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/ports/input"
	"volleyhub/internal/ports/output"
)

var _ input.FeedbackUseCase = (*FeedbackService)(nil)

type FeedbackService struct {
	tx       output.TxManager
	events   output.EventRepository
	feedback output.FeedbackRepository
	feed     output.ChangeFeed
	notifier output.Notifier
	now      func() time.Time
}

func NewFeedbackService(
	tx output.TxManager,
	events output.EventRepository,
	feedback output.FeedbackRepository,
	feed output.ChangeFeed,
	notifier output.Notifier,
) *FeedbackService {
	return &FeedbackService{
		tx:       tx,
		events:   events,
		feedback: feedback,
		feed:     feed,
		notifier: notifier,
		now:      time.Now,
	}
}

// Submit records the organizer's rating of a player. A second submission for
// the same (event, user) overwrites the first.
func (s *FeedbackService) Submit(ctx context.Context, cmd input.SubmitFeedbackCommand) (*entities.FeedbackRecord, error) {
	ctx, span := tracer.Start(ctx, "FeedbackService.Submit", trace.WithAttributes(attribute.String("event.id", cmd.EventID)))
	defer span.End()

	if err := validate.Struct(cmd); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "Grade" {
			return nil, validationError(err, domain.ErrInvalidGrade)
		}
		return nil, validationError(err, domain.ErrInvalidFeedback)
	}

	var rec *entities.FeedbackRecord
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ev, err := s.events.FindByID(ctx, cmd.EventID)
		if err != nil {
			return err
		}
		if ev.CreatorID != cmd.RaterID {
			return domain.ErrNotOrganizer
		}
		if !ev.HasEnded(s.now()) {
			return domain.ErrEventNotEnded
		}
		if cmd.UserID == ev.CreatorID || !ev.IsPlayer(cmd.UserID) {
			return domain.ErrNotPlayer
		}
		grade := *cmd.Grade
		rec = &entities.FeedbackRecord{
			EventID:      cmd.EventID,
			UserID:       cmd.UserID,
			RaterID:      cmd.RaterID,
			Schedule:     ev.Schedule(),
			Friendliness: cmd.Friendliness,
			SkillLevel:   cmd.SkillLevel,
			Grade:        &grade,
			Note:         cmd.Note,
		}
		return s.feedback.Upsert(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	publish(s.feed, output.Change{Topic: output.TopicFeedback, EventID: cmd.EventID, UserIDs: []string{cmd.UserID}})
	notify(ctx, s.notifier, output.Notification{
		Kind:        output.NotifyFeedbackSubmitted,
		EventID:     cmd.EventID,
		UserID:      cmd.UserID,
		OrganizerID: cmd.RaterID,
		CourtName:   rec.Schedule.CourtName,
		StartAt:     rec.Schedule.StartAt,
	})
	log.Ctx(ctx).Info().Str("event_id", cmd.EventID).Str("user_id", cmd.UserID).Int("grade", *rec.Grade).Msg("✅ feedback saved")
	return rec, nil
}

// Get returns the stored feedback, used to prefill the edit form.
func (s *FeedbackService) Get(ctx context.Context, eventID, userID string) (*entities.FeedbackRecord, error) {
	return s.feedback.Find(ctx, eventID, userID)
}

func (s *FeedbackService) ListForUser(ctx context.Context, userID string) ([]entities.FeedbackRecord, error) {
	return s.feedback.ListByUser(ctx, userID)
}

// Reputation is the average grade across every feedback userID received.
func (s *FeedbackService) Reputation(ctx context.Context, userID string) (float64, error) {
	records, err := s.feedback.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return entities.AverageGrade(records), nil
}
