package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/ports/input"
	"volleyhub/internal/ports/output"
	"volleyhub/pkg/tz"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	tx       output.TxManager
	events   output.EventRepository
	ledger   output.ParticipationRepository
	feed     output.ChangeFeed
	notifier output.Notifier
	loc      *time.Location
	now      func() time.Time
}

func NewEventService(
	tx output.TxManager,
	events output.EventRepository,
	ledger output.ParticipationRepository,
	feed output.ChangeFeed,
	notifier output.Notifier,
	loc *time.Location,
) *EventService {
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{
		tx:       tx,
		events:   events,
		ledger:   ledger,
		feed:     feed,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
	}
}

// CreateEvent holds a new event. The event and one accept ledger row per
// initial player are written in a single transaction.
func (s *EventService) CreateEvent(ctx context.Context, cmd input.CreateEventCommand) (*entities.Event, error) {
	ctx, span := tracer.Start(ctx, "EventService.CreateEvent")
	defer span.End()

	if err := validate.Struct(cmd); err != nil {
		return nil, validationError(err, domain.ErrInvalidEvent)
	}
	start, end, err := entities.EventWindow(cmd.Date, cmd.StartTime, cmd.DurationHours, s.loc)
	if err != nil {
		return nil, err
	}
	if !start.After(s.now()) {
		return nil, domain.ErrDateTimeInPast
	}

	players := entities.InitialPlayers(cmd.OrganizerID, cmd.InvitedIDs)
	event := &entities.Event{
		ID: uuid.NewString(),
		Court: entities.Court{
			Name:    cmd.CourtName,
			Address: cmd.CourtAddress,
			City:    cmd.CourtCity,
			Indoor:  cmd.Indoor,
			HasAC:   cmd.CourtHasAC,
		},
		CreatorID:       cmd.OrganizerID,
		Date:            tz.LocalDate(start, s.loc),
		StartAt:         start,
		EndAt:           end,
		FindNum:         cmd.FindNum,
		TotalCost:       cmd.TotalCost,
		AverageCost:     entities.AverageCost(cmd.TotalCost, cmd.FindNum, len(players)),
		Friendliness:    cmd.Friendliness,
		SkillLevel:      cmd.SkillLevel,
		NetHeight:       cmd.NetHeight,
		ACOn:            cmd.ACOn,
		Notes:           cmd.Notes,
		Status:          domain.EventStatusHold,
		PlayerList:      players,
		ApplicationList: []string{},
	}
	span.SetAttributes(attribute.String("event.id", event.ID), attribute.Int("event.players", len(players)))

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.events.Create(ctx, event); err != nil {
			return err
		}
		for _, userID := range players {
			rec := &entities.ParticipationRecord{
				EventID:  event.ID,
				UserID:   userID,
				Status:   domain.StatusAccept,
				Schedule: event.Schedule(),
			}
			if err := s.ledger.Upsert(ctx, rec); err != nil {
				return fmt.Errorf("enroll %s: %w", userID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.feed,
		output.Change{Topic: output.TopicEvents, EventID: event.ID},
		output.Change{Topic: output.TopicParticipations, EventID: event.ID, UserIDs: players},
	)
	log.Ctx(ctx).Info().Str("event_id", event.ID).Str("organizer", event.CreatorID).Int("players", len(players)).Msg("✅ event created")
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (*entities.Event, error) {
	return s.events.FindByID(ctx, eventID)
}

// ListUpcoming returns events starting after now, by date then start time.
func (s *EventService) ListUpcoming(ctx context.Context) ([]entities.Event, error) {
	return s.events.ListUpcoming(ctx, s.now())
}

// WatchUpcoming is the live variant of ListUpcoming. Besides store changes,
// the list is refreshed when its earliest event starts.
func (s *EventService) WatchUpcoming(ctx context.Context) (input.Subscription[[]entities.Event], error) {
	lq, err := startLiveQuery(ctx, s.feed, topicChanged(output.TopicEvents), s.ListUpcoming, &refreshSchedule[[]entities.Event]{
		next: earliestStart,
		now:  s.now,
	})
	if err != nil {
		return nil, err
	}
	return lq, nil
}

// ListOwnedClosed returns the events userID organized that have already ended.
func (s *EventService) ListOwnedClosed(ctx context.Context, userID string) ([]entities.Event, error) {
	return s.events.ListEndedByCreator(ctx, userID, s.now())
}

func (s *EventService) ApplyToEvent(ctx context.Context, eventID, userID string) (*entities.Event, error) {
	ctx, span := tracer.Start(ctx, "EventService.ApplyToEvent", trace.WithAttributes(attribute.String("event.id", eventID)))
	defer span.End()

	if userID == "" {
		return nil, domain.ErrNotAuthorized
	}
	var event *entities.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ev, err := s.events.FindByIDForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if ev.IsClosed() || ev.HasEnded(s.now()) {
			return domain.ErrEventClosed
		}
		if ev.IsPlayer(userID) {
			return domain.ErrAlreadyMember
		}
		if ev.IsApplicant(userID) {
			return domain.ErrAlreadyApplied
		}
		prev, err := s.ledger.Find(ctx, eventID, userID)
		switch {
		case err == nil && prev.Status == domain.StatusDecline:
			return domain.ErrApplicationDeclined
		case err != nil && !errors.Is(err, domain.ErrParticipationNotFound):
			return err
		}
		added, err := s.events.AddApplicant(ctx, eventID, userID)
		if err != nil {
			return err
		}
		if !added {
			return domain.ErrAlreadyApplied
		}
		rec := &entities.ParticipationRecord{
			EventID:  eventID,
			UserID:   userID,
			Status:   domain.StatusPending,
			Schedule: ev.Schedule(),
		}
		if err := s.ledger.Upsert(ctx, rec); err != nil {
			return err
		}
		ev.ApplicationList = append(ev.ApplicationList, userID)
		event = ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.feed,
		output.Change{Topic: output.TopicEvents, EventID: eventID},
		output.Change{Topic: output.TopicParticipations, EventID: eventID, UserIDs: []string{userID}},
	)
	notify(ctx, s.notifier, output.Notification{
		Kind:        output.NotifyApplied,
		EventID:     eventID,
		UserID:      userID,
		OrganizerID: event.CreatorID,
		CourtName:   event.Court.Name,
		StartAt:     event.StartAt,
	})
	return event, nil
}

// Approve moves applicantID into the player list and consumes one open slot.
// currentFindNum is the capacity the organizer saw; the approval only applies
// while it still matches the stored value.
func (s *EventService) Approve(ctx context.Context, organizerID, eventID, applicantID string, currentFindNum int) (*entities.Event, error) {
	ctx, span := tracer.Start(ctx, "EventService.Approve", trace.WithAttributes(attribute.String("event.id", eventID)))
	defer span.End()

	var event *entities.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ev, err := s.decidable(ctx, organizerID, eventID, applicantID)
		if err != nil {
			return err
		}
		if ev.FindNum != currentFindNum {
			return domain.ErrStaleCapacity
		}
		if ev.FindNum <= 0 {
			return domain.ErrEventFull
		}
		moved, err := s.events.AcceptApplicant(ctx, eventID, applicantID, currentFindNum)
		if err != nil {
			return err
		}
		if !moved {
			return domain.ErrStaleCapacity
		}
		rec := &entities.ParticipationRecord{
			EventID:  eventID,
			UserID:   applicantID,
			Status:   domain.StatusAccept,
			Schedule: ev.Schedule(),
		}
		if err := s.ledger.Upsert(ctx, rec); err != nil {
			return err
		}
		ev.ApplicationList = without(ev.ApplicationList, applicantID)
		ev.PlayerList = append(ev.PlayerList, applicantID)
		ev.FindNum--
		event = ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.feed,
		output.Change{Topic: output.TopicEvents, EventID: eventID},
		output.Change{Topic: output.TopicParticipations, EventID: eventID, UserIDs: []string{applicantID}},
	)
	notify(ctx, s.notifier, output.Notification{
		Kind:        output.NotifyAccepted,
		EventID:     eventID,
		UserID:      applicantID,
		OrganizerID: event.CreatorID,
		CourtName:   event.Court.Name,
		StartAt:     event.StartAt,
	})
	log.Ctx(ctx).Info().Str("event_id", eventID).Str("applicant", applicantID).Int("find_num", event.FindNum).Msg("✅ application accepted")
	return event, nil
}

// Decline removes applicantID from the application list. Players and capacity
// are left untouched.
func (s *EventService) Decline(ctx context.Context, organizerID, eventID, applicantID string) (*entities.Event, error) {
	ctx, span := tracer.Start(ctx, "EventService.Decline", trace.WithAttributes(attribute.String("event.id", eventID)))
	defer span.End()

	var event *entities.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ev, err := s.decidable(ctx, organizerID, eventID, applicantID)
		if err != nil {
			return err
		}
		removed, err := s.events.RemoveApplicant(ctx, eventID, applicantID)
		if err != nil {
			return err
		}
		if !removed {
			return domain.ErrNotApplicant
		}
		rec := &entities.ParticipationRecord{
			EventID:  eventID,
			UserID:   applicantID,
			Status:   domain.StatusDecline,
			Schedule: ev.Schedule(),
		}
		if err := s.ledger.Upsert(ctx, rec); err != nil {
			return err
		}
		ev.ApplicationList = without(ev.ApplicationList, applicantID)
		event = ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.feed,
		output.Change{Topic: output.TopicEvents, EventID: eventID},
		output.Change{Topic: output.TopicParticipations, EventID: eventID, UserIDs: []string{applicantID}},
	)
	notify(ctx, s.notifier, output.Notification{
		Kind:        output.NotifyDeclined,
		EventID:     eventID,
		UserID:      applicantID,
		OrganizerID: event.CreatorID,
		CourtName:   event.Court.Name,
		StartAt:     event.StartAt,
	})
	return event, nil
}

// decidable locks the event and checks that organizerID may decide on
// applicantID's pending application.
func (s *EventService) decidable(ctx context.Context, organizerID, eventID, applicantID string) (*entities.Event, error) {
	ev, err := s.events.FindByIDForUpdate(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.CreatorID != organizerID {
		return nil, domain.ErrNotOrganizer
	}
	if ev.IsClosed() || ev.HasEnded(s.now()) {
		return nil, domain.ErrEventClosed
	}
	if ev.IsPlayer(applicantID) {
		return nil, domain.ErrAlreadyMember
	}
	if !ev.IsApplicant(applicantID) {
		return nil, domain.ErrNotApplicant
	}
	return ev, nil
}

// earliestStart is when the first listed event stops being upcoming.
func earliestStart(events []entities.Event) (time.Time, bool) {
	var first time.Time
	for _, e := range events {
		if first.IsZero() || e.StartAt.Before(first) {
			first = e.StartAt
		}
	}
	return first, !first.IsZero()
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
