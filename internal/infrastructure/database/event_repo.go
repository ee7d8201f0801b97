package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/infrastructure/database/sqlc_generated"
	"volleyhub/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	q *sqlc_generated.Queries
}

func NewEventRepository(q *sqlc_generated.Queries) *EventRepository {
	return &EventRepository{q: q}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	date, err := dateToPg(event.Date)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	row, err := queriesFor(ctx, r.q).CreateEvent(ctx, sqlc_generated.CreateEventParams{
		ID:              event.ID,
		CourtName:       event.Court.Name,
		CourtAddress:    event.Court.Address,
		CourtCity:       event.Court.City,
		CourtIndoor:     event.Court.Indoor,
		CourtHasAc:      event.Court.HasAC,
		CreatorID:       event.CreatorID,
		EventDate:       date,
		StartAt:         timeToTimestamptz(event.StartAt),
		EndAt:           timeToTimestamptz(event.EndAt),
		FindNum:         int32(event.FindNum),
		TotalCost:       int32(event.TotalCost),
		AverageCost:     int32(event.AverageCost),
		Friendliness:    event.Friendliness,
		SkillLevel:      event.SkillLevel,
		NetHeight:       event.NetHeight,
		AcOn:            event.ACOn,
		Notes:           event.Notes,
		Status:          event.Status,
		PlayerList:      nonNil(event.PlayerList),
		ApplicationList: nonNil(event.ApplicationList),
	})
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	event.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	row, err := queriesFor(ctx, r.q).GetEventByID(ctx, id)
	if err != nil {
		return nil, eventErr("get event by id", err)
	}
	e := eventToDomain(row)
	return &e, nil
}

func (r *EventRepository) FindByIDForUpdate(ctx context.Context, id string) (*entities.Event, error) {
	row, err := queriesFor(ctx, r.q).GetEventByIDForUpdate(ctx, id)
	if err != nil {
		return nil, eventErr("lock event", err)
	}
	e := eventToDomain(row)
	return &e, nil
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]entities.Event, error) {
	rows, err := queriesFor(ctx, r.q).ListUpcomingEvents(ctx, timeToTimestamptz(now))
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return eventsToDomain(rows), nil
}

func (r *EventRepository) ListEndedByCreator(ctx context.Context, creatorID string, now time.Time) ([]entities.Event, error) {
	rows, err := queriesFor(ctx, r.q).ListEndedEventsByCreator(ctx, sqlc_generated.ListEndedEventsByCreatorParams{
		CreatorID: creatorID,
		EndAt:     timeToTimestamptz(now),
	})
	if err != nil {
		return nil, fmt.Errorf("list ended events by creator: %w", err)
	}
	return eventsToDomain(rows), nil
}

func (r *EventRepository) AddApplicant(ctx context.Context, eventID, userID string) (bool, error) {
	n, err := queriesFor(ctx, r.q).AddApplicant(ctx, sqlc_generated.AddApplicantParams{
		UserID: userID,
		ID:     eventID,
	})
	if err != nil {
		return false, fmt.Errorf("add applicant: %w", err)
	}
	return n == 1, nil
}

func (r *EventRepository) AcceptApplicant(ctx context.Context, eventID, userID string, expectedFindNum int) (bool, error) {
	n, err := queriesFor(ctx, r.q).AcceptApplicant(ctx, sqlc_generated.AcceptApplicantParams{
		UserID:          userID,
		ID:              eventID,
		ExpectedFindNum: int32(expectedFindNum),
	})
	if err != nil {
		return false, fmt.Errorf("accept applicant: %w", err)
	}
	return n == 1, nil
}

func (r *EventRepository) RemoveApplicant(ctx context.Context, eventID, userID string) (bool, error) {
	n, err := queriesFor(ctx, r.q).RemoveApplicant(ctx, sqlc_generated.RemoveApplicantParams{
		UserID: userID,
		ID:     eventID,
	})
	if err != nil {
		return false, fmt.Errorf("remove applicant: %w", err)
	}
	return n == 1, nil
}

func (r *EventRepository) CloseExpired(ctx context.Context, now time.Time) ([]string, error) {
	ids, err := queriesFor(ctx, r.q).CloseExpiredEvents(ctx, timeToTimestamptz(now))
	if err != nil {
		return nil, fmt.Errorf("close expired events: %w", err)
	}
	return ids, nil
}

func eventErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrEventNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
