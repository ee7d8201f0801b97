package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/infrastructure/database/sqlc_generated"
	"volleyhub/internal/ports/output"
)

var _ output.ParticipationRepository = (*ParticipationRepository)(nil)

type ParticipationRepository struct {
	q *sqlc_generated.Queries
}

func NewParticipationRepository(q *sqlc_generated.Queries) *ParticipationRepository {
	return &ParticipationRepository{q: q}
}

func (r *ParticipationRepository) Upsert(ctx context.Context, record *entities.ParticipationRecord) error {
	date, err := dateToPg(record.Schedule.Date)
	if err != nil {
		return fmt.Errorf("upsert participation: %w", err)
	}
	row, err := queriesFor(ctx, r.q).UpsertParticipation(ctx, sqlc_generated.UpsertParticipationParams{
		EventID:      record.EventID,
		UserID:       record.UserID,
		Status:       record.Status,
		ScheduleDate: date,
		StartAt:      timeToTimestamptz(record.Schedule.StartAt),
		EndAt:        timeToTimestamptz(record.Schedule.EndAt),
		CourtName:    record.Schedule.CourtName,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("upsert participation: %w", err)
	}
	record.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	record.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

func (r *ParticipationRepository) Find(ctx context.Context, eventID, userID string) (*entities.ParticipationRecord, error) {
	row, err := queriesFor(ctx, r.q).GetParticipation(ctx, sqlc_generated.GetParticipationParams{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipationNotFound
		}
		return nil, fmt.Errorf("get participation: %w", err)
	}
	p := participationToDomain(row)
	return &p, nil
}

func (r *ParticipationRepository) ListByUser(ctx context.Context, userID, status string) ([]entities.ParticipationRecord, error) {
	rows, err := queriesFor(ctx, r.q).ListParticipationsByUser(ctx, sqlc_generated.ListParticipationsByUserParams{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		return nil, fmt.Errorf("list participations by user: %w", err)
	}
	out := make([]entities.ParticipationRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, participationToDomain(row))
	}
	return out, nil
}
