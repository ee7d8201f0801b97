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

var _ output.FeedbackRepository = (*FeedbackRepository)(nil)

type FeedbackRepository struct {
	q *sqlc_generated.Queries
}

func NewFeedbackRepository(q *sqlc_generated.Queries) *FeedbackRepository {
	return &FeedbackRepository{q: q}
}

func (r *FeedbackRepository) Upsert(ctx context.Context, record *entities.FeedbackRecord) error {
	date, err := dateToPg(record.Schedule.Date)
	if err != nil {
		return fmt.Errorf("upsert feedback: %w", err)
	}
	row, err := queriesFor(ctx, r.q).UpsertFeedback(ctx, sqlc_generated.UpsertFeedbackParams{
		EventID:      record.EventID,
		UserID:       record.UserID,
		RaterID:      record.RaterID,
		ScheduleDate: date,
		StartAt:      timeToTimestamptz(record.Schedule.StartAt),
		EndAt:        timeToTimestamptz(record.Schedule.EndAt),
		CourtName:    record.Schedule.CourtName,
		Friendliness: record.Friendliness,
		SkillLevel:   record.SkillLevel,
		Grade:        gradeToInt4(record.Grade),
		Note:         record.Note,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("upsert feedback: %w", err)
	}
	record.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	record.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

func (r *FeedbackRepository) Find(ctx context.Context, eventID, userID string) (*entities.FeedbackRecord, error) {
	row, err := queriesFor(ctx, r.q).GetFeedback(ctx, sqlc_generated.GetFeedbackParams{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	f := feedbackToDomain(row)
	return &f, nil
}

func (r *FeedbackRepository) ListByUser(ctx context.Context, userID string) ([]entities.FeedbackRecord, error) {
	rows, err := queriesFor(ctx, r.q).ListFeedbackByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list feedback by user: %w", err)
	}
	out := make([]entities.FeedbackRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, feedbackToDomain(row))
	}
	return out, nil
}
