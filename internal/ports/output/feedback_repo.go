package output

import (
	"context"

	"volleyhub/internal/domain/entities"
)

type FeedbackRepository interface {
	Upsert(ctx context.Context, record *entities.FeedbackRecord) error
	Find(ctx context.Context, eventID, userID string) (*entities.FeedbackRecord, error)
	ListByUser(ctx context.Context, userID string) ([]entities.FeedbackRecord, error)
}
