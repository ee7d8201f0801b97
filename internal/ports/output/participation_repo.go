package output

import (
	"context"

	"volleyhub/internal/domain/entities"
)

type ParticipationRepository interface {
	// Upsert writes the row keyed by (event, user), overwriting any previous one.
	Upsert(ctx context.Context, record *entities.ParticipationRecord) error
	Find(ctx context.Context, eventID, userID string) (*entities.ParticipationRecord, error)
	// ListByUser returns the user's rows ordered by start time; status "" means all.
	ListByUser(ctx context.Context, userID, status string) ([]entities.ParticipationRecord, error)
}
