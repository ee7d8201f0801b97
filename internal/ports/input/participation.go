package input

import (
	"context"

	"volleyhub/internal/domain/entities"
)

type ParticipationUseCase interface {
	Upsert(ctx context.Context, eventID, userID, status string, schedule entities.Schedule) (*entities.ParticipationRecord, error)
	ListForUser(ctx context.Context, userID, status string) ([]entities.ParticipationRecord, error)
	WatchForUser(ctx context.Context, userID string, predicate func(entities.ParticipationRecord) bool) (Subscription[[]entities.ParticipationRecord], error)
	ListenForUser(ctx context.Context, userID string, predicate func(entities.ParticipationRecord) bool, onChange func([]entities.ParticipationRecord)) (func(), error)
}
