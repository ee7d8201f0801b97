package output

import (
	"context"
	"time"

	"volleyhub/internal/domain/entities"
)

// EventRepository persists events. Conditional mutations report whether a row
// matched their guard instead of failing.
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	// FindByIDForUpdate locks the event row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*entities.Event, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]entities.Event, error)
	ListEndedByCreator(ctx context.Context, creatorID string, now time.Time) ([]entities.Event, error)
	// AddApplicant appends userID to the application list unless it already
	// appears in either list.
	AddApplicant(ctx context.Context, eventID, userID string) (bool, error)
	// AcceptApplicant moves userID from applications to players and decrements
	// find_num, only while find_num still equals expectedFindNum.
	AcceptApplicant(ctx context.Context, eventID, userID string, expectedFindNum int) (bool, error)
	RemoveApplicant(ctx context.Context, eventID, userID string) (bool, error)
	// CloseExpired flips every hold event ended at or before now to closed in one
	// statement and returns the ids it closed.
	CloseExpired(ctx context.Context, now time.Time) ([]string, error)
}
