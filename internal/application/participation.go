package application

import (
	"context"
	"sync"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/ports/input"
	"volleyhub/internal/ports/output"
)

var _ input.ParticipationUseCase = (*ParticipationService)(nil)

// ParticipationService serves the per-user ledger behind calendars and chat rooms.
type ParticipationService struct {
	ledger output.ParticipationRepository
	feed   output.ChangeFeed
}

func NewParticipationService(ledger output.ParticipationRepository, feed output.ChangeFeed) *ParticipationService {
	return &ParticipationService{ledger: ledger, feed: feed}
}

// Upsert overwrites the ledger row keyed by (eventID, userID).
func (s *ParticipationService) Upsert(ctx context.Context, eventID, userID, status string, schedule entities.Schedule) (*entities.ParticipationRecord, error) {
	if !domain.ValidParticipationStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if eventID == "" || userID == "" {
		return nil, domain.ErrInvalidRequest
	}
	rec := &entities.ParticipationRecord{
		EventID:  eventID,
		UserID:   userID,
		Status:   status,
		Schedule: schedule,
	}
	if err := s.ledger.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	publish(s.feed, output.Change{Topic: output.TopicParticipations, EventID: eventID, UserIDs: []string{userID}})
	return rec, nil
}

// ListForUser returns userID's rows ordered by start time, optionally limited
// to one status.
func (s *ParticipationService) ListForUser(ctx context.Context, userID, status string) ([]entities.ParticipationRecord, error) {
	if status != "" && !domain.ValidParticipationStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.ledger.ListByUser(ctx, userID, status)
}

func (s *ParticipationService) WatchForUser(
	ctx context.Context,
	userID string,
	predicate func(entities.ParticipationRecord) bool,
) (input.Subscription[[]entities.ParticipationRecord], error) {
	query := func(ctx context.Context) ([]entities.ParticipationRecord, error) {
		all, err := s.ledger.ListByUser(ctx, userID, "")
		if err != nil {
			return nil, err
		}
		if predicate == nil {
			return all, nil
		}
		out := make([]entities.ParticipationRecord, 0, len(all))
		for _, r := range all {
			if predicate(r) {
				out = append(out, r)
			}
		}
		return out, nil
	}
	lq, err := startLiveQuery(ctx, s.feed, userChanged(output.TopicParticipations, userID), query, nil)
	if err != nil {
		return nil, err
	}
	return lq, nil
}

// ListenForUser calls onChange with the filtered rows now and after every
// change, until the returned function is called or ctx ends. No call starts
// after the returned function has returned.
func (s *ParticipationService) ListenForUser(
	ctx context.Context,
	userID string,
	predicate func(entities.ParticipationRecord) bool,
	onChange func([]entities.ParticipationRecord),
) (func(), error) {
	sub, err := s.WatchForUser(ctx, userID, predicate)
	if err != nil {
		return nil, err
	}
	stopped := make(chan struct{})
	var once sync.Once
	go func() {
		for records := range sub.Updates() {
			select {
			case <-stopped:
				return
			default:
			}
			onChange(records)
		}
	}()
	return func() {
		once.Do(func() {
			close(stopped)
			sub.Unsubscribe()
		})
	}, nil
}
