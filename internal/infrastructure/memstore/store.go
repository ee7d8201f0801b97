// Package memstore is an in-process implementation of the storage ports, used
// for local runs (STORAGE=memory) and tests.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"volleyhub/internal/domain/entities"
	"volleyhub/internal/ports/output"
)

var _ output.TxManager = (*Store)(nil)

type txKey struct{}

// Store keeps every collection behind one mutex. A transaction holds the mutex
// for its whole duration and restores a snapshot when it fails.
type Store struct {
	mu            sync.Mutex
	events        map[string]entities.Event
	participation map[string]entities.ParticipationRecord
	feedback      map[string]entities.FeedbackRecord
	now           func() time.Time
}

func New() *Store {
	return &Store{
		events:        map[string]entities.Event{},
		participation: map[string]entities.ParticipationRecord{},
		feedback:      map[string]entities.FeedbackRecord{},
		now:           time.Now,
	}
}

// WithinTx runs fn while holding the store; writes are undone if fn fails.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) == s {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	events := cloneEvents(s.events)
	participation := maps.Clone(s.participation)
	feedback := maps.Clone(s.feedback)

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.events = events
		s.participation = participation
		s.feedback = feedback
		return err
	}
	return nil
}

// locked runs fn under the store mutex unless ctx already belongs to a transaction.
func (s *Store) locked(ctx context.Context, fn func()) {
	if ctx.Value(txKey{}) == s {
		fn()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *Store) Events() *EventRepository {
	return &EventRepository{s: s}
}

func (s *Store) Participations() *ParticipationRepository {
	return &ParticipationRepository{s: s}
}

func (s *Store) Feedback() *FeedbackRepository {
	return &FeedbackRepository{s: s}
}

func (s *Store) stamp() time.Time {
	return s.now().UTC()
}

func cloneEvent(e entities.Event) entities.Event {
	e.PlayerList = slices.Clone(e.PlayerList)
	e.ApplicationList = slices.Clone(e.ApplicationList)
	if e.PlayerList == nil {
		e.PlayerList = []string{}
	}
	if e.ApplicationList == nil {
		e.ApplicationList = []string{}
	}
	return e
}

func cloneEvents(in map[string]entities.Event) map[string]entities.Event {
	out := make(map[string]entities.Event, len(in))
	for k, v := range in {
		out[k] = cloneEvent(v)
	}
	return out
}
