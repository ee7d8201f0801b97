package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"volleyhub/internal/domain/entities"
	"volleyhub/internal/infrastructure/broker"
	"volleyhub/internal/infrastructure/memstore"
	"volleyhub/internal/ports/input"
	"volleyhub/internal/ports/output"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

type recorder struct {
	mu    sync.Mutex
	sent  []output.Notification
	fails bool
}

func (r *recorder) Notify(_ context.Context, n output.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	if r.fails {
		return errors.New("smtp down")
	}
	return nil
}

func (r *recorder) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sent))
	for _, n := range r.sent {
		out = append(out, n.Kind)
	}
	return out
}

type testEnv struct {
	store    *memstore.Store
	hub      *broker.Hub
	clock    *clock
	notes    *recorder
	events   *EventService
	ledger   *ParticipationService
	feedback *FeedbackService
	closer   *CloserService
}

// morning is 2024-01-01 08:00 UTC, before the scenario event starts.
var morning = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memstore.New()
	hub := broker.NewHub()
	clk := &clock{t: morning}
	notes := &recorder{}

	events := NewEventService(store, store.Events(), store.Participations(), hub, notes, time.UTC)
	events.now = clk.Now
	feedback := NewFeedbackService(store, store.Events(), store.Feedback(), hub, notes)
	feedback.now = clk.Now
	closer := NewCloserService(store.Events(), hub, notes)
	closer.now = clk.Now

	return &testEnv{
		store:    store,
		hub:      hub,
		clock:    clk,
		notes:    notes,
		events:   events,
		ledger:   NewParticipationService(store.Participations(), hub),
		feedback: feedback,
		closer:   closer,
	}
}

func scenarioCommand() input.CreateEventCommand {
	return input.CreateEventCommand{
		OrganizerID:   "O",
		CourtName:     "Riverside Gym",
		Date:          "2024-01-01",
		StartTime:     "14:00",
		DurationHours: 2,
		FindNum:       5,
		TotalCost:     600,
		InvitedIDs:    []string{"P1"},
	}
}

func (e *testEnv) create(t *testing.T) *entities.Event {
	t.Helper()
	ev, err := e.events.CreateEvent(context.Background(), scenarioCommand())
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return ev
}

func (e *testEnv) status(t *testing.T, eventID, userID string) string {
	t.Helper()
	rec, err := e.store.Participations().Find(context.Background(), eventID, userID)
	if err != nil {
		t.Fatalf("Find(%s, %s): %v", eventID, userID, err)
	}
	return rec.Status
}

// waitFor reads from ch until ok accepts a value or the deadline passes.
func waitFor[T any](t *testing.T, ch <-chan T, ok func(T) bool) T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case v, open := <-ch:
			if !open {
				t.Fatal("subscription closed before expected update")
			}
			if ok(v) {
				return v
			}
		case <-deadline:
			t.Fatal("timed out waiting for update")
		}
	}
}
