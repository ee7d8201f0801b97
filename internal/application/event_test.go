package application

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/ports/input"
	"volleyhub/internal/ports/output"
)

func TestCreateEventScenario(t *testing.T) {
	env := newEnv(t)
	ev := env.create(t)

	if ev.AverageCost != 86 {
		t.Errorf("AverageCost = %d, want 86", ev.AverageCost)
	}
	if !slices.Equal(ev.PlayerList, []string{"O", "P1"}) {
		t.Errorf("PlayerList = %v, want [O P1]", ev.PlayerList)
	}
	if ev.Status != domain.EventStatusHold {
		t.Errorf("Status = %q, want hold", ev.Status)
	}
	wantStart := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	if !ev.StartAt.Equal(wantStart) || !ev.EndAt.Equal(wantStart.Add(2*time.Hour)) {
		t.Errorf("window = %s..%s", ev.StartAt, ev.EndAt)
	}
	for _, u := range []string{"O", "P1"} {
		if got := env.status(t, ev.ID, u); got != domain.StatusAccept {
			t.Errorf("ledger(%s) = %q, want accept", u, got)
		}
	}
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *input.CreateEventCommand)
		want   *domain.Error
	}{
		{"missing court", func(c *input.CreateEventCommand) { c.CourtName = "" }, domain.ErrInvalidEvent},
		{"bad date", func(c *input.CreateEventCommand) { c.Date = "01/01/2024" }, domain.ErrInvalidEvent},
		{"zero duration", func(c *input.CreateEventCommand) { c.DurationHours = 0 }, domain.ErrInvalidEvent},
		{"negative find", func(c *input.CreateEventCommand) { c.FindNum = -1 }, domain.ErrInvalidEvent},
		{"bad level", func(c *input.CreateEventCommand) { c.SkillLevel = "Z" }, domain.ErrInvalidEvent},
		{"in the past", func(c *input.CreateEventCommand) { c.StartTime = "07:00" }, domain.ErrDateTimeInPast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t)
			cmd := scenarioCommand()
			tt.mutate(&cmd)
			_, err := env.events.CreateEvent(context.Background(), cmd)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateEventDeduplicatesInvitees(t *testing.T) {
	env := newEnv(t)
	cmd := scenarioCommand()
	cmd.InvitedIDs = []string{"P1", "O", "P1", "P2"}

	ev, err := env.events.CreateEvent(context.Background(), cmd)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ev.PlayerList, []string{"O", "P1", "P2"}) {
		t.Fatalf("PlayerList = %v", ev.PlayerList)
	}
	if ev.AverageCost != 75 {
		t.Fatalf("AverageCost = %d, want 75", ev.AverageCost)
	}
}

func TestApplyTwiceIsRejected(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)

	if _, err := env.events.ApplyToEvent(ctx, ev.ID, "A"); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := env.events.ApplyToEvent(ctx, ev.ID, "A"); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("second apply err = %v, want already applied", err)
	}
	if got := env.status(t, ev.ID, "A"); got != domain.StatusPending {
		t.Fatalf("ledger = %q, want pending", got)
	}
}

func TestApplyRejections(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)

	if _, err := env.events.ApplyToEvent(ctx, ev.ID, "P1"); !errors.Is(err, domain.ErrAlreadyMember) {
		t.Errorf("player apply err = %v", err)
	}
	if _, err := env.events.ApplyToEvent(ctx, "missing", "A"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("missing event err = %v", err)
	}
	if _, err := env.events.ApplyToEvent(ctx, ev.ID, ""); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Errorf("anonymous apply err = %v", err)
	}

	env.clock.Set(ev.EndAt)
	if _, err := env.events.ApplyToEvent(ctx, ev.ID, "late"); !errors.Is(err, domain.ErrEventClosed) {
		t.Errorf("ended event err = %v", err)
	}
}

func TestApproveScenario(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)

	if _, err := env.events.ApplyToEvent(ctx, ev.ID, "A"); err != nil {
		t.Fatal(err)
	}
	got, err := env.events.Approve(ctx, "O", ev.ID, "A", 5)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if len(got.ApplicationList) != 0 {
		t.Errorf("ApplicationList = %v, want empty", got.ApplicationList)
	}
	if !slices.Contains(got.PlayerList, "A") || got.FindNum != 4 {
		t.Errorf("after approve: players=%v findNum=%d", got.PlayerList, got.FindNum)
	}
	if s := env.status(t, ev.ID, "A"); s != domain.StatusAccept {
		t.Errorf("ledger = %q, want accept", s)
	}

	stored, _ := env.events.GetEvent(ctx, ev.ID)
	if stored.FindNum != 4 || stored.IsApplicant("A") || !stored.IsPlayer("A") {
		t.Errorf("stored event diverged: %+v", stored)
	}
	if kinds := env.notes.kinds(); !slices.Equal(kinds, []string{output.NotifyApplied, output.NotifyAccepted}) {
		t.Errorf("notifications = %v", kinds)
	}
}

func TestApproveGuards(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)
	_, _ = env.events.ApplyToEvent(ctx, ev.ID, "A")

	if _, err := env.events.Approve(ctx, "P1", ev.ID, "A", 5); !errors.Is(err, domain.ErrNotOrganizer) {
		t.Errorf("non-organizer err = %v", err)
	}
	if _, err := env.events.Approve(ctx, "O", ev.ID, "A", 6); !errors.Is(err, domain.ErrStaleCapacity) {
		t.Errorf("stale find_num err = %v", err)
	}
	if _, err := env.events.Approve(ctx, "O", ev.ID, "stranger", 5); !errors.Is(err, domain.ErrNotApplicant) {
		t.Errorf("non-applicant err = %v", err)
	}

	stored, _ := env.events.GetEvent(ctx, ev.ID)
	if stored.FindNum != 5 || !stored.IsApplicant("A") {
		t.Fatalf("rejected approvals mutated the event: %+v", stored)
	}
}

func TestApproveWhenFull(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	cmd := scenarioCommand()
	cmd.FindNum = 0
	ev, err := env.events.CreateEvent(ctx, cmd)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = env.events.ApplyToEvent(ctx, ev.ID, "A")

	if _, err := env.events.Approve(ctx, "O", ev.ID, "A", 0); !errors.Is(err, domain.ErrEventFull) {
		t.Fatalf("err = %v, want event full", err)
	}
}

func TestConcurrentApprovalsConsumeOneSlotEach(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)
	_, _ = env.events.ApplyToEvent(ctx, ev.ID, "A")
	_, _ = env.events.ApplyToEvent(ctx, ev.ID, "B")

	// Both organizer screens saw find_num 5; only the first decision lands.
	if _, err := env.events.Approve(ctx, "O", ev.ID, "A", 5); err != nil {
		t.Fatal(err)
	}
	if _, err := env.events.Approve(ctx, "O", ev.ID, "B", 5); !errors.Is(err, domain.ErrStaleCapacity) {
		t.Fatalf("second approval err = %v, want stale capacity", err)
	}
	if _, err := env.events.Approve(ctx, "O", ev.ID, "B", 4); err != nil {
		t.Fatalf("retry with fresh find_num: %v", err)
	}
	stored, _ := env.events.GetEvent(ctx, ev.ID)
	if stored.FindNum != 3 {
		t.Fatalf("FindNum = %d, want 3", stored.FindNum)
	}
}

func TestDecline(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)
	_, _ = env.events.ApplyToEvent(ctx, ev.ID, "A")

	got, err := env.events.Decline(ctx, "O", ev.ID, "A")
	if err != nil {
		t.Fatalf("Decline: %v", err)
	}
	if len(got.ApplicationList) != 0 || got.FindNum != 5 || !slices.Equal(got.PlayerList, []string{"O", "P1"}) {
		t.Errorf("after decline: %+v", got)
	}
	if s := env.status(t, ev.ID, "A"); s != domain.StatusDecline {
		t.Errorf("ledger = %q, want decline", s)
	}
	if _, err := env.events.ApplyToEvent(ctx, ev.ID, "A"); !errors.Is(err, domain.ErrApplicationDeclined) {
		t.Errorf("re-apply err = %v, want declined", err)
	}
	if _, err := env.events.Decline(ctx, "O", ev.ID, "A"); !errors.Is(err, domain.ErrNotApplicant) {
		t.Errorf("double decline err = %v", err)
	}
}

func TestPlayerAndApplicantListsStayDisjoint(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)

	for _, u := range []string{"A", "B", "C", "D"} {
		_, _ = env.events.ApplyToEvent(ctx, ev.ID, u)
	}
	_, _ = env.events.Approve(ctx, "O", ev.ID, "A", 5)
	_, _ = env.events.Decline(ctx, "O", ev.ID, "B")
	_, _ = env.events.ApplyToEvent(ctx, ev.ID, "A")
	_, _ = env.events.Approve(ctx, "O", ev.ID, "C", 4)

	stored, _ := env.events.GetEvent(ctx, ev.ID)
	for _, p := range stored.PlayerList {
		if slices.Contains(stored.ApplicationList, p) {
			t.Fatalf("%s is both player and applicant: %+v", p, stored)
		}
	}
}

type failingLedger struct {
	output.ParticipationRepository
	err error
}

func (f failingLedger) Upsert(context.Context, *entities.ParticipationRecord) error {
	return f.err
}

func TestApplyRollsBackWhenLedgerWriteFails(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)

	boom := errors.New("ledger unavailable")
	svc := NewEventService(env.store, env.store.Events(), failingLedger{env.store.Participations(), boom}, env.hub, nil, time.UTC)
	svc.now = env.clock.Now

	if _, err := svc.ApplyToEvent(ctx, ev.ID, "A"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	stored, _ := env.events.GetEvent(ctx, ev.ID)
	if stored.IsApplicant("A") {
		t.Fatal("event write survived a failed ledger write")
	}
}

func TestNotificationFailureDoesNotFailApply(t *testing.T) {
	env := newEnv(t)
	env.notes.fails = true
	ev := env.create(t)

	if _, err := env.events.ApplyToEvent(context.Background(), ev.ID, "A"); err != nil {
		t.Fatalf("apply failed because of notifier: %v", err)
	}
}

func TestListOwnedClosed(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)

	if got, _ := env.events.ListOwnedClosed(ctx, "O"); len(got) != 0 {
		t.Fatalf("before end: %d events", len(got))
	}
	env.clock.Set(ev.EndAt.Add(time.Minute))
	got, _ := env.events.ListOwnedClosed(ctx, "O")
	if len(got) != 1 || got[0].ID != ev.ID {
		t.Fatalf("after end: %+v", got)
	}
	if got, _ := env.events.ListOwnedClosed(ctx, "P1"); len(got) != 0 {
		t.Fatalf("non-creator sees %d events", len(got))
	}
}

func TestWatchUpcoming(t *testing.T) {
	env := newEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := env.events.WatchUpcoming(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Unsubscribe()

	waitFor(t, sub.Updates(), func(evs []entities.Event) bool { return len(evs) == 0 })
	ev := env.create(t)
	got := waitFor(t, sub.Updates(), func(evs []entities.Event) bool { return len(evs) == 1 })
	if got[0].ID != ev.ID {
		t.Fatalf("got %s, want %s", got[0].ID, ev.ID)
	}
}

func TestWatchUpcomingDropsStartedEvents(t *testing.T) {
	env := newEnv(t)
	ev := env.create(t)
	env.clock.Set(ev.StartAt.Add(-50 * time.Millisecond))

	sub, err := env.events.WatchUpcoming(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Unsubscribe()
	waitFor(t, sub.Updates(), func(evs []entities.Event) bool { return len(evs) == 1 })

	env.clock.Set(ev.StartAt.Add(time.Minute))
	waitFor(t, sub.Updates(), func(evs []entities.Event) bool { return len(evs) == 0 })
}

func TestCreateEventStoresLocalDate(t *testing.T) {
	env := newEnv(t)
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	env.events.loc = paris
	ev := env.create(t)
	if ev.Date != "2024-01-01" || ev.StartAt.UTC().Hour() != 13 {
		t.Fatalf("date %s start %s", ev.Date, ev.StartAt.UTC())
	}
}
