package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
)

func seed(t *testing.T, s *Store, id string, start time.Time) {
	t.Helper()
	err := s.Events().Create(context.Background(), &entities.Event{
		ID:         id,
		CreatorID:  "org",
		Date:       start.Format("2006-01-02"),
		StartAt:    start,
		EndAt:      start.Add(2 * time.Hour),
		FindNum:    2,
		Status:     domain.EventStatusHold,
		PlayerList: []string{"org"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestWithinTxRollsBack(t *testing.T) {
	s := New()
	ctx := context.Background()
	seed(t, s, "e1", time.Now().Add(24*time.Hour))

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.Events().AddApplicant(ctx, "e1", "u1"); err != nil {
			return err
		}
		if err := s.Participations().Upsert(ctx, &entities.ParticipationRecord{EventID: "e1", UserID: "u1", Status: domain.StatusPending}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	e, err := s.Events().FindByID(ctx, "e1")
	if err != nil {
		t.Fatal(err)
	}
	if len(e.ApplicationList) != 0 {
		t.Fatalf("application list = %v, want empty after rollback", e.ApplicationList)
	}
	if _, err := s.Participations().Find(ctx, "e1", "u1"); !errors.Is(err, domain.ErrParticipationNotFound) {
		t.Fatalf("participation err = %v, want not found", err)
	}
}

func TestAcceptApplicantGuardsFindNum(t *testing.T) {
	s := New()
	ctx := context.Background()
	seed(t, s, "e1", time.Now().Add(24*time.Hour))
	events := s.Events()

	if ok, _ := events.AddApplicant(ctx, "e1", "u1"); !ok {
		t.Fatal("first apply should succeed")
	}
	if ok, _ := events.AddApplicant(ctx, "e1", "u1"); ok {
		t.Fatal("duplicate apply should be a no-op")
	}
	if ok, _ := events.AcceptApplicant(ctx, "e1", "u1", 3); ok {
		t.Fatal("stale find_num must not match")
	}
	if ok, _ := events.AcceptApplicant(ctx, "e1", "u1", 2); !ok {
		t.Fatal("accept should match")
	}

	e, _ := events.FindByID(ctx, "e1")
	if e.FindNum != 1 || !e.IsPlayer("u1") || e.IsApplicant("u1") {
		t.Fatalf("unexpected event after accept: %+v", e)
	}
}

func TestFindReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	seed(t, s, "e1", time.Now().Add(time.Hour))

	e, _ := s.Events().FindByID(ctx, "e1")
	e.PlayerList[0] = "mallory"

	again, _ := s.Events().FindByID(ctx, "e1")
	if again.PlayerList[0] != "org" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestCloseExpiredIsIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now()
	seed(t, s, "past", now.Add(-3*time.Hour))
	seed(t, s, "future", now.Add(time.Hour))

	ids, err := s.Events().CloseExpired(ctx, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "past" {
		t.Fatalf("closed = %v, want [past]", ids)
	}
	if ids, _ = s.Events().CloseExpired(ctx, now); len(ids) != 0 {
		t.Fatalf("second sweep closed %v", ids)
	}
}

func TestListByUserFiltersStatus(t *testing.T) {
	s := New()
	ctx := context.Background()
	seed(t, s, "e1", time.Now().Add(time.Hour))
	seed(t, s, "e2", time.Now().Add(2*time.Hour))
	repo := s.Participations()
	_ = repo.Upsert(ctx, &entities.ParticipationRecord{EventID: "e1", UserID: "u1", Status: domain.StatusPending})
	_ = repo.Upsert(ctx, &entities.ParticipationRecord{EventID: "e2", UserID: "u1", Status: domain.StatusAccept})
	_ = repo.Upsert(ctx, &entities.ParticipationRecord{EventID: "e2", UserID: "u2", Status: domain.StatusAccept})

	all, _ := repo.ListByUser(ctx, "u1", "")
	if len(all) != 2 {
		t.Fatalf("all = %d rows, want 2", len(all))
	}
	accepted, _ := repo.ListByUser(ctx, "u1", domain.StatusAccept)
	if len(accepted) != 1 || accepted[0].EventID != "e2" {
		t.Fatalf("accepted = %+v", accepted)
	}
}

func TestUpsertRequiresEvent(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.Participations().Upsert(ctx, &entities.ParticipationRecord{EventID: "ghost", UserID: "u1", Status: domain.StatusAccept})
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("participation err = %v, want event not found", err)
	}
	grade := 80
	err = s.Feedback().Upsert(ctx, &entities.FeedbackRecord{EventID: "ghost", UserID: "u1", Grade: &grade})
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("feedback err = %v, want event not found", err)
	}
	if rows, _ := s.Participations().ListByUser(ctx, "u1", ""); len(rows) != 0 {
		t.Fatalf("orphan rows stored: %+v", rows)
	}
}
