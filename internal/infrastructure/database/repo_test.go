package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/infrastructure/database/sqlc_generated"
)

// testPool connects to TEST_DATABASE_URL, applies the migrations and empties
// the tables. Tests are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	migrations, err := filepath.Abs("../../../db/migrations")
	if err != nil {
		t.Fatal(err)
	}
	if err := RunMigrations(dsn, migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if _, err := pool.Exec(ctx, "TRUNCATE events CASCADE"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

func insertEvent(t *testing.T, repo *EventRepository, id string, start time.Time, findNum int) {
	t.Helper()
	err := repo.Create(context.Background(), &entities.Event{
		ID:         id,
		Court:      entities.Court{Name: "Riverside Gym"},
		CreatorID:  "org",
		Date:       start.Format("2006-01-02"),
		StartAt:    start,
		EndAt:      start.Add(2 * time.Hour),
		FindNum:    findNum,
		Status:     domain.EventStatusHold,
		PlayerList: []string{"org"},
	})
	if err != nil {
		t.Fatalf("create %s: %v", id, err)
	}
}

func TestPostgresApplicantUpdatesAreConditional(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewEventRepository(sqlc_generated.New(pool))
	insertEvent(t, repo, "e1", time.Now().Add(24*time.Hour), 1)

	if ok, err := repo.AddApplicant(ctx, "e1", "u1"); err != nil || !ok {
		t.Fatalf("first apply: ok=%v err=%v", ok, err)
	}
	if ok, _ := repo.AddApplicant(ctx, "e1", "u1"); ok {
		t.Fatal("duplicate apply should not match")
	}
	if ok, _ := repo.AddApplicant(ctx, "e1", "org"); ok {
		t.Fatal("a player cannot apply")
	}
	if ok, _ := repo.AcceptApplicant(ctx, "e1", "u1", 2); ok {
		t.Fatal("stale find_num must not match")
	}
	if ok, err := repo.AcceptApplicant(ctx, "e1", "u1", 1); err != nil || !ok {
		t.Fatalf("accept: ok=%v err=%v", ok, err)
	}

	if ok, _ := repo.AddApplicant(ctx, "e1", "u2"); !ok {
		t.Fatal("second applicant should be added")
	}
	if ok, _ := repo.AcceptApplicant(ctx, "e1", "u2", 0); ok {
		t.Fatal("accept on a full event must not match")
	}

	e, err := repo.FindByID(ctx, "e1")
	if err != nil {
		t.Fatal(err)
	}
	if e.FindNum != 0 || !e.IsPlayer("u1") || e.IsApplicant("u1") || !e.IsApplicant("u2") {
		t.Fatalf("event after updates: %+v", e)
	}
}

func TestPostgresCloseExpired(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewEventRepository(sqlc_generated.New(pool))
	now := time.Now()
	insertEvent(t, repo, "past", now.Add(-3*time.Hour), 2)
	insertEvent(t, repo, "future", now.Add(time.Hour), 2)

	ids, err := repo.CloseExpired(ctx, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "past" {
		t.Fatalf("closed = %v, want [past]", ids)
	}
	if ids, _ = repo.CloseExpired(ctx, now); len(ids) != 0 {
		t.Fatalf("second sweep closed %v", ids)
	}
}

func TestPostgresLedgerRequiresEvent(t *testing.T) {
	pool := testPool(t)
	ledger := NewParticipationRepository(sqlc_generated.New(pool))

	err := ledger.Upsert(context.Background(), &entities.ParticipationRecord{
		EventID:  "ghost",
		UserID:   "u1",
		Status:   domain.StatusAccept,
		Schedule: entities.Schedule{
			Date:    "2024-01-01",
			StartAt: time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC),
		},
	})
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("err = %v, want event not found", err)
	}
}

func TestPostgresTxRollsBack(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewEventRepository(sqlc_generated.New(pool))
	insertEvent(t, repo, "e1", time.Now().Add(24*time.Hour), 2)

	boom := errors.New("boom")
	err := NewTxManager(pool).WithinTx(ctx, func(ctx context.Context) error {
		if _, err := repo.AddApplicant(ctx, "e1", "u1"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	e, err := repo.FindByID(ctx, "e1")
	if err != nil {
		t.Fatal(err)
	}
	if len(e.ApplicationList) != 0 {
		t.Fatalf("application list = %v after rollback", e.ApplicationList)
	}
}
