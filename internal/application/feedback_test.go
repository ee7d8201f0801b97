package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"volleyhub/internal/domain"
	"volleyhub/internal/ports/input"
)

func intp(n int) *int { return &n }

func feedbackCmd(eventID string, grade *int) input.SubmitFeedbackCommand {
	return input.SubmitFeedbackCommand{
		RaterID:      "O",
		EventID:      eventID,
		UserID:       "P1",
		Friendliness: "A",
		SkillLevel:   "B",
		Grade:        grade,
		Note:         "solid serve",
	}
}

func TestFeedbackOverwrite(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)
	env.clock.Set(ev.EndAt.Add(time.Hour))

	if _, err := env.feedback.Submit(ctx, feedbackCmd(ev.ID, intp(95))); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := env.feedback.Submit(ctx, feedbackCmd(ev.ID, intp(70))); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	all, err := env.feedback.ListForUser(ctx, "P1")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || *all[0].Grade != 70 {
		t.Fatalf("records = %+v, want one with grade 70", all)
	}
	got, err := env.feedback.Get(ctx, ev.ID, "P1")
	if err != nil || *got.Grade != 70 || got.Schedule.CourtName != "Riverside Gym" {
		t.Fatalf("Get = %+v, %v", got, err)
	}
	rep, _ := env.feedback.Reputation(ctx, "P1")
	if rep != 70 {
		t.Fatalf("Reputation = %v, want 70", rep)
	}
}

func TestFeedbackRejections(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	ev := env.create(t)

	if _, err := env.feedback.Submit(ctx, feedbackCmd(ev.ID, intp(80))); !errors.Is(err, domain.ErrEventNotEnded) {
		t.Errorf("before end err = %v", err)
	}
	env.clock.Set(ev.EndAt)

	tests := []struct {
		name   string
		mutate func(c *input.SubmitFeedbackCommand)
		want   *domain.Error
	}{
		{"grade above range", func(c *input.SubmitFeedbackCommand) { c.Grade = intp(101) }, domain.ErrInvalidGrade},
		{"grade missing", func(c *input.SubmitFeedbackCommand) { c.Grade = nil }, domain.ErrInvalidGrade},
		{"bad level", func(c *input.SubmitFeedbackCommand) { c.SkillLevel = "F" }, domain.ErrInvalidFeedback},
		{"not organizer", func(c *input.SubmitFeedbackCommand) { c.RaterID = "P1"; c.UserID = "O" }, domain.ErrNotOrganizer},
		{"self rating", func(c *input.SubmitFeedbackCommand) { c.UserID = "O" }, domain.ErrNotPlayer},
		{"stranger", func(c *input.SubmitFeedbackCommand) { c.UserID = "X" }, domain.ErrNotPlayer},
		{"unknown event", func(c *input.SubmitFeedbackCommand) { c.EventID = "nope" }, domain.ErrEventNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := feedbackCmd(ev.ID, intp(80))
			tt.mutate(&cmd)
			if _, err := env.feedback.Submit(ctx, cmd); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := env.feedback.Get(ctx, ev.ID, "P1"); !errors.Is(err, domain.ErrFeedbackNotFound) {
		t.Fatalf("rejected submissions were stored: %v", err)
	}
}

func TestReputationWithoutFeedback(t *testing.T) {
	env := newEnv(t)
	rep, err := env.feedback.Reputation(context.Background(), "nobody")
	if err != nil || rep != 0 {
		t.Fatalf("Reputation = %v, %v; want 0", rep, err)
	}
}
