package input

import (
	"context"

	"volleyhub/internal/domain/entities"
)

// SubmitFeedbackCommand is the organizer's rating form for one player.
type SubmitFeedbackCommand struct {
	RaterID      string `json:"-" validate:"required"`
	EventID      string `json:"-" validate:"required"`
	UserID       string `json:"-" validate:"required"`
	Friendliness string `json:"friendliness" validate:"required,oneof=A B C D E"`
	SkillLevel   string `json:"skill_level" validate:"required,oneof=A B C D E"`
	Grade        *int   `json:"grade" validate:"required,min=0,max=100"`
	Note         string `json:"note"`
}

type FeedbackUseCase interface {
	Submit(ctx context.Context, cmd SubmitFeedbackCommand) (*entities.FeedbackRecord, error)
	Get(ctx context.Context, eventID, userID string) (*entities.FeedbackRecord, error)
	ListForUser(ctx context.Context, userID string) ([]entities.FeedbackRecord, error)
	Reputation(ctx context.Context, userID string) (float64, error)
}
