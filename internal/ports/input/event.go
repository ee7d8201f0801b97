package input

import (
	"context"

	"volleyhub/internal/domain/entities"
)

// CreateEventCommand is the organizer's "hold event" form.
type CreateEventCommand struct {
	OrganizerID   string   `json:"-" validate:"required"`
	CourtName     string   `json:"court_name" validate:"required,max=120"`
	CourtAddress  string   `json:"court_address" validate:"max=255"`
	CourtCity     string   `json:"court_city" validate:"max=80"`
	Indoor        bool     `json:"indoor"`
	CourtHasAC    bool     `json:"court_has_ac"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string   `json:"start_time" validate:"required,datetime=15:04"`
	DurationHours float64  `json:"duration_hours" validate:"gt=0,lte=24"`
	FindNum       int      `json:"find_num" validate:"gte=0,lte=100"`
	TotalCost     int      `json:"total_cost" validate:"gte=0"`
	Friendliness  string   `json:"friendliness" validate:"omitempty,oneof=A B C D E"`
	SkillLevel    string   `json:"skill_level" validate:"omitempty,oneof=A B C D E"`
	NetHeight     string   `json:"net_height" validate:"max=40"`
	ACOn          bool     `json:"ac_on"`
	Notes         string   `json:"notes" validate:"max=2000"`
	InvitedIDs    []string `json:"invited_ids" validate:"dive,required"`
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, cmd CreateEventCommand) (*entities.Event, error)
	GetEvent(ctx context.Context, eventID string) (*entities.Event, error)
	ListUpcoming(ctx context.Context) ([]entities.Event, error)
	WatchUpcoming(ctx context.Context) (Subscription[[]entities.Event], error)
	ListOwnedClosed(ctx context.Context, userID string) ([]entities.Event, error)
	ApplyToEvent(ctx context.Context, eventID, userID string) (*entities.Event, error)
	Approve(ctx context.Context, organizerID, eventID, applicantID string, currentFindNum int) (*entities.Event, error)
	Decline(ctx context.Context, organizerID, eventID, applicantID string) (*entities.Event, error)
}
