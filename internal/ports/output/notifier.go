package output

import (
	"context"
	"time"
)

// Notification kinds.
const (
	NotifyApplied           = "participation.applied"
	NotifyAccepted          = "participation.accepted"
	NotifyDeclined          = "participation.declined"
	NotifyEventsClosed      = "events.closed"
	NotifyFeedbackSubmitted = "feedback.submitted"
)

// Notification is emitted after a use case commits.
type Notification struct {
	Kind        string    `json:"kind"`
	EventID     string    `json:"event_id,omitempty"`
	EventIDs    []string  `json:"event_ids,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	OrganizerID string    `json:"organizer_id,omitempty"`
	CourtName   string    `json:"court_name,omitempty"`
	StartAt     time.Time `json:"start_at,omitzero"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Notifier delivers notifications to users or downstream systems.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
