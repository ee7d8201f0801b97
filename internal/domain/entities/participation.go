package entities

import "time"

// ParticipationRecord is the per-(event, user) ledger row backing personal
// calendars and chat-room membership.
type ParticipationRecord struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Schedule  Schedule  `json:"schedule"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key is the composite identifier "<eventID>_<userID>".
func (p *ParticipationRecord) Key() string {
	return RecordKey(p.EventID, p.UserID)
}

// RecordKey builds the composite identifier shared by ledger and feedback rows.
func RecordKey(eventID, userID string) string {
	return eventID + "_" + userID
}

// StatusIs is a ledger predicate keeping rows in one status.
func StatusIs(status string) func(ParticipationRecord) bool {
	return func(r ParticipationRecord) bool { return r.Status == status }
}
