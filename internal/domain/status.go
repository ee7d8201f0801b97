package domain

// Event availability states. An event only moves hold -> closed.
const (
	EventStatusHold   = "hold"
	EventStatusClosed = "closed"
)

// Participation statuses stored in the ledger.
const (
	StatusPending = "pending"
	StatusAccept  = "accept"
	StatusDecline = "decline"
)

// ValidParticipationStatus reports whether s is a known ledger status.
func ValidParticipationStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccept, StatusDecline:
		return true
	}
	return false
}

// Levels are the qualitative A (highest) to E ratings used for friendliness and skill.
var Levels = []string{"A", "B", "C", "D", "E"}

// ValidLevel reports whether l is one of Levels.
func ValidLevel(l string) bool {
	for _, v := range Levels {
		if v == l {
			return true
		}
	}
	return false
}
