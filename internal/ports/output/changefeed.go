package output

// Topics published on the change feed after a committed mutation.
const (
	TopicEvents         = "events"
	TopicParticipations = "participations"
	TopicFeedback       = "feedback"
)

// Change tells subscribers that documents of Topic changed. UserIDs lists the
// users whose per-user views are affected; empty means "anyone".
type Change struct {
	Topic   string
	EventID string
	UserIDs []string
}

// ChangeFeed fans committed changes out to live query subscriptions.
type ChangeFeed interface {
	Publish(change Change)
	// Subscribe returns a channel of changes and the function releasing it.
	Subscribe() (<-chan Change, func())
}
