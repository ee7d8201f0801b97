package input

// Subscription is a live query. Updates delivers the full result set first on
// subscribe and again after every relevant change; it is closed once the
// subscription ends. Unsubscribe is idempotent.
type Subscription[T any] interface {
	Updates() <-chan T
	Unsubscribe()
}
