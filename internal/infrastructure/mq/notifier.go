package mq

import (
	"context"
	"fmt"

	"volleyhub/internal/ports/output"
)

var _ output.Notifier = (*Notifier)(nil)

type jsonPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Notifier forwards notifications to the broker, routed by kind
// (participation.accepted, events.closed, ...).
type Notifier struct {
	pub jsonPublisher
}

func NewNotifier(pub jsonPublisher) *Notifier {
	return &Notifier{pub: pub}
}

func (n *Notifier) Notify(ctx context.Context, note output.Notification) error {
	if err := n.pub.PublishJSON(ctx, note.Kind, note); err != nil {
		return fmt.Errorf("publish %s: %w", note.Kind, err)
	}
	return nil
}
