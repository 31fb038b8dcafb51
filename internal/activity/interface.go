package activity

import "context"

// Publisher emits activity events. Publishing is best-effort and never changes client state.
//
//go:generate mockery --name Publisher
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type nopPublisher struct{}

// NewNop returns a Publisher that drops every event. Used when no brokers are configured.
func NewNop() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Event) error {
	return nil
}
