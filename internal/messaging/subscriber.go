package messaging

import (
	"context"
	"errors"
)

// ErrInvalidEvent marks an event that can never be applied; it is not redelivered
var ErrInvalidEvent = errors.New("invalid address event")

// EventHandler is called when a new address event is received
type EventHandler func(ctx context.Context, event *AddressEvent) error

// Subscriber consumes address events until the context is canceled
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// Run consumes events and passes each to handler. A handler error redelivers the event.
	Run(ctx context.Context, handler EventHandler) error

	// Close closes the connection and cleans up resources
	Close()
}
