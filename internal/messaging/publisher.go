package messaging

import (
	"context"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishAddressEvent publishes an address change to the message broker
	PublishAddressEvent(ctx context.Context, event *AddressEvent) error
	// Close closes the connection
	Close()
}
