package messaging

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/registry"
)

// RegistryHandler applies address events to a local registry
func RegistryHandler(reg registry.Registry) EventHandler {
	return func(ctx context.Context, event *AddressEvent) error {
		address := domain.NormalizeAddress(event.Address)
		if !domain.IsValidAddress(address) {
			return fmt.Errorf("%w: address %q", ErrInvalidEvent, event.Address)
		}

		switch event.Type {
		case AddressEventCreated:
			reg.AddAddress(registry.AddressEntry{
				Address:   address,
				ProjectID: event.ProjectID,
				CoinID:    event.CoinID,
				Type:      event.AddressType,
			})
		case AddressEventRemoved:
			reg.RemoveAddress(address)
		default:
			return fmt.Errorf("%w: type %q", ErrInvalidEvent, event.Type)
		}

		logger.DebugCtx(ctx, "Applied address event",
			zap.String("type", string(event.Type)),
			zap.Uint64("projectID", event.ProjectID),
			zap.String("address", address))
		return nil
	}
}
