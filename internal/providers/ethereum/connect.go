package ethereum

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/store"
)

// DefaultReadRetries is the number of retries of a failed read
const DefaultReadRetries = 3

// Connect dials the active node endpoint recorded in rpc_configs.
// A missing row or an unsupported driver yields domain.ErrConfigMissing.
func Connect(ctx context.Context, st store.Store, dialer adapter.RPCDialer) (Gateway, error) {
	cfg, err := st.GetActiveRPCConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: no active rpc config", domain.ErrConfigMissing)
	}
	if cfg.Driver != domain.DRIVER_ETHEREUM {
		return nil, fmt.Errorf("%w: unsupported rpc driver %s", domain.ErrConfigMissing, cfg.Driver)
	}

	client, err := dialer.Dial(ctx, cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", cfg.Name, err)
	}

	logger.InfoCtx(ctx, "Connected to node", zap.String("name", cfg.Name), zap.String("driver", cfg.Driver))

	return NewGateway(client, DefaultReadRetries), nil
}
