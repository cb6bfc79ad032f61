package sweeper

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/dispatcher"
	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/registry"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
	"github.com/feral-file/ff-hotwallet/internal/vault"
)

// Collection sweeps deposit address balances into each project's collect address
type Collection struct {
	engine
}

// NewCollection creates the sweep job
func NewCollection(cfg EngineConfig, st store.Store, gateway ethereum.Gateway, v vault.Vault, reg registry.Registry, clock adapter.Clock, m *metrics.Metrics) *Collection {
	return &Collection{engine: newEngine(cfg, st, gateway, v, reg, clock, m)}
}

// RunOnce sweeps every coin of every unlocked project once
func (c *Collection) RunOnce(ctx context.Context) error {
	native, err := c.nativeCoin()
	if err != nil {
		return err
	}
	reserveFloor, err := toNativeUnits(c.config.ReserveFloor, native.Decimal)
	if err != nil {
		return err
	}

	targets := c.targets(ctx, native)
	if len(targets) == 0 {
		logger.DebugCtx(ctx, "No unlocked projects to collect")
		return nil
	}

	coins := c.registry.Coins()
	for _, target := range targets {
		for i := range coins {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := c.collectCoin(ctx, target, &coins[i], reserveFloor); err != nil {
				logger.ErrorCtx(ctx, err,
					zap.Uint64("projectID", target.projectID),
					zap.Uint64("coinID", coins[i].ID))
			}
		}
	}

	return nil
}

// collectCoin sweeps one coin for one project and records the pass time
func (c *Collection) collectCoin(ctx context.Context, target projectTarget, coin *schema.Coin, reserveFloor *big.Int) error {
	projectCoin, err := c.store.GetProjectCoin(ctx, target.projectID, coin.ID)
	if err != nil {
		return fmt.Errorf("failed to get project coin: %w", err)
	}
	if projectCoin == nil || !projectCoin.IsCollect || projectCoin.CollectAddress == "" {
		return nil
	}

	contract := coin.ContractAddress()
	collectAddress := domain.NormalizeAddress(projectCoin.CollectAddress)

	for _, batch := range c.batches(target.addresses) {
		balances, err := c.positiveBalances(ctx, batch, contract)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.Uint64("coinID", coin.ID), zap.Int("batchSize", len(batch)))
			continue
		}
		if balances == nil {
			logger.DebugCtx(ctx, "Nothing to collect in batch", zap.Uint64("coinID", coin.ID), zap.Int("batchSize", len(batch)))
			continue
		}

		for i, address := range batch {
			balance := balances[i]
			if balance == nil || balance.Sign() <= 0 {
				continue
			}
			if address == collectAddress {
				continue
			}
			c.collectAddress(ctx, target, coin, projectCoin, address, collectAddress, balance, reserveFloor)
		}
	}

	if err := c.store.SetLastCollectionTime(ctx, target.projectID, coin.ID, c.clock.Now()); err != nil {
		return fmt.Errorf("failed to set last collection time: %w", err)
	}
	return nil
}

// collectAddress sends the collectable balance of one address. Failures are logged only.
func (c *Collection) collectAddress(ctx context.Context, target projectTarget, coin *schema.Coin, projectCoin *schema.ProjectCoin, address, collectAddress string, balance, reserveFloor *big.Int) {
	contract := coin.ContractAddress()

	fees, err := dispatcher.ResolveFees(ctx, c.gateway, projectCoin, contract)
	if err != nil {
		logger.WarnCtx(ctx, "Skipping collection without fee arguments",
			zap.String("address", address), zap.Uint64("coinID", coin.ID), zap.Error(err))
		c.count(domain.TxTypeCollection, outcomeSkipped)
		return
	}

	value := new(big.Int).Set(balance)
	if coin.IsNative() {
		keep := fees.Total()
		if reserveFloor.Cmp(keep) > 0 {
			keep = reserveFloor
		}
		value.Sub(value, keep)
	}
	if value.Sign() <= 0 {
		logger.DebugCtx(ctx, "Collectable amount is not positive",
			zap.String("address", address), zap.String("balance", balance.String()))
		c.count(domain.TxTypeCollection, outcomeSkipped)
		return
	}

	txHash, err := c.gateway.SendTransaction(ctx, ethereum.SendRequest{
		From:       address,
		To:         collectAddress,
		Value:      value,
		Passphrase: target.passphrase,
		Gas:        fees.Gas,
		GasPrice:   fees.GasPrice,
		Contract:   contract,
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to collect from %s: %w", address, err), zap.Uint64("coinID", coin.ID))
		c.count(domain.TxTypeCollection, outcomeFailed)
		return
	}

	logger.InfoCtx(ctx, "Collected deposit address",
		zap.String("address", address),
		zap.String("to", collectAddress),
		zap.String("value", value.String()),
		zap.String("txHash", txHash))
	c.count(domain.TxTypeCollection, outcomeSent)
	c.recordSelfTransfer(ctx, domain.TxTypeCollection, coin.ID, txHash, address, collectAddress, value, fees.Gas, fees.GasPrice, contract)
}
