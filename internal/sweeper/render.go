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

// Render tops up the native balance of deposit addresses holding tokens so they can be swept
type Render struct {
	engine
}

// NewRender creates the top-up job
func NewRender(cfg EngineConfig, st store.Store, gateway ethereum.Gateway, v vault.Vault, reg registry.Registry, clock adapter.Clock, m *metrics.Metrics) *Render {
	return &Render{engine: newEngine(cfg, st, gateway, v, reg, clock, m)}
}

// RunOnce tops up every token-holding address of every unlocked project once
func (r *Render) RunOnce(ctx context.Context) error {
	native, err := r.nativeCoin()
	if err != nil {
		return err
	}
	topUp, err := toNativeUnits(r.config.TopUpAmount, native.Decimal)
	if err != nil {
		return err
	}
	if topUp.Sign() <= 0 {
		return fmt.Errorf("%w: top-up amount must be positive", domain.ErrConfigMissing)
	}

	targets := r.targets(ctx, native)
	if len(targets) == 0 {
		logger.DebugCtx(ctx, "No unlocked projects to render")
		return nil
	}

	coins := r.registry.Coins()
	for _, target := range targets {
		for i := range coins {
			if coins[i].IsNative() {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.renderCoin(ctx, target, native, &coins[i], topUp); err != nil {
				logger.ErrorCtx(ctx, err,
					zap.Uint64("projectID", target.projectID),
					zap.Uint64("coinID", coins[i].ID))
			}
		}
	}

	return nil
}

// renderCoin checks every address holding the token for enough native coin to pay a transfer
func (r *Render) renderCoin(ctx context.Context, target projectTarget, native, coin *schema.Coin, topUp *big.Int) error {
	projectCoin, err := r.store.GetProjectCoin(ctx, target.projectID, coin.ID)
	if err != nil {
		return fmt.Errorf("failed to get project coin: %w", err)
	}
	if projectCoin == nil || !projectCoin.IsCollect {
		return nil
	}

	funder := domain.NormalizeAddress(projectCoin.FeeAddress)
	if funder == "" {
		funder = r.config.RenderAddress
	}
	if funder == "" {
		return fmt.Errorf("%w: no fee address for coin %d", domain.ErrFeeArgs, coin.ID)
	}

	contract := coin.ContractAddress()
	for _, batch := range r.batches(target.addresses) {
		balances, err := r.positiveBalances(ctx, batch, contract)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.Uint64("coinID", coin.ID), zap.Int("batchSize", len(batch)))
			continue
		}
		if balances == nil {
			continue
		}

		for i, address := range batch {
			if balances[i] == nil || balances[i].Sign() <= 0 {
				continue
			}
			r.renderAddress(ctx, target, native, coin, projectCoin, funder, address, topUp)
		}
	}

	return nil
}

// renderAddress sends topUp from funder when address cannot pay for a token transfer. Failures are logged only.
func (r *Render) renderAddress(ctx context.Context, target projectTarget, native, coin *schema.Coin, projectCoin *schema.ProjectCoin, funder, address string, topUp *big.Int) {
	nativeBalance, err := r.gateway.GetBalance(ctx, address, "")
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to get native balance of %s: %w", address, err))
		return
	}

	fees, err := dispatcher.ResolveFees(ctx, r.gateway, projectCoin, coin.ContractAddress())
	if err != nil {
		logger.WarnCtx(ctx, "Skipping render without fee arguments",
			zap.String("address", address), zap.Uint64("coinID", coin.ID), zap.Error(err))
		r.count(domain.TxTypeRender, outcomeSkipped)
		return
	}
	if nativeBalance.Cmp(fees.Total()) > 0 {
		return
	}

	sendFees, err := dispatcher.ResolveFees(ctx, r.gateway, &schema.ProjectCoin{GasPrice: fees.GasPrice.String()}, "")
	if err != nil {
		logger.WarnCtx(ctx, "Skipping render without native fee arguments", zap.String("address", address), zap.Error(err))
		r.count(domain.TxTypeRender, outcomeSkipped)
		return
	}

	txHash, err := r.gateway.SendTransaction(ctx, ethereum.SendRequest{
		From:       funder,
		To:         address,
		Value:      topUp,
		Passphrase: target.passphrase,
		Gas:        sendFees.Gas,
		GasPrice:   sendFees.GasPrice,
	})
	if err == nil && txHash == "" {
		err = &domain.TxSendError{}
	}
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to render fee to %s: %w", address, err), zap.String("from", funder))
		r.count(domain.TxTypeRender, outcomeFailed)
		return
	}

	logger.InfoCtx(ctx, "Rendered fee to deposit address",
		zap.String("address", address),
		zap.String("from", funder),
		zap.String("value", topUp.String()),
		zap.String("txHash", txHash))
	r.count(domain.TxTypeRender, outcomeSent)
	r.recordSelfTransfer(ctx, domain.TxTypeRender, native.ID, txHash, funder, address, topUp, sendFees.Gas, sendFees.GasPrice, "")
}
