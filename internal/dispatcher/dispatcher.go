package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
	"github.com/feral-file/ff-hotwallet/internal/vault"
)

// Request is an outbound transfer. ActionID is the caller's idempotency key.
type Request struct {
	ProjectID uint64
	ActionID  string
	Sender    string
	Receiver  string
	// Amount is a decimal in coin units, e.g. "10.5"
	Amount   string
	CoinID   uint64
	Contract string
}

// Result carries the broadcast transaction hash
type Result struct {
	TxHash string
}

// Dispatcher broadcasts outbound transfers at most once per action id
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Dispatch returns the hash of the existing order for req.ActionID, or broadcasts a new
	// transfer and records it
	Dispatch(ctx context.Context, req Request) (*Result, error)
}

type dispatcher struct {
	store   store.Store
	gateway ethereum.Gateway
	vault   vault.Vault
	metrics *metrics.Metrics
	locks   *keyedMutex
}

// New creates a dispatcher
func New(st store.Store, gateway ethereum.Gateway, v vault.Vault, m *metrics.Metrics) Dispatcher {
	return &dispatcher{
		store:   st,
		gateway: gateway,
		vault:   v,
		metrics: m,
		locks:   newKeyedMutex(),
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	result, outcome, err := d.dispatch(ctx, req)
	if err != nil {
		outcome = outcomeOf(err)
	}
	d.metrics.Dispatches.WithLabelValues(outcome).Inc()
	return result, err
}

func (d *dispatcher) dispatch(ctx context.Context, req Request) (*Result, string, error) {
	coin, err := d.store.GetCoin(ctx, req.CoinID, req.Contract)
	if err != nil {
		return nil, "", err
	}
	if coin == nil {
		return nil, "", domain.ErrCoinMissing
	}
	contract := domain.NormalizeAddress(req.Contract)
	if contract == "" {
		contract = coin.ContractAddress()
	}

	unlock := d.locks.Lock(req.ActionID)
	defer unlock()

	existing, err := d.store.GetProjectOrderByActionID(ctx, req.ActionID)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		logger.InfoCtx(ctx, "Order already dispatched",
			zap.String("actionID", req.ActionID),
			zap.String("txHash", existing.TxHash))
		return &Result{TxHash: existing.TxHash}, "replayed", nil
	}

	projectCoin, err := d.store.GetProjectCoin(ctx, req.ProjectID, req.CoinID)
	if err != nil {
		return nil, "", err
	}
	if projectCoin == nil {
		return nil, "", domain.ErrProjectCoinMissing
	}
	if !projectCoin.IsWithdraw {
		return nil, "", domain.ErrWithdrawDisabled
	}

	passphrase, err := d.vault.Get(req.ProjectID, req.CoinID)
	if err != nil {
		return nil, "", err
	}

	value, err := domain.ToBaseUnits(req.Amount, coin.Decimal)
	if err != nil {
		return nil, "", err
	}

	fees, err := ResolveFees(ctx, d.gateway, projectCoin, contract)
	if err != nil {
		return nil, "", err
	}
	fee := d.resolveFee(ctx, projectCoin)

	sender := domain.NormalizeAddress(req.Sender)
	if sender == "" {
		sender = projectCoin.HotAddress
	}
	receiver := domain.NormalizeAddress(req.Receiver)

	txHash, err := d.gateway.SendTransaction(ctx, ethereum.SendRequest{
		From:       sender,
		To:         receiver,
		Value:      value,
		Passphrase: passphrase,
		Gas:        fees.Gas,
		GasPrice:   fees.GasPrice,
		Contract:   contract,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Transaction rejected",
			zap.String("actionID", req.ActionID),
			zap.Error(err))
		return nil, "", err
	}

	order := &schema.ProjectOrder{
		ProjectID: req.ProjectID,
		ActionID:  req.ActionID,
		CoinID:    req.CoinID,
		TxHash:    txHash,
		Amount:    value.String(),
		Sender:    sender,
		Receiver:  receiver,
		Gas:       fees.Gas.String(),
		GasPrice:  fees.GasPrice.String(),
		Fee:       fee.String(),
		Contract:  contract,
	}

	created, err := d.store.CreateProjectOrder(ctx, order)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("broadcast transaction not recorded: %w", err),
			zap.String("actionID", req.ActionID),
			zap.String("txHash", txHash))
		return &Result{TxHash: txHash}, "unrecorded", nil
	}
	if !created {
		winner, err := d.store.GetProjectOrderByActionID(ctx, req.ActionID)
		if err != nil {
			return nil, "", err
		}
		if winner != nil {
			logger.WarnCtx(ctx, "Order recorded by another process",
				zap.String("actionID", req.ActionID),
				zap.String("txHash", txHash),
				zap.String("winnerTxHash", winner.TxHash))
			return &Result{TxHash: winner.TxHash}, "replayed", nil
		}
	}

	logger.InfoCtx(ctx, "Transaction dispatched",
		zap.String("actionID", req.ActionID),
		zap.Uint64("projectID", req.ProjectID),
		zap.String("txHash", txHash))

	return &Result{TxHash: txHash}, "sent", nil
}

// resolveFee returns the fee override or the node estimate; failures record zero
func (d *dispatcher) resolveFee(ctx context.Context, projectCoin *schema.ProjectCoin) *big.Int {
	if fee, ok := override(projectCoin.Fee); ok {
		return fee
	}
	fee, err := d.gateway.GetSmartFee(ctx, "")
	if err != nil {
		logger.WarnCtx(ctx, "Failed to estimate fee", zap.Error(err))
		return big.NewInt(0)
	}
	return fee
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrTxSend):
		return "rejected"
	case errors.Is(err, domain.ErrFeeArgs):
		return "fee_unresolved"
	case errors.Is(err, domain.ErrPassphraseMissing):
		return "locked"
	default:
		return "invalid"
	}
}
