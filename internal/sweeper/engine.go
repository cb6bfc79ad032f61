package sweeper

import (
	"context"
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/registry"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
	"github.com/feral-file/ff-hotwallet/internal/vault"
)

const DefaultBalanceBatchSize = 100

// Self-transfer outcomes recorded in metrics
const (
	outcomeSent    = "sent"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

// EngineConfig holds sweep and render configuration.
// Amounts are in native coin units, e.g. "0.005".
type EngineConfig struct {
	// BalanceBatchSize is the number of addresses per batched balance query
	BalanceBatchSize int
	// ReserveFloor is the native amount left on an address after a sweep
	ReserveFloor string
	// TopUpAmount is the native amount sent by a render; defaults to ReserveFloor
	TopUpAmount string
	// RenderAddress funds top-ups when a project coin has no fee address
	RenderAddress string
}

// engine holds the traversal shared by the sweep and render jobs
type engine struct {
	config   EngineConfig
	store    store.Store
	gateway  ethereum.Gateway
	vault    vault.Vault
	registry registry.Registry
	clock    adapter.Clock
	metrics  *metrics.Metrics
}

func newEngine(cfg EngineConfig, st store.Store, gateway ethereum.Gateway, v vault.Vault, reg registry.Registry, clock adapter.Clock, m *metrics.Metrics) engine {
	if cfg.BalanceBatchSize <= 0 {
		cfg.BalanceBatchSize = DefaultBalanceBatchSize
	}
	if cfg.TopUpAmount == "" {
		cfg.TopUpAmount = cfg.ReserveFloor
	}
	cfg.RenderAddress = domain.NormalizeAddress(cfg.RenderAddress)

	return engine{
		config:   cfg,
		store:    st,
		gateway:  gateway,
		vault:    v,
		registry: reg,
		clock:    clock,
		metrics:  m,
	}
}

// projectTarget is a project whose wallet is unlocked, with its deposit addresses
type projectTarget struct {
	projectID  uint64
	passphrase string
	addresses  []string
}

// targets returns projects that have deposit addresses and an unlocked native coin
func (e *engine) targets(ctx context.Context, native *schema.Coin) []projectTarget {
	byProject := e.registry.AddressesByProject()

	var targets []projectTarget
	for _, projectID := range slices.Sorted(maps.Keys(byProject)) {
		addresses := byProject[projectID]
		if len(addresses) == 0 {
			continue
		}
		passphrase, err := e.vault.Get(projectID, native.ID)
		if err != nil {
			logger.DebugCtx(ctx, "Skipping locked project", zap.Uint64("projectID", projectID), zap.Error(err))
			continue
		}
		targets = append(targets, projectTarget{
			projectID:  projectID,
			passphrase: passphrase,
			addresses:  addresses,
		})
	}
	return targets
}

// nativeCoin returns the chain's native coin or domain.ErrConfigMissing
func (e *engine) nativeCoin() (*schema.Coin, error) {
	native, ok := e.registry.NativeCoin()
	if !ok {
		return nil, fmt.Errorf("%w: native coin not registered", domain.ErrConfigMissing)
	}
	return native, nil
}

// batches splits addresses into chunks of the balance batch size
func (e *engine) batches(addresses []string) [][]string {
	var chunks [][]string
	for start := 0; start < len(addresses); start += e.config.BalanceBatchSize {
		end := min(start+e.config.BalanceBatchSize, len(addresses))
		chunks = append(chunks, addresses[start:end])
	}
	return chunks
}

// positiveBalances queries a batch and returns nil when nothing in it holds a balance
func (e *engine) positiveBalances(ctx context.Context, addresses []string, contract string) ([]*big.Int, error) {
	balances, err := e.gateway.GetBalances(ctx, addresses, contract)
	if err != nil {
		return nil, fmt.Errorf("failed to get balances: %w", err)
	}
	if len(balances) != len(addresses) {
		return nil, fmt.Errorf("failed to get balances: got %d for %d addresses", len(balances), len(addresses))
	}

	sum := new(big.Int)
	for _, balance := range balances {
		if balance != nil {
			sum.Add(sum, balance)
		}
	}
	if sum.Sign() <= 0 {
		return nil, nil
	}
	return balances, nil
}

// recordSelfTransfer writes a sweep or render transfer to the ledger as unconfirmed
func (e *engine) recordSelfTransfer(ctx context.Context, txType domain.TxType, coinID uint64, txHash, sender, receiver string, value *big.Int, gas, gasPrice *big.Int, contract string) {
	tx := &schema.Transaction{
		CoinID:    coinID,
		BlockID:   domain.UNCONFIRMED_BLOCK,
		TxHash:    strings.ToLower(txHash),
		Height:    domain.UNCONFIRMED_HEIGHT,
		BlockTime: e.clock.Now().Unix(),
		Amount:    value.String(),
		Sender:    sender,
		Receiver:  receiver,
		Gas:       gas.String(),
		GasPrice:  gasPrice.String(),
		Fee:       new(big.Int).Mul(gas, gasPrice).String(),
		Contract:  contract,
		Status:    domain.TxStatusUnknown,
		TxType:    txType,
		IsSend:    domain.SendStatusNeedless,
	}
	if err := e.store.InsertSelfTransaction(ctx, tx); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record %s transaction: %w", txType, err), zap.String("txHash", txHash))
	}
}

// count increments the self-transfer counter
func (e *engine) count(txType domain.TxType, outcome string) {
	if e.metrics != nil {
		e.metrics.SelfTransfers.WithLabelValues(txType.String(), outcome).Inc()
	}
}

// toNativeUnits scales a non-negative native amount such as "0.005" to base units
func toNativeUnits(amount string, decimals int32) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return new(big.Int), nil
	}
	d, err := decimal.NewFromString(amount)
	if err != nil || d.IsNegative() {
		return nil, fmt.Errorf("%w: invalid native amount %q", domain.ErrConfigMissing, amount)
	}
	return d.Shift(decimals).Truncate(0).BigInt(), nil
}
