package scanner

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/registry"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
)

// Config holds the scanner parameters
type Config struct {
	// ConfirmationDelay is the number of newest blocks left unscanned
	ConfirmationDelay uint64
	// BatchSize is the number of blocks fetched and committed together
	BatchSize uint64
}

// Scanner ingests deposits from confirmed blocks into the ledger
//
//go:generate mockgen -source=scanner.go -destination=../mocks/scanner.go -package=mocks -mock_names=Scanner=MockScanner
type Scanner interface {
	// RunOnce scans from the checkpoint up to the confirmed head.
	// A batch is committed atomically with its checkpoint or not at all.
	RunOnce(ctx context.Context) error
}

type scanner struct {
	config   Config
	store    store.Store
	gateway  ethereum.Gateway
	registry registry.Registry
	metrics  *metrics.Metrics
}

// New creates a scanner
func New(cfg Config, st store.Store, gateway ethereum.Gateway, reg registry.Registry, m *metrics.Metrics) Scanner {
	return &scanner{
		config:   cfg,
		store:    st,
		gateway:  gateway,
		registry: reg,
		metrics:  m,
	}
}

func (s *scanner) RunOnce(ctx context.Context) error {
	native, ok := s.registry.NativeCoin()
	if !ok {
		return fmt.Errorf("%w: native coin not registered", domain.ErrConfigMissing)
	}

	syncConfig, err := s.store.GetSyncConfig(ctx, native.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSync, err)
	}
	if syncConfig == nil {
		return fmt.Errorf("%w: no sync config for coin %d", domain.ErrConfigMissing, native.ID)
	}

	height, err := s.gateway.GetBlockHeight(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSync, err)
	}
	s.metrics.ChainHeight.Set(float64(height.CurrentHeight))

	if height.CurrentHeight <= s.config.ConfirmationDelay {
		return nil
	}
	target := height.CurrentHeight - s.config.ConfirmationDelay
	synced := syncConfig.SyncedHeight
	s.metrics.SyncedHeight.Set(float64(synced))

	if synced < target {
		logger.InfoCtx(ctx, "Scanning blocks",
			zap.Uint64("from", synced),
			zap.Uint64("target", target),
			zap.Uint64("highest", height.HighestHeight))
	}

	for synced < target {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := synced + min(s.config.BatchSize, target-synced)
		saved, err := s.scanBatch(ctx, native, synced, end, height.HighestHeight)
		if err != nil {
			s.metrics.ScanFailures.Inc()
			return fmt.Errorf("%w: blocks [%d, %d): %w", domain.ErrSync, synced, end, err)
		}

		synced = end
		s.metrics.SyncedHeight.Set(float64(synced))
		s.metrics.DepositsIngested.Add(float64(saved))

		logger.InfoCtx(ctx, "Batch synced",
			zap.Uint64("syncedHeight", synced),
			zap.Int("deposits", saved))
	}

	return nil
}

// scanBatch ingests blocks [start, end) and returns the number of deposits saved
func (s *scanner) scanBatch(ctx context.Context, native *schema.Coin, start, end, highest uint64) (int, error) {
	heights := make([]uint64, 0, end-start)
	for h := start; h < end; h++ {
		heights = append(heights, h)
	}

	blocks, err := s.gateway.GetBlocksByNumber(ctx, heights)
	if err != nil {
		return 0, err
	}

	input := store.IngestBatchInput{
		CoinID:        native.ID,
		Blocks:        make([]schema.Block, 0, len(blocks)),
		SyncedHeight:  end,
		HighestHeight: highest,
	}

	for _, block := range blocks {
		input.Blocks = append(input.Blocks, schema.Block{
			Height:    block.Number,
			BlockHash: block.Hash,
			BlockTime: time.Unix(int64(block.Timestamp), 0).UTC(), //nolint:gosec,G115
		})

		for _, tx := range block.Transactions {
			if !s.isDeposit(tx) {
				continue
			}

			deposit, err := s.buildDeposit(ctx, native, block, tx)
			if err != nil {
				return 0, err
			}
			if deposit != nil {
				input.Transactions = append(input.Transactions, *deposit)
			}
		}
	}

	if err := s.store.IngestBatch(ctx, input); err != nil {
		return 0, err
	}

	return len(input.Transactions), nil
}

// isDeposit selects transfers into an active deposit address from outside the wallet.
// Transfers between wallet addresses are collections or withdrawals and are never deposits.
func (s *scanner) isDeposit(tx ethereum.Transaction) bool {
	if tx.To == "" || !s.registry.IsDepositAddress(tx.To) {
		return false
	}
	return !s.registry.IsKnown(tx.From)
}

// buildDeposit returns nil when the transferred coin is not registered
func (s *scanner) buildDeposit(ctx context.Context, native *schema.Coin, block ethereum.Block, tx ethereum.Transaction) (*schema.Transaction, error) {
	receipt, err := s.gateway.GetTransactionReceipt(ctx, tx.Hash)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, fmt.Errorf("receipt of %s missing", tx.Hash)
	}

	coin := native
	if tx.Contract != "" {
		token, ok := s.registry.CoinByContract(tx.Contract)
		if !ok {
			logger.DebugCtx(ctx, "Skipping transfer of unregistered token",
				zap.String("txHash", tx.Hash),
				zap.String("contract", tx.Contract))
			return nil, nil
		}
		coin = token
	}

	status := domain.TxStatusInvalid
	if receipt.Status == 1 {
		status = domain.TxStatusValid
	}

	fee := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), tx.GasPrice)

	return &schema.Transaction{
		CoinID:    coin.ID,
		TxHash:    tx.Hash,
		Height:    int64(block.Number),    //nolint:gosec,G115
		BlockTime: int64(block.Timestamp), //nolint:gosec,G115
		Amount:    tx.Value.String(),
		Sender:    tx.From,
		Receiver:  tx.To,
		Gas:       strconv.FormatUint(tx.Gas, 10),
		GasPrice:  tx.GasPrice.String(),
		Fee:       fee.String(),
		Contract:  tx.Contract,
		Status:    status,
		TxType:    domain.TxTypeDeposit,
		IsSend:    domain.SendStatusNotPush,
	}, nil
}
