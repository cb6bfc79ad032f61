package scanner_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/mocks"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/registry"
	"github.com/feral-file/ff-hotwallet/internal/scanner"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const (
	depositAddress = "0xaaaa000000000000000000000000000000000001"
	hotAddress     = "0xaaaa000000000000000000000000000000000002"
	outsider       = "0x9999999999999999999999999999999999999999"
	tokenContract  = "0xdac17f958d2ee523a2206206994597c13d831ec7"
	otherContract  = "0xeeee000000000000000000000000000000000000"
)

var (
	nativeCoin = &schema.Coin{ID: 1, Name: domain.NATIVE_COIN_NAME, Decimal: 18}
	tokenCoin  = &schema.Coin{ID: 2, MasterID: 1, Name: "Tether USD", Decimal: 6}
)

type testScannerMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	gateway  *mocks.MockGateway
	registry *mocks.MockRegistry
	metrics  *metrics.Metrics
	scanner  scanner.Scanner
}

func setupTestScanner(t *testing.T) *testScannerMocks {
	ctrl := gomock.NewController(t)
	tm := &testScannerMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		gateway:  mocks.NewMockGateway(ctrl),
		registry: mocks.NewMockRegistry(ctrl),
		metrics:  metrics.New(),
	}
	tm.scanner = scanner.New(scanner.Config{ConfirmationDelay: 12, BatchSize: 50},
		tm.store, tm.gateway, tm.registry, tm.metrics)

	tm.registry.EXPECT().NativeCoin().Return(nativeCoin, true).AnyTimes()
	tm.registry.EXPECT().IsDepositAddress(gomock.Any()).DoAndReturn(func(address string) bool {
		return address == depositAddress
	}).AnyTimes()
	tm.registry.EXPECT().IsKnown(gomock.Any()).DoAndReturn(func(address string) bool {
		return address == depositAddress || address == hotAddress
	}).AnyTimes()
	tm.registry.EXPECT().CoinByContract(gomock.Any()).DoAndReturn(func(contract string) (*schema.Coin, bool) {
		if contract == tokenContract {
			return tokenCoin, true
		}
		return nil, false
	}).AnyTimes()

	return tm
}

// emptyBlocks builds blocks [start, end) without transactions
func emptyBlocks(start, end uint64) []ethereum.Block {
	blocks := make([]ethereum.Block, 0, end-start)
	for h := start; h < end; h++ {
		blocks = append(blocks, ethereum.Block{Number: h, Hash: "0xb", Timestamp: 1700000000 + h})
	}
	return blocks
}

func heightsOf(start, end uint64) []uint64 {
	heights := make([]uint64, 0, end-start)
	for h := start; h < end; h++ {
		heights = append(heights, h)
	}
	return heights
}

func TestRunOnceAdvancesCheckpoint(t *testing.T) {
	tm := setupTestScanner(t)
	ctx := context.Background()

	tm.store.EXPECT().GetSyncConfig(gomock.Any(), nativeCoin.ID).
		Return(&schema.SyncConfig{CoinID: 1, SyncedHeight: 0}, nil)
	tm.gateway.EXPECT().GetBlockHeight(gomock.Any()).
		Return(domain.BlockHeight{CurrentHeight: 112, HighestHeight: 120}, nil)

	gomock.InOrder(
		tm.gateway.EXPECT().GetBlocksByNumber(gomock.Any(), heightsOf(0, 50)).Return(emptyBlocks(0, 50), nil),
		tm.store.EXPECT().IngestBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input store.IngestBatchInput) error {
			assert.Equal(t, uint64(50), input.SyncedHeight)
			assert.Equal(t, uint64(120), input.HighestHeight)
			assert.Len(t, input.Blocks, 50)
			assert.Empty(t, input.Transactions)
			return nil
		}),
		tm.gateway.EXPECT().GetBlocksByNumber(gomock.Any(), heightsOf(50, 100)).Return(emptyBlocks(50, 100), nil),
		tm.store.EXPECT().IngestBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input store.IngestBatchInput) error {
			assert.Equal(t, uint64(100), input.SyncedHeight)
			return nil
		}),
	)

	require.NoError(t, tm.scanner.RunOnce(ctx))
}

func TestRunOnceShortFinalBatch(t *testing.T) {
	tm := setupTestScanner(t)

	tm.store.EXPECT().GetSyncConfig(gomock.Any(), nativeCoin.ID).
		Return(&schema.SyncConfig{SyncedHeight: 140}, nil)
	tm.gateway.EXPECT().GetBlockHeight(gomock.Any()).
		Return(domain.BlockHeight{CurrentHeight: 162, HighestHeight: 162}, nil)
	tm.gateway.EXPECT().GetBlocksByNumber(gomock.Any(), heightsOf(140, 150)).Return(emptyBlocks(140, 150), nil)
	tm.store.EXPECT().IngestBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input store.IngestBatchInput) error {
		assert.Equal(t, uint64(150), input.SyncedHeight)
		return nil
	})

	require.NoError(t, tm.scanner.RunOnce(context.Background()))
}

func TestRunOnceNothingToScan(t *testing.T) {
	tm := setupTestScanner(t)

	tm.store.EXPECT().GetSyncConfig(gomock.Any(), nativeCoin.ID).
		Return(&schema.SyncConfig{SyncedHeight: 150}, nil)
	tm.gateway.EXPECT().GetBlockHeight(gomock.Any()).
		Return(domain.BlockHeight{CurrentHeight: 160, HighestHeight: 160}, nil)

	require.NoError(t, tm.scanner.RunOnce(context.Background()))
}

func TestRunOnceClassifiesDeposits(t *testing.T) {
	tm := setupTestScanner(t)
	ctx := context.Background()

	tm.store.EXPECT().GetSyncConfig(gomock.Any(), nativeCoin.ID).
		Return(&schema.SyncConfig{SyncedHeight: 100}, nil)
	tm.gateway.EXPECT().GetBlockHeight(gomock.Any()).
		Return(domain.BlockHeight{CurrentHeight: 113, HighestHeight: 113}, nil)

	gasPrice := big.NewInt(2000000000)
	block := ethereum.Block{
		Number:    100,
		Hash:      "0xblock100",
		Timestamp: 1700000100,
		Transactions: []ethereum.Transaction{
			{Hash: "0xnative", From: outsider, To: depositAddress, Value: big.NewInt(1000), Gas: 21000, GasPrice: gasPrice},
			{Hash: "0xtoken", From: outsider, To: depositAddress, Value: big.NewInt(5000000), Gas: 60000, GasPrice: gasPrice, Contract: tokenContract},
			{Hash: "0xinternal", From: hotAddress, To: depositAddress, Value: big.NewInt(1), Gas: 21000, GasPrice: gasPrice},
			{Hash: "0xelsewhere", From: outsider, To: outsider, Value: big.NewInt(1), Gas: 21000, GasPrice: gasPrice},
			{Hash: "0xunknown", From: outsider, To: depositAddress, Value: big.NewInt(1), Gas: 60000, GasPrice: gasPrice, Contract: otherContract},
			{Hash: "0xcreate", From: outsider, Value: big.NewInt(0), Gas: 60000, GasPrice: gasPrice},
		},
	}

	tm.gateway.EXPECT().GetBlocksByNumber(gomock.Any(), []uint64{100}).Return([]ethereum.Block{block}, nil)
	tm.gateway.EXPECT().GetTransactionReceipt(gomock.Any(), "0xnative").
		Return(&ethereum.Receipt{TxHash: "0xnative", GasUsed: 21000, Status: 1}, nil)
	tm.gateway.EXPECT().GetTransactionReceipt(gomock.Any(), "0xtoken").
		Return(&ethereum.Receipt{TxHash: "0xtoken", GasUsed: 50000, Status: 0}, nil)
	tm.gateway.EXPECT().GetTransactionReceipt(gomock.Any(), "0xunknown").
		Return(&ethereum.Receipt{TxHash: "0xunknown", GasUsed: 50000, Status: 1}, nil)

	tm.store.EXPECT().IngestBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input store.IngestBatchInput) error {
		require.Len(t, input.Transactions, 2)

		native := input.Transactions[0]
		assert.Equal(t, nativeCoin.ID, native.CoinID)
		assert.Equal(t, "1000", native.Amount)
		assert.Equal(t, "42000000000000", native.Fee)
		assert.Equal(t, "21000", native.Gas)
		assert.Equal(t, domain.TxStatusValid, native.Status)
		assert.Equal(t, domain.TxTypeDeposit, native.TxType)
		assert.Equal(t, domain.SendStatusNotPush, native.IsSend)
		assert.Equal(t, int64(100), native.Height)
		assert.Equal(t, int64(1700000100), native.BlockTime)

		token := input.Transactions[1]
		assert.Equal(t, tokenCoin.ID, token.CoinID)
		assert.Equal(t, tokenContract, token.Contract)
		assert.Equal(t, domain.TxStatusInvalid, token.Status)
		assert.Equal(t, "100000000000000", token.Fee)
		return nil
	})

	require.NoError(t, tm.scanner.RunOnce(ctx))
}

// A render top-up sent from a project's fee address lands on a deposit address
// but is wallet-internal and must not be reported as a deposit
func TestRunOnceSkipsProjectCoinSenders(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	gateway := mocks.NewMockGateway(ctrl)
	ctx := context.Background()

	const (
		feeAddress     = "0xaaaa000000000000000000000000000000000003"
		collectAddress = "0xaaaa000000000000000000000000000000000004"
	)

	st.EXPECT().ListActiveAddresses(gomock.Any()).Return([]schema.Address{
		{ProjectID: 1, CoinID: 1, Address: depositAddress, AddressType: domain.AddressTypeDeposit},
	}, nil)
	st.EXPECT().ListCoins(gomock.Any()).Return([]schema.Coin{*nativeCoin}, nil)
	st.EXPECT().ListProjects(gomock.Any()).Return([]schema.Project{{ID: 1, Name: "alpha"}}, nil)
	st.EXPECT().ListProjectCoins(gomock.Any()).Return([]schema.ProjectCoin{
		{ProjectID: 1, CoinID: 1, HotAddress: hotAddress, CollectAddress: collectAddress, FeeAddress: "0xAAAA000000000000000000000000000000000003"},
	}, nil)
	reg := registry.New(st, domain.NATIVE_COIN_NAME)
	require.NoError(t, reg.Load(ctx))

	sc := scanner.New(scanner.Config{ConfirmationDelay: 12, BatchSize: 50}, st, gateway, reg, metrics.New())

	gasPrice := big.NewInt(2000000000)
	block := ethereum.Block{
		Number:    100,
		Hash:      "0xblock100",
		Timestamp: 1700000100,
		Transactions: []ethereum.Transaction{
			{Hash: "0xrender", From: feeAddress, To: depositAddress, Value: big.NewInt(3000), Gas: 21000, GasPrice: gasPrice},
			{Hash: "0xrefill", From: hotAddress, To: depositAddress, Value: big.NewInt(1), Gas: 21000, GasPrice: gasPrice},
			{Hash: "0xuser", From: outsider, To: depositAddress, Value: big.NewInt(1000), Gas: 21000, GasPrice: gasPrice},
		},
	}

	st.EXPECT().GetSyncConfig(gomock.Any(), nativeCoin.ID).
		Return(&schema.SyncConfig{SyncedHeight: 100}, nil)
	gateway.EXPECT().GetBlockHeight(gomock.Any()).
		Return(domain.BlockHeight{CurrentHeight: 113, HighestHeight: 113}, nil)
	gateway.EXPECT().GetBlocksByNumber(gomock.Any(), []uint64{100}).Return([]ethereum.Block{block}, nil)
	gateway.EXPECT().GetTransactionReceipt(gomock.Any(), "0xuser").
		Return(&ethereum.Receipt{TxHash: "0xuser", GasUsed: 21000, Status: 1}, nil)
	st.EXPECT().IngestBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input store.IngestBatchInput) error {
		require.Len(t, input.Transactions, 1)
		assert.Equal(t, "0xuser", input.Transactions[0].TxHash)
		return nil
	})

	require.NoError(t, sc.RunOnce(ctx))
}

func TestRunOnceReceiptFailureCommitsNothing(t *testing.T) {
	tm := setupTestScanner(t)

	tm.store.EXPECT().GetSyncConfig(gomock.Any(), nativeCoin.ID).
		Return(&schema.SyncConfig{SyncedHeight: 100}, nil)
	tm.gateway.EXPECT().GetBlockHeight(gomock.Any()).
		Return(domain.BlockHeight{CurrentHeight: 162, HighestHeight: 162}, nil)

	blocks := emptyBlocks(100, 150)
	blocks[20].Transactions = []ethereum.Transaction{
		{Hash: "0xat120", From: outsider, To: depositAddress, Value: big.NewInt(1), Gas: 21000, GasPrice: big.NewInt(1)},
	}
	tm.gateway.EXPECT().GetBlocksByNumber(gomock.Any(), heightsOf(100, 150)).Return(blocks, nil)
	tm.gateway.EXPECT().GetTransactionReceipt(gomock.Any(), "0xat120").Return(nil, errors.New("timeout"))
	tm.store.EXPECT().IngestBatch(gomock.Any(), gomock.Any()).Times(0)

	err := tm.scanner.RunOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSync)
}

func TestRunOnceMissingReceipt(t *testing.T) {
	tm := setupTestScanner(t)

	tm.store.EXPECT().GetSyncConfig(gomock.Any(), nativeCoin.ID).
		Return(&schema.SyncConfig{SyncedHeight: 100}, nil)
	tm.gateway.EXPECT().GetBlockHeight(gomock.Any()).
		Return(domain.BlockHeight{CurrentHeight: 113, HighestHeight: 113}, nil)
	tm.gateway.EXPECT().GetBlocksByNumber(gomock.Any(), []uint64{100}).Return([]ethereum.Block{{
		Number: 100,
		Transactions: []ethereum.Transaction{
			{Hash: "0xpending", From: outsider, To: depositAddress, Value: big.NewInt(1), GasPrice: big.NewInt(1)},
		},
	}}, nil)
	tm.gateway.EXPECT().GetTransactionReceipt(gomock.Any(), "0xpending").Return(nil, nil)

	err := tm.scanner.RunOnce(context.Background())
	assert.ErrorIs(t, err, domain.ErrSync)
}

func TestRunOnceStoreFailure(t *testing.T) {
	tm := setupTestScanner(t)

	tm.store.EXPECT().GetSyncConfig(gomock.Any(), nativeCoin.ID).
		Return(&schema.SyncConfig{SyncedHeight: 100}, nil)
	tm.gateway.EXPECT().GetBlockHeight(gomock.Any()).
		Return(domain.BlockHeight{CurrentHeight: 113, HighestHeight: 113}, nil)
	tm.gateway.EXPECT().GetBlocksByNumber(gomock.Any(), []uint64{100}).Return(emptyBlocks(100, 101), nil)
	tm.store.EXPECT().IngestBatch(gomock.Any(), gomock.Any()).Return(domain.ErrConfigMissing)

	err := tm.scanner.RunOnce(context.Background())
	assert.ErrorIs(t, err, domain.ErrSync)
	assert.ErrorIs(t, err, domain.ErrConfigMissing)
}

func TestRunOnceMissingConfig(t *testing.T) {
	t.Run("no checkpoint row", func(t *testing.T) {
		tm := setupTestScanner(t)
		tm.store.EXPECT().GetSyncConfig(gomock.Any(), nativeCoin.ID).Return(nil, nil)

		err := tm.scanner.RunOnce(context.Background())
		assert.ErrorIs(t, err, domain.ErrConfigMissing)
	})

	t.Run("no native coin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reg := mocks.NewMockRegistry(ctrl)
		reg.EXPECT().NativeCoin().Return(nil, false)

		s := scanner.New(scanner.Config{ConfirmationDelay: 12, BatchSize: 50},
			mocks.NewMockStore(ctrl), mocks.NewMockGateway(ctrl), reg, metrics.New())
		err := s.RunOnce(context.Background())
		assert.ErrorIs(t, err, domain.ErrConfigMissing)
	})
}

// Compile-time check that the registry mock satisfies the interface used by the scanner
var _ registry.Registry = (*mocks.MockRegistry)(nil)
