package sweeper_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
	"github.com/feral-file/ff-hotwallet/internal/sweeper"
)

var renderConfig = sweeper.EngineConfig{ReserveFloor: "0.005", TopUpAmount: "0.01", RenderAddress: renderAddress}

func renderProjectCoin(feeAddr string) *schema.ProjectCoin {
	return &schema.ProjectCoin{
		ProjectID:      1,
		CoinID:         2,
		CollectAddress: collectAddress,
		FeeAddress:     feeAddr,
		Gas:            "60000",
		GasPrice:       "1000000000",
		IsCollect:      true,
	}
}

func TestRenderTopsUpTokenHolders(t *testing.T) {
	tm := setupTestEngine(t)
	ctx := context.Background()
	tm.expectUnlockedProject(addressA, addressB, addressC)

	tm.store.EXPECT().GetProjectCoin(gomock.Any(), uint64(1), uint64(2)).Return(renderProjectCoin(feeAddress), nil)
	tm.gateway.EXPECT().GetBalances(gomock.Any(), []string{addressA, addressB, addressC}, token).
		Return([]*big.Int{wei("100"), wei("0"), wei("200")}, nil)

	// the token transfer costs 60000 × 1 gwei
	tm.gateway.EXPECT().GetBalance(gomock.Any(), addressA, "").Return(wei("10000000000000"), nil)
	tm.gateway.EXPECT().GetBalance(gomock.Any(), addressC, "").Return(wei("60000000000001"), nil)
	tm.gateway.EXPECT().GetSmartFee(gomock.Any(), "").Return(wei("21000"), nil)

	tm.gateway.EXPECT().SendTransaction(gomock.Any(), ethereum.SendRequest{
		From:       feeAddress,
		To:         addressA,
		Value:      wei("10000000000000000"),
		Passphrase: passphrase,
		Gas:        wei("21000"),
		GasPrice:   wei("1000000000"),
	}).Return("0xF00", nil)
	tm.store.EXPECT().InsertSelfTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *schema.Transaction) error {
			assert.Equal(t, "0xf00", tx.TxHash)
			assert.Equal(t, uint64(1), tx.CoinID)
			assert.Equal(t, feeAddress, tx.Sender)
			assert.Equal(t, addressA, tx.Receiver)
			assert.Equal(t, "10000000000000000", tx.Amount)
			assert.Empty(t, tx.Contract)
			assert.Equal(t, domain.TxTypeRender, tx.TxType)
			assert.Equal(t, domain.TxStatusUnknown, tx.Status)
			assert.Equal(t, int64(-1), tx.Height)
			return nil
		})

	require.NoError(t, tm.render(renderConfig).RunOnce(ctx))
	assert.Equal(t, float64(1), testutil.ToFloat64(tm.metrics.SelfTransfers.WithLabelValues("render", "sent")))
}

func TestRenderFallsBackToRenderAddress(t *testing.T) {
	tm := setupTestEngine(t)
	ctx := context.Background()
	tm.expectUnlockedProject(addressA)

	tm.store.EXPECT().GetProjectCoin(gomock.Any(), uint64(1), uint64(2)).Return(renderProjectCoin(""), nil)
	tm.gateway.EXPECT().GetBalances(gomock.Any(), []string{addressA}, token).Return([]*big.Int{wei("100")}, nil)
	tm.gateway.EXPECT().GetBalance(gomock.Any(), addressA, "").Return(wei("0"), nil)
	tm.gateway.EXPECT().GetSmartFee(gomock.Any(), "").Return(wei("21000"), nil)
	tm.gateway.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ethereum.SendRequest) (string, error) {
			assert.Equal(t, renderAddress, req.From)
			// top-up defaults to the reserve floor
			assert.Equal(t, "5000000000000000", req.Value.String())
			return "0xbeef", nil
		})
	tm.store.EXPECT().InsertSelfTransaction(gomock.Any(), gomock.Any()).Return(nil)

	cfg := renderConfig
	cfg.TopUpAmount = ""
	require.NoError(t, tm.render(cfg).RunOnce(ctx))
}

func TestRenderFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("no funding address", func(t *testing.T) {
		tm := setupTestEngine(t)
		tm.expectUnlockedProject(addressA)
		tm.store.EXPECT().GetProjectCoin(gomock.Any(), uint64(1), uint64(2)).Return(renderProjectCoin(""), nil)

		cfg := renderConfig
		cfg.RenderAddress = ""
		require.NoError(t, tm.render(cfg).RunOnce(ctx))
	})

	t.Run("empty hash is not recorded", func(t *testing.T) {
		tm := setupTestEngine(t)
		tm.expectUnlockedProject(addressA)
		tm.store.EXPECT().GetProjectCoin(gomock.Any(), uint64(1), uint64(2)).Return(renderProjectCoin(feeAddress), nil)
		tm.gateway.EXPECT().GetBalances(gomock.Any(), []string{addressA}, token).Return([]*big.Int{wei("100")}, nil)
		tm.gateway.EXPECT().GetBalance(gomock.Any(), addressA, "").Return(wei("0"), nil)
		tm.gateway.EXPECT().GetSmartFee(gomock.Any(), "").Return(wei("21000"), nil)
		tm.gateway.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return("", nil)
		tm.store.EXPECT().InsertSelfTransaction(gomock.Any(), gomock.Any()).Times(0)

		require.NoError(t, tm.render(renderConfig).RunOnce(ctx))
		assert.Equal(t, float64(1), testutil.ToFloat64(tm.metrics.SelfTransfers.WithLabelValues("render", "failed")))
	})

	t.Run("native balance failure", func(t *testing.T) {
		tm := setupTestEngine(t)
		tm.expectUnlockedProject(addressA)
		tm.store.EXPECT().GetProjectCoin(gomock.Any(), uint64(1), uint64(2)).Return(renderProjectCoin(feeAddress), nil)
		tm.gateway.EXPECT().GetBalances(gomock.Any(), []string{addressA}, token).Return([]*big.Int{wei("100")}, nil)
		tm.gateway.EXPECT().GetBalance(gomock.Any(), addressA, "").Return(nil, errors.New("timeout"))

		require.NoError(t, tm.render(renderConfig).RunOnce(ctx))
	})

	t.Run("collection disabled", func(t *testing.T) {
		tm := setupTestEngine(t)
		tm.expectUnlockedProject(addressA)
		tm.store.EXPECT().GetProjectCoin(gomock.Any(), uint64(1), uint64(2)).
			Return(&schema.ProjectCoin{ProjectID: 1, CoinID: 2, FeeAddress: feeAddress}, nil)

		require.NoError(t, tm.render(renderConfig).RunOnce(ctx))
	})

	t.Run("zero top-up amount", func(t *testing.T) {
		tm := setupTestEngine(t)
		tm.registry.EXPECT().NativeCoin().Return(nativeCoin(), true)

		cfg := renderConfig
		cfg.TopUpAmount = "0"
		assert.ErrorIs(t, tm.render(cfg).RunOnce(ctx), domain.ErrConfigMissing)
	})
}
