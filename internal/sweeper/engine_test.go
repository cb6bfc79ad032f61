package sweeper_test

import (
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/mocks"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
	"github.com/feral-file/ff-hotwallet/internal/sweeper"
)

const (
	addressA       = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	addressB       = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	addressC       = "0xcccccccccccccccccccccccccccccccccccccccc"
	collectAddress = "0x2222222222222222222222222222222222222222"
	feeAddress     = "0x3333333333333333333333333333333333333333"
	renderAddress  = "0x7777777777777777777777777777777777777777"
	token          = "0xdac17f958d2ee523a2206206994597c13d831ec7"
	passphrase     = "correct horse"
)

type testEngineMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	gateway  *mocks.MockGateway
	vault    *mocks.MockVault
	registry *mocks.MockRegistry
	clock    *mocks.MockClock
	metrics  *metrics.Metrics
}

func setupTestEngine(t *testing.T) *testEngineMocks {
	ctrl := gomock.NewController(t)
	tm := &testEngineMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		gateway:  mocks.NewMockGateway(ctrl),
		vault:    mocks.NewMockVault(ctrl),
		registry: mocks.NewMockRegistry(ctrl),
		clock:    mocks.NewMockClock(ctrl),
		metrics:  metrics.New(),
	}
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	return tm
}

func (tm *testEngineMocks) collection(cfg sweeper.EngineConfig) *sweeper.Collection {
	return sweeper.NewCollection(cfg, tm.store, tm.gateway, tm.vault, tm.registry, tm.clock, tm.metrics)
}

func (tm *testEngineMocks) render(cfg sweeper.EngineConfig) *sweeper.Render {
	return sweeper.NewRender(cfg, tm.store, tm.gateway, tm.vault, tm.registry, tm.clock, tm.metrics)
}

// expectUnlockedProject registers project 1 with addresses and the native passphrase
func (tm *testEngineMocks) expectUnlockedProject(addresses ...string) {
	tm.registry.EXPECT().NativeCoin().Return(nativeCoin(), true)
	tm.registry.EXPECT().AddressesByProject().Return(map[uint64][]string{1: addresses})
	tm.registry.EXPECT().Coins().Return([]schema.Coin{*nativeCoin(), *tokenCoin()})
	tm.vault.EXPECT().Get(uint64(1), uint64(1)).Return(passphrase, nil)
}

func nativeCoin() *schema.Coin {
	return &schema.Coin{ID: 1, Name: "Ethereum", Symbol: "ETH", Decimal: 18, IsMaster: true, IsSupportToken: true}
}

func tokenCoin() *schema.Coin {
	contract := token
	return &schema.Coin{ID: 2, MasterID: 1, Name: "Tether USD", Symbol: "USDT", Decimal: 6, Contract: &contract}
}

func wei(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid number " + s)
	}
	return v
}
