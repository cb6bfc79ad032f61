package vault

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/store"
)

// Vault holds decrypted wallet passphrases in memory, keyed by project and coin.
// Nothing is persisted; a restarted process starts locked.
//
//go:generate mockgen -source=vault.go -destination=../mocks/vault.go -package=mocks -mock_names=Vault=MockVault
type Vault interface {
	// Unlock decrypts encryptedSecret with the project's private key, verifies it against the
	// hot address and caches the passphrase
	Unlock(ctx context.Context, projectID, coinID uint64, encryptedSecret string) error

	// Get returns the cached passphrase
	Get(projectID, coinID uint64) (string, error)

	// Projects returns the ids of projects with at least one unlocked coin
	Projects() []uint64

	// Clear drops every cached passphrase
	Clear()
}

type entry struct {
	secret     string
	passphrase string
}

type vault struct {
	mu        sync.RWMutex
	entries   map[uint64]map[uint64]entry
	store     store.Store
	gateway   ethereum.Gateway
	decrypter adapter.Decrypter
}

// New creates an empty vault
func New(st store.Store, gateway ethereum.Gateway, decrypter adapter.Decrypter) Vault {
	return &vault{
		entries:   make(map[uint64]map[uint64]entry),
		store:     st,
		gateway:   gateway,
		decrypter: decrypter,
	}
}

func (v *vault) Unlock(ctx context.Context, projectID, coinID uint64, encryptedSecret string) error {
	projectCoin, err := v.store.GetProjectCoin(ctx, projectID, coinID)
	if err != nil {
		return err
	}
	if projectCoin == nil {
		return domain.ErrProjectCoinMissing
	}

	project, err := v.store.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil || project.HotPrivateKey == "" {
		return domain.ErrKeyMissing
	}

	passphrase, err := v.decrypter.Decrypt(encryptedSecret, project.HotPrivateKey)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to decrypt passphrase",
			zap.Uint64("projectID", projectID),
			zap.Uint64("coinID", coinID),
			zap.Error(err))
		return domain.ErrPassphraseInvalid
	}

	ok, err := v.gateway.OpenWallet(ctx, passphrase, projectCoin.HotAddress)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWalletUnlockFailed, err)
	}
	if !ok {
		return domain.ErrWalletUnlockFailed
	}

	v.mu.Lock()
	coins, found := v.entries[projectID]
	if !found {
		coins = make(map[uint64]entry)
		v.entries[projectID] = coins
	}
	coins[coinID] = entry{secret: encryptedSecret, passphrase: passphrase}
	v.mu.Unlock()

	logger.InfoCtx(ctx, "Wallet unlocked",
		zap.Uint64("projectID", projectID),
		zap.Uint64("coinID", coinID),
		zap.String("hotAddress", projectCoin.HotAddress))

	return nil
}

func (v *vault) Get(projectID, coinID uint64) (string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	coins, ok := v.entries[projectID]
	if !ok {
		return "", domain.ErrProjectPassphraseMissing
	}
	e, ok := coins[coinID]
	if !ok {
		return "", domain.ErrCoinPassphraseMissing
	}
	return e.passphrase, nil
}

func (v *vault) Projects() []uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	ids := make([]uint64, 0, len(v.entries))
	for id, coins := range v.entries {
		if len(coins) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (v *vault) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries = make(map[uint64]map[uint64]entry)
}
