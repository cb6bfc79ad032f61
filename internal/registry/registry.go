package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
)

// AddressEntry is the owner of a registered address
type AddressEntry struct {
	Address   string
	ProjectID uint64
	CoinID    uint64
	Type      domain.AddressType
}

// Registry is a read-through index of active addresses, coins and projects.
// The store remains the system of record.
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Load replaces the index with the current store content
	Load(ctx context.Context) error

	// LookupAddress returns the owner of an active address
	LookupAddress(address string) (AddressEntry, bool)

	// IsKnown reports whether the address belongs to any project, either as an active
	// address or as a project coin's hot, collect or fee address
	IsKnown(address string) bool

	// IsDepositAddress reports whether the address is an active deposit address
	IsDepositAddress(address string) bool

	// AddressesByProject returns active deposit addresses grouped by project, sorted
	AddressesByProject() map[uint64][]string

	// CoinByContract returns the token registered for contract
	CoinByContract(contract string) (*schema.Coin, bool)

	// NativeCoin returns the chain's native coin
	NativeCoin() (*schema.Coin, bool)

	// Coins returns every coin ordered by id
	Coins() []schema.Coin

	// Project returns a project by id
	Project(projectID uint64) (*schema.Project, bool)

	// AddAddress indexes a newly created address
	AddAddress(entry AddressEntry)

	// RemoveAddress drops an address from the index
	RemoveAddress(address string)
}

type registry struct {
	mu             sync.RWMutex
	store          store.Store
	nativeCoinName string

	addresses  map[string]AddressEntry
	wallets    map[string]struct{}
	coins      []schema.Coin
	byContract map[string]*schema.Coin
	native     *schema.Coin
	projects   map[uint64]*schema.Project
}

// New creates an empty registry; call Load before use
func New(st store.Store, nativeCoinName string) Registry {
	return &registry{
		store:          st,
		nativeCoinName: nativeCoinName,
		addresses:      make(map[string]AddressEntry),
		wallets:        make(map[string]struct{}),
		byContract:     make(map[string]*schema.Coin),
		projects:       make(map[uint64]*schema.Project),
	}
}

// Load replaces the index with the current store content
func (r *registry) Load(ctx context.Context) error {
	addresses, err := r.store.ListActiveAddresses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load addresses: %w", err)
	}
	coins, err := r.store.ListCoins(ctx)
	if err != nil {
		return fmt.Errorf("failed to load coins: %w", err)
	}
	projects, err := r.store.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	projectCoins, err := r.store.ListProjectCoins(ctx)
	if err != nil {
		return fmt.Errorf("failed to load project coins: %w", err)
	}

	index := make(map[string]AddressEntry, len(addresses))
	for _, a := range addresses {
		address := domain.NormalizeAddress(a.Address)
		index[address] = AddressEntry{
			Address:   address,
			ProjectID: a.ProjectID,
			CoinID:    a.CoinID,
			Type:      a.AddressType,
		}
	}

	wallets := make(map[string]struct{}, 3*len(projectCoins))
	for _, pc := range projectCoins {
		for _, address := range []string{pc.HotAddress, pc.CollectAddress, pc.FeeAddress} {
			if address != "" {
				wallets[domain.NormalizeAddress(address)] = struct{}{}
			}
		}
	}

	byContract := make(map[string]*schema.Coin)
	var native *schema.Coin
	for i := range coins {
		coin := &coins[i]
		if contract := coin.ContractAddress(); contract != "" {
			byContract[domain.NormalizeAddress(contract)] = coin
		}
		if coin.Name == r.nativeCoinName {
			native = coin
		}
	}

	byID := make(map[uint64]*schema.Project, len(projects))
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}

	r.mu.Lock()
	r.addresses = index
	r.wallets = wallets
	r.coins = coins
	r.byContract = byContract
	r.native = native
	r.projects = byID
	r.mu.Unlock()

	logger.DebugCtx(ctx, "Registry loaded",
		zap.Int("addresses", len(index)),
		zap.Int("wallets", len(wallets)),
		zap.Int("coins", len(coins)),
		zap.Int("projects", len(byID)))

	return nil
}

// LookupAddress returns the owner of an active address
func (r *registry) LookupAddress(address string) (AddressEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.addresses[domain.NormalizeAddress(address)]
	return entry, ok
}

// IsKnown reports whether the address belongs to any project
func (r *registry) IsKnown(address string) bool {
	address = domain.NormalizeAddress(address)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.addresses[address]; ok {
		return true
	}
	_, ok := r.wallets[address]
	return ok
}

// IsDepositAddress reports whether the address is an active deposit address
func (r *registry) IsDepositAddress(address string) bool {
	entry, ok := r.LookupAddress(address)
	return ok && entry.Type == domain.AddressTypeDeposit
}

// AddressesByProject returns active deposit addresses grouped by project, sorted
func (r *registry) AddressesByProject() map[uint64][]string {
	r.mu.RLock()
	grouped := make(map[uint64][]string)
	for address, entry := range r.addresses {
		if entry.Type != domain.AddressTypeDeposit {
			continue
		}
		grouped[entry.ProjectID] = append(grouped[entry.ProjectID], address)
	}
	r.mu.RUnlock()

	for _, addresses := range grouped {
		sort.Strings(addresses)
	}
	return grouped
}

// CoinByContract returns the token registered for contract
func (r *registry) CoinByContract(contract string) (*schema.Coin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	coin, ok := r.byContract[domain.NormalizeAddress(contract)]
	return coin, ok
}

// NativeCoin returns the chain's native coin
func (r *registry) NativeCoin() (*schema.Coin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.native, r.native != nil
}

// Coins returns every coin ordered by id
func (r *registry) Coins() []schema.Coin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	coins := make([]schema.Coin, len(r.coins))
	copy(coins, r.coins)
	return coins
}

// Project returns a project by id
func (r *registry) Project(projectID uint64) (*schema.Project, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	project, ok := r.projects[projectID]
	return project, ok
}

// AddAddress indexes a newly created address
func (r *registry) AddAddress(entry AddressEntry) {
	entry.Address = domain.NormalizeAddress(entry.Address)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addresses[entry.Address] = entry
}

// RemoveAddress drops an address from the index
func (r *registry) RemoveAddress(address string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.addresses, domain.NormalizeAddress(address))
}
