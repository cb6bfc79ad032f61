package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
)

// IngestBatchInput is one scanned block range, persisted atomically with its checkpoint
type IngestBatchInput struct {
	// CoinID selects the sync_configs row to advance
	CoinID uint64
	// Blocks are inserted once; existing heights are left untouched
	Blocks []schema.Block
	// Transactions carry Height; BlockID is resolved from the persisted blocks
	Transactions []schema.Transaction
	// SyncedHeight is the exclusive end of the batch
	SyncedHeight uint64
	// HighestHeight is the node's highest known block
	HighestHeight uint64
}

// UpdateFeesInput holds project coin fee overrides. Nil or empty fields are left unchanged.
type UpdateFeesInput struct {
	Gas      *string
	GasPrice *string
	Fee      *string
}

// UpdateFlagsInput holds project coin switches. Nil fields are left unchanged.
type UpdateFlagsInput struct {
	IsDeposit  *bool
	IsWithdraw *bool
	IsCollect  *bool
}

// Store defines the interface for ledger operations.
// Getters return (nil, nil) when the row does not exist.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetActiveRPCConfig returns the active node endpoint
	GetActiveRPCConfig(ctx context.Context) (*schema.RPCConfig, error)

	// GetCoin retrieves a coin by id, additionally matching contract when it is not empty
	GetCoin(ctx context.Context, coinID uint64, contract string) (*schema.Coin, error)
	// GetCoinByContract retrieves a token by contract address
	GetCoinByContract(ctx context.Context, contract string) (*schema.Coin, error)
	// GetCoinByName retrieves a coin by its unique name
	GetCoinByName(ctx context.Context, name string) (*schema.Coin, error)
	// ListCoins returns every coin
	ListCoins(ctx context.Context) ([]schema.Coin, error)
	// CreateCoin registers a token; an existing (master, contract) pair yields domain.ErrTokenExists
	CreateCoin(ctx context.Context, coin *schema.Coin) error

	// GetProject retrieves a project by id
	GetProject(ctx context.Context, projectID uint64) (*schema.Project, error)
	// ListProjects returns every project
	ListProjects(ctx context.Context) ([]schema.Project, error)
	// UpdateProjectCallback sets the deposit callback url
	UpdateProjectCallback(ctx context.Context, projectID uint64, callbackURL string) error
	// GetAPIAuth retrieves API credentials by access key
	GetAPIAuth(ctx context.Context, accessKey string) (*schema.APIAuth, error)

	// ListProjectCoins returns the settings of every project coin
	ListProjectCoins(ctx context.Context) ([]schema.ProjectCoin, error)
	// GetProjectCoin retrieves the settings of a coin for a project
	GetProjectCoin(ctx context.Context, projectID, coinID uint64) (*schema.ProjectCoin, error)
	// UpdateProjectCoinAddress sets one of the configurable addresses
	UpdateProjectCoinAddress(ctx context.Context, projectID, coinID uint64, field domain.AddressField, address string) error
	// UpdateProjectCoinFees sets fee overrides
	UpdateProjectCoinFees(ctx context.Context, projectID, coinID uint64, input UpdateFeesInput) error
	// UpdateProjectCoinFlags sets deposit, withdraw and collect switches
	UpdateProjectCoinFlags(ctx context.Context, projectID, coinID uint64, input UpdateFlagsInput) error
	// SetLastCollectionTime records the end of a sweep pass
	SetLastCollectionTime(ctx context.Context, projectID, coinID uint64, at time.Time) error

	// ListActiveAddresses returns every active address
	ListActiveAddresses(ctx context.Context) ([]schema.Address, error)
	// CreateAddresses inserts new addresses
	CreateAddresses(ctx context.Context, addresses []schema.Address) error
	// GetAddress retrieves an address owned by a project
	GetAddress(ctx context.Context, projectID uint64, address string) (*schema.Address, error)
	// RemoveAddress moves an active address to removed; false when nothing matched
	RemoveAddress(ctx context.Context, projectID, coinID uint64, address string) (bool, error)

	// GetSyncConfig retrieves the checkpoint of a coin
	GetSyncConfig(ctx context.Context, coinID uint64) (*schema.SyncConfig, error)
	// IngestBatch persists blocks, upserts transactions and advances the checkpoint in one transaction
	IngestBatch(ctx context.Context, input IngestBatchInput) error

	// GetTransactionByHash retrieves the first ledger row with the hash
	GetTransactionByHash(ctx context.Context, txHash string) (*schema.Transaction, error)
	// ListPendingNotifications returns rows not yet pushed, ordered by id after afterID
	ListPendingNotifications(ctx context.Context, afterID uint64, limit int) ([]schema.Transaction, error)
	// MarkTransactionPushed moves a row from not-pushed to pushed; false when it was not pending
	MarkTransactionPushed(ctx context.Context, transactionID uint64) (bool, error)
	// InsertSelfTransaction records a sweep or render transfer; duplicates are ignored
	InsertSelfTransaction(ctx context.Context, tx *schema.Transaction) error
	// CreateProjectDeposit appends a callback attempt to the audit log
	CreateProjectDeposit(ctx context.Context, deposit *schema.ProjectDeposit) error

	// GetProjectOrderByActionID retrieves an outbound order by its idempotency key
	GetProjectOrderByActionID(ctx context.Context, actionID string) (*schema.ProjectOrder, error)
	// CreateProjectOrder inserts the order unless the action id exists; false when another writer won
	CreateProjectOrder(ctx context.Context, order *schema.ProjectOrder) (bool, error)
}
