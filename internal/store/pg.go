package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
)

// upsertColumns are the transaction columns refreshed when a scanned transaction is seen again.
// is_send is deliberately absent so a pushed row is never reset.
var upsertColumns = []string{"block_time", "gas", "gas_price", "fee", "block_id", "height", "updated_at"}

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new store over a gorm connection. The queries are portable
// between PostgreSQL and MySQL.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// first runs query into dest and maps gorm.ErrRecordNotFound to (false, nil)
func first(query *gorm.DB, dest interface{}) (bool, error) {
	err := query.First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetActiveRPCConfig returns the active node endpoint
func (s *pgStore) GetActiveRPCConfig(ctx context.Context) (*schema.RPCConfig, error) {
	var cfg schema.RPCConfig
	found, err := first(s.db.WithContext(ctx).Where("status = ?", 1).Order("id ASC"), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get rpc config: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &cfg, nil
}

// GetCoin retrieves a coin by id, additionally matching contract when it is not empty
func (s *pgStore) GetCoin(ctx context.Context, coinID uint64, contract string) (*schema.Coin, error) {
	query := s.db.WithContext(ctx).Where("id = ?", coinID)
	if contract != "" {
		query = query.Where("contract = ?", domain.NormalizeAddress(contract))
	}

	var coin schema.Coin
	found, err := first(query, &coin)
	if err != nil {
		return nil, fmt.Errorf("failed to get coin: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &coin, nil
}

// GetCoinByContract retrieves a token by contract address
func (s *pgStore) GetCoinByContract(ctx context.Context, contract string) (*schema.Coin, error) {
	var coin schema.Coin
	found, err := first(s.db.WithContext(ctx).Where("contract = ?", domain.NormalizeAddress(contract)), &coin)
	if err != nil {
		return nil, fmt.Errorf("failed to get coin by contract: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &coin, nil
}

// GetCoinByName retrieves a coin by its unique name
func (s *pgStore) GetCoinByName(ctx context.Context, name string) (*schema.Coin, error) {
	var coin schema.Coin
	found, err := first(s.db.WithContext(ctx).Where("name = ?", name), &coin)
	if err != nil {
		return nil, fmt.Errorf("failed to get coin by name: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &coin, nil
}

// ListCoins returns every coin
func (s *pgStore) ListCoins(ctx context.Context) ([]schema.Coin, error) {
	var coins []schema.Coin
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&coins).Error; err != nil {
		return nil, fmt.Errorf("failed to list coins: %w", err)
	}
	return coins, nil
}

// CreateCoin registers a token
func (s *pgStore) CreateCoin(ctx context.Context, coin *schema.Coin) error {
	if coin.Contract != nil {
		normalized := domain.NormalizeAddress(*coin.Contract)
		coin.Contract = &normalized
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if coin.Contract != nil {
			var existing schema.Coin
			found, err := first(tx.Where("contract = ?", *coin.Contract), &existing)
			if err != nil {
				return fmt.Errorf("failed to check coin: %w", err)
			}
			if found {
				return domain.ErrTokenExists
			}
		}

		if err := tx.Create(coin).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrTokenExists
			}
			return fmt.Errorf("failed to create coin: %w", err)
		}
		return nil
	})
}

// GetProject retrieves a project by id
func (s *pgStore) GetProject(ctx context.Context, projectID uint64) (*schema.Project, error) {
	var project schema.Project
	found, err := first(s.db.WithContext(ctx).Where("id = ?", projectID), &project)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &project, nil
}

// ListProjects returns every project
func (s *pgStore) ListProjects(ctx context.Context) ([]schema.Project, error) {
	var projects []schema.Project
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// UpdateProjectCallback sets the deposit callback url
func (s *pgStore) UpdateProjectCallback(ctx context.Context, projectID uint64, callbackURL string) error {
	result := s.db.WithContext(ctx).Model(&schema.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{"callback_url": callbackURL, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("failed to update project callback: %w", result.Error)
	}
	return nil
}

// GetAPIAuth retrieves API credentials by access key
func (s *pgStore) GetAPIAuth(ctx context.Context, accessKey string) (*schema.APIAuth, error) {
	var auth schema.APIAuth
	found, err := first(s.db.WithContext(ctx).Where("access_key = ?", accessKey), &auth)
	if err != nil {
		return nil, fmt.Errorf("failed to get api auth: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &auth, nil
}

// ListProjectCoins returns the settings of every project coin
func (s *pgStore) ListProjectCoins(ctx context.Context) ([]schema.ProjectCoin, error) {
	var pcs []schema.ProjectCoin
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&pcs).Error; err != nil {
		return nil, fmt.Errorf("failed to list project coins: %w", err)
	}
	return pcs, nil
}

// GetProjectCoin retrieves the settings of a coin for a project
func (s *pgStore) GetProjectCoin(ctx context.Context, projectID, coinID uint64) (*schema.ProjectCoin, error) {
	var pc schema.ProjectCoin
	found, err := first(s.db.WithContext(ctx).Where("project_id = ? AND coin_id = ?", projectID, coinID), &pc)
	if err != nil {
		return nil, fmt.Errorf("failed to get project coin: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &pc, nil
}

// updateProjectCoin applies column updates and reports a missing row as domain.ErrProjectCoinMissing
func (s *pgStore) updateProjectCoin(ctx context.Context, projectID, coinID uint64, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := s.db.WithContext(ctx).Model(&schema.ProjectCoin{}).
		Where("project_id = ? AND coin_id = ?", projectID, coinID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update project coin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProjectCoinMissing
	}
	return nil
}

// UpdateProjectCoinAddress sets one of the configurable addresses
func (s *pgStore) UpdateProjectCoinAddress(ctx context.Context, projectID, coinID uint64, field domain.AddressField, address string) error {
	column, err := field.Column()
	if err != nil {
		return err
	}
	return s.updateProjectCoin(ctx, projectID, coinID, map[string]interface{}{column: domain.NormalizeAddress(address)})
}

// UpdateProjectCoinFees sets fee overrides; nil or empty fields are left unchanged
func (s *pgStore) UpdateProjectCoinFees(ctx context.Context, projectID, coinID uint64, input UpdateFeesInput) error {
	updates := make(map[string]interface{})
	if input.Gas != nil && *input.Gas != "" {
		updates["gas"] = *input.Gas
	}
	if input.GasPrice != nil && *input.GasPrice != "" {
		updates["gas_price"] = *input.GasPrice
	}
	if input.Fee != nil && *input.Fee != "" {
		updates["fee"] = *input.Fee
	}
	if len(updates) == 0 {
		return nil
	}
	return s.updateProjectCoin(ctx, projectID, coinID, updates)
}

// UpdateProjectCoinFlags sets deposit, withdraw and collect switches; nil fields are left unchanged
func (s *pgStore) UpdateProjectCoinFlags(ctx context.Context, projectID, coinID uint64, input UpdateFlagsInput) error {
	updates := make(map[string]interface{})
	if input.IsDeposit != nil {
		updates["is_deposit"] = *input.IsDeposit
	}
	if input.IsWithdraw != nil {
		updates["is_withdraw"] = *input.IsWithdraw
	}
	if input.IsCollect != nil {
		updates["is_collect"] = *input.IsCollect
	}
	if len(updates) == 0 {
		return nil
	}
	return s.updateProjectCoin(ctx, projectID, coinID, updates)
}

// SetLastCollectionTime records the end of a sweep pass
func (s *pgStore) SetLastCollectionTime(ctx context.Context, projectID, coinID uint64, at time.Time) error {
	return s.updateProjectCoin(ctx, projectID, coinID, map[string]interface{}{"last_collection_time": at})
}

// ListActiveAddresses returns every active address
func (s *pgStore) ListActiveAddresses(ctx context.Context) ([]schema.Address, error) {
	var addresses []schema.Address
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.AddressStatusActive).
		Order("id ASC").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active addresses: %w", err)
	}
	return addresses, nil
}

// CreateAddresses inserts new addresses
func (s *pgStore) CreateAddresses(ctx context.Context, addresses []schema.Address) error {
	if len(addresses) == 0 {
		return nil
	}
	for i := range addresses {
		addresses[i].Address = domain.NormalizeAddress(addresses[i].Address)
	}
	if err := s.db.WithContext(ctx).CreateInBatches(&addresses, 100).Error; err != nil {
		return fmt.Errorf("failed to create addresses: %w", err)
	}
	return nil
}

// GetAddress retrieves an address owned by a project
func (s *pgStore) GetAddress(ctx context.Context, projectID uint64, address string) (*schema.Address, error) {
	var addr schema.Address
	found, err := first(s.db.WithContext(ctx).
		Where("project_id = ? AND address = ?", projectID, domain.NormalizeAddress(address)), &addr)
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &addr, nil
}

// RemoveAddress moves an active address to removed
func (s *pgStore) RemoveAddress(ctx context.Context, projectID, coinID uint64, address string) (bool, error) {
	result := s.db.WithContext(ctx).Model(&schema.Address{}).
		Where("project_id = ? AND coin_id = ? AND address = ? AND status = ?",
			projectID, coinID, domain.NormalizeAddress(address), domain.AddressStatusActive).
		Updates(map[string]interface{}{"status": domain.AddressStatusRemoved, "updated_at": time.Now()})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove address: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetSyncConfig retrieves the checkpoint of a coin
func (s *pgStore) GetSyncConfig(ctx context.Context, coinID uint64) (*schema.SyncConfig, error) {
	var cfg schema.SyncConfig
	found, err := first(s.db.WithContext(ctx).Where("coin_id = ?", coinID), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync config: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &cfg, nil
}

// IngestBatch persists blocks, upserts transactions and advances the checkpoint in one transaction.
// The checkpoint only moves forward: synced_height = GREATEST(synced_height, input).
func (s *pgStore) IngestBatch(ctx context.Context, input IngestBatchInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(input.Blocks) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(&input.Blocks, 100).Error; err != nil {
				return fmt.Errorf("failed to insert blocks: %w", err)
			}
		}

		if len(input.Transactions) > 0 {
			blockIDs, err := blockIDsByHeight(tx, input.Transactions)
			if err != nil {
				return err
			}

			for i := range input.Transactions {
				t := &input.Transactions[i]
				id, ok := blockIDs[t.Height]
				if !ok {
					return fmt.Errorf("block %d missing for transaction %s", t.Height, t.TxHash)
				}
				t.BlockID = id
			}

			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "coin_id"}},
				DoUpdates: clause.AssignmentColumns(upsertColumns),
			}).CreateInBatches(&input.Transactions, 100).Error; err != nil {
				return fmt.Errorf("failed to upsert transactions: %w", err)
			}
		}

		result := tx.Model(&schema.SyncConfig{}).
			Where("coin_id = ?", input.CoinID).
			Updates(map[string]interface{}{
				"synced_height":  gorm.Expr("GREATEST(synced_height, ?)", input.SyncedHeight),
				"highest_height": input.HighestHeight,
				"updated_at":     time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to advance sync config: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrConfigMissing
		}

		return nil
	})
}

// blockIDsByHeight loads the ids of the blocks the transactions belong to
func blockIDsByHeight(tx *gorm.DB, transactions []schema.Transaction) (map[int64]int64, error) {
	heights := make([]int64, 0, len(transactions))
	seen := make(map[int64]struct{}, len(transactions))
	for _, t := range transactions {
		if _, ok := seen[t.Height]; ok {
			continue
		}
		seen[t.Height] = struct{}{}
		heights = append(heights, t.Height)
	}

	var blocks []schema.Block
	if err := tx.Select("id", "height").Where("height IN ?", heights).Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("failed to load block ids: %w", err)
	}

	ids := make(map[int64]int64, len(blocks))
	for _, b := range blocks {
		ids[int64(b.Height)] = int64(b.ID)
	}
	return ids, nil
}

// GetTransactionByHash retrieves the first ledger row with the hash
func (s *pgStore) GetTransactionByHash(ctx context.Context, txHash string) (*schema.Transaction, error) {
	var t schema.Transaction
	found, err := first(s.db.WithContext(ctx).Where("tx_hash = ?", strings.ToLower(txHash)).Order("id ASC"), &t)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &t, nil
}

// ListPendingNotifications returns rows not yet pushed, ordered by id after afterID
func (s *pgStore) ListPendingNotifications(ctx context.Context, afterID uint64, limit int) ([]schema.Transaction, error) {
	var transactions []schema.Transaction
	err := s.db.WithContext(ctx).
		Where("is_send = ? AND id > ?", domain.SendStatusNotPush, afterID).
		Order("id ASC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	return transactions, nil
}

// MarkTransactionPushed moves a row from not-pushed to pushed
func (s *pgStore) MarkTransactionPushed(ctx context.Context, transactionID uint64) (bool, error) {
	result := s.db.WithContext(ctx).Model(&schema.Transaction{}).
		Where("id = ? AND is_send = ?", transactionID, domain.SendStatusNotPush).
		Updates(map[string]interface{}{"is_send": domain.SendStatusPushed, "updated_at": time.Now()})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark transaction pushed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// InsertSelfTransaction records a sweep or render transfer; duplicates are ignored
func (s *pgStore) InsertSelfTransaction(ctx context.Context, t *schema.Transaction) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "coin_id"}},
			DoNothing: true,
		}).
		Create(t).Error
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// CreateProjectDeposit appends a callback attempt to the audit log
func (s *pgStore) CreateProjectDeposit(ctx context.Context, deposit *schema.ProjectDeposit) error {
	if err := s.db.WithContext(ctx).Create(deposit).Error; err != nil {
		return fmt.Errorf("failed to create project deposit: %w", err)
	}
	return nil
}

// GetProjectOrderByActionID retrieves an outbound order by its idempotency key
func (s *pgStore) GetProjectOrderByActionID(ctx context.Context, actionID string) (*schema.ProjectOrder, error) {
	var order schema.ProjectOrder
	found, err := first(s.db.WithContext(ctx).Where("action_id = ?", actionID), &order)
	if err != nil {
		return nil, fmt.Errorf("failed to get project order: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &order, nil
}

// CreateProjectOrder inserts the order unless the action id exists
func (s *pgStore) CreateProjectOrder(ctx context.Context, order *schema.ProjectOrder) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "action_id"}},
			DoNothing: true,
		}).
		Create(order)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create project order: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
