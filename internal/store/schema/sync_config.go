package schema

import "time"

// SyncConfig represents the sync_configs table - the scanner checkpoint per coin
type SyncConfig struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	CoinID uint64 `gorm:"column:coin_id;not null;uniqueIndex"`
	// SyncedHeight is the exclusive upper bound of fully ingested blocks; it never decreases
	SyncedHeight uint64 `gorm:"column:synced_height;not null"`
	// HighestHeight is the node's reported highest block at the last checkpoint
	HighestHeight uint64    `gorm:"column:highest_height;not null"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SyncConfig model
func (SyncConfig) TableName() string {
	return "sync_configs"
}
