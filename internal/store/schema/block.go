package schema

import "time"

// Block represents the blocks table - scanned blocks, written once by the scanner
type Block struct {
	// ID is an auto-incrementing primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Height is the block number
	Height uint64 `gorm:"column:height;not null;uniqueIndex"`
	// BlockHash is the 0x-prefixed block hash
	BlockHash string `gorm:"column:block_hash;not null;uniqueIndex;type:varchar(66)"`
	// BlockTime is the block timestamp
	BlockTime time.Time `gorm:"column:block_time;not null;type:timestamptz"`
	// CreatedAt is when the block was ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Block model
func (Block) TableName() string {
	return "blocks"
}
