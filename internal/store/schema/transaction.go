package schema

import (
	"time"

	"github.com/feral-file/ff-hotwallet/internal/domain"
)

// Transaction represents the transactions table - the ledger of deposits and self-originated transfers.
// Amounts and fees are base-unit decimal strings. A row is unique on (tx_hash, coin_id).
type Transaction struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	CoinID uint64 `gorm:"column:coin_id;not null;uniqueIndex:uq_transactions_tx_hash_coin_id,priority:2"`
	// BlockID is -1 until the transaction is seen in a scanned block
	BlockID int64  `gorm:"column:block_id;not null"`
	TxHash  string `gorm:"column:tx_hash;not null;type:varchar(66);uniqueIndex:uq_transactions_tx_hash_coin_id,priority:1"`
	// Height is -1 for unconfirmed self-originated transfers
	Height int64 `gorm:"column:height;not null"`
	// BlockTime is unix seconds
	BlockTime int64             `gorm:"column:block_time;not null"`
	Amount    string            `gorm:"column:amount;not null;type:varchar(80)"`
	Sender    string            `gorm:"column:sender;not null;type:varchar(42)"`
	Receiver  string            `gorm:"column:receiver;not null;type:varchar(42)"`
	Gas       string            `gorm:"column:gas;not null;type:varchar(80)"`
	GasPrice  string            `gorm:"column:gas_price;not null;type:varchar(80)"`
	Fee       string            `gorm:"column:fee;not null;type:varchar(80)"`
	Contract  string            `gorm:"column:contract;not null;type:varchar(42)"`
	Status    domain.TxStatus   `gorm:"column:status;not null"`
	TxType    domain.TxType     `gorm:"column:tx_type;not null"`
	IsSend    domain.SendStatus `gorm:"column:is_send;not null;index"`
	CreatedAt time.Time         `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time         `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
