package schema

import "time"

// Project represents the projects table - a tenant of the wallet
type Project struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:name;not null;type:varchar(64)"`
	CallbackURL string `gorm:"column:callback_url;not null;type:varchar(255)"`
	AccessKey   string `gorm:"column:access_key;not null;type:varchar(128)"`
	// SecretKey signs deposit callbacks
	SecretKey string `gorm:"column:secret_key;not null;type:varchar(128)"`
	// HotPublicKey is handed to operators to encrypt the wallet passphrase
	HotPublicKey string `gorm:"column:hot_public_key;type:text"`
	// HotPrivateKey decrypts the submitted passphrase; PEM encoded
	HotPrivateKey string    `gorm:"column:hot_private_key;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Project model
func (Project) TableName() string {
	return "projects"
}

// ProjectCoin represents the project_coins table - per project settings of a coin.
// Gas, GasPrice and Fee are base-unit overrides where "0" means ask the node.
type ProjectCoin struct {
	ID                 uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID          uint64     `gorm:"column:project_id;not null;uniqueIndex:uq_project_coins_project_coin,priority:1"`
	CoinID             uint64     `gorm:"column:coin_id;not null;uniqueIndex:uq_project_coins_project_coin,priority:2"`
	HotAddress         string     `gorm:"column:hot_address;not null;type:varchar(42)"`
	HotSecret          string     `gorm:"column:hot_secret;type:text"`
	Gas                string     `gorm:"column:gas;not null;type:varchar(80)"`
	GasPrice           string     `gorm:"column:gas_price;not null;type:varchar(80)"`
	Fee                string     `gorm:"column:fee;not null;type:varchar(80)"`
	CollectAddress     string     `gorm:"column:collect_address;not null;type:varchar(42)"`
	FeeAddress         string     `gorm:"column:fee_address;not null;type:varchar(42)"`
	IsDeposit          bool       `gorm:"column:is_deposit;not null"`
	IsWithdraw         bool       `gorm:"column:is_withdraw;not null"`
	IsCollect          bool       `gorm:"column:is_collect;not null"`
	LastCollectionTime *time.Time `gorm:"column:last_collection_time;type:timestamptz"`
	CreatedAt          time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProjectCoin model
func (ProjectCoin) TableName() string {
	return "project_coins"
}

// ProjectOrder represents the project_orders table - the idempotency record of an outbound transfer
type ProjectOrder struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID uint64    `gorm:"column:project_id;not null"`
	ActionID  string    `gorm:"column:action_id;not null;uniqueIndex;type:varchar(128)"`
	CoinID    uint64    `gorm:"column:coin_id;not null"`
	TxHash    string    `gorm:"column:tx_hash;not null;uniqueIndex;type:varchar(66)"`
	Amount    string    `gorm:"column:amount;not null;type:varchar(80)"`
	Sender    string    `gorm:"column:sender;not null;type:varchar(42)"`
	Receiver  string    `gorm:"column:receiver;not null;type:varchar(42)"`
	Gas       string    `gorm:"column:gas;not null;type:varchar(80)"`
	GasPrice  string    `gorm:"column:gas_price;not null;type:varchar(80)"`
	Fee       string    `gorm:"column:fee;not null;type:varchar(80)"`
	Contract  string    `gorm:"column:contract;not null;type:varchar(42)"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProjectOrder model
func (ProjectOrder) TableName() string {
	return "project_orders"
}
