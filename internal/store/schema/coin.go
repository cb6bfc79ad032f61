package schema

import "time"

// Coin represents the coins table - native coins and the tokens issued on them
type Coin struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// MasterID is the native coin a token belongs to, 0 for native coins
	MasterID uint64 `gorm:"column:master_id;not null"`
	Name     string `gorm:"column:name;not null;uniqueIndex;type:varchar(64)"`
	Symbol   string `gorm:"column:symbol;not null;type:varchar(32)"`
	// Decimal is the base-unit exponent
	Decimal int32 `gorm:"column:decimal;not null"`
	// Supply is the total supply in base units
	Supply         string `gorm:"column:supply;not null;type:varchar(80)"`
	IsMaster       bool   `gorm:"column:is_master;not null"`
	IsSupportToken bool   `gorm:"column:is_support_token;not null"`
	// Contract is the token contract address, nil for native coins
	Contract  *string   `gorm:"column:contract;type:varchar(42)"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Coin model
func (Coin) TableName() string {
	return "coins"
}

// ContractAddress returns the contract or an empty string for native coins
func (c *Coin) ContractAddress() string {
	if c.Contract == nil {
		return ""
	}
	return *c.Contract
}

// IsNative reports whether the coin is the chain's native coin
func (c *Coin) IsNative() bool {
	return c.MasterID == 0 && c.ContractAddress() == ""
}
