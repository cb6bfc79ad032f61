package schema

import (
	"time"

	"github.com/feral-file/ff-hotwallet/internal/domain"
)

// Address represents the addresses table - wallet addresses owned by projects
type Address struct {
	ID          uint64               `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID   uint64               `gorm:"column:project_id;not null;index"`
	CoinID      uint64               `gorm:"column:coin_id;not null"`
	Address     string               `gorm:"column:address;not null;uniqueIndex;type:varchar(42)"`
	AddressType domain.AddressType   `gorm:"column:address_type;not null"`
	Status      domain.AddressStatus `gorm:"column:status;not null"`
	CreatedAt   time.Time            `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt   time.Time            `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Address model
func (Address) TableName() string {
	return "addresses"
}
