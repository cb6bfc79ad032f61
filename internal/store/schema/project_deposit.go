package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectDeposit represents the project_deposits table - audit log of deposit callback attempts
type ProjectDeposit struct {
	// ID is an auto-incrementing sequence number
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID uint64 `gorm:"column:project_id;not null;index"`
	// TransactionID is the ledger row being announced
	TransactionID uint64 `gorm:"column:transaction_id;not null;index"`
	TxHash        string `gorm:"column:tx_hash;not null;type:varchar(66)"`
	// OrderID is the uuid sent as orderId in the payload
	OrderID string `gorm:"column:order_id;not null;type:varchar(32)"`
	// EventID is the ULID sent in the event header
	EventID string `gorm:"column:event_id;not null;type:varchar(26)"`
	Address string `gorm:"column:address;not null;type:varchar(42)"`
	// Delivered is true when the callback answered 200
	Delivered bool `gorm:"column:delivered;not null"`
	// Payload is the exact body that was posted
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// ResponseStatus is the HTTP status code, nil when the request never completed
	ResponseStatus *int `gorm:"column:response_status"`
	// ResponseBody is limited to 4KB
	ResponseBody string    `gorm:"column:response_body;type:text"`
	ErrorMessage string    `gorm:"column:error_message;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProjectDeposit model
func (ProjectDeposit) TableName() string {
	return "project_deposits"
}
