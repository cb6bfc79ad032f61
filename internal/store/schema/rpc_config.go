package schema

// RPCConfig represents the rpc_configs table - node endpoints per coin
type RPCConfig struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	CoinID uint64 `gorm:"column:coin_id;not null"`
	Name   string `gorm:"column:name;not null;type:varchar(64)"`
	// Driver selects the gateway implementation, e.g. ETHEREUM
	Driver string `gorm:"column:driver;not null;type:varchar(32)"`
	Host   string `gorm:"column:host;not null;type:varchar(255)"`
	// Status 1 marks the active endpoint
	Status int `gorm:"column:status;not null"`
}

// TableName specifies the table name for the RPCConfig model
func (RPCConfig) TableName() string {
	return "rpc_configs"
}
