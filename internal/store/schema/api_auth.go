package schema

// APIAuth represents the api_auths table - credentials for signed API requests
type APIAuth struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID uint64 `gorm:"column:project_id;not null"`
	AccessKey string `gorm:"column:access_key;not null;uniqueIndex;type:varchar(128)"`
	SecretKey string `gorm:"column:secret_key;not null;type:varchar(128)"`
	IP        string `gorm:"column:ip;not null;type:varchar(255)"`
	// Status 0 disables the key
	Status int `gorm:"column:status;not null"`
}

// TableName specifies the table name for the APIAuth model
func (APIAuth) TableName() string {
	return "api_auths"
}
