package store

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationSetting is one row of per-feature configuration maintained by
// admins through the settings UI. Value is a loosely-typed JSON blob whose
// shape depends on SettingName.
type NotificationSetting struct {
	ID          uint           `gorm:"column:id;primaryKey;autoIncrement"`
	SettingName string         `gorm:"column:setting_name;type:varchar(64);uniqueIndex"`
	Value       datatypes.JSON `gorm:"column:value;type:jsonb"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (NotificationSetting) TableName() string { return "notification_settings" }

// IntegrationLog is one audit row recording an attempted external dispatch
// and its outcome.
type IntegrationLog struct {
	ID              string         `gorm:"column:id;type:uuid;primaryKey"`
	IntegrationType string         `gorm:"column:integration_type;type:varchar(64)"`
	LeadID          *string        `gorm:"column:lead_id;type:uuid"`
	Request         datatypes.JSON `gorm:"column:request;type:jsonb"`
	Response        datatypes.JSON `gorm:"column:response;type:jsonb"`
	Error           string         `gorm:"column:error;type:text"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
}

func (IntegrationLog) TableName() string { return "integration_logs" }

// Lead is a prospective customer captured from a portal or webhook.
type Lead struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(255)"`
	Email     string    `gorm:"column:email;type:varchar(255)"`
	Phone     string    `gorm:"column:phone;type:varchar(64)"`
	Source    string    `gorm:"column:source;type:varchar(64)"`
	Interest  string    `gorm:"column:interest;type:varchar(255)"`
	Status    string    `gorm:"column:status;type:varchar(32)"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Lead) TableName() string { return "leads" }

// APIKey identifies an external integration source allowed to submit leads.
type APIKey struct {
	ID         uint       `gorm:"column:id;primaryKey;autoIncrement"`
	Key        string     `gorm:"column:key;type:varchar(128);uniqueIndex"`
	Source     string     `gorm:"column:source;type:varchar(64)"`
	Active     bool       `gorm:"column:active"`
	LastUsedAt *time.Time `gorm:"column:last_used_at"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
}

func (APIKey) TableName() string { return "api_keys" }

// UserRole mirrors the role assignment table maintained by the main CRM.
// Read-only here.
type UserRole struct {
	UserID string `gorm:"column:user_id;type:uuid"`
	Role   string `gorm:"column:role;type:varchar(32)"`
}

func (UserRole) TableName() string { return "user_roles" }

// Profile mirrors the user profile table maintained by the main CRM.
// Read-only here.
type Profile struct {
	ID    string `gorm:"column:id;type:uuid;primaryKey"`
	Email string `gorm:"column:email;type:varchar(255)"`
	Name  string `gorm:"column:name;type:varchar(255)"`
}

func (Profile) TableName() string { return "profiles" }
