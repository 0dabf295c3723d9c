package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records every state-changing operation: who did what to
// which resource, with before/after snapshots.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey;column:a_id;autoIncrement" json:"id"`
	UserID       uint           `gorm:"column:u_id;index" json:"user_id"`
	Action       string         `gorm:"size:30;not null" json:"action"`
	ResourceType string         `gorm:"size:30;not null" json:"resource_type"`
	ResourceID   string         `gorm:"size:64;index" json:"resource_id"`
	OldData      datatypes.JSON `gorm:"type:jsonb" json:"old_data,omitempty"`
	NewData      datatypes.JSON `gorm:"type:jsonb" json:"new_data,omitempty"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	IP           string         `gorm:"size:45" json:"ip,omitempty"`
	UserAgent    string         `gorm:"size:255" json:"user_agent,omitempty"`
	CreatedAt    time.Time      `gorm:"column:create_at;autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
