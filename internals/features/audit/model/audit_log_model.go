// file: internals/features/audit/model/audit_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Append-only trail of staff mutations. Rows are never updated or deleted.
type AuditLogModel struct {
	AuditLogID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:audit_log_id" json:"audit_log_id"`
	AuditLogUserID     uuid.UUID      `gorm:"type:uuid;not null;index;column:audit_log_user_id"                  json:"audit_log_user_id"`
	AuditLogAction     string         `gorm:"type:varchar(20);not null;column:audit_log_action"                  json:"audit_log_action"`
	AuditLogEntityType string         `gorm:"type:varchar(40);not null;index;column:audit_log_entity_type"       json:"audit_log_entity_type"`
	AuditLogEntityID   uuid.UUID      `gorm:"type:uuid;not null;index;column:audit_log_entity_id"                json:"audit_log_entity_id"`
	AuditLogBefore     datatypes.JSON `gorm:"column:audit_log_before"                                            json:"audit_log_before,omitempty"`
	AuditLogAfter      datatypes.JSON `gorm:"column:audit_log_after"                                             json:"audit_log_after,omitempty"`
	AuditLogCreatedAt  time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:audit_log_created_at" json:"audit_log_created_at"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }

const (
	ActionCreate  = "CREATE"
	ActionUpdate  = "UPDATE"
	ActionArchive = "ARCHIVE"
	ActionRestore = "RESTORE"
)
