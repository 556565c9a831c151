// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	NotificationStatusSent   = "SENT"
	NotificationStatusFailed = "FAILED"
)

// One row per send attempt, kept as outbound history.
type NotificationModel struct {
	NotificationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`

	NotificationSubject string `gorm:"type:varchar(240);not null;column:notification_subject" json:"notification_subject"`
	NotificationBody    string `gorm:"type:text;not null;column:notification_body"            json:"notification_body"`

	// JSON array of recipient addresses
	NotificationRecipients datatypes.JSON `gorm:"not null;column:notification_recipients" json:"notification_recipients"`

	NotificationStatus string  `gorm:"type:varchar(20);not null;column:notification_status" json:"notification_status"`
	NotificationError  *string `gorm:"type:text;column:notification_error"                  json:"notification_error,omitempty"`

	NotificationSentBy *uuid.UUID `gorm:"type:uuid;column:notification_sent_by" json:"notification_sent_by,omitempty"`

	NotificationCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:notification_created_at" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
