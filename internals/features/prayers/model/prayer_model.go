// file: internals/features/prayers/model/prayer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type PrayerRequestModel struct {
	PrayerID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:prayer_id" json:"prayer_id"`

	// optional link back to a roster entry
	PrayerTeenID *uuid.UUID `gorm:"type:uuid;index;column:prayer_teen_id" json:"prayer_teen_id,omitempty"`

	PrayerRequestedBy *string `gorm:"type:varchar(120);column:prayer_requested_by" json:"prayer_requested_by,omitempty"`
	PrayerText        string  `gorm:"type:text;not null;column:prayer_text"        json:"prayer_text"`

	PrayerAnsweredAt *time.Time `gorm:"type:timestamptz;column:prayer_answered_at"       json:"prayer_answered_at,omitempty"`
	PrayerArchivedAt *time.Time `gorm:"type:timestamptz;index;column:prayer_archived_at" json:"prayer_archived_at,omitempty"`

	PrayerCreatedBy *uuid.UUID `gorm:"type:uuid;column:prayer_created_by" json:"prayer_created_by,omitempty"`

	PrayerCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:prayer_created_at" json:"prayer_created_at"`
	PrayerUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:prayer_updated_at" json:"prayer_updated_at"`
}

func (PrayerRequestModel) TableName() string { return "prayer_requests" }
