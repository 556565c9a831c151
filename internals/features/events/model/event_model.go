// file: internals/features/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type EventModel struct {
	EventID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:event_id" json:"event_id"`

	EventName        string  `gorm:"type:varchar(160);not null;column:event_name" json:"event_name"`
	EventDescription *string `gorm:"type:text;column:event_description"           json:"event_description,omitempty"`
	EventLocation    *string `gorm:"type:varchar(240);column:event_location"      json:"event_location,omitempty"`

	EventStartAt *time.Time `gorm:"type:timestamptz;index;column:event_start_at" json:"event_start_at,omitempty"`
	EventEndAt   *time.Time `gorm:"type:timestamptz;column:event_end_at"         json:"event_end_at,omitempty"`

	EventCreatedBy *uuid.UUID `gorm:"type:uuid;column:event_created_by" json:"event_created_by,omitempty"`

	EventArchivedAt *time.Time `gorm:"type:timestamptz;index;column:event_archived_at" json:"event_archived_at,omitempty"`

	EventCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:event_created_at" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:event_updated_at" json:"event_updated_at"`
}

func (EventModel) TableName() string { return "events" }
