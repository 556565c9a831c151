// file: internals/features/roster/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceRecordModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceTeenID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_teen_id" json:"attendance_teen_id"`

	AttendanceCheckedInAt  time.Time  `gorm:"type:timestamptz;not null;index;column:attendance_checked_in_at" json:"attendance_checked_in_at"`
	AttendanceCheckedOutAt *time.Time `gorm:"type:timestamptz;column:attendance_checked_out_at"               json:"attendance_checked_out_at,omitempty"`

	// nil when the teen checked in at the kiosk themselves
	AttendanceRecordedBy *uuid.UUID `gorm:"type:uuid;column:attendance_recorded_by" json:"attendance_recorded_by,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:attendance_updated_at" json:"attendance_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

// DayBounds returns the local-midnight window containing now. Attendance
// is a per-day affair; a record belongs to the day it was opened on.
func DayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}
