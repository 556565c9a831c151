// file: internals/features/roster/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// Batch check-in / check-out from the staff roster view.
type BatchAttendanceRequest struct {
	TeenIDs []uuid.UUID `json:"teen_ids" validate:"required,min=1,dive,required"`
}

// Kiosk self check-in: the teen types their public id.
type KioskCheckinRequest struct {
	PublicID string `json:"public_id" validate:"required,max=20"`
}

type AttendanceEntry struct {
	AttendanceID uuid.UUID  `json:"attendance_id"`
	TeenID       uuid.UUID  `json:"teen_id"`
	TeenName     string     `json:"teen_name"`
	PublicID     *string    `json:"teen_public_id,omitempty"`
	CheckedInAt  time.Time  `json:"checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
}

type TodayResponse struct {
	Date       string            `json:"date"`
	Present    []AttendanceEntry `json:"present"`
	CheckedOut []AttendanceEntry `json:"checked_out"`
}
