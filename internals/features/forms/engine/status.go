// file: internals/features/forms/engine/status.go
package engine

import "time"

// Derived assignment statuses. Never stored; recomputed on every read.
const (
	StatusCompleted = "Completed"
	StatusExpired   = "Expired"
	StatusOverdue   = "Overdue"
	StatusDueSoon   = "DueSoon"
	StatusMissing   = "Missing"
)

const dueSoonWindow = 7 * 24 * time.Hour

// DeriveStatus computes display status from the assignment's submission
// state. hasSubmission with a past expiresAt reads Expired; otherwise
// Completed. Without a submission the due date decides.
func DeriveStatus(hasSubmission bool, expiresAt, dueAt *time.Time, now time.Time) string {
	if hasSubmission {
		if expiresAt != nil && now.After(*expiresAt) {
			return StatusExpired
		}
		return StatusCompleted
	}
	if dueAt != nil {
		if now.After(*dueAt) {
			return StatusOverdue
		}
		if dueAt.Sub(now) <= dueSoonWindow {
			return StatusDueSoon
		}
	}
	return StatusMissing
}
