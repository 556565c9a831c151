// file: internals/features/roster/teens/model/auto_archive.go
package model

import (
	"log"
	"time"

	"gorm.io/gorm"
)

const AutoArchiveReason = "Auto-archived at 18"

// AdultCutoff returns the latest date of birth that makes someone 18 or
// older as of now.
func AdultCutoff(now time.Time) time.Time {
	return now.AddDate(-18, 0, 0)
}

// AutoArchiveAdults archives every active teen who has turned 18.
// Idempotent: already-archived rows never match, so staff pages can call
// this opportunistically on each roster load.
func AutoArchiveAdults(db *gorm.DB) {
	now := time.Now().UTC()
	res := db.Model(&TeenModel{}).
		Where("teen_archived_at IS NULL AND teen_dob <= ?", AdultCutoff(now)).
		Updates(map[string]interface{}{
			"teen_archived_at":     now,
			"teen_archived_reason": AutoArchiveReason,
		})
	if res.Error != nil {
		log.Printf("[ROSTER] auto-archive sweep failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[ROSTER] auto-archived %d teens at 18", res.RowsAffected)
	}
}
