// file: internals/features/users/scheduler/cleanup.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	userModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/model"
)

// StartBlacklistCleanupScheduler prunes blacklist rows whose tokens have
// been expired longer than the TTL. Runs in its own goroutine, daily.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expired []userModel.TokenBlacklistModel
			if err := db.
				Where("token_blacklist_expired_at < ?", deleteBefore).
				Limit(100).
				Find(&expired).Error; err != nil {
				log.Printf("[CLEANUP ERROR] fetching expired blacklist rows: %v", err)
			} else if len(expired) > 0 {
				if err := db.Delete(&expired).Error; err != nil {
					log.Printf("[CLEANUP ERROR] deleting blacklist rows: %v", err)
				} else {
					log.Printf("[CLEANUP] pruned %d expired blacklist rows", len(expired))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
