// file: internals/features/audit/model/recorder.go
package model

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Record writes one audit row inside the caller's transaction. Snapshots
// marshal best-effort; an unmarshalable snapshot still produces a row so
// the action itself is never lost.
func Record(tx *gorm.DB, userID uuid.UUID, action, entityType string, entityID uuid.UUID, before, after interface{}) error {
	row := AuditLogModel{
		AuditLogUserID:     userID,
		AuditLogAction:     action,
		AuditLogEntityType: entityType,
		AuditLogEntityID:   entityID,
		AuditLogBefore:     marshalSnapshot(before),
		AuditLogAfter:      marshalSnapshot(after),
	}
	return tx.Create(&row).Error
}

func marshalSnapshot(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[AUDIT] snapshot marshal failed: %v", err)
		return nil
	}
	return datatypes.JSON(b)
}
