// file: internals/features/audit/controller/audit_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/audit/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
)

type AuditController struct {
	DB *gorm.DB
}

// GET /api/a/audit-logs?entity_type=&entity_id=&user_id= (staff_manage)
func (h *AuditController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&auditModel.AuditLogModel{}).
		Order("audit_log_created_at DESC")

	if entityType := strings.TrimSpace(c.Query("entity_type")); entityType != "" {
		q = q.Where("audit_log_entity_type = ?", entityType)
	}
	if raw := strings.TrimSpace(c.Query("entity_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid entity id")
		}
		q = q.Where("audit_log_entity_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
		}
		q = q.Where("audit_log_user_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list audit logs")
	}

	var logs []auditModel.AuditLogModel
	if err := q.Offset(paging.Offset).Limit(paging.Limit).Find(&logs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list audit logs")
	}

	return helper.Success(c, "OK", fiber.Map{
		"audit_logs": logs,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}
