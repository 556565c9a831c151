// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	notificationModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/notifications/model"
	notificationService "github.com/artiechokes/youth-ministry-admin-suite/internals/features/notifications/service"
	teenModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/teens/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

type NotificationController struct {
	DB     *gorm.DB
	Sender notificationService.Sender
}

var validate = validator.New()

type sendNotificationRequest struct {
	Subject string `json:"subject" validate:"required,max=240"`
	Body    string `json:"body"    validate:"required"`

	// explicit addresses, or teen ids expanded to parent emails
	Recipients []string    `json:"recipients" validate:"omitempty,dive,email"`
	TeenIDs    []uuid.UUID `json:"teen_ids"`
}

// GET /api/a/notifications (notifications_view)
func (h *NotificationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := h.DB.Model(&notificationModel.NotificationModel{}).
		Order("notification_created_at DESC")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list notifications")
	}

	var rows []notificationModel.NotificationModel
	if err := q.Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list notifications")
	}

	return helper.Success(c, "OK", fiber.Map{
		"notifications": rows,
		"pagination":    helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// POST /api/a/notifications (notifications_edit)
// Sends the message and records the attempt either way.
func (h *NotificationController) Send(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req sendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	recipients, err := h.resolveRecipients(req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if len(recipients) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No recipients to notify")
	}

	record := notificationModel.NotificationModel{
		NotificationSubject: strings.TrimSpace(req.Subject),
		NotificationBody:    req.Body,
		NotificationStatus:  notificationModel.NotificationStatusSent,
		NotificationSentBy:  &actorID,
	}
	if raw, err := sonic.Marshal(recipients); err == nil {
		record.NotificationRecipients = datatypes.JSON(raw)
	}

	if sendErr := h.Sender.Send(recipients, record.NotificationSubject, record.NotificationBody); sendErr != nil {
		record.NotificationStatus = notificationModel.NotificationStatusFailed
		record.NotificationError = helper.ToOptional(sendErr.Error())
	}

	if err := h.DB.Create(&record).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record notification")
	}

	if record.NotificationStatus == notificationModel.NotificationStatusFailed {
		return helper.ErrorWithDetails(c, fiber.StatusBadGateway, "Notification could not be delivered", record)
	}
	return helper.JsonCreated(c, "Notification sent", record)
}

// resolveRecipients merges explicit addresses with the parent emails of
// the selected teens, deduplicated.
func (h *NotificationController) resolveRecipients(req sendNotificationRequest) ([]string, error) {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(req.Recipients))

	add := func(addr string) {
		addr = strings.ToLower(strings.TrimSpace(addr))
		if addr == "" || !helper.IsValidEmail(addr) {
			return
		}
		if _, dup := seen[addr]; dup {
			return
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}

	for _, addr := range req.Recipients {
		add(addr)
	}

	if len(req.TeenIDs) > 0 {
		var teens []teenModel.TeenModel
		if err := h.DB.Select("teen_parent_email").
			Where("teen_id IN ? AND teen_archived_at IS NULL", req.TeenIDs).
			Find(&teens).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load teens")
		}
		for _, t := range teens {
			if t.TeenParentEmail != nil {
				add(*t.TeenParentEmail)
			}
		}
	}
	return out, nil
}
