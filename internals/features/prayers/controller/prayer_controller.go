// file: internals/features/prayers/controller/prayer_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	prayerDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/prayers/dto"
	prayerModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/prayers/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

type PrayerController struct {
	DB *gorm.DB
}

var validate = validator.New()

// GET /api/a/prayers?answered=true&with_archived= (prayers_view)
func (h *PrayerController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&prayerModel.PrayerRequestModel{}).
		Order("prayer_created_at DESC")

	if !strings.EqualFold(c.Query("with_archived"), "true") {
		q = q.Where("prayer_archived_at IS NULL")
	}
	switch strings.ToLower(c.Query("answered")) {
	case "true":
		q = q.Where("prayer_answered_at IS NOT NULL")
	case "false":
		q = q.Where("prayer_answered_at IS NULL")
	}

	var prayers []prayerModel.PrayerRequestModel
	if err := q.Find(&prayers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list prayer requests")
	}
	return helper.Success(c, "OK", prayers)
}

// POST /api/a/prayers (prayers_edit)
func (h *PrayerController) Create(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req prayerDTO.CreatePrayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	prayer := prayerModel.PrayerRequestModel{
		PrayerTeenID:      req.TeenID,
		PrayerRequestedBy: helper.ToOptional(req.RequestedBy),
		PrayerText:        strings.TrimSpace(req.Text),
		PrayerCreatedBy:   &actorID,
	}
	if err := h.DB.Create(&prayer).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create prayer request")
	}
	return helper.JsonCreated(c, "Prayer request created", prayer)
}

// PATCH /api/a/prayers/:id (prayers_edit)
func (h *PrayerController) Update(c *fiber.Ctx) error {
	prayer, err := h.loadPrayer(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req prayerDTO.UpdatePrayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	if v, present := req.Text.Get(); present {
		if v == nil || strings.TrimSpace(*v) == "" {
			return helper.Error(c, fiber.StatusBadRequest, "Prayer text cannot be blank")
		}
		prayer.PrayerText = strings.TrimSpace(*v)
	}
	if v, present := req.RequestedBy.Get(); present {
		if v == nil {
			prayer.PrayerRequestedBy = nil
		} else {
			prayer.PrayerRequestedBy = helper.ToOptional(*v)
		}
	}

	if err := h.DB.Save(&prayer).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update prayer request")
	}
	return helper.Success(c, "Prayer request updated", prayer)
}

// POST /api/a/prayers/:id/answered (prayers_edit) — toggles the mark.
func (h *PrayerController) ToggleAnswered(c *fiber.Ctx) error {
	prayer, err := h.loadPrayer(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if prayer.PrayerAnsweredAt != nil {
		prayer.PrayerAnsweredAt = nil
	} else {
		now := time.Now().UTC()
		prayer.PrayerAnsweredAt = &now
	}

	if err := h.DB.Save(&prayer).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update prayer request")
	}
	return helper.Success(c, "Prayer request updated", prayer)
}

// POST /api/a/prayers/:id/archive (prayers_manage)
func (h *PrayerController) Archive(c *fiber.Ctx) error {
	prayer, err := h.loadPrayer(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if prayer.PrayerArchivedAt != nil {
		return helper.Error(c, fiber.StatusConflict, "Prayer request is already archived")
	}

	now := time.Now().UTC()
	prayer.PrayerArchivedAt = &now
	if err := h.DB.Save(&prayer).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to archive prayer request")
	}
	return helper.Success(c, "Prayer request archived", prayer)
}

func (h *PrayerController) loadPrayer(c *fiber.Ctx) (prayerModel.PrayerRequestModel, error) {
	var prayer prayerModel.PrayerRequestModel

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return prayer, fiber.NewError(fiber.StatusBadRequest, "Invalid prayer request id")
	}
	if err := h.DB.Where("prayer_id = ?", id).First(&prayer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return prayer, fiber.NewError(fiber.StatusNotFound, "Prayer request not found")
		}
		return prayer, fiber.NewError(fiber.StatusInternalServerError, "Failed to load prayer request")
	}
	return prayer, nil
}
