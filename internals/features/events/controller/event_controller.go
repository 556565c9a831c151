// file: internals/features/events/controller/event_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/audit/model"
	eventDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/events/dto"
	eventModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/events/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

type EventController struct {
	DB *gorm.DB
}

var validate = validator.New()

// GET /api/a/events?upcoming=true&with_archived= (events_view)
func (h *EventController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&eventModel.EventModel{}).
		Order("event_start_at ASC NULLS LAST, event_created_at DESC")

	if !strings.EqualFold(c.Query("with_archived"), "true") {
		q = q.Where("event_archived_at IS NULL")
	}
	if strings.EqualFold(c.Query("upcoming"), "true") {
		q = q.Where("event_start_at IS NULL OR event_start_at >= ?", time.Now())
	}

	var events []eventModel.EventModel
	if err := q.Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list events")
	}
	return helper.Success(c, "OK", events)
}

// GET /api/a/events/:id (events_view)
func (h *EventController) Get(c *fiber.Ctx) error {
	event, err := h.loadEvent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", event)
}

// POST /api/a/events (events_edit)
func (h *EventController) Create(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req eventDTO.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	startAt, ok := parseEventTime(req.StartAt)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid start time")
	}
	endAt, ok := parseEventTime(req.EndAt)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid end time")
	}

	event := eventModel.EventModel{
		EventName:        strings.TrimSpace(req.Name),
		EventDescription: helper.ToOptional(req.Description),
		EventLocation:    helper.ToOptional(req.Location),
		EventStartAt:     startAt,
		EventEndAt:       endAt,
		EventCreatedBy:   &actorID,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create event")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionCreate, "Event", event.EventID, nil, event)
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Event created", event)
}

// PATCH /api/a/events/:id (events_edit)
func (h *EventController) Update(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	event, err := h.loadEvent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req eventDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	before := event

	if v, present := req.Name.Get(); present {
		if v == nil || strings.TrimSpace(*v) == "" {
			return helper.Error(c, fiber.StatusBadRequest, "Event name cannot be blank")
		}
		event.EventName = strings.TrimSpace(*v)
	}
	if v, present := req.Description.Get(); present {
		event.EventDescription = optionalPtr(v)
	}
	if v, present := req.Location.Get(); present {
		event.EventLocation = optionalPtr(v)
	}
	if v, present := req.StartAt.Get(); present {
		t, ok := parsePatchTime(v)
		if !ok {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid start time")
		}
		event.EventStartAt = t
	}
	if v, present := req.EndAt.Get(); present {
		t, ok := parsePatchTime(v)
		if !ok {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid end time")
		}
		event.EventEndAt = t
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&event).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update event")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionUpdate, "Event", event.EventID, before, event)
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Event updated", event)
}

// POST /api/a/events/:id/archive (events_manage)
func (h *EventController) Archive(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	event, err := h.loadEvent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if event.EventArchivedAt != nil {
		return helper.Error(c, fiber.StatusConflict, "Event is already archived")
	}

	now := time.Now().UTC()
	event.EventArchivedAt = &now

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&event).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to archive event")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionArchive, "Event", event.EventID, nil, nil)
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Event archived", event)
}

func (h *EventController) loadEvent(c *fiber.Ctx) (eventModel.EventModel, error) {
	var event eventModel.EventModel

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return event, fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}
	if err := h.DB.Where("event_id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return event, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return event, fiber.NewError(fiber.StatusInternalServerError, "Failed to load event")
	}
	return event, nil
}

func parseEventTime(value string) (*time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func parsePatchTime(v *string) (*time.Time, bool) {
	if v == nil {
		return nil, true
	}
	return parseEventTime(*v)
}

func optionalPtr(v *string) *string {
	if v == nil {
		return nil
	}
	return helper.ToOptional(*v)
}
