// file: internals/features/roster/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/attendance/dto"
	attendanceModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/attendance/model"
	teenModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/teens/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

type AttendanceController struct {
	DB *gorm.DB
}

var validate = validator.New()

// GET /api/a/attendance/today (kiosk_view)
func (h *AttendanceController) Today(c *fiber.Ctx) error {
	now := time.Now()
	start, end := attendanceModel.DayBounds(now)

	type row struct {
		attendanceModel.AttendanceRecordModel
		TeenFirstName string  `gorm:"column:teen_first_name"`
		TeenLastName  string  `gorm:"column:teen_last_name"`
		TeenPublicID  *string `gorm:"column:teen_public_id"`
	}

	var rows []row
	err := h.DB.Table("attendance_records").
		Select("attendance_records.*, teens.teen_first_name, teens.teen_last_name, teens.teen_public_id").
		Joins("JOIN teens ON teens.teen_id = attendance_records.attendance_teen_id").
		Where("attendance_checked_in_at >= ? AND attendance_checked_in_at < ?", start, end).
		Order("attendance_checked_in_at ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	resp := attendanceDTO.TodayResponse{
		Date:       start.Format("2006-01-02"),
		Present:    []attendanceDTO.AttendanceEntry{},
		CheckedOut: []attendanceDTO.AttendanceEntry{},
	}
	for _, r := range rows {
		entry := attendanceDTO.AttendanceEntry{
			AttendanceID: r.AttendanceID,
			TeenID:       r.AttendanceTeenID,
			TeenName:     strings.TrimSpace(r.TeenFirstName + " " + r.TeenLastName),
			PublicID:     r.TeenPublicID,
			CheckedInAt:  r.AttendanceCheckedInAt,
			CheckedOutAt: r.AttendanceCheckedOutAt,
		}
		if r.AttendanceCheckedOutAt != nil {
			resp.CheckedOut = append(resp.CheckedOut, entry)
		} else {
			resp.Present = append(resp.Present, entry)
		}
	}

	return helper.Success(c, "OK", resp)
}

// POST /api/a/attendance/checkin (kiosk_edit)
// Teens already checked in today are skipped, not duplicated.
func (h *AttendanceController) Checkin(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req attendanceDTO.BatchAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	start, end := attendanceModel.DayBounds(now)

	var created, skipped int
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, teenID := range req.TeenIDs {
			var teen teenModel.TeenModel
			if err := tx.Where("teen_id = ? AND teen_archived_at IS NULL", teenID).
				First(&teen).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					skipped++
					continue
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to load teen")
			}

			var existing int64
			if err := tx.Model(&attendanceModel.AttendanceRecordModel{}).
				Where("attendance_teen_id = ? AND attendance_checked_in_at >= ? AND attendance_checked_in_at < ?",
					teenID, start, end).
				Count(&existing).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to check attendance")
			}
			if existing > 0 {
				skipped++
				continue
			}

			rec := attendanceModel.AttendanceRecordModel{
				AttendanceTeenID:      teenID,
				AttendanceCheckedInAt: now,
				AttendanceRecordedBy:  &actorID,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to record check-in")
			}
			created++
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Check-in recorded", fiber.Map{
		"checked_in": created,
		"skipped":    skipped,
	})
}

// POST /api/a/attendance/checkout (kiosk_edit)
// Stamps the open record for each teen; teens without an open record are skipped.
func (h *AttendanceController) Checkout(c *fiber.Ctx) error {
	var req attendanceDTO.BatchAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	start, end := attendanceModel.DayBounds(now)

	res := h.DB.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("attendance_teen_id IN ? AND attendance_checked_out_at IS NULL AND attendance_checked_in_at >= ? AND attendance_checked_in_at < ?",
			req.TeenIDs, start, end).
		Update("attendance_checked_out_at", now)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record check-out")
	}

	return helper.Success(c, "Check-out recorded", fiber.Map{
		"checked_out": res.RowsAffected,
		"skipped":     int64(len(req.TeenIDs)) - res.RowsAffected,
	})
}

// POST /api/a/attendance/kiosk (kiosk_edit)
// Self-service toggle by public id: open record -> check out, else check in.
func (h *AttendanceController) KioskToggle(c *fiber.Ctx) error {
	var req attendanceDTO.KioskCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	code := strings.ToUpper(strings.TrimSpace(req.PublicID))

	var teen teenModel.TeenModel
	if err := h.DB.Where("teen_public_id = ? AND teen_archived_at IS NULL", code).
		First(&teen).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Unknown check-in code")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load teen")
	}

	now := time.Now()
	start, end := attendanceModel.DayBounds(now)

	var open attendanceModel.AttendanceRecordModel
	err := h.DB.Where("attendance_teen_id = ? AND attendance_checked_out_at IS NULL AND attendance_checked_in_at >= ? AND attendance_checked_in_at < ?",
		teen.TeenID, start, end).
		First(&open).Error
	switch {
	case err == nil:
		open.AttendanceCheckedOutAt = &now
		if err := h.DB.Save(&open).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to record check-out")
		}
		return helper.Success(c, "Checked out", fiber.Map{
			"teen_name": teen.FullName(),
			"direction": "out",
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec := attendanceModel.AttendanceRecordModel{
			AttendanceTeenID:      teen.TeenID,
			AttendanceCheckedInAt: now,
		}
		if err := h.DB.Create(&rec).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to record check-in")
		}
		return helper.Success(c, "Checked in", fiber.Map{
			"teen_name": teen.FullName(),
			"direction": "in",
		})
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check attendance")
	}
}
