package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "habitku_backend/internals/features/habits/habit/dto"
	model "habitku_backend/internals/features/habits/habit/model"
	helper "habitku_backend/internals/helpers"
)

/* =========================
   Controller
   ========================= */

type HabitController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewHabitController(db *gorm.DB) *HabitController {
	return &HabitController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =========================
   Small helpers
   ========================= */

func (ctl *HabitController) getID(c *fiber.Ctx) (uuid.UUID, error) {
	param := strings.TrimSpace(c.Params("id"))
	if param == "" {
		return uuid.Nil, errors.New("missing id")
	}
	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

// findForUser — habit milik user; gorm.ErrRecordNotFound kalau absen ATAU punya orang lain
func (ctl *HabitController) findForUser(id, userID uuid.UUID) (*model.HabitModel, error) {
	var habit model.HabitModel
	if err := ctl.DB.Where("id = ? AND user_id = ?", id, userID).First(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

/* =========================================================
   LIST
   GET /api/habits
   ========================================================= */

func (ctl *HabitController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var habits []model.HabitModel
	if err := ctl.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&habits).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data habit")
	}

	return helper.JsonList(c, "ok", dto.ToHabitResponses(habits))
}

/* =========================================================
   CREATE
   POST /api/habits
   ========================================================= */

func (ctl *HabitController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	habit := req.ToModel(userID)
	if err := ctl.DB.Create(habit).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat habit")
	}

	return helper.JsonCreated(c, "Habit dibuat", dto.ToHabitResponse(habit))
}

/* =========================================================
   UPDATE (partial)
   PATCH /api/habits/:id
   ========================================================= */

func (ctl *HabitController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := ctl.getID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	habit, err := ctl.findForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Habit tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	req.ApplyTo(habit)
	if err := ctl.DB.Save(habit).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update habit")
	}

	return helper.JsonUpdated(c, "Habit diperbarui", dto.ToHabitResponse(habit))
}

/* =========================================================
   ARCHIVE (soft delete)
   DELETE /api/habits/:id
   ========================================================= */

func (ctl *HabitController) Archive(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := ctl.getID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	habit, err := ctl.findForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Habit tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := ctl.DB.Model(habit).Update("is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengarsipkan habit")
	}

	return helper.JsonDeleted(c, "Habit diarsipkan", fiber.Map{"id": habit.ID})
}

/* =========================================================
   RESTORE
   POST /api/habits/:id/restore
   ========================================================= */

func (ctl *HabitController) Restore(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := ctl.getID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	habit, err := ctl.findForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Habit tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := ctl.DB.Model(habit).Update("is_active", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal restore habit")
	}
	habit.IsActive = true

	return helper.JsonUpdated(c, "Habit diaktifkan kembali", dto.ToHabitResponse(habit))
}
