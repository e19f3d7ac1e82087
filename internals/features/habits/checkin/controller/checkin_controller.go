package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"habitku_backend/internals/features/habits/checkin/repository"
	"habitku_backend/internals/features/habits/checkin/service"
	helper "habitku_backend/internals/helpers"
)

type CheckinController struct {
	Service *service.CheckinService
}

func NewCheckinController(db *gorm.DB) *CheckinController {
	return &CheckinController{
		Service: service.NewCheckinService(repository.NewCheckinRepository(db)),
	}
}

// body opsional: {"date": "YYYY-MM-DD"}; kosong = hari UTC sekarang
type checkinBody struct {
	Date string `json:"date"`
}

func (ctl *CheckinController) getHabitID(c *fiber.Ctx) (uuid.UUID, error) {
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

func mapCheckinError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrHabitNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrHabitArchived):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidDate):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal error")
	}
}

/* =========================================================
   CHECKIN
   POST /api/habits/:id/checkin
   ========================================================= */

func (ctl *CheckinController) Checkin(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	habitID, err := ctl.getHabitID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var body checkinBody
	_ = c.BodyParser(&body) // body boleh kosong

	rec, err := ctl.Service.Checkin(c.UserContext(), userID, habitID, strings.TrimSpace(body.Date), time.Now().UTC())
	if err != nil {
		return mapCheckinError(c, err)
	}

	return helper.JsonCreated(c, "Checkin dicatat", rec)
}

/* =========================================================
   UNCHECKIN
   POST /api/habits/:id/uncheckin
   ========================================================= */

func (ctl *CheckinController) Uncheckin(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	habitID, err := ctl.getHabitID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var body checkinBody
	_ = c.BodyParser(&body)

	res, err := ctl.Service.Uncheckin(c.UserContext(), userID, habitID, strings.TrimSpace(body.Date), time.Now().UTC())
	if err != nil {
		return mapCheckinError(c, err)
	}

	// Dua bentuk hasil: record penuh saat decrement, {count, removed} saat
	// no-op/terhapus — caller branch di "removed".
	if res.Checkin != nil {
		return helper.JsonOK(c, "Checkin dikurangi", res.Checkin)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"count": res.Count, "removed": res.Removed})
}

/* =========================================================
   LIST CHECKINS
   GET /api/habits/:id/checkins?from=YYYY-MM-DD&to=YYYY-MM-DD
   ========================================================= */

func (ctl *CheckinController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	habitID, err := ctl.getHabitID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))

	out, err := ctl.Service.ListCheckins(c.UserContext(), userID, habitID, from, to)
	if err != nil {
		return mapCheckinError(c, err)
	}

	return helper.JsonList(c, "ok", out)
}
