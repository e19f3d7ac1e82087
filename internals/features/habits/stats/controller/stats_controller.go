package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"habitku_backend/internals/features/habits/checkin/repository"
	checkinService "habitku_backend/internals/features/habits/checkin/service"
	"habitku_backend/internals/features/habits/stats/service"
	helper "habitku_backend/internals/helpers"
)

type StatsController struct {
	Service *service.StatsService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{
		Service: service.NewStatsService(repository.NewCheckinRepository(db)),
	}
}

/* =========================================================
   STATS
   GET /api/habits/:id/stats?range=30
   ========================================================= */

func (ctl *StatsController) Stats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	habitID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	// ?range= tidak valid → 0 → default 30 di service
	rangeDays, _ := strconv.Atoi(strings.TrimSpace(c.Query("range")))

	out, err := ctl.Service.Stats(c.UserContext(), userID, habitID, rangeDays, time.Now().UTC())
	if err != nil {
		if errors.Is(err, checkinService.ErrHabitNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal error")
	}

	return helper.JsonOK(c, "ok", out)
}
