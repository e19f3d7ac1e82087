package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"habitku_backend/internals/features/habits/dashboard/service"
	helper "habitku_backend/internals/helpers"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Service: service.NewDashboardService(db)}
}

/* =========================================================
   SUMMARY
   GET /api/dashboard/summary?range=30&days=14
   ========================================================= */

func (ctl *DashboardController) Summary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	rangeDays, _ := strconv.Atoi(strings.TrimSpace(c.Query("range")))
	chartDays, _ := strconv.Atoi(strings.TrimSpace(c.Query("days")))

	out, err := ctl.Service.Summary(c.UserContext(), userID, rangeDays, chartDays, time.Now().UTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun ringkasan dashboard")
	}

	return helper.JsonOK(c, "ok", out)
}
