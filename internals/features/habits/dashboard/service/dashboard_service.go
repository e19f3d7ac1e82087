package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	checkinModel "habitku_backend/internals/features/habits/checkin/model"
	"habitku_backend/internals/features/habits/checkin/repository"
	"habitku_backend/internals/features/habits/dashboard/dto"
	habitModel "habitku_backend/internals/features/habits/habit/model"
	statsService "habitku_backend/internals/features/habits/stats/service"
)

const (
	chartDaysDefault = 14
	chartDaysMin     = 1
	chartDaysMax     = 90
)

type DashboardService struct {
	DB    *gorm.DB
	Repo  repository.CheckinRepository
	Stats *statsService.StatsService
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	repo := repository.NewCheckinRepository(db)
	return &DashboardService{
		DB:    db,
		Repo:  repo,
		Stats: statsService.NewStatsService(repo),
	}
}

// DaysBackISO — n hari kalender UTC terakhir (ascending, hari base inklusif).
func DaysBackISO(n int, base time.Time) []string {
	day := time.Date(base.UTC().Year(), base.UTC().Month(), base.UTC().Day(), 0, 0, 0, 0, time.UTC)
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, day.Add(-time.Duration(i)*24*time.Hour).Format("2006-01-02"))
	}
	return out
}

// BuildOverviewSeries — per hari: berapa habit aktif yang done, dan apakah
// harinya perfect (semua done). Murni, tanpa side effect.
func BuildOverviewSeries(dates []string, habits []habitModel.HabitModel, checkinsByHabit map[uuid.UUID][]checkinModel.HabitCheckinModel) []dto.OverviewPoint {
	total := len(habits)
	if total == 0 {
		return []dto.OverviewPoint{}
	}

	doneByDate := make(map[string]int, len(dates))
	for i := range habits {
		h := &habits[i]
		done := make(map[string]struct{})
		for _, c := range checkinsByHabit[h.ID] {
			if c.Count >= h.TargetPerDay {
				done[statsService.ToISODateOnly(c.Date)] = struct{}{}
			}
		}
		for _, d := range dates {
			if _, ok := done[d]; ok {
				doneByDate[d]++
			}
		}
	}

	series := make([]dto.OverviewPoint, 0, len(dates))
	for _, d := range dates {
		n := doneByDate[d]
		series = append(series, dto.OverviewPoint{
			Date:    d,
			Done:    n,
			Total:   total,
			Perfect: n == total,
		})
	}
	return series
}

func clampChartDays(n int) int {
	if n == 0 {
		n = chartDaysDefault
	}
	if n < chartDaysMin {
		return chartDaysMin
	}
	if n > chartDaysMax {
		return chartDaysMax
	}
	return n
}

// Summary — KPI lintas habit aktif: rata-rata streak berjalan, streak
// terpanjang terbaik, rata-rata completion (window rangeDays), plus seri
// aktivitas & perfect-days untuk chartDays hari terakhir.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID, rangeDays, chartDays int, now time.Time) (*dto.SummaryResponse, error) {
	var habits []habitModel.HabitModel
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND is_active = true", userID).
		Order("created_at DESC").
		Find(&habits).Error; err != nil {
		return nil, err
	}

	days := statsService.ClampRangeDays(rangeDays)
	chart := clampChartDays(chartDays)
	dates := DaysBackISO(chart, now)

	resp := &dto.SummaryResponse{
		TotalActive: len(habits),
		Range:       days,
		ChartDays:   chart,
		Series:      []dto.OverviewPoint{},
	}
	if len(habits) == 0 {
		return resp, nil
	}

	// Stats per habit untuk KPI
	var streakSum, completionSum, best int
	for i := range habits {
		st, err := s.Stats.Stats(ctx, userID, habits[i].ID, days, now)
		if err != nil {
			return nil, err
		}
		streakSum += st.CurrentStreak
		completionSum += st.CompletionRate
		if st.LongestStreak > best {
			best = st.LongestStreak
		}
	}
	n := float64(len(habits))
	resp.AvgCurrentStreak = int(math.Round(float64(streakSum) / n))
	resp.AvgCompletionRate = int(math.Round(float64(completionSum) / n))
	resp.BestLongestStreak = best

	// Checkin per habit dalam window chart untuk seri & perfect-days
	from, err := time.ParseInLocation("2006-01-02", dates[0], time.UTC)
	if err != nil {
		return nil, err
	}
	to, err := time.ParseInLocation("2006-01-02", dates[len(dates)-1], time.UTC)
	if err != nil {
		return nil, err
	}

	checkinsByHabit := make(map[uuid.UUID][]checkinModel.HabitCheckinModel, len(habits))
	for i := range habits {
		list, err := s.Repo.ListCheckinsRange(ctx, habits[i].ID, &from, &to)
		if err != nil {
			return nil, err
		}
		checkinsByHabit[habits[i].ID] = list
	}

	resp.Series = BuildOverviewSeries(dates, habits, checkinsByHabit)
	for _, p := range resp.Series {
		if p.Perfect {
			resp.PerfectDays++
		}
	}
	return resp, nil
}
