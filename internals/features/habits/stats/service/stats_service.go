package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"habitku_backend/internals/features/habits/checkin/repository"
	checkinService "habitku_backend/internals/features/habits/checkin/service"
	"habitku_backend/internals/features/habits/stats/dto"
)

const (
	rangeDaysDefault = 30
	rangeDaysMin     = 1
	rangeDaysMax     = 365
)

type StatsService struct {
	Repo repository.CheckinRepository
}

func NewStatsService(repo repository.CheckinRepository) *StatsService {
	return &StatsService{Repo: repo}
}

// ClampRangeDays — 0 (tidak diisi / tidak valid) jatuh ke default 30,
// sisanya dijepit ke [1, 365].
func ClampRangeDays(rangeDays int) int {
	if rangeDays == 0 {
		rangeDays = rangeDaysDefault
	}
	if rangeDays < rangeDaysMin {
		return rangeDaysMin
	}
	if rangeDays > rangeDaysMax {
		return rangeDaysMax
	}
	return rangeDays
}

// Stats — komposisi di atas ComputeStreaks, di-scope ke habit milik user.
//
// since adalah instant bergerak (now - rangeDays*24h), BUKAN batas hari —
// window cutoff sengaja tidak dibulatkan ke tengah malam. Upper end terbuka,
// jadi checkin berdate masa depan ikut terhitung; completion_rate karenanya
// bisa melewati 100 dan memang tidak dijepit.
func (s *StatsService) Stats(ctx context.Context, userID, habitID uuid.UUID, rangeDays int, now time.Time) (*dto.StatsResponse, error) {
	habit, err := s.Repo.FindHabitForUser(ctx, habitID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkinService.ErrHabitNotFound
		}
		return nil, err
	}

	days := ClampRangeDays(rangeDays)
	since := now.Add(-time.Duration(days) * 24 * time.Hour)

	checkins, err := s.Repo.ListCheckinsSince(ctx, habitID, since)
	if err != nil {
		return nil, err
	}

	streaks := ComputeStreaks(checkins, habit.TargetPerDay, now)

	doneCount := len(doneDaySet(checkins, habit.TargetPerDay))
	completionRate := int(math.Round(float64(doneCount) / float64(days) * 100))

	return &dto.StatsResponse{
		HabitID:        habitID,
		Days:           days,
		CurrentStreak:  streaks.CurrentStreak,
		LongestStreak:  streaks.LongestStreak,
		CompletionRate: completionRate,
	}, nil
}
