package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	checkinModel "habitku_backend/internals/features/habits/checkin/model"
	"habitku_backend/internals/features/habits/checkin/repository"
)

// Error domain — dipetakan ke status HTTP di controller.
var (
	ErrHabitNotFound = errors.New("habit tidak ditemukan")
	ErrHabitArchived = errors.New("habit sudah diarsipkan")
	ErrInvalidDate   = errors.New("format tanggal harus YYYY-MM-DD")
)

const isoDayLayout = "2006-01-02"

// UncheckinResult — dua bentuk hasil uncheckin:
// Checkin != nil berarti count di-decrement dan record masih ada;
// Checkin == nil berarti no-op (Removed=false) atau record dihapus (Removed=true).
type UncheckinResult struct {
	Checkin *checkinModel.HabitCheckinModel `json:"checkin,omitempty"`
	Count   int                             `json:"count"`
	Removed bool                            `json:"removed"`
}

type CheckinService struct {
	Repo repository.CheckinRepository
}

func NewCheckinService(repo repository.CheckinRepository) *CheckinService {
	return &CheckinService{Repo: repo}
}

// ResolveDayBounds — hari kalender UTC sebagai interval setengah-terbuka
// [dayStart, nextDay). dateStr kosong berarti "hari UTC dari now".
func ResolveDayBounds(dateStr string, now time.Time) (time.Time, time.Time, error) {
	var base time.Time
	if dateStr != "" {
		parsed, err := time.ParseInLocation(isoDayLayout, dateStr, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
		base = parsed
	} else {
		base = now.UTC()
	}
	dayStart := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.UTC)
	nextDay := dayStart.Add(24 * time.Hour)
	return dayStart, nextDay, nil
}

// StartOfUTCDate — parse YYYY-MM-DD menjadi tengah malam UTC.
func StartOfUTCDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(isoDayLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Checkin — tambah satu hitungan pada bucket hari tersebut.
// Habit harus milik user dan masih aktif; habit arsip menolak checkin baru.
func (s *CheckinService) Checkin(ctx context.Context, userID, habitID uuid.UUID, dateStr string, now time.Time) (*checkinModel.HabitCheckinModel, error) {
	habit, err := s.Repo.FindHabitForUser(ctx, habitID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	if !habit.IsActive {
		return nil, ErrHabitArchived
	}

	dayStart, _, err := ResolveDayBounds(dateStr, now)
	if err != nil {
		return nil, err
	}

	return s.Repo.UpsertCheckinIncrement(ctx, habitID, dayStart)
}

// Uncheckin — kurangi satu hitungan; hapus record kalau jatuh ke <= 0.
// Sengaja asimetris dengan Checkin: habit arsip tetap boleh di-undo.
// Hari tanpa record bukan error, tapi sinyal no-op {count:0, removed:false}.
func (s *CheckinService) Uncheckin(ctx context.Context, userID, habitID uuid.UUID, dateStr string, now time.Time) (*UncheckinResult, error) {
	if _, err := s.Repo.FindHabitForUser(ctx, habitID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}

	dayStart, nextDay, err := ResolveDayBounds(dateStr, now)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindCheckinInDayRange(ctx, habitID, dayStart, nextDay)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &UncheckinResult{Count: 0, Removed: false}, nil
		}
		return nil, err
	}

	nextCount := existing.Count - 1
	if nextCount <= 0 {
		if err := s.Repo.DeleteCheckin(ctx, existing.ID); err != nil {
			return nil, err
		}
		return &UncheckinResult{Count: 0, Removed: true}, nil
	}

	updated, err := s.Repo.UpdateCheckinCount(ctx, existing.ID, nextCount)
	if err != nil {
		return nil, err
	}
	return &UncheckinResult{Checkin: updated, Count: updated.Count}, nil
}

// ListCheckins — riwayat checkin habit milik user, opsional dibatasi
// [from, to] (keduanya awal hari UTC, inklusif).
func (s *CheckinService) ListCheckins(ctx context.Context, userID, habitID uuid.UUID, fromStr, toStr string) ([]checkinModel.HabitCheckinModel, error) {
	if _, err := s.Repo.FindHabitForUser(ctx, habitID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}

	var from, to *time.Time
	if fromStr != "" {
		t, err := StartOfUTCDate(fromStr)
		if err != nil {
			return nil, err
		}
		from = &t
	}
	if toStr != "" {
		t, err := StartOfUTCDate(toStr)
		if err != nil {
			return nil, err
		}
		to = &t
	}

	return s.Repo.ListCheckinsRange(ctx, habitID, from, to)
}
