package service

import (
	"testing"
	"time"

	checkinModel "habitku_backend/internals/features/habits/checkin/model"
)

var now = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func day(iso string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", iso, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func checkin(iso string, count int) checkinModel.HabitCheckinModel {
	return checkinModel.HabitCheckinModel{Date: day(iso), Count: count}
}

func TestComputeStreaks_EmptyHistory(t *testing.T) {
	res := ComputeStreaks(nil, 1, now)
	if res.CurrentStreak != 0 || res.LongestStreak != 0 {
		t.Errorf("expected 0/0, got %+v", res)
	}
}

func TestComputeStreaks_AnchorHoldsThroughToday(t *testing.T) {
	// hanya kemarin yang done; hari ini belum — streak tidak boleh reset
	res := ComputeStreaks([]checkinModel.HabitCheckinModel{
		checkin("2024-03-14", 1),
	}, 1, now)
	if res.CurrentStreak != 1 {
		t.Errorf("currentStreak = %d, want 1", res.CurrentStreak)
	}
}

func TestComputeStreaks_ThreeConsecutiveDaysEndingToday(t *testing.T) {
	res := ComputeStreaks([]checkinModel.HabitCheckinModel{
		checkin("2024-03-15", 1),
		checkin("2024-03-14", 1),
		checkin("2024-03-13", 1),
	}, 1, now)
	if res.CurrentStreak != 3 {
		t.Errorf("currentStreak = %d, want 3", res.CurrentStreak)
	}
	if res.LongestStreak != 3 {
		t.Errorf("longestStreak = %d, want 3", res.LongestStreak)
	}
}

func TestComputeStreaks_GapTwoDaysAgoBreaksStreak(t *testing.T) {
	// kemarin & hari ini tidak done → anchor (kemarin) kosong → 0
	res := ComputeStreaks([]checkinModel.HabitCheckinModel{
		checkin("2024-03-12", 1),
		checkin("2024-03-11", 1),
	}, 1, now)
	if res.CurrentStreak != 0 {
		t.Errorf("currentStreak = %d, want 0", res.CurrentStreak)
	}
	if res.LongestStreak != 2 {
		t.Errorf("longestStreak = %d, want 2", res.LongestStreak)
	}
}

func TestComputeStreaks_BelowTargetDaysExcluded(t *testing.T) {
	res := ComputeStreaks([]checkinModel.HabitCheckinModel{
		checkin("2024-03-15", 1), // di bawah target 2
		checkin("2024-03-14", 2),
	}, 2, now)
	if res.CurrentStreak != 1 {
		t.Errorf("currentStreak = %d, want 1 (hari ini belum done, anchor kemarin)", res.CurrentStreak)
	}
	if res.LongestStreak != 1 {
		t.Errorf("longestStreak = %d, want 1", res.LongestStreak)
	}
}

func TestComputeStreaks_LongestRunIgnoresGaps(t *testing.T) {
	// D1, D2=D1+1, D4=D2+3 → run terpanjang 2, bukan 3
	res := ComputeStreaks([]checkinModel.HabitCheckinModel{
		checkin("2024-02-01", 1),
		checkin("2024-02-02", 1),
		checkin("2024-02-05", 1),
	}, 1, now)
	if res.LongestStreak != 2 {
		t.Errorf("longestStreak = %d, want 2", res.LongestStreak)
	}
}

func TestComputeStreaks_InputOrderIrrelevant(t *testing.T) {
	shuffled := []checkinModel.HabitCheckinModel{
		checkin("2024-03-13", 1),
		checkin("2024-03-15", 1),
		checkin("2024-03-14", 1),
	}
	res := ComputeStreaks(shuffled, 1, now)
	if res.CurrentStreak != 3 || res.LongestStreak != 3 {
		t.Errorf("expected 3/3, got %+v", res)
	}
}

func TestComputeStreaks_StoredHourComponentTruncated(t *testing.T) {
	// date dengan jam tetap harus jatuh ke hari UTC yang sama
	rec := checkinModel.HabitCheckinModel{
		Date:  time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC),
		Count: 1,
	}
	res := ComputeStreaks([]checkinModel.HabitCheckinModel{rec}, 1, now)
	if res.CurrentStreak != 1 {
		t.Errorf("currentStreak = %d, want 1", res.CurrentStreak)
	}
}

func TestComputeStreaks_LongestSpansMonthBoundary(t *testing.T) {
	// sort leksikografis ISO harus tetap kronologis lintas bulan
	res := ComputeStreaks([]checkinModel.HabitCheckinModel{
		checkin("2024-01-31", 1),
		checkin("2024-02-01", 1),
		checkin("2024-02-02", 1),
	}, 1, now)
	if res.LongestStreak != 3 {
		t.Errorf("longestStreak = %d, want 3", res.LongestStreak)
	}
}
