package service

import (
	"sort"
	"time"

	checkinModel "habitku_backend/internals/features/habits/checkin/model"
)

const isoDayLayout = "2006-01-02"

// StreakResult — hasil murni dari ComputeStreaks.
type StreakResult struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

// ToISODateOnly — kunci hari kalender UTC ("YYYY-MM-DD") dari sebuah instant.
// Engine bekerja di atas kunci hari ini, bukan timestamp penuh, supaya
// komponen jam tidak pernah bocor ke aritmetika streak.
func ToISODateOnly(t time.Time) string {
	return t.UTC().Format(isoDayLayout)
}

// doneDaySet — hari masuk set kalau count >= targetPerDay.
// Hari yang absen, atau hadir dengan count di bawah target, tidak masuk.
func doneDaySet(checkins []checkinModel.HabitCheckinModel, targetPerDay int) map[string]struct{} {
	done := make(map[string]struct{}, len(checkins))
	for i := range checkins {
		if checkins[i].Count >= targetPerDay {
			done[ToISODateOnly(checkins[i].Date)] = struct{}{}
		}
	}
	return done
}

// ComputeStreaks — streak berjalan & streak terpanjang dari riwayat checkin.
// Murni & deterministik terhadap input + now; urutan input tidak berpengaruh.
//
// Anchor streak berjalan: hari ini kalau done, kalau tidak kemarin — user yang
// buka dashboard sebelum menyelesaikan target hari ini tidak boleh melihat
// streak-nya reset ke nol duluan.
func ComputeStreaks(checkins []checkinModel.HabitCheckinModel, targetPerDay int, now time.Time) StreakResult {
	done := doneDaySet(checkins, targetPerDay)

	today := ToISODateOnly(now)
	yesterday := ToISODateOnly(now.Add(-24 * time.Hour))

	start := yesterday
	if _, ok := done[today]; ok {
		start = today
	}

	// Streak berjalan: jalan mundur satu hari selama masih ada di done-set.
	current := 0
	cursor, _ := time.ParseInLocation(isoDayLayout, start, time.UTC)
	for {
		if _, ok := done[ToISODateOnly(cursor)]; !ok {
			break
		}
		current++
		cursor = cursor.Add(-24 * time.Hour)
	}

	// Streak terpanjang: sort kunci hari ascending (sort leksikografis ISO ==
	// sort kronologis), lalu scan run berurutan. Gap diuji dengan selisih
	// tepat 24 jam antar tengah-malam UTC.
	dates := make([]string, 0, len(done))
	for d := range done {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	longest := 0
	run := 0
	prev := ""
	for _, d := range dates {
		if prev == "" {
			run = 1
		} else {
			prevT, _ := time.ParseInLocation(isoDayLayout, prev, time.UTC)
			curT, _ := time.ParseInLocation(isoDayLayout, d, time.UTC)
			if curT.Sub(prevT) == 24*time.Hour {
				run++
			} else {
				run = 1
			}
		}
		if run > longest {
			longest = run
		}
		prev = d
	}

	return StreakResult{CurrentStreak: current, LongestStreak: longest}
}
