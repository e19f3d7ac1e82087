package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	checkinModel "habitku_backend/internals/features/habits/checkin/model"
	habitModel "habitku_backend/internals/features/habits/habit/model"
)

/* =========================
   Fake repo in-memory
   ========================= */

type fakeRepo struct {
	habits   map[uuid.UUID]habitModel.HabitModel
	checkins []checkinModel.HabitCheckinModel
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{habits: make(map[uuid.UUID]habitModel.HabitModel)}
}

func (f *fakeRepo) addHabit(userID uuid.UUID, target int, active bool) uuid.UUID {
	id := uuid.New()
	f.habits[id] = habitModel.HabitModel{
		ID:           id,
		UserID:       userID,
		Name:         "habit",
		TargetPerDay: target,
		IsActive:     active,
	}
	return id
}

func (f *fakeRepo) FindHabitForUser(_ context.Context, habitID, userID uuid.UUID) (*habitModel.HabitModel, error) {
	h, ok := f.habits[habitID]
	if !ok || h.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	out := h
	return &out, nil
}

func (f *fakeRepo) FindCheckinInDayRange(_ context.Context, habitID uuid.UUID, dayStart, nextDay time.Time) (*checkinModel.HabitCheckinModel, error) {
	var found *checkinModel.HabitCheckinModel
	for i := range f.checkins {
		c := &f.checkins[i]
		if c.HabitID != habitID {
			continue
		}
		if c.Date.Before(dayStart) || !c.Date.Before(nextDay) {
			continue
		}
		if found == nil || c.Date.Before(found.Date) {
			found = c
		}
	}
	if found == nil {
		return nil, gorm.ErrRecordNotFound
	}
	out := *found
	return &out, nil
}

func (f *fakeRepo) UpsertCheckinIncrement(ctx context.Context, habitID uuid.UUID, dayStart time.Time) (*checkinModel.HabitCheckinModel, error) {
	existing, err := f.FindCheckinInDayRange(ctx, habitID, dayStart, dayStart.Add(24*time.Hour))
	if err == nil {
		return f.UpdateCheckinCount(ctx, existing.ID, existing.Count+1)
	}
	rec := checkinModel.HabitCheckinModel{
		ID:      uuid.New(),
		HabitID: habitID,
		Date:    dayStart,
		Count:   1,
	}
	f.checkins = append(f.checkins, rec)
	out := rec
	return &out, nil
}

func (f *fakeRepo) UpdateCheckinCount(_ context.Context, checkinID uuid.UUID, newCount int) (*checkinModel.HabitCheckinModel, error) {
	for i := range f.checkins {
		if f.checkins[i].ID == checkinID {
			f.checkins[i].Count = newCount
			out := f.checkins[i]
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) DeleteCheckin(_ context.Context, checkinID uuid.UUID) error {
	for i := range f.checkins {
		if f.checkins[i].ID == checkinID {
			f.checkins = append(f.checkins[:i], f.checkins[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListCheckinsSince(_ context.Context, habitID uuid.UUID, since time.Time) ([]checkinModel.HabitCheckinModel, error) {
	var out []checkinModel.HabitCheckinModel
	for _, c := range f.checkins {
		if c.HabitID == habitID && !c.Date.Before(since) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListCheckinsRange(_ context.Context, habitID uuid.UUID, from, to *time.Time) ([]checkinModel.HabitCheckinModel, error) {
	var out []checkinModel.HabitCheckinModel
	for _, c := range f.checkins {
		if c.HabitID != habitID {
			continue
		}
		if from != nil && c.Date.Before(*from) {
			continue
		}
		if to != nil && c.Date.After(*to) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

/* =========================
   Tests
   ========================= */

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestResolveDayBounds_HalfOpenInterval(t *testing.T) {
	dayStart, nextDay, err := ResolveDayBounds("2024-01-05", testNow)
	if err != nil {
		t.Fatalf("ResolveDayBounds failed: %v", err)
	}
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	if !dayStart.Equal(want) {
		t.Errorf("dayStart = %v, want %v", dayStart, want)
	}
	if !nextDay.Equal(want.Add(24 * time.Hour)) {
		t.Errorf("nextDay = %v, want %v", nextDay, want.Add(24*time.Hour))
	}
}

func TestResolveDayBounds_DefaultsToCurrentUTCDay(t *testing.T) {
	dayStart, _, err := ResolveDayBounds("", testNow)
	if err != nil {
		t.Fatalf("ResolveDayBounds failed: %v", err)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !dayStart.Equal(want) {
		t.Errorf("dayStart = %v, want %v (jam harus terpotong)", dayStart, want)
	}
}

func TestResolveDayBounds_RejectsBadFormat(t *testing.T) {
	if _, _, err := ResolveDayBounds("05-01-2024", testNow); err != ErrInvalidDate {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCheckin_SameDayTwice_SingleRecordCountTwo(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	habitID := repo.addHabit(userID, 1, true)
	svc := NewCheckinService(repo)

	if _, err := svc.Checkin(context.Background(), userID, habitID, "2024-03-10", testNow); err != nil {
		t.Fatalf("first checkin failed: %v", err)
	}
	rec, err := svc.Checkin(context.Background(), userID, habitID, "2024-03-10", testNow)
	if err != nil {
		t.Fatalf("second checkin failed: %v", err)
	}

	if len(repo.checkins) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(repo.checkins))
	}
	if rec.Count != 2 {
		t.Errorf("count = %d, want 2", rec.Count)
	}
}

func TestCheckin_NotFoundForOtherUsersHabit(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	habitID := repo.addHabit(owner, 1, true)
	svc := NewCheckinService(repo)

	if _, err := svc.Checkin(context.Background(), uuid.New(), habitID, "", testNow); err != ErrHabitNotFound {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestCheckin_ArchivedHabitRejected(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	habitID := repo.addHabit(userID, 1, false)
	svc := NewCheckinService(repo)

	if _, err := svc.Checkin(context.Background(), userID, habitID, "", testNow); err != ErrHabitArchived {
		t.Errorf("expected ErrHabitArchived, got %v", err)
	}
}

func TestUncheckin_InverseOfCheckin(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	habitID := repo.addHabit(userID, 1, true)
	svc := NewCheckinService(repo)

	if _, err := svc.Checkin(context.Background(), userID, habitID, "2024-03-10", testNow); err != nil {
		t.Fatalf("checkin failed: %v", err)
	}
	res, err := svc.Uncheckin(context.Background(), userID, habitID, "2024-03-10", testNow)
	if err != nil {
		t.Fatalf("uncheckin failed: %v", err)
	}

	if !res.Removed || res.Count != 0 {
		t.Errorf("expected {count:0, removed:true}, got {count:%d, removed:%v}", res.Count, res.Removed)
	}
	if len(repo.checkins) != 0 {
		t.Errorf("record harus terhapus, masih ada %d", len(repo.checkins))
	}
}

func TestUncheckin_DecrementKeepsRecord(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	habitID := repo.addHabit(userID, 1, true)
	svc := NewCheckinService(repo)

	for i := 0; i < 3; i++ {
		if _, err := svc.Checkin(context.Background(), userID, habitID, "2024-03-10", testNow); err != nil {
			t.Fatalf("checkin %d failed: %v", i, err)
		}
	}
	res, err := svc.Uncheckin(context.Background(), userID, habitID, "2024-03-10", testNow)
	if err != nil {
		t.Fatalf("uncheckin failed: %v", err)
	}

	if res.Checkin == nil {
		t.Fatal("expected full record on decrement path")
	}
	if res.Checkin.Count != 2 {
		t.Errorf("count = %d, want 2", res.Checkin.Count)
	}
	if res.Removed {
		t.Error("removed harus false saat decrement")
	}
}

func TestUncheckin_NoRecordIsNoop(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	habitID := repo.addHabit(userID, 1, true)
	svc := NewCheckinService(repo)

	res, err := svc.Uncheckin(context.Background(), userID, habitID, "2024-03-10", testNow)
	if err != nil {
		t.Fatalf("uncheckin failed: %v", err)
	}

	if res.Removed || res.Count != 0 || res.Checkin != nil {
		t.Errorf("expected no-op {count:0, removed:false}, got %+v", res)
	}
	if len(repo.checkins) != 0 {
		t.Errorf("no-op tidak boleh membuat record, ada %d", len(repo.checkins))
	}
}

func TestUncheckin_AllowedOnArchivedHabit(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	habitID := repo.addHabit(userID, 1, true)
	svc := NewCheckinService(repo)

	if _, err := svc.Checkin(context.Background(), userID, habitID, "2024-03-10", testNow); err != nil {
		t.Fatalf("checkin failed: %v", err)
	}

	// arsipkan setelah checkin — undo tetap harus jalan
	h := repo.habits[habitID]
	h.IsActive = false
	repo.habits[habitID] = h

	res, err := svc.Uncheckin(context.Background(), userID, habitID, "2024-03-10", testNow)
	if err != nil {
		t.Fatalf("uncheckin pada habit arsip harus boleh: %v", err)
	}
	if !res.Removed {
		t.Errorf("expected removed=true, got %+v", res)
	}
}

func TestCheckin_RangeLookupTolerantOfStoredHourComponent(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	habitID := repo.addHabit(userID, 1, true)
	svc := NewCheckinService(repo)

	// record historis dengan komponen jam (bukan tengah malam persis)
	repo.checkins = append(repo.checkins, checkinModel.HabitCheckinModel{
		ID:      uuid.New(),
		HabitID: habitID,
		Date:    time.Date(2024, 3, 10, 13, 45, 0, 0, time.UTC),
		Count:   1,
	})

	rec, err := svc.Checkin(context.Background(), userID, habitID, "2024-03-10", testNow)
	if err != nil {
		t.Fatalf("checkin failed: %v", err)
	}
	if len(repo.checkins) != 1 {
		t.Fatalf("range lookup harus menemukan record lama, malah ada %d record", len(repo.checkins))
	}
	if rec.Count != 2 {
		t.Errorf("count = %d, want 2", rec.Count)
	}
}

func seedCheckin(repo *fakeRepo, habitID uuid.UUID, iso string, count int) {
	d, err := time.ParseInLocation("2006-01-02", iso, time.UTC)
	if err != nil {
		panic(err)
	}
	repo.checkins = append(repo.checkins, checkinModel.HabitCheckinModel{
		ID:      uuid.New(),
		HabitID: habitID,
		Date:    d,
		Count:   count,
	})
}

func TestListCheckins_FromToInclusiveDayStartBounds(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	habitID := repo.addHabit(userID, 1, true)
	svc := NewCheckinService(repo)

	seedCheckin(repo, habitID, "2024-03-08", 1)
	seedCheckin(repo, habitID, "2024-03-10", 2)
	seedCheckin(repo, habitID, "2024-03-12", 1)

	// kedua batas inklusif terhadap awal hari UTC
	out, err := svc.ListCheckins(context.Background(), userID, habitID, "2024-03-08", "2024-03-10")
	if err != nil {
		t.Fatalf("ListCheckins failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 (08 & 10 masuk, 12 keluar)", len(out))
	}
	for _, c := range out {
		if c.Date.Format("2006-01-02") == "2024-03-12" {
			t.Errorf("2024-03-12 di luar batas to, tidak boleh ikut")
		}
	}
}

func TestListCheckins_OpenEndedBounds(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	habitID := repo.addHabit(userID, 1, true)
	svc := NewCheckinService(repo)

	seedCheckin(repo, habitID, "2024-03-08", 1)
	seedCheckin(repo, habitID, "2024-03-12", 1)

	fromOnly, err := svc.ListCheckins(context.Background(), userID, habitID, "2024-03-10", "")
	if err != nil {
		t.Fatalf("ListCheckins (from saja) failed: %v", err)
	}
	if len(fromOnly) != 1 || fromOnly[0].Date.Format("2006-01-02") != "2024-03-12" {
		t.Errorf("from saja harus menyisakan 2024-03-12, got %+v", fromOnly)
	}

	toOnly, err := svc.ListCheckins(context.Background(), userID, habitID, "", "2024-03-10")
	if err != nil {
		t.Fatalf("ListCheckins (to saja) failed: %v", err)
	}
	if len(toOnly) != 1 || toOnly[0].Date.Format("2006-01-02") != "2024-03-08" {
		t.Errorf("to saja harus menyisakan 2024-03-08, got %+v", toOnly)
	}

	all, err := svc.ListCheckins(context.Background(), userID, habitID, "", "")
	if err != nil {
		t.Fatalf("ListCheckins (tanpa filter) failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("tanpa filter harus kembali semua, got %d", len(all))
	}
}

func TestListCheckins_RejectsBadBoundAndUnknownHabit(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	habitID := repo.addHabit(userID, 1, true)
	svc := NewCheckinService(repo)

	if _, err := svc.ListCheckins(context.Background(), userID, habitID, "10-03-2024", ""); err != ErrInvalidDate {
		t.Errorf("expected ErrInvalidDate untuk from, got %v", err)
	}
	if _, err := svc.ListCheckins(context.Background(), userID, habitID, "", "2024/03/10"); err != ErrInvalidDate {
		t.Errorf("expected ErrInvalidDate untuk to, got %v", err)
	}
	if _, err := svc.ListCheckins(context.Background(), userID, uuid.New(), "", ""); err != ErrHabitNotFound {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}
}
