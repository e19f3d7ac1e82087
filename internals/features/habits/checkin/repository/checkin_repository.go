package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	checkinModel "habitku_backend/internals/features/habits/checkin/model"
	habitModel "habitku_backend/internals/features/habits/habit/model"
)

// CheckinRepository — batas storage untuk check-in store & stats engine.
// Dipisah sebagai interface supaya service bisa dites dengan fake in-memory.
type CheckinRepository interface {
	FindHabitForUser(ctx context.Context, habitID, userID uuid.UUID) (*habitModel.HabitModel, error)

	// Lookup selalu pakai range [dayStart, nextDay), tidak pernah equality
	// timestamp persis; tahan terhadap komponen jam yang tersimpan historis.
	FindCheckinInDayRange(ctx context.Context, habitID uuid.UUID, dayStart, nextDay time.Time) (*checkinModel.HabitCheckinModel, error)

	// Upsert atomik: insert count=1, atau ON CONFLICT (habit_id, date)
	// count = count + 1. Kolom date bertipe DATE sehingga conflict target
	// benar-benar hari kalender, bukan kesamaan timestamp persis; invariant
	// satu-baris-per-hari terjaga di bawah dua checkin bersamaan tanpa
	// find-then-write.
	UpsertCheckinIncrement(ctx context.Context, habitID uuid.UUID, dayStart time.Time) (*checkinModel.HabitCheckinModel, error)

	UpdateCheckinCount(ctx context.Context, checkinID uuid.UUID, newCount int) (*checkinModel.HabitCheckinModel, error)
	DeleteCheckin(ctx context.Context, checkinID uuid.UUID) error

	// since = instant bergerak (bukan batas hari); upper end terbuka,
	// checkin berdate masa depan ikut terambil.
	ListCheckinsSince(ctx context.Context, habitID uuid.UUID, since time.Time) ([]checkinModel.HabitCheckinModel, error)

	// from/to opsional, keduanya batas awal-hari UTC inklusif.
	ListCheckinsRange(ctx context.Context, habitID uuid.UUID, from, to *time.Time) ([]checkinModel.HabitCheckinModel, error)
}

type gormCheckinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) CheckinRepository {
	return &gormCheckinRepository{db: db}
}

func (r *gormCheckinRepository) FindHabitForUser(ctx context.Context, habitID, userID uuid.UUID) (*habitModel.HabitModel, error) {
	var habit habitModel.HabitModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", habitID, userID).
		First(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *gormCheckinRepository) FindCheckinInDayRange(ctx context.Context, habitID uuid.UUID, dayStart, nextDay time.Time) (*checkinModel.HabitCheckinModel, error) {
	var rec checkinModel.HabitCheckinModel
	if err := r.db.WithContext(ctx).
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, dayStart, nextDay).
		Order("date ASC"). // ambil yang paling awal kalau invariant pernah bocor
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *gormCheckinRepository) UpsertCheckinIncrement(ctx context.Context, habitID uuid.UUID, dayStart time.Time) (*checkinModel.HabitCheckinModel, error) {
	rec := checkinModel.HabitCheckinModel{
		HabitID: habitID,
		Date:    dayStart,
		Count:   1,
	}
	if err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "habit_id"}, {Name: "date"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"count":      gorm.Expr("habit_checkins.count + 1"),
					"updated_at": gorm.Expr("now()"),
				}),
			},
			clause.Returning{},
		).
		Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *gormCheckinRepository) UpdateCheckinCount(ctx context.Context, checkinID uuid.UUID, newCount int) (*checkinModel.HabitCheckinModel, error) {
	var rec checkinModel.HabitCheckinModel
	if err := r.db.WithContext(ctx).
		First(&rec, "id = ?", checkinID).Error; err != nil {
		return nil, err
	}
	rec.Count = newCount
	if err := r.db.WithContext(ctx).
		Model(&rec).Update("count", newCount).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *gormCheckinRepository) DeleteCheckin(ctx context.Context, checkinID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&checkinModel.HabitCheckinModel{}, "id = ?", checkinID).Error
}

func (r *gormCheckinRepository) ListCheckinsSince(ctx context.Context, habitID uuid.UUID, since time.Time) ([]checkinModel.HabitCheckinModel, error) {
	var out []checkinModel.HabitCheckinModel
	if err := r.db.WithContext(ctx).
		Where("habit_id = ? AND date >= ?", habitID, since).
		Order("date DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormCheckinRepository) ListCheckinsRange(ctx context.Context, habitID uuid.UUID, from, to *time.Time) ([]checkinModel.HabitCheckinModel, error) {
	tx := r.db.WithContext(ctx).Where("habit_id = ?", habitID)
	if from != nil {
		tx = tx.Where("date >= ?", *from)
	}
	if to != nil {
		tx = tx.Where("date <= ?", *to)
	}
	var out []checkinModel.HabitCheckinModel
	if err := tx.Order("date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
