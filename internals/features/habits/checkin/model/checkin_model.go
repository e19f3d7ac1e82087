package model

import (
	"time"

	"github.com/google/uuid"
)

// HabitCheckinModel merepresentasikan tabel habit_checkins.
// Invariant: maksimal SATU baris per (habit_id, hari kalender UTC).
// Kolom date bertipe DATE (bukan timestamp), jadi unique index komposit
// mengunci hari kalendernya sendiri — ON CONFLICT (habit_id, date) tetap
// kena walau pernah ada nilai dengan komponen jam yang masuk lewat jalur lain.
type HabitCheckinModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_checkins_habit_date" json:"habit_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_checkins_habit_date" json:"date"`
	Count     int       `gorm:"not null;default:1" json:"count"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HabitCheckinModel) TableName() string {
	return "habit_checkins"
}
