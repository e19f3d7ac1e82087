package model

import (
	"time"

	"github.com/google/uuid"
)

// HabitModel merepresentasikan tabel habits.
// "Hapus" habit = soft archive (is_active=false), tidak pernah hard delete.
type HabitModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string    `gorm:"size:80;not null" json:"name"`
	Description  *string   `gorm:"size:500" json:"description,omitempty"`
	TargetPerDay int       `gorm:"not null;default:1" json:"target_per_day"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HabitModel) TableName() string {
	return "habits"
}
