package database

import (
	"log"

	checkinModel "habitku_backend/internals/features/habits/checkin/model"
	habitModel "habitku_backend/internals/features/habits/habit/model"
	userModel "habitku_backend/internals/features/users/auth/model"
)

// AutoMigrate menyelaraskan skema: users, habits, habit_checkins.
// Unique index (habit_id, date) dibuat lewat tag di model checkin.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&habitModel.HabitModel{},
		&checkinModel.HabitCheckinModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
