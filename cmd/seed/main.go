package main

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"habitku_backend/internals/configs"
	habitModel "habitku_backend/internals/features/habits/habit/model"
	userModel "habitku_backend/internals/features/users/auth/model"
)

// Seeder demo: satu user + tiga habit awal. Idempotent — aman dijalankan ulang.
func main() {
	configs.LoadEnv()
	db := configs.InitSeederDB()

	const (
		email = "demo@demo.pl"
		pass  = "demo123"
	)

	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	var user userModel.UserModel
	err = db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = userModel.UserModel{Email: email, Password: string(hashed)}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("❌ Gagal membuat user demo: %v", err)
		}
	} else if err != nil {
		log.Fatalf("❌ DB error: %v", err)
	}

	habits := []habitModel.HabitModel{
		{UserID: user.ID, Name: "Minum air 2L", TargetPerDay: 1, IsActive: true},
		{UserID: user.ID, Name: "Stretching 10 menit", TargetPerDay: 1, IsActive: true},
		{UserID: user.ID, Name: "Belajar 30 menit", TargetPerDay: 1, IsActive: true},
	}
	for i := range habits {
		var existing habitModel.HabitModel
		err := db.Where("user_id = ? AND name = ?", user.ID, habits[i].Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&habits[i]).Error; err != nil {
				log.Fatalf("❌ Gagal membuat habit %q: %v", habits[i].Name, err)
			}
		} else if err != nil {
			log.Fatalf("❌ DB error: %v", err)
		}
	}

	log.Printf("✅ Seed OK: email=%s pass=%s", email, pass)
}
