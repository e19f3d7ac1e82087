package dto

import "github.com/google/uuid"

// StatsResponse — statistik satu habit dalam window rangeDays.
type StatsResponse struct {
	HabitID        uuid.UUID `json:"habit_id"`
	Days           int       `json:"days"`
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	CompletionRate int       `json:"completion_rate"`
}
