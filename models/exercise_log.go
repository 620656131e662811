package models

import "time"

// ExerciseLog rows are append-only. CaloriesBurned is computed once at
// creation time and never recomputed.
type ExerciseLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	ExerciseType   string    `gorm:"size:100;not null" json:"exercise_type"`
	Duration       int       `gorm:"not null" json:"duration"` // minutes
	Intensity      string    `gorm:"size:20;not null" json:"intensity"`
	CaloriesBurned float64   `json:"calories_burned"`
	RecordedAt     time.Time `gorm:"index" json:"recorded_at"`
}
