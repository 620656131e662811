package models

import "time"

type MoodLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Mood       string    `gorm:"size:50;not null" json:"mood"`
	Notes      string    `gorm:"type:text" json:"notes"`
	RecordedAt time.Time `gorm:"index" json:"recorded_at"`
}
