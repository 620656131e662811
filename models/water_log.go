package models

import "time"

type WaterLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Amount     float64   `gorm:"not null" json:"amount"` // liters
	RecordedAt time.Time `gorm:"index" json:"recorded_at"`
}
