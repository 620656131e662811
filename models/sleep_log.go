package models

import "time"

type SleepLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Hours      float64   `gorm:"not null" json:"hours"`
	Quality    string    `gorm:"size:20" json:"quality"`
	RecordedAt time.Time `gorm:"index" json:"recorded_at"`
}
