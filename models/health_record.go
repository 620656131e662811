package models

import "time"

// HealthRecord is a point-in-time snapshot of a user's derived and
// self-reported health indicators.
type HealthRecord struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	BMI              float64   `gorm:"not null" json:"bmi"`
	Temperature      float64   `json:"temperature"`
	HealthRating     int       `json:"health_rating"`
	CaloriesConsumed float64   `json:"calories_consumed"`
	CaloriesNeeded   float64   `json:"calories_needed"`
	RecordedAt       time.Time `gorm:"index" json:"recorded_at"`
}
