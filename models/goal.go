package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal is the only mutable per-user record: CurrentValue and Completed are
// updated by the owning user. Completed flips to true once CurrentValue
// reaches TargetValue and is never reset automatically.
type Goal struct {
	gorm.Model
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	GoalType     string     `gorm:"size:100;not null" json:"goal_type"`
	Target       string     `gorm:"size:100;not null" json:"target"`
	CurrentValue float64    `gorm:"default:0" json:"current_value"`
	TargetValue  float64    `json:"target_value"`
	Unit         string     `gorm:"size:20" json:"unit"`
	Deadline     *time.Time `json:"deadline"`
	Completed    bool       `gorm:"default:false" json:"completed"`
}
