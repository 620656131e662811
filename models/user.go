package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string  `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string  `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"size:120;not null" json:"-"`
	Name         string  `gorm:"size:100;not null" json:"name"`
	Age          int     `gorm:"not null" json:"age"`
	Height       float64 `gorm:"not null" json:"height"` // cm
	Weight       float64 `gorm:"not null" json:"weight"` // kg
	Gender       string  `gorm:"size:10;not null" json:"gender"` // "male" or "other"

	ProfilePicture string `json:"profile_picture"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}
