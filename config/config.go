package config

import (
	"fmt"
	"os"

	"github.com/vanshikasingh06/health-mate/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LoadEnv reads .env if present; in containers the environment is already
// populated.
func LoadEnv() {
	_ = godotenv.Load()
}

// InitDB opens the postgres connection and migrates the schema. The handle
// is returned rather than stored globally so services can take it as a
// dependency.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate is split out so tests can run it against an in-memory store.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.HealthRecord{},
		&models.ExerciseLog{},
		&models.WaterLog{},
		&models.SleepLog{},
		&models.MoodLog{},
		&models.Goal{},
		&models.Alert{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}
