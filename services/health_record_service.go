package services

import (
	"time"

	"github.com/vanshikasingh06/health-mate/models"
	"github.com/vanshikasingh06/health-mate/utils"

	"gorm.io/gorm"
)

type HealthRecordService struct {
	db *gorm.DB
}

func NewHealthRecordService(db *gorm.DB) *HealthRecordService {
	return &HealthRecordService{db: db}
}

type HealthRecordInput struct {
	Temperature      float64
	HealthRating     int
	CaloriesConsumed float64
}

// Record snapshots the user's derived indicators alongside the submitted
// readings. Unlike the live dashboard, which always recomputes, these rows
// keep the values as they were at logging time.
func (s *HealthRecordService) Record(user *models.User, input HealthRecordInput) (*models.HealthRecord, error) {
	bmi, err := utils.CalculateBMI(user.Height, user.Weight)
	if err != nil {
		return nil, err
	}

	rec := models.HealthRecord{
		UserID:           user.ID,
		BMI:              bmi,
		Temperature:      input.Temperature,
		HealthRating:     input.HealthRating,
		CaloriesConsumed: input.CaloriesConsumed,
		CaloriesNeeded:   utils.DailyCalorieNeed(user.Gender, user.Weight, user.Height, user.Age),
		RecordedAt:       time.Now(),
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *HealthRecordService) List(userID uint) ([]models.HealthRecord, error) {
	var recs []models.HealthRecord
	err := s.db.Where("user_id = ?", userID).Order("recorded_at desc").Find(&recs).Error
	return recs, err
}
