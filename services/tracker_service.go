package services

import (
	"time"

	"github.com/vanshikasingh06/health-mate/cache"
	"github.com/vanshikasingh06/health-mate/models"
	"github.com/vanshikasingh06/health-mate/utils"

	"gorm.io/gorm"
)

// DefaultWaterTarget is the fixed daily intake target shown on the water
// page, in liters.
const DefaultWaterTarget = 2.5

// TrackerService owns the four append-only log types. Rows are never
// updated or deleted.
type TrackerService struct {
	db *gorm.DB
}

func NewTrackerService(db *gorm.DB) *TrackerService {
	return &TrackerService{db: db}
}

func (s *TrackerService) LogExercise(userID uint, exerciseType string, duration int, intensity string) (*models.ExerciseLog, error) {
	log := models.ExerciseLog{
		UserID:       userID,
		ExerciseType: exerciseType,
		Duration:     duration,
		Intensity:    intensity,
		// Stored once; later formula changes do not touch old rows.
		CaloriesBurned: utils.ExerciseCalories(duration, intensity),
		RecordedAt:     time.Now(),
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	s.afterWrite(userID, "exercise")
	return &log, nil
}

func (s *TrackerService) LogWater(userID uint, amount float64) (*models.WaterLog, error) {
	log := models.WaterLog{UserID: userID, Amount: amount, RecordedAt: time.Now()}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	s.afterWrite(userID, "water")
	return &log, nil
}

func (s *TrackerService) LogSleep(userID uint, hours float64, quality string) (*models.SleepLog, error) {
	log := models.SleepLog{UserID: userID, Hours: hours, Quality: quality, RecordedAt: time.Now()}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	s.afterWrite(userID, "sleep")
	return &log, nil
}

func (s *TrackerService) LogMood(userID uint, mood, notes string) (*models.MoodLog, error) {
	log := models.MoodLog{UserID: userID, Mood: mood, Notes: notes, RecordedAt: time.Now()}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	s.afterWrite(userID, "mood")
	return &log, nil
}

func (s *TrackerService) ListExercise(userID uint) ([]models.ExerciseLog, error) {
	var logs []models.ExerciseLog
	err := s.db.Where("user_id = ?", userID).Order("recorded_at desc").Find(&logs).Error
	return logs, err
}

func (s *TrackerService) ListWater(userID uint) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	err := s.db.Where("user_id = ?", userID).Order("recorded_at desc").Find(&logs).Error
	return logs, err
}

func (s *TrackerService) ListSleep(userID uint) ([]models.SleepLog, error) {
	var logs []models.SleepLog
	err := s.db.Where("user_id = ?", userID).Order("recorded_at desc").Find(&logs).Error
	return logs, err
}

func (s *TrackerService) ListMood(userID uint) ([]models.MoodLog, error) {
	var logs []models.MoodLog
	err := s.db.Where("user_id = ?", userID).Order("recorded_at desc").Find(&logs).Error
	return logs, err
}

// TodayWater sums the full day's intake for the water page, unlike the
// dashboard's bounded window.
func (s *TrackerService) TodayWater(userID uint) (float64, error) {
	logs, err := s.ListWater(userID)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	var total float64
	for _, l := range logs {
		if sameDay(l.RecordedAt, now) {
			total += l.Amount
		}
	}
	return total, nil
}

func (s *TrackerService) afterWrite(userID uint, tracker string) {
	utils.LogCount.WithLabelValues(tracker).Inc()
	cache.InvalidateProgress(userID)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
