package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/vanshikasingh06/health-mate/models"

	"gorm.io/gorm"
)

type GoalService struct {
	db     *gorm.DB
	alerts *AlertBus
}

// NewGoalService takes an optional alert bus; pass nil to skip completion
// notifications.
func NewGoalService(db *gorm.DB, alerts *AlertBus) *GoalService {
	return &GoalService{db: db, alerts: alerts}
}

type GoalInput struct {
	GoalType    string
	Target      string
	TargetValue float64
	Unit        string
	Deadline    *time.Time
}

func (s *GoalService) Create(userID uint, input GoalInput) (*models.Goal, error) {
	goal := models.Goal{
		UserID:      userID,
		GoalType:    input.GoalType,
		Target:      input.Target,
		TargetValue: input.TargetValue,
		Unit:        input.Unit,
		Deadline:    input.Deadline,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) List(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&goals).Error
	return goals, err
}

// UpdateProgress sets the goal's current value for its owner. The
// completion flag only ever flips forward: once a goal is completed, a
// lower value later does not reopen it.
func (s *GoalService) UpdateProgress(goalID, userID uint, currentValue float64) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.First(&goal, goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if goal.UserID != userID {
		return nil, ErrForbidden
	}

	wasCompleted := goal.Completed
	goal.CurrentValue = currentValue
	if currentValue >= goal.TargetValue {
		goal.Completed = true
	}

	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}

	if !wasCompleted && goal.Completed && s.alerts != nil {
		s.alerts.Emit(userID, "goal_completed",
			fmt.Sprintf("Goal reached: %s (%g %s)", goal.GoalType, goal.TargetValue, goal.Unit))
	}

	return &goal, nil
}
