package services

import (
	"testing"

	"github.com/vanshikasingh06/health-mate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalCompletionFlipsForwardOnly(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "runner")
	svc := NewGoalService(db, nil)

	goal, err := svc.Create(user.ID, GoalInput{
		GoalType:    "running",
		Target:      "run 100 km this month",
		TargetValue: 100,
		Unit:        "km",
	})
	require.NoError(t, err)
	assert.False(t, goal.Completed)
	assert.Zero(t, goal.CurrentValue)

	goal, err = svc.UpdateProgress(goal.ID, user.ID, 50)
	require.NoError(t, err)
	assert.False(t, goal.Completed)

	goal, err = svc.UpdateProgress(goal.ID, user.ID, 120)
	require.NoError(t, err)
	assert.True(t, goal.Completed)

	// dropping below target later does not reopen the goal
	goal, err = svc.UpdateProgress(goal.ID, user.ID, 10)
	require.NoError(t, err)
	assert.True(t, goal.Completed)
	assert.Equal(t, 10.0, goal.CurrentValue)
}

func TestGoalUpdateOwnershipRefused(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "owner")
	intruder := newTestUser(t, db, "intruder")
	svc := NewGoalService(db, nil)

	goal, err := svc.Create(owner.ID, GoalInput{
		GoalType:    "water",
		Target:      "drink more",
		TargetValue: 3,
		Unit:        "l",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProgress(goal.ID, intruder.ID, 99)
	assert.ErrorIs(t, err, ErrForbidden)

	// target goal untouched
	var stored models.Goal
	require.NoError(t, db.First(&stored, goal.ID).Error)
	assert.Zero(t, stored.CurrentValue)
	assert.False(t, stored.Completed)
}

func TestGoalUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "solo")
	svc := NewGoalService(db, nil)

	_, err := svc.UpdateProgress(9999, user.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalCompletionEmitsAlertOnce(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "alerted")
	svc := NewGoalService(db, NewAlertBus(db, nil))

	goal, err := svc.Create(user.ID, GoalInput{
		GoalType:    "sleep",
		Target:      "sleep more",
		TargetValue: 8,
		Unit:        "h",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProgress(goal.ID, user.ID, 9)
	require.NoError(t, err)

	// still completed; a second update must not emit again
	_, err = svc.UpdateProgress(goal.ID, user.ID, 10)
	require.NoError(t, err)

	var alerts []models.Alert
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&alerts).Error)
	require.Len(t, alerts, 1)
	assert.Equal(t, "goal_completed", alerts[0].Type)
}
