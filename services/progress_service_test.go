package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/vanshikasingh06/health-mate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atNoon(daysAgo int) time.Time {
	now := time.Now()
	d := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.Local)
	return d.AddDate(0, 0, -daysAgo)
}

func TestProgressReportGroupsByDate(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "progress")
	svc := NewProgressService(db)

	// two exercise sessions yesterday, one today
	require.NoError(t, db.Create(&models.ExerciseLog{
		UserID: user.ID, ExerciseType: "run", Duration: 30, Intensity: "low", RecordedAt: atNoon(1),
	}).Error)
	require.NoError(t, db.Create(&models.ExerciseLog{
		UserID: user.ID, ExerciseType: "bike", Duration: 20, Intensity: "low", RecordedAt: atNoon(1),
	}).Error)
	require.NoError(t, db.Create(&models.ExerciseLog{
		UserID: user.ID, ExerciseType: "run", Duration: 15, Intensity: "low", RecordedAt: atNoon(0),
	}).Error)

	// water split across the same two days
	require.NoError(t, db.Create(&models.WaterLog{UserID: user.ID, Amount: 1.5, RecordedAt: atNoon(1)}).Error)
	require.NoError(t, db.Create(&models.WaterLog{UserID: user.ID, Amount: 0.5, RecordedAt: atNoon(1)}).Error)

	// sleep averages, not sums
	require.NoError(t, db.Create(&models.SleepLog{UserID: user.ID, Hours: 6, RecordedAt: atNoon(1)}).Error)
	require.NoError(t, db.Create(&models.SleepLog{UserID: user.ID, Hours: 8, RecordedAt: atNoon(1)}).Error)

	report, err := svc.Report(user.ID)
	require.NoError(t, err)

	require.Len(t, report.Exercise, 2)
	// most recent date first
	assert.Equal(t, atNoon(0).Format("2006-01-02"), report.Exercise[0].Date)
	assert.Equal(t, 15.0, report.Exercise[0].Value)
	assert.Equal(t, atNoon(1).Format("2006-01-02"), report.Exercise[1].Date)
	assert.Equal(t, 50.0, report.Exercise[1].Value)

	require.Len(t, report.Water, 1)
	assert.Equal(t, 2.0, report.Water[0].Value)

	require.Len(t, report.Sleep, 1)
	assert.Equal(t, 7.0, report.Sleep[0].Value)
}

func TestProgressReportCapsAtThirtyDates(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "longhaul")
	svc := NewProgressService(db)

	for i := 0; i < 40; i++ {
		require.NoError(t, db.Create(&models.WaterLog{
			UserID: user.ID, Amount: 1, RecordedAt: atNoon(i),
		}).Error)
	}

	report, err := svc.Report(user.ID)
	require.NoError(t, err)

	require.Len(t, report.Water, 30)
	// the 30 kept dates are the most recent ones
	assert.Equal(t, atNoon(0).Format("2006-01-02"), report.Water[0].Date)
	assert.Equal(t, atNoon(29).Format("2006-01-02"), report.Water[29].Date)
}

func TestProgressReportIsolatedPerUser(t *testing.T) {
	db := newTestDB(t)
	a := newTestUser(t, db, "usera")
	b := newTestUser(t, db, "userb")
	svc := NewProgressService(db)

	require.NoError(t, db.Create(&models.WaterLog{UserID: a.ID, Amount: 2, RecordedAt: atNoon(0)}).Error)

	report, err := svc.Report(b.ID)
	require.NoError(t, err)
	assert.Empty(t, report.Water, fmt.Sprintf("user %d must not see user %d's logs", b.ID, a.ID))
}
