package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRecordSnapshotsDerivedValues(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "snapshot") // 175cm/70kg/30y male
	svc := NewHealthRecordService(db)

	rec, err := svc.Record(user, HealthRecordInput{
		Temperature:      36.8,
		HealthRating:     8,
		CaloriesConsumed: 2100,
	})
	require.NoError(t, err)

	assert.InDelta(t, 70.0/(1.75*1.75), rec.BMI, 1e-9)
	assert.InDelta(t, 13.75*70+5*175-6.76*30+66, rec.CaloriesNeeded, 1e-9)
	assert.Equal(t, 36.8, rec.Temperature)

	recs, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
}
