package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 70.0/(1.75*1.75), bmi, 1e-9)

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)
	_, err = CalculateBMI(175, -1)
	assert.Error(t, err)
}

func TestBMICategoryGenderThresholds(t *testing.T) {
	tests := []struct {
		bmi    float64
		gender string
		want   string
	}{
		{17.0, "male", "Underweight"},
		{18.5, "male", "Healthy Weight"},
		{24.5, "male", "Healthy Weight"},
		{24.5, "female", "Overweight"}, // narrower band for non-male
		{25.0, "male", "Overweight"},
		{24.0, "other", "Overweight"},
		{29.0, "other", "Obese"},
		{29.5, "male", "Overweight"},
		{30.0, "male", "Obese"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, BMICategory(tc.bmi, tc.gender),
			"bmi=%v gender=%s", tc.bmi, tc.gender)
	}
}

func TestBMIAdvice(t *testing.T) {
	advice := BMIAdvice("Healthy Weight")
	require.Len(t, advice, 4)
	assert.Equal(t, "Maintain your current healthy lifestyle", advice[0])

	assert.Len(t, BMIAdvice("Underweight"), 7)
	assert.Len(t, BMIAdvice("Overweight"), 7)
	assert.Len(t, BMIAdvice("Obese"), 5)
}

func TestDailyCalorieNeed(t *testing.T) {
	// 13.75*70 + 5*175 - 6.76*30 + 66 = 1700.7
	assert.InDelta(t, 13.75*70+5*175-6.76*30+66, DailyCalorieNeed("male", 70, 175, 30), 1e-9)

	// 9.56*70 + 1.85*175 - 4.68*30 + 655 = 1507.55
	assert.InDelta(t, 9.56*70+1.85*175-4.68*30+655, DailyCalorieNeed("female", 70, 175, 30), 1e-9)
}

func TestExerciseCalories(t *testing.T) {
	assert.Equal(t, 150.0, ExerciseCalories(30, "low"))
	assert.Equal(t, 240.0, ExerciseCalories(30, "medium"))
	assert.Equal(t, 360.0, ExerciseCalories(30, "high"))
	// anything unknown counts as high
	assert.Equal(t, 360.0, ExerciseCalories(30, "extreme"))
}
