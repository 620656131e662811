package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

// BMICategory assigns a category using gender-dependent thresholds. The
// "male" bands are <18.5 / 25 / 30; every other gender uses the narrower
// <18.5 / 24 / 29 bands. The asymmetry is deliberate and must stay.
func BMICategory(bmi float64, gender string) string {
	healthyMax, overweightMax := 24.0, 29.0
	if gender == "male" {
		healthyMax, overweightMax = 25.0, 30.0
	}

	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < healthyMax:
		return "Healthy Weight"
	case bmi < overweightMax:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMIAdvice returns the fixed, ordered advice list for a category.
func BMIAdvice(category string) []string {
	switch category {
	case "Underweight":
		return []string{
			"Consult a healthcare professional",
			"Increase caloric intake",
			"Eat frequently",
			"Focus on nutrient-rich foods",
			"Strength training",
			"Stay hydrated",
			"Avoid excessive junk food",
		}
	case "Healthy Weight":
		return []string{
			"Maintain your current healthy lifestyle",
			"Regular exercise",
			"Balanced diet",
			"Regular health checkups",
		}
	case "Overweight":
		return []string{
			"Set realistic goals",
			"Focus on nutrition",
			"Control portion sizes",
			"Eat mindfully",
			"Stay hydrated",
			"Incorporate physical activity",
			"Get enough sleep",
		}
	default: // Obese
		return []string{
			"Consult a healthcare professional",
			"Create a structured weight loss plan",
			"Regular exercise",
			"Balanced diet",
			"Regular health checkups",
		}
	}
}

// DailyCalorieNeed is a Harris-Benedict style basal estimate. No activity
// multiplier is applied.
func DailyCalorieNeed(gender string, weightKg, heightCm float64, age int) float64 {
	if gender == "male" {
		return 13.75*weightKg + 5*heightCm - 6.76*float64(age) + 66
	}
	return 9.56*weightKg + 1.85*heightCm - 4.68*float64(age) + 655
}

// ExerciseCalories estimates the burn for a session. Unknown intensities
// are treated as high.
func ExerciseCalories(durationMinutes int, intensity string) float64 {
	d := float64(durationMinutes)
	switch intensity {
	case "low":
		return d * 5
	case "medium":
		return d * 8
	default:
		return d * 12
	}
}
