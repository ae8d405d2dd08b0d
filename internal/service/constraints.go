package service

import (
	"slices"

	"github.com/mirel/fitcoach/pkg/entity"
)

const (
	IntensityLow    = "Low"
	IntensityMedium = "Medium"
	IntensityHigh   = "High"

	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// MealsPerMonth is the fixed meal selection quota
const MealsPerMonth = 3

// Allowed workout tags per goal. First matching goal wins, checked in
// weight-loss -> muscle-gain -> endurance order.
var goalTags = []struct {
	goal string
	tags []string
}{
	{entity.GoalWeightLoss, []string{
		"Cardio", "HIIT", "Endurance", "Strength Training", "Core", "Functional",
		"Flexibility", "Balance", "Recovery", "Yoga", "Pilates",
	}},
	{entity.GoalMuscleGain, []string{
		"Strength Training", "Core", "Functional", "HIIT", "Endurance", "Cardio",
		"Flexibility", "Balance", "Recovery", "Yoga", "Pilates",
	}},
	{entity.GoalEndurance, []string{
		"Endurance", "Cardio", "Sports", "Strength Training", "Functional", "Core",
		"Flexibility", "Recovery", "Yoga", "Pilates",
	}},
}

// FallbackWorkoutTags is the whitelist used when the constrained request
// under-fills the quota
var FallbackWorkoutTags = []string{
	"Cardio", "Strength Training", "HIIT", "Endurance", "Functional",
	"Core", "Flexibility", "Recovery", "Yoga", "Pilates",
}

// DeriveWorkoutFilter maps the profile onto a structured workout predicate
func DeriveWorkoutFilter(p *entity.Profile) entity.WorkoutFilter {
	var filter entity.WorkoutFilter
	for _, gt := range goalTags {
		if slices.Contains(p.WorkoutGoals, gt.goal) {
			filter.Tags = gt.tags
			break
		}
	}

	switch {
	case p.Age > 50:
		filter.Intensity = IntensityLow
	case p.ActivityLevel == entity.ActivityVeryActive:
		filter.Intensity = IntensityHigh
	case p.ActivityLevel == entity.ActivitySedentary || p.ActivityLevel == entity.ActivityLight:
		filter.Intensity = IntensityLow
	case p.ActivityLevel == entity.ActivityModerate || p.ActivityLevel == entity.ActivityActive:
		filter.Intensity = IntensityMedium
	default:
		filter.Intensity = IntensityLow
	}

	switch {
	case p.Weight > 100:
		filter.Level = LevelAdvanced
	case p.Weight < 60:
		filter.Level = LevelBeginner
	default:
		filter.Level = LevelIntermediate
	}
	return filter
}

// DeriveDietFilter builds the diet predicate: exact diet type, a +-500 kcal
// band around the caloric target, and the user's allergens excluded
func DeriveDietFilter(p *entity.Profile, macros entity.MacroTargets) entity.DietFilter {
	return entity.DietFilter{
		DietType:            p.DietGoal,
		CalorieMin:          macros.CaloricIntake - 500,
		CalorieMax:          macros.CaloricIntake + 500,
		ExcludedIngredients: p.Allergies,
	}
}

// WorkoutsPerWeek is a step function of the activity level. Unknown levels
// get the sedentary count.
func WorkoutsPerWeek(activityLevel string) int {
	switch activityLevel {
	case entity.ActivitySedentary:
		return 1
	case entity.ActivityLight:
		return 2
	case entity.ActivityModerate:
		return 4
	case entity.ActivityActive:
		return 6
	case entity.ActivityVeryActive:
		return 7
	}
	return 1
}

// MonthlyWorkoutQuota multiplies the weekly count over a 4 week rotation
func MonthlyWorkoutQuota(activityLevel string) int {
	return WorkoutsPerWeek(activityLevel) * 4
}
