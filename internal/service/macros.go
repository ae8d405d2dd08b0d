package service

import (
	"slices"

	"github.com/mirel/fitcoach/pkg/entity"
)

var activityFactors = map[string]float64{
	entity.ActivitySedentary:  1.2,
	entity.ActivityLight:      1.375,
	entity.ActivityModerate:   1.55,
	entity.ActivityActive:     1.725,
	entity.ActivityVeryActive: 1.9,
}

// CalculateMacros derives daily caloric and macronutrient targets from the
// profile. Total function, validate the profile before calling.
func CalculateMacros(p *entity.Profile) entity.MacroTargets {
	weight := p.Weight
	age := float64(p.Age)

	bmr := 10*weight + 6.25*(age*0.9) - 5*age + 5
	if p.Age > 60 {
		bmr *= 0.9
	}
	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		factor = activityFactors[entity.ActivitySedentary]
	}
	tdee := bmr * factor

	adjustment := 0.0
	if slices.Contains(p.WorkoutGoals, entity.GoalWeightLoss) {
		adjustment = -500
	} else if slices.Contains(p.WorkoutGoals, entity.GoalMuscleGain) {
		adjustment = 500
	}
	caloricIntake := tdee + adjustment

	muscleGain := slices.Contains(p.WorkoutGoals, entity.GoalMuscleGain)
	protein := 1.2 * weight
	if muscleGain {
		protein = 2 * weight
	}
	if p.Age > 50 {
		protein = max(protein, 1.5*weight)
	}
	carbs := 2 * weight
	if muscleGain {
		carbs = 3 * weight
	}
	// Protein and carbs at 4 kcal/g, fat fills the rest at 9 kcal/g
	fats := (caloricIntake - (protein*4 + carbs*4)) / 9

	return entity.MacroTargets{
		CaloricIntake: caloricIntake,
		Protein:       protein,
		Carbs:         carbs,
		Fats:          fats,
	}
}
