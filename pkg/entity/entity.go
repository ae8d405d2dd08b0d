package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity levels accepted in user profiles
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very-active"
)

// Workout goals
const (
	GoalWeightLoss = "weight-loss"
	GoalMuscleGain = "muscle-gain"
	GoalEndurance  = "endurance"
)

type Profile struct {
	UserID           uuid.UUID  `json:"uid"`
	Name             string     `json:"name"`
	Weight           float64    `json:"weight"`
	Height           float64    `json:"height"`
	Age              int        `json:"age"`
	ActivityLevel    string     `json:"activity_level"`
	WorkoutGoals     []string   `json:"workout_goals"`
	DietGoal         string     `json:"diet_goal"`
	Allergies        []string   `json:"allergies"`
	CurrentWeek      int        `json:"current_week"`
	Streak           int        `json:"streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
}

type Workout struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Tag            string `json:"tag"`
	Intensity      string `json:"intensity"`
	Level          string `json:"activity_level"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"calories_burned"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	VideoURL       string `json:"video_url"`
}

type Diet struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DietType    string   `json:"diet_type"`
	Calories    float64  `json:"calories"`
	Ingredients []string `json:"ingredients"`
	MealTime    string   `json:"meal_time"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

// Daily targets produced by the macro calculator, grams except calories
type MacroTargets struct {
	CaloricIntake float64 `json:"caloric_intake"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fats          float64 `json:"fats"`
}

// WorkoutFilter is a structured predicate over the workout catalog. Empty
// fields mean "no constraint on this attribute".
type WorkoutFilter struct {
	Tags      []string
	Intensity string
	Level     string
}

// DietFilter constrains the diet catalog. CalorieMin/CalorieMax bound the
// calorie band, ExcludedIngredients is a "contains none of" predicate.
type DietFilter struct {
	DietType            string
	CalorieMin          float64
	CalorieMax          float64
	ExcludedIngredients []string
}

type AssignedWorkout struct {
	Day     int     `json:"day"`
	Week    int     `json:"week"`
	Workout Workout `json:"workout"`
}

type AssignedDiet struct {
	Day  int  `json:"day"`
	Week int  `json:"week"`
	Diet Diet `json:"diet"`
}

// ScheduleDay groups a single day's assignments. Days without entries hold
// empty slices, never nil, so clients always see all 7 days.
type ScheduleDay struct {
	Day      int               `json:"day"`
	Workouts []AssignedWorkout `json:"workouts"`
	Diets    []AssignedDiet    `json:"diets"`
}

// Item kinds tracked in rotation history
const (
	ItemKindWorkout = "workout"
	ItemKindDiet    = "diet"
)

type UsedItem struct {
	UserID       uuid.UUID `json:"uid"`
	ItemID       int       `json:"item_id"`
	ItemKind     string    `json:"item_kind"`
	WeekNumber   int       `json:"week_number"`
	DateAssigned time.Time `json:"date_assigned"`
}

// WeekPlan is a freshly generated recommendation: the per-day assignments
// plus the derived data they were selected from.
type WeekPlan struct {
	Week       int           `json:"week"`
	Days       []ScheduleDay `json:"days"`
	Macros     MacroTargets  `json:"macros"`
	Intensity  string        `json:"intensity"`
	Level      string        `json:"level"`
	PerWeek    int           `json:"workouts_per_week"`
	MonthQuota int           `json:"monthly_workout_quota"`
}
