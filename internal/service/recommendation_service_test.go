package service_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/mirel/fitcoach/internal/error_values"
	"github.com/mirel/fitcoach/internal/repository/mocks"
	"github.com/mirel/fitcoach/internal/service"
	"github.com/mirel/fitcoach/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func testWorkouts(n int) []entity.Workout {
	workouts := make([]entity.Workout, 0, n)
	for i := 0; i < n; i++ {
		workouts = append(workouts, entity.Workout{
			ID:        i + 1,
			Name:      "workout",
			Tag:       "Cardio",
			Intensity: service.IntensityMedium,
			Level:     service.LevelIntermediate,
		})
	}
	return workouts
}

func testDiets(n int) []entity.Diet {
	diets := make([]entity.Diet, 0, n)
	for i := 0; i < n; i++ {
		diets = append(diets, entity.Diet{
			ID:       i + 1,
			Name:     "meal",
			DietType: "high-protein",
			Calories: 1500,
		})
	}
	return diets
}

func planItemIDs(plan *entity.WeekPlan) (workoutIDs, dietIDs []int) {
	for _, day := range plan.Days {
		for _, aw := range day.Workouts {
			workoutIDs = append(workoutIDs, aw.Workout.ID)
		}
		for _, ad := range day.Diets {
			dietIDs = append(dietIDs, ad.Diet.ID)
		}
	}
	return workoutIDs, dietIDs
}

func TestGeneratePlan(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	dietsRepo := mocks.NewMockDietsRepositoryI(ctrl)
	usedRepo := mocks.NewMockUsedItemsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewRecommendationService(workoutsRepo, dietsRepo, usedRepo, profilesRepo, rand.New(rand.NewSource(42)))

	uid := uuid.New()
	profile := entity.Profile{
		UserID:        uid,
		Weight:        70,
		Age:           30,
		ActivityLevel: entity.ActivityModerate,
		WorkoutGoals:  []string{entity.GoalMuscleGain},
		DietGoal:      "high-protein",
		CurrentWeek:   2,
	}

	profilesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&profile, nil)
	usedRepo.EXPECT().ListIDs(gomock.Any(), uid, entity.ItemKindWorkout, 2).Return([]int{}, nil)
	workoutsRepo.EXPECT().FindByFilter(gomock.Any(), gomock.Any(), 16).Return(testWorkouts(16), nil)
	usedRepo.EXPECT().ListIDs(gomock.Any(), uid, entity.ItemKindDiet, 2).Return([]int{}, nil)
	dietsRepo.EXPECT().FindByFilter(gomock.Any(), gomock.Any(), service.MealsPerMonth).Return(testDiets(3), nil)

	plan, err := serv.GeneratePlan(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.Week)
	assert.Equal(t, 4, plan.PerWeek)
	assert.Equal(t, 16, plan.MonthQuota)
	assert.Equal(t, service.IntensityMedium, plan.Intensity)
	assert.Equal(t, service.LevelIntermediate, plan.Level)
	assert.InDelta(t, 723.75*1.55+500, plan.Macros.CaloricIntake, 0.001)
	require.Len(t, plan.Days, 7)
	for i, day := range plan.Days {
		assert.Equal(t, i+1, day.Day)
		assert.NotNil(t, day.Workouts)
		assert.NotNil(t, day.Diets)
	}
	workoutIDs, dietIDs := planItemIDs(plan)
	assert.Len(t, workoutIDs, 4)
	assert.Len(t, dietIDs, 3)
	// at most one workout per day when the weekly count fits the grid
	for _, day := range plan.Days {
		assert.LessOrEqual(t, len(day.Workouts), 1)
	}
}

func TestGeneratePlanProfileErrors(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	dietsRepo := mocks.NewMockDietsRepositoryI(ctrl)
	usedRepo := mocks.NewMockUsedItemsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewRecommendationService(workoutsRepo, dietsRepo, usedRepo, profilesRepo, rand.New(rand.NewSource(1)))

	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "error profile not found",
			Error: errorvalues.ErrProfileNotFound,
			MockPrepFunc: func() {
				profilesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(nil, errorvalues.ErrProfileNotFound)
			},
		},
		{
			Desc:  "error invalid profile age",
			Error: errorvalues.ErrInvalidProfile,
			MockPrepFunc: func() {
				profilesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.Profile{
					UserID:        uid,
					Weight:        70,
					Age:           5,
					ActivityLevel: entity.ActivityModerate,
				}, nil)
			},
		},
		{
			Desc:  "error invalid activity level",
			Error: errorvalues.ErrInvalidProfile,
			MockPrepFunc: func() {
				profilesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.Profile{
					UserID:        uid,
					Weight:        70,
					Age:           30,
					ActivityLevel: "couch",
				}, nil)
			},
		},
		{
			Desc:  "error missing weight",
			Error: errorvalues.ErrInvalidProfile,
			MockPrepFunc: func() {
				profilesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.Profile{
					UserID:        uid,
					Age:           30,
					ActivityLevel: entity.ActivityModerate,
				}, nil)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			plan, err := serv.GeneratePlan(ctx, uid)
			assert.Nil(t, plan)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestGeneratePlanWorkoutFallback(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	dietsRepo := mocks.NewMockDietsRepositoryI(ctrl)
	usedRepo := mocks.NewMockUsedItemsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewRecommendationService(workoutsRepo, dietsRepo, usedRepo, profilesRepo, rand.New(rand.NewSource(7)))

	uid := uuid.New()
	profile := entity.Profile{
		UserID:        uid,
		Weight:        70,
		Age:           30,
		ActivityLevel: entity.ActivitySedentary,
		WorkoutGoals:  []string{entity.GoalWeightLoss},
		CurrentWeek:   1,
	}

	// primary constrained request is empty, the relaxed whitelist request fills in
	profilesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&profile, nil)
	usedRepo.EXPECT().ListIDs(gomock.Any(), uid, entity.ItemKindWorkout, 1).Return([]int{}, nil)
	workoutsRepo.EXPECT().FindByFilter(gomock.Any(), gomock.Any(), 4).Return([]entity.Workout{}, nil)
	workoutsRepo.EXPECT().FindFallback(gomock.Any(), service.FallbackWorkoutTags, 4).Return(testWorkouts(4), nil)
	usedRepo.EXPECT().ListIDs(gomock.Any(), uid, entity.ItemKindDiet, 1).Return([]int{}, nil)
	dietsRepo.EXPECT().FindByFilter(gomock.Any(), gomock.Any(), service.MealsPerMonth).Return(testDiets(3), nil)

	plan, err := serv.GeneratePlan(context.Background(), uid)
	require.NoError(t, err)
	workoutIDs, _ := planItemIDs(plan)
	assert.NotEmpty(t, workoutIDs)
}

func TestGeneratePlanRotationExcludesUsed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	dietsRepo := mocks.NewMockDietsRepositoryI(ctrl)
	usedRepo := mocks.NewMockUsedItemsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewRecommendationService(workoutsRepo, dietsRepo, usedRepo, profilesRepo, rand.New(rand.NewSource(3)))

	uid := uuid.New()
	profile := entity.Profile{
		UserID:        uid,
		Weight:        70,
		Age:           30,
		ActivityLevel: entity.ActivitySedentary,
		WorkoutGoals:  []string{entity.GoalWeightLoss},
		CurrentWeek:   2,
	}

	profilesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&profile, nil)
	usedRepo.EXPECT().ListIDs(gomock.Any(), uid, entity.ItemKindWorkout, 2).Return([]int{1, 2}, nil)
	workoutsRepo.EXPECT().FindByFilter(gomock.Any(), gomock.Any(), 4).Return(testWorkouts(4), nil)
	usedRepo.EXPECT().ListIDs(gomock.Any(), uid, entity.ItemKindDiet, 2).Return([]int{1}, nil)
	dietsRepo.EXPECT().FindByFilter(gomock.Any(), gomock.Any(), service.MealsPerMonth).Return(testDiets(3), nil)

	plan, err := serv.GeneratePlan(context.Background(), uid)
	require.NoError(t, err)
	workoutIDs, dietIDs := planItemIDs(plan)
	assert.NotContains(t, workoutIDs, 1)
	assert.NotContains(t, workoutIDs, 2)
	assert.NotContains(t, dietIDs, 1)
}

func TestGeneratePlanNoCandidates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	dietsRepo := mocks.NewMockDietsRepositoryI(ctrl)
	usedRepo := mocks.NewMockUsedItemsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewRecommendationService(workoutsRepo, dietsRepo, usedRepo, profilesRepo, rand.New(rand.NewSource(5)))

	uid := uuid.New()
	profile := entity.Profile{
		UserID:        uid,
		Weight:        70,
		Age:           30,
		ActivityLevel: entity.ActivitySedentary,
		CurrentWeek:   1,
	}

	profilesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&profile, nil)
	usedRepo.EXPECT().ListIDs(gomock.Any(), uid, entity.ItemKindWorkout, 1).Return([]int{}, nil)
	workoutsRepo.EXPECT().FindByFilter(gomock.Any(), gomock.Any(), 4).Return([]entity.Workout{}, nil)
	workoutsRepo.EXPECT().FindFallback(gomock.Any(), service.FallbackWorkoutTags, 4).Return([]entity.Workout{}, nil)

	plan, err := serv.GeneratePlan(context.Background(), uid)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, errorvalues.ErrNoCandidates)
}

func TestGeneratePlanDietFallbackToCatalog(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)
	dietsRepo := mocks.NewMockDietsRepositoryI(ctrl)
	usedRepo := mocks.NewMockUsedItemsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewRecommendationService(workoutsRepo, dietsRepo, usedRepo, profilesRepo, rand.New(rand.NewSource(9)))

	uid := uuid.New()
	profile := entity.Profile{
		UserID:        uid,
		Weight:        70,
		Age:           30,
		ActivityLevel: entity.ActivitySedentary,
		WorkoutGoals:  []string{entity.GoalWeightLoss},
		CurrentWeek:   1,
	}

	profilesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&profile, nil)
	usedRepo.EXPECT().ListIDs(gomock.Any(), uid, entity.ItemKindWorkout, 1).Return([]int{}, nil)
	workoutsRepo.EXPECT().FindByFilter(gomock.Any(), gomock.Any(), 4).Return(testWorkouts(4), nil)
	usedRepo.EXPECT().ListIDs(gomock.Any(), uid, entity.ItemKindDiet, 1).Return([]int{}, nil)
	dietsRepo.EXPECT().FindByFilter(gomock.Any(), gomock.Any(), service.MealsPerMonth).Return([]entity.Diet{}, nil)
	dietsRepo.EXPECT().FindAll(gomock.Any()).Return(testDiets(10), nil)

	plan, err := serv.GeneratePlan(context.Background(), uid)
	require.NoError(t, err)
	_, dietIDs := planItemIDs(plan)
	assert.Len(t, dietIDs, service.MealsPerMonth)
}
