package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/mirel/fitcoach/internal/error_values"
	"github.com/mirel/fitcoach/internal/repository"
	"github.com/mirel/fitcoach/pkg/entity"
)

type RecommendationService struct {
	workoutsRepo repository.WorkoutsRepositoryI
	dietsRepo    repository.DietsRepositoryI
	usedRepo     repository.UsedItemsRepositoryI
	profilesRepo repository.ProfilesRepositoryI
	rng          *rand.Rand
}

// NewRecommendationService wires the selector. rng may be nil, then a
// time-seeded source is used; tests pass a fixed seed.
func NewRecommendationService(
	workoutsRepo repository.WorkoutsRepositoryI,
	dietsRepo repository.DietsRepositoryI,
	usedRepo repository.UsedItemsRepositoryI,
	profilesRepo repository.ProfilesRepositoryI,
	rng *rand.Rand,
) *RecommendationService {
	if workoutsRepo == nil || dietsRepo == nil || usedRepo == nil || profilesRepo == nil {
		log.Fatal("on recommendation service provided nil repos")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RecommendationService{
		workoutsRepo: workoutsRepo,
		dietsRepo:    dietsRepo,
		usedRepo:     usedRepo,
		profilesRepo: profilesRepo,
		rng:          rng,
	}
}

func (rs *RecommendationService) GeneratePlan(ctx context.Context, uid uuid.UUID) (*entity.WeekPlan, error) {
	profile, err := rs.profilesRepo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	macros := CalculateMacros(profile)
	workoutFilter := DeriveWorkoutFilter(profile)
	dietFilter := DeriveDietFilter(profile, macros)
	perWeek := WorkoutsPerWeek(profile.ActivityLevel)
	quota := MonthlyWorkoutQuota(profile.ActivityLevel)

	week := profile.CurrentWeek
	if week < 1 {
		week = 1
	}

	workouts, err := rs.selectWorkouts(ctx, uid, week, workoutFilter, perWeek, quota)
	if err != nil {
		return nil, err
	}
	diets, err := rs.selectDiets(ctx, uid, week, dietFilter)
	if err != nil {
		return nil, err
	}

	return &entity.WeekPlan{
		Week:       week,
		Days:       rs.buildDays(week, perWeek, workouts, diets),
		Macros:     macros,
		Intensity:  workoutFilter.Intensity,
		Level:      workoutFilter.Level,
		PerWeek:    perWeek,
		MonthQuota: quota,
	}, nil
}

// selectWorkouts runs the constrained request, drops items already used this
// week, and tops up from the relaxed tag-whitelist request when the week
// would be under-filled. Empty results from both requests are a hard failure.
func (rs *RecommendationService) selectWorkouts(ctx context.Context, uid uuid.UUID, week int, filter entity.WorkoutFilter, perWeek, quota int) ([]entity.Workout, error) {
	usedIDs, err := rs.usedRepo.ListIDs(ctx, uid, entity.ItemKindWorkout, week)
	if err != nil {
		return nil, errors.New("used items repository error: " + err.Error())
	}
	used := make(map[int]struct{}, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = struct{}{}
	}

	primary, err := rs.workoutsRepo.FindByFilter(ctx, filter, quota)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	pool := make([]entity.Workout, 0, quota)
	seen := make(map[int]struct{}, quota)
	for _, w := range primary {
		if _, ok := used[w.ID]; ok {
			continue
		}
		pool = append(pool, w)
		seen[w.ID] = struct{}{}
	}

	if len(pool) < perWeek {
		fallback, err := rs.workoutsRepo.FindFallback(ctx, FallbackWorkoutTags, quota)
		if err != nil {
			return nil, errors.New("workouts repository error: " + err.Error())
		}
		for _, w := range fallback {
			if len(pool) >= quota {
				break
			}
			if _, ok := seen[w.ID]; ok {
				continue
			}
			if _, ok := used[w.ID]; ok {
				continue
			}
			pool = append(pool, w)
			seen[w.ID] = struct{}{}
		}
		// Rotation yields to availability: an exhausted history must not
		// leave the user with an empty week while the catalog has rows
		if len(pool) == 0 {
			pool = fallback
		}
	}
	if len(pool) == 0 {
		return nil, errorvalues.ErrNoCandidates
	}
	return pool, nil
}

// selectDiets mirrors selectWorkouts, but the fallback drops every filter
// and offers the whole catalog.
func (rs *RecommendationService) selectDiets(ctx context.Context, uid uuid.UUID, week int, filter entity.DietFilter) ([]entity.Diet, error) {
	usedIDs, err := rs.usedRepo.ListIDs(ctx, uid, entity.ItemKindDiet, week)
	if err != nil {
		return nil, errors.New("used items repository error: " + err.Error())
	}
	used := make(map[int]struct{}, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = struct{}{}
	}

	primary, err := rs.dietsRepo.FindByFilter(ctx, filter, MealsPerMonth)
	if err != nil {
		return nil, errors.New("diets repository error: " + err.Error())
	}
	pool := make([]entity.Diet, 0, MealsPerMonth)
	for _, d := range primary {
		if _, ok := used[d.ID]; ok {
			continue
		}
		pool = append(pool, d)
	}

	if len(pool) == 0 {
		catalog, err := rs.dietsRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.New("diets repository error: " + err.Error())
		}
		for _, d := range catalog {
			if _, ok := used[d.ID]; ok {
				continue
			}
			pool = append(pool, d)
		}
		if len(pool) == 0 {
			pool = catalog
		}
	}
	if len(pool) == 0 {
		return nil, errorvalues.ErrNoCandidates
	}
	if len(pool) > MealsPerMonth {
		rs.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		pool = pool[:MealsPerMonth]
	}
	return pool, nil
}

// buildDays spreads the selected candidates over the 7 day grid: the weekly
// workout count worth of items on distinct random days, meals likewise.
// Every day is present in the result even when nothing lands on it.
func (rs *RecommendationService) buildDays(week, perWeek int, workouts []entity.Workout, diets []entity.Diet) []entity.ScheduleDay {
	days := make([]entity.ScheduleDay, 7)
	for i := range days {
		days[i] = entity.ScheduleDay{
			Day:      i + 1,
			Workouts: make([]entity.AssignedWorkout, 0),
			Diets:    make([]entity.AssignedDiet, 0),
		}
	}

	workoutCount := min(perWeek, len(workouts))
	workoutDays := rs.pickDays(workoutCount)
	for i := 0; i < workoutCount; i++ {
		day := workoutDays[i]
		days[day-1].Workouts = append(days[day-1].Workouts, entity.AssignedWorkout{
			Day:     day,
			Week:    week,
			Workout: workouts[i],
		})
	}

	mealCount := min(MealsPerMonth, len(diets))
	mealDays := rs.pickDays(mealCount)
	for i := 0; i < mealCount; i++ {
		day := mealDays[i]
		days[day-1].Diets = append(days[day-1].Diets, entity.AssignedDiet{
			Day:  day,
			Week: week,
			Diet: diets[i],
		})
	}
	return days
}

// pickDays draws n distinct days from 1..7 in ascending order
func (rs *RecommendationService) pickDays(n int) []int {
	perm := rs.rng.Perm(7)
	picked := make([]int, n)
	for i := 0; i < n; i++ {
		picked[i] = perm[i] + 1
	}
	sort.Ints(picked)
	return picked
}
