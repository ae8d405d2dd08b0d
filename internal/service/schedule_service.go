package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/mirel/fitcoach/internal/error_values"
	"github.com/mirel/fitcoach/internal/repository"
	"github.com/mirel/fitcoach/pkg/entity"
)

type ScheduleService struct {
	scheduleRepo repository.ScheduleRepositoryI
	usedRepo     repository.UsedItemsRepositoryI
	profilesRepo repository.ProfilesRepositoryI
}

func NewScheduleService(
	scheduleRepo repository.ScheduleRepositoryI,
	usedRepo repository.UsedItemsRepositoryI,
	profilesRepo repository.ProfilesRepositoryI,
) *ScheduleService {
	if scheduleRepo == nil || usedRepo == nil || profilesRepo == nil {
		log.Fatal("on schedule service provided nil repos")
	}
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		usedRepo:     usedRepo,
		profilesRepo: profilesRepo,
	}
}

// SaveSchedule replaces the stored assignments for the request's week,
// advances the current week pointer and records every assigned item in the
// rotation history. Day tags come from the caller and are persisted as given.
func (ss *ScheduleService) SaveSchedule(ctx context.Context, uid uuid.UUID, req *SaveScheduleRequest) error {
	if err := validate.Struct(*req); err != nil {
		return errors.Join(errorvalues.ErrEmptySchedule, err)
	}
	workouts := make([]entity.AssignedWorkout, 0)
	diets := make([]entity.AssignedDiet, 0)
	for _, day := range req.Days {
		if day.Day < 1 || day.Day > 7 {
			return errorvalues.ErrEmptySchedule
		}
		for _, aw := range day.Workouts {
			aw.Day = day.Day
			aw.Week = req.Week
			workouts = append(workouts, aw)
		}
		for _, ad := range day.Diets {
			ad.Day = day.Day
			ad.Week = req.Week
			diets = append(diets, ad)
		}
	}
	if len(workouts) == 0 && len(diets) == 0 {
		return errorvalues.ErrEmptySchedule
	}

	err := ss.scheduleRepo.Replace(ctx, uid, req.Week, req.WeekStartDate, workouts, diets)
	if err != nil {
		return errors.New("schedule repository error: " + err.Error())
	}
	err = ss.profilesRepo.SetCurrentWeek(ctx, uid, req.Week)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return err
		}
		return errors.New("profiles repository error: " + err.Error())
	}
	for _, aw := range workouts {
		err = ss.usedRepo.Record(ctx, &entity.UsedItem{
			UserID:       uid,
			ItemID:       aw.Workout.ID,
			ItemKind:     entity.ItemKindWorkout,
			WeekNumber:   req.Week,
			DateAssigned: req.WeekStartDate,
		})
		if err != nil {
			return errors.New("used items repository error: " + err.Error())
		}
	}
	for _, ad := range diets {
		err = ss.usedRepo.Record(ctx, &entity.UsedItem{
			UserID:       uid,
			ItemID:       ad.Diet.ID,
			ItemKind:     entity.ItemKindDiet,
			WeekNumber:   req.Week,
			DateAssigned: req.WeekStartDate,
		})
		if err != nil {
			return errors.New("used items repository error: " + err.Error())
		}
	}
	return nil
}

// GetSchedule reads the week the profile's pointer names and returns it
// grouped by day 1..7
func (ss *ScheduleService) GetSchedule(ctx context.Context, uid uuid.UUID) ([]entity.ScheduleDay, error) {
	profile, err := ss.profilesRepo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	week := profile.CurrentWeek
	if week < 1 {
		week = 1
	}
	days, err := ss.scheduleRepo.GetByWeek(ctx, uid, week)
	if err != nil {
		return nil, errors.New("schedule repository error: " + err.Error())
	}
	return days, nil
}

func (ss *ScheduleService) GetUsedItemIDs(ctx context.Context, uid uuid.UUID, kind string, week int) ([]int, error) {
	if kind != entity.ItemKindWorkout && kind != entity.ItemKindDiet {
		kind = entity.ItemKindWorkout
	}
	ids, err := ss.usedRepo.ListIDs(ctx, uid, kind, week)
	if err != nil {
		return nil, errors.New("used items repository error: " + err.Error())
	}
	return ids, nil
}
