package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mirel/fitcoach/pkg/entity"
)

type SaveScheduleRequest struct {
	Week          int `validate:"required,min=1"`
	WeekStartDate time.Time
	Days          []entity.ScheduleDay `validate:"required,max=7,dive"`
}

type RecommendationServiceI interface {
	// Reads the latest profile and produces a fresh weekly plan: macro
	// targets, derived constraints and a per-day candidate assignment.
	// Previously used items for the target week are excluded
	GeneratePlan(ctx context.Context, uid uuid.UUID) (*entity.WeekPlan, error)
}

type ScheduleServiceI interface {
	// Replaces the stored schedule for the request's week, records every
	// assigned item in rotation history and advances the current week pointer
	SaveSchedule(ctx context.Context, uid uuid.UUID, req *SaveScheduleRequest) error
	// Returns the current week's schedule grouped by day 1..7
	GetSchedule(ctx context.Context, uid uuid.UUID) ([]entity.ScheduleDay, error)
	// Lists item ids already assigned to the user for the given week
	GetUsedItemIDs(ctx context.Context, uid uuid.UUID, kind string, week int) ([]int, error)
}

type StreakServiceI interface {
	GetStreak(ctx context.Context, uid uuid.UUID) (int, *time.Time, error)
	// Applies one activity event dated today and returns the new count
	UpdateStreak(ctx context.Context, uid uuid.UUID, today time.Time) (int, error)
	// Back to zero count and no last activity date, whatever the prior state
	ResetStreak(ctx context.Context, uid uuid.UUID) error
}
