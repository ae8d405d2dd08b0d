package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mirel/fitcoach/pkg/entity"
)

type WorkoutsRepositoryI interface {
	// Samples up to limit workouts matching the filter, in random order
	FindByFilter(ctx context.Context, filter entity.WorkoutFilter, limit int) ([]entity.Workout, error)
	// Relaxed request: only a tag whitelist applies, still sampled at random
	FindFallback(ctx context.Context, tags []string, limit int) ([]entity.Workout, error)
}

type DietsRepositoryI interface {
	// Samples up to limit diets matching the filter, in random order
	FindByFilter(ctx context.Context, filter entity.DietFilter, limit int) ([]entity.Diet, error)
	// Unfiltered fallback over the whole catalog
	FindAll(ctx context.Context) ([]entity.Diet, error)
}

type UsedItemsRepositoryI interface {
	// Records an assigned item. Safe to call twice with the same
	// (user, item, kind, week), the duplicate is silently ignored
	Record(ctx context.Context, item *entity.UsedItem) error
	// Inspects if an item was already assigned for that week
	Exists(ctx context.Context, uid uuid.UUID, itemID int, kind string, week int) (bool, error)
	// Lists ids of items already assigned to uid for the given week
	ListIDs(ctx context.Context, uid uuid.UUID, kind string, week int) ([]int, error)
}

type ScheduleRepositoryI interface {
	// Replaces all assignments for (uid, week) with the given set.
	// Delete and insert run in a single transaction
	Replace(ctx context.Context, uid uuid.UUID, week int, weekStart time.Time, workouts []entity.AssignedWorkout, diets []entity.AssignedDiet) error
	// Returns assignments for (uid, week) grouped by day 1..7
	GetByWeek(ctx context.Context, uid uuid.UUID, week int) ([]entity.ScheduleDay, error)
}

type ProfilesRepositoryI interface {
	// Looks up the user's physiological and preference profile
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Advances the pointer schedule reads default to
	SetCurrentWeek(ctx context.Context, uid uuid.UUID, week int) error
}

type StreaksRepositoryI interface {
	// Returns current streak count and last activity date (nil if none)
	Get(ctx context.Context, uid uuid.UUID) (int, *time.Time, error)
	// Stores a new streak count and last activity date
	Set(ctx context.Context, uid uuid.UUID, streak int, lastActivity time.Time) error
	// Back to initial state: zero count, no last activity date
	Reset(ctx context.Context, uid uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
