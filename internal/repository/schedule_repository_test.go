package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mirel/fitcoach/internal/repository"
	"github.com/mirel/fitcoach/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	deleteWorkoutsQuery = regexp.QuoteMeta(`DELETE FROM user_workout_schedule WHERE user_id = $1 AND week_number = $2;`)
	deleteDietsQuery    = regexp.QuoteMeta(`DELETE FROM user_diet_schedule WHERE user_id = $1 AND week_number = $2;`)
	insertWorkoutQuery  = regexp.QuoteMeta(`INSERT INTO user_workout_schedule (user_id, week_number, day, workout_id, week_start_date) VALUES ($1, $2, $3, $4, $5);`)
	insertDietQuery     = regexp.QuoteMeta(`INSERT INTO user_diet_schedule (user_id, week_number, day, diet_id, week_start_date) VALUES ($1, $2, $3, $4, $5);`)
)

func TestReplaceSchedule(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	scheduleRepo := repository.NewScheduleRepoWithConn(mock)
	uid := uuid.New()
	weekStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	workouts := []entity.AssignedWorkout{
		{Day: 1, Week: 2, Workout: entity.Workout{ID: 11}},
		{Day: 3, Week: 2, Workout: entity.Workout{ID: 12}},
	}
	diets := []entity.AssignedDiet{
		{Day: 2, Week: 2, Diet: entity.Diet{ID: 21}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(deleteWorkoutsQuery).WithArgs(uid, 2).WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec(deleteDietsQuery).WithArgs(uid, 2).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(insertWorkoutQuery).WithArgs(uid, 2, 1, 11, weekStart).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(insertWorkoutQuery).WithArgs(uid, 2, 3, 12, weekStart).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(insertDietQuery).WithArgs(uid, 2, 2, 21, weekStart).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	assert.NoError(t, scheduleRepo.Replace(context.Background(), uid, 2, weekStart, workouts, diets))
}

func TestReplaceScheduleRollsBackOnFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	scheduleRepo := repository.NewScheduleRepoWithConn(mock)
	uid := uuid.New()
	weekStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	workouts := []entity.AssignedWorkout{{Day: 1, Week: 2, Workout: entity.Workout{ID: 11}}}

	mock.ExpectBegin()
	mock.ExpectExec(deleteWorkoutsQuery).WithArgs(uid, 2).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(deleteDietsQuery).WithArgs(uid, 2).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(insertWorkoutQuery).WithArgs(uid, 2, 1, 11, weekStart).WillReturnError(errors.New("db error"))
	mock.ExpectRollback()

	err = scheduleRepo.Replace(context.Background(), uid, 2, weekStart, workouts, nil)
	assert.EqualError(t, err, "inserting workout assignment error: db error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetScheduleByWeek(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	scheduleRepo := repository.NewScheduleRepoWithConn(mock)
	uid := uuid.New()

	workoutRows := pgxmock.NewRows([]string{"day", "id", "name", "tag", "intensity", "activity_level", "duration", "calories_burned", "description", "image_url", "video_url"}).
		AddRow(1, 11, "run", "Cardio", "Medium", "Intermediate", 30, 250, "", "", "").
		AddRow(1, 12, "rows", "Strength Training", "Medium", "Intermediate", 25, 180, "", "", "").
		AddRow(5, 13, "hill sprints", "HIIT", "High", "Advanced", 20, 300, "", "", "")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM user_workout_schedule s JOIN workouts w ON w.id = s.workout_id`)).
		WithArgs(uid, 4).
		WillReturnRows(workoutRows)

	dietRows := pgxmock.NewRows([]string{"day", "id", "name", "diet_type", "calories", "ingredients", "meal_time", "description", "image_url"}).
		AddRow(2, 21, "bowl", "balanced", 1500.0, []string{"rice", "beans"}, "lunch", "", "")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM user_diet_schedule s JOIN diets d ON d.id = s.diet_id`)).
		WithArgs(uid, 4).
		WillReturnRows(dietRows)

	days, err := scheduleRepo.GetByWeek(context.Background(), uid, 4)
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Len(t, days[0].Workouts, 2)
	assert.Len(t, days[4].Workouts, 1)
	assert.Equal(t, 13, days[4].Workouts[0].Workout.ID)
	assert.Equal(t, 4, days[4].Workouts[0].Week)
	assert.Len(t, days[1].Diets, 1)
	assert.Equal(t, "balanced", days[1].Diets[0].Diet.DietType)

	// untouched days still come back, just empty
	assert.Empty(t, days[6].Workouts)
	assert.Empty(t, days[6].Diets)
}
