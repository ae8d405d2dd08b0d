package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mirel/fitcoach/pkg/cleanup"
	"github.com/mirel/fitcoach/pkg/entity"
)

type ScheduleRepository struct {
	conn PgConnection
}

func NewScheduleRepo(cfg DBConfig) *ScheduleRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for scheduleRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for scheduleRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ScheduleRepository{
		conn: pool,
	}
}

func NewScheduleRepoWithConn(conn PgConnection) *ScheduleRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for scheduleRepo: " + err.Error())
	}
	return &ScheduleRepository{
		conn: conn,
	}
}

// Replace swaps out all assignments for (uid, week). Delete and insert happen
// inside one transaction, so a concurrent read never sees a half-replaced week.
func (sr *ScheduleRepository) Replace(ctx context.Context, uid uuid.UUID, week int, weekStart time.Time, workouts []entity.AssignedWorkout, diets []entity.AssignedDiet) error {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting schedule replace tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM user_workout_schedule WHERE user_id = $1 AND week_number = $2;`, uid, week)
	if err != nil {
		return errors.New("deleting old workout schedule error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `DELETE FROM user_diet_schedule WHERE user_id = $1 AND week_number = $2;`, uid, week)
	if err != nil {
		return errors.New("deleting old diet schedule error: " + err.Error())
	}
	for _, aw := range workouts {
		_, err = tx.Exec(
			ctx,
			`INSERT INTO user_workout_schedule (user_id, week_number, day, workout_id, week_start_date) VALUES ($1, $2, $3, $4, $5);`,
			uid, week, aw.Day, aw.Workout.ID, weekStart,
		)
		if err != nil {
			return errors.New("inserting workout assignment error: " + err.Error())
		}
	}
	for _, ad := range diets {
		_, err = tx.Exec(
			ctx,
			`INSERT INTO user_diet_schedule (user_id, week_number, day, diet_id, week_start_date) VALUES ($1, $2, $3, $4, $5);`,
			uid, week, ad.Day, ad.Diet.ID, weekStart,
		)
		if err != nil {
			return errors.New("inserting diet assignment error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing schedule replace error: " + err.Error())
	}
	return nil
}

// GetByWeek always returns exactly 7 days. Days with nothing assigned carry
// empty slices.
func (sr *ScheduleRepository) GetByWeek(ctx context.Context, uid uuid.UUID, week int) ([]entity.ScheduleDay, error) {
	days := make([]entity.ScheduleDay, 7)
	for i := range days {
		days[i] = entity.ScheduleDay{
			Day:      i + 1,
			Workouts: make([]entity.AssignedWorkout, 0),
			Diets:    make([]entity.AssignedDiet, 0),
		}
	}

	rows, err := sr.conn.Query(
		ctx,
		`SELECT s.day, w.id, w.name, w.tag, w.intensity, w.activity_level, w.duration, w.calories_burned, w.description, w.image_url, w.video_url
		FROM user_workout_schedule s JOIN workouts w ON w.id = s.workout_id
		WHERE s.user_id = $1 AND s.week_number = $2 ORDER BY s.day;`,
		uid,
		week,
	)
	if err != nil {
		return nil, errors.New("getting workout schedule error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var day int
		var w entity.Workout
		err = rows.Scan(&day, &w.ID, &w.Name, &w.Tag, &w.Intensity, &w.Level, &w.Duration, &w.CaloriesBurned, &w.Description, &w.ImageURL, &w.VideoURL)
		if err != nil {
			return nil, errors.New("workout assignment row parsing error: " + err.Error())
		}
		if day < 1 || day > 7 {
			continue
		}
		days[day-1].Workouts = append(days[day-1].Workouts, entity.AssignedWorkout{
			Day:     day,
			Week:    week,
			Workout: w,
		})
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected workout assignment rows error: " + rows.Err().Error())
	}

	dietRows, err := sr.conn.Query(
		ctx,
		`SELECT s.day, d.id, d.name, d.diet_type, d.calories, d.ingredients, d.meal_time, d.description, d.image_url
		FROM user_diet_schedule s JOIN diets d ON d.id = s.diet_id
		WHERE s.user_id = $1 AND s.week_number = $2 ORDER BY s.day;`,
		uid,
		week,
	)
	if err != nil {
		return nil, errors.New("getting diet schedule error: " + err.Error())
	}
	defer dietRows.Close()
	for dietRows.Next() {
		var day int
		var d entity.Diet
		err = dietRows.Scan(&day, &d.ID, &d.Name, &d.DietType, &d.Calories, &d.Ingredients, &d.MealTime, &d.Description, &d.ImageURL)
		if err != nil {
			return nil, errors.New("diet assignment row parsing error: " + err.Error())
		}
		if day < 1 || day > 7 {
			continue
		}
		days[day-1].Diets = append(days[day-1].Diets, entity.AssignedDiet{
			Day:  day,
			Week: week,
			Diet: d,
		})
	}
	if dietRows.Err() != nil {
		return nil, errors.New("unexpected diet assignment rows error: " + dietRows.Err().Error())
	}
	return days, nil
}
