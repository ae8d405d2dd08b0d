package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mirel/fitcoach/pkg/cleanup"
	"github.com/mirel/fitcoach/pkg/entity"
)

const workoutColumns = `id, name, tag, intensity, activity_level, duration, calories_burned, description, image_url, video_url`

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(cfg DBConfig) *WorkoutsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for workoutsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WorkoutsRepository{
		conn: pool,
	}
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

func (wr *WorkoutsRepository) FindByFilter(ctx context.Context, filter entity.WorkoutFilter, limit int) ([]entity.Workout, error) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if len(filter.Tags) > 0 {
		args = append(args, filter.Tags)
		conds = append(conds, fmt.Sprintf("tag = ANY($%d)", len(args)))
	}
	if filter.Intensity != "" {
		args = append(args, filter.Intensity)
		conds = append(conds, fmt.Sprintf("intensity = $%d", len(args)))
	}
	if filter.Level != "" {
		args = append(args, filter.Level)
		conds = append(conds, fmt.Sprintf("activity_level = $%d", len(args)))
	}
	query := `SELECT ` + workoutColumns + ` FROM workouts`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY RANDOM() LIMIT $%d;`, len(args))

	rows, err := wr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting workouts by filter error: " + err.Error())
	}
	defer rows.Close()
	workouts := make([]entity.Workout, 0, limit)
	for rows.Next() {
		var w entity.Workout
		err = rows.Scan(&w.ID, &w.Name, &w.Tag, &w.Intensity, &w.Level, &w.Duration, &w.CaloriesBurned, &w.Description, &w.ImageURL, &w.VideoURL)
		if err != nil {
			return nil, errors.New("workout row parsing error: " + err.Error())
		}
		workouts = append(workouts, w)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected workout rows error: " + rows.Err().Error())
	}
	return workouts, nil
}

func (wr *WorkoutsRepository) FindFallback(ctx context.Context, tags []string, limit int) ([]entity.Workout, error) {
	rows, err := wr.conn.Query(
		ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE tag = ANY($1) ORDER BY RANDOM() LIMIT $2;`,
		tags,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting fallback workouts error: " + err.Error())
	}
	defer rows.Close()
	workouts := make([]entity.Workout, 0, limit)
	for rows.Next() {
		var w entity.Workout
		err = rows.Scan(&w.ID, &w.Name, &w.Tag, &w.Intensity, &w.Level, &w.Duration, &w.CaloriesBurned, &w.Description, &w.ImageURL, &w.VideoURL)
		if err != nil {
			return nil, errors.New("workout row parsing error: " + err.Error())
		}
		workouts = append(workouts, w)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected workout rows error: " + rows.Err().Error())
	}
	return workouts, nil
}
