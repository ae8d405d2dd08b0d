package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/mirel/fitcoach/internal/error_values"
	"github.com/mirel/fitcoach/pkg/cleanup"
	"github.com/mirel/fitcoach/pkg/entity"
)

// ProfilesRepository reads the user_data row the identity provider keeps per
// user. The engine never creates these rows, registration lives elsewhere.
type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(cfg DBConfig) *ProfilesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for profilesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for profilesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProfilesRepository{
		conn: pool,
	}
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for profilesRepo: " + err.Error())
	}
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	var p entity.Profile
	p.UserID = uid
	row := pr.conn.QueryRow(
		ctx,
		`SELECT name, weight, height, age, activity_level, workout_goals, diet_goal, allergies, current_week, streak, last_activity_date
		FROM user_data WHERE user_id = $1;`,
		uid,
	)
	err := row.Scan(&p.Name, &p.Weight, &p.Height, &p.Age, &p.ActivityLevel, &p.WorkoutGoals, &p.DietGoal, &p.Allergies, &p.CurrentWeek, &p.Streak, &p.LastActivityDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile error: " + err.Error())
	}
	return &p, nil
}

func (pr *ProfilesRepository) SetCurrentWeek(ctx context.Context, uid uuid.UUID, week int) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE user_data SET current_week = $1 WHERE user_id = $2;`, week, uid)
	if err != nil {
		return errors.New("updating current week error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}

// StreaksRepository mutates the streak columns of user_data. Split from
// ProfilesRepository so the streak state machine depends on nothing else.
type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for streaksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StreaksRepository{
		conn: pool,
	}
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) Get(ctx context.Context, uid uuid.UUID) (int, *time.Time, error) {
	var streak int
	var lastActivity *time.Time
	row := sr.conn.QueryRow(ctx, `SELECT streak, last_activity_date FROM user_data WHERE user_id = $1;`, uid)
	if err := row.Scan(&streak, &lastActivity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil, errorvalues.ErrProfileNotFound
		}
		return 0, nil, errors.New("getting streak error: " + err.Error())
	}
	return streak, lastActivity, nil
}

func (sr *StreaksRepository) Set(ctx context.Context, uid uuid.UUID, streak int, lastActivity time.Time) error {
	ct, err := sr.conn.Exec(
		ctx,
		`UPDATE user_data SET streak = $1, last_activity_date = $2 WHERE user_id = $3;`,
		streak,
		lastActivity,
		uid,
	)
	if err != nil {
		return errors.New("updating streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}

func (sr *StreaksRepository) Reset(ctx context.Context, uid uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE user_data SET streak = 0, last_activity_date = NULL WHERE user_id = $1;`, uid)
	if err != nil {
		return errors.New("resetting streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}
