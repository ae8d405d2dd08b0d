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

const dietColumns = `id, name, diet_type, calories, ingredients, meal_time, description, image_url`

type DietsRepository struct {
	conn PgConnection
}

func NewDietsRepo(cfg DBConfig) *DietsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for dietsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dietsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DietsRepository{
		conn: pool,
	}
}

func NewDietsRepoWithConn(conn PgConnection) *DietsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dietsRepo: " + err.Error())
	}
	return &DietsRepository{
		conn: conn,
	}
}

func (dr *DietsRepository) FindByFilter(ctx context.Context, filter entity.DietFilter, limit int) ([]entity.Diet, error) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if filter.DietType != "" {
		args = append(args, filter.DietType)
		conds = append(conds, fmt.Sprintf("diet_type = $%d", len(args)))
	}
	if filter.CalorieMax > 0 {
		args = append(args, filter.CalorieMin, filter.CalorieMax)
		conds = append(conds, fmt.Sprintf("calories BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}
	if len(filter.ExcludedIngredients) > 0 {
		args = append(args, filter.ExcludedIngredients)
		conds = append(conds, fmt.Sprintf("NOT (ingredients && $%d)", len(args)))
	}
	query := `SELECT ` + dietColumns + ` FROM diets`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY RANDOM() LIMIT $%d;`, len(args))

	rows, err := dr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting diets by filter error: " + err.Error())
	}
	defer rows.Close()
	diets := make([]entity.Diet, 0, limit)
	for rows.Next() {
		var d entity.Diet
		err = rows.Scan(&d.ID, &d.Name, &d.DietType, &d.Calories, &d.Ingredients, &d.MealTime, &d.Description, &d.ImageURL)
		if err != nil {
			return nil, errors.New("diet row parsing error: " + err.Error())
		}
		diets = append(diets, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected diet rows error: " + rows.Err().Error())
	}
	return diets, nil
}

func (dr *DietsRepository) FindAll(ctx context.Context) ([]entity.Diet, error) {
	rows, err := dr.conn.Query(ctx, `SELECT `+dietColumns+` FROM diets;`)
	if err != nil {
		return nil, errors.New("getting full diet catalog error: " + err.Error())
	}
	defer rows.Close()
	diets := make([]entity.Diet, 0)
	for rows.Next() {
		var d entity.Diet
		err = rows.Scan(&d.ID, &d.Name, &d.DietType, &d.Calories, &d.Ingredients, &d.MealTime, &d.Description, &d.ImageURL)
		if err != nil {
			return nil, errors.New("diet row parsing error: " + err.Error())
		}
		diets = append(diets, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected diet rows error: " + rows.Err().Error())
	}
	return diets, nil
}
