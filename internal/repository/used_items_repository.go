package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mirel/fitcoach/pkg/cleanup"
	"github.com/mirel/fitcoach/pkg/entity"
)

type UsedItemsRepository struct {
	conn PgConnection
}

func NewUsedItemsRepo(cfg DBConfig) *UsedItemsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usedItemsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usedItemsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsedItemsRepository{
		conn: pool,
	}
}

func NewUsedItemsRepoWithConn(conn PgConnection) *UsedItemsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usedItemsRepo: " + err.Error())
	}
	return &UsedItemsRepository{
		conn: conn,
	}
}

// Record is idempotent: re-recording the same (user, item, kind, week) is a no-op
func (ur *UsedItemsRepository) Record(ctx context.Context, item *entity.UsedItem) error {
	if item == nil {
		return errors.New("used item is nil")
	}
	_, err := ur.conn.Exec(
		ctx,
		`INSERT INTO used_items (user_id, item_id, item_kind, week_number, date_assigned) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, item_id, item_kind, week_number) DO NOTHING;`,
		item.UserID,
		item.ItemID,
		item.ItemKind,
		item.WeekNumber,
		item.DateAssigned,
	)
	if err != nil {
		return errors.New("recording used item error: " + err.Error())
	}
	return nil
}

func (ur *UsedItemsRepository) Exists(ctx context.Context, uid uuid.UUID, itemID int, kind string, week int) (bool, error) {
	var exists bool
	row := ur.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM used_items WHERE user_id = $1 AND item_id = $2 AND item_kind = $3 AND week_number = $4);`,
		uid,
		itemID,
		kind,
		week,
	)
	err := row.Scan(&exists)
	if err != nil {
		return false, errors.New("inspecting if item was used error: " + err.Error())
	}
	return exists, nil
}

func (ur *UsedItemsRepository) ListIDs(ctx context.Context, uid uuid.UUID, kind string, week int) ([]int, error) {
	rows, err := ur.conn.Query(
		ctx,
		`SELECT item_id FROM used_items WHERE user_id = $1 AND item_kind = $2 AND week_number = $3;`,
		uid,
		kind,
		week,
	)
	if err != nil {
		return nil, errors.New("getting used item ids error: " + err.Error())
	}
	defer rows.Close()
	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("used item row parsing error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected used item rows error: " + rows.Err().Error())
	}
	return ids, nil
}
