package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

type markerRepository struct {
	storage *Storage
}

func (r *markerRepository) Get(ctx context.Context) (model.CyclePeriod, error) {
	const query = `SELECT year, month FROM payment_cycle WHERE id=1`
	var year, month int
	err := r.storage.pool.QueryRow(ctx, query).Scan(&year, &month)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.CyclePeriod{}, nil
	}
	if err != nil {
		return model.CyclePeriod{}, storeErr("get reset marker", err)
	}
	return model.CyclePeriod{Year: year, Month: time.Month(month)}, nil
}

func (r *markerRepository) Set(ctx context.Context, period model.CyclePeriod) error {
	const query = `INSERT INTO payment_cycle (id, year, month) VALUES (1, $1, $2)
        ON CONFLICT (id) DO UPDATE SET year=EXCLUDED.year, month=EXCLUDED.month, updated_at=NOW()`
	if _, err := r.storage.pool.Exec(ctx, query, period.Year, int(period.Month)); err != nil {
		return storeErr("set reset marker", err)
	}
	return nil
}
