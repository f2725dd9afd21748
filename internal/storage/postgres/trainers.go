package postgres

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/gymkeeper/internal/domain/errors"
	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

const trainerColumns = `id, name, phone, specialty, photo_path, created_at, updated_at`

type trainerRepository struct {
	storage *Storage
}

func scanTrainer(row rowScanner) (*model.Trainer, error) {
	var t model.Trainer
	if err := row.Scan(&t.ID, &t.Name, &t.Phone, &t.Specialty, &t.PhotoPath, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trainerRepository) Create(ctx context.Context, trainer model.Trainer) (*model.Trainer, error) {
	const query = `INSERT INTO trainers (id, name, phone, specialty, photo_path)
        VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`
	created := trainer
	err := r.storage.pool.QueryRow(ctx, query, trainer.ID, trainer.Name, trainer.Phone, trainer.Specialty, trainer.PhotoPath).
		Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, storeErr("create trainer", err)
	}
	return &created, nil
}

func (r *trainerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE id=$1`
	trainer, err := scanTrainer(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, storeErr("get trainer", err)
	}
	return trainer, nil
}

func (r *trainerRepository) List(ctx context.Context) ([]model.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("list trainers", err)
	}
	defer rows.Close()

	var result []model.Trainer
	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, storeErr("list trainers", err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list trainers", err)
	}
	return result, nil
}

func (r *trainerRepository) Update(ctx context.Context, trainer model.Trainer) (*model.Trainer, error) {
	const query = `UPDATE trainers SET name=$2, phone=$3, specialty=$4, photo_path=$5, updated_at=NOW()
        WHERE id=$1 RETURNING created_at, updated_at`
	updated := trainer
	err := r.storage.pool.QueryRow(ctx, query, trainer.ID, trainer.Name, trainer.Phone, trainer.Specialty, trainer.PhotoPath).
		Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return nil, storeErr("update trainer", err)
	}
	return &updated, nil
}

func (r *trainerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM trainers WHERE id=$1`, id)
	if err != nil {
		return storeErr("delete trainer", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
