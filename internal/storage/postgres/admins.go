package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

const adminColumns = `id, user_id, name, gym_name, gym_address, photo_path, created_at, updated_at`

type adminRepository struct {
	storage *Storage
}

func scanAdmin(row rowScanner) (*model.Admin, error) {
	var a model.Admin
	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.GymName, &a.GymAddress, &a.PhotoPath, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create stores the profile after checking that the owning user exists.
func (r *adminRepository) Create(ctx context.Context, admin model.Admin) (*model.Admin, error) {
	const (
		lockUser = `SELECT id FROM users WHERE id=$1 FOR SHARE`
		insert   = `INSERT INTO admins (id, user_id, name, gym_name, gym_address, photo_path)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at`
	)

	created := admin
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var userID int64
		if err := tx.QueryRow(ctx, lockUser, admin.UserID).Scan(&userID); err != nil {
			return err
		}
		return tx.QueryRow(ctx, insert, admin.ID, admin.UserID, admin.Name, admin.GymName, admin.GymAddress, admin.PhotoPath).
			Scan(&created.CreatedAt, &created.UpdatedAt)
	})
	if err != nil {
		return nil, storeErr("create admin", err)
	}
	return &created, nil
}

func (r *adminRepository) GetByUserID(ctx context.Context, userID int64) (*model.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE user_id=$1`
	admin, err := scanAdmin(r.storage.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, storeErr("get admin", err)
	}
	return admin, nil
}

func (r *adminRepository) Update(ctx context.Context, admin model.Admin) (*model.Admin, error) {
	const query = `UPDATE admins SET name=$2, gym_name=$3, gym_address=$4, photo_path=$5, updated_at=NOW()
        WHERE user_id=$1 RETURNING id, created_at, updated_at`
	updated := admin
	err := r.storage.pool.QueryRow(ctx, query, admin.UserID, admin.Name, admin.GymName, admin.GymAddress, admin.PhotoPath).
		Scan(&updated.ID, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return nil, storeErr("update admin", err)
	}
	return &updated, nil
}
