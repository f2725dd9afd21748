package postgres

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/gymkeeper/internal/domain/errors"
	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

const memberColumns = `id, name, age, phone, tier, paid, photo_path, created_at, updated_at`

type memberRepository struct {
	storage *Storage
}

func scanMember(row rowScanner) (*model.Member, error) {
	var m model.Member
	if err := row.Scan(&m.ID, &m.Name, &m.Age, &m.Phone, &m.Tier, &m.Paid, &m.PhotoPath, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) Create(ctx context.Context, member model.Member) (*model.Member, error) {
	const query = `INSERT INTO members (id, name, age, phone, tier, paid, photo_path)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at, updated_at`
	created := member
	err := r.storage.pool.QueryRow(ctx, query, member.ID, member.Name, member.Age, member.Phone, member.Tier, member.Paid, member.PhotoPath).
		Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, storeErr("create member", err)
	}
	return &created, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id=$1`
	member, err := scanMember(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, storeErr("get member", err)
	}
	return member, nil
}

func (r *memberRepository) List(ctx context.Context) ([]model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("list members", err)
	}
	defer rows.Close()

	var result []model.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, storeErr("list members", err)
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list members", err)
	}
	return result, nil
}

// Update writes profile fields and leaves the payment flag untouched.
func (r *memberRepository) Update(ctx context.Context, member model.Member) (*model.Member, error) {
	const query = `UPDATE members SET name=$2, age=$3, phone=$4, tier=$5, photo_path=$6, updated_at=NOW()
        WHERE id=$1 RETURNING paid, created_at, updated_at`
	updated := member
	err := r.storage.pool.QueryRow(ctx, query, member.ID, member.Name, member.Age, member.Phone, member.Tier, member.PhotoPath).
		Scan(&updated.Paid, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return nil, storeErr("update member", err)
	}
	return &updated, nil
}

func (r *memberRepository) SetPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	const query = `UPDATE members SET paid=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, paid)
	if err != nil {
		return storeErr("set member paid", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM members WHERE id=$1`, id)
	if err != nil {
		return storeErr("delete member", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
