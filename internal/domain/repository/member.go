package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

// MemberRepository persists gym members.
// Update writes profile fields only; the payment flag changes through SetPaid.
type MemberRepository interface {
	Create(ctx context.Context, member model.Member) (*model.Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	List(ctx context.Context) ([]model.Member, error)
	Update(ctx context.Context, member model.Member) (*model.Member, error)
	SetPaid(ctx context.Context, id uuid.UUID, paid bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
