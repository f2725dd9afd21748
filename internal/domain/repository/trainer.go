package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

// TrainerRepository persists gym trainers.
type TrainerRepository interface {
	Create(ctx context.Context, trainer model.Trainer) (*model.Trainer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error)
	List(ctx context.Context) ([]model.Trainer, error)
	Update(ctx context.Context, trainer model.Trainer) (*model.Trainer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
