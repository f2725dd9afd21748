package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/gymkeeper/internal/domain/errors"
	"github.com/polkiloo/gymkeeper/internal/domain/model"
	"github.com/polkiloo/gymkeeper/internal/domain/repository"
)

// TrainerInput carries the editable trainer fields.
type TrainerInput struct {
	Name      string
	Phone     string
	Specialty model.Specialty
}

// TrainerQuery narrows a trainer listing.
type TrainerQuery struct {
	Search string
}

// TrainerUseCase manages trainer profiles.
type TrainerUseCase struct {
	trainers repository.TrainerRepository
	photos   PhotoStore
	logger   *slog.Logger
}

// NewTrainerUseCase constructs TrainerUseCase.
func NewTrainerUseCase(trainers repository.TrainerRepository, photos PhotoStore, logger *slog.Logger) *TrainerUseCase {
	return &TrainerUseCase{trainers: trainers, photos: photos, logger: logger}
}

func normalizeTrainer(in TrainerInput) (TrainerInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Specialty == "" {
		in.Specialty = model.SpecialtyStrength
	}
	if in.Name == "" || in.Phone == "" || !in.Specialty.Valid() {
		return in, domainErrors.ErrInvalidTrainer
	}
	return in, nil
}

func (u *TrainerUseCase) Create(ctx context.Context, in TrainerInput) (*model.Trainer, error) {
	in, err := normalizeTrainer(in)
	if err != nil {
		return nil, err
	}
	return u.trainers.Create(ctx, model.Trainer{
		ID:        uuid.New(),
		Name:      in.Name,
		Phone:     in.Phone,
		Specialty: in.Specialty,
	})
}

func (u *TrainerUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	return u.trainers.GetByID(ctx, id)
}

// List returns trainers whose name, specialty or phone contains the search
// text, ignoring case. An empty search returns everyone.
func (u *TrainerUseCase) List(ctx context.Context, q TrainerQuery) ([]model.Trainer, error) {
	trainers, err := u.trainers.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	if needle == "" {
		return trainers, nil
	}
	result := make([]model.Trainer, 0, len(trainers))
	for _, t := range trainers {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(string(t.Specialty)), needle) ||
			strings.Contains(strings.ToLower(t.Phone), needle) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (u *TrainerUseCase) Update(ctx context.Context, id uuid.UUID, in TrainerInput) (*model.Trainer, error) {
	in, err := normalizeTrainer(in)
	if err != nil {
		return nil, err
	}
	trainer, err := u.trainers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	trainer.Name = in.Name
	trainer.Phone = in.Phone
	trainer.Specialty = in.Specialty
	return u.trainers.Update(ctx, *trainer)
}

// Delete removes the trainer together with the stored photo.
func (u *TrainerUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	trainer, err := u.trainers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.trainers.Delete(ctx, id); err != nil {
		return err
	}
	removePhoto(u.photos, u.logger, trainer.PhotoPath)
	return nil
}

func (u *TrainerUseCase) SetPhoto(ctx context.Context, id uuid.UUID, r io.Reader) (*model.Trainer, error) {
	trainer, err := u.trainers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var updated *model.Trainer
	err = replacePhoto(ctx, u.photos, u.logger, trainer.PhotoPath, r, func(name string) error {
		next := *trainer
		next.PhotoPath = &name
		var err error
		updated, err = u.trainers.Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
