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

// AdminInput carries the gym owner profile fields.
type AdminInput struct {
	Name       string
	GymName    string
	GymAddress string
}

// AdminUseCase manages the gym owner profile of a user. Profiles are never deleted.
type AdminUseCase struct {
	admins repository.AdminRepository
	photos PhotoStore
	logger *slog.Logger
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(admins repository.AdminRepository, photos PhotoStore, logger *slog.Logger) *AdminUseCase {
	return &AdminUseCase{admins: admins, photos: photos, logger: logger}
}

func normalizeAdmin(in AdminInput) (AdminInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.GymName = strings.TrimSpace(in.GymName)
	in.GymAddress = strings.TrimSpace(in.GymAddress)
	if in.Name == "" || in.GymName == "" || in.GymAddress == "" {
		return in, domainErrors.ErrInvalidAdmin
	}
	return in, nil
}

// Create registers the gym for userID. A second profile for the same user is rejected.
func (u *AdminUseCase) Create(ctx context.Context, userID int64, in AdminInput) (*model.Admin, error) {
	in, err := normalizeAdmin(in)
	if err != nil {
		return nil, err
	}
	return u.admins.Create(ctx, model.Admin{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       in.Name,
		GymName:    in.GymName,
		GymAddress: in.GymAddress,
	})
}

func (u *AdminUseCase) Get(ctx context.Context, userID int64) (*model.Admin, error) {
	return u.admins.GetByUserID(ctx, userID)
}

func (u *AdminUseCase) Update(ctx context.Context, userID int64, in AdminInput) (*model.Admin, error) {
	in, err := normalizeAdmin(in)
	if err != nil {
		return nil, err
	}
	admin, err := u.admins.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	admin.Name = in.Name
	admin.GymName = in.GymName
	admin.GymAddress = in.GymAddress
	return u.admins.Update(ctx, *admin)
}

func (u *AdminUseCase) SetPhoto(ctx context.Context, userID int64, r io.Reader) (*model.Admin, error) {
	admin, err := u.admins.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var updated *model.Admin
	err = replacePhoto(ctx, u.photos, u.logger, admin.PhotoPath, r, func(name string) error {
		next := *admin
		next.PhotoPath = &name
		var err error
		updated, err = u.admins.Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
