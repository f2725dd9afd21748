package handlers

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
	"github.com/polkiloo/gymkeeper/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// GymProfileFacade manages the gym owner profile of the signed-in user.
type GymProfileFacade interface {
	Gym(ctx context.Context, userID int64) (*model.Admin, error)
	CreateGym(ctx context.Context, userID int64, in usecase.AdminInput) (*model.Admin, error)
	UpdateGym(ctx context.Context, userID int64, in usecase.AdminInput) (*model.Admin, error)
	SetGymPhoto(ctx context.Context, userID int64, r io.Reader) (*model.Admin, error)
}

// MemberFacade encapsulates member operations exposed via HTTP.
type MemberFacade interface {
	Members(ctx context.Context, q usecase.MemberQuery) ([]model.Member, error)
	Member(ctx context.Context, id uuid.UUID) (*model.Member, error)
	CreateMember(ctx context.Context, in usecase.MemberInput) (*model.Member, error)
	UpdateMember(ctx context.Context, id uuid.UUID, in usecase.MemberInput) (*model.Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	SetMemberPhoto(ctx context.Context, id uuid.UUID, r io.Reader) (*model.Member, error)
	TogglePaid(ctx context.Context, id uuid.UUID, confirm bool) (*model.Member, error)
}

// TrainerFacade encapsulates trainer operations exposed via HTTP.
type TrainerFacade interface {
	Trainers(ctx context.Context, q usecase.TrainerQuery) ([]model.Trainer, error)
	Trainer(ctx context.Context, id uuid.UUID) (*model.Trainer, error)
	CreateTrainer(ctx context.Context, in usecase.TrainerInput) (*model.Trainer, error)
	UpdateTrainer(ctx context.Context, id uuid.UUID, in usecase.TrainerInput) (*model.Trainer, error)
	DeleteTrainer(ctx context.Context, id uuid.UUID) error
	SetTrainerPhoto(ctx context.Context, id uuid.UUID, r io.Reader) (*model.Trainer, error)
}

// PaymentFacade exposes the payment cycle state.
type PaymentFacade interface {
	LastReset(ctx context.Context) (model.CyclePeriod, error)
	CheckCycle(ctx context.Context) (usecase.CycleResult, error)
}

// PhotoFacade resolves stored photos.
type PhotoFacade interface {
	PhotoPath(name string) (string, error)
}

// HealthFacade reports backend availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// GymFacade aggregates the full set of operations used across handlers.
type GymFacade interface {
	AuthFacade
	GymProfileFacade
	MemberFacade
	TrainerFacade
	PaymentFacade
	PhotoFacade
	HealthFacade
}
