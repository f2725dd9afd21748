package app

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
	"github.com/polkiloo/gymkeeper/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// PhotoLocator resolves a stored photo name to a readable file path.
type PhotoLocator interface {
	Path(name string) (string, error)
}

type GymFacade struct {
	auth     *usecase.AuthUseCase
	admins   *usecase.AdminUseCase
	members  *usecase.MemberUseCase
	trainers *usecase.TrainerUseCase
	payments *usecase.PaymentTracker
	photos   PhotoLocator
	health   HealthChecker
}

func NewGymFacade(
	auth *usecase.AuthUseCase,
	admins *usecase.AdminUseCase,
	members *usecase.MemberUseCase,
	trainers *usecase.TrainerUseCase,
	payments *usecase.PaymentTracker,
	photos PhotoLocator,
	health HealthChecker,
) *GymFacade {
	return &GymFacade{
		auth:     auth,
		admins:   admins,
		members:  members,
		trainers: trainers,
		payments: payments,
		photos:   photos,
		health:   health,
	}
}

func (f *GymFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *GymFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *GymFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *GymFacade) Gym(ctx context.Context, userID int64) (*model.Admin, error) {
	return f.admins.Get(ctx, userID)
}

func (f *GymFacade) CreateGym(ctx context.Context, userID int64, in usecase.AdminInput) (*model.Admin, error) {
	return f.admins.Create(ctx, userID, in)
}

func (f *GymFacade) UpdateGym(ctx context.Context, userID int64, in usecase.AdminInput) (*model.Admin, error) {
	return f.admins.Update(ctx, userID, in)
}

func (f *GymFacade) SetGymPhoto(ctx context.Context, userID int64, r io.Reader) (*model.Admin, error) {
	return f.admins.SetPhoto(ctx, userID, r)
}

func (f *GymFacade) Members(ctx context.Context, q usecase.MemberQuery) ([]model.Member, error) {
	return f.members.List(ctx, q)
}

func (f *GymFacade) Member(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	return f.members.Get(ctx, id)
}

func (f *GymFacade) CreateMember(ctx context.Context, in usecase.MemberInput) (*model.Member, error) {
	return f.members.Create(ctx, in)
}

func (f *GymFacade) UpdateMember(ctx context.Context, id uuid.UUID, in usecase.MemberInput) (*model.Member, error) {
	return f.members.Update(ctx, id, in)
}

func (f *GymFacade) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return f.members.Delete(ctx, id)
}

func (f *GymFacade) SetMemberPhoto(ctx context.Context, id uuid.UUID, r io.Reader) (*model.Member, error) {
	return f.members.SetPhoto(ctx, id, r)
}

// TogglePaid flips the member's payment flag. Clearing a paid flag needs an
// explicit confirmation from the caller.
func (f *GymFacade) TogglePaid(ctx context.Context, id uuid.UUID, confirm bool) (*model.Member, error) {
	return f.payments.TogglePaidConfirmed(ctx, id, confirm)
}

func (f *GymFacade) Trainers(ctx context.Context, q usecase.TrainerQuery) ([]model.Trainer, error) {
	return f.trainers.List(ctx, q)
}

func (f *GymFacade) Trainer(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	return f.trainers.Get(ctx, id)
}

func (f *GymFacade) CreateTrainer(ctx context.Context, in usecase.TrainerInput) (*model.Trainer, error) {
	return f.trainers.Create(ctx, in)
}

func (f *GymFacade) UpdateTrainer(ctx context.Context, id uuid.UUID, in usecase.TrainerInput) (*model.Trainer, error) {
	return f.trainers.Update(ctx, id, in)
}

func (f *GymFacade) DeleteTrainer(ctx context.Context, id uuid.UUID) error {
	return f.trainers.Delete(ctx, id)
}

func (f *GymFacade) SetTrainerPhoto(ctx context.Context, id uuid.UUID, r io.Reader) (*model.Trainer, error) {
	return f.trainers.SetPhoto(ctx, id, r)
}

func (f *GymFacade) LastReset(ctx context.Context) (model.CyclePeriod, error) {
	return f.payments.LastReset(ctx)
}

func (f *GymFacade) CheckCycle(ctx context.Context) (usecase.CycleResult, error) {
	return f.payments.ResetIfMonthChanged(ctx)
}

func (f *GymFacade) PhotoPath(name string) (string, error) {
	return f.photos.Path(name)
}

func (f *GymFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
