// Package facade holds facade stubs for HTTP, worker and app tests.
package facade

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
	testhelpers "github.com/polkiloo/gymkeeper/internal/test"
	"github.com/polkiloo/gymkeeper/internal/usecase"
)

// GymProfileFacadeStub provides controllable behaviour for gym profile endpoints.
type GymProfileFacadeStub struct {
	GymFn       func(context.Context, int64) (*model.Admin, error)
	CreateGymFn func(context.Context, int64, usecase.AdminInput) (*model.Admin, error)
	UpdateGymFn func(context.Context, int64, usecase.AdminInput) (*model.Admin, error)
	GymPhotoFn  func(context.Context, int64, io.Reader) (*model.Admin, error)
}

func (s GymProfileFacadeStub) Gym(ctx context.Context, userID int64) (*model.Admin, error) {
	if s.GymFn != nil {
		return s.GymFn(ctx, userID)
	}
	return &model.Admin{ID: uuid.New(), UserID: userID, Name: "Alex", GymName: "Iron", GymAddress: "Main st. 1"}, nil
}

func (s GymProfileFacadeStub) CreateGym(ctx context.Context, userID int64, in usecase.AdminInput) (*model.Admin, error) {
	if s.CreateGymFn != nil {
		return s.CreateGymFn(ctx, userID, in)
	}
	return &model.Admin{ID: uuid.New(), UserID: userID, Name: in.Name, GymName: in.GymName, GymAddress: in.GymAddress}, nil
}

func (s GymProfileFacadeStub) UpdateGym(ctx context.Context, userID int64, in usecase.AdminInput) (*model.Admin, error) {
	if s.UpdateGymFn != nil {
		return s.UpdateGymFn(ctx, userID, in)
	}
	return &model.Admin{ID: uuid.New(), UserID: userID, Name: in.Name, GymName: in.GymName, GymAddress: in.GymAddress}, nil
}

func (s GymProfileFacadeStub) SetGymPhoto(ctx context.Context, userID int64, r io.Reader) (*model.Admin, error) {
	if s.GymPhotoFn != nil {
		return s.GymPhotoFn(ctx, userID, r)
	}
	name := "gym.png"
	return &model.Admin{ID: uuid.New(), UserID: userID, PhotoPath: &name}, nil
}

// MemberFacadeStub provides controllable behaviour for member endpoints.
type MemberFacadeStub struct {
	MembersFn      func(context.Context, usecase.MemberQuery) ([]model.Member, error)
	MemberFn       func(context.Context, uuid.UUID) (*model.Member, error)
	CreateMemberFn func(context.Context, usecase.MemberInput) (*model.Member, error)
	UpdateMemberFn func(context.Context, uuid.UUID, usecase.MemberInput) (*model.Member, error)
	DeleteMemberFn func(context.Context, uuid.UUID) error
	MemberPhotoFn  func(context.Context, uuid.UUID, io.Reader) (*model.Member, error)
	TogglePaidFn   func(context.Context, uuid.UUID, bool) (*model.Member, error)
}

func (s MemberFacadeStub) Members(ctx context.Context, q usecase.MemberQuery) ([]model.Member, error) {
	if s.MembersFn != nil {
		return s.MembersFn(ctx, q)
	}
	return []model.Member{{ID: uuid.New(), Name: "Dana", Tier: model.TierBasic}}, nil
}

func (s MemberFacadeStub) Member(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	if s.MemberFn != nil {
		return s.MemberFn(ctx, id)
	}
	return &model.Member{ID: id, Name: "Dana", Tier: model.TierBasic}, nil
}

func (s MemberFacadeStub) CreateMember(ctx context.Context, in usecase.MemberInput) (*model.Member, error) {
	if s.CreateMemberFn != nil {
		return s.CreateMemberFn(ctx, in)
	}
	return &model.Member{ID: uuid.New(), Name: in.Name, Age: in.Age, Phone: in.Phone, Tier: in.Tier}, nil
}

func (s MemberFacadeStub) UpdateMember(ctx context.Context, id uuid.UUID, in usecase.MemberInput) (*model.Member, error) {
	if s.UpdateMemberFn != nil {
		return s.UpdateMemberFn(ctx, id, in)
	}
	return &model.Member{ID: id, Name: in.Name, Age: in.Age, Phone: in.Phone, Tier: in.Tier}, nil
}

func (s MemberFacadeStub) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if s.DeleteMemberFn != nil {
		return s.DeleteMemberFn(ctx, id)
	}
	return nil
}

func (s MemberFacadeStub) SetMemberPhoto(ctx context.Context, id uuid.UUID, r io.Reader) (*model.Member, error) {
	if s.MemberPhotoFn != nil {
		return s.MemberPhotoFn(ctx, id, r)
	}
	name := "member.png"
	return &model.Member{ID: id, PhotoPath: &name}, nil
}

func (s MemberFacadeStub) TogglePaid(ctx context.Context, id uuid.UUID, confirm bool) (*model.Member, error) {
	if s.TogglePaidFn != nil {
		return s.TogglePaidFn(ctx, id, confirm)
	}
	return &model.Member{ID: id, Paid: true}, nil
}

// TrainerFacadeStub provides controllable behaviour for trainer endpoints.
type TrainerFacadeStub struct {
	TrainersFn      func(context.Context, usecase.TrainerQuery) ([]model.Trainer, error)
	TrainerFn       func(context.Context, uuid.UUID) (*model.Trainer, error)
	CreateTrainerFn func(context.Context, usecase.TrainerInput) (*model.Trainer, error)
	UpdateTrainerFn func(context.Context, uuid.UUID, usecase.TrainerInput) (*model.Trainer, error)
	DeleteTrainerFn func(context.Context, uuid.UUID) error
	TrainerPhotoFn  func(context.Context, uuid.UUID, io.Reader) (*model.Trainer, error)
}

func (s TrainerFacadeStub) Trainers(ctx context.Context, q usecase.TrainerQuery) ([]model.Trainer, error) {
	if s.TrainersFn != nil {
		return s.TrainersFn(ctx, q)
	}
	return []model.Trainer{{ID: uuid.New(), Name: "Max", Specialty: model.SpecialtyStrength}}, nil
}

func (s TrainerFacadeStub) Trainer(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	if s.TrainerFn != nil {
		return s.TrainerFn(ctx, id)
	}
	return &model.Trainer{ID: id, Name: "Max", Specialty: model.SpecialtyStrength}, nil
}

func (s TrainerFacadeStub) CreateTrainer(ctx context.Context, in usecase.TrainerInput) (*model.Trainer, error) {
	if s.CreateTrainerFn != nil {
		return s.CreateTrainerFn(ctx, in)
	}
	return &model.Trainer{ID: uuid.New(), Name: in.Name, Phone: in.Phone, Specialty: in.Specialty}, nil
}

func (s TrainerFacadeStub) UpdateTrainer(ctx context.Context, id uuid.UUID, in usecase.TrainerInput) (*model.Trainer, error) {
	if s.UpdateTrainerFn != nil {
		return s.UpdateTrainerFn(ctx, id, in)
	}
	return &model.Trainer{ID: id, Name: in.Name, Phone: in.Phone, Specialty: in.Specialty}, nil
}

func (s TrainerFacadeStub) DeleteTrainer(ctx context.Context, id uuid.UUID) error {
	if s.DeleteTrainerFn != nil {
		return s.DeleteTrainerFn(ctx, id)
	}
	return nil
}

func (s TrainerFacadeStub) SetTrainerPhoto(ctx context.Context, id uuid.UUID, r io.Reader) (*model.Trainer, error) {
	if s.TrainerPhotoFn != nil {
		return s.TrainerPhotoFn(ctx, id, r)
	}
	name := "trainer.png"
	return &model.Trainer{ID: id, PhotoPath: &name}, nil
}

// PaymentFacadeStub simulates payment cycle queries.
type PaymentFacadeStub struct {
	LastResetFn  func(context.Context) (model.CyclePeriod, error)
	CheckCycleFn func(context.Context) (usecase.CycleResult, error)
}

func (s PaymentFacadeStub) LastReset(ctx context.Context) (model.CyclePeriod, error) {
	if s.LastResetFn != nil {
		return s.LastResetFn(ctx)
	}
	return model.CyclePeriod{Year: 2024, Month: time.April}, nil
}

func (s PaymentFacadeStub) CheckCycle(ctx context.Context) (usecase.CycleResult, error) {
	if s.CheckCycleFn != nil {
		return s.CheckCycleFn(ctx)
	}
	return usecase.CycleResult{Current: model.CyclePeriod{Year: 2024, Month: time.April}}, nil
}

// PhotoFacadeStub resolves photo names to paths.
type PhotoFacadeStub struct {
	PhotoPathFn func(string) (string, error)
}

func (s PhotoFacadeStub) PhotoPath(name string) (string, error) {
	if s.PhotoPathFn != nil {
		return s.PhotoPathFn(name)
	}
	return filepath.Join("testdata", name), nil
}

// PhotoLocatorStub joins photo names onto Dir.
type PhotoLocatorStub struct {
	Dir string
	Err error
}

func (s PhotoLocatorStub) Path(name string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return filepath.Join(s.Dir, name), nil
}

// HealthCheckerStub reports Err from every check.
type HealthCheckerStub struct {
	Err error
}

func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// GymFacadeStub aggregates facade dependencies for HTTP layer tests.
type GymFacadeStub struct {
	testhelpers.AuthFacadeStub
	GymProfileFacadeStub
	MemberFacadeStub
	TrainerFacadeStub
	PaymentFacadeStub
	PhotoFacadeStub
	HealthCheckerStub
}

// CycleFacadeStub counts cycle checks made by the background worker.
type CycleFacadeStub struct {
	Result usecase.CycleResult
	Err    error

	mu    sync.Mutex
	calls int
}

func (s *CycleFacadeStub) CheckCycle(ctx context.Context) (usecase.CycleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.Result, s.Err
}

// Calls returns the number of checks so far.
func (s *CycleFacadeStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
