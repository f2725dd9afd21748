package test

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/gymkeeper/internal/domain/errors"
	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// MemberRepositoryStub keeps members in memory and counts writes.
// SetPaidFn runs before a flag write; returning an error rejects the write.
type MemberRepositoryStub struct {
	mu      sync.Mutex
	members map[uuid.UUID]model.Member
	order   []uuid.UUID

	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	SetPaidFn func(id uuid.UUID, paid bool) error

	ListCalls    int
	SetPaidCalls int
	UpdateCalls  int
}

// NewMemberRepositoryStub seeds the stub with members in listing order.
func NewMemberRepositoryStub(members ...model.Member) *MemberRepositoryStub {
	s := &MemberRepositoryStub{members: make(map[uuid.UUID]model.Member)}
	for _, m := range members {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		s.members[m.ID] = m
		s.order = append(s.order, m.ID)
	}
	return s
}

// Writes returns the number of attempted member writes.
func (s *MemberRepositoryStub) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.SetPaidCalls + s.UpdateCalls
}

// Snapshot returns the stored members in listing order.
func (s *MemberRepositoryStub) Snapshot() []model.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Member, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.members[id])
	}
	return out
}

func (s *MemberRepositoryStub) Create(ctx context.Context, member model.Member) (*model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if _, exists := s.members[member.ID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.members[member.ID] = member
	s.order = append(s.order, member.ID)
	return &member, nil
}

func (s *MemberRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	m, ok := s.members[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &m, nil
}

func (s *MemberRepositoryStub) List(ctx context.Context) ([]model.Member, error) {
	s.mu.Lock()
	s.ListCalls++
	err := s.ListErr
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.Snapshot(), nil
}

// Update stores profile fields and keeps the stored payment flag.
func (s *MemberRepositoryStub) Update(ctx context.Context, member model.Member) (*model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls++
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	stored, ok := s.members[member.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	member.Paid = stored.Paid
	member.CreatedAt = stored.CreatedAt
	s.members[member.ID] = member
	return &member, nil
}

func (s *MemberRepositoryStub) SetPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SetPaidCalls++
	if s.SetPaidFn != nil {
		if err := s.SetPaidFn(id, paid); err != nil {
			return err
		}
	}
	m, ok := s.members[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	m.Paid = paid
	s.members[id] = m
	return nil
}

func (s *MemberRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	if _, ok := s.members[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.members, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// TrainerRepositoryStub keeps trainers in memory.
type TrainerRepositoryStub struct {
	Trainers  map[uuid.UUID]model.Trainer
	UpdateErr error
	ListErr   error
}

// NewTrainerRepositoryStub constructs an empty trainer stub.
func NewTrainerRepositoryStub() *TrainerRepositoryStub {
	return &TrainerRepositoryStub{Trainers: make(map[uuid.UUID]model.Trainer)}
}

func (s *TrainerRepositoryStub) Create(ctx context.Context, trainer model.Trainer) (*model.Trainer, error) {
	s.Trainers[trainer.ID] = trainer
	return &trainer, nil
}

func (s *TrainerRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	t, ok := s.Trainers[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &t, nil
}

// List returns trainers sorted by name for deterministic tests.
func (s *TrainerRepositoryStub) List(ctx context.Context) ([]model.Trainer, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]model.Trainer, 0, len(s.Trainers))
	for _, t := range s.Trainers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *TrainerRepositoryStub) Update(ctx context.Context, trainer model.Trainer) (*model.Trainer, error) {
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	if _, ok := s.Trainers[trainer.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	s.Trainers[trainer.ID] = trainer
	return &trainer, nil
}

func (s *TrainerRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.Trainers[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Trainers, id)
	return nil
}

// AdminRepositoryStub keeps one admin profile per user.
type AdminRepositoryStub struct {
	Admins    map[int64]model.Admin
	UpdateErr error
}

// NewAdminRepositoryStub constructs an empty admin stub.
func NewAdminRepositoryStub() *AdminRepositoryStub {
	return &AdminRepositoryStub{Admins: make(map[int64]model.Admin)}
}

func (s *AdminRepositoryStub) Create(ctx context.Context, admin model.Admin) (*model.Admin, error) {
	if _, exists := s.Admins[admin.UserID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.Admins[admin.UserID] = admin
	return &admin, nil
}

func (s *AdminRepositoryStub) GetByUserID(ctx context.Context, userID int64) (*model.Admin, error) {
	a, ok := s.Admins[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &a, nil
}

func (s *AdminRepositoryStub) Update(ctx context.Context, admin model.Admin) (*model.Admin, error) {
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	if _, ok := s.Admins[admin.UserID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	s.Admins[admin.UserID] = admin
	return &admin, nil
}

// MarkerStub holds the reset marker in memory and counts writes.
type MarkerStub struct {
	mu       sync.Mutex
	Period   model.CyclePeriod
	GetErr   error
	SetErr   error
	SetCalls int
}

func (s *MarkerStub) Get(ctx context.Context) (model.CyclePeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return model.CyclePeriod{}, s.GetErr
	}
	return s.Period, nil
}

func (s *MarkerStub) Set(ctx context.Context, period model.CyclePeriod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SetCalls++
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Period = period
	return nil
}

// Current returns the stored period.
func (s *MarkerStub) Current() model.CyclePeriod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Period
}
