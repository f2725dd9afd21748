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

// CycleResetter runs the monthly payment reset.
type CycleResetter interface {
	ResetIfMonthChanged(ctx context.Context) (CycleResult, error)
}

// MemberInput carries the editable member profile fields.
type MemberInput struct {
	Name  string
	Age   string
	Phone string
	Tier  model.MembershipTier
}

// MemberQuery narrows a member listing.
type MemberQuery struct {
	Search string
	Filter model.PaymentFilter
}

// MemberUseCase manages member profiles. Payment flags are owned by PaymentTracker.
type MemberUseCase struct {
	members repository.MemberRepository
	cycle   CycleResetter
	photos  PhotoStore
	logger  *slog.Logger
}

// NewMemberUseCase constructs MemberUseCase.
func NewMemberUseCase(members repository.MemberRepository, cycle CycleResetter, photos PhotoStore, logger *slog.Logger) *MemberUseCase {
	return &MemberUseCase{members: members, cycle: cycle, photos: photos, logger: logger}
}

func normalizeMember(in MemberInput) (MemberInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Age = strings.TrimSpace(in.Age)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Tier == "" {
		in.Tier = model.TierBasic
	}
	if in.Name == "" || in.Phone == "" || !in.Tier.Valid() {
		return in, domainErrors.ErrInvalidMember
	}
	return in, nil
}

// Create registers a new member. New members start unpaid.
func (u *MemberUseCase) Create(ctx context.Context, in MemberInput) (*model.Member, error) {
	in, err := normalizeMember(in)
	if err != nil {
		return nil, err
	}
	return u.members.Create(ctx, model.Member{
		ID:    uuid.New(),
		Name:  in.Name,
		Age:   in.Age,
		Phone: in.Phone,
		Tier:  in.Tier,
	})
}

func (u *MemberUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	return u.members.GetByID(ctx, id)
}

// Update edits profile fields. The payment flag is left as stored.
func (u *MemberUseCase) Update(ctx context.Context, id uuid.UUID, in MemberInput) (*model.Member, error) {
	in, err := normalizeMember(in)
	if err != nil {
		return nil, err
	}
	member, err := u.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	member.Name = in.Name
	member.Age = in.Age
	member.Phone = in.Phone
	member.Tier = in.Tier
	return u.members.Update(ctx, *member)
}

// Delete removes the member together with the stored photo.
func (u *MemberUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	member, err := u.members.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.members.Delete(ctx, id); err != nil {
		return err
	}
	removePhoto(u.photos, u.logger, member.PhotoPath)
	return nil
}

// List runs the monthly reset check and returns the matching members.
// A failed reset is logged and the listing is still served.
func (u *MemberUseCase) List(ctx context.Context, q MemberQuery) ([]model.Member, error) {
	if _, err := u.cycle.ResetIfMonthChanged(ctx); err != nil {
		u.logger.Error("payment cycle check failed", slog.Any("error", err))
	}

	members, err := u.members.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	result := make([]model.Member, 0, len(members))
	for _, m := range members {
		if !q.Filter.Match(m) {
			continue
		}
		if needle != "" && !matchesSearch(m, needle) {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

func matchesSearch(m model.Member, needle string) bool {
	return strings.Contains(strings.ToLower(m.Name), needle) ||
		strings.Contains(strings.ToLower(string(m.Tier)), needle) ||
		strings.Contains(strings.ToLower(m.Age), needle)
}

// SetPhoto stores a new photo for the member and removes the previous one.
func (u *MemberUseCase) SetPhoto(ctx context.Context, id uuid.UUID, r io.Reader) (*model.Member, error) {
	member, err := u.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var updated *model.Member
	err = replacePhoto(ctx, u.photos, u.logger, member.PhotoPath, r, func(name string) error {
		next := *member
		next.PhotoPath = &name
		var err error
		updated, err = u.members.Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
