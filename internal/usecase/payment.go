package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/gymkeeper/internal/domain/errors"
	"github.com/polkiloo/gymkeeper/internal/domain/model"
	"github.com/polkiloo/gymkeeper/internal/domain/repository"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// EventPublisher receives payment events after they have been persisted.
type EventPublisher interface {
	Publish(ctx context.Context, event model.PaymentEvent) error
}

// CycleSettings control how the current payment cycle is derived.
type CycleSettings struct {
	Location *time.Location
	// IncludeYear makes the reset compare year and month. By default only
	// the month number is compared, so a marker from the same month of a
	// previous year suppresses the reset.
	IncludeYear bool
}

// CycleResult describes the outcome of ResetIfMonthChanged.
type CycleResult struct {
	Reset        bool
	Previous     model.CyclePeriod
	Current      model.CyclePeriod
	MembersReset int
}

// PaymentTracker clears every member's payment flag once per month and
// flips individual flags on request. Reset and toggle never interleave.
type PaymentTracker struct {
	members  repository.MemberRepository
	marker   repository.MarkerRepository
	clock    Clock
	events   EventPublisher
	settings CycleSettings
	logger   *slog.Logger

	mu sync.Mutex
}

// NewPaymentTracker constructs PaymentTracker.
func NewPaymentTracker(
	members repository.MemberRepository,
	marker repository.MarkerRepository,
	clock Clock,
	events EventPublisher,
	settings CycleSettings,
	logger *slog.Logger,
) *PaymentTracker {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	return &PaymentTracker{
		members:  members,
		marker:   marker,
		clock:    clock,
		events:   events,
		settings: settings,
		logger:   logger,
	}
}

// ResetIfMonthChanged clears all payment flags when the stored marker belongs
// to another cycle, then advances the marker. A store failure aborts the
// remaining writes and leaves the marker untouched so the next call retries.
// Events are published after the lock is released.
func (t *PaymentTracker) ResetIfMonthChanged(ctx context.Context) (CycleResult, error) {
	result, event, err := t.resetLocked(ctx)
	if event != nil {
		t.publish(ctx, *event)
	}
	return result, err
}

func (t *PaymentTracker) resetLocked(ctx context.Context) (CycleResult, *model.PaymentEvent, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := model.PeriodOf(t.clock.Now().In(t.settings.Location))
	result := CycleResult{Current: current}

	previous, err := t.marker.Get(ctx)
	if err != nil {
		resetFailuresCounter.Inc()
		return result, nil, domainErrors.NewStoreError("read reset marker", err)
	}
	result.Previous = previous

	if current.SameCycle(previous, t.settings.IncludeYear) {
		return result, nil, nil
	}

	started := time.Now()
	members, err := t.members.List(ctx)
	if err != nil {
		resetFailuresCounter.Inc()
		return result, nil, domainErrors.NewStoreError("list members", err)
	}

	for _, m := range members {
		if !m.Paid {
			continue
		}
		if err := t.members.SetPaid(ctx, m.ID, false); err != nil {
			resetFailuresCounter.Inc()
			t.logger.Error("payment reset aborted",
				slog.String("member_id", m.ID.String()),
				slog.Int("members_reset", result.MembersReset),
				slog.Any("error", err),
			)
			return result, nil, domainErrors.NewStoreError("save member", err)
		}
		result.MembersReset++
	}

	if err := t.marker.Set(ctx, current); err != nil {
		resetFailuresCounter.Inc()
		return result, nil, domainErrors.NewStoreError("write reset marker", err)
	}
	result.Reset = true

	resetDuration.Observe(time.Since(started).Seconds())
	cycleResetsCounter.Inc()
	membersResetCounter.Add(float64(result.MembersReset))

	t.logger.Info("payment cycle reset",
		slog.String("period", current.String()),
		slog.String("previous", previous.String()),
		slog.Int("members_reset", result.MembersReset),
	)
	return result, &model.PaymentEvent{
		Type:         model.EventCycleReset,
		OccurredAt:   t.clock.Now(),
		Period:       current.String(),
		MembersReset: result.MembersReset,
	}, nil
}

// TogglePaid flips one member's payment flag. When the write fails the member
// is re-read so the caller sees the stored state rather than the flipped one.
func (t *PaymentTracker) TogglePaid(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	return t.toggle(ctx, id, true)
}

// TogglePaidConfirmed is TogglePaid that refuses to clear a paid flag unless
// confirm is set. The refusal returns the unchanged member with
// ErrConfirmationRequired. The check and the write happen under one lock.
func (t *PaymentTracker) TogglePaidConfirmed(ctx context.Context, id uuid.UUID, confirm bool) (*model.Member, error) {
	return t.toggle(ctx, id, confirm)
}

func (t *PaymentTracker) toggle(ctx context.Context, id uuid.UUID, confirm bool) (*model.Member, error) {
	member, event, err := t.toggleLocked(ctx, id, confirm)
	if event != nil {
		t.publish(ctx, *event)
	}
	return member, err
}

func (t *PaymentTracker) toggleLocked(ctx context.Context, id uuid.UUID, confirm bool) (*model.Member, *model.PaymentEvent, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	member, err := t.members.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if member.Paid && !confirm {
		return member, nil, domainErrors.ErrConfirmationRequired
	}

	paid := !member.Paid
	if err := t.members.SetPaid(ctx, id, paid); err != nil {
		storeErr := domainErrors.NewStoreError("save member", err)
		stored, rereadErr := t.members.GetByID(ctx, id)
		if rereadErr != nil {
			return nil, nil, storeErr
		}
		return stored, nil, storeErr
	}

	member.Paid = paid
	togglesCounter.WithLabelValues(strconv.FormatBool(paid)).Inc()
	memberID := member.ID
	return member, &model.PaymentEvent{
		Type:       model.EventPaymentToggled,
		OccurredAt: t.clock.Now(),
		MemberID:   &memberID,
		Paid:       &paid,
	}, nil
}

// LastReset returns the period of the last completed bulk reset.
func (t *PaymentTracker) LastReset(ctx context.Context) (model.CyclePeriod, error) {
	return t.marker.Get(ctx)
}

func (t *PaymentTracker) publish(ctx context.Context, event model.PaymentEvent) {
	if t.events == nil {
		return
	}
	if err := t.events.Publish(ctx, event); err != nil {
		t.logger.Warn("publish payment event failed",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}
