package model

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a payment related domain event.
type EventType string

const (
	EventCycleReset     EventType = "payment.cycle_reset"
	EventPaymentToggled EventType = "member.payment_toggled"
)

// PaymentEvent is emitted after a payment state change has been persisted.
type PaymentEvent struct {
	Type         EventType  `json:"type"`
	OccurredAt   time.Time  `json:"occurred_at"`
	MemberID     *uuid.UUID `json:"member_id,omitempty"`
	Paid         *bool      `json:"paid,omitempty"`
	Period       string     `json:"period,omitempty"`
	MembersReset int        `json:"members_reset,omitempty"`
}

// Key returns the partitioning key of the event.
func (e PaymentEvent) Key() string {
	if e.MemberID != nil {
		return e.MemberID.String()
	}
	return e.Period
}
