package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipTier names the membership plan a member is enrolled in.
type MembershipTier string

const (
	TierBasic        MembershipTier = "Basic"
	TierMedium       MembershipTier = "Medium"
	TierPremium      MembershipTier = "Premium"
	TierUltraPremium MembershipTier = "UltraPremium"
)

// MembershipTiers lists every tier in display order.
var MembershipTiers = []MembershipTier{TierBasic, TierMedium, TierPremium, TierUltraPremium}

// Valid reports whether t is one of the known tiers.
func (t MembershipTier) Valid() bool {
	for _, known := range MembershipTiers {
		if t == known {
			return true
		}
	}
	return false
}

// Member is a gym member. Paid tracks whether the member paid for the current cycle.
type Member struct {
	ID        uuid.UUID
	Name      string
	Age       string
	Phone     string
	Tier      MembershipTier
	Paid      bool
	PhotoPath *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentFilter narrows member listings by payment state.
type PaymentFilter string

const (
	PaymentFilterAll    PaymentFilter = "all"
	PaymentFilterPaid   PaymentFilter = "paid"
	PaymentFilterUnpaid PaymentFilter = "unpaid"
)

// Match reports whether the member passes the filter. Unknown filters match everything.
func (f PaymentFilter) Match(m Member) bool {
	switch f {
	case PaymentFilterPaid:
		return m.Paid
	case PaymentFilterUnpaid:
		return !m.Paid
	default:
		return true
	}
}
