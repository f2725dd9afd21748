package dto

import "time"

// MemberRequest carries editable member fields. The payment flag is not part
// of it and can only change through the toggle endpoint.
type MemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Age   string `json:"age"`
	Phone string `json:"phone" binding:"required"`
	Tier  string `json:"tier" binding:"omitempty,oneof=Basic Medium Premium UltraPremium"`
}

// MemberListQuery binds GET /api/members query parameters.
type MemberListQuery struct {
	Search string `form:"search"`
	Filter string `form:"filter" binding:"omitempty,oneof=all paid unpaid"`
}

// ToggleQuery binds the toggle confirmation flag.
type ToggleQuery struct {
	Confirm bool `form:"confirm"`
}

type MemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       string    `json:"age"`
	Phone     string    `json:"phone"`
	Tier      string    `json:"tier"`
	Paid      bool      `json:"paid"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
