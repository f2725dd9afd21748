package dto

import "time"

type TrainerRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Specialty string `json:"specialty" binding:"omitempty,oneof=Strength Cardio"`
}

// TrainerListQuery binds GET /api/trainers query parameters.
type TrainerListQuery struct {
	Search string `form:"search"`
}

type TrainerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Specialty string    `json:"specialty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
