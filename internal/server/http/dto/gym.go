package dto

import "time"

// GymRequest carries the gym owner profile.
type GymRequest struct {
	Name       string `json:"name" binding:"required"`
	GymName    string `json:"gym_name" binding:"required"`
	GymAddress string `json:"gym_address" binding:"required"`
}

type GymResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	GymName    string    `json:"gym_name"`
	GymAddress string    `json:"gym_address"`
	PhotoURL   *string   `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
