package model

import (
	"time"

	"github.com/google/uuid"
)

// Specialty describes the training discipline of a trainer.
type Specialty string

const (
	SpecialtyStrength Specialty = "Strength"
	SpecialtyCardio   Specialty = "Cardio"
)

// Valid reports whether s is a known specialty.
func (s Specialty) Valid() bool {
	return s == SpecialtyStrength || s == SpecialtyCardio
}

// Trainer represents gym staff. Trainers carry no payment state.
type Trainer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Specialty Specialty
	PhotoPath *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
