package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered dashboard user. The embedded match profile
// drives personalized funding match scores.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	Profile      MatchProfile `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
}
