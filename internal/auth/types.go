package auth

import "github.com/co2re/innovation-hub/internal/models"

type SignupRequest struct {
	Email    string              `json:"email"`
	Password string              `json:"password"`
	Name     string              `json:"name"`
	Profile  models.MatchProfile `json:"profile"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
