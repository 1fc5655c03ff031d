// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/phoenix-field/backend/internal/domain/entity"
)

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents the response for the login endpoint.
type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         ProfileResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ProfileResponse represents an actor profile in API responses. Credential
// data never appears here.
type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Team  string `json:"team"`
	Role  string `json:"role"`
	Tier  string `json:"tier"`
}

// ViewAsResponse represents the profile endpoint response: the token's
// identity plus the effective identity after any view-as selection.
type ViewAsResponse struct {
	Authenticated ProfileResponse `json:"authenticated"`
	Effective     ProfileResponse `json:"effective"`
}

// ToProfileResponse converts a domain ActorProfile to a ProfileResponse DTO.
func ToProfileResponse(p entity.ActorProfile) ProfileResponse {
	return ProfileResponse{
		Name:  p.Name,
		Email: p.Email,
		Team:  p.Team,
		Role:  p.Role,
		Tier:  string(p.Tier),
	}
}
