package dto

import (
	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
)

// RegisterUserRequest defines the data needed to register with email and password.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the opaque refresh token issued at login.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// GoogleSignInRequest carries a Google ID token obtained by the client.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name"` // Only name is updatable for now
}

// UpdatePreferencesRequest defines the user's display preferences.
type UpdatePreferencesRequest struct {
	PreferredCurrency string `json:"preferredCurrency" binding:"required,oneof=USD EUR GBP"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID            string `json:"userID"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	PreferredCurrency string `json:"preferredCurrency"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:            user.UserID,
		Email:             user.Email,
		Name:              user.Name,
		PreferredCurrency: user.PreferredCurrency,
	}
}
