package domain

import "time"

// User represents a user of the application in the domain.
type User struct {
	UserID            string `json:"userID"` // Primary Key (UUID)
	Email             string `json:"email"`
	Name              string `json:"name"`
	PreferredCurrency string `json:"preferredCurrency"` // Display preference, e.g. USD
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete

	// Credential state, never serialized to clients.
	PasswordHash           string     `json:"-"` // Empty for OAuth-only users
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// GoogleUserInfo holds the fields we consume from Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
