package models

import (
	"database/sql"
	"time"
)

// User represents a user of the application, including credentials for
// password authentication and the stored refresh-token hash.
type User struct {
	UserID            string `db:"user_id"`
	Email             string `db:"email"`
	PasswordHash      string `db:"password_hash"` // Empty for OAuth-only users
	Name              string `db:"name"`
	PreferredCurrency string `db:"preferred_currency"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
