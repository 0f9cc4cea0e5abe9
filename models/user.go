package models

import "time"

// User represents a registered account. It carries identity attributes and
// the stored credential digest.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-generated unique identifier of the user (UUID).
	ID string `json:"id"`

	// Username is the unique login identifier, stored lowercased and trimmed.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Excluded from JSON serialization; it is inspected only by the
	// credential service.
	PasswordHash string `json:"-"`

	// RegisteredAt is the timestamp when the account was created.
	// Immutable after registration.
	RegisteredAt time.Time `json:"registeredAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
