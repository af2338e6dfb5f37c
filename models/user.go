package models

import "time"

// User represents an account entity used for authentication.
// PasswordHash must never leave the server process.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique login identifier, typically an email address.
	Login string `json:"login"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized and never exposed outside the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the transport form of a register/login request.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
