package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a couple's account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Email is the user's email address (unique). Used for login.
	Email string `json:"email"`

	// PartnerNames is the display name for the couple, e.g. "Ana & Bruno".
	PartnerNames string `json:"partnerNames"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// NewUser creates a User with a fresh ID and creation timestamp.
func NewUser(email, partnerNames, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PartnerNames: partnerNames,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
