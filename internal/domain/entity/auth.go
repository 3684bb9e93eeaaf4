// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how a credential was established.
type ProviderType string

const (
	// ProviderTypeEmail indicates an email/password credential.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle indicates a linked Google account.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a valid value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeEmail, ProviderTypeGoogle:
		return true
	default:
		return false
	}
}

// Authentication represents a single method of logging in (a credential).
// An email/password pair is one record; a linked Google account is another.
// A user that only ever signed in with Google has no PasswordHash at all.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider, e.g. "email" or "google".
	ProviderUserID string       // The provider-side identity: the email address itself, or Google's 'sub' claim.
	PasswordHash   string       // The bcrypt-hashed password, only set when Provider is "email".
	CreatedAt      time.Time    // Timestamp of when this credential was linked to the account.
}
