// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account that owns every other resource in the system.
// Credentials live on separate Authentication records, so a User carries
// no password material and is always safe to serialize in responses.
type User struct {
	ID        uuid.UUID `json:"id"`        // The unique identifier for the user.
	Name      string    `json:"name"`      // The user's display name.
	Email     string    `json:"email"`     // The user's email, unique across accounts and used as the login identifier.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt time.Time `json:"updatedAt"` // Timestamp of the last modification to this account.
}
