// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerStatus represents the lifecycle state of a customer record.
type CustomerStatus string

const (
	// CustomerStatusActive is the default state for new customers.
	CustomerStatusActive CustomerStatus = "ACTIVE"
	// CustomerStatusInactive marks a customer that should no longer be sold to.
	CustomerStatusInactive CustomerStatus = "INACTIVE"
)

// String returns the string representation of the CustomerStatus.
func (s CustomerStatus) String() string {
	return string(s)
}

// IsValid checks if the CustomerStatus is a valid value.
func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive:
		return true
	default:
		return false
	}
}

// Address is the optional postal address attached to a customer.
// It is a value object: it has no identity of its own.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// Customer is a client record owned by exactly one User. Cross-user access
// is forbidden: lookups by another user behave as if the record did not exist.
type Customer struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Notes     string         `json:"notes,omitempty"`
	Address   *Address       `json:"address,omitempty"`
	Status    CustomerStatus `json:"status"`
	UserID    uuid.UUID      `json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
