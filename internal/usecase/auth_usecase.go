// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sellbase/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Password confirmation is checked at the delivery boundary before the input
// reaches this layer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleAuthInput carries the OAuth authorization code obtained by the client.
type GoogleAuthInput struct {
	Code string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// TokenOutput returns the bearer token issued after a successful
// authentication.
type TokenOutput struct {
	Token string
}

// AuthUsecase defines the interface for identity-establishing operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*TokenOutput, error)
	GoogleAuth(ctx context.Context, input GoogleAuthInput) (*TokenOutput, error)
}
