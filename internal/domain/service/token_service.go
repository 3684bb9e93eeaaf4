package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in issued bearer tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed bearer token embedding the user id as its subject.
	IssueToken(userID uuid.UUID) (string, error)

	// VerifyToken checks the signature and expiry of a token string and
	// returns the embedded user id.
	VerifyToken(tokenString string) (uuid.UUID, error)
}
