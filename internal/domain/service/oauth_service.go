package service

import "context"

// OAuthIdentity carries the external identity claims obtained from an OAuth
// provider after a successful authorization-code exchange.
type OAuthIdentity struct {
	Subject string // Provider-side stable user ID (Google's 'sub' claim).
	Email   string // The user's email address as asserted by the provider.
	Name    string // The user's display name as asserted by the provider.
}

// OAuthService defines the identity-token exchange against an OAuth provider.
type OAuthService interface {
	// ExchangeCode trades an authorization code for provider tokens, verifies
	// the identity token it receives, and returns the external identity
	// claims. Fails when the provider returns no identity token or when the
	// identity token fails audience or signature verification.
	ExchangeCode(ctx context.Context, code string) (*OAuthIdentity, error)
}
