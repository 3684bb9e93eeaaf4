// Package google implements the OAuth identity-token exchange against Google.
package google

import (
	"context"
	"log/slog"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"sellbase/config"
	domainerrors "sellbase/internal/domain/errors"
	"sellbase/internal/domain/service"
)

// codeExchanger abstracts the token-endpoint call so tests can stub the
// network round trip. *oauth2.Config satisfies it.
type codeExchanger interface {
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

// idTokenValidator verifies a raw ID token against the expected audience.
type idTokenValidator func(ctx context.Context, token string, audience string) (*idtoken.Payload, error)

// oauthService performs the authorization-code flow: trade the code for
// provider tokens, then verify and decode the ID token among them.
type oauthService struct {
	clientID  string
	exchanger codeExchanger
	validate  idTokenValidator
	logger    *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     googleoauth.Endpoint,
	}

	return &oauthService{
		clientID:  cfg.GoogleOAuth.ClientID,
		exchanger: oauthCfg,
		validate:  idtoken.Validate,
		logger:    logger,
	}
}

// ExchangeCode trades an authorization code for tokens and returns the
// verified external identity claims.
func (s *oauthService) ExchangeCode(ctx context.Context, code string) (*service.OAuthIdentity, error) {
	token, err := s.exchanger.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn("Google code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthExchangeFailed.WrapMessage("authorization code exchange failed")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("provider returned no identity token")
	}

	// Audience and signature verification happens against Google's published
	// keys; a token minted for another client is rejected here.
	payload, err := s.validate(ctx, rawIDToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("identity token verification failed")
	}

	identity := &service.OAuthIdentity{
		Subject: payload.Subject,
		Email:   claimString(payload, "email"),
		Name:    claimString(payload, "name"),
	}

	s.logger.Info("Google identity verified",
		slog.String("subject", identity.Subject),
		slog.String("email", identity.Email))

	return identity, nil
}

func claimString(payload *idtoken.Payload, key string) string {
	value, _ := payload.Claims[key].(string)

	return value
}
