package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"sellbase/config"
	domainerrors "sellbase/internal/domain/errors"
	"sellbase/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExchanger struct {
	token *oauth2.Token
	err   error
}

func (f *fakeExchanger) Exchange(_ context.Context, _ string, _ ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	return f.token, f.err
}

func tokenWithIDToken(raw string) *oauth2.Token {
	token := &oauth2.Token{AccessToken: "access"}
	if raw == "" {
		return token
	}

	return token.WithExtra(map[string]any{"id_token": raw})
}

func newTestService(exchanger codeExchanger, validate idTokenValidator) *oauthService {
	return &oauthService{
		clientID:  "client-id",
		exchanger: exchanger,
		validate:  validate,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestExchangeCode_Success(t *testing.T) {
	svc := newTestService(
		&fakeExchanger{token: tokenWithIDToken("raw-id-token")},
		func(_ context.Context, token string, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "raw-id-token", token)
			assert.Equal(t, "client-id", audience)

			return &idtoken.Payload{
				Subject: "google-sub-123",
				Claims: map[string]any{
					"email": "ana@x.com",
					"name":  "Ana",
				},
			}, nil
		},
	)

	identity, err := svc.ExchangeCode(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", identity.Subject)
	assert.Equal(t, "ana@x.com", identity.Email)
	assert.Equal(t, "Ana", identity.Name)
}

func TestExchangeCode_ExchangeFails(t *testing.T) {
	svc := newTestService(
		&fakeExchanger{err: errors.New("provider unreachable")},
		nil,
	)

	identity, err := svc.ExchangeCode(context.Background(), "bad-code")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthExchangeFailed)
}

func TestExchangeCode_NoIDToken(t *testing.T) {
	svc := newTestService(
		&fakeExchanger{token: tokenWithIDToken("")},
		nil,
	)

	identity, err := svc.ExchangeCode(context.Background(), "auth-code")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestExchangeCode_ValidationFails(t *testing.T) {
	svc := newTestService(
		&fakeExchanger{token: tokenWithIDToken("raw-id-token")},
		func(_ context.Context, _ string, _ string) (*idtoken.Payload, error) {
			return nil, errors.New("audience mismatch")
		},
	)

	identity, err := svc.ExchangeCode(context.Background(), "auth-code")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestNewOAuthService_WiresConfig(t *testing.T) {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURI:  "http://localhost/callback",
		},
	}

	svc := NewOAuthService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*oauthService)
	assert.Equal(t, "client-id", svc.clientID)
	assert.NotNil(t, svc.exchanger)
	assert.NotNil(t, svc.validate)
}
