package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "sellbase/internal/delivery/context"
	"sellbase/internal/domain/entity"
	domainerrors "sellbase/internal/domain/errors"
	"sellbase/internal/domain/repository"
	mockRepo "sellbase/internal/mocks/repository"
	mockSvc "sellbase/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	c := newAuthTestContext(t, "")
	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	c := newAuthTestContext(t, "Token abc123")
	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	tokenSvc.EXPECT().VerifyToken("bad-token").Return(uuid.Nil, domainerrors.ErrInvalidToken)

	c := newAuthTestContext(t, "Bearer bad-token")
	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticate_DeletedAccount(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	userID := uuid.New()
	tokenSvc.EXPECT().VerifyToken("stale-token").Return(userID, nil)
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	c := newAuthTestContext(t, "Bearer stale-token")
	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	userID := uuid.New()
	tokenSvc.EXPECT().VerifyToken("good-token").Return(userID, nil)
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)

	nextCalled := false
	c := newAuthTestContext(t, "Bearer good-token")
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		storedID, ok := deliverycontext.GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, storedID)

		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, nextCalled)
}
