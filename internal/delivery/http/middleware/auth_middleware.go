package middleware

import (
	"strings"

	deliverycontext "sellbase/internal/delivery/context"
	domainerrors "sellbase/internal/domain/errors"
	"sellbase/internal/domain/repository"
	"sellbase/internal/domain/service"
	"sellbase/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and confirms the subject still
// exists before the request reaches a handler. The resolved user ID is
// stored on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		userID, err := m.tokenSvc.VerifyToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		// A valid token for a deleted account must not grant access.
		if _, err := m.userRepo.FindByID(c.Request().Context(), userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to resolve token subject")
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
