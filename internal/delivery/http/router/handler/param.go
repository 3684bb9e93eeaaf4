package handler

import (
	deliverycontext "sellbase/internal/delivery/context"
	domainerrors "sellbase/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// authedUserID returns the user ID stored by the authentication middleware.
func authedUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// pathUUID parses a UUID path parameter. A malformed value surfaces as a
// validation failure on the parameter name rather than a routing error.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Message: name + " must be a valid UUID", Path: name},
		})
	}

	return id, nil
}
