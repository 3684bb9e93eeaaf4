package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GetUserID extracts the authenticated user's ID from echo.Context.
// The second return value reports whether an identity was resolved.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	val := c.Get(string(KeyUserID))
	if id, ok := val.(uuid.UUID); ok && id != uuid.Nil {
		return id, true
	}

	return uuid.Nil, false
}

// SetUserID stores the authenticated user's ID in echo.Context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)
}
