package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "sellbase/internal/delivery/context"
	custommiddleware "sellbase/internal/delivery/http/middleware"
	"sellbase/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// newTestEcho builds an echo instance wired the way the server wires it:
// request validation plus the central error handler, so handler tests see
// the same status codes and bodies a client would.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

// asUser injects an authenticated user ID the way the auth middleware does.
func asUser(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUserID(c, userID)

			return next(c)
		}
	}
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
