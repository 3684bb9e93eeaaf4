package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "sellbase/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec := handleError(t, domainerrors.ErrCustomerNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"message":"customer not found"}}`, rec.Body.String())
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	rec := handleError(t, wrapped)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"message":"invalid email or password"}}`, rec.Body.String())
}

func TestHandleHTTPError_ValidationErrorRendersFieldList(t *testing.T) {
	err := domainerrors.NewValidationError([]domainerrors.FieldError{
		{Message: "name is required", Path: "name"},
		{Message: "email must be a valid email address", Path: "email"},
	})
	rec := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[
		{"message":"name is required","path":"name"},
		{"message":"email must be a valid email address","path":"email"}
	]`, rec.Body.String())
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"message":"Method Not Allowed"}}`, rec.Body.String())
}

func TestHandleHTTPError_LogsMethodAndPath(t *testing.T) {
	var logs bytes.Buffer

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/customer/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))
	m.HandleHTTPError(domainerrors.ErrCustomerNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, logs.String(), "Request failed")
	assert.Contains(t, logs.String(), "method=DELETE")
	assert.Contains(t, logs.String(), "path=/customer/42")
	assert.Contains(t, logs.String(), "customer not found")
}

func TestHandleHTTPError_UnknownErrorHidesDetails(t *testing.T) {
	rec := handleError(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"message":"Internal server error"}}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
