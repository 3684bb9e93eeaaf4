package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the unified API response structure. Every endpoint answers
// with it: successful calls carry Data or Token, failures carry Error.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Token   string     `json:"token,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the user-facing failure message. Internal error objects
// and stack traces never reach the response body.
type ErrorInfo struct {
	Message string `json:"message"`
}

// Data renders a successful response wrapping the payload.
func Data(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Data:    data,
	})
}

// Token renders a successful authentication response carrying a bearer token.
func Token(c echo.Context, statusCode int, token string) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Token:   token,
	})
}

// NoContent renders a bare success envelope, used after deletes.
func NoContent(c echo.Context) error {
	return c.JSON(http.StatusOK, Envelope{Success: true})
}

// Error renders a failure envelope.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Error:   &ErrorInfo{Message: message},
	})
}
