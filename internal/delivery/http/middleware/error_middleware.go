package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "sellbase/internal/delivery/context"
	"sellbase/internal/delivery/http/response"
	domainerrors "sellbase/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Validation failures serialize the field list directly so clients can
	// map messages onto form inputs.
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		m.logError(logger, c, err, validationErr.HTTPCode())
		c.JSON(validationErr.HTTPCode(), validationErr.Fields())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.logError(logger, c, err, appErr.HTTPCode())
		response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		m.logError(logger, c, err, httpErr.Code)
		response.Error(c, httpErr.Code, message)

		return
	}

	// Default to internal error, log and return a generic message
	logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	response.Error(c, http.StatusInternalServerError, "Internal server error")
}

// logError records a handled request failure with its method and path.
func (m *ErrorMiddleware) logError(logger *slog.Logger, c echo.Context, err error, code int) {
	logger.Warn("Request failed",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", code,
	)
}
