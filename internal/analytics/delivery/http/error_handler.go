package http

import (
	"net/http"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler returns a catch-all error handler that renders every
// otherwise-uncaught failure as a well-formed JSON error envelope.
func NewHTTPErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		detail := "An unexpected error occurred"

		if httpErr, ok := err.(*echo.HTTPError); ok {
			code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				detail = msg
			}
		} else {
			log.Error("Unhandled error", logger.ErrorField(err), logger.Field("path", c.Request().URL.Path))
		}

		if jsonErr := c.JSON(code, dto.ErrorResponse{Detail: detail}); jsonErr != nil {
			log.Error("Failed to write error response", logger.ErrorField(jsonErr))
		}
	}
}
