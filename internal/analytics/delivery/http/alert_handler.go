package http

import (
	"net/http"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AlertHandler handles HTTP requests for user alerts.
// Alert generation is not implemented yet; the endpoint always returns an
// empty list so clients can poll it safely.
type AlertHandler struct {
	logger *logger.Logger
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(logger *logger.Logger) *AlertHandler {
	return &AlertHandler{logger: logger}
}

// RegisterRoutes registers the alert routes to the Echo instance.
func (h *AlertHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/alerts", h.GetAlerts)
}

// GetAlerts godoc
// @Summary Get user alerts
// @Description Get alerts for a user
// @Tags alerts
// @Produce  json
// @Param   user_id  query   string true    "User ID"
// @Success 200 {object} dto.AlertsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /alerts [get]
func (h *AlertHandler) GetAlerts(c echo.Context) error {
	if c.QueryParam("user_id") == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "user_id is required"})
	}

	return c.JSON(http.StatusOK, dto.AlertsResponse{Alerts: []interface{}{}})
}
