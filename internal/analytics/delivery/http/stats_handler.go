package http

import (
	"net/http"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/analytics/service"
	"copytrade-analytics/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StatsHandler handles HTTP requests for system-wide statistics.
type StatsHandler struct {
	statsService service.StatsService
	logger       *logger.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, logger: logger}
}

// RegisterRoutes registers the stats routes to the Echo instance.
func (h *StatsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/stats/overview", h.GetOverview)
}

// GetOverview godoc
// @Summary Get system statistics overview
// @Description Get global aggregates over profitable wallets plus week-over-week trends
// @Tags stats
// @Produce  json
// @Success 200 {object} dto.SystemStatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stats/overview [get]
func (h *StatsHandler) GetOverview(c echo.Context) error {
	stats, err := h.statsService.GetOverview(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, stats)
}
