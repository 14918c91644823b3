package http

import (
	"errors"
	"net/http"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/analytics/service"
	"copytrade-analytics/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WalletHandler handles HTTP requests for wallet scoring and queries.
type WalletHandler struct {
	walletService service.WalletService
	logger        *logger.Logger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService service.WalletService, logger *logger.Logger) *WalletHandler {
	return &WalletHandler{walletService: walletService, logger: logger}
}

// RegisterRoutes registers the wallet routes to the Echo instance.
func (h *WalletHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/wallets/top", h.GetTopWallets)
	e.GET("/wallets", h.GetWalletsPage)
	e.GET("/wallet/:address", h.GetWalletDetail)
}

// GetTopWallets godoc
// @Summary Get top performing wallets
// @Description Get top performing wallets filtered by the given criteria, ordered by composite score
// @Tags wallets
// @Produce  json
// @Param   min_roi       query   number  false   "Minimum ROI percentage"       default(0)
// @Param   min_win_rate  query   number  false   "Minimum win rate (0-100)"     default(0)
// @Param   min_trades    query   integer false   "Minimum trade count"          default(0)
// @Param   min_volume    query   number  false   "Minimum total volume"         default(0)
// @Param   min_profit    query   number  false   "Minimum total PnL"            default(0)
// @Param   risk_level    query   string  false   "Risk rating filter"
// @Param   time_frame    query   string  false   "Time frame"                   default(7d)
// @Param   limit         query   integer false   "Maximum results (1-100)"      default(50)
// @Success 200 {array} dto.WalletScoreResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /wallets/top [get]
func (h *WalletHandler) GetTopWallets(c echo.Context) error {
	req := dto.TopWalletsRequest{TimeFrame: "7d", Limit: 50}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid query parameters"})
	}

	if req.MinROI < 0 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "min_roi must be >= 0"})
	}
	if req.MinWinRate < 0 || req.MinWinRate > 100 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "min_win_rate must be between 0 and 100"})
	}
	if req.MinTrades < 0 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "min_trades must be >= 0"})
	}
	if req.MinVolume < 0 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "min_volume must be >= 0"})
	}
	if req.MinProfit < 0 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "min_profit must be >= 0"})
	}
	if req.Limit < 1 || req.Limit > 100 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "limit must be between 1 and 100"})
	}

	wallets, err := h.walletService.GetTopWallets(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Database error: " + err.Error()})
	}

	return c.JSON(http.StatusOK, wallets)
}

// GetWalletDetail godoc
// @Summary Get wallet details
// @Description Get detailed metrics and computed scores for a specific wallet
// @Tags wallets
// @Produce  json
// @Param   address  path    string true    "Wallet address"
// @Success 200 {object} dto.WalletDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /wallet/{address} [get]
func (h *WalletHandler) GetWalletDetail(c echo.Context) error {
	address := c.Param("address")

	detail, err := h.walletService.GetWalletDetail(c.Request().Context(), address)
	if err != nil {
		if errors.Is(err, service.ErrWalletNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Wallet not found"})
		}
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, detail)
}

// GetWalletsPage godoc
// @Summary Get paginated wallet list
// @Description Get one page of wallets with inline computed scores
// @Tags wallets
// @Produce  json
// @Param   page       query   integer false   "Page number (>= 1)"          default(1)
// @Param   page_size  query   integer false   "Page size (1-100)"           default(20)
// @Param   sort_by    query   string  false   "Sort column"                 default(roi_percentage)
// @Param   sort_desc  query   boolean false   "Sort descending"             default(true)
// @Success 200 {object} dto.WalletPageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /wallets [get]
func (h *WalletHandler) GetWalletsPage(c echo.Context) error {
	req := dto.WalletPageRequest{Page: 1, PageSize: 20, SortBy: "roi_percentage", SortDesc: true}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid query parameters"})
	}

	if req.Page < 1 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "page must be >= 1"})
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "page_size must be between 1 and 100"})
	}

	page, err := h.walletService.GetWalletsPage(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSortColumn) {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid sort column: " + req.SortBy})
		}
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, page)
}
