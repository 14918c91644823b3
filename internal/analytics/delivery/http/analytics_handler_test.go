package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"copytrade-analytics/internal/analytics/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTradeAnalyticsService struct {
	getDailyStatsFn func(ctx context.Context, address string, days int) (*dto.WalletAnalyticsResponse, error)
}

func (m *mockTradeAnalyticsService) GetDailyStats(ctx context.Context, address string, days int) (*dto.WalletAnalyticsResponse, error) {
	return m.getDailyStatsFn(ctx, address, days)
}

func TestGetWalletAnalytics_InvalidTimeframe(t *testing.T) {
	tests := []struct {
		name      string
		timeframe string
	}{
		{name: "missing suffix", timeframe: "7"},
		{name: "non numeric", timeframe: "xd"},
		{name: "zero days", timeframe: "0d"},
		{name: "negative days", timeframe: "-7d"},
	}

	svc := &mockTradeAnalyticsService{
		getDailyStatsFn: func(ctx context.Context, address string, days int) (*dto.WalletAnalyticsResponse, error) {
			t.Fatal("service must not be called for invalid timeframe")
			return nil, nil
		},
	}

	e := echo.New()
	NewAnalyticsHandler(svc, newTestLogger(t)).RegisterRoutes(e)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/analytics/wallet-1?timeframe="+tt.timeframe, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetWalletAnalytics_DefaultTimeframe(t *testing.T) {
	var gotDays int
	var gotAddress string
	svc := &mockTradeAnalyticsService{
		getDailyStatsFn: func(ctx context.Context, address string, days int) (*dto.WalletAnalyticsResponse, error) {
			gotAddress = address
			gotDays = days
			return &dto.WalletAnalyticsResponse{DailyStats: []dto.DailyStat{}}, nil
		},
	}

	e := echo.New()
	NewAnalyticsHandler(svc, newTestLogger(t)).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/analytics/wallet-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wallet-1", gotAddress)
	assert.Equal(t, 7, gotDays)
	assert.JSONEq(t, `{"daily_stats": []}`, rec.Body.String())
}

func TestGetAlerts_Stub(t *testing.T) {
	e := echo.New()
	NewAlertHandler(newTestLogger(t)).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/alerts?user_id=user-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"alerts": []}`, rec.Body.String())
}

func TestGetAlerts_MissingUserID(t *testing.T) {
	e := echo.New()
	NewAlertHandler(newTestLogger(t)).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user_id is required", body.Detail)
}
