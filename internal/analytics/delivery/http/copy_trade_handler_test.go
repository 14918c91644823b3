package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"copytrade-analytics/internal/analytics/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCopyTradeService struct {
	getSettingsFn func(ctx context.Context, address string) (*dto.CopyTradeSettingsResponse, error)
	saveSetupFn   func(ctx context.Context, req *dto.CopyTradeSetupRequest) error
}

func (m *mockCopyTradeService) GetSettings(ctx context.Context, address string) (*dto.CopyTradeSettingsResponse, error) {
	return m.getSettingsFn(ctx, address)
}

func (m *mockCopyTradeService) SaveSetup(ctx context.Context, req *dto.CopyTradeSetupRequest) error {
	return m.saveSetupFn(ctx, req)
}

func TestGetSettings_ReturnsDefaults(t *testing.T) {
	svc := &mockCopyTradeService{
		getSettingsFn: func(ctx context.Context, address string) (*dto.CopyTradeSettingsResponse, error) {
			assert.Equal(t, "wallet-1", address)
			return &dto.CopyTradeSettingsResponse{
				Active:       false,
				MaxTradeSize: 500,
				StopLoss:     10,
				TakeProfit:   20,
				Notes:        "",
			}, nil
		},
	}

	e := echo.New()
	NewCopyTradeHandler(svc, newTestLogger(t)).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/copytrade/settings/wallet-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"active": false, "max_trade_size": 500, "stop_loss": 10, "take_profit": 20, "notes": ""}`, rec.Body.String())
}

func TestSaveSetup_Success(t *testing.T) {
	var got *dto.CopyTradeSetupRequest
	svc := &mockCopyTradeService{
		saveSetupFn: func(ctx context.Context, req *dto.CopyTradeSetupRequest) error {
			got = req
			return nil
		},
	}

	e := echo.New()
	NewCopyTradeHandler(svc, newTestLogger(t)).RegisterRoutes(e)

	body := `{"wallet_address": "wallet-1", "active": true, "max_trade_size": 750, "stop_loss": 5, "take_profit": 25, "notes": "whale", "unknown_field": 42}`
	req := httptest.NewRequest(http.MethodPost, "/copytrade/setup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "success", "message": "Copy trade setup updated"}`, rec.Body.String())

	require.NotNil(t, got)
	assert.Equal(t, "wallet-1", got.WalletAddress)
	assert.True(t, got.Active)
	assert.Equal(t, 750.0, got.MaxTradeSize)
}

func TestSaveSetup_MissingAddress(t *testing.T) {
	svc := &mockCopyTradeService{
		saveSetupFn: func(ctx context.Context, req *dto.CopyTradeSetupRequest) error {
			t.Fatal("service must not be called without wallet_address")
			return nil
		},
	}

	e := echo.New()
	NewCopyTradeHandler(svc, newTestLogger(t)).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPost, "/copytrade/setup", strings.NewReader(`{"active": true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveSetup_InvalidJSON(t *testing.T) {
	svc := &mockCopyTradeService{
		saveSetupFn: func(ctx context.Context, req *dto.CopyTradeSetupRequest) error {
			t.Fatal("service must not be called for malformed payload")
			return nil
		},
	}

	e := echo.New()
	NewCopyTradeHandler(svc, newTestLogger(t)).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPost, "/copytrade/setup", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
