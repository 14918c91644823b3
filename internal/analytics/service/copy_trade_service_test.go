package service

import (
	"context"
	"testing"

	"copytrade-analytics/internal/analytics/config"
	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockCopyTradeRepository struct {
	setups map[string]*entity.CopyTradeSetup
}

func newMockCopyTradeRepository() *mockCopyTradeRepository {
	return &mockCopyTradeRepository{setups: map[string]*entity.CopyTradeSetup{}}
}

func (m *mockCopyTradeRepository) FindByAddress(ctx context.Context, address string) (*entity.CopyTradeSetup, error) {
	setup, ok := m.setups[address]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return setup, nil
}

func (m *mockCopyTradeRepository) Upsert(ctx context.Context, setup *entity.CopyTradeSetup) error {
	copied := *setup
	m.setups[setup.WalletAddress] = &copied
	return nil
}

func newCopyTradeService(repo *mockCopyTradeRepository, t *testing.T) CopyTradeService {
	return NewCopyTradeService(repo, nil, nil, newTestLogger(t), &config.Config{})
}

func TestGetSettings_DefaultsWhenMissing(t *testing.T) {
	svc := newCopyTradeService(newMockCopyTradeRepository(), t)

	settings, err := svc.GetSettings(context.Background(), "unknown")
	require.NoError(t, err)

	assert.False(t, settings.Active)
	assert.Equal(t, 500.0, settings.MaxTradeSize)
	assert.Equal(t, 10.0, settings.StopLoss)
	assert.Equal(t, 20.0, settings.TakeProfit)
	assert.Equal(t, "", settings.Notes)
}

func TestSaveSetup_ThenGetSettings(t *testing.T) {
	repo := newMockCopyTradeRepository()
	svc := newCopyTradeService(repo, t)

	err := svc.SaveSetup(context.Background(), &dto.CopyTradeSetupRequest{
		WalletAddress: "wallet-1",
		Active:        true,
		MaxTradeSize:  750,
		StopLoss:      5,
		TakeProfit:    25,
		Notes:         "whale",
	})
	require.NoError(t, err)

	settings, err := svc.GetSettings(context.Background(), "wallet-1")
	require.NoError(t, err)
	assert.True(t, settings.Active)
	assert.Equal(t, 750.0, settings.MaxTradeSize)
	assert.Equal(t, "whale", settings.Notes)
}

func TestSaveSetup_SecondWriteReplacesFirst(t *testing.T) {
	repo := newMockCopyTradeRepository()
	svc := newCopyTradeService(repo, t)

	require.NoError(t, svc.SaveSetup(context.Background(), &dto.CopyTradeSetupRequest{
		WalletAddress: "wallet-1",
		Active:        true,
		MaxTradeSize:  750,
		StopLoss:      5,
		TakeProfit:    25,
		Notes:         "first",
	}))

	// Second write omits notes and flips active; nothing from the first
	// write survives.
	require.NoError(t, svc.SaveSetup(context.Background(), &dto.CopyTradeSetupRequest{
		WalletAddress: "wallet-1",
		Active:        false,
		MaxTradeSize:  100,
	}))

	settings, err := svc.GetSettings(context.Background(), "wallet-1")
	require.NoError(t, err)
	assert.False(t, settings.Active)
	assert.Equal(t, 100.0, settings.MaxTradeSize)
	assert.Equal(t, 0.0, settings.StopLoss)
	assert.Equal(t, 0.0, settings.TakeProfit)
	assert.Equal(t, "", settings.Notes)
}
