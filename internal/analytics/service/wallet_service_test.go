package service

import (
	"context"
	"testing"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/analytics/repository"
	"copytrade-analytics/internal/entity"
	"copytrade-analytics/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	return log
}

type mockWalletRepository struct {
	findTopFn       func(ctx context.Context, filter repository.TopWalletsFilter) ([]entity.WalletAnalysis, error)
	findByAddressFn func(ctx context.Context, address string) (*entity.WalletAnalysis, error)
	findPageFn      func(ctx context.Context, offset, limit int, sortBy string, sortDesc bool) ([]entity.WalletAnalysis, error)
	countFn         func(ctx context.Context) (int64, error)
}

func (m *mockWalletRepository) FindTop(ctx context.Context, filter repository.TopWalletsFilter) ([]entity.WalletAnalysis, error) {
	return m.findTopFn(ctx, filter)
}

func (m *mockWalletRepository) FindByAddress(ctx context.Context, address string) (*entity.WalletAnalysis, error) {
	return m.findByAddressFn(ctx, address)
}

func (m *mockWalletRepository) FindPage(ctx context.Context, offset, limit int, sortBy string, sortDesc bool) ([]entity.WalletAnalysis, error) {
	return m.findPageFn(ctx, offset, limit, sortBy, sortDesc)
}

func (m *mockWalletRepository) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

func TestGetTopWallets_SortsByTotalScore(t *testing.T) {
	// Store order is ROI descending; the high-consistency wallet wins on
	// total score despite the lower ROI.
	repo := &mockWalletRepository{
		findTopFn: func(ctx context.Context, filter repository.TopWalletsFilter) ([]entity.WalletAnalysis, error) {
			return []entity.WalletAnalysis{
				{
					WalletAddress:    "high-roi",
					RoiPercentage:    floatPtr(90),
					ConsistencyScore: floatPtr(10),
					TotalVolume:      floatPtr(1000),
					TotalTrades:      intPtr(5),
					TotalPnlUSD:      floatPtr(100),
					Winrate:          floatPtr(55),
				},
				{
					WalletAddress:    "high-score",
					RoiPercentage:    floatPtr(60),
					ConsistencyScore: floatPtr(95),
					TotalVolume:      floatPtr(90000),
					TotalTrades:      intPtr(180),
					TotalPnlUSD:      floatPtr(500),
					Winrate:          floatPtr(70),
				},
			}, nil
		},
	}

	svc := NewWalletService(repo, newTestLogger(t))
	wallets, err := svc.GetTopWallets(context.Background(), &dto.TopWalletsRequest{Limit: 50})
	require.NoError(t, err)
	require.Len(t, wallets, 2)

	assert.Equal(t, "high-score", wallets[0].Address)
	assert.Equal(t, "high-roi", wallets[1].Address)
	assert.Greater(t, wallets[0].TotalScore, wallets[1].TotalScore)
}

func TestGetTopWallets_EmptyResultIsNotAnError(t *testing.T) {
	repo := &mockWalletRepository{
		findTopFn: func(ctx context.Context, filter repository.TopWalletsFilter) ([]entity.WalletAnalysis, error) {
			assert.Equal(t, 1000.0, filter.MinROI)
			return nil, nil
		},
	}

	svc := NewWalletService(repo, newTestLogger(t))
	wallets, err := svc.GetTopWallets(context.Background(), &dto.TopWalletsRequest{MinROI: 1000, Limit: 50})
	require.NoError(t, err)
	assert.NotNil(t, wallets)
	assert.Empty(t, wallets)
}

func TestGetTopWallets_AvgProfitGuardsZeroTrades(t *testing.T) {
	repo := &mockWalletRepository{
		findTopFn: func(ctx context.Context, filter repository.TopWalletsFilter) ([]entity.WalletAnalysis, error) {
			return []entity.WalletAnalysis{
				{
					WalletAddress: "no-trades",
					TotalPnlUSD:   floatPtr(12345),
					TotalTrades:   intPtr(0),
				},
				{
					WalletAddress: "with-trades",
					TotalPnlUSD:   floatPtr(100),
					TotalTrades:   intPtr(4),
				},
			}, nil
		},
	}

	svc := NewWalletService(repo, newTestLogger(t))
	wallets, err := svc.GetTopWallets(context.Background(), &dto.TopWalletsRequest{Limit: 50})
	require.NoError(t, err)
	require.Len(t, wallets, 2)

	byAddress := map[string]dto.WalletScoreResponse{}
	for _, w := range wallets {
		byAddress[w.Address] = w
	}
	assert.Equal(t, 0.0, byAddress["no-trades"].AvgProfit)
	assert.Equal(t, 25.0, byAddress["with-trades"].AvgProfit)
}

func TestGetTopWallets_MalformedMetricsStillReturned(t *testing.T) {
	repo := &mockWalletRepository{
		findTopFn: func(ctx context.Context, filter repository.TopWalletsFilter) ([]entity.WalletAnalysis, error) {
			return []entity.WalletAnalysis{
				{
					WalletAddress: "broken",
					RoiPercentage: floatPtr(80),
					RiskMetrics:   datatypes.JSON(`{broken`),
				},
			}, nil
		},
	}

	svc := NewWalletService(repo, newTestLogger(t))
	wallets, err := svc.GetTopWallets(context.Background(), &dto.TopWalletsRequest{Limit: 50})
	require.NoError(t, err)
	require.Len(t, wallets, 1)

	assert.Equal(t, 0.0, wallets[0].TotalScore)
	assert.Equal(t, map[string]interface{}{}, wallets[0].RiskMetrics)
}

func TestGetWalletDetail_NotFound(t *testing.T) {
	repo := &mockWalletRepository{
		findByAddressFn: func(ctx context.Context, address string) (*entity.WalletAnalysis, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewWalletService(repo, newTestLogger(t))
	_, err := svc.GetWalletDetail(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestGetWalletDetail_MapsRowAndScores(t *testing.T) {
	repo := &mockWalletRepository{
		findByAddressFn: func(ctx context.Context, address string) (*entity.WalletAnalysis, error) {
			return &entity.WalletAnalysis{
				WalletAddress:    address,
				TotalPnlUSD:      floatPtr(1500),
				Winrate:          floatPtr(65),
				TotalTrades:      intPtr(100),
				AvgTradeSize:     floatPtr(120),
				RoiPercentage:    floatPtr(80),
				TotalVolume:      floatPtr(50000),
				ConsistencyScore: floatPtr(70),
				TokenMetrics:     datatypes.JSON(`[]`),
				RiskMetrics:      datatypes.JSON(`{"max_drawdown": 15}`),
			}, nil
		},
	}

	svc := NewWalletService(repo, newTestLogger(t))
	detail, err := svc.GetWalletDetail(context.Background(), "wallet-1")
	require.NoError(t, err)

	assert.Equal(t, "wallet-1", detail.Address)
	assert.Equal(t, 1500.0, detail.TotalPnl)
	assert.Equal(t, int64(100), detail.TradeCount)
	assert.Equal(t, 65.0, detail.Scores.TotalScore)
	assert.Equal(t, 85.0, detail.Scores.RiskScore)
}

func TestGetWalletsPage_PaginationMath(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		pageSize   int
		wantPages  int64
		wantOffset int
	}{
		{name: "exact division", total: 100, page: 1, pageSize: 20, wantPages: 5, wantOffset: 0},
		{name: "remainder rounds up", total: 101, page: 2, pageSize: 20, wantPages: 6, wantOffset: 20},
		{name: "single page", total: 3, page: 1, pageSize: 20, wantPages: 1, wantOffset: 0},
		{name: "empty table", total: 0, page: 1, pageSize: 20, wantPages: 0, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOffset int
			repo := &mockWalletRepository{
				countFn: func(ctx context.Context) (int64, error) { return tt.total, nil },
				findPageFn: func(ctx context.Context, offset, limit int, sortBy string, sortDesc bool) ([]entity.WalletAnalysis, error) {
					gotOffset = offset
					return nil, nil
				},
			}

			svc := NewWalletService(repo, newTestLogger(t))
			page, err := svc.GetWalletsPage(context.Background(), &dto.WalletPageRequest{
				Page:     tt.page,
				PageSize: tt.pageSize,
				SortBy:   "roi_percentage",
				SortDesc: true,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.wantOffset, gotOffset)
		})
	}
}

func TestGetWalletsPage_BeyondLastPageIsEmpty(t *testing.T) {
	repo := &mockWalletRepository{
		countFn: func(ctx context.Context) (int64, error) { return 5, nil },
		findPageFn: func(ctx context.Context, offset, limit int, sortBy string, sortDesc bool) ([]entity.WalletAnalysis, error) {
			return nil, nil
		},
	}

	svc := NewWalletService(repo, newTestLogger(t))
	page, err := svc.GetWalletsPage(context.Background(), &dto.WalletPageRequest{
		Page:     99,
		PageSize: 20,
		SortBy:   "roi_percentage",
	})
	require.NoError(t, err)

	assert.NotNil(t, page.Wallets)
	assert.Empty(t, page.Wallets)
}

func TestGetWalletsPage_InvalidSortColumn(t *testing.T) {
	// The repository must never be reached with an unknown column.
	repo := &mockWalletRepository{}

	svc := NewWalletService(repo, newTestLogger(t))
	_, err := svc.GetWalletsPage(context.Background(), &dto.WalletPageRequest{
		Page:     1,
		PageSize: 20,
		SortBy:   "roi_percentage; DROP TABLE wallet_analysis",
	})
	assert.ErrorIs(t, err, ErrInvalidSortColumn)
}
