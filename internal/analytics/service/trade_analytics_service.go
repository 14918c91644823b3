package service

import (
	"context"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/analytics/repository"
	"copytrade-analytics/pkg/logger"
)

// TradeAnalyticsService defines the interface for per-wallet trade analytics.
type TradeAnalyticsService interface {
	GetDailyStats(ctx context.Context, address string, days int) (*dto.WalletAnalyticsResponse, error)
}

// NewTradeAnalyticsService creates a new trade analytics service.
func NewTradeAnalyticsService(tradeRepo repository.TradeRepository, logger *logger.Logger) TradeAnalyticsService {
	return &tradeAnalyticsService{
		tradeRepo: tradeRepo,
		logger:    logger,
	}
}

type tradeAnalyticsService struct {
	tradeRepo repository.TradeRepository
	logger    *logger.Logger
}

// GetDailyStats aggregates a wallet's trades over the last N days into
// per-day buckets, oldest first.
func (s *tradeAnalyticsService) GetDailyStats(ctx context.Context, address string, days int) (*dto.WalletAnalyticsResponse, error) {
	rows, err := s.tradeRepo.GetDailyStats(ctx, address, days)
	if err != nil {
		s.logger.Error("Failed to query daily trade stats", logger.ErrorField(err), logger.Field("address", address))
		return nil, err
	}

	stats := make([]dto.DailyStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, dto.DailyStat{
			Date:       row.Date,
			Trades:     row.Trades,
			Successful: row.Successful,
			DailyPnl:   row.DailyPnl,
		})
	}

	return &dto.WalletAnalyticsResponse{DailyStats: stats}, nil
}
