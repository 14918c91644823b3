package service

import (
	"context"

	"copytrade-analytics/internal/analytics/dto"
	"copytrade-analytics/internal/analytics/repository"
	"copytrade-analytics/pkg/common"
	"copytrade-analytics/pkg/logger"

	gocache "github.com/patrickmn/go-cache"
)

// StatsService defines the interface for system-wide statistics.
type StatsService interface {
	GetOverview(ctx context.Context) (*dto.SystemStatsResponse, error)
}

// NewStatsService creates a new stats service. The overview is cached
// in-process for the given TTL; individual wallet scores are never cached.
func NewStatsService(statsRepo repository.StatsRepository, cache *gocache.Cache, logger *logger.Logger) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		cache:     cache,
		logger:    logger,
	}
}

type statsService struct {
	statsRepo repository.StatsRepository
	cache     *gocache.Cache
	logger    *logger.Logger
}

// GetOverview computes global aggregates plus week-over-week trend deltas.
func (s *statsService) GetOverview(ctx context.Context) (*dto.SystemStatsResponse, error) {
	if s.cache != nil {
		if cached, found := s.cache.Get(common.CacheKeySystemStatsOverview); found {
			return cached.(*dto.SystemStatsResponse), nil
		}
	}

	overview, err := s.statsRepo.GetOverview(ctx)
	if err != nil {
		s.logger.Error("Failed to query system overview", logger.ErrorField(err))
		return nil, err
	}

	trends, err := s.statsRepo.GetWeeklyTrends(ctx)
	if err != nil {
		s.logger.Error("Failed to query weekly trends", logger.ErrorField(err))
		return nil, err
	}

	resp := &dto.SystemStatsResponse{
		TotalWallets:   overview.TotalWallets,
		AverageROI:     round2(overview.AvgROI.Float64),
		AverageWinrate: round2(overview.AvgWinrate.Float64),
		TopPerformers:  overview.TopPerformers,
		BestROI:        round2(overview.BestROI.Float64),
		WorstROI:       round2(overview.WorstROI.Float64),
		Trends: []dto.TrendDelta{{
			RoiChange:           trends.RoiChange.Float64,
			WinrateChange:       trends.WinrateChange.Float64,
			WalletCountChange:   trends.WalletCountChange.Float64,
			TopPerformersChange: trends.TopPerformersChange.Float64,
		}},
	}

	if s.cache != nil {
		s.cache.Set(common.CacheKeySystemStatsOverview, resp, gocache.DefaultExpiration)
	}

	return resp, nil
}
