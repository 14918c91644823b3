package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// SystemOverviewRow holds the global aggregates over profitable wallets.
type SystemOverviewRow struct {
	TotalWallets  int64           `gorm:"column:total_wallets"`
	AvgROI        sql.NullFloat64 `gorm:"column:avg_roi"`
	AvgWinrate    sql.NullFloat64 `gorm:"column:avg_winrate"`
	TopPerformers int64           `gorm:"column:top_performers"`
	BestROI       sql.NullFloat64 `gorm:"column:best_roi"`
	WorstROI      sql.NullFloat64 `gorm:"column:worst_roi"`
}

// WeeklyTrendRow holds week-over-week percentage changes. Columns are null
// when the prior-period denominator is zero.
type WeeklyTrendRow struct {
	RoiChange           sql.NullFloat64 `gorm:"column:roi_change"`
	WinrateChange       sql.NullFloat64 `gorm:"column:winrate_change"`
	WalletCountChange   sql.NullFloat64 `gorm:"column:wallet_count_change"`
	TopPerformersChange sql.NullFloat64 `gorm:"column:top_performers_change"`
}

// StatsRepository defines the interface for system-wide statistics queries.
type StatsRepository interface {
	GetOverview(ctx context.Context) (*SystemOverviewRow, error)
	GetWeeklyTrends(ctx context.Context) (*WeeklyTrendRow, error)
}

// NewStatsRepository creates a new GORM-based stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

type statsRepository struct {
	db *gorm.DB
}

// GetOverview computes global averages and extrema over wallets with positive
// ROI and winrate.
func (r *statsRepository) GetOverview(ctx context.Context) (*SystemOverviewRow, error) {
	query := `
	SELECT
		COUNT(*) AS total_wallets,
		AVG(roi_percentage) AS avg_roi,
		AVG(winrate) AS avg_winrate,
		COUNT(*) FILTER (WHERE roi_percentage > 50 AND winrate > 60) AS top_performers,
		MAX(roi_percentage) AS best_roi,
		MIN(roi_percentage) AS worst_roi
	FROM wallet_analysis
	WHERE roi_percentage > 0
	AND winrate > 0
`

	var row SystemOverviewRow
	if err := r.db.WithContext(ctx).Raw(query).Scan(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}

// GetWeeklyTrends compares the last 7 days against the preceding 7 days.
// NULLIF guards every denominator so a zero prior period yields NULL instead
// of a division error.
func (r *statsRepository) GetWeeklyTrends(ctx context.Context) (*WeeklyTrendRow, error) {
	query := `
	WITH current_week AS (
		SELECT
			AVG(roi_percentage) AS curr_roi,
			AVG(winrate) AS curr_winrate,
			COUNT(*) AS curr_wallet_count,
			COUNT(*) FILTER (WHERE roi_percentage > 50 AND winrate > 60) AS curr_top_performers
		FROM wallet_analysis
		WHERE last_updated >= NOW() - INTERVAL '7 days'
	),
	prev_week AS (
		SELECT
			AVG(roi_percentage) AS prev_roi,
			AVG(winrate) AS prev_winrate,
			COUNT(*) AS prev_wallet_count,
			COUNT(*) FILTER (WHERE roi_percentage > 50 AND winrate > 60) AS prev_top_performers
		FROM wallet_analysis
		WHERE last_updated >= NOW() - INTERVAL '14 days'
		AND last_updated < NOW() - INTERVAL '7 days'
	)
	SELECT
		ROUND(((curr_roi - prev_roi) / NULLIF(prev_roi, 0) * 100)::numeric, 2) AS roi_change,
		ROUND(((curr_winrate - prev_winrate) / NULLIF(prev_winrate, 0) * 100)::numeric, 2) AS winrate_change,
		ROUND(((curr_wallet_count - prev_wallet_count) / NULLIF(prev_wallet_count, 0) * 100)::numeric, 2) AS wallet_count_change,
		ROUND(((curr_top_performers - prev_top_performers) / NULLIF(prev_top_performers, 0) * 100)::numeric, 2) AS top_performers_change
	FROM current_week, prev_week
`

	var row WeeklyTrendRow
	if err := r.db.WithContext(ctx).Raw(query).Scan(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}
