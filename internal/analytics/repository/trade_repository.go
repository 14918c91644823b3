package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DailyTradeStat is one per-day aggregate bucket of a wallet's trades.
type DailyTradeStat struct {
	Date       time.Time `gorm:"column:date"`
	Trades     int64     `gorm:"column:trades"`
	Successful int64     `gorm:"column:successful"`
	DailyPnl   float64   `gorm:"column:daily_pnl"`
}

// TradeRepository defines the interface for trade event data operations.
type TradeRepository interface {
	GetDailyStats(ctx context.Context, address string, days int) ([]DailyTradeStat, error)
}

// NewTradeRepository creates a new GORM-based trade repository.
func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

type tradeRepository struct {
	db *gorm.DB
}

// GetDailyStats aggregates a wallet's trades from the last N days into daily
// buckets. Executed sells count toward PnL positively, everything else
// negatively.
func (r *tradeRepository) GetDailyStats(ctx context.Context, address string, days int) ([]DailyTradeStat, error) {
	query := fmt.Sprintf(`
	SELECT
		DATE_TRUNC('day', t.created_at) AS date,
		COUNT(*) AS trades,
		SUM(CASE WHEN t.status = 'executed' THEN 1 ELSE 0 END) AS successful,
		SUM(CASE
			WHEN t.trade_type = 'sell' AND t.status = 'executed'
			THEN t.price_usd * t.amount
			ELSE -t.price_usd * t.amount
			END) AS daily_pnl
	FROM trades AS t
	WHERE t.wallet_address = ?
	AND t.created_at >= NOW() - INTERVAL '%d days'
	GROUP BY DATE_TRUNC('day', t.created_at)
	ORDER BY date ASC
`, days)

	var stats []DailyTradeStat
	if err := r.db.WithContext(ctx).Raw(query, address).Scan(&stats).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
