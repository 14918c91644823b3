package entity

import (
	"time"

	"gorm.io/datatypes"
)

// WalletAnalysis holds the aggregated trading statistics for a single wallet.
// The row is produced by an external ingestion pipeline; nullable numeric
// columns are kept as pointers so missing aggregates stay distinguishable
// from zero values.
type WalletAnalysis struct {
	ID               uint           `gorm:"primaryKey"`
	WalletAddress    string         `gorm:"column:wallet_address;uniqueIndex;not null"`
	TotalPnlUSD      *float64       `gorm:"column:total_pnl_usd"`
	Winrate          *float64       `gorm:"column:winrate"`
	TotalTrades      *int64         `gorm:"column:total_trades"`
	RoiPercentage    *float64       `gorm:"column:roi_percentage"`
	AvgTradeSize     *float64       `gorm:"column:avg_trade_size"`
	TotalVolume      *float64       `gorm:"column:total_volume"`
	ConsistencyScore *float64       `gorm:"column:consistency_score"`
	TokenMetrics     datatypes.JSON `gorm:"column:token_metrics;type:jsonb"`
	RiskMetrics      datatypes.JSON `gorm:"column:risk_metrics;type:jsonb"`
	LastUpdated      time.Time      `gorm:"column:last_updated"`
}

func (WalletAnalysis) TableName() string {
	return "wallet_analysis"
}
