package dto

import "time"

// TopWalletsRequest holds the filter criteria for the top wallets endpoint.
type TopWalletsRequest struct {
	MinROI     float64 `query:"min_roi"`
	MinWinRate float64 `query:"min_win_rate"`
	MinTrades  int     `query:"min_trades"`
	MinVolume  float64 `query:"min_volume"`
	MinProfit  float64 `query:"min_profit"`
	RiskLevel  string  `query:"risk_level"`
	TimeFrame  string  `query:"time_frame"`
	Limit      int     `query:"limit"`
}

// WalletScores holds the composite score output for a wallet.
type WalletScores struct {
	TotalScore       float64                  `json:"total_score"`
	RoiScore         float64                  `json:"roi_score"`
	ConsistencyScore float64                  `json:"consistency_score"`
	VolumeScore      float64                  `json:"volume_score"`
	RiskScore        float64                  `json:"risk_score"`
	RiskMetrics      map[string]interface{}   `json:"risk_metrics"`
	TokenStats       []map[string]interface{} `json:"token_stats"`
}

// WalletScoreResponse is a single entry in the top wallets response.
type WalletScoreResponse struct {
	Address          string                   `json:"address"`
	TotalScore       float64                  `json:"total_score"`
	RoiScore         float64                  `json:"roi_score"`
	ConsistencyScore float64                  `json:"consistency_score"`
	VolumeScore      float64                  `json:"volume_score"`
	RiskScore        float64                  `json:"risk_score"`
	TradeCount       int64                    `json:"trade_count"`
	WinRate          float64                  `json:"win_rate"`
	AvgProfit        float64                  `json:"avg_profit"`
	MaxDrawdown      float64                  `json:"max_drawdown"`
	SharpeRatio      float64                  `json:"sharpe_ratio"`
	TokenStats       []map[string]interface{} `json:"token_stats"`
	RiskMetrics      map[string]interface{}   `json:"risk_metrics"`
}

// WalletDetailResponse is the response body for the wallet detail endpoint.
type WalletDetailResponse struct {
	Address          string                   `json:"address"`
	TotalPnl         float64                  `json:"total_pnl"`
	WinRate          float64                  `json:"win_rate"`
	TradeCount       int64                    `json:"trade_count"`
	AvgTradeSize     float64                  `json:"avg_trade_size"`
	Roi              float64                  `json:"roi"`
	Volume           float64                  `json:"volume"`
	ConsistencyScore float64                  `json:"consistency_score"`
	Tokens           []map[string]interface{} `json:"tokens"`
	RiskMetrics      map[string]interface{}   `json:"risk_metrics"`
	Scores           WalletScores             `json:"scores"`
	LastUpdated      time.Time                `json:"last_updated"`
}

// WalletPageRequest holds the pagination parameters for the wallet list endpoint.
type WalletPageRequest struct {
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
	SortBy   string `query:"sort_by"`
	SortDesc bool   `query:"sort_desc"`
}

// WalletPageItem is a single wallet entry in the paginated list, with the
// computed scores flattened inline.
type WalletPageItem struct {
	Address    string  `json:"address"`
	TotalPnl   float64 `json:"total_pnl"`
	WinRate    float64 `json:"win_rate"`
	TradeCount int64   `json:"trade_count"`
	Roi        float64 `json:"roi"`
	Volume     float64 `json:"volume"`
	WalletScores
}

// WalletPageResponse is the response body for the paginated wallet list.
type WalletPageResponse struct {
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int64            `json:"total_pages"`
	Wallets    []WalletPageItem `json:"wallets"`
}
