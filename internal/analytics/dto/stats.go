package dto

// TrendDelta holds week-over-week percentage changes for the system stats.
type TrendDelta struct {
	RoiChange           float64 `json:"roi_change"`
	WinrateChange       float64 `json:"winrate_change"`
	WalletCountChange   float64 `json:"wallet_count_change"`
	TopPerformersChange float64 `json:"top_performers_change"`
}

// SystemStatsResponse is the response body for the system stats overview.
type SystemStatsResponse struct {
	TotalWallets   int64        `json:"total_wallets"`
	AverageROI     float64      `json:"average_roi"`
	AverageWinrate float64      `json:"average_winrate"`
	TopPerformers  int64        `json:"top_performers"`
	BestROI        float64      `json:"best_roi"`
	WorstROI       float64      `json:"worst_roi"`
	Trends         []TrendDelta `json:"trends"`
}

// AlertsResponse is the response body for the alerts endpoint.
type AlertsResponse struct {
	Alerts []interface{} `json:"alerts"`
}
