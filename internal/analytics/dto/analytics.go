package dto

import "time"

// DailyStat is one per-day trade bucket in the wallet analytics response.
type DailyStat struct {
	Date       time.Time `json:"date"`
	Trades     int64     `json:"trades"`
	Successful int64     `json:"successful"`
	DailyPnl   float64   `json:"daily_pnl"`
}

// WalletAnalyticsResponse is the response body for the wallet analytics endpoint.
type WalletAnalyticsResponse struct {
	DailyStats []DailyStat `json:"daily_stats"`
}
