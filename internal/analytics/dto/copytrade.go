package dto

// CopyTradeSetupRequest is the structured body for creating or updating a
// copy trade setup. Unknown fields in the payload are ignored; missing
// numeric fields default to zero values.
type CopyTradeSetupRequest struct {
	WalletAddress string  `json:"wallet_address"`
	Active        bool    `json:"active"`
	MaxTradeSize  float64 `json:"max_trade_size"`
	StopLoss      float64 `json:"stop_loss"`
	TakeProfit    float64 `json:"take_profit"`
	Notes         string  `json:"notes"`
}

// CopyTradeSettingsResponse is the response body for copy trade settings.
type CopyTradeSettingsResponse struct {
	Active       bool    `json:"active"`
	MaxTradeSize float64 `json:"max_trade_size"`
	StopLoss     float64 `json:"stop_loss"`
	TakeProfit   float64 `json:"take_profit"`
	Notes        string  `json:"notes"`
}

// CopyTradeSetupResponse acknowledges a successful setup upsert.
type CopyTradeSetupResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
