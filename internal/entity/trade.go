package entity

import "time"

// Trade is an append-only event row for an executed or attempted trade.
// This service only reads trades to derive daily aggregates.
type Trade struct {
	ID            uint      `gorm:"primaryKey"`
	WalletAddress string    `gorm:"column:wallet_address;index;not null"`
	TradeType     string    `gorm:"column:trade_type;not null"`
	Status        string    `gorm:"column:status;not null"`
	PriceUSD      float64   `gorm:"column:price_usd"`
	Amount        float64   `gorm:"column:amount"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

const (
	TradeTypeBuy  = "buy"
	TradeTypeSell = "sell"

	TradeStatusExecuted = "executed"
)
