package entity

import "time"

// CopyTradeSetup holds the copy trading limits configured for a wallet.
// At most one row exists per wallet address; writes are last-write-wins upserts.
type CopyTradeSetup struct {
	ID            uint      `gorm:"primaryKey"`
	WalletAddress string    `gorm:"column:wallet_address;uniqueIndex;not null"`
	Active        bool      `gorm:"column:active"`
	MaxTradeSize  float64   `gorm:"column:max_trade_size"`
	StopLoss      float64   `gorm:"column:stop_loss"`
	TakeProfit    float64   `gorm:"column:take_profit"`
	Notes         string    `gorm:"column:notes"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CopyTradeSetup) TableName() string {
	return "copy_trade_setups"
}
