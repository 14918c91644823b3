package telegram

import (
	"fmt"
	"strings"

	"copytrade-analytics/internal/entity"
)

// FormatCopyTradeSetup formats a copy trade setup change into a Markdown string for Telegram.
func FormatCopyTradeSetup(setup *entity.CopyTradeSetup) string {
	var b strings.Builder

	if setup.Active {
		b.WriteString("🟢 *Copy Trade Activated*\n\n")
	} else {
		b.WriteString("🔴 *Copy Trade Deactivated*\n\n")
	}

	b.WriteString(fmt.Sprintf("👛 *Wallet:* `%s`\n", setup.WalletAddress))
	b.WriteString(fmt.Sprintf("💰 *Max Trade Size:* $%.2f\n", setup.MaxTradeSize))
	b.WriteString(fmt.Sprintf("🛑 *Stop Loss:* %.1f%%\n", setup.StopLoss))
	b.WriteString(fmt.Sprintf("🎯 *Take Profit:* %.1f%%\n", setup.TakeProfit))

	if setup.Notes != "" {
		b.WriteString(fmt.Sprintf("📝 *Notes:* %s\n", setup.Notes))
	}

	return b.String()
}
