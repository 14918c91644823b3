package telegram

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier defines the interface for sending operator notifications.
type Notifier interface {
	SendMessage(text string) error
}

type notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewClient creates a Telegram-backed Notifier bound to a single chat.
func NewClient(botToken string, chatID int64) (Notifier, error) {
	if chatID == 0 {
		return nil, errors.New("telegram chat id is required")
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	return &notifier{bot: bot, chatID: chatID}, nil
}

// SendMessage sends a Markdown-formatted message to the configured chat.
func (n *notifier) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	_, err := n.bot.Send(msg)
	return err
}
