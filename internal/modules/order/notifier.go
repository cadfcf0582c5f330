package order

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers an order summary to the configured chat channel.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type telegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authenticates the bot and returns a Notifier
// posting Markdown messages into one chat.
func NewTelegramNotifier(token string, chatID int64) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &telegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *telegramNotifier) Send(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// logNotifier writes order summaries to the process log. It backs
// local development where no bot token is configured.
type logNotifier struct{}

func NewLogNotifier() Notifier { return logNotifier{} }

func (logNotifier) Send(ctx context.Context, text string) error {
	log.Printf("order notification:\n%s", text)
	return nil
}
