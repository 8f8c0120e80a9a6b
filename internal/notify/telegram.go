package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
)

// telegramSender is the subset of *bot.Bot used for delivery.
type telegramSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// TelegramNotifier implements Notifier by posting Markdown messages to a chat.
type TelegramNotifier struct {
	sender telegramSender
	chatID int64
}

// NewTelegramNotifier creates a TelegramNotifier for the given bot token and chat.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	b, err := bot.New(token, bot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	return &TelegramNotifier{sender: b, chatID: chatID}, nil
}

// Name returns "telegram".
func (n *TelegramNotifier) Name() string { return "telegram" }

// SendAlert sends one alert as a Telegram message.
func (n *TelegramNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	return n.send(ctx, formatTelegramAlert(alert))
}

// SendBatchAlert sends a digest of alerts as one Telegram message.
func (n *TelegramNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload, title string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*%d alerts from %s*\n", len(alerts), title)
	for i := range alerts {
		a := &alerts[i]
		fmt.Fprintf(&sb, "\n[%s] %s: %s -> %s (%s)",
			strings.ToUpper(a.Priority), a.ProductName, a.OldValue, a.NewValue, a.ChangePercent)
	}
	return n.send(ctx, sb.String())
}

func formatTelegramAlert(a *AlertPayload) string {
	return fmt.Sprintf(
		"*[%s] %s*\n%s\n\n"+
			"*ASIN:* %s\n"+
			"*Type:* %s\n"+
			"*Ours:* %s\n"+
			"*Competitor:* %s\n"+
			"*Change:* %s",
		strings.ToUpper(a.Priority),
		a.ProductName,
		a.Message,
		a.ASIN,
		a.AlertType,
		a.OldValue,
		a.NewValue,
		a.ChangePercent,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	params := &bot.SendMessageParams{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	}
	if _, err := n.sender.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("sending telegram message to chat_id %d: %w", n.chatID, err)
	}
	return nil
}
