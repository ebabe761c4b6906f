package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

const maxRetryAfter = 5 * time.Second

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier mirrors stored notifications into the user's linked chat.
// Without a bot token it only logs.
type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, chat delivery disabled")
		return &TelegramNotifier{logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, logger: log}, nil
}

func (n *TelegramNotifier) Push(ctx context.Context, user *domain.User, note *domain.Notification) {
	switch {
	case n.bot == nil:
		return
	case user.TelegramChatID == nil:
		n.logger.Debug("telegram skipped, no chat linked", logger.String("user_id", user.ID))
		return
	}

	chatID := *user.TelegramChatID
	msg := tgbotapi.NewMessage(chatID, formatMessage(note))
	msg.ParseMode = tgbotapi.ModeMarkdown

	err := n.send(ctx, msg)
	metrics.NotificationsDelivered.WithLabelValues("telegram", metrics.Result(err)).Inc()
	if err != nil {
		n.logger.Error("telegram delivery failed",
			logger.String("user_id", user.ID),
			logger.Int64("chat_id", chatID),
			logger.String("notification_id", note.ID),
			logger.String("error", err.Error()),
		)
	}
}

// send retries once when Telegram asks to back off for a short while.
func (n *TelegramNotifier) send(ctx context.Context, msg tgbotapi.MessageConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := n.bot.Send(msg)
	wait, ok := retryAfter(err)
	if !ok {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
	}
	_, err = n.bot.Send(msg)
	return err
}

func retryAfter(err error) (time.Duration, bool) {
	var tgErr *tgbotapi.Error
	if !errors.As(err, &tgErr) || tgErr.RetryAfter <= 0 {
		return 0, false
	}
	wait := time.Duration(tgErr.RetryAfter) * time.Second
	if wait > maxRetryAfter {
		return 0, false
	}
	return wait, true
}

func formatMessage(note *domain.Notification) string {
	return fmt.Sprintf("*%s*\n\n%s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, note.Title),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, note.Message),
	)
}
