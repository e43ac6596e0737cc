package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"tradevalues/internal/domain/service/alert"
	"tradevalues/pkg/logx"
)

// TelegramBot delivers alert notifications to a single operator chat.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64, client *http.Client, extra ...telego.BotOption) (*TelegramBot, error) {
	opts := []telego.BotOption{telego.WithDiscardLogger()}
	if client != nil {
		opts = append(opts, telego.WithHTTPClient(client))
	}

	opts = append(opts, extra...)

	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (b *TelegramBot) Notify(ctx context.Context, n alert.Notification) error {
	text := fmt.Sprintf(
		"🔔 <b>%s</b>\n\n%s\n\n<i>user:</i> <code>%s</code>",
		html.EscapeString(n.Title),
		html.EscapeString(n.Text),
		html.EscapeString(n.UserID.String()),
	)

	msg := tu.Message(tu.ID(b.chatID), text).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	logger(ctx).Debug("alert notification sent", slog.String(logx.FieldAlertID, n.AlertID.String()))

	return nil
}
