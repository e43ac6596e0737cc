// Package bot serves value lookups over Telegram commands.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"tradevalues/internal/transport/bot/handler"
	"tradevalues/pkg/logx"
)

// pollTimeout is the long polling timeout in seconds.
const pollTimeout = 30

type Bot struct {
	bot     *telego.Bot
	handler *handler.Handler
	adminID int64
}

func New(bot *telego.Bot, h *handler.Handler, adminID int64) *Bot {
	return &Bot{
		bot:     bot,
		handler: h,
		adminID: adminID,
	}
}

// Run long-polls updates until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: pollTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	bh, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(bh, b.adminID)

	go func() {
		if err := bh.Start(); err != nil {
			logger(ctx).Error("bot handler stopped", logx.Error(err))
		}
	}()

	logger(ctx).Info("bot commands started", slog.Bool("admin-commands", b.adminID != 0))

	<-ctx.Done()

	if err := bh.Stop(); err != nil {
		logger(ctx).Warn("bot handler stop", logx.Error(err))
	}

	return nil
}
