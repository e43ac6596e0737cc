package handler

import (
	"fmt"
	"log/slog"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/samber/lo"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/internal/transport/bot/view"
	"tradevalues/pkg/logx"
	"tradevalues/pkg/lox"
)

const (
	itemsPagePrefix = "items:"
	searchLimit     = 5
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnGames(ctx *th.Context, msg telego.Message) error {
	games, err := h.catalog.ListGames(ctx)
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Games(games))
}

func (h *Handler) OnItems(ctx *th.Context, msg telego.Message) error {
	args := strings.Fields(msg.Text)
	if len(args) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.ItemsUsage)
	}

	text, keyboard, err := h.itemsPage(ctx, args[1], 1)
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, err)
	}

	_, err = ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(msg.Chat.ID), text).
		WithParseMode(telego.ModeHTML).
		WithReplyMarkup(keyboard))

	return err
}

func (h *Handler) OnValue(ctx *th.Context, msg telego.Message) error {
	args := strings.Fields(msg.Text)
	if len(args) < 3 {
		return h.sendHTML(ctx, msg.Chat.ID, view.ValueUsage)
	}

	gameID, err := value.ParseGameID(args[1])
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.ValueUsage)
	}

	items, err := h.catalog.ListItems(ctx, gameID, entity.ItemFilter{Search: strings.Join(args[2:], " ")})
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Items(lo.Slice(items, 0, searchLimit)))
}

func (h *Handler) OnCalc(ctx *th.Context, msg telego.Message) error {
	gameID, offer, want, err := parseCalc(msg.Text)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.CalcUsage)
	}

	calc, err := h.valuation.Evaluate(ctx, gameID, offer, want)
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Calculation(calc))
}

func (h *Handler) OnReload(ctx *th.Context, msg telego.Message) error {
	if h.reload == nil {
		return h.sendHTML(ctx, msg.Chat.ID, "Reloading is disabled.")
	}

	changed, err := h.reload(ctx)
	if err != nil {
		return h.fail(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf("Catalog reloaded, %d values changed.", changed))
}

// parseCalc reads "/calc <game> <offer ids> vs <want ids>". Ids are separated
// by commas or spaces and may repeat.
func parseCalc(text string) (value.GameID, []value.ItemID, []value.ItemID, error) {
	args := strings.Fields(strings.ReplaceAll(text, ",", " "))
	if len(args) < 2 {
		return "", nil, nil, fmt.Errorf("game is missing")
	}

	gameID, err := value.ParseGameID(args[1])
	if err != nil {
		return "", nil, nil, fmt.Errorf("value.ParseGameID: %w", err)
	}

	sep := lo.IndexOf(args, "vs")
	if sep < 0 {
		return "", nil, nil, fmt.Errorf(`separator "vs" is missing`)
	}

	offer, err := lox.MapErr(args[2:sep], value.ParseItemID)
	if err != nil {
		return "", nil, nil, fmt.Errorf("offer: %w", err)
	}

	want, err := lox.MapErr(args[sep+1:], value.ParseItemID)
	if err != nil {
		return "", nil, nil, fmt.Errorf("want: %w", err)
	}

	return gameID, offer, want, nil
}

func (h *Handler) fail(ctx *th.Context, chatID int64, err error) error {
	if failure.IsNotFoundError(err) || failure.IsInvalidArgumentError(err) {
		return h.sendHTML(ctx, chatID, view.NothingFound)
	}

	logger(ctx).Error("bot command failed", slog.Int64("chat-id", chatID), logx.Error(err))

	return h.sendHTML(ctx, chatID, view.Failed)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))

	return err
}
