package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/internal/transport/bot/view"
	"tradevalues/pkg/logx"
)

// OnItemsPage flips a value list page. Callback data is "items:<game>:<page>".
func (h *Handler) OnItemsPage(ctx *th.Context, query telego.CallbackQuery) error {
	game, page, ok := parseItemsPage(query.Data)
	if !ok || query.Message == nil {
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
	}

	text, keyboard, err := h.itemsPage(ctx, game, page)
	if err != nil {
		logger(ctx).Warn("items page failed", slog.String("data", query.Data), logx.Error(err))

		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText(view.Failed).WithShowAlert())
	}

	// Telegram rejects edits that do not change the message; the page is
	// already on screen then.
	_, _ = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: keyboard,
	})

	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}

func (h *Handler) itemsPage(ctx context.Context, game string, page int) (string, *telego.InlineKeyboardMarkup, error) {
	gameID, err := value.ParseGameID(game)
	if err != nil {
		return "", nil, fmt.Errorf("value.ParseGameID: %w", err)
	}

	items, err := h.catalog.ListItems(ctx, gameID, entity.ItemFilter{})
	if err != nil {
		return "", nil, fmt.Errorf("catalog.ListItems: %w", err)
	}

	text, page, pages := view.Page(game, items, page)

	return text, paginationKeyboard(game, page, pages), nil
}

func parseItemsPage(data string) (string, int, bool) {
	game, pageStr, ok := strings.Cut(strings.TrimPrefix(data, itemsPagePrefix), ":")
	if !ok || game == "" {
		return "", 0, false
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return "", 0, false
	}

	return game, page, true
}

func paginationKeyboard(game string, page, pages int) *telego.InlineKeyboardMarkup {
	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(fmt.Sprintf("%s%s:%d", itemsPagePrefix, game, page-1)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d / %d", page, pages)).
		WithCallbackData("noop"))

	if page < pages {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").
			WithCallbackData(fmt.Sprintf("%s%s:%d", itemsPagePrefix, game, page+1)))
	}

	return tu.InlineKeyboard(tu.InlineKeyboardRow(buttons...))
}
