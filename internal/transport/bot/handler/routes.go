package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"tradevalues/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	bh.HandleMessage(h.OnStart, th.Or(th.CommandEqual("start"), th.CommandEqual("help")))
	bh.HandleMessage(h.OnGames, th.CommandEqual("games"))
	bh.HandleMessage(h.OnItems, th.CommandEqual("items"))
	bh.HandleMessage(h.OnValue, th.CommandEqual("value"))
	bh.HandleMessage(h.OnCalc, th.CommandEqual("calc"))

	bh.HandleCallbackQuery(h.OnItemsPage, th.CallbackDataPrefix(itemsPagePrefix))

	if adminID == 0 {
		return
	}

	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))
	adminGroup.HandleMessage(h.OnReload, th.CommandEqual("reload"))
}
