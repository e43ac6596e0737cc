package handler

import (
	"context"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/valuation"
	"tradevalues/internal/domain/value"
)

type catalogService interface {
	ListGames(ctx context.Context) ([]entity.Game, error)
	ListItems(ctx context.Context, gameID value.GameID, filter entity.ItemFilter) ([]entity.Item, error)
}

type valuationService interface {
	Evaluate(ctx context.Context, gameID value.GameID, offerIDs, wantIDs []value.ItemID) (valuation.Calculation, error)
}

// Reloader re-imports the catalog and returns how many item values changed.
type Reloader func(ctx context.Context) (int, error)

type Handler struct {
	catalog   catalogService
	valuation valuationService
	reload    Reloader
}

// New builds the command handler. reload may be nil, /reload then answers
// that reloading is disabled.
func New(catalog catalogService, valuation valuationService, reload Reloader) *Handler {
	return &Handler{
		catalog:   catalog,
		valuation: valuation,
		reload:    reload,
	}
}
