package server

import (
	"context"
	"fmt"
	"net/http"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/httpx/reply"
	"tradevalues/pkg/lox"
)

type catalogService interface {
	ListGames(ctx context.Context) ([]entity.Game, error)
	ListItems(ctx context.Context, gameID value.GameID, filter entity.ItemFilter) ([]entity.Item, error)
	GetItem(ctx context.Context, gameID value.GameID, itemID value.ItemID) (entity.Item, error)
	ValueHistory(ctx context.Context, gameID value.GameID, itemID value.ItemID) ([]entity.ValuePoint, error)
}

type CatalogServer struct {
	catalogService catalogService
}

func NewCatalogServer(catalogService catalogService) CatalogServer {
	return CatalogServer{
		catalogService: catalogService,
	}
}

func (s CatalogServer) getV1Games(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	games, err := s.catalogService.ListGames(ctx)
	if err != nil {
		return fmt.Errorf("catalogService.ListGames: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(games, newRESTGame))

	return nil
}

func (s CatalogServer) getV1GameItems(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	gameID, err := value.ParseGameID(r.PathValue("gameID"))
	if err != nil {
		return fmt.Errorf("value.ParseGameID: %w", err)
	}

	query := r.URL.Query()

	items, err := s.catalogService.ListItems(ctx, gameID, entity.ItemFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
	})
	if err != nil {
		return fmt.Errorf("catalogService.ListItems: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTItems(items))

	return nil
}

func (s CatalogServer) getV1GameItem(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	gameID, itemID, err := parseItemPath(r)
	if err != nil {
		return err
	}

	item, err := s.catalogService.GetItem(ctx, gameID, itemID)
	if err != nil {
		return fmt.Errorf("catalogService.GetItem: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTItem(item))

	return nil
}

func (s CatalogServer) getV1GameItemHistory(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	gameID, itemID, err := parseItemPath(r)
	if err != nil {
		return err
	}

	points, err := s.catalogService.ValueHistory(ctx, gameID, itemID)
	if err != nil {
		return fmt.Errorf("catalogService.ValueHistory: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(points, newRESTValuePoint))

	return nil
}

func parseItemPath(r *http.Request) (value.GameID, value.ItemID, error) {
	gameID, err := value.ParseGameID(r.PathValue("gameID"))
	if err != nil {
		return "", "", fmt.Errorf("value.ParseGameID: %w", err)
	}

	itemID, err := value.ParseItemID(r.PathValue("itemID"))
	if err != nil {
		return "", "", fmt.Errorf("value.ParseItemID: %w", err)
	}

	return gameID, itemID, nil
}
