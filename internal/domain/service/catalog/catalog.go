package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/lox"
)

const (
	defaultItemTTL = time.Minute
	historyLimit   = 500
)

type Repository interface {
	ListGames(ctx context.Context) ([]entity.Game, error)
	GetGame(ctx context.Context, id value.GameID) (entity.Game, error)
	// ListItems returns items ordered by value, most valuable first.
	ListItems(ctx context.Context, gameID value.GameID, filter entity.ItemFilter) ([]entity.Item, error)
	GetItem(ctx context.Context, gameID value.GameID, itemID value.ItemID) (entity.Item, error)
	// ValueHistory returns the latest points in ascending time order.
	ValueHistory(ctx context.Context, gameID value.GameID, itemID value.ItemID, limit int) ([]entity.ValuePoint, error)
}

type Service struct {
	repo  Repository
	items *cache.Cache
}

// NewService caches single item lookups for itemTTL. A non-positive TTL
// falls back to one minute.
func NewService(repo Repository, itemTTL time.Duration) *Service {
	if itemTTL <= 0 {
		itemTTL = defaultItemTTL
	}

	return &Service{
		repo:  repo,
		items: cache.New(itemTTL, 2*itemTTL),
	}
}

func (s *Service) ListGames(ctx context.Context) ([]entity.Game, error) {
	games, err := s.repo.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListGames: %w", err)
	}

	return games, nil
}

func (s *Service) GetGame(ctx context.Context, id value.GameID) (entity.Game, error) {
	game, err := s.repo.GetGame(ctx, id)
	if err != nil {
		return entity.Game{}, fmt.Errorf("repo.GetGame: %w", err)
	}

	return game, nil
}

// ListItems accepts a game id or slug.
func (s *Service) ListItems(ctx context.Context, gameID value.GameID, filter entity.ItemFilter) ([]entity.Item, error) {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListItems(ctx, game.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("repo.ListItems: %w", err)
	}

	return items, nil
}

func (s *Service) GetItem(ctx context.Context, gameID value.GameID, itemID value.ItemID) (entity.Item, error) {
	key := cacheKey(gameID, itemID)

	if cached, ok := s.items.Get(key); ok {
		return cached.(entity.Item), nil //nolint:forcetypeassert // only items are stored
	}

	item, err := s.repo.GetItem(ctx, gameID, itemID)
	if err != nil {
		return entity.Item{}, fmt.Errorf("repo.GetItem: %w", err)
	}

	s.items.Set(key, item, cache.DefaultExpiration)

	return item, nil
}

// Invalidate drops every cached item. Call it after the catalog is reimported.
func (s *Service) Invalidate() {
	s.items.Flush()
}

// GetItems resolves ids in order. Duplicate ids yield duplicate items.
func (s *Service) GetItems(ctx context.Context, gameID value.GameID, ids []value.ItemID) ([]entity.Item, error) {
	return lox.MapErr(ids, func(id value.ItemID) (entity.Item, error) {
		return s.GetItem(ctx, gameID, id)
	})
}

func (s *Service) ValueHistory(ctx context.Context, gameID value.GameID, itemID value.ItemID) ([]entity.ValuePoint, error) {
	if _, err := s.GetItem(ctx, gameID, itemID); err != nil {
		return nil, err
	}

	points, err := s.repo.ValueHistory(ctx, gameID, itemID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("repo.ValueHistory: %w", err)
	}

	return points, nil
}

func cacheKey(gameID value.GameID, itemID value.ItemID) string {
	return gameID.String() + "/" + itemID.String()
}
