package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"git.appkode.ru/pub/go/failure"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
)

type itemKey struct {
	game value.GameID
	item value.ItemID
}

type CatalogStore struct {
	mu      sync.RWMutex
	games   map[value.GameID]entity.Game
	items   map[itemKey]entity.Item
	history map[itemKey][]entity.ValuePoint
	now     func() time.Time
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		games:   make(map[value.GameID]entity.Game),
		items:   make(map[itemKey]entity.Item),
		history: make(map[itemKey][]entity.ValuePoint),
		now:     time.Now,
	}
}

func (s *CatalogStore) ListGames(_ context.Context) ([]entity.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]entity.Game, 0, len(s.games))
	for _, g := range s.games {
		g.Categories = slices.Clone(g.Categories)
		games = append(games, g)
	}

	slices.SortFunc(games, func(a, b entity.Game) int { return cmp.Compare(a.Name, b.Name) })

	return games, nil
}

// GetGame matches either the id or the slug.
func (s *CatalogStore) GetGame(_ context.Context, id value.GameID) (entity.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if g, ok := s.games[id]; ok {
		g.Categories = slices.Clone(g.Categories)

		return g, nil
	}

	for _, g := range s.games {
		if g.Slug == id.String() {
			g.Categories = slices.Clone(g.Categories)

			return g, nil
		}
	}

	return entity.Game{}, gameNotFound(id)
}

func (s *CatalogStore) ListItems(_ context.Context, gameID value.GameID, filter entity.ItemFilter) ([]entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var items []entity.Item

	for k, it := range s.items {
		if k.game != gameID {
			continue
		}

		if filter.Category != "" && !strings.EqualFold(it.Category, filter.Category) {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}

		items = append(items, it)
	}

	slices.SortFunc(items, func(a, b entity.Item) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return items, nil
}

func (s *CatalogStore) GetItem(_ context.Context, gameID value.GameID, itemID value.ItemID) (entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[itemKey{gameID, itemID}]
	if !ok {
		return entity.Item{}, itemNotFound(gameID, itemID)
	}

	return it, nil
}

func (s *CatalogStore) ValueHistory(_ context.Context, gameID value.GameID, itemID value.ItemID, limit int) ([]entity.ValuePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points := s.history[itemKey{gameID, itemID}]
	if len(points) > limit {
		points = points[len(points)-limit:]
	}

	return slices.Clone(points), nil
}

func (s *CatalogStore) UpsertGame(_ context.Context, game entity.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.games[game.ID]; ok {
		game.CreatedAt = existing.CreatedAt
	} else if game.CreatedAt.IsZero() {
		game.CreatedAt = s.now().UTC()
	}

	game.Categories = slices.Clone(game.Categories)
	s.games[game.ID] = game

	return nil
}

// UpsertItem mirrors the Postgres repository: a history point is appended
// when the item is new or its value changed.
func (s *CatalogStore) UpsertItem(_ context.Context, item entity.Item, changedBy *value.UserID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := itemKey{item.GameID, item.ID}
	now := s.now().UTC()
	item.UpdatedAt = now

	previous, exists := s.items[key]
	if exists {
		item.LastChange = item.Value - previous.Value
		if item.Value == previous.Value {
			item.LastChange = previous.LastChange
		}
	}

	s.items[key] = item

	if exists && previous.Value == item.Value {
		return false, nil
	}

	s.history[key] = append(s.history[key], entity.ValuePoint{
		ItemID:     item.ID,
		Value:      item.Value,
		RecordedAt: now,
		ChangedBy:  changedBy,
	})

	return true, nil
}

func gameNotFound(id value.GameID) error {
	return failure.NewNotFoundError(
		fmt.Sprintf("game %s not found", id),
		failure.WithCode(errcodes.GameNotFound),
		failure.WithDescription("Game not found"),
	)
}

func itemNotFound(gameID value.GameID, itemID value.ItemID) error {
	return failure.NewNotFoundError(
		fmt.Sprintf("item %s/%s not found", gameID, itemID),
		failure.WithCode(errcodes.ItemNotFound),
		failure.WithDescription("Item not found"),
	)
}
