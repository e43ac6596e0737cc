package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
)

type inventoryKey struct {
	user value.UserID
	game value.GameID
	item value.ItemID
}

type InventoryStore struct {
	mu      sync.Mutex
	entries map[inventoryKey]entity.InventoryEntry
}

func NewInventoryStore() *InventoryStore {
	return &InventoryStore{entries: make(map[inventoryKey]entity.InventoryEntry)}
}

func (s *InventoryStore) Add(_ context.Context, entry entity.InventoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := inventoryKey{entry.UserID, entry.GameID, entry.ItemID}

	if existing, ok := s.entries[key]; ok {
		existing.Quantity += entry.Quantity
		s.entries[key] = existing

		return nil
	}

	entry.Item = nil
	s.entries[key] = entry

	return nil
}

func (s *InventoryStore) Remove(
	_ context.Context,
	userID value.UserID,
	gameID value.GameID,
	itemID value.ItemID,
	quantity int64,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := inventoryKey{userID, gameID, itemID}

	existing, ok := s.entries[key]
	if !ok {
		return false, nil
	}

	if existing.Quantity <= quantity {
		delete(s.entries, key)
	} else {
		existing.Quantity -= quantity
		s.entries[key] = existing
	}

	return true, nil
}

func (s *InventoryStore) Clear(_ context.Context, userID value.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.entries {
		if k.user == userID {
			delete(s.entries, k)
		}
	}

	return nil
}

func (s *InventoryStore) List(_ context.Context, userID value.UserID) ([]entity.InventoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []entity.InventoryEntry

	for k, e := range s.entries {
		if k.user == userID {
			entries = append(entries, e)
		}
	}

	slices.SortFunc(entries, func(a, b entity.InventoryEntry) int {
		return cmp.Or(
			a.AddedAt.Compare(b.AddedAt),
			cmp.Compare(a.GameID, b.GameID),
			cmp.Compare(a.ItemID, b.ItemID),
		)
	})

	return entries, nil
}
