package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.appkode.ru/pub/go/failure"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
	"tradevalues/pkg/logx"
)

type Repository interface {
	// Add inserts the entry or increments the stored quantity.
	Add(ctx context.Context, entry entity.InventoryEntry) error
	// Remove decrements the quantity and deletes the row once it would drop
	// to zero. It reports false when the user does not hold the item.
	Remove(ctx context.Context, userID value.UserID, gameID value.GameID, itemID value.ItemID, quantity int64) (bool, error)
	Clear(ctx context.Context, userID value.UserID) error
	List(ctx context.Context, userID value.UserID) ([]entity.InventoryEntry, error)
}

type Items interface {
	GetItem(ctx context.Context, gameID value.GameID, itemID value.ItemID) (entity.Item, error)
}

type Summary struct {
	Entries []entity.InventoryEntry
	// TotalValue sums value*quantity over entries still present in the catalog.
	TotalValue int64
	ItemCount  int64
}

type Service struct {
	repo  Repository
	items Items
	now   func() time.Time
}

func NewService(repo Repository, items Items) *Service {
	return &Service{
		repo:  repo,
		items: items,
		now:   time.Now,
	}
}

func (s *Service) Add(ctx context.Context, userID value.UserID, gameID value.GameID, itemID value.ItemID, quantity int64) error {
	if err := validQuantity(quantity); err != nil {
		return err
	}

	if _, err := s.items.GetItem(ctx, gameID, itemID); err != nil {
		return fmt.Errorf("items.GetItem: %w", err)
	}

	err := s.repo.Add(ctx, entity.InventoryEntry{
		UserID:   userID,
		GameID:   gameID,
		ItemID:   itemID,
		Quantity: quantity,
		AddedAt:  s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("repo.Add: %w", err)
	}

	return nil
}

func (s *Service) Remove(ctx context.Context, userID value.UserID, gameID value.GameID, itemID value.ItemID, quantity int64) error {
	if err := validQuantity(quantity); err != nil {
		return err
	}

	found, err := s.repo.Remove(ctx, userID, gameID, itemID, quantity)
	if err != nil {
		return fmt.Errorf("repo.Remove: %w", err)
	}

	if !found {
		return failure.NewNotFoundError(
			fmt.Sprintf("inventory has no %s/%s", gameID, itemID),
			failure.WithCode(errcodes.InventoryItemNotFound),
			failure.WithDescription("Item is not in the inventory"),
		)
	}

	return nil
}

func (s *Service) Clear(ctx context.Context, userID value.UserID) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("repo.Clear: %w", err)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, userID value.UserID) (Summary, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return Summary{}, fmt.Errorf("repo.List: %w", err)
	}

	summary := Summary{Entries: entries}

	for i := range summary.Entries {
		entry := &summary.Entries[i]
		summary.ItemCount += entry.Quantity

		item, err := s.items.GetItem(ctx, entry.GameID, entry.ItemID)
		if err != nil {
			if failure.IsNotFoundError(err) {
				logger(ctx).Warn("inventory item left the catalog",
					slog.String(logx.FieldGameID, entry.GameID.String()),
					slog.String(logx.FieldItemID, entry.ItemID.String()),
				)

				continue
			}

			return Summary{}, fmt.Errorf("items.GetItem: %w", err)
		}

		entry.Item = &item
		summary.TotalValue += item.Value * entry.Quantity
	}

	return summary, nil
}

// Quantity returns how many of the item the user holds, zero if none.
func (s *Service) Quantity(ctx context.Context, userID value.UserID, gameID value.GameID, itemID value.ItemID) (int64, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("repo.List: %w", err)
	}

	for _, e := range entries {
		if e.GameID == gameID && e.ItemID == itemID {
			return e.Quantity, nil
		}
	}

	return 0, nil
}

func validQuantity(q int64) error {
	if q < 1 {
		return failure.NewInvalidArgumentError(
			fmt.Sprintf("quantity %d", q),
			failure.WithCode(errcodes.InvalidQuantity),
			failure.WithDescription("Quantity must be at least 1"),
		)
	}

	return nil
}
