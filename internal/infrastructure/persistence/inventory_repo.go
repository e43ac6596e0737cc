package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"tradevalues/internal/domain"
	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
)

type InventoryRepository struct {
	db *sqlx.DB
}

func NewInventoryRepository(db *sqlx.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Add(ctx context.Context, entry entity.InventoryEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_items (user_id, game_id, item_id, quantity, added_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, game_id, item_id) DO UPDATE SET quantity = inventory_items.quantity + EXCLUDED.quantity`,
		entry.UserID.String(), entry.GameID.String(), entry.ItemID.String(), entry.Quantity, entry.AddedAt,
	)
	if err != nil {
		return domain.WrapError(err, "failed to add inventory item")
	}

	return nil
}

func (r *InventoryRepository) Remove(
	ctx context.Context,
	userID value.UserID,
	gameID value.GameID,
	itemID value.ItemID,
	quantity int64,
) (bool, error) {
	found := false

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current int64

		err := tx.GetContext(ctx, &current, `
			SELECT quantity FROM inventory_items
			WHERE user_id = $1 AND game_id = $2 AND item_id = $3
			FOR UPDATE`,
			userID.String(), gameID.String(), itemID.String(),
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}

			return domain.WrapError(err, "failed to lock inventory item")
		}

		found = true

		if current <= quantity {
			_, err = tx.ExecContext(ctx,
				`DELETE FROM inventory_items WHERE user_id = $1 AND game_id = $2 AND item_id = $3`,
				userID.String(), gameID.String(), itemID.String(),
			)
		} else {
			_, err = tx.ExecContext(ctx,
				`UPDATE inventory_items SET quantity = quantity - $4 WHERE user_id = $1 AND game_id = $2 AND item_id = $3`,
				userID.String(), gameID.String(), itemID.String(), quantity,
			)
		}

		if err != nil {
			return domain.WrapError(err, "failed to remove inventory item")
		}

		return nil
	})

	return found, err
}

func (r *InventoryRepository) Clear(ctx context.Context, userID value.UserID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE user_id = $1`, userID.String()); err != nil {
		return domain.WrapError(err, "failed to clear inventory")
	}

	return nil
}

func (r *InventoryRepository) List(ctx context.Context, userID value.UserID) ([]entity.InventoryEntry, error) {
	var schemas []inventorySchema
	if err := r.db.SelectContext(ctx, &schemas,
		`SELECT * FROM inventory_items WHERE user_id = $1 ORDER BY added_at, game_id, item_id`, userID.String()); err != nil {
		return nil, domain.WrapError(err, "failed to list inventory")
	}

	entries := make([]entity.InventoryEntry, 0, len(schemas))
	for _, s := range schemas {
		entries = append(entries, s.toDomain())
	}

	return entries, nil
}
