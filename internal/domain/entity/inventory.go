package entity

import (
	"time"

	"tradevalues/internal/domain/value"
)

type InventoryEntry struct {
	UserID   value.UserID
	GameID   value.GameID
	ItemID   value.ItemID
	Quantity int64
	AddedAt  time.Time

	// Item is resolved from the catalog; nil when the item no longer exists.
	Item *Item
}
