package entity

import (
	"time"

	"tradevalues/internal/domain/value"
)

// Item is a priced catalog entry. Value is not validated; negative values
// flow through valuation unchanged.
type Item struct {
	ID         value.ItemID
	GameID     value.GameID
	Name       string
	Value      int64
	Demand     int
	Trend      value.Trend
	Rarity     string
	Category   string
	ImageURL   string
	LastChange int64
	UpdatedAt  time.Time
}

// ItemFilter narrows an item listing. Empty fields match everything.
type ItemFilter struct {
	Category string
	Search   string
}

// ValuePoint is one entry of an item's value history.
type ValuePoint struct {
	ItemID     value.ItemID
	Value      int64
	RecordedAt time.Time
	ChangedBy  *value.UserID
}
