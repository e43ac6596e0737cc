package entity

import (
	"time"

	"tradevalues/internal/domain/value"
)

type PriceAlert struct {
	ID          value.AlertID
	UserID      value.UserID
	GameID      value.GameID
	ItemID      value.ItemID
	ItemName    string
	TargetValue int64
	Condition   value.Condition
	IsActive    bool
	TriggeredAt *time.Time
	CreatedAt   time.Time
}

// Pending reports whether the alert still waits for its condition.
func (a PriceAlert) Pending() bool {
	return a.IsActive && a.TriggeredAt == nil
}
