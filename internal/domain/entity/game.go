package entity

import (
	"time"

	"tradevalues/internal/domain/value"
)

type Game struct {
	ID          value.GameID
	Name        string
	Slug        string
	Description string
	ImageURL    string
	Color       string
	Categories  []string
	CreatedAt   time.Time
}
