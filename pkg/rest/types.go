// Package rest holds the JSON models of the public HTTP API.
package rest

import "time"

type Game struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Color       string   `json:"color"`
	Categories  []string `json:"categories"`
}

type Item struct {
	ID         string    `json:"id"`
	GameID     string    `json:"gameId"`
	Name       string    `json:"name"`
	Value      int64     `json:"value"`
	Formatted  string    `json:"formattedValue"`
	Demand     int       `json:"demand"`
	Trend      string    `json:"trend"`
	Rarity     string    `json:"rarity"`
	Category   string    `json:"category"`
	ImageURL   string    `json:"imageUrl"`
	LastChange int64     `json:"lastChange"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ValuePoint struct {
	Value      int64     `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}

// CalculateRequest lists item ids per side; an id may repeat.
type CalculateRequest struct {
	GameID string   `json:"gameId" validate:"required"`
	Offer  []string `json:"offer"`
	Want   []string `json:"want"`
}

type Calculation struct {
	Offer       []Item `json:"offer"`
	Want        []Item `json:"want"`
	OfferTotal  int64  `json:"offerTotal"`
	WantTotal   int64  `json:"wantTotal"`
	Delta       int64  `json:"delta"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

type SubmitTradeRequest struct {
	GameID string   `json:"gameId" validate:"required"`
	Offer  []string `json:"offer"`
	Want   []string `json:"want"`
}

type VoteRequest struct {
	Vote string `json:"vote" validate:"required"`
}

type Tally struct {
	Win  int64 `json:"win"`
	Fair int64 `json:"fair"`
	Loss int64 `json:"loss"`
}

type VoteSummary struct {
	Total       int64  `json:"total"`
	WinPercent  int    `json:"winPercent"`
	FairPercent int    `json:"fairPercent"`
	LossPercent int    `json:"lossPercent"`
	Majority    string `json:"majority"`
}

type Trade struct {
	ID        string      `json:"id"`
	GameID    string      `json:"gameId"`
	AuthorID  string      `json:"authorId"`
	Offer     []Item      `json:"offer"`
	Want      []Item      `json:"want"`
	Tally     Tally       `json:"tally"`
	Summary   VoteSummary `json:"summary"`
	UserVote  *string     `json:"userVote,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

type InventoryItemRequest struct {
	GameID   string `json:"gameId" validate:"required"`
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int64  `json:"quantity" validate:"gte=1"`
}

type InventoryEntry struct {
	GameID   string    `json:"gameId"`
	ItemID   string    `json:"itemId"`
	Quantity int64     `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
	Item     *Item     `json:"item,omitempty"`
}

type Inventory struct {
	Entries    []InventoryEntry `json:"entries"`
	TotalValue int64            `json:"totalValue"`
	ItemCount  int64            `json:"itemCount"`
}

type InventoryQuantity struct {
	GameID   string `json:"gameId"`
	ItemID   string `json:"itemId"`
	Quantity int64  `json:"quantity"`
}

type CreateAlertRequest struct {
	GameID      string `json:"gameId" validate:"required"`
	ItemID      string `json:"itemId" validate:"required"`
	TargetValue int64  `json:"targetValue"`
	Condition   string `json:"condition" validate:"required"`
}

type UpdateAlertRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type PriceAlert struct {
	ID          string     `json:"id"`
	GameID      string     `json:"gameId"`
	ItemID      string     `json:"itemId"`
	ItemName    string     `json:"itemName"`
	TargetValue int64      `json:"targetValue"`
	Condition   string     `json:"condition"`
	IsActive    bool       `json:"isActive"`
	TriggeredAt *time.Time `json:"triggeredAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Error is the error body of every failed request.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
