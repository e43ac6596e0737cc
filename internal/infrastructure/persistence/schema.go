package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
)

type gameSchema struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	Color       string    `db:"color"`
	Categories  []byte    `db:"categories"`
	CreatedAt   time.Time `db:"created_at"`
}

func fromGame(g entity.Game) (gameSchema, error) {
	categories := g.Categories
	if categories == nil {
		categories = []string{}
	}

	raw, err := json.Marshal(categories)
	if err != nil {
		return gameSchema{}, fmt.Errorf("json.Marshal(categories): %w", err)
	}

	return gameSchema{
		ID:          g.ID.String(),
		Name:        g.Name,
		Slug:        g.Slug,
		Description: g.Description,
		ImageURL:    g.ImageURL,
		Color:       g.Color,
		Categories:  raw,
		CreatedAt:   g.CreatedAt,
	}, nil
}

func (s gameSchema) toDomain() (entity.Game, error) {
	var categories []string
	if len(s.Categories) > 0 {
		if err := json.Unmarshal(s.Categories, &categories); err != nil {
			return entity.Game{}, fmt.Errorf("json.Unmarshal(categories): %w", err)
		}
	}

	return entity.Game{
		ID:          value.GameID(s.ID),
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		Color:       s.Color,
		Categories:  categories,
		CreatedAt:   s.CreatedAt,
	}, nil
}

type itemSchema struct {
	GameID     string    `db:"game_id"`
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Value      int64     `db:"value"`
	Demand     int       `db:"demand"`
	Trend      string    `db:"trend"`
	Rarity     string    `db:"rarity"`
	Category   string    `db:"category"`
	ImageURL   string    `db:"image_url"`
	LastChange int64     `db:"last_change"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func fromItem(it entity.Item) itemSchema {
	return itemSchema{
		GameID:     it.GameID.String(),
		ID:         it.ID.String(),
		Name:       it.Name,
		Value:      it.Value,
		Demand:     it.Demand,
		Trend:      string(value.ParseTrend(string(it.Trend))),
		Rarity:     it.Rarity,
		Category:   it.Category,
		ImageURL:   it.ImageURL,
		LastChange: it.LastChange,
		UpdatedAt:  it.UpdatedAt,
	}
}

func (s itemSchema) toDomain() entity.Item {
	return entity.Item{
		ID:         value.ItemID(s.ID),
		GameID:     value.GameID(s.GameID),
		Name:       s.Name,
		Value:      s.Value,
		Demand:     s.Demand,
		Trend:      value.ParseTrend(s.Trend),
		Rarity:     s.Rarity,
		Category:   s.Category,
		ImageURL:   s.ImageURL,
		LastChange: s.LastChange,
		UpdatedAt:  s.UpdatedAt,
	}
}

type valuePointSchema struct {
	ItemID     string         `db:"item_id"`
	Value      int64          `db:"value"`
	RecordedAt time.Time      `db:"recorded_at"`
	ChangedBy  sql.NullString `db:"changed_by"`
}

func (s valuePointSchema) toDomain() entity.ValuePoint {
	p := entity.ValuePoint{
		ItemID:     value.ItemID(s.ItemID),
		Value:      s.Value,
		RecordedAt: s.RecordedAt,
	}

	if s.ChangedBy.Valid {
		by := value.UserID(s.ChangedBy.String)
		p.ChangedBy = &by
	}

	return p
}

// frozenItem is the JSON snapshot of an item stored with a trade.
type frozenItem struct {
	ID       string `json:"id"`
	GameID   string `json:"gameId"`
	Name     string `json:"name"`
	Value    int64  `json:"value"`
	Demand   int    `json:"demand"`
	Trend    string `json:"trend"`
	Rarity   string `json:"rarity,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func freezeItems(items []entity.Item) ([]byte, error) {
	frozen := make([]frozenItem, 0, len(items))

	for _, it := range items {
		frozen = append(frozen, frozenItem{
			ID:       it.ID.String(),
			GameID:   it.GameID.String(),
			Name:     it.Name,
			Value:    it.Value,
			Demand:   it.Demand,
			Trend:    string(it.Trend),
			Rarity:   it.Rarity,
			Category: it.Category,
			ImageURL: it.ImageURL,
		})
	}

	return json.Marshal(frozen)
}

func thawItems(raw []byte) ([]entity.Item, error) {
	var frozen []frozenItem
	if err := json.Unmarshal(raw, &frozen); err != nil {
		return nil, err
	}

	items := make([]entity.Item, 0, len(frozen))

	for _, f := range frozen {
		items = append(items, entity.Item{
			ID:       value.ItemID(f.ID),
			GameID:   value.GameID(f.GameID),
			Name:     f.Name,
			Value:    f.Value,
			Demand:   f.Demand,
			Trend:    value.ParseTrend(f.Trend),
			Rarity:   f.Rarity,
			Category: f.Category,
			ImageURL: f.ImageURL,
		})
	}

	return items, nil
}

type tradeSchema struct {
	ID        string    `db:"id"`
	GameID    string    `db:"game_id"`
	AuthorID  string    `db:"author_id"`
	Offer     []byte    `db:"offer"`
	Want      []byte    `db:"want"`
	Win       int64     `db:"win"`
	Fair      int64     `db:"fair"`
	Loss      int64     `db:"loss"`
	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
}

func fromTrade(t entity.Trade) (tradeSchema, error) {
	offer, err := freezeItems(t.Offer)
	if err != nil {
		return tradeSchema{}, fmt.Errorf("freezeItems(offer): %w", err)
	}

	want, err := freezeItems(t.Want)
	if err != nil {
		return tradeSchema{}, fmt.Errorf("freezeItems(want): %w", err)
	}

	return tradeSchema{
		ID:        t.ID.String(),
		GameID:    t.GameID.String(),
		AuthorID:  t.AuthorID.String(),
		Offer:     offer,
		Want:      want,
		Win:       t.Tally.Win,
		Fair:      t.Tally.Fair,
		Loss:      t.Tally.Loss,
		Version:   t.Version,
		CreatedAt: t.CreatedAt,
	}, nil
}

func (s tradeSchema) toDomain() (entity.Trade, error) {
	offer, err := thawItems(s.Offer)
	if err != nil {
		return entity.Trade{}, fmt.Errorf("thawItems(offer): %w", err)
	}

	want, err := thawItems(s.Want)
	if err != nil {
		return entity.Trade{}, fmt.Errorf("thawItems(want): %w", err)
	}

	return entity.Trade{
		ID:        value.TradeID(s.ID),
		GameID:    value.GameID(s.GameID),
		AuthorID:  value.UserID(s.AuthorID),
		Offer:     offer,
		Want:      want,
		Tally:     entity.Tally{Win: s.Win, Fair: s.Fair, Loss: s.Loss},
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
	}, nil
}

type alertSchema struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	GameID      string       `db:"game_id"`
	ItemID      string       `db:"item_id"`
	ItemName    string       `db:"item_name"`
	TargetValue int64        `db:"target_value"`
	Condition   string       `db:"condition"`
	IsActive    bool         `db:"is_active"`
	TriggeredAt sql.NullTime `db:"triggered_at"`
	CreatedAt   time.Time    `db:"created_at"`
}

func fromAlert(a entity.PriceAlert) alertSchema {
	s := alertSchema{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		GameID:      a.GameID.String(),
		ItemID:      a.ItemID.String(),
		ItemName:    a.ItemName,
		TargetValue: a.TargetValue,
		Condition:   a.Condition.String(),
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
	}

	if a.TriggeredAt != nil {
		s.TriggeredAt = sql.NullTime{Time: *a.TriggeredAt, Valid: true}
	}

	return s
}

func (s alertSchema) toDomain() entity.PriceAlert {
	a := entity.PriceAlert{
		ID:          value.AlertID(s.ID),
		UserID:      value.UserID(s.UserID),
		GameID:      value.GameID(s.GameID),
		ItemID:      value.ItemID(s.ItemID),
		ItemName:    s.ItemName,
		TargetValue: s.TargetValue,
		Condition:   value.Condition(s.Condition),
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}

	if s.TriggeredAt.Valid {
		at := s.TriggeredAt.Time
		a.TriggeredAt = &at
	}

	return a
}

type inventorySchema struct {
	UserID   string    `db:"user_id"`
	GameID   string    `db:"game_id"`
	ItemID   string    `db:"item_id"`
	Quantity int64     `db:"quantity"`
	AddedAt  time.Time `db:"added_at"`
}

func (s inventorySchema) toDomain() entity.InventoryEntry {
	return entity.InventoryEntry{
		UserID:   value.UserID(s.UserID),
		GameID:   value.GameID(s.GameID),
		ItemID:   value.ItemID(s.ItemID),
		Quantity: s.Quantity,
		AddedAt:  s.AddedAt,
	}
}
