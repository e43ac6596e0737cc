// Package catalogfile reads the YAML catalog used to seed games and item
// values.
package catalogfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
)

type fileSchema struct {
	Games []gameSchema `yaml:"games"`
}

type gameSchema struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Slug        string       `yaml:"slug"`
	Description string       `yaml:"description"`
	ImageURL    string       `yaml:"imageUrl"`
	Color       string       `yaml:"color"`
	Categories  []string     `yaml:"categories"`
	Items       []itemSchema `yaml:"items"`
}

type itemSchema struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Value    int64  `yaml:"value"`
	Demand   int    `yaml:"demand"`
	Trend    string `yaml:"trend"`
	Rarity   string `yaml:"rarity"`
	Category string `yaml:"category"`
	ImageURL string `yaml:"imageUrl"`
}

// Catalog is a parsed catalog file. Items reference games by GameID.
type Catalog struct {
	Games []entity.Game
	Items []entity.Item
}

func LoadFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("os.ReadFile(%s): %w", path, err)
	}

	return Load(bytes.NewReader(raw))
}

func Load(r io.Reader) (Catalog, error) {
	var file fileSchema

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("yaml.Decode: %w", err)
	}

	var catalog Catalog

	seenGames := make(map[value.GameID]struct{}, len(file.Games))

	for _, g := range file.Games {
		gameID, err := value.ParseGameID(g.ID)
		if err != nil {
			return Catalog{}, fmt.Errorf("game %q: %w", g.ID, err)
		}

		if _, dup := seenGames[gameID]; dup {
			return Catalog{}, fmt.Errorf("game %q: duplicate id", gameID)
		}

		seenGames[gameID] = struct{}{}

		slug := g.Slug
		if slug == "" {
			slug = gameID.String()
		}

		catalog.Games = append(catalog.Games, entity.Game{
			ID:          gameID,
			Name:        g.Name,
			Slug:        slug,
			Description: g.Description,
			ImageURL:    g.ImageURL,
			Color:       g.Color,
			Categories:  g.Categories,
		})

		seenItems := make(map[value.ItemID]struct{}, len(g.Items))

		for _, it := range g.Items {
			itemID, err := value.ParseItemID(it.ID)
			if err != nil {
				return Catalog{}, fmt.Errorf("game %q item %q: %w", gameID, it.ID, err)
			}

			if _, dup := seenItems[itemID]; dup {
				return Catalog{}, fmt.Errorf("game %q item %q: duplicate id", gameID, itemID)
			}

			seenItems[itemID] = struct{}{}

			catalog.Items = append(catalog.Items, entity.Item{
				ID:       itemID,
				GameID:   gameID,
				Name:     it.Name,
				Value:    it.Value,
				Demand:   it.Demand,
				Trend:    value.ParseTrend(it.Trend),
				Rarity:   it.Rarity,
				Category: it.Category,
				ImageURL: it.ImageURL,
			})
		}
	}

	return catalog, nil
}

// Store is implemented by both the Postgres and the in-memory catalog.
type Store interface {
	UpsertGame(ctx context.Context, game entity.Game) error
	UpsertItem(ctx context.Context, item entity.Item, changedBy *value.UserID) (bool, error)
}

type Stats struct {
	Games        int
	Items        int
	ValueChanges int
}

// Import upserts every game and item. Items whose value changed get a new
// history point attributed to changedBy.
func Import(ctx context.Context, store Store, catalog Catalog, changedBy *value.UserID) (Stats, error) {
	var stats Stats

	for _, g := range catalog.Games {
		if err := store.UpsertGame(ctx, g); err != nil {
			return stats, fmt.Errorf("store.UpsertGame(%s): %w", g.ID, err)
		}

		stats.Games++
	}

	for _, it := range catalog.Items {
		recorded, err := store.UpsertItem(ctx, it, changedBy)
		if err != nil {
			return stats, fmt.Errorf("store.UpsertItem(%s/%s): %w", it.GameID, it.ID, err)
		}

		stats.Items++

		if recorded {
			stats.ValueChanges++
		}
	}

	logger(ctx).Info("catalog imported",
		slog.Int("games", stats.Games),
		slog.Int("items", stats.Items),
		slog.Int("value-changes", stats.ValueChanges),
	)

	return stats, nil
}
