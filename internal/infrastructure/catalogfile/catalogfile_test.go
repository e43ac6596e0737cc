package catalogfile_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tradevalues/internal/domain/value"
	"tradevalues/internal/infrastructure/catalogfile"
	"tradevalues/internal/infrastructure/memory"
)

const sample = `
games:
  - id: mm2
    name: Murder Mystery 2
    categories: [All, Godlies]
    items:
      - id: mm2-5
        name: Corrupt
        value: 135
        demand: 8
        trend: stable
        rarity: godly
        category: Godlies
      - id: mm2-8
        name: Batwing
        value: 95
        trend: sideways
`

func TestLoad(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	c, err := catalogfile.Load(strings.NewReader(sample))
	rq.NoError(err)
	rq.Len(c.Games, 1)
	rq.Equal("mm2", c.Games[0].Slug)
	rq.Len(c.Items, 2)
	rq.Equal(value.GameID("mm2"), c.Items[1].GameID)
	rq.Equal(value.TrendStable, c.Items[1].Trend)
}

func TestLoadRejects(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"unknown field":  "games:\n  - id: a\n    colour: red\n",
		"blank game id":  "games:\n  - id: ' '\n",
		"duplicate game": "games:\n  - id: a\n  - id: a\n",
		"duplicate item": "games:\n  - id: a\n    items:\n      - id: x\n      - id: x\n",
	}

	for name, doc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := catalogfile.Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestImport(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()

	c, err := catalogfile.Load(strings.NewReader(sample))
	rq.NoError(err)

	store := memory.NewCatalogStore()

	stats, err := catalogfile.Import(ctx, store, c, nil)
	rq.NoError(err)
	rq.Equal(catalogfile.Stats{Games: 1, Items: 2, ValueChanges: 2}, stats)

	c.Items[0].Value = 150

	stats, err = catalogfile.Import(ctx, store, c, nil)
	rq.NoError(err)
	rq.Equal(1, stats.ValueChanges)

	item, err := store.GetItem(ctx, "mm2", "mm2-5")
	rq.NoError(err)
	rq.Equal(int64(15), item.LastChange)
}
