package memory_test

import (
	"context"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/internal/infrastructure/memory"
)

func TestCatalogStore(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()
	s := memory.NewCatalogStore()

	rq.NoError(s.UpsertGame(ctx, entity.Game{ID: "mm2", Name: "Murder Mystery 2", Slug: "murder-mystery-2"}))
	rq.NoError(s.UpsertGame(ctx, entity.Game{ID: "adm", Name: "Adopt Me", Slug: "adopt-me"}))

	games, err := s.ListGames(ctx)
	rq.NoError(err)
	rq.Len(games, 2)
	rq.Equal(value.GameID("adm"), games[0].ID)

	g, err := s.GetGame(ctx, "murder-mystery-2")
	rq.NoError(err)
	rq.Equal(value.GameID("mm2"), g.ID)

	_, err = s.GetGame(ctx, "nope")
	rq.True(failure.IsNotFoundError(err))

	recorded, err := s.UpsertItem(ctx, entity.Item{ID: "harvester", GameID: "mm2", Name: "Harvester", Value: 150, Category: "Knife"}, nil)
	rq.NoError(err)
	rq.True(recorded)

	recorded, err = s.UpsertItem(ctx, entity.Item{ID: "seer", GameID: "mm2", Name: "Seer", Value: 10, Category: "Knife"}, nil)
	rq.NoError(err)
	rq.True(recorded)

	recorded, err = s.UpsertItem(ctx, entity.Item{ID: "harvester", GameID: "mm2", Name: "Harvester", Value: 180, Category: "Knife"}, nil)
	rq.NoError(err)
	rq.True(recorded)

	recorded, err = s.UpsertItem(ctx, entity.Item{ID: "harvester", GameID: "mm2", Name: "Harvester", Value: 180, Category: "Knife", Demand: 9}, nil)
	rq.NoError(err)
	rq.False(recorded)

	it, err := s.GetItem(ctx, "mm2", "harvester")
	rq.NoError(err)
	rq.Equal(int64(30), it.LastChange)
	rq.Equal(9, it.Demand)

	_, err = s.GetItem(ctx, "adm", "harvester")
	rq.True(failure.IsNotFoundError(err))

	items, err := s.ListItems(ctx, "mm2", entity.ItemFilter{Category: "knife"})
	rq.NoError(err)
	rq.Len(items, 2)
	rq.Equal(value.ItemID("harvester"), items[0].ID)

	items, err = s.ListItems(ctx, "mm2", entity.ItemFilter{Search: "SEE"})
	rq.NoError(err)
	rq.Len(items, 1)
	rq.Equal(value.ItemID("seer"), items[0].ID)

	points, err := s.ValueHistory(ctx, "mm2", "harvester", 10)
	rq.NoError(err)
	rq.Len(points, 2)
	rq.Equal(int64(150), points[0].Value)
	rq.Equal(int64(180), points[1].Value)

	points, err = s.ValueHistory(ctx, "mm2", "harvester", 1)
	rq.NoError(err)
	rq.Len(points, 1)
	rq.Equal(int64(180), points[0].Value)
}

func TestAlertStore(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()
	s := memory.NewAlertStore()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	first := entity.PriceAlert{ID: value.NewAlertID(), UserID: "u1", IsActive: true, CreatedAt: base}
	second := entity.PriceAlert{ID: value.NewAlertID(), UserID: "u1", IsActive: true, CreatedAt: base.Add(time.Minute)}
	other := entity.PriceAlert{ID: value.NewAlertID(), UserID: "u2", IsActive: false, CreatedAt: base}

	for _, a := range []entity.PriceAlert{first, second, other} {
		rq.NoError(s.Create(ctx, a))
	}

	mine, err := s.ListByUser(ctx, "u1")
	rq.NoError(err)
	rq.Len(mine, 2)
	rq.Equal(second.ID, mine[0].ID)

	pending, err := s.ListPending(ctx)
	rq.NoError(err)
	rq.Len(pending, 2)
	rq.Equal(first.ID, pending[0].ID)

	marked, err := s.MarkTriggered(ctx, first.ID, base)
	rq.NoError(err)
	rq.True(marked)

	marked, err = s.MarkTriggered(ctx, first.ID, base.Add(time.Hour))
	rq.NoError(err)
	rq.False(marked)

	got, err := s.Get(ctx, first.ID)
	rq.NoError(err)
	rq.Equal(base, *got.TriggeredAt)

	rq.NoError(s.SetActive(ctx, second.ID, false))

	pending, err = s.ListPending(ctx)
	rq.NoError(err)
	rq.Empty(pending)

	rq.NoError(s.Delete(ctx, other.ID))
	rq.True(failure.IsNotFoundError(s.Delete(ctx, other.ID)))
	rq.True(failure.IsNotFoundError(s.SetActive(ctx, other.ID, true)))
}

func TestInventoryStore(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()
	s := memory.NewInventoryStore()

	now := time.Now()

	rq.NoError(s.Add(ctx, entity.InventoryEntry{UserID: "u1", GameID: "mm2", ItemID: "harvester", Quantity: 2, AddedAt: now}))
	rq.NoError(s.Add(ctx, entity.InventoryEntry{UserID: "u1", GameID: "mm2", ItemID: "harvester", Quantity: 3, AddedAt: now}))
	rq.NoError(s.Add(ctx, entity.InventoryEntry{UserID: "u1", GameID: "mm2", ItemID: "seer", Quantity: 1, AddedAt: now.Add(time.Second)}))
	rq.NoError(s.Add(ctx, entity.InventoryEntry{UserID: "u2", GameID: "mm2", ItemID: "seer", Quantity: 1, AddedAt: now}))

	entries, err := s.List(ctx, "u1")
	rq.NoError(err)
	rq.Len(entries, 2)
	rq.Equal(int64(5), entries[0].Quantity)

	found, err := s.Remove(ctx, "u1", "mm2", "harvester", 4)
	rq.NoError(err)
	rq.True(found)

	found, err = s.Remove(ctx, "u1", "mm2", "seer", 10)
	rq.NoError(err)
	rq.True(found)

	found, err = s.Remove(ctx, "u1", "mm2", "seer", 1)
	rq.NoError(err)
	rq.False(found)

	entries, err = s.List(ctx, "u1")
	rq.NoError(err)
	rq.Len(entries, 1)
	rq.Equal(int64(1), entries[0].Quantity)

	rq.NoError(s.Clear(ctx, "u1"))

	entries, err = s.List(ctx, "u1")
	rq.NoError(err)
	rq.Empty(entries)

	entries, err = s.List(ctx, "u2")
	rq.NoError(err)
	rq.Len(entries, 1)
}
