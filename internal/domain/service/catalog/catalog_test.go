package catalog_test

import (
	"context"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/catalog"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
)

func newRepo() *catalog.RepositoryMock {
	items := map[value.ItemID]entity.Item{
		"harvester":  {ID: "harvester", GameID: "mm2", Name: "Harvester", Value: 180},
		"icebreaker": {ID: "icebreaker", GameID: "mm2", Name: "Icebreaker", Value: 20},
	}

	return &catalog.RepositoryMock{
		GetGameFunc: func(_ context.Context, id value.GameID) (entity.Game, error) {
			if id != "mm2" {
				return entity.Game{}, failure.NewNotFoundError("game not found", failure.WithCode(errcodes.GameNotFound))
			}

			return entity.Game{ID: id, Name: "Murder Mystery 2"}, nil
		},
		GetItemFunc: func(_ context.Context, gameID value.GameID, itemID value.ItemID) (entity.Item, error) {
			item, ok := items[itemID]
			if !ok || item.GameID != gameID {
				return entity.Item{}, failure.NewNotFoundError("item not found", failure.WithCode(errcodes.ItemNotFound))
			}

			return item, nil
		},
		ListItemsFunc: func(context.Context, value.GameID, entity.ItemFilter) ([]entity.Item, error) {
			return []entity.Item{items["harvester"], items["icebreaker"]}, nil
		},
		ValueHistoryFunc: func(_ context.Context, _ value.GameID, itemID value.ItemID, _ int) ([]entity.ValuePoint, error) {
			return []entity.ValuePoint{{ItemID: itemID, Value: 150}, {ItemID: itemID, Value: 180}}, nil
		},
	}
}

func TestGetItemsCached(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	repo := newRepo()
	svc := catalog.NewService(repo, time.Minute)

	got, err := svc.GetItems(context.Background(), "mm2", []value.ItemID{"harvester", "icebreaker", "harvester"})
	rq.NoError(err)
	rq.Len(got, 3)
	rq.Equal(value.ItemID("harvester"), got[0].ID)
	rq.Equal(value.ItemID("icebreaker"), got[1].ID)
	rq.Equal(value.ItemID("harvester"), got[2].ID)
	rq.Len(repo.GetItemCalls(), 2)

	_, err = svc.GetItem(context.Background(), "mm2", "icebreaker")
	rq.NoError(err)
	rq.Len(repo.GetItemCalls(), 2)
}

func TestGetItemsNotFound(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	svc := catalog.NewService(newRepo(), 0)

	_, err := svc.GetItems(context.Background(), "mm2", []value.ItemID{"harvester", "ghost"})
	rq.True(failure.IsNotFoundError(err))
	rq.Equal(errcodes.ItemNotFound, failure.Code(err))

	_, err = svc.GetItem(context.Background(), "jailbreak", "harvester")
	rq.Equal(errcodes.ItemNotFound, failure.Code(err))
}

func TestListItems(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	repo := newRepo()
	svc := catalog.NewService(repo, time.Minute)

	items, err := svc.ListItems(context.Background(), "mm2", entity.ItemFilter{Category: "knife"})
	rq.NoError(err)
	rq.Len(items, 2)
	rq.Equal("knife", repo.ListItemsCalls()[0].Filter.Category)

	_, err = svc.ListItems(context.Background(), "unknown", entity.ItemFilter{})
	rq.Equal(errcodes.GameNotFound, failure.Code(err))
}

func TestValueHistory(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	svc := catalog.NewService(newRepo(), time.Minute)

	points, err := svc.ValueHistory(context.Background(), "mm2", "harvester")
	rq.NoError(err)
	rq.Len(points, 2)

	_, err = svc.ValueHistory(context.Background(), "mm2", "ghost")
	rq.True(failure.IsNotFoundError(err))
}

func TestInvalidate(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	repo := newRepo()
	svc := catalog.NewService(repo, time.Hour)

	_, err := svc.GetItem(context.Background(), "mm2", "harvester")
	rq.NoError(err)

	_, err = svc.GetItem(context.Background(), "mm2", "harvester")
	rq.NoError(err)
	rq.Len(repo.GetItemCalls(), 1)

	repo.GetItemFunc = func(_ context.Context, gameID value.GameID, itemID value.ItemID) (entity.Item, error) {
		return entity.Item{ID: itemID, GameID: gameID, Name: "Harvester", Value: 240}, nil
	}

	svc.Invalidate()

	item, err := svc.GetItem(context.Background(), "mm2", "harvester")
	rq.NoError(err)
	rq.EqualValues(240, item.Value)
	rq.Len(repo.GetItemCalls(), 2)
}
