package valuation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/valuation"
	"tradevalues/internal/domain/value"
)

func TestServiceEvaluate(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	prices := map[value.ItemID]int64{"shadow-dragon": 49_000_000, "frost-dragon": 18_000_000, "bat-dragon": 70_000_000}

	catalog := &valuation.CatalogMock{
		GetItemsFunc: func(_ context.Context, gameID value.GameID, ids []value.ItemID) ([]entity.Item, error) {
			result := make([]entity.Item, 0, len(ids))
			for _, id := range ids {
				result = append(result, entity.Item{ID: id, GameID: gameID, Value: prices[id]})
			}

			return result, nil
		},
	}

	metrics := &valuation.MetricsMock{EvaluatedFunc: func(value.Status) {}}

	svc := valuation.NewService(catalog, metrics)

	calc, err := svc.Evaluate(
		context.Background(),
		"adopt-me",
		[]value.ItemID{"shadow-dragon", "frost-dragon"},
		[]value.ItemID{"bat-dragon"},
	)
	rq.NoError(err)
	rq.Equal(value.StatusFair, calc.Status)
	rq.Equal(int64(-3_000_000), calc.Delta)
	rq.Len(calc.Offer, 2)
	rq.Len(calc.Want, 1)
	rq.Len(catalog.GetItemsCalls(), 2)
	rq.Equal(value.GameID("adopt-me"), catalog.GetItemsCalls()[0].GameID)
	rq.Len(metrics.EvaluatedCalls(), 1)
	rq.Equal(value.StatusFair, metrics.EvaluatedCalls()[0].Status)
}

func TestServiceEvaluateCatalogError(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	errCatalog := errors.New("catalog down")

	svc := valuation.NewService(
		&valuation.CatalogMock{
			GetItemsFunc: func(context.Context, value.GameID, []value.ItemID) ([]entity.Item, error) {
				return nil, errCatalog
			},
		},
		&valuation.MetricsMock{},
	)

	_, err := svc.Evaluate(context.Background(), "adopt-me", []value.ItemID{"x"}, []value.ItemID{"y"})
	rq.ErrorIs(err, errCatalog)
}
