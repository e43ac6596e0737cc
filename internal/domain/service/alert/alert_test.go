package alert_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"tradevalues/internal/domain"
	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/alert"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
)

type fixture struct {
	repo     *alert.RepositoryMock
	items    *alert.ItemsMock
	notifier *alert.NotifierMock
	deduper  *alert.DeduperMock
	metrics  *alert.MetricsMock
	svc      *alert.Service
}

func newFixture(alerts []entity.PriceAlert, values map[value.ItemID]int64) *fixture {
	var (
		mu      sync.Mutex
		claimed = map[string]bool{}
		stored  = map[value.AlertID]entity.PriceAlert{}
	)

	for _, a := range alerts {
		stored[a.ID] = a
	}

	f := &fixture{
		repo: &alert.RepositoryMock{
			CreateFunc: func(_ context.Context, a entity.PriceAlert) error {
				stored[a.ID] = a
				return nil
			},
			GetFunc: func(_ context.Context, id value.AlertID) (entity.PriceAlert, error) {
				a, ok := stored[id]
				if !ok {
					return entity.PriceAlert{}, failure.NewNotFoundError("alert not found", failure.WithCode(errcodes.AlertNotFound))
				}

				return a, nil
			},
			ListPendingFunc: func(context.Context) ([]entity.PriceAlert, error) {
				var pending []entity.PriceAlert

				for _, a := range alerts {
					if stored[a.ID].Pending() {
						pending = append(pending, stored[a.ID])
					}
				}

				return pending, nil
			},
			MarkTriggeredFunc: func(_ context.Context, id value.AlertID, at time.Time) (bool, error) {
				a := stored[id]
				if a.TriggeredAt != nil {
					return false, nil
				}

				a.TriggeredAt = &at
				stored[id] = a

				return true, nil
			},
			SetActiveFunc: func(_ context.Context, id value.AlertID, active bool) error {
				a := stored[id]
				a.IsActive = active
				stored[id] = a

				return nil
			},
			DeleteFunc: func(_ context.Context, id value.AlertID) error {
				delete(stored, id)
				return nil
			},
		},
		items: &alert.ItemsMock{
			GetItemFunc: func(_ context.Context, gameID value.GameID, itemID value.ItemID) (entity.Item, error) {
				v, ok := values[itemID]
				if !ok {
					return entity.Item{}, failure.NewNotFoundError("item not found", failure.WithCode(errcodes.ItemNotFound))
				}

				return entity.Item{ID: itemID, GameID: gameID, Name: "Item " + itemID.String(), Value: v}, nil
			},
		},
		notifier: &alert.NotifierMock{
			NotifyFunc: func(context.Context, alert.Notification) error { return nil },
		},
		deduper: &alert.DeduperMock{
			AcquireFunc: func(_ context.Context, key string, _ time.Duration) (bool, error) {
				mu.Lock()
				defer mu.Unlock()

				if claimed[key] {
					return false, nil
				}

				claimed[key] = true

				return true, nil
			},
			ReleaseFunc: func(_ context.Context, key string) error {
				mu.Lock()
				defer mu.Unlock()

				delete(claimed, key)

				return nil
			},
		},
		metrics: &alert.MetricsMock{AlertTriggeredFunc: func() {}},
	}

	f.svc = alert.NewService(f.repo, f.items, f.notifier, f.deduper, f.metrics)

	return f
}

func pending(itemID value.ItemID, target int64, condition value.Condition) entity.PriceAlert {
	return entity.PriceAlert{
		ID:          value.NewAlertID(),
		UserID:      "user",
		GameID:      "mm2",
		ItemID:      itemID,
		ItemName:    "Harvester",
		TargetValue: target,
		Condition:   condition,
		IsActive:    true,
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	above := pending("harvester", 150_000, value.ConditionAbove)
	below := pending("harvester", 100, value.ConditionBelow)
	exact := pending("icebreaker", 2_500, value.ConditionBelow)
	missing := pending("ghost", 1, value.ConditionAbove)
	inactive := pending("harvester", 1, value.ConditionAbove)
	inactive.IsActive = false

	f := newFixture(
		[]entity.PriceAlert{above, below, exact, missing, inactive},
		map[value.ItemID]int64{"harvester": 180_000, "icebreaker": 2_500},
	)

	n, err := f.svc.Check(context.Background())
	rq.NoError(err)
	rq.Equal(2, n)

	calls := f.notifier.NotifyCalls()
	rq.Len(calls, 2)
	rq.Equal("Harvester is now above 150.0K (current: 180.0K)", calls[0].N.Text)
	rq.Equal(value.UserID("user"), calls[0].N.UserID)
	rq.Equal("Harvester is now below 2.5K (current: 2.5K)", calls[1].N.Text)
	rq.Len(f.metrics.AlertTriggeredCalls(), 2)

	n, err = f.svc.Check(context.Background())
	rq.NoError(err)
	rq.Zero(n)
	rq.Len(f.notifier.NotifyCalls(), 2)
}

func TestCheckNotifyFailureReleasesClaim(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	a := pending("harvester", 100, value.ConditionAbove)
	f := newFixture([]entity.PriceAlert{a}, map[value.ItemID]int64{"harvester": 180})

	f.notifier.NotifyFunc = func(context.Context, alert.Notification) error {
		return errors.New("telegram unavailable")
	}

	n, err := f.svc.Check(context.Background())
	rq.NoError(err)
	rq.Zero(n)
	rq.Len(f.deduper.ReleaseCalls(), 1)
	rq.Empty(f.repo.MarkTriggeredCalls())

	f.notifier.NotifyFunc = func(context.Context, alert.Notification) error { return nil }

	n, err = f.svc.Check(context.Background())
	rq.NoError(err)
	rq.Equal(1, n)
}

func TestCheckClaimedElsewhere(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	a := pending("harvester", 100, value.ConditionAbove)
	f := newFixture([]entity.PriceAlert{a}, map[value.ItemID]int64{"harvester": 180})

	f.deduper.AcquireFunc = func(context.Context, string, time.Duration) (bool, error) {
		return false, nil
	}

	n, err := f.svc.Check(context.Background())
	rq.NoError(err)
	rq.Zero(n)
	rq.Empty(f.notifier.NotifyCalls())
}

func TestCheckStopsOnStorageFailure(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	first := pending("harvester", 100, value.ConditionAbove)
	second := pending("icebreaker", 100, value.ConditionAbove)
	f := newFixture([]entity.PriceAlert{first, second}, map[value.ItemID]int64{"harvester": 180, "icebreaker": 180})

	cause := errors.New("connection reset")
	f.repo.MarkTriggeredFunc = func(context.Context, value.AlertID, time.Time) (bool, error) {
		return false, domain.WrapError(cause, "failed to mark alert")
	}

	_, err := f.svc.Check(context.Background())
	rq.ErrorIs(err, cause)
	rq.Len(f.notifier.NotifyCalls(), 1)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	f := newFixture(nil, map[value.ItemID]int64{"harvester": 180})

	created, err := f.svc.Create(context.Background(), "user", alert.CreateRequest{
		GameID:      "mm2",
		ItemID:      "harvester",
		TargetValue: 200,
		Condition:   value.ConditionAbove,
	})
	rq.NoError(err)
	rq.Equal("Item harvester", created.ItemName)
	rq.True(created.IsActive)
	rq.Nil(created.TriggeredAt)

	_, err = f.svc.Create(context.Background(), "user", alert.CreateRequest{
		GameID: "mm2", ItemID: "harvester", TargetValue: 0, Condition: value.ConditionAbove,
	})
	rq.Equal(errcodes.InvalidTargetValue, failure.Code(err))

	_, err = f.svc.Create(context.Background(), "user", alert.CreateRequest{
		GameID: "mm2", ItemID: "harvester", TargetValue: 10, Condition: "sideways",
	})
	rq.Equal(errcodes.InvalidCondition, failure.Code(err))

	_, err = f.svc.Create(context.Background(), "user", alert.CreateRequest{
		GameID: "mm2", ItemID: "ghost", TargetValue: 10, Condition: value.ConditionBelow,
	})
	rq.True(failure.IsNotFoundError(err))
}

func TestOwnership(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	a := pending("harvester", 100, value.ConditionAbove)
	f := newFixture([]entity.PriceAlert{a}, nil)

	_, err := f.svc.SetActive(context.Background(), "intruder", a.ID, false)
	rq.Equal(errcodes.AlertNotFound, failure.Code(err))

	err = f.svc.Delete(context.Background(), "intruder", a.ID)
	rq.True(failure.IsNotFoundError(err))
	rq.Empty(f.repo.DeleteCalls())

	updated, err := f.svc.SetActive(context.Background(), "user", a.ID, false)
	rq.NoError(err)
	rq.False(updated.IsActive)

	rq.NoError(f.svc.Delete(context.Background(), "user", a.ID))
	rq.Len(f.repo.DeleteCalls(), 1)
}
