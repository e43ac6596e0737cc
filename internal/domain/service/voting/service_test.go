package voting_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/voting"
	"tradevalues/internal/domain/value"
	"tradevalues/internal/infrastructure/memory"
	"tradevalues/pkg/errcodes"
)

func newMetrics() *voting.MetricsMock {
	return &voting.MetricsMock{
		TradeSubmittedFunc: func() {},
		VoteCastFunc:       func(value.Vote) {},
		VoteConflictFunc:   func() {},
	}
}

func newCatalog(prices map[value.ItemID]int64) *voting.CatalogMock {
	return &voting.CatalogMock{
		GetItemsFunc: func(_ context.Context, gameID value.GameID, ids []value.ItemID) ([]entity.Item, error) {
			result := make([]entity.Item, 0, len(ids))

			for _, id := range ids {
				v, ok := prices[id]
				if !ok {
					return nil, failure.NewNotFoundError("item not found", failure.WithCode(errcodes.ItemNotFound))
				}

				result = append(result, entity.Item{ID: id, GameID: gameID, Value: v})
			}

			return result, nil
		},
	}
}

func submit(t *testing.T, svc *voting.Service) entity.Trade {
	t.Helper()

	trade, err := svc.Submit(context.Background(), voting.SubmitRequest{
		GameID:   "mm2",
		AuthorID: "author",
		Offer:    []value.ItemID{"harvester", "icebreaker"},
		Want:     []value.ItemID{"chroma-lightbringer"},
	})
	require.NoError(t, err)

	return trade
}

var prices = map[value.ItemID]int64{ //nolint:gochecknoglobals
	"harvester":           180,
	"icebreaker":          20,
	"chroma-lightbringer": 210,
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()
	metrics := newMetrics()
	store := memory.NewTradeStore()
	svc := voting.NewService(store, newCatalog(prices), metrics, voting.Config{})

	trade := submit(t, svc)

	_, err := value.ParseTradeID(trade.ID.String())
	rq.NoError(err)
	rq.Equal(entity.Tally{}, trade.Tally)
	rq.Len(trade.Offer, 2)
	rq.Equal(int64(180), trade.Offer[0].Value)
	rq.Len(metrics.TradeSubmittedCalls(), 1)

	stored, err := svc.Get(ctx, trade.ID, "")
	rq.NoError(err)
	rq.Equal(trade.Offer, stored.Offer)
	rq.Nil(stored.VoterChoice)

	list, err := svc.List(ctx, "mm2", 10, 0)
	rq.NoError(err)
	rq.Len(list, 1)
}

func TestSubmitIncomplete(t *testing.T) {
	t.Parallel()

	svc := voting.NewService(memory.NewTradeStore(), newCatalog(prices), newMetrics(), voting.Config{})

	for _, request := range []voting.SubmitRequest{
		{GameID: "mm2", Offer: []value.ItemID{"harvester"}},
		{GameID: "mm2", Want: []value.ItemID{"harvester"}},
		{GameID: "mm2"},
	} {
		_, err := svc.Submit(context.Background(), request)
		require.True(t, failure.IsInvalidArgumentError(err))
		require.Equal(t, errcodes.IncompleteTrade, failure.Code(err))
	}
}

func TestSubmitUnknownItem(t *testing.T) {
	t.Parallel()

	svc := voting.NewService(memory.NewTradeStore(), newCatalog(prices), newMetrics(), voting.Config{})

	_, err := svc.Submit(context.Background(), voting.SubmitRequest{
		GameID: "mm2",
		Offer:  []value.ItemID{"harvester"},
		Want:   []value.ItemID{"unknown"},
	})
	require.True(t, failure.IsNotFoundError(err))
}

func TestCastVoteRoundTrip(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()
	metrics := newMetrics()
	svc := voting.NewService(memory.NewTradeStore(), newCatalog(prices), metrics, voting.Config{})

	trade := submit(t, svc)

	for _, v := range []value.Vote{value.VoteWin, value.VoteFair, value.VoteLoss} {
		updated, err := svc.CastVote(ctx, trade.ID, "voter", v)
		rq.NoError(err)
		rq.Equal(v, *updated.VoterChoice)
	}

	got, err := svc.Get(ctx, trade.ID, "voter")
	rq.NoError(err)
	rq.Equal(entity.Tally{Loss: 1}, got.Tally)
	rq.Equal(value.VoteLoss, *got.VoterChoice)

	again, err := svc.CastVote(ctx, trade.ID, "voter", value.VoteLoss)
	rq.NoError(err)
	rq.Equal(entity.Tally{Loss: 1}, again.Tally)
	rq.Equal(got.Version, again.Version)
	rq.Len(metrics.VoteCastCalls(), 3)
}

func TestCastVoteInvalid(t *testing.T) {
	t.Parallel()

	svc := voting.NewService(memory.NewTradeStore(), newCatalog(prices), newMetrics(), voting.Config{})

	for _, vote := range []value.Vote{"", "retract", "WIN"} {
		_, err := svc.CastVote(context.Background(), value.NewTradeID(), "voter", vote)
		require.True(t, failure.IsInvalidArgumentError(err), vote)
		require.Equal(t, errcodes.InvalidVote, failure.Code(err))
	}
}

func TestCastVoteConcurrentVoters(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()
	svc := voting.NewService(
		memory.NewTradeStore(),
		newCatalog(prices),
		newMetrics(),
		voting.Config{MaxAttempts: 1000, Backoff: time.Microsecond},
	)

	trade := submit(t, svc)

	const voters = 50

	var wg sync.WaitGroup

	errs := make(chan error, voters*2)

	for i := range voters {
		wg.Add(1)

		go func() {
			defer wg.Done()

			voter := value.UserID(fmt.Sprintf("voter-%d", i))
			votes := value.Votes()

			if _, err := svc.CastVote(ctx, trade.ID, voter, votes[i%3]); err != nil {
				errs <- err
				return
			}

			if _, err := svc.CastVote(ctx, trade.ID, voter, votes[(i+1)%3]); err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		rq.NoError(err)
	}

	got, err := svc.Get(ctx, trade.ID, "")
	rq.NoError(err)
	rq.Equal(int64(voters), got.Tally.Total())
	rq.Equal(entity.Tally{Win: 16, Fair: 17, Loss: 17}, got.Tally)
}

func TestCastVoteRetriesConflict(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()
	tradeID := value.NewTradeID()

	version := int64(0)
	tally := entity.Tally{Win: 2}

	repo := &voting.TradeRepositoryMock{
		GetByIDFunc: func(context.Context, value.TradeID) (entity.Trade, error) {
			return entity.Trade{ID: tradeID, Tally: tally, Version: version}, nil
		},
		GetBallotFunc: func(context.Context, value.TradeID, value.UserID) (*value.Vote, error) {
			return nil, nil //nolint:nilnil // no ballot
		},
	}

	repo.SaveVoteFunc = func(_ context.Context, change entity.VoteChange) error {
		if len(repo.SaveVoteCalls()) == 1 {
			// another voter got in first
			version++
			tally = tally.Add(value.VoteFair, 1)

			return voting.NewConflictError(change.TradeID)
		}

		rq.Equal(version, change.ExpectedVersion)

		return nil
	}

	metrics := newMetrics()
	svc := voting.NewService(repo, newCatalog(prices), metrics, voting.Config{Backoff: time.Millisecond})

	trade, err := svc.CastVote(ctx, tradeID, "voter", value.VoteLoss)
	rq.NoError(err)
	rq.Equal(entity.Tally{Win: 2, Fair: 1, Loss: 1}, trade.Tally)
	rq.Equal(int64(2), trade.Version)
	rq.Len(repo.SaveVoteCalls(), 2)
	rq.Len(metrics.VoteConflictCalls(), 1)
	rq.Len(metrics.VoteCastCalls(), 1)
}

func TestCastVoteGivesUp(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	tradeID := value.NewTradeID()

	repo := &voting.TradeRepositoryMock{
		GetByIDFunc: func(context.Context, value.TradeID) (entity.Trade, error) {
			return entity.Trade{ID: tradeID}, nil
		},
		GetBallotFunc: func(context.Context, value.TradeID, value.UserID) (*value.Vote, error) {
			return nil, nil //nolint:nilnil // no ballot
		},
		SaveVoteFunc: func(_ context.Context, change entity.VoteChange) error {
			return voting.NewConflictError(change.TradeID)
		},
	}

	svc := voting.NewService(repo, newCatalog(prices), newMetrics(), voting.Config{MaxAttempts: 3, Backoff: time.Millisecond})

	_, err := svc.CastVote(context.Background(), tradeID, "voter", value.VoteWin)
	rq.True(failure.IsConflictError(err))
	rq.Equal(errcodes.VoteConflict, failure.Code(err))
	rq.Len(repo.SaveVoteCalls(), 3)
}

func TestCastVoteRepositoryError(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	errDB := errors.New("db is down")

	repo := &voting.TradeRepositoryMock{
		GetByIDFunc: func(context.Context, value.TradeID) (entity.Trade, error) {
			return entity.Trade{}, errDB
		},
	}

	svc := voting.NewService(repo, newCatalog(prices), newMetrics(), voting.Config{})

	_, err := svc.CastVote(context.Background(), value.NewTradeID(), "voter", value.VoteWin)
	rq.ErrorIs(err, errDB)
	rq.Len(repo.GetByIDCalls(), 1)
}
