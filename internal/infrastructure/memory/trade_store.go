// Package memory keeps trades and ballots in process memory. It backs tests
// and single-instance deployments without Postgres.
package memory

import (
	"context"
	"slices"
	"sync"

	"git.appkode.ru/pub/go/failure"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/voting"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
)

type tradeRecord struct {
	mu      sync.Mutex
	trade   entity.Trade
	ballots map[value.UserID]value.Vote
}

type TradeStore struct {
	mu     sync.RWMutex
	trades map[value.TradeID]*tradeRecord
	order  []value.TradeID
}

func NewTradeStore() *TradeStore {
	return &TradeStore{
		trades: make(map[value.TradeID]*tradeRecord),
	}
}

func (s *TradeStore) Create(_ context.Context, trade entity.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trades[trade.ID]; ok {
		return failure.NewConflictError("trade already exists", failure.WithCode(errcodes.VoteConflict))
	}

	trade.VoterChoice = nil
	trade.Offer = slices.Clone(trade.Offer)
	trade.Want = slices.Clone(trade.Want)

	s.trades[trade.ID] = &tradeRecord{
		trade:   trade,
		ballots: make(map[value.UserID]value.Vote),
	}
	s.order = append(s.order, trade.ID)

	return nil
}

func (s *TradeStore) GetByID(_ context.Context, id value.TradeID) (entity.Trade, error) {
	rec, err := s.record(id)
	if err != nil {
		return entity.Trade{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	return snapshot(rec.trade), nil
}

func (s *TradeStore) List(_ context.Context, gameID value.GameID, limit, offset int) ([]entity.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.Trade, 0, limit)

	for i := len(s.order) - 1; i >= 0 && len(result) < limit; i-- {
		rec := s.trades[s.order[i]]

		rec.mu.Lock()
		trade := snapshot(rec.trade)
		rec.mu.Unlock()

		if gameID != "" && trade.GameID != gameID {
			continue
		}

		if offset > 0 {
			offset--
			continue
		}

		result = append(result, trade)
	}

	return result, nil
}

func (s *TradeStore) GetBallot(_ context.Context, tradeID value.TradeID, voterID value.UserID) (*value.Vote, error) {
	rec, err := s.record(tradeID)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	v, ok := rec.ballots[voterID]
	if !ok {
		return nil, nil //nolint:nilnil // no ballot yet
	}

	return &v, nil
}

func (s *TradeStore) SaveVote(_ context.Context, change entity.VoteChange) error {
	rec, err := s.record(change.TradeID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.trade.Version != change.ExpectedVersion {
		return voting.NewConflictError(change.TradeID)
	}

	rec.ballots[change.VoterID] = change.Vote
	rec.trade.Tally = change.Tally
	rec.trade.Version++

	return nil
}

func (s *TradeStore) record(id value.TradeID) (*tradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.trades[id]
	if !ok {
		return nil, failure.NewNotFoundError(
			"trade not found",
			failure.WithCode(errcodes.TradeNotFound),
			failure.WithDescription("Trade not found"),
		)
	}

	return rec, nil
}

func snapshot(t entity.Trade) entity.Trade {
	t.Offer = slices.Clone(t.Offer)
	t.Want = slices.Clone(t.Want)

	return t
}
