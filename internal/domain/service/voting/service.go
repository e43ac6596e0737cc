package voting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.appkode.ru/pub/go/failure"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
	"tradevalues/pkg/logx"
)

const (
	defaultMaxAttempts = 5
	defaultBackoff     = 10 * time.Millisecond
)

type TradeRepository interface {
	Create(ctx context.Context, trade entity.Trade) error
	GetByID(ctx context.Context, id value.TradeID) (entity.Trade, error)
	// List returns trades newest first. An empty gameID lists every game.
	List(ctx context.Context, gameID value.GameID, limit, offset int) ([]entity.Trade, error)
	GetBallot(ctx context.Context, tradeID value.TradeID, voterID value.UserID) (*value.Vote, error)
	// SaveVote stores the ballot and the new tally atomically. It fails with a
	// conflict error when the trade version is no longer ExpectedVersion.
	SaveVote(ctx context.Context, change entity.VoteChange) error
}

type Catalog interface {
	GetItems(ctx context.Context, gameID value.GameID, ids []value.ItemID) ([]entity.Item, error)
}

type Metrics interface {
	TradeSubmitted()
	VoteCast(vote value.Vote)
	VoteConflict()
}

type Config struct {
	MaxAttempts int
	Backoff     time.Duration
}

type SubmitRequest struct {
	GameID   value.GameID
	AuthorID value.UserID
	Offer    []value.ItemID
	Want     []value.ItemID
}

type Service struct {
	trades  TradeRepository
	catalog Catalog
	metrics Metrics
	cfg     Config
	now     func() time.Time
}

func NewService(trades TradeRepository, catalog Catalog, metrics Metrics, cfg Config) *Service {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}

	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}

	return &Service{
		trades:  trades,
		catalog: catalog,
		metrics: metrics,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Submit freezes the current catalog entries of both sides into a new trade
// with an empty tally.
func (s *Service) Submit(ctx context.Context, request SubmitRequest) (entity.Trade, error) {
	if len(request.Offer) == 0 || len(request.Want) == 0 {
		return entity.Trade{}, failure.NewInvalidArgumentError(
			"trade side is empty",
			failure.WithCode(errcodes.IncompleteTrade),
			failure.WithDescription("Add items to both sides"),
		)
	}

	offer, err := s.catalog.GetItems(ctx, request.GameID, request.Offer)
	if err != nil {
		return entity.Trade{}, fmt.Errorf("catalog.GetItems(offer): %w", err)
	}

	want, err := s.catalog.GetItems(ctx, request.GameID, request.Want)
	if err != nil {
		return entity.Trade{}, fmt.Errorf("catalog.GetItems(want): %w", err)
	}

	trade := entity.Trade{
		ID:        value.NewTradeID(),
		GameID:    request.GameID,
		AuthorID:  request.AuthorID,
		Offer:     offer,
		Want:      want,
		CreatedAt: s.now().UTC(),
	}

	if err = s.trades.Create(ctx, trade); err != nil {
		return entity.Trade{}, fmt.Errorf("trades.Create: %w", err)
	}

	s.metrics.TradeSubmitted()

	logger(ctx).Info("trade submitted",
		slog.String(logx.FieldTradeID, trade.ID.String()),
		slog.String(logx.FieldGameID, trade.GameID.String()),
	)

	return trade, nil
}

// Get returns the trade with the viewer's current vote. An empty viewer
// skips the ballot lookup.
func (s *Service) Get(ctx context.Context, id value.TradeID, viewer value.UserID) (entity.Trade, error) {
	trade, err := s.trades.GetByID(ctx, id)
	if err != nil {
		return entity.Trade{}, fmt.Errorf("trades.GetByID: %w", err)
	}

	if viewer == "" {
		return trade, nil
	}

	trade.VoterChoice, err = s.trades.GetBallot(ctx, id, viewer)
	if err != nil {
		return entity.Trade{}, fmt.Errorf("trades.GetBallot: %w", err)
	}

	return trade, nil
}

func (s *Service) List(ctx context.Context, gameID value.GameID, limit, offset int) ([]entity.Trade, error) {
	trades, err := s.trades.List(ctx, gameID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("trades.List: %w", err)
	}

	return trades, nil
}

// CastVote records the voter's vote, replacing any earlier one. Concurrent
// writers are detected through the trade version; the read-modify-write is
// retried up to MaxAttempts times before the conflict is returned.
func (s *Service) CastVote(
	ctx context.Context,
	tradeID value.TradeID,
	voterID value.UserID,
	vote value.Vote,
) (entity.Trade, error) {
	if !vote.Valid() {
		return entity.Trade{}, value.InvalidVoteError(vote)
	}

	var lastErr error

	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		trade, err := s.castOnce(ctx, tradeID, voterID, vote)
		if err == nil {
			return trade, nil
		}

		if !failure.IsConflictError(err) {
			return entity.Trade{}, err
		}

		lastErr = err
		s.metrics.VoteConflict()

		logger(ctx).Debug("vote conflict, retrying",
			slog.String(logx.FieldTradeID, tradeID.String()),
			slog.Int("attempt", attempt),
			logx.Error(err),
		)

		if attempt == s.cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return entity.Trade{}, fmt.Errorf("castVote: %w", ctx.Err())
		case <-time.After(s.cfg.Backoff * time.Duration(attempt)):
		}
	}

	logger(ctx).Warn("vote conflict not resolved",
		slog.String(logx.FieldTradeID, tradeID.String()),
		slog.Int("attempts", s.cfg.MaxAttempts),
	)

	return entity.Trade{}, fmt.Errorf("castVote: %w", lastErr)
}

func (s *Service) castOnce(
	ctx context.Context,
	tradeID value.TradeID,
	voterID value.UserID,
	vote value.Vote,
) (entity.Trade, error) {
	trade, err := s.trades.GetByID(ctx, tradeID)
	if err != nil {
		return entity.Trade{}, fmt.Errorf("trades.GetByID: %w", err)
	}

	prev, err := s.trades.GetBallot(ctx, tradeID, voterID)
	if err != nil {
		return entity.Trade{}, fmt.Errorf("trades.GetBallot: %w", err)
	}

	tally, changed := Transition(trade.Tally, prev, vote)
	trade.VoterChoice = &vote

	if !changed {
		return trade, nil
	}

	err = s.trades.SaveVote(ctx, entity.VoteChange{
		TradeID:         tradeID,
		VoterID:         voterID,
		Vote:            vote,
		Tally:           tally,
		ExpectedVersion: trade.Version,
	})
	if err != nil {
		return entity.Trade{}, fmt.Errorf("trades.SaveVote: %w", err)
	}

	s.metrics.VoteCast(vote)

	trade.Tally = tally
	trade.Version++

	return trade, nil
}

// NewConflictError is returned by repositories when a trade version moved
// between read and write.
func NewConflictError(tradeID value.TradeID) error {
	return failure.NewConflictError(
		fmt.Sprintf("trade %s was modified concurrently", tradeID),
		failure.WithCode(errcodes.VoteConflict),
		failure.WithDescription("The trade was updated by another vote, try again"),
	)
}
