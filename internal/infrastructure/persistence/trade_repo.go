package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/jmoiron/sqlx"

	"tradevalues/internal/domain"
	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/voting"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
)

type TradeRepository struct {
	db *sqlx.DB
}

func NewTradeRepository(db *sqlx.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) Create(ctx context.Context, trade entity.Trade) error {
	s, err := fromTrade(trade)
	if err != nil {
		return domain.WrapError(err, "failed to encode trade")
	}

	query := `
		INSERT INTO trades (id, game_id, author_id, offer, want, win, fair, loss, version, created_at)
		VALUES (:id, :game_id, :author_id, :offer, :want, :win, :fair, :loss, :version, :created_at)`

	if _, err = r.db.NamedExecContext(ctx, query, s); err != nil {
		return domain.WrapError(err, "failed to create trade")
	}

	return nil
}

func (r *TradeRepository) GetByID(ctx context.Context, id value.TradeID) (entity.Trade, error) {
	var s tradeSchema
	if err := r.db.GetContext(ctx, &s, `SELECT * FROM trades WHERE id = $1`, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Trade{}, tradeNotFound()
		}

		return entity.Trade{}, domain.WrapError(err, "failed to get trade")
	}

	trade, err := s.toDomain()
	if err != nil {
		return entity.Trade{}, domain.WrapError(err, "failed to decode trade")
	}

	return trade, nil
}

func (r *TradeRepository) List(ctx context.Context, gameID value.GameID, limit, offset int) ([]entity.Trade, error) {
	query := `
		SELECT * FROM trades
		WHERE ($1 = '' OR game_id = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	var schemas []tradeSchema
	if err := r.db.SelectContext(ctx, &schemas, query, gameID.String(), limit, offset); err != nil {
		return nil, domain.WrapError(err, "failed to list trades")
	}

	trades := make([]entity.Trade, 0, len(schemas))

	for _, s := range schemas {
		t, err := s.toDomain()
		if err != nil {
			return nil, domain.WrapError(err, "failed to decode trade")
		}

		trades = append(trades, t)
	}

	return trades, nil
}

func (r *TradeRepository) GetBallot(ctx context.Context, tradeID value.TradeID, voterID value.UserID) (*value.Vote, error) {
	var vote string

	err := r.db.GetContext(ctx, &vote,
		`SELECT vote FROM trade_votes WHERE trade_id = $1 AND voter_id = $2`, tradeID.String(), voterID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil //nolint:nilnil // no ballot yet
		}

		return nil, domain.WrapError(err, "failed to get ballot")
	}

	v := value.Vote(vote)

	return &v, nil
}

// SaveVote bumps the trade version only if it still equals the expected one,
// then upserts the ballot in the same transaction.
func (r *TradeRepository) SaveVote(ctx context.Context, change entity.VoteChange) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE trades
			SET win = $1, fair = $2, loss = $3, version = version + 1
			WHERE id = $4 AND version = $5`,
			change.Tally.Win, change.Tally.Fair, change.Tally.Loss, change.TradeID.String(), change.ExpectedVersion,
		)
		if err != nil {
			return domain.WrapError(err, "failed to update tally")
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, "failed to check rows")
		}

		if rows == 0 {
			var exists bool
			if err = tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM trades WHERE id = $1)`, change.TradeID.String()); err != nil {
				return domain.WrapError(err, "failed to check trade")
			}

			if !exists {
				return tradeNotFound()
			}

			return voting.NewConflictError(change.TradeID)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO trade_votes (trade_id, voter_id, vote, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (trade_id, voter_id) DO UPDATE SET vote = EXCLUDED.vote, updated_at = EXCLUDED.updated_at`,
			change.TradeID.String(), change.VoterID.String(), change.Vote.String(), time.Now().UTC(),
		)
		if err != nil {
			return domain.WrapError(err, "failed to save ballot")
		}

		return nil
	})
}

func tradeNotFound() error {
	return failure.NewNotFoundError(
		"trade not found",
		failure.WithCode(errcodes.TradeNotFound),
		failure.WithDescription("Trade not found"),
	)
}
