package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/jmoiron/sqlx"

	"tradevalues/internal/domain"
	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
	"tradevalues/pkg/logx"
)

type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListGames(ctx context.Context) ([]entity.Game, error) {
	var schemas []gameSchema
	if err := r.db.SelectContext(ctx, &schemas, `SELECT * FROM games ORDER BY name`); err != nil {
		return nil, domain.WrapError(err, "failed to list games")
	}

	games := make([]entity.Game, 0, len(schemas))

	for _, s := range schemas {
		g, err := s.toDomain()
		if err != nil {
			return nil, domain.WrapError(err, "failed to decode game")
		}

		games = append(games, g)
	}

	return games, nil
}

func (r *CatalogRepository) GetGame(ctx context.Context, id value.GameID) (entity.Game, error) {
	var s gameSchema
	if err := r.db.GetContext(ctx, &s, `SELECT * FROM games WHERE id = $1 OR slug = $1`, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Game{}, gameNotFound(id)
		}

		return entity.Game{}, domain.WrapError(err, "failed to get game")
	}

	g, err := s.toDomain()
	if err != nil {
		return entity.Game{}, domain.WrapError(err, "failed to decode game")
	}

	return g, nil
}

func (r *CatalogRepository) ListItems(ctx context.Context, gameID value.GameID, filter entity.ItemFilter) ([]entity.Item, error) {
	query := `
		SELECT * FROM items
		WHERE game_id = $1
		  AND ($2 = '' OR lower(category) = lower($2))
		  AND ($3 = '' OR name ILIKE '%' || $3 || '%')
		ORDER BY value DESC, name`

	var schemas []itemSchema
	if err := r.db.SelectContext(ctx, &schemas, query, gameID.String(), filter.Category, escapeLike(filter.Search)); err != nil {
		return nil, domain.WrapError(err, "failed to list items")
	}

	items := make([]entity.Item, 0, len(schemas))
	for _, s := range schemas {
		items = append(items, s.toDomain())
	}

	return items, nil
}

func (r *CatalogRepository) GetItem(ctx context.Context, gameID value.GameID, itemID value.ItemID) (entity.Item, error) {
	var s itemSchema
	if err := r.db.GetContext(ctx, &s, `SELECT * FROM items WHERE game_id = $1 AND id = $2`, gameID.String(), itemID.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Item{}, itemNotFound(gameID, itemID)
		}

		return entity.Item{}, domain.WrapError(err, "failed to get item")
	}

	return s.toDomain(), nil
}

func (r *CatalogRepository) ValueHistory(
	ctx context.Context,
	gameID value.GameID,
	itemID value.ItemID,
	limit int,
) ([]entity.ValuePoint, error) {
	query := `
		SELECT item_id, value, recorded_at, changed_by FROM (
			SELECT * FROM item_value_history
			WHERE game_id = $1 AND item_id = $2
			ORDER BY recorded_at DESC, id DESC
			LIMIT $3
		) latest
		ORDER BY recorded_at, id`

	var schemas []valuePointSchema
	if err := r.db.SelectContext(ctx, &schemas, query, gameID.String(), itemID.String(), limit); err != nil {
		return nil, domain.WrapError(err, "failed to get value history")
	}

	points := make([]entity.ValuePoint, 0, len(schemas))
	for _, s := range schemas {
		points = append(points, s.toDomain())
	}

	return points, nil
}

func (r *CatalogRepository) UpsertGame(ctx context.Context, game entity.Game) error {
	s, err := fromGame(game)
	if err != nil {
		return domain.WrapError(err, "failed to encode game")
	}

	query := `
		INSERT INTO games (id, name, slug, description, image_url, color, categories)
		VALUES (:id, :name, :slug, :description, :image_url, :color, :categories)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			color = EXCLUDED.color,
			categories = EXCLUDED.categories`

	if _, err = r.db.NamedExecContext(ctx, query, s); err != nil {
		return domain.WrapError(err, "failed to upsert game")
	}

	return nil
}

// UpsertItem stores the item and appends a history point when its value is
// new or changed. It reports whether a point was recorded.
func (r *CatalogRepository) UpsertItem(ctx context.Context, item entity.Item, changedBy *value.UserID) (bool, error) {
	var recorded bool

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		s := fromItem(item)
		s.UpdatedAt = time.Now().UTC()

		var previous int64

		err := tx.GetContext(ctx, &previous,
			`SELECT value FROM items WHERE game_id = $1 AND id = $2 FOR UPDATE`, s.GameID, s.ID)

		exists := true

		switch {
		case errors.Is(err, sql.ErrNoRows):
			exists = false
		case err != nil:
			return domain.WrapError(err, "failed to lock item")
		}

		if exists {
			s.LastChange = item.Value - previous
		}

		query := `
			INSERT INTO items (game_id, id, name, value, demand, trend, rarity, category, image_url, last_change, updated_at)
			VALUES (:game_id, :id, :name, :value, :demand, :trend, :rarity, :category, :image_url, :last_change, :updated_at)
			ON CONFLICT (game_id, id) DO UPDATE SET
				name = EXCLUDED.name,
				value = EXCLUDED.value,
				demand = EXCLUDED.demand,
				trend = EXCLUDED.trend,
				rarity = EXCLUDED.rarity,
				category = EXCLUDED.category,
				image_url = EXCLUDED.image_url,
				last_change = CASE WHEN items.value = EXCLUDED.value THEN items.last_change ELSE EXCLUDED.last_change END,
				updated_at = EXCLUDED.updated_at`

		if _, err = tx.NamedExecContext(ctx, query, s); err != nil {
			return domain.WrapError(err, "failed to upsert item")
		}

		if exists && previous == item.Value {
			return nil
		}

		var by sql.NullString
		if changedBy != nil {
			by = sql.NullString{String: changedBy.String(), Valid: true}
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO item_value_history (game_id, item_id, value, recorded_at, changed_by) VALUES ($1, $2, $3, $4, $5)`,
			s.GameID, s.ID, s.Value, s.UpdatedAt, by,
		)
		if err != nil {
			return domain.WrapError(err, "failed to record value history")
		}

		recorded = true

		logger(ctx).Debug("item value recorded",
			slog.String(logx.FieldGameID, s.GameID),
			slog.String(logx.FieldItemID, s.ID),
			slog.Int64("value", s.Value),
		)

		return nil
	})

	return recorded, err
}

func gameNotFound(id value.GameID) error {
	return failure.NewNotFoundError(
		fmt.Sprintf("game %s not found", id),
		failure.WithCode(errcodes.GameNotFound),
		failure.WithDescription("Game not found"),
	)
}

func itemNotFound(gameID value.GameID, itemID value.ItemID) error {
	return failure.NewNotFoundError(
		fmt.Sprintf("item %s/%s not found", gameID, itemID),
		failure.WithCode(errcodes.ItemNotFound),
		failure.WithDescription("Item not found"),
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`) //nolint:gochecknoglobals

func escapeLike(s string) string {
	return likeEscaper.Replace(strings.TrimSpace(s))
}
