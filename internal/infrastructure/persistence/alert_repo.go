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
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
)

type AlertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, alert entity.PriceAlert) error {
	query := `
		INSERT INTO price_alerts (id, user_id, game_id, item_id, item_name, target_value, condition, is_active, triggered_at, created_at)
		VALUES (:id, :user_id, :game_id, :item_id, :item_name, :target_value, :condition, :is_active, :triggered_at, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, fromAlert(alert)); err != nil {
		return domain.WrapError(err, "failed to create alert")
	}

	return nil
}

func (r *AlertRepository) Get(ctx context.Context, id value.AlertID) (entity.PriceAlert, error) {
	var s alertSchema
	if err := r.db.GetContext(ctx, &s, `SELECT * FROM price_alerts WHERE id = $1`, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.PriceAlert{}, alertNotFound()
		}

		return entity.PriceAlert{}, domain.WrapError(err, "failed to get alert")
	}

	return s.toDomain(), nil
}

func (r *AlertRepository) ListByUser(ctx context.Context, userID value.UserID) ([]entity.PriceAlert, error) {
	return r.list(ctx, `SELECT * FROM price_alerts WHERE user_id = $1 ORDER BY created_at DESC`, userID.String())
}

func (r *AlertRepository) ListPending(ctx context.Context) ([]entity.PriceAlert, error) {
	return r.list(ctx, `SELECT * FROM price_alerts WHERE is_active AND triggered_at IS NULL ORDER BY created_at`)
}

func (r *AlertRepository) SetActive(ctx context.Context, id value.AlertID, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE price_alerts SET is_active = $1 WHERE id = $2`, active, id.String())
	if err != nil {
		return domain.WrapError(err, "failed to update alert")
	}

	return expectRow(res, alertNotFound)
}

func (r *AlertRepository) Delete(ctx context.Context, id value.AlertID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM price_alerts WHERE id = $1`, id.String())
	if err != nil {
		return domain.WrapError(err, "failed to delete alert")
	}

	return expectRow(res, alertNotFound)
}

func (r *AlertRepository) MarkTriggered(ctx context.Context, id value.AlertID, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE price_alerts SET triggered_at = $1 WHERE id = $2 AND triggered_at IS NULL`, at, id.String())
	if err != nil {
		return false, domain.WrapError(err, "failed to mark alert")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, domain.WrapError(err, "failed to check rows")
	}

	return rows > 0, nil
}

func (r *AlertRepository) list(ctx context.Context, query string, args ...any) ([]entity.PriceAlert, error) {
	var schemas []alertSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.WrapError(err, "failed to list alerts")
	}

	alerts := make([]entity.PriceAlert, 0, len(schemas))
	for _, s := range schemas {
		alerts = append(alerts, s.toDomain())
	}

	return alerts, nil
}

func expectRow(res sql.Result, notFound func() error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, "failed to check rows")
	}

	if rows == 0 {
		return notFound()
	}

	return nil
}

func alertNotFound() error {
	return failure.NewNotFoundError(
		"alert not found",
		failure.WithCode(errcodes.AlertNotFound),
		failure.WithDescription("Alert not found"),
	)
}
