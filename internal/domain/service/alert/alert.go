package alert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.appkode.ru/pub/go/failure"

	"tradevalues/internal/domain"
	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
	"tradevalues/pkg/logx"
)

const defaultClaimTTL = 5 * time.Minute

type Repository interface {
	Create(ctx context.Context, alert entity.PriceAlert) error
	Get(ctx context.Context, id value.AlertID) (entity.PriceAlert, error)
	// ListByUser returns the user's alerts newest first.
	ListByUser(ctx context.Context, userID value.UserID) ([]entity.PriceAlert, error)
	// ListPending returns active alerts that have not triggered yet.
	ListPending(ctx context.Context) ([]entity.PriceAlert, error)
	SetActive(ctx context.Context, id value.AlertID, active bool) error
	Delete(ctx context.Context, id value.AlertID) error
	// MarkTriggered sets triggered_at only if it is still empty and reports
	// whether this call set it.
	MarkTriggered(ctx context.Context, id value.AlertID, at time.Time) (bool, error)
}

type Items interface {
	GetItem(ctx context.Context, gameID value.GameID, itemID value.ItemID) (entity.Item, error)
}

type Notification struct {
	UserID  value.UserID
	AlertID value.AlertID
	Title   string
	Text    string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Deduper is a short lived claim on a key shared between workers.
type Deduper interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type Metrics interface {
	AlertTriggered()
}

type CreateRequest struct {
	GameID      value.GameID
	ItemID      value.ItemID
	TargetValue int64
	Condition   value.Condition
}

type Service struct {
	repo     Repository
	items    Items
	notifier Notifier
	deduper  Deduper
	metrics  Metrics
	claimTTL time.Duration
	now      func() time.Time
}

func NewService(
	repo Repository,
	items Items,
	notifier Notifier,
	deduper Deduper,
	metrics Metrics,
) *Service {
	return &Service{
		repo:     repo,
		items:    items,
		notifier: notifier,
		deduper:  deduper,
		metrics:  metrics,
		claimTTL: defaultClaimTTL,
		now:      time.Now,
	}
}

func (s *Service) Create(ctx context.Context, userID value.UserID, request CreateRequest) (entity.PriceAlert, error) {
	if request.TargetValue <= 0 {
		return entity.PriceAlert{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("target value %d", request.TargetValue),
			failure.WithCode(errcodes.InvalidTargetValue),
			failure.WithDescription("Target value must be positive"),
		)
	}

	if _, err := value.ParseCondition(request.Condition.String()); err != nil {
		return entity.PriceAlert{}, fmt.Errorf("value.ParseCondition: %w", err)
	}

	item, err := s.items.GetItem(ctx, request.GameID, request.ItemID)
	if err != nil {
		return entity.PriceAlert{}, fmt.Errorf("items.GetItem: %w", err)
	}

	alert := entity.PriceAlert{
		ID:          value.NewAlertID(),
		UserID:      userID,
		GameID:      request.GameID,
		ItemID:      request.ItemID,
		ItemName:    item.Name,
		TargetValue: request.TargetValue,
		Condition:   request.Condition,
		IsActive:    true,
		CreatedAt:   s.now().UTC(),
	}

	if err = s.repo.Create(ctx, alert); err != nil {
		return entity.PriceAlert{}, fmt.Errorf("repo.Create: %w", err)
	}

	logger(ctx).Info("price alert created",
		slog.String(logx.FieldAlertID, alert.ID.String()),
		slog.String(logx.FieldItemID, alert.ItemID.String()),
	)

	return alert, nil
}

func (s *Service) List(ctx context.Context, userID value.UserID) ([]entity.PriceAlert, error) {
	alerts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByUser: %w", err)
	}

	return alerts, nil
}

func (s *Service) SetActive(ctx context.Context, userID value.UserID, id value.AlertID, active bool) (entity.PriceAlert, error) {
	alert, err := s.owned(ctx, userID, id)
	if err != nil {
		return entity.PriceAlert{}, err
	}

	if err = s.repo.SetActive(ctx, id, active); err != nil {
		return entity.PriceAlert{}, fmt.Errorf("repo.SetActive: %w", err)
	}

	alert.IsActive = active

	return alert, nil
}

func (s *Service) Delete(ctx context.Context, userID value.UserID, id value.AlertID) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo.Delete: %w", err)
	}

	return nil
}

// owned hides alerts of other users behind the same error as a missing one.
func (s *Service) owned(ctx context.Context, userID value.UserID, id value.AlertID) (entity.PriceAlert, error) {
	alert, err := s.repo.Get(ctx, id)
	if err != nil {
		return entity.PriceAlert{}, fmt.Errorf("repo.Get: %w", err)
	}

	if alert.UserID != userID {
		return entity.PriceAlert{}, failure.NewNotFoundError(
			fmt.Sprintf("alert %s belongs to another user", id),
			failure.WithCode(errcodes.AlertNotFound),
			failure.WithDescription("Alert not found"),
		)
	}

	return alert, nil
}

// Check evaluates every pending alert against current item values and
// returns how many were triggered by this call. A storage failure stops the
// pass; other per-alert failures are logged and skipped.
func (s *Service) Check(ctx context.Context) (int, error) {
	pending, err := s.repo.ListPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("repo.ListPending: %w", err)
	}

	triggered := 0

	for _, alert := range pending {
		ok, err := s.checkOne(ctx, alert)
		if domain.IsAppError(err) {
			return triggered, fmt.Errorf("alert %s: %w", alert.ID, err)
		}

		if err != nil {
			logger(ctx).Error("price alert check failed",
				slog.String(logx.FieldAlertID, alert.ID.String()),
				logx.Error(err),
			)

			continue
		}

		if ok {
			triggered++
		}
	}

	logger(ctx).Debug("price alerts checked",
		slog.Int("pending", len(pending)),
		slog.Int("triggered", triggered),
	)

	return triggered, nil
}

func (s *Service) checkOne(ctx context.Context, alert entity.PriceAlert) (bool, error) {
	item, err := s.items.GetItem(ctx, alert.GameID, alert.ItemID)
	if err != nil {
		if failure.IsNotFoundError(err) {
			return false, nil
		}

		return false, fmt.Errorf("items.GetItem: %w", err)
	}

	if !alert.Condition.Met(item.Value, alert.TargetValue) {
		return false, nil
	}

	key := "alert:" + alert.ID.String()

	claimed, err := s.deduper.Acquire(ctx, key, s.claimTTL)
	if err != nil {
		return false, fmt.Errorf("deduper.Acquire: %w", err)
	}

	if !claimed {
		return false, nil
	}

	if err = s.notifier.Notify(ctx, notification(alert, item)); err != nil {
		if releaseErr := s.deduper.Release(ctx, key); releaseErr != nil {
			logger(ctx).Warn("deduper.Release", logx.Error(releaseErr))
		}

		return false, fmt.Errorf("notifier.Notify: %w", err)
	}

	marked, err := s.repo.MarkTriggered(ctx, alert.ID, s.now().UTC())
	if err != nil {
		return false, fmt.Errorf("repo.MarkTriggered: %w", err)
	}

	if marked {
		s.metrics.AlertTriggered()
	}

	return marked, nil
}

func notification(alert entity.PriceAlert, item entity.Item) Notification {
	return Notification{
		UserID:  alert.UserID,
		AlertID: alert.ID,
		Title:   "Price Alert Triggered!",
		Text: fmt.Sprintf("%s is now %s %s (current: %s)",
			alert.ItemName,
			alert.Condition,
			value.FormatValue(alert.TargetValue),
			value.FormatValue(item.Value),
		),
	}
}
