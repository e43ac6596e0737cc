package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"git.appkode.ru/pub/go/failure"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
)

type AlertStore struct {
	mu     sync.Mutex
	alerts map[value.AlertID]entity.PriceAlert
}

func NewAlertStore() *AlertStore {
	return &AlertStore{alerts: make(map[value.AlertID]entity.PriceAlert)}
}

func (s *AlertStore) Create(_ context.Context, alert entity.PriceAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts[alert.ID] = alert

	return nil
}

func (s *AlertStore) Get(_ context.Context, id value.AlertID) (entity.PriceAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.alerts[id]
	if !ok {
		return entity.PriceAlert{}, alertNotFound()
	}

	return a, nil
}

func (s *AlertStore) ListByUser(_ context.Context, userID value.UserID) ([]entity.PriceAlert, error) {
	alerts := s.filter(func(a entity.PriceAlert) bool { return a.UserID == userID })

	slices.SortFunc(alerts, func(a, b entity.PriceAlert) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})

	return alerts, nil
}

func (s *AlertStore) ListPending(_ context.Context) ([]entity.PriceAlert, error) {
	alerts := s.filter(entity.PriceAlert.Pending)

	slices.SortFunc(alerts, func(a, b entity.PriceAlert) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})

	return alerts, nil
}

func (s *AlertStore) SetActive(_ context.Context, id value.AlertID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.alerts[id]
	if !ok {
		return alertNotFound()
	}

	a.IsActive = active
	s.alerts[id] = a

	return nil
}

func (s *AlertStore) Delete(_ context.Context, id value.AlertID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.alerts[id]; !ok {
		return alertNotFound()
	}

	delete(s.alerts, id)

	return nil
}

func (s *AlertStore) MarkTriggered(_ context.Context, id value.AlertID, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.alerts[id]
	if !ok || a.TriggeredAt != nil {
		return false, nil
	}

	a.TriggeredAt = &at
	s.alerts[id] = a

	return true, nil
}

func (s *AlertStore) filter(keep func(entity.PriceAlert) bool) []entity.PriceAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	var alerts []entity.PriceAlert

	for _, a := range s.alerts {
		if keep(a) {
			alerts = append(alerts, a)
		}
	}

	return alerts
}

func alertNotFound() error {
	return failure.NewNotFoundError(
		"alert not found",
		failure.WithCode(errcodes.AlertNotFound),
		failure.WithDescription("Alert not found"),
	)
}
