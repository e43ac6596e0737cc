package valuation

import (
	"context"
	"fmt"
	"log/slog"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/logx"
)

type Catalog interface {
	// GetItems resolves ids in order, keeping duplicates.
	GetItems(ctx context.Context, gameID value.GameID, ids []value.ItemID) ([]entity.Item, error)
}

type Metrics interface {
	Evaluated(status value.Status)
}

// Calculation is an evaluation together with the resolved items.
type Calculation struct {
	Evaluation
	Offer []entity.Item
	Want  []entity.Item
}

// Service is the trade calculator.
type Service struct {
	catalog Catalog
	metrics Metrics
}

func NewService(catalog Catalog, metrics Metrics) *Service {
	return &Service{
		catalog: catalog,
		metrics: metrics,
	}
}

func (s *Service) Evaluate(
	ctx context.Context,
	gameID value.GameID,
	offerIDs, wantIDs []value.ItemID,
) (Calculation, error) {
	offer, err := s.catalog.GetItems(ctx, gameID, offerIDs)
	if err != nil {
		return Calculation{}, fmt.Errorf("catalog.GetItems(offer): %w", err)
	}

	want, err := s.catalog.GetItems(ctx, gameID, wantIDs)
	if err != nil {
		return Calculation{}, fmt.Errorf("catalog.GetItems(want): %w", err)
	}

	evaluation := Evaluate(entity.Proposal{Offer: offer, Want: want})
	s.metrics.Evaluated(evaluation.Status)

	logger(ctx).Debug("trade evaluated",
		slog.String(logx.FieldGameID, gameID.String()),
		slog.String("status", string(evaluation.Status)),
		slog.Int64("delta", evaluation.Delta),
	)

	return Calculation{
		Evaluation: evaluation,
		Offer:      offer,
		Want:       want,
	}, nil
}
