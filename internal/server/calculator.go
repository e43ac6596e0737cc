package server

import (
	"context"
	"fmt"
	"net/http"

	"tradevalues/internal/domain/service/valuation"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/httpx/reply"
	"tradevalues/pkg/httpx/req"
	"tradevalues/pkg/rest"
)

type valuationService interface {
	Evaluate(ctx context.Context, gameID value.GameID, offerIDs, wantIDs []value.ItemID) (valuation.Calculation, error)
}

type CalculatorServer struct {
	valuationService valuationService
}

func NewCalculatorServer(valuationService valuationService) CalculatorServer {
	return CalculatorServer{
		valuationService: valuationService,
	}
}

// postV1Calculator evaluates a proposal without storing it. An empty side is
// a valid request and yields the incomplete status.
func (s CalculatorServer) postV1Calculator(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CalculateRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	gameID, err := value.ParseGameID(request.GameID)
	if err != nil {
		return fmt.Errorf("value.ParseGameID: %w", err)
	}

	offer, err := parseItemIDs(request.Offer)
	if err != nil {
		return err
	}

	want, err := parseItemIDs(request.Want)
	if err != nil {
		return err
	}

	calculation, err := s.valuationService.Evaluate(ctx, gameID, offer, want)
	if err != nil {
		return fmt.Errorf("valuationService.Evaluate: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCalculation(calculation))

	return nil
}
