package server

import (
	"context"
	"fmt"
	"net/http"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/voting"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/httpx/reply"
	"tradevalues/pkg/httpx/req"
	"tradevalues/pkg/lox"
	"tradevalues/pkg/rest"
)

type votingService interface {
	Submit(ctx context.Context, request voting.SubmitRequest) (entity.Trade, error)
	Get(ctx context.Context, id value.TradeID, viewer value.UserID) (entity.Trade, error)
	List(ctx context.Context, gameID value.GameID, limit, offset int) ([]entity.Trade, error)
	CastVote(ctx context.Context, tradeID value.TradeID, voterID value.UserID, vote value.Vote) (entity.Trade, error)
}

type TradeServer struct {
	votingService votingService
}

func NewTradeServer(votingService votingService) TradeServer {
	return TradeServer{
		votingService: votingService,
	}
}

func (s TradeServer) getV1Trades(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, offset, err := req.Paging(r)
	if err != nil {
		return fmt.Errorf("req.Paging: %w", err)
	}

	var gameID value.GameID

	if raw := r.URL.Query().Get("gameId"); raw != "" {
		if gameID, err = value.ParseGameID(raw); err != nil {
			return fmt.Errorf("value.ParseGameID: %w", err)
		}
	}

	trades, err := s.votingService.List(ctx, gameID, limit, offset)
	if err != nil {
		return fmt.Errorf("votingService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(trades, newRESTTrade))

	return nil
}

func (s TradeServer) postV1Trades(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SubmitTradeRequest

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

	trade, err := s.votingService.Submit(ctx, voting.SubmitRequest{
		GameID:   gameID,
		AuthorID: userID(r),
		Offer:    offer,
		Want:     want,
	})
	if err != nil {
		return fmt.Errorf("votingService.Submit: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTTrade(trade))

	return nil
}

// getV1Trade is public; the caller's own vote is included when the identity
// header is present.
func (s TradeServer) getV1Trade(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseTradeID(r.PathValue("tradeID"))
	if err != nil {
		return fmt.Errorf("value.ParseTradeID: %w", err)
	}

	trade, err := s.votingService.Get(ctx, id, userID(r))
	if err != nil {
		return fmt.Errorf("votingService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTrade(trade))

	return nil
}

func (s TradeServer) postV1TradeVotes(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseTradeID(r.PathValue("tradeID"))
	if err != nil {
		return fmt.Errorf("value.ParseTradeID: %w", err)
	}

	var request rest.VoteRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	vote, err := value.ParseVote(request.Vote)
	if err != nil {
		return fmt.Errorf("value.ParseVote: %w", err)
	}

	trade, err := s.votingService.CastVote(ctx, id, userID(r), vote)
	if err != nil {
		return fmt.Errorf("votingService.CastVote: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTrade(trade))

	return nil
}
