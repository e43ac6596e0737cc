package server

import (
	"context"
	"fmt"
	"net/http"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/alert"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/httpx/reply"
	"tradevalues/pkg/httpx/req"
	"tradevalues/pkg/lox"
	"tradevalues/pkg/rest"
)

type alertService interface {
	Create(ctx context.Context, userID value.UserID, request alert.CreateRequest) (entity.PriceAlert, error)
	List(ctx context.Context, userID value.UserID) ([]entity.PriceAlert, error)
	SetActive(ctx context.Context, userID value.UserID, id value.AlertID, active bool) (entity.PriceAlert, error)
	Delete(ctx context.Context, userID value.UserID, id value.AlertID) error
}

type AlertServer struct {
	alertService alertService
}

func NewAlertServer(alertService alertService) AlertServer {
	return AlertServer{
		alertService: alertService,
	}
}

func (s AlertServer) getV1Alerts(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	alerts, err := s.alertService.List(ctx, userID(r))
	if err != nil {
		return fmt.Errorf("alertService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(alerts, newRESTAlert))

	return nil
}

func (s AlertServer) postV1Alerts(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateAlertRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	gameID, err := value.ParseGameID(request.GameID)
	if err != nil {
		return fmt.Errorf("value.ParseGameID: %w", err)
	}

	itemID, err := value.ParseItemID(request.ItemID)
	if err != nil {
		return fmt.Errorf("value.ParseItemID: %w", err)
	}

	condition, err := value.ParseCondition(request.Condition)
	if err != nil {
		return fmt.Errorf("value.ParseCondition: %w", err)
	}

	created, err := s.alertService.Create(ctx, userID(r), alert.CreateRequest{
		GameID:      gameID,
		ItemID:      itemID,
		TargetValue: request.TargetValue,
		Condition:   condition,
	})
	if err != nil {
		return fmt.Errorf("alertService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTAlert(created))

	return nil
}

func (s AlertServer) patchV1Alert(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseAlertID(r.PathValue("alertID"))
	if err != nil {
		return fmt.Errorf("value.ParseAlertID: %w", err)
	}

	var request rest.UpdateAlertRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	updated, err := s.alertService.SetActive(ctx, userID(r), id, *request.IsActive)
	if err != nil {
		return fmt.Errorf("alertService.SetActive: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAlert(updated))

	return nil
}

func (s AlertServer) deleteV1Alert(w http.ResponseWriter, r *http.Request) error {
	id, err := value.ParseAlertID(r.PathValue("alertID"))
	if err != nil {
		return fmt.Errorf("value.ParseAlertID: %w", err)
	}

	if err = s.alertService.Delete(r.Context(), userID(r), id); err != nil {
		return fmt.Errorf("alertService.Delete: %w", err)
	}

	reply.NoContent(w)

	return nil
}
