package server

import (
	"context"
	"fmt"
	"net/http"

	"tradevalues/internal/domain/service/inventory"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/httpx/reply"
	"tradevalues/pkg/httpx/req"
	"tradevalues/pkg/rest"
)

type inventoryService interface {
	Add(ctx context.Context, userID value.UserID, gameID value.GameID, itemID value.ItemID, quantity int64) error
	Remove(ctx context.Context, userID value.UserID, gameID value.GameID, itemID value.ItemID, quantity int64) error
	Clear(ctx context.Context, userID value.UserID) error
	Get(ctx context.Context, userID value.UserID) (inventory.Summary, error)
	Quantity(ctx context.Context, userID value.UserID, gameID value.GameID, itemID value.ItemID) (int64, error)
}

type InventoryServer struct {
	inventoryService inventoryService
}

func NewInventoryServer(inventoryService inventoryService) InventoryServer {
	return InventoryServer{
		inventoryService: inventoryService,
	}
}

func (s InventoryServer) getV1Inventory(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	summary, err := s.inventoryService.Get(ctx, userID(r))
	if err != nil {
		return fmt.Errorf("inventoryService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTInventory(summary))

	return nil
}

func (s InventoryServer) deleteV1Inventory(w http.ResponseWriter, r *http.Request) error {
	if err := s.inventoryService.Clear(r.Context(), userID(r)); err != nil {
		return fmt.Errorf("inventoryService.Clear: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s InventoryServer) getV1InventoryItem(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	gameID, itemID, err := parseItemPath(r)
	if err != nil {
		return err
	}

	quantity, err := s.inventoryService.Quantity(ctx, userID(r), gameID, itemID)
	if err != nil {
		return fmt.Errorf("inventoryService.Quantity: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.InventoryQuantity{
		GameID:   gameID.String(),
		ItemID:   itemID.String(),
		Quantity: quantity,
	})

	return nil
}

func (s InventoryServer) postV1InventoryItems(w http.ResponseWriter, r *http.Request) error {
	gameID, itemID, quantity, err := readInventoryItem(r)
	if err != nil {
		return err
	}

	if err = s.inventoryService.Add(r.Context(), userID(r), gameID, itemID, quantity); err != nil {
		return fmt.Errorf("inventoryService.Add: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s InventoryServer) deleteV1InventoryItems(w http.ResponseWriter, r *http.Request) error {
	gameID, itemID, quantity, err := readInventoryItem(r)
	if err != nil {
		return err
	}

	if err = s.inventoryService.Remove(r.Context(), userID(r), gameID, itemID, quantity); err != nil {
		return fmt.Errorf("inventoryService.Remove: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func readInventoryItem(r *http.Request) (value.GameID, value.ItemID, int64, error) {
	var request rest.InventoryItemRequest

	if err := req.Read(r, &request); err != nil {
		return "", "", 0, fmt.Errorf("req.Read: %w", err)
	}

	gameID, err := value.ParseGameID(request.GameID)
	if err != nil {
		return "", "", 0, fmt.Errorf("value.ParseGameID: %w", err)
	}

	itemID, err := value.ParseItemID(request.ItemID)
	if err != nil {
		return "", "", 0, fmt.Errorf("value.ParseItemID: %w", err)
	}

	return gameID, itemID, request.Quantity, nil
}
