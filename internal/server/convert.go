package server

import (
	"fmt"

	"github.com/samber/lo"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/inventory"
	"tradevalues/internal/domain/service/valuation"
	"tradevalues/internal/domain/service/voting"
	"tradevalues/internal/domain/value"
	"tradevalues/pkg/lox"
	"tradevalues/pkg/rest"
)

func newRESTGame(game entity.Game) rest.Game {
	return rest.Game{
		ID:          game.ID.String(),
		Name:        game.Name,
		Slug:        game.Slug,
		Description: game.Description,
		ImageURL:    game.ImageURL,
		Color:       game.Color,
		Categories:  lo.Ternary(game.Categories == nil, []string{}, game.Categories),
	}
}

func newRESTItem(item entity.Item) rest.Item {
	return rest.Item{
		ID:         item.ID.String(),
		GameID:     item.GameID.String(),
		Name:       item.Name,
		Value:      item.Value,
		Formatted:  value.FormatValue(item.Value),
		Demand:     item.Demand,
		Trend:      string(item.Trend),
		Rarity:     item.Rarity,
		Category:   item.Category,
		ImageURL:   item.ImageURL,
		LastChange: item.LastChange,
		UpdatedAt:  item.UpdatedAt,
	}
}

func newRESTItems(items []entity.Item) []rest.Item {
	return lox.Map(items, newRESTItem)
}

func newRESTValuePoint(p entity.ValuePoint) rest.ValuePoint {
	return rest.ValuePoint{Value: p.Value, RecordedAt: p.RecordedAt}
}

func newRESTCalculation(c valuation.Calculation) rest.Calculation {
	return rest.Calculation{
		Offer:       newRESTItems(c.Offer),
		Want:        newRESTItems(c.Want),
		OfferTotal:  c.Evaluation.Offer.Total,
		WantTotal:   c.Evaluation.Want.Total,
		Delta:       c.Delta,
		Status:      string(c.Status),
		StatusLabel: c.Status.Label(),
	}
}

func newRESTTrade(trade entity.Trade) rest.Trade {
	summary := voting.Summarize(trade.Tally)

	var userVote *string
	if trade.VoterChoice != nil {
		userVote = lo.ToPtr(trade.VoterChoice.String())
	}

	return rest.Trade{
		ID:       trade.ID.String(),
		GameID:   trade.GameID.String(),
		AuthorID: trade.AuthorID.String(),
		Offer:    newRESTItems(trade.Offer),
		Want:     newRESTItems(trade.Want),
		Tally: rest.Tally{
			Win:  trade.Tally.Win,
			Fair: trade.Tally.Fair,
			Loss: trade.Tally.Loss,
		},
		Summary: rest.VoteSummary{
			Total:       summary.Total,
			WinPercent:  summary.Win,
			FairPercent: summary.Fair,
			LossPercent: summary.Loss,
			Majority:    summary.Majority.String(),
		},
		UserVote:  userVote,
		CreatedAt: trade.CreatedAt,
	}
}

func newRESTInventory(s inventory.Summary) rest.Inventory {
	return rest.Inventory{
		Entries: lox.Map(s.Entries, func(e entity.InventoryEntry) rest.InventoryEntry {
			entry := rest.InventoryEntry{
				GameID:   e.GameID.String(),
				ItemID:   e.ItemID.String(),
				Quantity: e.Quantity,
				AddedAt:  e.AddedAt,
			}

			if e.Item != nil {
				entry.Item = lo.ToPtr(newRESTItem(*e.Item))
			}

			return entry
		}),
		TotalValue: s.TotalValue,
		ItemCount:  s.ItemCount,
	}
}

func newRESTAlert(a entity.PriceAlert) rest.PriceAlert {
	return rest.PriceAlert{
		ID:          a.ID.String(),
		GameID:      a.GameID.String(),
		ItemID:      a.ItemID.String(),
		ItemName:    a.ItemName,
		TargetValue: a.TargetValue,
		Condition:   a.Condition.String(),
		IsActive:    a.IsActive,
		TriggeredAt: a.TriggeredAt,
		CreatedAt:   a.CreatedAt,
	}
}

func parseItemIDs(raw []string) ([]value.ItemID, error) {
	ids, err := lox.MapErr(raw, value.ParseItemID)
	if err != nil {
		return nil, fmt.Errorf("value.ParseItemID: %w", err)
	}

	return ids, nil
}
