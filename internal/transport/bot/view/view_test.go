package view_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/valuation"
	"tradevalues/internal/domain/value"
	"tradevalues/internal/transport/bot/view"
)

func items(n int) []entity.Item {
	out := make([]entity.Item, 0, n)
	for i := range n {
		out = append(out, entity.Item{
			ID:    value.ItemID(fmt.Sprintf("item-%02d", i)),
			Name:  fmt.Sprintf("Item %02d", i),
			Value: int64(1000 - i),
		})
	}

	return out
}

func TestPage(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		page      int
		wantPage  int
		wantPages int
		contains  string
		excludes  string
	}{
		{name: "first page", count: 25, page: 1, wantPage: 1, wantPages: 3, contains: "item-09", excludes: "item-10"},
		{name: "last page", count: 25, page: 3, wantPage: 3, wantPages: 3, contains: "item-24", excludes: "item-19"},
		{name: "clamped high", count: 25, page: 9, wantPage: 3, wantPages: 3, contains: "item-20"},
		{name: "clamped low", count: 5, page: 0, wantPage: 1, wantPages: 1, contains: "item-04"},
		{name: "empty", count: 0, page: 1, wantPage: 1, wantPages: 1, contains: view.NothingFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			text, page, pages := view.Page("MM2", items(tt.count), tt.page)
			rq.Equal(tt.wantPage, page)
			rq.Equal(tt.wantPages, pages)
			rq.Contains(text, tt.contains)

			if tt.excludes != "" {
				rq.NotContains(text, tt.excludes)
			}
		})
	}
}

func TestCalculation(t *testing.T) {
	rq := require.New(t)

	c := valuation.Calculation{
		Evaluation: valuation.Evaluation{
			Offer:  valuation.Side{Total: 900, Count: 1},
			Want:   valuation.Side{Total: 1000, Count: 1},
			Delta:  -100,
			Status: value.StatusWin,
		},
		Offer: []entity.Item{{Name: "Chroma <Seer>", Value: 900}},
		Want:  []entity.Item{{Name: "Icebreaker", Value: 1000}},
	}

	text := view.Calculation(c)
	rq.True(strings.HasPrefix(text, "<b>WIN</b>"))
	rq.Contains(text, "You give (900)")
	rq.Contains(text, "Chroma &lt;Seer&gt;")
	rq.Contains(text, "Difference: -100")

	rq.Equal("Add items to both sides.", view.Calculation(valuation.Calculation{
		Evaluation: valuation.Evaluation{Status: value.StatusIncomplete},
	}))
}
