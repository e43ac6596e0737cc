// Package view renders bot replies as Telegram HTML.
package view

import (
	"fmt"
	"html"
	"strings"

	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/service/valuation"
	"tradevalues/internal/domain/value"
)

const (
	StartMessage = `<b>Trade values</b>

/games - supported games
/items <code>game</code> - value list, most valuable first
/value <code>game</code> <code>name</code> - look up an item
/calc <code>game</code> <code>a,b</code> vs <code>c</code> - rate a trade by item ids`

	CalcUsage    = "Usage: /calc <code>game</code> <code>offer-id,offer-id</code> vs <code>want-id</code>"
	ItemsUsage   = "Usage: /items <code>game</code>"
	ValueUsage   = "Usage: /value <code>game</code> <code>name</code>"
	NothingFound = "Nothing found."
	Failed       = "Something went wrong, try again later."
)

// PageSize is the number of items per value list page.
const PageSize = 10

func Games(games []entity.Game) string {
	if len(games) == 0 {
		return NothingFound
	}

	var sb strings.Builder

	sb.WriteString("<b>Games</b>\n\n")

	for _, g := range games {
		fmt.Fprintf(&sb, "%s <b>%s</b> <code>%s</code>\n", g.ImageURL, html.EscapeString(g.Name), g.Slug)
	}

	return sb.String()
}

func item(sb *strings.Builder, it entity.Item) {
	fmt.Fprintf(sb, "%s <b>%s</b> %s %s\n",
		it.ImageURL, html.EscapeString(it.Name), value.FormatValue(it.Value), trendMark(it.Trend))
	fmt.Fprintf(sb, "    <code>%s</code> demand %d/10, %s\n", it.ID, it.Demand, html.EscapeString(it.Rarity))
}

func trendMark(t value.Trend) string {
	switch t {
	case value.TrendRising:
		return "▲"
	case value.TrendFalling:
		return "▼"
	default:
		return "•"
	}
}

func Items(items []entity.Item) string {
	if len(items) == 0 {
		return NothingFound
	}

	var sb strings.Builder

	for _, it := range items {
		item(&sb, it)
	}

	return sb.String()
}

// Page renders one page of a value list. page is 1-based and clamped to the
// available range; the clamped page and the page count are returned.
func Page(game string, items []entity.Item, page int) (string, int, int) {
	pages := max((len(items)+PageSize-1)/PageSize, 1)
	page = min(max(page, 1), pages)

	start := (page - 1) * PageSize
	end := min(start+PageSize, len(items))

	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s values</b> (page %d/%d)\n\n", html.EscapeString(game), page, pages)

	if start >= end {
		sb.WriteString(NothingFound)
	}

	for _, it := range items[start:end] {
		item(&sb, it)
	}

	return sb.String(), page, pages
}

func Calculation(c valuation.Calculation) string {
	if c.Status == value.StatusIncomplete {
		return "Add items to both sides."
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s</b>\n\n", c.Status.Label())
	side(&sb, "You give", c.Offer, c.Evaluation.Offer.Total)
	side(&sb, "You get", c.Want, c.Evaluation.Want.Total)

	sign := ""
	if c.Delta > 0 {
		sign = "+"
	}

	fmt.Fprintf(&sb, "\nDifference: %s%d", sign, c.Delta)

	return sb.String()
}

func side(sb *strings.Builder, title string, items []entity.Item, total int64) {
	fmt.Fprintf(sb, "%s (%s):\n", title, value.FormatValue(total))

	for _, it := range items {
		fmt.Fprintf(sb, "  %s %s\n", it.ImageURL, html.EscapeString(it.Name))
	}
}
