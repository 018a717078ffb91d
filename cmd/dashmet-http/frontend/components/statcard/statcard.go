package statcard

import (
	"git.unix.lgbt/diamondburned/dashmet"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend"
	"git.unix.lgbt/diamondburned/dashmet/internal/numfmt"
)

func init() {
	frontend.Templater.Func("cardValue", Value)
	frontend.Templater.Func("cardChange", Change)
	frontend.Templater.Func("cardTrend", Trend)
}

// Value formats the card's value according to its format.
func Value(c dashmet.StatCard) string {
	switch c.Format {
	case dashmet.FormatCurrency:
		return numfmt.Currency(c.Value)
	case dashmet.FormatPercentage:
		return numfmt.Decimal(c.Value, 2) + "%"
	default:
		return numfmt.Number(c.Value)
	}
}

// Change formats the card's change relative to the previous period. An empty
// string is returned if the card has none.
func Change(c dashmet.StatCard) string {
	if c.Change == nil {
		return ""
	}
	return numfmt.Percent(*c.Change, 1)
}

// Trend returns the CSS class of the card's change.
func Trend(c dashmet.StatCard) string {
	switch {
	case c.Change == nil:
		return ""
	case *c.Change > 0:
		return "positive"
	case *c.Change < 0:
		return "negative"
	default:
		return "neutral"
	}
}
