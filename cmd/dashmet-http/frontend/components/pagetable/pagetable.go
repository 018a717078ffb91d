package pagetable

import (
	"git.unix.lgbt/diamondburned/dashmet"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend"
	"git.unix.lgbt/diamondburned/dashmet/internal/numfmt"
)

func init() {
	frontend.Templater.Func("pageTrend", TrendClass)
	frontend.Templater.Func("percent", func(v float64) string { return numfmt.Decimal(v, 1) + "%" })
	frontend.Templater.Func("signed", func(v float64) string { return numfmt.Percent(v, 1) })
}

// TrendClass returns the chip class of the row's trend.
func TrendClass(row dashmet.PageRow) string {
	switch {
	case row.Trend < 0:
		return "negative"
	case row.Warn:
		return "warning"
	default:
		return "positive"
	}
}
