// Package revenue draws the monthly trend chart as an SVG with CSS-only hover
// overlays.
package revenue

import (
	"math"

	"git.unix.lgbt/diamondburned/dashmet"
	"git.unix.lgbt/diamondburned/dashmet/chart"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend"
)

func init() {
	frontend.Templater.Func("revenueHovers", Hovers)
}

// Data contains everything the revenue template needs.
type Data struct {
	Metric dashmet.Metric
	View   chart.View
	Year   int
	// Format formats a sample value for display.
	Format func(float64) string
	// Error is the error from reading the samples, if any. The view is still
	// drawn from fallback data.
	Error error
}

// Prepare reads the metric from src and lays it out for the given viewport
// width.
func Prepare(src dashmet.Source, m dashmet.Metric, width, year int) Data {
	samples, err := frontend.ReadSamples(src, m)

	return Data{
		Metric: m,
		View:   chart.Render(samples, width),
		Year:   year,
		Format: frontend.FormatterFor(m),
		Error:  err,
	}
}

// Best formats the best sample.
func (d Data) Best() string { return d.Format(d.View.Summary.Best.Value) }

// Lowest formats the lowest sample.
func (d Data) Lowest() string { return d.Format(d.View.Summary.Lowest.Value) }

// Average formats the rounded average.
func (d Data) Average() string { return d.Format(d.View.Summary.Average) }

// Empty returns true if there is nothing to plot.
func (d Data) Empty() bool { return len(d.View.Points) == 0 }

// Hover is the overlay of a single point. All positions are percentages of the
// chart box, which maps 1:1 onto the canvas since it is 100 units wide and
// tall.
type Hover struct {
	chart.Point
	Value string
	// ZoneLeft and ZoneWidth describe the vertical strip that reveals the
	// tooltip when hovered.
	ZoneLeft  float64
	ZoneWidth float64
	// Flip anchors the tooltip to its right edge so that it stays inside the
	// chart near the right border.
	Flip bool
}

// Hovers computes the hover overlays of every plotted point.
func Hovers(d Data) []Hover {
	pts := d.View.Points
	if len(pts) == 0 {
		return nil
	}

	zone := d.View.Padding.ChartWidth()
	if len(pts) > 1 {
		zone /= float64(len(pts) - 1)
	}

	hovers := make([]Hover, len(pts))

	for i := range hovers {
		pt, _ := pts.At(i)

		left := math.Max(pt.X-zone/2, 0)
		right := math.Min(pt.X+zone/2, chart.Width)

		hovers[i] = Hover{
			Point:     pt,
			Value:     d.Format(pt.Value),
			ZoneLeft:  left,
			ZoneWidth: right - left,
			Flip:      d.View.IsLaterHalf(i),
		}
	}

	return hovers
}
