// Package chart turns a monthly series into SVG drawing instructions on a
// fixed 100x100 logical canvas. The canvas is scaled to the container by the
// browser, so all coordinates here are unitless.
package chart

import "git.unix.lgbt/diamondburned/dashmet"

// Canvas dimensions. The viewBox is always a square of this size.
const (
	Width  = 100.0
	Height = 100.0
)

// Padding is the space reserved around the plotting area in canvas units.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// PaddingFor returns the padding for the given breakpoint. Narrow viewports get
// more room at the bottom for their rotated labels.
func PaddingFor(bp Breakpoint) Padding {
	pad := Padding{Top: 10, Right: 5, Bottom: 14, Left: 5}
	if bp == Narrow {
		pad.Bottom = 16
	}
	return pad
}

// ChartWidth returns the width of the plotting area.
func (p Padding) ChartWidth() float64 { return Width - p.Left - p.Right }

// ChartHeight returns the height of the plotting area.
func (p Padding) ChartHeight() float64 { return Height - p.Top - p.Bottom }

// Baseline returns the y coordinate of the bottom edge of the plotting area.
func (p Padding) Baseline() float64 { return Height - p.Bottom }

// Point is a sample placed on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	dashmet.Sample
}

// Points is a list of plotted points in series order.
type Points []Point

// At returns the point at the given index. It is used to position the hover
// overlay.
func (pts Points) At(i int) (Point, bool) {
	if i < 0 || i >= len(pts) {
		return Point{}, false
	}
	return pts[i], true
}

// Scale places the samples onto the canvas. X is purely positional; Y is
// normalized by the series' own minimum and maximum, so the highest value gets
// the smallest Y.
//
// A flat series, where every value is equal, is drawn along the vertical
// center of the plotting area. A single sample is placed on the left edge.
func Scale(samples []dashmet.Sample, pad Padding) Points {
	if len(samples) == 0 {
		return Points{}
	}

	min, max := samples[0].Value, samples[0].Value
	for _, s := range samples[1:] {
		if s.Value < min {
			min = s.Value
		}
		if s.Value > max {
			max = s.Value
		}
	}

	w := pad.ChartWidth()
	h := pad.ChartHeight()
	span := max - min
	last := float64(len(samples) - 1)

	pts := make(Points, len(samples))
	for i, s := range samples {
		x := pad.Left
		if last > 0 {
			x += float64(i) / last * w
		}

		y := pad.Top + h/2
		if span != 0 {
			y = pad.Top + h - (s.Value-min)/span*h
		}

		pts[i] = Point{X: x, Y: y, Sample: s}
	}

	return pts
}
