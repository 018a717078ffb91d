package chart

import "git.unix.lgbt/diamondburned/dashmet"

// gridRatios are the fractions of the chart height at which grid lines are
// drawn.
var gridRatios = []float64{0.25, 0.5, 0.75}

// GridLine is a horizontal grid line.
type GridLine struct {
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
	Y  float64 `json:"y"`
}

// AxisLabel is a month label with its resolved style.
type AxisLabel struct {
	X    float64 `json:"x"`
	Text string  `json:"text"`
	LabelStyle
}

// View is everything needed to draw one chart. It is computed from scratch on
// every render.
type View struct {
	Breakpoint Breakpoint  `json:"-"`
	Padding    Padding     `json:"padding"`
	Points     Points      `json:"points"`
	Curve      string      `json:"curve"`
	Area       string      `json:"area"`
	Grid       []GridLine  `json:"grid"`
	Labels     []AxisLabel `json:"labels"`
	Summary    Summary     `json:"summary"`
}

// Render runs the samples through the scaler, path builder, label selector and
// summary for a viewport of the given width.
func Render(samples []dashmet.Sample, width int) View {
	bp := BreakpointOf(width)
	pad := PaddingFor(bp)
	pts := Scale(samples, pad)

	view := View{
		Breakpoint: bp,
		Padding:    pad,
		Points:     pts,
		Curve:      SmoothPath(pts),
		Area:       AreaPath(pts, pad.Baseline()),
		Grid:       make([]GridLine, len(gridRatios)),
		Labels:     make([]AxisLabel, 0, len(pts)),
		Summary:    Summarize(samples),
	}

	for i, ratio := range gridRatios {
		view.Grid[i] = GridLine{
			X1: pad.Left,
			X2: Width - pad.Right,
			Y:  pad.Top + ratio*pad.ChartHeight(),
		}
	}

	for i, pt := range pts {
		style := Label(i, bp, pad)
		if !style.Show {
			continue
		}

		view.Labels = append(view.Labels, AxisLabel{
			X:          pt.X,
			Text:       pt.Label,
			LabelStyle: style,
		})
	}

	return view
}

// ViewBox returns the SVG viewBox attribute value.
func (v View) ViewBox() string {
	return "0 0 " + formatCoord(Width) + " " + formatCoord(Height)
}

// IsLaterHalf returns true if the point at i lies in the right half of the
// canvas. The hover overlay flips sides for these points.
func (v View) IsLaterHalf(i int) bool {
	pt, ok := v.Points.At(i)
	return ok && pt.X > Width/2
}
