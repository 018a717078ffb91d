package chart

// Breakpoint is a coarse classification of the viewport width.
type Breakpoint uint8

const (
	Narrow Breakpoint = iota
	Medium
	Wide
)

// Viewport widths in logical pixels at which the breakpoint changes.
const (
	MediumWidth = 640
	WideWidth   = 1024
)

// DefaultWidth is the viewport width assumed when the client doesn't tell.
const DefaultWidth = WideWidth

// BreakpointOf classifies the given viewport width.
func BreakpointOf(width int) Breakpoint {
	switch {
	case width < MediumWidth:
		return Narrow
	case width < WideWidth:
		return Medium
	default:
		return Wide
	}
}

func (bp Breakpoint) String() string {
	switch bp {
	case Narrow:
		return "narrow"
	case Medium:
		return "medium"
	default:
		return "wide"
	}
}

// labelEvery is the stride of shown labels per breakpoint.
var labelEvery = [...]int{Narrow: 3, Medium: 2, Wide: 1}

var labelRotations = [...]float64{Narrow: -35, Medium: -30, Wide: 0}

var labelFontSizes = [...]float64{Narrow: 3.5, Medium: 3.8, Wide: 4}

// LabelStyle describes how a single x-axis label is drawn.
type LabelStyle struct {
	Show     bool    `json:"show"`
	Rotation float64 `json:"rotation"`
	FontSize float64 `json:"fontSize"`
	// Y is the vertical anchor of the label. Rotated labels sit slightly lower.
	Y float64 `json:"y"`
}

// Label decides whether the label at index i is drawn and how. Narrower
// viewports thin the labels out and rotate them to avoid overlapping text.
func Label(i int, bp Breakpoint, pad Padding) LabelStyle {
	if bp > Wide {
		bp = Wide
	}

	style := LabelStyle{
		Show:     i%labelEvery[bp] == 0,
		Rotation: labelRotations[bp],
		FontSize: labelFontSizes[bp],
	}

	style.Y = pad.Baseline() - 2
	if style.Rotation != 0 {
		style.Y += 4
	} else {
		style.Y += 2
	}

	return style
}
