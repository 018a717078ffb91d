package chart

// DonutCircumference is the circumference of the donut ring. The radius is
// chosen so that stroke dash lengths read directly as percentages.
const DonutCircumference = 100.0

// DonutRadius is the radius giving a circumference of DonutCircumference.
const DonutRadius = 15.91549430918954 // 100 / 2π

// Share is a named part of a whole.
type Share struct {
	Name  string
	Value float64
	Color string
}

// Arc is a single donut segment drawn with stroke-dasharray.
type Arc struct {
	Share
	Percent float64
	Dash    float64
	Gap     float64
	// Offset is the stroke-dashoffset. Segments start at 12 o'clock and run
	// clockwise.
	Offset float64
}

// Donut lays the shares out around the ring in order. Shares are normalized to
// their sum; if the sum is not positive, no arcs are returned.
func Donut(shares []Share) []Arc {
	var total float64
	for _, s := range shares {
		if s.Value > 0 {
			total += s.Value
		}
	}

	if total <= 0 {
		return nil
	}

	arcs := make([]Arc, 0, len(shares))
	var start float64

	for _, s := range shares {
		if s.Value <= 0 {
			continue
		}

		dash := s.Value / total * DonutCircumference
		arcs = append(arcs, Arc{
			Share:   s,
			Percent: dash,
			Dash:    dash,
			Gap:     DonutCircumference - dash,
			// Strokes start at 3 o'clock; a quarter turn back is 12 o'clock.
			Offset: DonutCircumference/4 - start,
		})

		start += dash
	}

	return arcs
}
