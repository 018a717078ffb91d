package chart

import (
	"strconv"
	"strings"
)

// SmoothPath draws a curve through all points using quadratic Bézier segments.
// Midpoints between neighbours act as the on-curve anchors, and the T command
// reflects the previous control point so that the curve stays smooth. The last
// segment ends exactly on the last point.
func SmoothPath(pts []Point) string {
	var path strings.Builder
	path.Grow(len(pts) * 24)
	writeSmoothPath(&path, pts)
	return path.String()
}

// AreaPath closes the smooth curve down to the baseline so that it can be
// filled. An empty string is returned if there are no points.
func AreaPath(pts []Point, baseline float64) string {
	if len(pts) == 0 {
		return ""
	}

	var path strings.Builder
	path.Grow(len(pts)*24 + 48)
	writeSmoothPath(&path, pts)

	first := pts[0]
	last := pts[len(pts)-1]

	path.WriteString(" L ")
	writePair(&path, last.X, baseline)
	path.WriteString(" L ")
	writePair(&path, first.X, baseline)
	path.WriteString(" Z")

	return path.String()
}

func writeSmoothPath(path *strings.Builder, pts []Point) {
	if len(pts) == 0 {
		return
	}

	path.WriteString("M ")
	writePair(path, pts[0].X, pts[0].Y)

	if len(pts) == 1 {
		return
	}

	// Q x0 y0, mid(0, 1)
	path.WriteString(" Q ")
	writePair(path, pts[0].X, pts[0].Y)
	path.WriteString(", ")
	writeMid(path, pts[0], pts[1])

	for i := 0; i < len(pts)-1; i++ {
		path.WriteString(" T ")

		if i < len(pts)-2 {
			writeMid(path, pts[i+1], pts[i+2])
		} else {
			writePair(path, pts[i+1].X, pts[i+1].Y)
		}
	}
}

func writeMid(path *strings.Builder, a, b Point) {
	writePair(path, (a.X+b.X)/2, (a.Y+b.Y)/2)
}

func writePair(path *strings.Builder, x, y float64) {
	path.WriteString(formatCoord(x))
	path.WriteByte(' ')
	path.WriteString(formatCoord(y))
}

// formatCoord formats a coordinate in the shortest form that round-trips.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
