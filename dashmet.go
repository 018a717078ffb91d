package dashmet

import (
	"math"
	"time"
)

// Metric is the kind of quantity charted on the dashboard. All metrics share
// the same monthly shape; only their base magnitude differs.
type Metric uint8

const (
	Revenue Metric = iota
	ActiveUsers
	Orders
)

// Metrics lists all known metrics in display order.
var Metrics = []Metric{Revenue, ActiveUsers, Orders}

var metricNames = [...]string{
	Revenue:     "revenue",
	ActiveUsers: "activeUsers",
	Orders:      "orders",
}

var metricTitles = [...]string{
	Revenue:     "Revenue",
	ActiveUsers: "Active users",
	Orders:      "Orders",
}

var metricBases = [...]float64{
	Revenue:     120000,
	ActiveUsers: 8500,
	Orders:      3200,
}

// ParseMetric parses the metric from its wire name. Unknown names fall back to
// Revenue.
func ParseMetric(name string) Metric {
	for m, n := range metricNames {
		if n == name {
			return Metric(m)
		}
	}
	return Revenue
}

// String returns the wire name of the metric.
func (m Metric) String() string {
	if int(m) < len(metricNames) {
		return metricNames[m]
	}
	return metricNames[Revenue]
}

// Title returns the human-readable name of the metric.
func (m Metric) Title() string {
	if int(m) < len(metricTitles) {
		return metricTitles[m]
	}
	return metricTitles[Revenue]
}

// Base returns the base magnitude that the seasonal curve is applied to.
func (m Metric) Base() float64 {
	if int(m) < len(metricBases) {
		return metricBases[m]
	}
	return metricBases[Revenue]
}

// IsCurrency returns true if the metric's values are money.
func (m Metric) IsCurrency() bool { return m == Revenue }

// MonthsPerYear is the fixed number of samples in a series.
const MonthsPerYear = 12

// MonthLabels contains the month abbreviations in calendar order.
var MonthLabels = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// seasonal is the multiplier curve applied to every metric's base. It rises
// toward the end of the year.
var seasonal = [MonthsPerYear]float64{
	0.85, 0.92, 0.88, 0.95, 1.05, 1.12, 1.08, 1.15, 1.22, 1.18, 1.25, 1.28,
}

// Sample is a single labeled monthly value.
type Sample struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Index int     `json:"index"`
}

// Round rounds half up, so 10.5 becomes 11.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Generate generates the mock series of the given metric. It always returns
// exactly MonthsPerYear samples from January to December.
func Generate(m Metric) []Sample {
	base := m.Base()

	samples := make([]Sample, MonthsPerYear)
	for i := range samples {
		samples[i] = Sample{
			Label: MonthLabels[i],
			Value: Round(base * seasonal[i]),
			Index: i,
		}
	}

	return samples
}

// Source is a source of monthly samples.
type Source interface {
	Samples(m Metric) ([]Sample, error)
}

// MockSource is a Source that generates the mock series.
type MockSource struct{}

var _ Source = MockSource{}

// Samples implements Source.
func (MockSource) Samples(m Metric) ([]Sample, error) {
	return Generate(m), nil
}

// monthSamples converts 12 monthly sums into samples.
func monthSamples(sums [MonthsPerYear]float64) []Sample {
	samples := make([]Sample, MonthsPerYear)
	for i, sum := range sums {
		samples[i] = Sample{
			Label: MonthLabels[i],
			Value: sum,
			Index: i,
		}
	}
	return samples
}

// yearBounds returns the first instant of the given year and of the next one.
func yearBounds(year int, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(1, 0, 0)
	return
}
