package dashmet

import "sort"

// DateFilter is the time window selected on the dashboard.
type DateFilter string

const (
	FilterToday  DateFilter = "today"
	Filter7Days  DateFilter = "7d"
	Filter30Days DateFilter = "30d"
	Filter12Mons DateFilter = "12m"
)

// DefaultFilter is the filter selected when none is given.
const DefaultFilter = Filter12Mons

// DateFilters lists all filters in display order.
var DateFilters = []DateFilter{FilterToday, Filter7Days, Filter30Days, Filter12Mons}

type filterInfo struct {
	label      string
	valueScale float64
	changeMult float64
}

var filterInfos = map[DateFilter]filterInfo{
	FilterToday:  {"Today", 0.03, 0.5},
	Filter7Days:  {"Last 7 days", 0.2, 0.7},
	Filter30Days: {"Last 30 days", 0.6, 0.9},
	Filter12Mons: {"Last 12 months", 1, 1},
}

// ParseDateFilter parses the filter. Unknown values fall back to
// DefaultFilter.
func ParseDateFilter(s string) DateFilter {
	f := DateFilter(s)
	if _, ok := filterInfos[f]; ok {
		return f
	}
	return DefaultFilter
}

// Label returns the human-readable label of the filter.
func (f DateFilter) Label() string {
	return filterInfos[ParseDateFilter(string(f))].label
}

// CardFormat describes how a stat card's value is formatted.
type CardFormat uint8

const (
	FormatNumber CardFormat = iota
	FormatCurrency
	FormatPercentage
)

// StatCard is a single KPI card.
type StatCard struct {
	Title   string     `json:"title"`
	Value   float64    `json:"value"`
	Change  *float64   `json:"change,omitempty"`
	Icon    string     `json:"icon"`
	Format  CardFormat `json:"format"`
	Tooltip string     `json:"tooltip"`
}

func change(v float64) *float64 { return &v }

func baseStatCards() []StatCard {
	return []StatCard{
		{
			Title:   "Total Revenue",
			Value:   1240000,
			Change:  change(18.3),
			Icon:    "₹",
			Format:  FormatCurrency,
			Tooltip: "Total revenue represents all income generated from sales and services",
		},
		{
			Title:   "Active Users",
			Value:   8291,
			Change:  change(7.8),
			Icon:    "👥",
			Format:  FormatNumber,
			Tooltip: "Number of users who have been active in the selected time period",
		},
		{
			Title:   "Conversion",
			Value:   4.32,
			Change:  change(0.7),
			Icon:    "✨",
			Format:  FormatPercentage,
			Tooltip: "Percentage of visitors who complete a desired action (purchase, signup, etc.)",
		},
		{
			Title:   "Health Score",
			Value:   92,
			Icon:    "✅",
			Format:  FormatNumber,
			Tooltip: "Overall health score based on product performance, reliability, and user engagement",
		},
	}
}

// StatCards returns the KPI cards scaled to the given filter. Cards without a
// change figure get a zero change once scaled down.
func StatCards(f DateFilter) []StatCard {
	info := filterInfos[ParseDateFilter(string(f))]
	cards := baseStatCards()

	if info.valueScale == 1 && info.changeMult == 1 {
		return cards
	}

	for i, card := range cards {
		var c float64
		if card.Change != nil {
			c = *card.Change
		}

		cards[i].Value = card.Value * info.valueScale
		cards[i].Change = change(c * info.changeMult)
	}

	return cards
}

// KPICards returns the scaled cards shown in the KPI row. The health card is
// left out since it is drawn on its own by CurrentHealth.
func KPICards(f DateFilter) []StatCard {
	return StatCards(f)[:3]
}

// HealthScore is the score shown on the highlighted health card, out of 100.
const HealthScore = 92

// HealthGrade grades a health score.
func HealthGrade(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 50:
		return "Fair"
	default:
		return "Poor"
	}
}

// HealthMax is the best possible health score.
const HealthMax = 100

// Health is the highlighted health card. It does not change with the date
// filter.
type Health struct {
	Score   float64 `json:"score"`
	Max     float64 `json:"max"`
	Grade   string  `json:"grade"`
	Tooltip string  `json:"tooltip"`
}

// CurrentHealth returns the health card.
func CurrentHealth() Health {
	return Health{
		Score:   HealthScore,
		Max:     HealthMax,
		Grade:   HealthGrade(HealthScore),
		Tooltip: baseStatCards()[3].Tooltip,
	}
}

// PageRow is a row in the top pages table.
type PageRow struct {
	Page        string  `json:"page"`
	Description string  `json:"description"`
	Views       float64 `json:"views"`
	Unique      float64 `json:"unique"`
	AvgTime     string  `json:"avgTime"`
	Bounce      float64 `json:"bounce"`
	Trend       float64 `json:"trend"`
	// Warn marks a trend that is positive but needs attention.
	Warn bool `json:"warn"`
}

var topPages = []PageRow{
	{"/pricing", "Pricing and plans", 12482, 10221, "3m 12s", 18.4, 12.3, false},
	{"/dashboard", "Main product overview", 9378, 7941, "4m 01s", 12.6, 8.9, false},
	{"/onboarding", "New user journey", 6144, 5091, "5m 18s", 25.1, 4.1, true},
	{"/blog/how-to-scale", "How to scale fast", 4801, 3992, "7m 02s", 14.2, 6.7, false},
}

// TopPages returns the pages table ranked by views, highest first.
func TopPages() []PageRow {
	rows := append([]PageRow(nil), topPages...)
	RankPages(rows)
	return rows
}

// RankPages sorts rows by views in descending order. Rows with equal views
// keep their order.
func RankPages(rows []PageRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Views > rows[j].Views
	})
}

// Device is a device class in the sessions split.
type Device struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// DeviceSplit returns the share of sessions per device for the current week.
func DeviceSplit() []Device {
	return []Device{
		{"Desktop", 54},
		{"Mobile", 31},
		{"Tablet", 15},
	}
}
