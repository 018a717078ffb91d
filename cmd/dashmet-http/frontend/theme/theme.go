// Package theme resolves the dashboard's colour scheme into CSS tokens once per
// render, so templates never branch on the theme themselves.
package theme

import "html/template"

// Theme is a colour scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is the theme of a new visitor.
const Default = Dark

// Parse parses a theme name. ok is false if the name is not a theme.
func Parse(name string) (t Theme, ok bool) {
	switch Theme(name) {
	case Dark:
		return Dark, true
	case Light:
		return Light, true
	default:
		return Default, false
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Icon returns the icon of the toggle button that switches away from t.
func (t Theme) Icon() string {
	if t == Light {
		return "🌙"
	}
	return "☀️"
}

// Tokens holds all theme-dependent styling values.
type Tokens struct {
	// Base colors.
	Background    template.CSS
	BackgroundAlt template.CSS
	Surface       template.CSS
	SurfaceHover  template.CSS
	Border        template.CSS

	// Text colors.
	TextPrimary   template.CSS
	TextSecondary template.CSS
	TextMuted     template.CSS

	// Accent.
	Primary       template.CSS
	PrimarySubtle template.CSS

	// Chips and trends.
	Positive       template.CSS
	PositiveSubtle template.CSS
	Warning        template.CSS
	WarningSubtle  template.CSS
	Negative       template.CSS
	NegativeSubtle template.CSS

	// Chart.
	ChartGrid   template.CSS
	ChartLabel  template.CSS
	AreaOpacity template.CSS
	Shadow      template.CSS
}

// Vars returns the tokens as CSS custom property declarations.
func (t Tokens) Vars() []Var {
	return []Var{
		{"bg", t.Background},
		{"bg-alt", t.BackgroundAlt},
		{"surface", t.Surface},
		{"surface-hover", t.SurfaceHover},
		{"border", t.Border},
		{"text", t.TextPrimary},
		{"text-secondary", t.TextSecondary},
		{"text-muted", t.TextMuted},
		{"primary", t.Primary},
		{"primary-subtle", t.PrimarySubtle},
		{"positive", t.Positive},
		{"positive-subtle", t.PositiveSubtle},
		{"warning", t.Warning},
		{"warning-subtle", t.WarningSubtle},
		{"negative", t.Negative},
		{"negative-subtle", t.NegativeSubtle},
		{"chart-grid", t.ChartGrid},
		{"chart-label", t.ChartLabel},
		{"area-opacity", t.AreaOpacity},
		{"shadow", t.Shadow},
	}
}

// Var is a single CSS custom property.
type Var struct {
	Name  string
	Value template.CSS
}

// TokensOf returns the tokens of the given theme.
func TokensOf(t Theme) Tokens {
	if t == Light {
		return lightTokens
	}
	return darkTokens
}

var darkTokens = Tokens{
	Background:    "#020617", // slate-950.
	BackgroundAlt: "#0b1120",
	Surface:       "rgba(11, 17, 32, 0.8)",
	SurfaceHover:  "rgba(30, 41, 59, 0.8)", // slate-800.
	Border:        "rgba(30, 41, 59, 0.8)",

	TextPrimary:   "#f1f5f9", // slate-100.
	TextSecondary: "#cbd5e1", // slate-300.
	TextMuted:     "#94a3b8", // slate-400.

	Primary:       "#6366f1", // indigo-500.
	PrimarySubtle: "rgba(99, 102, 241, 0.1)",

	Positive:       "#6ee7b7", // emerald-300.
	PositiveSubtle: "rgba(16, 185, 129, 0.1)",
	Warning:        "#fcd34d", // amber-300.
	WarningSubtle:  "rgba(245, 158, 11, 0.1)",
	Negative:       "#f87171", // red-400.
	NegativeSubtle: "rgba(239, 68, 68, 0.1)",

	ChartGrid:   "rgba(148, 163, 184, 0.08)",
	ChartLabel:  "rgba(203, 213, 225, 0.6)",
	AreaOpacity: "0.4",
	Shadow:      "0 4px 12px rgba(0, 0, 0, 0.15)",
}

var lightTokens = Tokens{
	Background:    "#f9fafb", // gray-50.
	BackgroundAlt: "#ffffff",
	Surface:       "#ffffff",
	SurfaceHover:  "#f3f4f6", // gray-100.
	Border:        "#e5e7eb", // gray-200.

	TextPrimary:   "#111827", // gray-900.
	TextSecondary: "#374151", // gray-700.
	TextMuted:     "#6b7280", // gray-500.

	Primary:       "#6366f1",
	PrimarySubtle: "rgba(99, 102, 241, 0.1)",

	Positive:       "#047857", // emerald-700.
	PositiveSubtle: "#ecfdf5", // emerald-50.
	Warning:        "#b45309", // amber-700.
	WarningSubtle:  "#fffbeb", // amber-50.
	Negative:       "#dc2626", // red-600.
	NegativeSubtle: "#fef2f2", // red-50.

	ChartGrid:   "rgba(148, 163, 184, 0.15)",
	ChartLabel:  "rgba(107, 114, 128, 0.65)",
	AreaOpacity: "0.2",
	Shadow:      "0 4px 12px rgba(0, 0, 0, 0.04)",
}
