package frontend

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"io/fs"
	"log"
	"net/http"

	"git.unix.lgbt/diamondburned/dashmet"
	"git.unix.lgbt/diamondburned/dashmet/chart"
	"git.unix.lgbt/diamondburned/dashmet/internal/numfmt"
	"github.com/diamondburned/tmplutil"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

//go:embed *
var webFS embed.FS

var Templater = tmplutil.Templater{
	FileSystem: webFS,
	Includes: map[string]string{
		"revenue":   "components/revenue/revenue.html",
		"donut":     "components/donut/donut.html",
		"statcard":  "components/statcard/statcard.html",
		"pagetable": "components/pagetable/pagetable.html",
		"errbox":    "components/errbox/errbox.html",
		"rawcss":    "static/style.css",
	},
	Functions: template.FuncMap{
		"currency": numfmt.Currency,
		"number":   numfmt.Number,
		"bytes":    humanize.Bytes,
	},
}

func init() {
	// tmplutil.Log = true
	tmplutil.Preregister(&Templater)
}

// MountStatic mounts a static HTTP handler.
func MountStatic() http.Handler {
	sub, err := fs.Sub(webFS, "static")
	if err != nil {
		log.Panicln("failed to get static:", err)
	}

	return http.FileServer(http.FS(sub))
}

// ReadSamples reads the samples of the given metric from src. If src fails,
// the mock series is returned alongside the error so that the page can still
// be drawn.
func ReadSamples(src dashmet.Source, m dashmet.Metric) ([]dashmet.Sample, error) {
	if src == nil {
		return dashmet.Generate(m), nil
	}

	samples, err := src.Samples(m)
	if err != nil {
		return dashmet.Generate(m), errors.Wrapf(err, "failed to read %s", m)
	}

	return samples, nil
}

// FormatterFor returns the value formatter of the given metric.
func FormatterFor(m dashmet.Metric) func(float64) string {
	if m.IsCurrency() {
		return numfmt.Currency
	}
	return numfmt.Number
}

// ChartJSON is the JSON form of a rendered chart.
type ChartJSON struct {
	Metric     string     `json:"metric"`
	Breakpoint string     `json:"breakpoint"`
	Width      int        `json:"width"`
	Chart      chart.View `json:"chart"`
	Formatted  struct {
		Best    string `json:"best"`
		Lowest  string `json:"lowest"`
		Average string `json:"average"`
	} `json:"formatted"`
}

// WriteJSON writes the chart of the given metric as JSON. Errors are logged
// into stderr.
func WriteJSON(w io.Writer, src dashmet.Source, m dashmet.Metric, width int) {
	samples, err := ReadSamples(src, m)
	if err != nil {
		log.Println("falling back to mock data:", err)
	}

	view := chart.Render(samples, width)
	format := FormatterFor(m)

	out := ChartJSON{
		Metric:     m.String(),
		Breakpoint: view.Breakpoint.String(),
		Width:      width,
		Chart:      view,
	}
	out.Formatted.Best = format(view.Summary.Best.Value)
	out.Formatted.Lowest = format(view.Summary.Lowest.Value)
	out.Formatted.Average = format(view.Summary.Average)

	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Println("failed to write JSON:", err)
	}
}
