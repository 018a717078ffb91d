package index

import (
	"io"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"git.unix.lgbt/diamondburned/dashmet"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/components/donut"
	_ "git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/components/errbox"
	_ "git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/components/pagetable"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/components/revenue"
	_ "git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/components/statcard"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/theme"
	"github.com/dustin/go-humanize"
)

var index = frontend.Templater.Register("index", "pages/index/index.html")

// Params are the view parameters parsed from the request.
type Params struct {
	Metric dashmet.Metric
	Filter dashmet.DateFilter
	Theme  theme.Theme
	Width  int
	// WidthSet is true if the width was given explicitly instead of being
	// guessed from client hints. Only explicit widths are carried over into
	// links.
	WidthSet bool
}

// Query encodes the parameters back into a URL query.
func (p Params) Query() url.Values {
	v := url.Values{}
	v.Set("metric", p.Metric.String())
	v.Set("filter", string(p.Filter))
	v.Set("theme", string(p.Theme))
	if p.WidthSet {
		v.Set("w", strconv.Itoa(p.Width))
	}
	return v
}

func (p Params) link(key, value string) string {
	v := p.Query()
	v.Set(key, value)
	return "?" + v.Encode()
}

// Options configures the data behind the page.
type Options struct {
	Source dashmet.Source
	// DataPath is the path of the sample database, if any. It is used for the
	// storage meter and the last updated time.
	DataPath string
}

type renderData struct {
	Params
	Options

	Tokens theme.Tokens
	Now    time.Time
}

func (r *renderData) Filters() []dashmet.DateFilter { return dashmet.DateFilters }
func (r *renderData) Metrics() []dashmet.Metric     { return dashmet.Metrics }

// SelfURL returns the link to the current view.
func (r *renderData) SelfURL() string {
	return "?" + r.Query().Encode()
}

// FilterURL returns the link selecting the given filter.
func (r *renderData) FilterURL(f dashmet.DateFilter) string {
	return r.link("filter", string(f))
}

// ThemeURL returns the link switching to the other theme.
func (r *renderData) ThemeURL() string {
	return r.link("theme", string(r.Theme.Toggle()))
}

// ThemeTitle returns the tooltip of the theme toggle.
func (r *renderData) ThemeTitle() string {
	if r.Theme == theme.Light {
		return "Switch to Dark Mode"
	}
	return "Switch to Light Mode"
}

// Revenue prepares the trend chart.
func (r *renderData) Revenue() revenue.Data {
	return revenue.Prepare(r.Source, r.Metric, r.Width, r.Now.Year())
}

// Cards returns the KPI cards for the selected filter.
func (r *renderData) Cards() []dashmet.StatCard {
	return dashmet.KPICards(r.Filter)
}

// Health returns the health card, which ignores the filter.
func (r *renderData) Health() dashmet.Health {
	return dashmet.CurrentHealth()
}

// Devices returns the sessions donut.
func (r *renderData) Devices() donut.Data {
	return donut.Devices(dashmet.DeviceSplit())
}

// Pages returns the ranked top pages.
func (r *renderData) Pages() []dashmet.PageRow {
	return dashmet.TopPages()
}

// Storage returns the usage of the disk holding the data. Nil is returned if
// it cannot be determined.
func (r *renderData) Storage() *dashmet.Storage {
	s, err := dashmet.StorageUsage(r.DataPath)
	if err != nil {
		log.Println("storage meter unavailable:", err)
		return nil
	}
	return &s
}

// Updated returns the relative time at which the data was last written.
func (r *renderData) Updated() string {
	if r.DataPath != "" {
		if fi, err := os.Stat(r.DataPath); err == nil {
			return humanize.RelTime(fi.ModTime(), r.Now, "ago", "from now")
		}
	}
	return "a few seconds ago"
}

// Render renders the index page.
func Render(w io.Writer, p Params, opts Options) {
	index.Execute(w, &renderData{
		Params:  p,
		Options: opts,
		Tokens:  theme.TokensOf(p.Theme),
		Now:     time.Now(),
	})
}
