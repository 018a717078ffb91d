package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"git.unix.lgbt/diamondburned/dashmet"
	"git.unix.lgbt/diamondburned/dashmet/chart"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/pages/errpage"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/pages/index"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/theme"
	"github.com/diamondburned/tmplutil"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

var minifier = minify.New()

func init() {
	minifier.Add("text/html", html.DefaultMinifier)
	minifier.AddFunc("text/css", css.Minify)
}

// Config configures the handler.
type Config struct {
	// Source provides the chart samples. If nil, mock data is drawn.
	Source dashmet.Source
	// Prefs stores the theme of each client. If nil, themes are only taken
	// from the query.
	Prefs *dashmet.PrefStore
	// DataPath is the sample database path, if any.
	DataPath string
}

func New(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Mount("/static", http.StripPrefix("/static", frontend.MountStatic()))
	r.Group(func(r chi.Router) {
		r.Use(tmplutil.AlwaysFlush)
		r.Use(middleware.NoCache)
		r.Use(middleware.Compress(5))

		r.Get("/*", root(cfg))
	})

	return r
}

type jsonError struct {
	Error string
}

func root(cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", acceptCH)

		params, err := parseParams(r)

		for _, accept := range strings.Split(r.Header.Get("Accept"), ",") {
			switch strings.TrimSpace(accept) {
			case "application/json":
				w.Header().Set("Content-Type", "application/json; charset=UTF-8")

				if err != nil {
					w.WriteHeader(400)
					json.NewEncoder(w).Encode(jsonError{Error: err.Error()})
					return
				}

				frontend.WriteJSON(w, cfg.Source, params.Metric, params.Width)
				return

			case "text/html":
				fallthrough
			default:
				w.Header().Set("Content-Type", "text/html; charset=UTF-8")

				if err != nil {
					errpage.Respond(w, 400, err)
					return
				}

				params.Theme = resolveTheme(w, r, cfg.Prefs, r.FormValue("theme"))

				w := minifier.Writer("text/html", w)
				defer w.Close()

				index.Render(w, params, index.Options{
					Source:   cfg.Source,
					DataPath: cfg.DataPath,
				})
				return
			}
		}
	}
}

const (
	acceptCH = "Sec-CH-Viewport-Width, Viewport-Width"
	maxWidth = 10000
)

// viewportHeaders are the client hint headers carrying the viewport width, in
// order of preference.
var viewportHeaders = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

func parseParams(r *http.Request) (index.Params, error) {
	p := index.Params{
		Metric: dashmet.Revenue,
		Filter: dashmet.DefaultFilter,
		Theme:  theme.Default,
		Width:  chart.DefaultWidth,
	}

	if name := r.FormValue("metric"); name != "" {
		p.Metric = dashmet.ParseMetric(name)
		if p.Metric.String() != name {
			return p, fmt.Errorf("unknown metric %q", name)
		}
	}

	if name := r.FormValue("filter"); name != "" {
		p.Filter = dashmet.ParseDateFilter(name)
		if string(p.Filter) != name {
			return p, fmt.Errorf("unknown filter %q", name)
		}
	}

	if name := r.FormValue("theme"); name != "" {
		if _, ok := theme.Parse(name); !ok {
			return p, fmt.Errorf("unknown theme %q", name)
		}
	}

	if w := r.FormValue("w"); w != "" {
		width, err := parseWidth(w)
		if err != nil {
			return p, err
		}
		p.Width = width
		p.WidthSet = true
		return p, nil
	}

	for _, header := range viewportHeaders {
		if width, err := parseWidth(r.Header.Get(header)); err == nil {
			p.Width = width
			break
		}
	}

	return p, nil
}

func parseWidth(s string) (int, error) {
	w, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid width %q", s)
	}
	if w < 1 || w > maxWidth {
		return 0, fmt.Errorf("width %d is out of bound 1..%d", w, maxWidth)
	}
	return w, nil
}

const (
	clientCookie = "dashmet-client"
	clientMaxAge = 365 * 24 * time.Hour
)

// resolveTheme returns the theme for this request. An explicit theme is stored
// for the client; otherwise the stored one is used. Store errors are logged
// and the default theme is used.
func resolveTheme(w http.ResponseWriter, r *http.Request, prefs *dashmet.PrefStore, name string) theme.Theme {
	t, explicit := theme.Parse(name)
	if prefs == nil {
		return t
	}

	id := clientID(w, r)

	if explicit {
		if err := prefs.Set(id, dashmet.Preferences{Theme: string(t)}); err != nil {
			log.Println("failed to save theme:", err)
		}
		return t
	}

	stored, err := prefs.Get(id)
	if err != nil {
		log.Println("failed to load theme:", err)
		return theme.Default
	}

	t, _ = theme.Parse(stored.Theme)
	return t
}

// clientID returns the client's id from its cookie, issuing a new one if it
// has none.
func clientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(clientCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     clientCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(clientMaxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}
