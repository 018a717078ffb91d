package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.unix.lgbt/diamondburned/dashmet"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/theme"
	"git.unix.lgbt/diamondburned/dashmet/internal/badgerlog"
)

func newServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()

	s := httptest.NewServer(New(cfg))
	t.Cleanup(s.Close)

	return s
}

func get(t *testing.T, url, accept string, header http.Header) *http.Response {
	t.Helper()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		t.Fatal("failed to create request:", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", accept)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal("failed to GET:", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestJSON(t *testing.T) {
	s := newServer(t, Config{})

	resp := get(t, s.URL+"/?metric=orders&w=320", "application/json", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out frontend.ChartJSON
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal("failed to decode:", err)
	}

	if out.Metric != "orders" || out.Breakpoint != "narrow" || out.Width != 320 {
		t.Errorf("unexpected header fields %+v", out)
	}
	if n := len(out.Chart.Points); n != dashmet.MonthsPerYear {
		t.Errorf("expected %d points, got %d", dashmet.MonthsPerYear, n)
	}
	if n := len(out.Chart.Labels); n != 4 {
		t.Errorf("expected 4 narrow labels, got %d", n)
	}
	if !strings.HasPrefix(out.Chart.Curve, "M ") {
		t.Errorf("unexpected curve %q", out.Chart.Curve)
	}
}

func TestJSONViewportHint(t *testing.T) {
	s := newServer(t, Config{})

	h := http.Header{}
	h.Set("Sec-CH-Viewport-Width", "800")

	resp := get(t, s.URL+"/", "application/json", h)

	var out frontend.ChartJSON
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal("failed to decode:", err)
	}

	if out.Width != 800 || out.Breakpoint != "medium" {
		t.Errorf("expected medium 800 from client hint, got %s %d", out.Breakpoint, out.Width)
	}
	if resp.Header.Get("Accept-CH") == "" {
		t.Error("missing Accept-CH header")
	}
}

func TestBadParams(t *testing.T) {
	s := newServer(t, Config{})

	queries := []string{
		"metric=profit",
		"filter=1y",
		"theme=sepia",
		"w=abc",
		"w=0",
		"w=20000",
	}

	for _, q := range queries {
		resp := get(t, s.URL+"/?"+q, "application/json", nil)
		if resp.StatusCode != 400 {
			t.Errorf("%s: expected 400, got %d", q, resp.StatusCode)
			continue
		}

		var jerr jsonError
		if err := json.NewDecoder(resp.Body).Decode(&jerr); err != nil {
			t.Errorf("%s: failed to decode error: %v", q, err)
			continue
		}
		if jerr.Error == "" {
			t.Errorf("%s: expected error message", q)
		}

		resp = get(t, s.URL+"/?"+q, "text/html", nil)
		if resp.StatusCode != 400 {
			t.Errorf("%s: expected HTML 400, got %d", q, resp.StatusCode)
		}
	}
}

func TestParseParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	p, err := parseParams(r)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if p.Metric != dashmet.Revenue || p.Filter != dashmet.DefaultFilter || p.Width != 1024 || p.WidthSet {
		t.Errorf("unexpected defaults %+v", p)
	}
}

func TestHTML(t *testing.T) {
	s := newServer(t, Config{})

	resp := get(t, s.URL+"/?filter=7d", "text/html", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal("failed to read body:", err)
	}
	body := string(b)

	for _, expect := range []string{"Analytics overview", "Last 7 days", "Top performing pages", "Excellent"} {
		if !strings.Contains(body, expect) {
			t.Errorf("expected page to contain %q", expect)
		}
	}
}

func TestThemePersisted(t *testing.T) {
	prefs, err := dashmet.OpenPrefs("", badgerlog.NoLogging)
	if err != nil {
		t.Fatal("failed to open prefs:", err)
	}
	t.Cleanup(func() { prefs.Close() })

	s := newServer(t, Config{Prefs: prefs})

	resp := get(t, s.URL+"/?theme=light", "text/html", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == clientCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected client cookie")
	}

	stored, err := prefs.Get(cookie.Value)
	if err != nil {
		t.Fatal("failed to get prefs:", err)
	}
	if stored.Theme != string(theme.Light) {
		t.Errorf("expected stored light theme, got %q", stored.Theme)
	}

	// A later request without the query parameter keeps the stored theme.
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()

	if th := resolveTheme(w, r, prefs, ""); th != theme.Light {
		t.Errorf("expected light theme from store, got %s", th)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("expected no new cookie for a known client")
	}
}

func TestResolveThemeWithoutPrefs(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	if th := resolveTheme(w, r, nil, "light"); th != theme.Light {
		t.Errorf("expected light, got %s", th)
	}
	if th := resolveTheme(w, r, nil, ""); th != theme.Default {
		t.Errorf("expected default, got %s", th)
	}
}
