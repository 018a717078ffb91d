package errpage

import (
	"io"
	"net/http"

	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend"
	_ "git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/components/errbox"
	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend/theme"
)

var errpage = frontend.Templater.Register("errpage", "pages/errpage/errpage.html")

type renderData struct {
	Code   int
	Error  error
	Tokens theme.Tokens
}

// StatusText returns the status text of the code.
func (r renderData) StatusText() string {
	return http.StatusText(r.Code)
}

// Render renders the error page.
func Render(w io.Writer, code int, err error) {
	errpage.Execute(w, renderData{code, err, theme.TokensOf(theme.Default)})
}

// Respond writes the status code then renders the error page.
func Respond(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)
	Render(w, code, err)
}
