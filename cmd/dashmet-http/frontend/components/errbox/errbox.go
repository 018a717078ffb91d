package errbox

import (
	"io"

	"git.unix.lgbt/diamondburned/dashmet/cmd/dashmet-http/frontend"
)

var errbox = frontend.Templater.Subtemplate("errbox")

func init() {
	frontend.Templater.OnRenderFail(func(w io.Writer, _ string, err error) {
		errbox.Execute(w, err)
	})
}
