// Package web embeds the static journey page. The markup is a thin shell;
// all generated content reaches it through the /api endpoints.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// PageHandler serves the embedded page assets.
func PageHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: failed to create sub filesystem: " + err.Error())
	}
	return http.FileServer(http.FS(sub))
}
