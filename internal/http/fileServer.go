package http

import (
	"io/fs"
	"net/http"
	"strings"
)

func NewFileServerHandler(assets fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(assets))

	return func(w http.ResponseWriter, r *http.Request) {
		// Only the assets, never the embedding source or a directory listing.
		if strings.HasSuffix(r.URL.Path, ".go") || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Cache-Control", "no-cache")
		fileServer.ServeHTTP(w, r)
	}
}
