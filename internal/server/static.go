package server

import (
	"io/fs"
	"net/http"
	"strings"
)

// staticFileServer serves files from assets. Directories, including the root,
// are reported as not found instead of listed.
func staticFileServer(assets fs.FS) http.Handler {
	fileServer := http.FileServerFS(assets)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.Trim(r.URL.Path, "/")
		if path == "" {
			path = "."
		}
		info, err := fs.Stat(assets, path)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
