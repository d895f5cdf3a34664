package middleware

import (
	"net/http"
	"os"
	"path/filepath"
)

const fallbackHTML = `<!doctype html><html><head><meta charset="utf-8"><title>Tesla Event Access</title></head><body><h1>Tesla Event Access</h1><p>Static assets are not installed.</p></body></html>`

// StaticPage serves one file from dir, falling back to a minimal page when
// the file is missing.
func StaticPage(dir, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(name))

		if _, err := os.Stat(path); err == nil {
			http.ServeFile(w, r, path)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(fallbackHTML))
	})
}
