package sassgo

import (
	"io/fs"
	"net/http"
	"strings"
)

// NewMiddleware creates an HTTP middleware that compiles .scss files
// to css on the fly. Requests under basePath with a .scss extension
// are compiled and served with a text/css content type; everything
// else passes to the next handler.
//
//	router.Use(sassgo.NewMiddleware("/assets/css", os.DirFS("./assets/css")))
func NewMiddleware(basePath string, fileSystem fs.FS) func(http.Handler) http.Handler {
	handler := NewHandler(fileSystem, basePath)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasPrefix(r.URL.Path, basePath) {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasSuffix(r.URL.Path, ".scss") {
				next.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}
