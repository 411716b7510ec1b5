package sassgo

import (
	"bytes"
	"io/fs"
	"net/http"
	"strings"

	"github.com/titpetric/sassgo/writer"
)

// Handler compiles and serves .scss files over HTTP
type Handler struct {
	pathPrefix string
	fileSystem fs.FS
	style      writer.Style
}

// NewHandler creates an scss compilation handler.
// fileSystem is where to read .scss files from;
// pathPrefix is the URL path prefix to match and strip (e.g., "/assets/css").
func NewHandler(fileSystem fs.FS, pathPrefix string) http.Handler {
	return &Handler{
		pathPrefix: pathPrefix,
		fileSystem: fileSystem,
		style:      writer.Expanded(0),
	}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Only handle GET and HEAD requests
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.pathPrefix != "" && !strings.HasPrefix(r.URL.Path, h.pathPrefix) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if !strings.HasSuffix(r.URL.Path, ".scss") {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	scssPath := strings.TrimPrefix(r.URL.Path, h.pathPrefix)
	if h.pathPrefix != "/" {
		scssPath = strings.TrimPrefix(scssPath, "/")
	}

	info, err := fs.Stat(h.fileSystem, scssPath)
	if err != nil || info.IsDir() {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	data, err := fs.ReadFile(h.fileSystem, scssPath)
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := CompileScssFS(h.fileSystem, data, &buf, h.style); err != nil {
		http.Error(w, "Compilation Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if r.Method != http.MethodHead {
		w.Write(buf.Bytes())
	}
}
