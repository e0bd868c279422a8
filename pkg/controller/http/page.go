package http

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// PageHandler serves the dashboard page and its static assets. Unknown
// paths fall back to index.html.
type PageHandler struct {
	fileSystem http.FileSystem
	index      []byte
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(filesystem http.FileSystem) (*PageHandler, error) {
	f, err := filesystem.Open("/index.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open index.html")
	}
	defer f.Close()

	index, err := io.ReadAll(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read index.html")
	}

	return &PageHandler{
		fileSystem: filesystem,
		index:      index,
	}, nil
}

// ServeHTTP implements http.Handler
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cleanPath := path.Clean("/" + r.URL.Path)

	file, err := h.fileSystem.Open(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			h.serveIndex(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stat.IsDir() {
		h.serveIndex(w, r)
		return
	}

	if contentType, ok := mimeTypes[path.Ext(cleanPath)]; ok {
		w.Header().Set("Content-Type", contentType)
	}
	http.ServeContent(w, r, cleanPath, stat.ModTime(), file)
}

func (h *PageHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", mimeTypes[".html"])
	http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(h.index))
}

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}
