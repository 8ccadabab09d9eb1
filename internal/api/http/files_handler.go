package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"concrental-backend/internal/storage"
)

// fileServer streams objects back for the local storage backend. Cloud
// backends return direct object URLs and never hit this handler.
type fileServer struct {
	local *storage.LocalStorage
}

func (s *fileServer) handleDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	f, err := s.local.Open(key)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	io.Copy(w, f)
}
