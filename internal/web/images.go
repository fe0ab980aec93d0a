package web

import (
	"net/http"
	"strings"
)

// ImageGet handles GET /images/{name}, serving stored item photos.
func (s *Server) ImageGet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		http.Error(w, "invalid image name", http.StatusBadRequest)
		return
	}

	if !s.Images.Exists(name) {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeFile(w, r, s.Images.Path(name))
}
