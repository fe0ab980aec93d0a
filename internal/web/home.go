package web

import (
	"log/slog"
	"net/http"

	"github.com/campuslf/lostfound/internal/store"
)

// recentLimit is the number of reports shown on the home page.
const recentLimit = 10

// HomePage handles GET /.
func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	items, err := store.SearchItems(r.Context(), s.DB, store.Filter{Limit: recentLimit})
	if err != nil {
		slog.Error("failed to list recent items", "error", err)
	}

	s.Templates.Render(w, "home.html", &struct {
		PageData
		Items []ItemView
	}{
		PageData: PageData{Title: "Home", Admin: s.isAdmin(r)},
		Items:    s.itemViews(items, false),
	})
}
