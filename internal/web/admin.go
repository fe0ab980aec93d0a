package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/campuslf/lostfound/internal/model"
	"github.com/campuslf/lostfound/internal/store"
)

type adminPageData struct {
	PageData
	Categories []string
	Form       *store.NewItem
	Items      []ItemView
}

// AdminPage handles GET /admin.
func (s *Server) AdminPage(w http.ResponseWriter, r *http.Request) {
	items, err := store.SearchItems(r.Context(), s.DB, store.Filter{})
	if err != nil {
		slog.Error("failed to list items for admin", "error", err)
	}

	s.Templates.Render(w, "admin.html", &adminPageData{
		PageData: PageData{
			Title:   "Admin Panel",
			Admin:   true,
			Error:   r.URL.Query().Get("error"),
			Success: r.URL.Query().Get("success"),
		},
		Categories: model.Categories,
		Form:       &store.NewItem{},
		Items:      s.itemViews(items, true),
	})
}

// FoundItemSubmit handles POST /admin/items (admin records a found item).
func (s *Server) FoundItemSubmit(w http.ResponseWriter, r *http.Request) {
	item, errMsg := s.parseItemForm(w, r, model.StatusFound)
	if errMsg != "" {
		s.redirectAdmin(w, r, "error", errMsg)
		return
	}

	created, err := store.AddItem(r.Context(), s.DB, s.Images, *item)
	if err != nil {
		slog.Error("failed to create found item", "error", err)
		s.redirectAdmin(w, r, "error", "Could not save the item.")
		return
	}

	slog.Info("found item added", "item", created.ID, "title", created.Title)
	s.redirectAdmin(w, r, "success", "Found item added!")
}

// MarkFoundSubmit handles POST /admin/items/{id}/found.
func (s *Server) MarkFoundSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := store.MarkFound(r.Context(), s.DB, id); err != nil {
		slog.Error("failed to mark item found", "item", id, "error", err)
		s.redirectAdmin(w, r, "error", "Could not update the item.")
		return
	}

	slog.Info("item marked found", "item", id)
	s.redirectAdmin(w, r, "success", "Item marked as found!")
}

// DeleteItemSubmit handles POST /admin/items/{id}/delete.
func (s *Server) DeleteItemSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := store.RemoveItem(r.Context(), s.DB, s.Images, id); err != nil {
		slog.Error("failed to remove item", "item", id, "error", err)
		s.redirectAdmin(w, r, "error", "Could not remove the item.")
		return
	}

	slog.Info("item removed", "item", id)
	s.redirectAdmin(w, r, "success", "Item removed.")
}

// redirectAdmin redirects back to the admin page with a flash message in
// the query string.
func (s *Server) redirectAdmin(w http.ResponseWriter, r *http.Request, kind, message string) {
	http.Redirect(w, r, "/admin?"+kind+"="+url.QueryEscape(message), http.StatusSeeOther)
}
