package web

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/form/v4"

	"github.com/campuslf/lostfound/internal/model"
	"github.com/campuslf/lostfound/internal/store"
)

var decoder = form.NewDecoder()

// SearchQuery is the search form, decoded from the query string.
type SearchQuery struct {
	Keyword  string `form:"keyword"`
	Status   string `form:"status"`
	Category string `form:"category"`
	From     string `form:"from"`
	To       string `form:"to"`
}

type searchPageData struct {
	PageData
	Categories []string
	Query      SearchQuery
	Searched   bool
	Items      []ItemView
}

// SearchPage handles GET /search. The form submits via GET with a "search"
// marker, so results only render after an explicit search.
func (s *Server) SearchPage(w http.ResponseWriter, r *http.Request) {
	data := &searchPageData{
		PageData:   PageData{Title: "Search", Admin: s.isAdmin(r)},
		Categories: model.Categories,
		Query:      SearchQuery{Status: "Any", Category: model.CategoryAny},
	}

	if !r.URL.Query().Has("search") {
		s.Templates.Render(w, "search.html", data)
		return
	}
	data.Searched = true

	if err := decoder.Decode(&data.Query, r.URL.Query()); err != nil {
		data.Error = "Invalid search parameters."
		s.Templates.Render(w, "search.html", data)
		return
	}

	f := store.Filter{
		Keyword:   strings.TrimSpace(data.Query.Keyword),
		Category:  data.Query.Category,
		StartDate: validDate(data.Query.From),
		EndDate:   validDate(data.Query.To),
	}

	// "Any" means no status filter; the form offers Any/Lost/Found.
	if st := strings.ToLower(data.Query.Status); model.ValidStatus(st) {
		f.Status = st
	}

	if f.StartDate != "" && f.EndDate != "" && f.StartDate > f.EndDate {
		data.Error = "Start date is after end date."
	}

	items, err := store.SearchItems(r.Context(), s.DB, f)
	if err != nil {
		slog.Error("failed to search items", "error", err)
		data.Error = "Search failed. Please try again."
		s.Templates.Render(w, "search.html", data)
		return
	}

	data.Items = s.itemViews(items, false)
	s.Templates.Render(w, "search.html", data)
}

// validDate returns the value if it parses as a calendar date, else "".
func validDate(value string) string {
	if value == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return ""
	}
	return value
}
