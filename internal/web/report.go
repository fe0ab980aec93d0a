package web

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/campuslf/lostfound/internal/imaging"
	"github.com/campuslf/lostfound/internal/model"
	"github.com/campuslf/lostfound/internal/store"
)

// maxUploadBytes caps image uploads at 5 MB.
const maxUploadBytes = 5 << 20

// reportPageData backs both the public report form and the admin found form.
type reportPageData struct {
	PageData
	Categories []string
	Form       *store.NewItem
}

// ReportPage handles GET /report.
func (s *Server) ReportPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "report.html", &reportPageData{
		PageData:   PageData{Title: "Report Lost Item", Admin: s.isAdmin(r)},
		Categories: model.Categories,
		Form:       &store.NewItem{},
	})
}

// ReportSubmit handles POST /report (public, always status "lost").
func (s *Server) ReportSubmit(w http.ResponseWriter, r *http.Request) {
	item, errMsg := s.parseItemForm(w, r, model.StatusLost)
	if errMsg != "" {
		s.Templates.Render(w, "report.html", &reportPageData{
			PageData:   PageData{Title: "Report Lost Item", Admin: s.isAdmin(r), Error: errMsg},
			Categories: model.Categories,
			Form:       item,
		})
		return
	}

	created, err := store.AddItem(r.Context(), s.DB, s.Images, *item)
	if err != nil {
		slog.Error("failed to create lost item report", "error", err)
		s.Templates.Render(w, "report.html", &reportPageData{
			PageData:   PageData{Title: "Report Lost Item", Admin: s.isAdmin(r), Error: "Could not save the report. Please try again."},
			Categories: model.Categories,
			Form:       item,
		})
		return
	}

	slog.Info("lost item reported", "item", created.ID, "title", created.Title)
	s.Templates.Render(w, "report.html", &reportPageData{
		PageData:   PageData{Title: "Report Lost Item", Admin: s.isAdmin(r), Success: "Lost item reported successfully!"},
		Categories: model.Categories,
		Form:       &store.NewItem{},
	})
}

// parseItemForm reads the shared item submission form. It returns the parsed
// item and a user-facing error message; an empty message means the item is
// ready to be stored. The partially parsed item is returned even on error so
// forms can be repopulated.
func (s *Server) parseItemForm(w http.ResponseWriter, r *http.Request, status string) (*store.NewItem, string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return &store.NewItem{Status: status}, "Upload too large or invalid form."
	}

	item := &store.NewItem{
		Title:           strings.TrimSpace(r.FormValue("title")),
		Description:     strings.TrimSpace(r.FormValue("description")),
		Category:        r.FormValue("category"),
		Status:          status,
		ReporterName:    strings.TrimSpace(r.FormValue("reporter_name")),
		ReporterContact: strings.TrimSpace(r.FormValue("reporter_contact")),
	}

	if item.Title == "" {
		return item, "Title is required."
	}
	if !model.ValidCategory(item.Category) {
		return item, "Choose a valid category."
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		result, perr := imaging.Process(file)
		if perr != nil {
			return item, perr.Error()
		}
		item.ImageData = result.Data
		item.ImageName = uploadFilename(header.Filename, result.Ext)
	case errors.Is(err, http.ErrMissingFile):
		// Image is optional.
	default:
		return item, "Could not read uploaded image."
	}

	return item, ""
}

// uploadFilename keeps the client's filename unless processing changed the
// encoding, in which case the extension must follow the stored bytes.
func uploadFilename(original, ext string) string {
	got := strings.ToLower(filepath.Ext(original))
	if got == ext || (ext == ".jpg" && got == ".jpeg") {
		return original
	}
	return strings.TrimSuffix(original, filepath.Ext(original)) + ext
}
