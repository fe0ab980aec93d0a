package web

import (
	"database/sql"
	"net/http"

	"github.com/campuslf/lostfound/internal/imagestore"
	webembed "github.com/campuslf/lostfound/web"
)

// NewRouter creates the web router with all page routes registered.
func NewRouter(db *sql.DB, images *imagestore.Store, sessionSecret string, adminHash []byte) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:            db,
		Images:        images,
		Templates:     templates,
		SessionSecret: sessionSecret,
		AdminHash:     adminHash,
	}

	mux := http.NewServeMux()
	adminAuth := AdminAuthMiddleware(sessionSecret)

	// Static assets and stored images.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))
	mux.HandleFunc("GET /images/{name}", s.ImageGet)

	// Public routes.
	mux.HandleFunc("GET /{$}", s.HomePage)
	mux.HandleFunc("GET /report", s.ReportPage)
	mux.HandleFunc("POST /report", s.ReportSubmit)
	mux.HandleFunc("GET /search", s.SearchPage)
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Admin routes.
	mux.Handle("GET /admin", adminAuth(http.HandlerFunc(s.AdminPage)))
	mux.Handle("POST /admin/items", adminAuth(http.HandlerFunc(s.FoundItemSubmit)))
	mux.Handle("POST /admin/items/{id}/found", adminAuth(http.HandlerFunc(s.MarkFoundSubmit)))
	mux.Handle("POST /admin/items/{id}/delete", adminAuth(http.HandlerFunc(s.DeleteItemSubmit)))

	return mux, nil
}
