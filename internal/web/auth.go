package web

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/campuslf/lostfound/internal/auth"
)

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	if s.isAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	s.Templates.Render(w, "login.html", &PageData{Title: "Admin Login"})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	if password == "" {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Admin Login",
			Error: "Enter the admin password.",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword(s.AdminHash, []byte(password)); err != nil {
		slog.Warn("admin login failed", "remote", r.RemoteAddr)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Admin Login",
			Error: "Incorrect password.",
		})
		return
	}

	token, err := auth.GenerateToken(s.SessionSecret)
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Admin Login",
			Error: "Login failed. Please try again.",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.TokenExpiry.Seconds()),
	})

	slog.Info("admin logged in", "remote", r.RemoteAddr)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles POST /logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
