package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leanttro/leanttro-web/internal/session"
	"github.com/leanttro/leanttro-web/internal/validators"
)

// requireCourier redirects visitors without a courier session to /login.
func (h *Handler) requireCourier(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !session.FromContext(r.Context()).IsCourier() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireStoreAdmin redirects visitors that are not administrators of the
// {slug} store to its login page.
func (h *Handler) requireStoreAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := validators.NormalizeSlug(chi.URLParam(r, "slug"))
		if !session.FromContext(r.Context()).IsAdminOf(slug) {
			http.Redirect(w, r, "/"+slug+"/admin", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
