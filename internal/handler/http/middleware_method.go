package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leanttro/leanttro-web/internal/logger"
)

// methodNotAllowed replaces chi's 405 answer with the regular 404 page, so a
// known path requested with the wrong verb looks like any unknown path.
//
// A request whose method does match a route is handed back to the router.
func (h *Handler) methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("method not supported for route")
		h.notFound(w, r)
	}
}
