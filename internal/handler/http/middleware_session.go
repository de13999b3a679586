package http

import (
	"net/http"

	"github.com/leanttro/leanttro-web/internal/session"
)

// withSession decodes the session cookie into the request context. Handlers
// persist changes through commitSession.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := h.sessions.Load(r)
		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}
