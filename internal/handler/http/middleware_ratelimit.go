package http

import (
	"net/http"

	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/ratelimit"
	"github.com/leanttro/leanttro-web/internal/utils"
)

// withBurstGuard answers 429 once a client address exhausts its global
// token bucket.
func (h *Handler) withBurstGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.burst != nil && !h.burst.Allow(clientIP(r)) {
			logger.FromRequest(r).Warn().Msg("burst limit exceeded")
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Muitas requisições. Tente novamente em instantes.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allow consumes one event of rule for the key built from parts. Limiter
// failures are logged and let the request through.
func (h *Handler) allow(r *http.Request, rule ratelimit.Rule, parts ...string) bool {
	if h.limiter == nil {
		return true
	}

	key := rule.Key(parts...)
	allowed, err := h.limiter.Allow(r.Context(), key, rule.Limit, rule.Period)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.allow").Str("key", key).Msg("rate limiter unavailable, allowing request")
		return true
	}
	if !allowed {
		logger.FromRequest(r).Info().Str("key", key).Msg("rate limit exceeded")
	}
	return allowed
}

func clientIP(r *http.Request) string {
	if ip := utils.GetClientIPFromContext(r.Context()); ip != "" {
		return ip
	}
	return utils.ClientIP(r)
}
