package http

import (
	"net/http"
	"strings"

	"github.com/leanttro/leanttro-web/internal/logger"
)

// blockedUserAgents are matched case-insensitively as substrings of the
// User-Agent header.
var blockedUserAgents = []string{
	"python-requests",
	"curl",
	"wget",
	"libwww-perl",
	"scrapy",
	"httpclient",
}

// blockScrapers refuses requests issued by common scripting clients.
func blockScrapers(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent := strings.ToLower(r.UserAgent())
		for _, bot := range blockedUserAgents {
			if strings.Contains(userAgent, bot) {
				logger.FromRequest(r).Warn().Str("user_agent", r.UserAgent()).Msg("scraper blocked")
				http.Error(w, "Acesso negado.", http.StatusForbidden)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
