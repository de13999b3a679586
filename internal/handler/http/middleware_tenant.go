package http

import (
	"net/http"

	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/utils"
	"github.com/leanttro/leanttro-web/models"
)

// withTenant classifies the request host and stores the resulting
// [models.Tenant] in the request context. Resolution never blocks the
// request: on error the host is served as a system domain.
func (h *Handler) withTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		tenant, err := h.services.TenantService.ResolveHost(ctx, r.Host)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withTenant").Str("host", r.Host).Msg("tenant resolution failed, serving as system domain")
			tenant = models.Tenant{Kind: models.TenantSystem, Host: utils.NormalizeHost(r.Host)}
		}

		var slug string
		if tenant.Motoboy != nil {
			slug = tenant.Motoboy.Slug
		}
		tenantLogger := log.WithTenant(tenant.Kind.String(), slug)

		ctx = utils.WithTenant(ctx, tenant)
		next.ServeHTTP(w, r.WithContext(tenantLogger.WithContext(ctx)))
	})
}
