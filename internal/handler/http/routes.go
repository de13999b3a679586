package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(blockScrapers)
	router.Use(withSecurityHeaders)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withCompression)
	router.Use(h.withBurstGuard)

	// probes skip tenant resolution and sessions
	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withTenant)
		r.Use(h.withSession)

		// courier pages
		r.Get("/", h.home)
		r.Get("/cadastro", h.courierSignupPage)
		r.Post("/cadastro", h.courierSignup)
		r.Get("/login", h.courierLoginPage)
		r.Post("/login", h.courierLogin)
		r.Get("/esqueceu-senha", h.courierForgotPasswordPage)
		r.Post("/esqueceu-senha", h.courierForgotPassword)
		r.Get("/redefinir-senha/{token}", h.courierResetPasswordPage)
		r.Post("/redefinir-senha/{token}", h.courierResetPassword)
		r.Get("/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireCourier)
			r.Get("/painel", h.courierPanel)
			r.Post("/painel", h.updateCourierPanel)
		})

		// stores
		r.Get("/criar-loja", h.storeSignupPage)
		r.Post("/criar-loja", h.storeSignup)
		r.Get("/{slug}", h.slugDispatch)
		r.Get("/{slug}/admin", h.storeAdminLoginPage)
		r.Post("/{slug}/admin", h.storeAdminLogin)
		r.With(h.requireStoreAdmin).Get("/{slug}/painel", h.storeDashboard)
		r.Get("/{slug}/recuperar-senha", h.storeForgotPasswordPage)
		r.Post("/{slug}/recuperar-senha", h.storeForgotPassword)
		r.Get("/{slug}/nova-senha/{token}", h.storeResetPasswordPage)
		r.Post("/{slug}/nova-senha/{token}", h.storeResetPassword)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed(router))

	return router
}
