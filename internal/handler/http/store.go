package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/ratelimit"
	"github.com/leanttro/leanttro-web/internal/service"
	"github.com/leanttro/leanttro-web/internal/session"
	"github.com/leanttro/leanttro-web/models"
)

type storeResetPage struct {
	Loja  models.Loja
	Token string
}

// slugDispatch serves /{slug}: courier profiles win over stores, unknown
// slugs are offered for signup.
func (h *Handler) slugDispatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resolution, err := h.services.TenantService.ResolveSlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.slugDispatch").Msg("slug resolution failed")
		http.Error(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	switch resolution.Kind {
	case models.SlugIgnored:
		http.NotFound(w, r)
	case models.SlugMotoboy:
		h.render(w, r, http.StatusOK, pageSOS, resolution.Motoboy)
	case models.SlugLoja:
		storefront, err := h.services.StorefrontService.StorefrontFor(ctx, *resolution.Loja, r.URL.Query().Get("categoria"))
		if err != nil {
			log.Err(err).Str("func", "*Handler.slugDispatch").Str("slug", resolution.Slug).Msg("storefront load failed")
			http.Error(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
		h.render(w, r, http.StatusOK, pageStorefront, storefront)
	default:
		http.Redirect(w, r, "/cadastro?codigo="+url.QueryEscape(resolution.Slug), http.StatusFound)
	}
}

func (h *Handler) storeSignupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageStoreSignup, models.StoreSignupForm{})
}

func (h *Handler) storeSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.allow(r, ratelimit.CourierSignupRule, clientIP(r)) {
		flash(r, models.FlashError, msgTooManyAttempts)
		h.redirect(w, r, "/")
		return
	}

	form := models.StoreSignupForm{
		Nome:     r.PostFormValue("nome"),
		Slug:     r.PostFormValue("slug"),
		Email:    r.PostFormValue("email"),
		Senha:    r.PostFormValue("senha"),
		Whatsapp: r.PostFormValue("whatsapp"),
	}

	loja, err := h.services.StoreAdminService.Register(ctx, form)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugTaken):
			flash(r, models.FlashError, msgStoreSlugTaken)
		case errors.Is(err, service.ErrInvalidForm):
			flash(r, models.FlashError, formErrorMessage(err, msgStoreCreateFailed))
		default:
			log.Err(err).Str("func", "*Handler.storeSignup").Msg("store signup failed")
			flash(r, models.FlashError, msgStoreCreateFailed)
		}
		form.Senha = ""
		h.render(w, r, statusFromError(err), pageStoreSignup, form)
		return
	}

	session.FromContext(ctx).GrantAdmin(loja.Slug)
	h.redirect(w, r, "/"+loja.Slug+"/admin")
}

// loadStore fetches the {slug} store, answering 404/500 itself when that
// fails.
func (h *Handler) loadStore(w http.ResponseWriter, r *http.Request) (models.Loja, bool) {
	loja, err := h.services.StoreAdminService.Store(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			http.Error(w, msgStoreNotFound, http.StatusNotFound)
			return models.Loja{}, false
		}
		logger.FromRequest(r).Err(err).Str("func", "*Handler.loadStore").Msg("store load failed")
		http.Error(w, msgInternalServerError, statusFromError(err))
		return models.Loja{}, false
	}
	return loja, true
}

func (h *Handler) storeAdminLoginPage(w http.ResponseWriter, r *http.Request) {
	loja, ok := h.loadStore(w, r)
	if !ok {
		return
	}

	if session.FromContext(r.Context()).IsAdminOf(loja.Slug) {
		http.Redirect(w, r, "/"+loja.Slug+"/painel", http.StatusFound)
		return
	}

	h.render(w, r, http.StatusOK, pageStoreAdminLogin, loja)
}

func (h *Handler) storeAdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	loja, ok := h.loadStore(w, r)
	if !ok {
		return
	}

	if !h.allow(r, ratelimit.StoreAdminRule, loja.Slug, clientIP(r)) {
		flash(r, models.FlashError, msgTooManyLogins)
		h.render(w, r, http.StatusTooManyRequests, pageStoreAdminLogin, loja)
		return
	}

	if _, err := h.services.StoreAdminService.Login(ctx, loja.Slug, r.PostFormValue("senha")); err != nil {
		if !errors.Is(err, service.ErrWrongCredentials) {
			log.Err(err).Str("func", "*Handler.storeAdminLogin").Msg("store admin login failed")
			flash(r, models.FlashError, msgLoginFailed)
		} else {
			flash(r, models.FlashError, msgWrongStorePassword)
		}
		h.render(w, r, statusFromError(err), pageStoreAdminLogin, loja)
		return
	}

	session.FromContext(ctx).GrantAdmin(loja.Slug)
	h.redirect(w, r, "/"+loja.Slug+"/painel")
}

func (h *Handler) storeDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.services.StoreAdminService.Dashboard(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			http.Error(w, msgStoreNotFound, http.StatusNotFound)
			return
		}
		logger.FromRequest(r).Err(err).Str("func", "*Handler.storeDashboard").Msg("dashboard load failed")
		http.Error(w, msgInternalServerError, statusFromError(err))
		return
	}

	h.render(w, r, http.StatusOK, pageStoreDashboard, dashboard)
}

func (h *Handler) storeForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	loja, ok := h.loadStore(w, r)
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, pageStoreForgot, loja)
}

func (h *Handler) storeForgotPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	loja, ok := h.loadStore(w, r)
	if !ok {
		return
	}

	if !h.allow(r, ratelimit.PasswordResetRule, clientIP(r)) {
		flash(r, models.FlashError, msgTooManyAttempts)
		h.render(w, r, http.StatusTooManyRequests, pageStoreForgot, loja)
		return
	}

	err := h.services.StoreAdminService.RequestPasswordReset(r.Context(), loja.Slug, r.PostFormValue("email"), h.baseURL(r))
	switch {
	case err == nil:
		flash(r, models.FlashSuccess, msgResetLinkSent)
	case errors.Is(err, service.ErrEmailMismatch):
		flash(r, models.FlashError, msgStoreEmailMismatch)
	case errors.Is(err, service.ErrMailDelivery):
		flash(r, models.FlashError, msgMailFailed)
	default:
		log.Err(err).Str("func", "*Handler.storeForgotPassword").Msg("store password reset request failed")
		flash(r, models.FlashError, msgMailFailed)
	}

	status := http.StatusOK
	if err != nil {
		status = statusFromError(err)
	}
	h.render(w, r, status, pageStoreForgot, loja)
}

func (h *Handler) storeResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	loja, err := h.services.StoreAdminService.VerifyResetToken(r.Context(), chi.URLParam(r, "slug"), token)
	if err != nil {
		h.rejectStoreResetLink(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, pageStoreReset, storeResetPage{Loja: loja, Token: token})
}

func (h *Handler) storeResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	token := chi.URLParam(r, "token")

	loja, err := h.services.StoreAdminService.VerifyResetToken(ctx, slug, token)
	if err != nil {
		h.rejectStoreResetLink(w, r, err)
		return
	}

	err = h.services.StoreAdminService.ResetPassword(ctx, loja.Slug, token, models.PasswordForm{Senha: r.PostFormValue("senha")})
	if err != nil {
		if errors.Is(err, service.ErrInvalidForm) {
			flash(r, models.FlashError, formErrorMessage(err, msgPasswordChangeFailed))
			h.render(w, r, http.StatusBadRequest, pageStoreReset, storeResetPage{Loja: loja, Token: token})
			return
		}
		h.rejectStoreResetLink(w, r, err)
		return
	}

	flash(r, models.FlashSuccess, msgPasswordChanged)
	h.redirect(w, r, "/"+loja.Slug+"/admin")
}

func (h *Handler) rejectStoreResetLink(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, service.ErrInvalidResetToken) && !errors.Is(err, service.ErrStoreNotFound) {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.rejectStoreResetLink").Msg("store password reset failed")
		http.Error(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}
	http.Error(w, msgInvalidResetLink, http.StatusBadRequest)
}
