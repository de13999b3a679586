package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/ratelimit"
	"github.com/leanttro/leanttro-web/internal/service"
	"github.com/leanttro/leanttro-web/internal/session"
	"github.com/leanttro/leanttro-web/internal/utils"
	"github.com/leanttro/leanttro-web/models"
)

// maxUploadSize bounds the multipart body of the profile form.
const maxUploadSize = 10 << 20

type signupPage struct {
	Codigo string
	Nome   string
	Email  string
}

type loginPage struct {
	Email string
}

type resetPage struct {
	Token string
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	tenant, _ := utils.GetTenantFromContext(r.Context())
	if tenant.Kind == models.TenantCustomDomain && tenant.Motoboy != nil {
		h.render(w, r, http.StatusOK, pageSOS, tenant.Motoboy)
		return
	}

	if session.FromContext(r.Context()).IsCourier() {
		http.Redirect(w, r, "/painel", http.StatusFound)
		return
	}

	h.render(w, r, http.StatusOK, pageIndex, nil)
}

func (h *Handler) courierSignupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageCourierSignup, signupPage{Codigo: r.URL.Query().Get("codigo")})
}

func (h *Handler) courierSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.allow(r, ratelimit.CourierSignupRule, clientIP(r)) {
		flash(r, models.FlashError, msgTooManyAttempts)
		h.redirect(w, r, "/")
		return
	}

	form := models.CourierSignupForm{
		Slug:  r.PostFormValue("slug"),
		Nome:  r.PostFormValue("nome"),
		Email: r.PostFormValue("email"),
		Senha: r.PostFormValue("senha"),
	}
	page := signupPage{Codigo: form.Slug, Nome: form.Nome, Email: form.Email}

	motoboy, err := h.services.CourierAuthService.Register(ctx, form)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugTaken):
			flash(r, models.FlashError, msgSlugTaken)
		case errors.Is(err, service.ErrEmailTaken):
			flash(r, models.FlashError, msgEmailTaken)
		case errors.Is(err, service.ErrInvalidForm):
			flash(r, models.FlashError, formErrorMessage(err, msgSignupFailed))
		default:
			log.Err(err).Str("func", "*Handler.courierSignup").Msg("courier signup failed")
			flash(r, models.FlashError, msgSignupFailed)
		}
		h.render(w, r, statusFromError(err), pageCourierSignup, page)
		return
	}

	sess := session.FromContext(ctx)
	sess.LoginCourier(motoboy.ID.String())
	sess.AddFlash(models.FlashSuccess, msgSignupDone)
	h.redirect(w, r, "/painel")
}

func (h *Handler) courierLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageCourierLogin, loginPage{})
}

func (h *Handler) courierLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.allow(r, ratelimit.CourierLoginRule, clientIP(r)) {
		flash(r, models.FlashError, msgTooManyLogins)
		h.render(w, r, http.StatusTooManyRequests, pageCourierLogin, loginPage{})
		return
	}

	form := models.LoginForm{
		Email: r.PostFormValue("email"),
		Senha: r.PostFormValue("senha"),
	}

	motoboy, err := h.services.CourierAuthService.Login(ctx, form)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongCredentials):
			flash(r, models.FlashError, msgWrongCredentials)
		default:
			log.Err(err).Str("func", "*Handler.courierLogin").Msg("courier login failed")
			flash(r, models.FlashError, msgLoginFailed)
		}
		h.render(w, r, statusFromError(err), pageCourierLogin, loginPage{Email: form.Email})
		return
	}

	session.FromContext(ctx).LoginCourier(motoboy.ID.String())
	h.redirect(w, r, "/painel")
}

func (h *Handler) courierForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageCourierForgot, nil)
}

func (h *Handler) courierForgotPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !h.allow(r, ratelimit.PasswordResetRule, clientIP(r)) {
		flash(r, models.FlashError, msgTooManyAttempts)
		h.render(w, r, http.StatusTooManyRequests, pageCourierForgot, nil)
		return
	}

	err := h.services.CourierAuthService.RequestPasswordReset(r.Context(), r.PostFormValue("email"), h.baseURL(r))
	switch {
	case err == nil:
		flash(r, models.FlashSuccess, msgResetLinkSent)
	case errors.Is(err, service.ErrEmailNotFound):
		flash(r, models.FlashError, msgEmailNotFound)
	case errors.Is(err, service.ErrMailDelivery):
		flash(r, models.FlashError, msgMailFailed)
	default:
		log.Err(err).Str("func", "*Handler.courierForgotPassword").Msg("password reset request failed")
		flash(r, models.FlashError, msgMailFailed)
	}

	status := http.StatusOK
	if err != nil {
		status = statusFromError(err)
	}
	h.render(w, r, status, pageCourierForgot, nil)
}

func (h *Handler) courierResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if _, err := h.services.CourierAuthService.VerifyResetToken(r.Context(), token); err != nil {
		h.rejectCourierResetLink(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, pageCourierReset, resetPage{Token: token})
}

func (h *Handler) courierResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	err := h.services.CourierAuthService.ResetPassword(r.Context(), token, models.PasswordForm{Senha: r.PostFormValue("senha")})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidForm):
			flash(r, models.FlashError, formErrorMessage(err, msgPasswordChangeFailed))
			h.render(w, r, http.StatusBadRequest, pageCourierReset, resetPage{Token: token})
		default:
			h.rejectCourierResetLink(w, r, err)
		}
		return
	}

	flash(r, models.FlashSuccess, msgPasswordChanged)
	h.redirect(w, r, "/login")
}

func (h *Handler) rejectCourierResetLink(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, service.ErrInvalidResetToken) {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.rejectCourierResetLink").Msg("password reset failed")
	}
	flash(r, models.FlashError, msgInvalidResetLink)
	h.redirect(w, r, "/login")
}

func (h *Handler) courierPanel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	motoboy, err := h.services.CourierProfileService.Profile(ctx, session.FromContext(ctx).MotoboyID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			http.Redirect(w, r, "/logout", http.StatusFound)
			return
		}
		log.Err(err).Str("func", "*Handler.courierPanel").Msg("profile load failed")
		http.Error(w, msgProfileLoadFailed, statusFromError(err))
		return
	}

	h.render(w, r, http.StatusOK, pageCourierPanel, motoboy)
}

func (h *Handler) updateCourierPanel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		log.Err(err).Str("func", "*Handler.updateCourierPanel").Msg("error parsing profile form")
		flash(r, models.FlashError, msgProfileUpdateFailed)
		h.redirect(w, r, "/painel")
		return
	}

	form := models.ProfileForm{
		Nome:           r.FormValue("nome"),
		Email:          r.FormValue("email"),
		Nascimento:     r.FormValue("nascimento"),
		Sangue:         r.FormValue("sangue"),
		Alergias:       r.FormValue("alergias"),
		ContatoNome:    r.FormValue("contato_nome"),
		ContatoTel:     r.FormValue("contato_tel"),
		ContatoNome2:   r.FormValue("contato_nome2"),
		ContatoTel2:    r.FormValue("contato_tel2"),
		Plano:          r.FormValue("plano"),
		DominioProprio: r.FormValue("dominio_proprio"),
	}

	var photo *models.FileUpload
	if file, header, err := r.FormFile("foto"); err == nil {
		defer file.Close()
		if header.Filename != "" && header.Size > 0 {
			photo = &models.FileUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Content:     file,
			}
		}
	}

	err := h.services.CourierProfileService.UpdateProfile(ctx, session.FromContext(ctx).MotoboyID, form, photo)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			http.Redirect(w, r, "/logout", http.StatusFound)
			return
		case errors.Is(err, service.ErrDomainTaken):
			flash(r, models.FlashError, msgDomainTaken)
		case errors.Is(err, service.ErrEmailTaken):
			flash(r, models.FlashError, msgEmailTaken)
		case errors.Is(err, service.ErrInvalidForm):
			flash(r, models.FlashError, formErrorMessage(err, msgProfileUpdateFailed))
		default:
			log.Err(err).Str("func", "*Handler.updateCourierPanel").Msg("profile update failed")
			flash(r, models.FlashError, msgProfileUpdateFailed)
		}
		h.redirect(w, r, "/painel")
		return
	}

	flash(r, models.FlashSuccess, msgProfileUpdated)
	h.redirect(w, r, "/painel")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	session.FromContext(r.Context()).Clear()
	h.redirect(w, r, "/")
}

// baseURL is the origin used in e-mailed links.
func (h *Handler) baseURL(r *http.Request) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	return utils.BaseURL(r)
}
