package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/leanttro/leanttro-web/internal/ratelimit"
	"github.com/leanttro/leanttro-web/internal/service"
	"github.com/leanttro/leanttro-web/internal/session"
	"github.com/leanttro/leanttro-web/internal/validators"
	"github.com/leanttro/leanttro-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func signupValues() url.Values {
	return url.Values{
		"slug":  {"joao"},
		"nome":  {"João Motoca"},
		"email": {"joao@example.com"},
		"senha": {"segredo1"},
	}
}

// ─────────────────────────────────────────────
// GET /
// ─────────────────────────────────────────────

func TestHome_Landing(t *testing.T) {
	h, m := newTestHandler(t)
	m.systemHost()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/cadastro"`)
}

func TestHome_LoggedInCourierGoesToPanel(t *testing.T) {
	h, m := newTestHandler(t)
	m.systemHost()
	req := withSessionCookie(t, h, httptest.NewRequest(http.MethodGet, "/", nil), &session.Session{MotoboyID: "7"})

	rec := serve(h, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/painel", rec.Header().Get("Location"))
}

func TestHome_TamperedCookieIsIgnored(t *testing.T) {
	h, m := newTestHandler(t)
	m.systemHost()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not.a.jwt"})

	rec := serve(h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// /cadastro
// ─────────────────────────────────────────────

func TestCourierSignupPage_PrefillsCode(t *testing.T) {
	h, m := newTestHandler(t)
	m.systemHost()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/cadastro?codigo=mb-042", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="mb-042"`)
}

func TestCourierSignup_Success(t *testing.T) {
	// Arrange
	h, m := newTestHandler(t)
	m.systemHost().allowAll()
	m.courierAuth.EXPECT().Register(gomock.Any(), models.CourierSignupForm{
		Slug: "joao", Nome: "João Motoca", Email: "joao@example.com", Senha: "segredo1",
	}).Return(models.Motoboy{ID: "42", Slug: "joao"}, nil)

	// Act
	rec := serve(h, postForm("/cadastro", signupValues()))

	// Assert
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/painel", rec.Header().Get("Location"))
	sess := responseSession(h, rec)
	assert.Equal(t, "42", sess.MotoboyID)
	require.Len(t, sess.Flashes, 1)
	assert.Equal(t, models.Flash{Category: models.FlashSuccess, Message: msgSignupDone}, sess.Flashes[0])
}

func TestCourierSignup_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"duplicate slug", service.ErrSlugTaken, http.StatusConflict, "Este código de adesivo já está em uso!"},
		{"duplicate email", service.ErrEmailTaken, http.StatusConflict, "Este e-mail já está cadastrado!"},
		{"weak password", fmt.Errorf("%w: %w", service.ErrInvalidForm, validators.ErrWeakPassword), http.StatusBadRequest, "A senha deve ter pelo menos 6 caracteres"},
		{"backend failure", errors.New("boom"), http.StatusInternalServerError, msgSignupFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.systemHost().allowAll()
			m.courierAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Motoboy{}, tt.err)

			rec := serve(h, postForm("/cadastro", signupValues()))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.wantMessage)
			assert.Contains(t, body, `value="joao"`, "form keeps the typed code")
			assert.Empty(t, responseSession(h, rec).MotoboyID)
		})
	}
}

func TestCourierSignup_EleventhAttemptFromSameIPIsRefused(t *testing.T) {
	h, m := newTestHandler(t, withLimiter(ratelimit.NewMemoryLimiter()))
	m.systemHost()
	m.courierAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Motoboy{}, service.ErrSlugTaken).Times(10)

	for i := 0; i < 10; i++ {
		rec := serve(h, postForm("/cadastro", signupValues()))
		require.Equal(t, http.StatusConflict, rec.Code, "attempt %d", i+1)
	}

	rec := serve(h, postForm("/cadastro", signupValues()))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	sess := responseSession(h, rec)
	require.Len(t, sess.Flashes, 1)
	assert.Equal(t, msgTooManyAttempts, sess.Flashes[0].Message)

	other := postForm("/cadastro", signupValues())
	other.Header.Set("X-Forwarded-For", "203.0.113.50")
	m.courierAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Motoboy{ID: "1"}, nil)
	assert.Equal(t, "/painel", serve(h, other).Header().Get("Location"))
}

func TestCourierSignup_LimiterKey(t *testing.T) {
	h, m := newTestHandler(t)
	m.systemHost()
	m.limiter.EXPECT().Allow(gomock.Any(), "cad_"+testClientIP, 10, ratelimit.CourierSignupRule.Period).Return(true, nil)
	m.courierAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Motoboy{ID: "1"}, nil)

	rec := serve(h, postForm("/cadastro", signupValues()))

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestCourierSignup_LimiterFailureFailsOpen(t *testing.T) {
	h, m := newTestHandler(t)
	m.systemHost()
	m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	m.courierAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Motoboy{ID: "1"}, nil)

	rec := serve(h, postForm("/cadastro", signupValues()))

	assert.Equal(t, "/painel", rec.Header().Get("Location"))
}

// ─────────────────────────────────────────────
// /login
// ─────────────────────────────────────────────

func TestCourierLogin(t *testing.T) {
	tests := []struct {
		name         string
		allowed      bool
		loginErr     error
		wantStatus   int
		wantLocation string
		wantBody     string
		wantSession  string
	}{
		{name: "success", allowed: true, wantStatus: http.StatusFound, wantLocation: "/painel", wantSession: "7"},
		{name: "wrong credentials", allowed: true, loginErr: service.ErrWrongCredentials, wantStatus: http.StatusUnauthorized, wantBody: "E-mail ou senha incorretos."},
		{name: "backend failure", allowed: true, loginErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantBody: msgLoginFailed},
		{name: "rate limited", allowed: false, wantStatus: http.StatusTooManyRequests, wantBody: "Muitas tentativas. Aguarde."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.systemHost()
			m.limiter.EXPECT().Allow(gomock.Any(), "login_"+testClientIP, 10, ratelimit.CourierLoginRule.Period).Return(tt.allowed, nil)
			if tt.allowed {
				m.courierAuth.EXPECT().Login(gomock.Any(), models.LoginForm{Email: "joao@example.com", Senha: "segredo1"}).
					Return(models.Motoboy{ID: "7"}, tt.loginErr)
			}

			rec := serve(h, postForm("/login", url.Values{"email": {"joao@example.com"}, "senha": {"segredo1"}}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, tt.wantSession, responseSession(h, rec).MotoboyID)
		})
	}
}

// ─────────────────────────────────────────────
// /esqueceu-senha
// ─────────────────────────────────────────────

func TestCourierForgotPassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"link sent", nil, http.StatusOK, "Link de recuperação enviado para seu e-mail."},
		{"unknown email", service.ErrEmailNotFound, http.StatusNotFound, "E-mail não encontrado no sistema."},
		{"mail failure", service.ErrMailDelivery, http.StatusBadGateway, "Erro ao enviar e-mail. Tente novamente."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.systemHost()
			m.limiter.EXPECT().Allow(gomock.Any(), "reset_"+testClientIP, 5, ratelimit.PasswordResetRule.Period).Return(true, nil)
			m.courierAuth.EXPECT().RequestPasswordReset(gomock.Any(), "joao@example.com", "http://example.com").Return(tt.err)

			rec := serve(h, postForm("/esqueceu-senha", url.Values{"email": {"joao@example.com"}}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestCourierForgotPassword_UsesPublicBaseURL(t *testing.T) {
	h, m := newTestHandler(t, withPublicBaseURL("https://sos.leanttro.com/"))
	m.systemHost().allowAll()
	m.courierAuth.EXPECT().RequestPasswordReset(gomock.Any(), "joao@example.com", "https://sos.leanttro.com").Return(nil)

	rec := serve(h, postForm("/esqueceu-senha", url.Values{"email": {"joao@example.com"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// /redefinir-senha/{token}
// ─────────────────────────────────────────────

func TestCourierResetPasswordPage(t *testing.T) {
	t.Run("valid token renders the form", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.systemHost()
		m.courierAuth.EXPECT().VerifyResetToken(gomock.Any(), "tok").Return("joao@example.com", nil)

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/redefinir-senha/tok", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `action="/redefinir-senha/tok"`)
	})

	t.Run("expired token redirects to login", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.systemHost()
		m.courierAuth.EXPECT().VerifyResetToken(gomock.Any(), "old").Return("", service.ErrInvalidResetToken)

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/redefinir-senha/old", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		sess := responseSession(h, rec)
		require.Len(t, sess.Flashes, 1)
		assert.Equal(t, models.Flash{Category: models.FlashError, Message: "Link inválido ou expirado."}, sess.Flashes[0])
	})
}

func TestCourierResetPassword(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantLocation string
		wantFlash    string
	}{
		{"password changed", nil, http.StatusFound, "/login", msgPasswordChanged},
		{"tampered token", service.ErrInvalidResetToken, http.StatusFound, "/login", msgInvalidResetLink},
		{"weak password", fmt.Errorf("%w: %w", service.ErrInvalidForm, validators.ErrWeakPassword), http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.systemHost()
			m.courierAuth.EXPECT().ResetPassword(gomock.Any(), "tok", models.PasswordForm{Senha: "novaSenha1"}).Return(tt.err)

			rec := serve(h, postForm("/redefinir-senha/tok", url.Values{"senha": {"novaSenha1"}}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			if tt.wantFlash != "" {
				sess := responseSession(h, rec)
				require.Len(t, sess.Flashes, 1)
				assert.Equal(t, tt.wantFlash, sess.Flashes[0].Message)
			}
		})
	}
}

func TestCourierResetPassword_ExpiredLinkWithShortPassword(t *testing.T) {
	// Arrange
	h, m := newTestHandler(t)
	m.systemHost()
	m.courierAuth.EXPECT().ResetPassword(gomock.Any(), "expired", models.PasswordForm{Senha: "1"}).Return(service.ErrInvalidResetToken)

	// Act
	rec := serve(h, postForm("/redefinir-senha/expired", url.Values{"senha": {"1"}}))

	// Assert
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	sess := responseSession(h, rec)
	require.Len(t, sess.Flashes, 1)
	assert.Equal(t, models.Flash{Category: models.FlashError, Message: msgInvalidResetLink}, sess.Flashes[0])
}

// ─────────────────────────────────────────────
// /painel
// ─────────────────────────────────────────────

func TestCourierPanel_RequiresSession(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.systemHost()

			rec := serve(h, httptest.NewRequest(method, "/painel", nil))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}
}

func TestCourierPanel_RendersProfile(t *testing.T) {
	h, m := newTestHandler(t)
	m.systemHost()
	m.courierProfile.EXPECT().Profile(gomock.Any(), "7").
		Return(models.Motoboy{ID: "7", Slug: "joao", NomeCompleto: "João Motoca", DominioProprio: "joao.com.br"}, nil)
	req := withSessionCookie(t, h, httptest.NewRequest(http.MethodGet, "/painel", nil), &session.Session{MotoboyID: "7"})

	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "João Motoca")
	assert.Contains(t, rec.Body.String(), `value="joao.com.br"`)
}

func TestCourierPanel_MissingProfileLogsOut(t *testing.T) {
	h, m := newTestHandler(t)
	m.systemHost()
	m.courierProfile.EXPECT().Profile(gomock.Any(), "7").Return(models.Motoboy{}, service.ErrProfileNotFound)
	req := withSessionCookie(t, h, httptest.NewRequest(http.MethodGet, "/painel", nil), &session.Session{MotoboyID: "7"})

	rec := serve(h, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/logout", rec.Header().Get("Location"))
}

func multipartProfile(t *testing.T, withPhoto bool) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"nome":            "João Motoca",
		"email":           "joao@example.com",
		"nascimento":      "1990-05-20",
		"sangue":          "O+",
		"contato_tel":     "(11) 98888-7777",
		"dominio_proprio": "https://joao.com.br/",
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withPhoto {
		part, err := mw.CreateFormFile("foto", "rosto.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestUpdateCourierPanel_WithPhoto(t *testing.T) {
	// Arrange
	h, m := newTestHandler(t)
	m.systemHost()
	m.courierProfile.EXPECT().UpdateProfile(gomock.Any(), "7", gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ any, _ string, form models.ProfileForm, photo *models.FileUpload) error {
			assert.Equal(t, "João Motoca", form.Nome)
			assert.Equal(t, "(11) 98888-7777", form.ContatoTel)
			assert.Equal(t, "https://joao.com.br/", form.DominioProprio)
			assert.Equal(t, "rosto.jpg", photo.Filename)
			content, err := io.ReadAll(photo.Content)
			assert.NoError(t, err)
			assert.Equal(t, "jpeg-bytes", string(content))
			return nil
		})

	body, contentType := multipartProfile(t, true)
	req := httptest.NewRequest(http.MethodPost, "/painel", body)
	req.Header.Set("Content-Type", contentType)
	req = withSessionCookie(t, h, req, &session.Session{MotoboyID: "7"})

	// Act
	rec := serve(h, req)

	// Assert
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/painel", rec.Header().Get("Location"))
	sess := responseSession(h, rec)
	assert.Equal(t, "7", sess.MotoboyID)
	require.Len(t, sess.Flashes, 1)
	assert.Equal(t, "Dados atualizados com sucesso!", sess.Flashes[0].Message)
}

func TestUpdateCourierPanel_Errors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantLocation string
		wantFlash    string
	}{
		{"domain owned by another courier", service.ErrDomainTaken, "/painel", msgDomainTaken},
		{"e-mail owned by another courier", service.ErrEmailTaken, "/painel", msgEmailTaken},
		{"invalid birth date", fmt.Errorf("%w: %w", service.ErrInvalidForm, validators.ErrInvalidBirthDate), "/painel", "Data de nascimento inválida."},
		{"backend failure", errors.New("boom"), "/painel", msgProfileUpdateFailed},
		{"profile gone", service.ErrProfileNotFound, "/logout", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.systemHost()
			m.courierProfile.EXPECT().UpdateProfile(gomock.Any(), "7", gomock.Any(), gomock.Nil()).Return(tt.err)

			body, contentType := multipartProfile(t, false)
			req := httptest.NewRequest(http.MethodPost, "/painel", body)
			req.Header.Set("Content-Type", contentType)
			req = withSessionCookie(t, h, req, &session.Session{MotoboyID: "7"})

			rec := serve(h, req)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			if tt.wantFlash != "" {
				sess := responseSession(h, rec)
				require.Len(t, sess.Flashes, 1)
				assert.Equal(t, tt.wantFlash, sess.Flashes[0].Message)
			}
		})
	}
}

// ─────────────────────────────────────────────
// /logout
// ─────────────────────────────────────────────

func TestLogout_ClearsSession(t *testing.T) {
	h, m := newTestHandler(t)
	m.systemHost()
	req := withSessionCookie(t, h, httptest.NewRequest(http.MethodGet, "/logout", nil), &session.Session{MotoboyID: "7", AdminOf: []string{"docesabor"}})

	rec := serve(h, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
