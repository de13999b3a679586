// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/leanttro/leanttro-web/internal/config"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/mock"
	"github.com/leanttro/leanttro-web/internal/ratelimit"
	"github.com/leanttro/leanttro-web/internal/service"
	"github.com/leanttro/leanttro-web/internal/session"
	"github.com/leanttro/leanttro-web/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSecret   = "test-secret"
	testClientIP = "192.0.2.1"
)

type serviceMocks struct {
	tenant         *mock.MockTenantService
	courierAuth    *mock.MockCourierAuthService
	courierProfile *mock.MockCourierProfileService
	storefront     *mock.MockStorefrontService
	storeAdmin     *mock.MockStoreAdminService
	appInfo        *mock.MockAppInfoService
	limiter        *mock.MockLimiter
}

type testOption func(*config.StructuredConfig, *Guards)

func withPublicBaseURL(u string) testOption {
	return func(cfg *config.StructuredConfig, _ *Guards) { cfg.App.PublicBaseURL = u }
}

func withLimiter(l ratelimit.Limiter) testOption {
	return func(_ *config.StructuredConfig, g *Guards) { g.Limiter = l }
}

func withBurst(b *ratelimit.BurstGuard) testOption {
	return func(_ *config.StructuredConfig, g *Guards) { g.Burst = b }
}

// newTestHandler builds a Handler over gomock services. The limiter is a
// mock unless replaced through withLimiter.
func newTestHandler(t *testing.T, opts ...testOption) (*Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		tenant:         mock.NewMockTenantService(ctrl),
		courierAuth:    mock.NewMockCourierAuthService(ctrl),
		courierProfile: mock.NewMockCourierProfileService(ctrl),
		storefront:     mock.NewMockStorefrontService(ctrl),
		storeAdmin:     mock.NewMockStoreAdminService(ctrl),
		appInfo:        mock.NewMockAppInfoService(ctrl),
		limiter:        mock.NewMockLimiter(ctrl),
	}

	cfg := config.StructuredConfig{}
	guards := Guards{Limiter: m.limiter}
	for _, opt := range opts {
		opt(&cfg, &guards)
	}

	services := &service.Services{
		TenantService:         m.tenant,
		CourierAuthService:    m.courierAuth,
		CourierProfileService: m.courierProfile,
		StorefrontService:     m.storefront,
		StoreAdminService:     m.storeAdmin,
		AppInfoService:        m.appInfo,
	}

	return NewHandler(services, session.NewManager(testSecret, time.Hour), guards, cfg, logger.Nop()), m
}

// systemHost makes every request resolve to a system domain.
func (m serviceMocks) systemHost() serviceMocks {
	m.tenant.EXPECT().ResolveHost(gomock.Any(), gomock.Any()).
		Return(models.Tenant{Kind: models.TenantSystem, Host: "example.com"}, nil).AnyTimes()
	return m
}

// allowAll lets every rate-limited request through.
func (m serviceMocks) allowAll() serviceMocks {
	m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	return m
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// withSessionCookie attaches a signed cookie carrying s to req.
func withSessionCookie(t *testing.T, h *Handler, req *http.Request, s *session.Session) *http.Request {
	t.Helper()

	rr := httptest.NewRecorder()
	require.NoError(t, h.sessions.Save(rr, req, s))
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// responseSession decodes the session cookie set by a response. A response
// that set no cookie yields an empty session.
func responseSession(h *Handler, rr *httptest.ResponseRecorder) *session.Session {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return h.sessions.Load(req)
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
