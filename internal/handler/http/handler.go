package http

import (
	"strings"
	"time"

	"github.com/leanttro/leanttro-web/internal/config"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/ratelimit"
	"github.com/leanttro/leanttro-web/internal/service"
	"github.com/leanttro/leanttro-web/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	limiter  ratelimit.Limiter
	burst    *ratelimit.BurstGuard
	pages    *pages

	publicBaseURL  string
	requestTimeout time.Duration

	logger *logger.Logger
}

// Guards bundles the optional request guards. A nil Limiter or BurstGuard
// disables the corresponding check.
type Guards struct {
	Limiter ratelimit.Limiter
	Burst   *ratelimit.BurstGuard
}

func NewHandler(services *service.Services, sessions *session.Manager, guards Guards, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		limiter:        guards.Limiter,
		burst:          guards.Burst,
		pages:          mustParsePages(),
		publicBaseURL:  strings.TrimRight(cfg.App.PublicBaseURL, "/"),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
