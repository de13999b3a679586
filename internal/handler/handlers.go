package handler

import (
	"github.com/leanttro/leanttro-web/internal/config"
	"github.com/leanttro/leanttro-web/internal/handler/http"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/service"
	"github.com/leanttro/leanttro-web/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, guards http.Guards, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, sessions, guards, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
