package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/leanttro/leanttro-web/internal/adapter"
	"github.com/leanttro/leanttro-web/internal/config"
	"github.com/leanttro/leanttro-web/internal/crypto"
	"github.com/leanttro/leanttro-web/internal/handler"
	"github.com/leanttro/leanttro-web/internal/handler/http"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/mailer"
	"github.com/leanttro/leanttro-web/internal/ratelimit"
	"github.com/leanttro/leanttro-web/internal/server"
	"github.com/leanttro/leanttro-web/internal/service"
	"github.com/leanttro/leanttro-web/internal/session"
	"github.com/leanttro/leanttro-web/internal/store"
	"github.com/leanttro/leanttro-web/internal/validators"
	"github.com/leanttro/leanttro-web/internal/workers"
	"github.com/leanttro/leanttro-web/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("leanttro-web", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("leanttro-web", cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("backend", cfg.Backend.URL).Msg("received configs")

	backend, err := adapter.NewDirectusAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}
	repositories := store.NewRepositories(backend, log)

	var mail mailer.Mailer
	if cfg.Mail.Enabled() {
		mail = mailer.NewMailer(cfg.Mail, log)
	} else {
		log.Warn().Msg("mail is not configured, messages will only be logged")
		mail = mailer.NewNop(log)
	}

	services, err := service.NewServices(service.Dependencies{
		Repositories: repositories,
		Hasher:       crypto.NewPasswordHasher(),
		ResetTokens:  session.NewResetTokens(cfg.App.SecretKey, cfg.App.ResetTokenDuration),
		Mailer:       mail,
		Validator:    validators.NewFormValidator(),
		BuildInfo:    models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	burst := ratelimit.NewBurstGuard(ratelimit.DefaultBurstRate, ratelimit.DefaultBurstSize)
	sweepers := []ratelimit.Sweeper{burst}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.RedisAddress != "" {
		redisLimiter, err := ratelimit.NewRedisLimiter(ctx, cfg.RateLimit)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to rate limit redis")
		}
		defer redisLimiter.Close()
		limiter = redisLimiter
	} else {
		memoryLimiter := ratelimit.NewMemoryLimiter()
		sweepers = append(sweepers, memoryLimiter)
		limiter = memoryLimiter
	}

	handlers, err := handler.NewHandlers(
		services,
		session.NewManager(cfg.App.SecretKey, cfg.App.SessionDuration),
		http.Guards{Limiter: limiter, Burst: burst},
		*cfg,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ws := workers.NewWorkers(workers.NewLimiterJanitor(workers.DefaultJanitorInterval, log, sweepers...))
	go ws.Run(ctx)

	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
