package service

import (
	"fmt"

	"github.com/leanttro/leanttro-web/internal/config"
	"github.com/leanttro/leanttro-web/internal/crypto"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/mailer"
	"github.com/leanttro/leanttro-web/internal/store"
	"github.com/leanttro/leanttro-web/internal/validators"
	"github.com/leanttro/leanttro-web/models"
)

type Services struct {
	TenantService         TenantService
	CourierAuthService    CourierAuthService
	CourierProfileService CourierProfileService
	StorefrontService     StorefrontService
	StoreAdminService     StoreAdminService
	AppInfoService        AppInfoService
}

// Dependencies are the collaborators shared by the services.
type Dependencies struct {
	Repositories *store.Repositories
	Hasher       crypto.PasswordHasher
	ResetTokens  ResetTokenIssuer
	Mailer       mailer.Mailer
	Validator    validators.Validator
	BuildInfo    models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, deps.BuildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	courierAuth := NewCourierAuthValidationService(deps.Validator).
		Wrap(NewCourierAuthService(deps.Repositories, deps.Hasher, deps.ResetTokens, deps.Mailer, logger))
	courierProfile := NewCourierProfileValidationService(deps.Validator).
		Wrap(NewCourierProfileService(deps.Repositories, cfg.App.SystemDomains, logger))
	storeAdmin := NewStoreAdminValidationService(deps.Validator).
		Wrap(NewStoreAdminService(deps.Repositories, deps.Hasher, deps.ResetTokens, deps.Mailer, logger))

	return &Services{
		TenantService:         NewTenantService(deps.Repositories, cfg.App, logger),
		CourierAuthService:    courierAuth,
		CourierProfileService: courierProfile,
		StorefrontService:     NewStorefrontService(deps.Repositories, logger),
		StoreAdminService:     storeAdmin,
		AppInfoService:        appInfoService,
	}, nil
}
