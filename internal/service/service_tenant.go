// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leanttro/leanttro-web/internal/config"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/store"
	"github.com/leanttro/leanttro-web/internal/utils"
	"github.com/leanttro/leanttro-web/internal/validators"
	"github.com/leanttro/leanttro-web/models"
)

// ignoredSlugs are well-known files that browsers and crawlers request at
// the root and that must never be looked up in the backend.
var ignoredSlugs = map[string]struct{}{
	"favicon.ico": {},
	"static":      {},
	"robots.txt":  {},
	"sitemap.xml": {},
}

type tenantService struct {
	motoboyRepository store.MotoboyRepository
	lojaRepository    store.LojaRepository
	files             store.FileStorage

	systemDomains []string
	now           func() time.Time

	logger *logger.Logger
}

// NewTenantService constructs a TenantService for the system domains of cfg.
func NewTenantService(repositories *store.Repositories, cfg config.App, logger *logger.Logger) TenantService {
	domains := make([]string, 0, len(cfg.SystemDomains))
	for _, d := range cfg.SystemDomains {
		if d = utils.NormalizeHost(d); d != "" {
			domains = append(domains, d)
		}
	}

	return &tenantService{
		motoboyRepository: repositories.MotoboyRepository,
		lojaRepository:    repositories.LojaRepository,
		files:             repositories.FileStorage,
		systemDomains:     domains,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *tenantService) ResolveHost(ctx context.Context, host string) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	host = utils.NormalizeHost(host)
	tenant := models.Tenant{Kind: models.TenantSystem, Host: host}

	if host == "" || s.isSystemDomain(host) {
		return tenant, nil
	}

	motoboy, err := s.motoboyRepository.FindByDomain(ctx, host)
	if err != nil {
		if !errors.Is(err, store.ErrMotoboyNotFound) {
			log.Err(err).Str("func", "*tenantService.ResolveHost").Str("host", host).Msg("custom domain lookup failed, serving as system domain")
		}
		return tenant, nil
	}

	decorateMotoboy(&motoboy, s.files, s.now())
	tenant.Kind = models.TenantCustomDomain
	tenant.Motoboy = &motoboy

	return tenant, nil
}

// isSystemDomain matches host against the system domains exactly or as a
// subdomain ("www.sos.leanttro.com" belongs to "sos.leanttro.com").
func (s *tenantService) isSystemDomain(host string) bool {
	for _, d := range s.systemDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

func (s *tenantService) ResolveSlug(ctx context.Context, slug string) (models.SlugResolution, error) {
	log := logger.FromContext(ctx)

	slug = validators.NormalizeSlug(slug)
	resolution := models.SlugResolution{Kind: models.SlugUnknown, Slug: slug}

	if _, ok := ignoredSlugs[slug]; ok || slug == "" {
		resolution.Kind = models.SlugIgnored
		return resolution, nil
	}

	motoboy, err := s.motoboyRepository.FindBySlug(ctx, slug)
	switch {
	case err == nil:
		decorateMotoboy(&motoboy, s.files, s.now())
		resolution.Kind = models.SlugMotoboy
		resolution.Motoboy = &motoboy
		return resolution, nil
	case !errors.Is(err, store.ErrMotoboyNotFound):
		log.Err(err).Str("func", "*tenantService.ResolveSlug").Str("slug", slug).Msg("courier lookup failed, trying stores")
	}

	loja, err := s.lojaRepository.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrLojaNotFound) {
			return resolution, nil
		}
		log.Err(err).Str("func", "*tenantService.ResolveSlug").Str("slug", slug).Msg("store lookup failed")
		return models.SlugResolution{}, fmt.Errorf("store lookup for slug %q: %w", slug, err)
	}

	decorateLoja(&loja, s.files)
	resolution.Kind = models.SlugLoja
	resolution.Loja = &loja

	return resolution, nil
}
