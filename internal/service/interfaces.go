// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the courier SOS profiles and
// the storefronts: tenant resolution, slug dispatch, account flows and page
// assembly. Services talk to the backend only through the store package.
package service

import (
	"context"

	"github.com/leanttro/leanttro-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CourierAuthServiceWrapper,CourierProfileServiceWrapper,StoreAdminServiceWrapper

// TenantService classifies incoming requests.
type TenantService interface {
	// ResolveHost classifies the request host. A system domain (or any of its
	// subdomains) is TenantSystem. Any other host is looked up as a courier's
	// personal domain; when nobody claimed it, or the lookup fails, the host
	// is treated as TenantSystem as well.
	ResolveHost(ctx context.Context, host string) (models.Tenant, error)

	// ResolveSlug decides what the top-level path segment refers to. A
	// courier wins over a store with the same slug.
	ResolveSlug(ctx context.Context, slug string) (models.SlugResolution, error)
}

// CourierAuthService covers signup, login and password recovery of couriers.
type CourierAuthService interface {
	Register(ctx context.Context, form models.CourierSignupForm) (models.Motoboy, error)
	Login(ctx context.Context, form models.LoginForm) (models.Motoboy, error)
	// RequestPasswordReset e-mails a reset link rooted at baseURL.
	RequestPasswordReset(ctx context.Context, email, baseURL string) error
	// VerifyResetToken returns the e-mail the token was issued for.
	VerifyResetToken(ctx context.Context, token string) (string, error)
	ResetPassword(ctx context.Context, token string, form models.PasswordForm) error
}

// CourierProfileService reads and edits the courier's SOS profile.
type CourierProfileService interface {
	// Profile returns the courier with FotoURL and Idade filled in.
	Profile(ctx context.Context, id string) (models.Motoboy, error)
	// UpdateProfile saves the panel form. photo may be nil.
	UpdateProfile(ctx context.Context, id string, form models.ProfileForm, photo *models.FileUpload) error
}

// StorefrontService assembles the public store page.
type StorefrontService interface {
	// Storefront loads the store by slug and assembles its page.
	Storefront(ctx context.Context, slug, categoria string) (models.Storefront, error)
	// StorefrontFor assembles the page of an already loaded store.
	StorefrontFor(ctx context.Context, loja models.Loja, categoria string) (models.Storefront, error)
}

// StoreAdminService covers signup, login, dashboard and password recovery
// of store owners.
type StoreAdminService interface {
	Register(ctx context.Context, form models.StoreSignupForm) (models.Loja, error)
	// Store returns the store with its branding URLs.
	Store(ctx context.Context, slug string) (models.Loja, error)
	Login(ctx context.Context, slug, password string) (models.Loja, error)
	Dashboard(ctx context.Context, slug string) (models.StoreDashboard, error)
	RequestPasswordReset(ctx context.Context, slug, email, baseURL string) error
	// VerifyResetToken returns the store the token was issued for.
	VerifyResetToken(ctx context.Context, slug, token string) (models.Loja, error)
	ResetPassword(ctx context.Context, slug, token string, form models.PasswordForm) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CourierAuthServiceWrapper defines middleware composition for
// CourierAuthService, e.g. form validation.
type CourierAuthServiceWrapper interface {
	Wrap(CourierAuthService) CourierAuthService
}

// CourierProfileServiceWrapper defines middleware composition for
// CourierProfileService.
type CourierProfileServiceWrapper interface {
	Wrap(CourierProfileService) CourierProfileService
}

// StoreAdminServiceWrapper defines middleware composition for
// StoreAdminService.
type StoreAdminServiceWrapper interface {
	Wrap(StoreAdminService) StoreAdminService
}
