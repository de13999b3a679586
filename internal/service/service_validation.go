// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/leanttro/leanttro-web/internal/validators"
	"github.com/leanttro/leanttro-web/models"
)

// CourierAuthValidationService validates the forms of CourierAuthService
// before delegating to the wrapped service. Validation failures wrap both
// ErrInvalidForm and the validators sentinel.
type CourierAuthValidationService struct {
	inner     CourierAuthService
	validator validators.Validator
}

func NewCourierAuthValidationService(validator validators.Validator) CourierAuthServiceWrapper {
	return &CourierAuthValidationService{validator: validator}
}

func (v *CourierAuthValidationService) Wrap(inner CourierAuthService) CourierAuthService {
	return &CourierAuthValidationService{inner: inner, validator: v.validator}
}

func (v *CourierAuthValidationService) Register(ctx context.Context, form models.CourierSignupForm) (models.Motoboy, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Motoboy{}, invalidForm(err)
	}
	return v.inner.Register(ctx, form)
}

func (v *CourierAuthValidationService) Login(ctx context.Context, form models.LoginForm) (models.Motoboy, error) {
	// malformed credentials are reported like wrong ones
	if err := v.validator.Validate(ctx, form, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.Motoboy{}, ErrWrongCredentials
	}
	return v.inner.Login(ctx, form)
}

func (v *CourierAuthValidationService) RequestPasswordReset(ctx context.Context, email, baseURL string) error {
	return v.inner.RequestPasswordReset(ctx, email, baseURL)
}

func (v *CourierAuthValidationService) VerifyResetToken(ctx context.Context, token string) (string, error) {
	return v.inner.VerifyResetToken(ctx, token)
}

// ResetPassword checks the link before the form, so an expired link is
// reported as such whatever password was typed.
func (v *CourierAuthValidationService) ResetPassword(ctx context.Context, token string, form models.PasswordForm) error {
	if _, err := v.inner.VerifyResetToken(ctx, token); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, form); err != nil {
		return invalidForm(err)
	}
	return v.inner.ResetPassword(ctx, token, form)
}

// CourierProfileValidationService validates the panel form.
type CourierProfileValidationService struct {
	inner     CourierProfileService
	validator validators.Validator
}

func NewCourierProfileValidationService(validator validators.Validator) CourierProfileServiceWrapper {
	return &CourierProfileValidationService{validator: validator}
}

func (v *CourierProfileValidationService) Wrap(inner CourierProfileService) CourierProfileService {
	return &CourierProfileValidationService{inner: inner, validator: v.validator}
}

func (v *CourierProfileValidationService) Profile(ctx context.Context, id string) (models.Motoboy, error) {
	return v.inner.Profile(ctx, id)
}

func (v *CourierProfileValidationService) UpdateProfile(ctx context.Context, id string, form models.ProfileForm, photo *models.FileUpload) error {
	normalized := form
	normalized.DominioProprio = normalizeDomain(form.DominioProprio)
	if err := v.validator.Validate(ctx, normalized); err != nil {
		return invalidForm(err)
	}
	return v.inner.UpdateProfile(ctx, id, form, photo)
}

// StoreAdminValidationService validates the store signup and new-password
// forms.
type StoreAdminValidationService struct {
	inner     StoreAdminService
	validator validators.Validator
}

func NewStoreAdminValidationService(validator validators.Validator) StoreAdminServiceWrapper {
	return &StoreAdminValidationService{validator: validator}
}

func (v *StoreAdminValidationService) Wrap(inner StoreAdminService) StoreAdminService {
	return &StoreAdminValidationService{inner: inner, validator: v.validator}
}

func (v *StoreAdminValidationService) Register(ctx context.Context, form models.StoreSignupForm) (models.Loja, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Loja{}, invalidForm(err)
	}
	return v.inner.Register(ctx, form)
}

func (v *StoreAdminValidationService) Store(ctx context.Context, slug string) (models.Loja, error) {
	return v.inner.Store(ctx, slug)
}

func (v *StoreAdminValidationService) Login(ctx context.Context, slug, password string) (models.Loja, error) {
	if password == "" {
		return models.Loja{}, ErrWrongCredentials
	}
	return v.inner.Login(ctx, slug, password)
}

func (v *StoreAdminValidationService) Dashboard(ctx context.Context, slug string) (models.StoreDashboard, error) {
	return v.inner.Dashboard(ctx, slug)
}

func (v *StoreAdminValidationService) RequestPasswordReset(ctx context.Context, slug, email, baseURL string) error {
	return v.inner.RequestPasswordReset(ctx, slug, email, baseURL)
}

func (v *StoreAdminValidationService) VerifyResetToken(ctx context.Context, slug, token string) (models.Loja, error) {
	return v.inner.VerifyResetToken(ctx, slug, token)
}

func (v *StoreAdminValidationService) ResetPassword(ctx context.Context, slug, token string, form models.PasswordForm) error {
	if _, err := v.inner.VerifyResetToken(ctx, slug, token); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, form); err != nil {
		return invalidForm(err)
	}
	return v.inner.ResetPassword(ctx, slug, token, form)
}

func invalidForm(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidForm, err)
}
