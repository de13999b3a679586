// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leanttro/leanttro-web/internal/crypto"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/mailer"
	"github.com/leanttro/leanttro-web/internal/store"
	"github.com/leanttro/leanttro-web/internal/validators"
	"github.com/leanttro/leanttro-web/models"
)

// courierAuthService is the concrete implementation of CourierAuthService.
// Passwords are hashed with the injected PasswordHasher; reset links carry
// a signed token whose subject is the account e-mail.
type courierAuthService struct {
	motoboyRepository store.MotoboyRepository
	lojaRepository    store.LojaRepository

	hasher crypto.PasswordHasher
	tokens ResetTokenIssuer
	mailer mailer.Mailer

	logger *logger.Logger
}

// NewCourierAuthService constructs a CourierAuthService.
func NewCourierAuthService(
	repositories *store.Repositories,
	hasher crypto.PasswordHasher,
	tokens ResetTokenIssuer,
	mailer mailer.Mailer,
	logger *logger.Logger,
) CourierAuthService {
	return &courierAuthService{
		motoboyRepository: repositories.MotoboyRepository,
		lojaRepository:    repositories.LojaRepository,
		hasher:            hasher,
		tokens:            tokens,
		mailer:            mailer,
		logger:            logger,
	}
}

// Register creates a courier profile.
//
// The slug must not be used by another courier nor by a store, since the
// courier would shadow the store's public page. Returns ErrSlugTaken,
// ErrEmailTaken or a wrapped backend error.
func (c *courierAuthService) Register(ctx context.Context, form models.CourierSignupForm) (models.Motoboy, error) {
	log := logger.FromContext(ctx)

	slug := validators.NormalizeSlug(form.Slug)
	email := normalizeEmail(form.Email)

	if err := c.ensureSlugFree(ctx, slug); err != nil {
		return models.Motoboy{}, err
	}

	_, err := c.motoboyRepository.FindByEmail(ctx, email)
	if err == nil {
		return models.Motoboy{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrMotoboyNotFound) {
		return models.Motoboy{}, fmt.Errorf("e-mail availability check failed: %w", err)
	}

	hash, err := c.hasher.Hash(form.Senha)
	if err != nil {
		log.Err(err).Str("func", "*courierAuthService.Register").Msg("password hashing failed")
		return models.Motoboy{}, fmt.Errorf("password hashing failed: %w", err)
	}

	motoboy, err := c.motoboyRepository.Create(ctx, models.NewMotoboy{
		Status:       models.StatusPublished,
		Slug:         slug,
		NomeCompleto: strings.TrimSpace(form.Nome),
		Email:        email,
		Senha:        hash,
	})
	if err != nil {
		log.Err(err).Str("func", "*courierAuthService.Register").Str("slug", slug).Msg("courier creation ended with error")
		return models.Motoboy{}, fmt.Errorf("courier creation ended with error: %w", err)
	}

	if motoboy.ID.IsZero() {
		// backend did not echo the item
		if motoboy, err = c.motoboyRepository.FindBySlug(ctx, slug); err != nil {
			return models.Motoboy{}, fmt.Errorf("reading back created courier: %w", err)
		}
	}

	log.Info().Str("slug", slug).Str("id", motoboy.ID.String()).Msg("courier registered")
	return motoboy, nil
}

func (c *courierAuthService) ensureSlugFree(ctx context.Context, slug string) error {
	_, err := c.motoboyRepository.FindBySlug(ctx, slug)
	if err == nil {
		return ErrSlugTaken
	}
	if !errors.Is(err, store.ErrMotoboyNotFound) {
		return fmt.Errorf("slug availability check failed: %w", err)
	}

	_, err = c.lojaRepository.FindBySlug(ctx, slug)
	if err == nil {
		return ErrSlugTaken
	}
	if !errors.Is(err, store.ErrLojaNotFound) {
		return fmt.Errorf("slug availability check failed: %w", err)
	}

	return nil
}

// Login checks the credentials. Unknown e-mail and wrong password both
// yield ErrWrongCredentials.
func (c *courierAuthService) Login(ctx context.Context, form models.LoginForm) (models.Motoboy, error) {
	log := logger.FromContext(ctx)

	motoboy, err := c.motoboyRepository.FindByEmail(ctx, normalizeEmail(form.Email))
	if err != nil {
		if errors.Is(err, store.ErrMotoboyNotFound) {
			return models.Motoboy{}, ErrWrongCredentials
		}
		return models.Motoboy{}, fmt.Errorf("courier search by e-mail failed: %w", err)
	}

	if !c.hasher.Compare(motoboy.Senha, form.Senha) {
		log.Info().Str("id", motoboy.ID.String()).Msg("wrong password")
		return models.Motoboy{}, ErrWrongCredentials
	}

	return motoboy, nil
}

func (c *courierAuthService) RequestPasswordReset(ctx context.Context, email, baseURL string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	motoboy, err := c.motoboyRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrMotoboyNotFound) {
			return ErrEmailNotFound
		}
		return fmt.Errorf("courier search by e-mail failed: %w", err)
	}

	token, err := c.tokens.Issue(models.PurposeCourierReset, motoboy.Email)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	body, err := renderMail(courierResetMail, resetMailData{
		Nome: motoboy.NomeCompleto,
		Link: strings.TrimRight(baseURL, "/") + "/redefinir-senha/" + token.String(),
	})
	if err != nil {
		return err
	}

	if err = c.mailer.Send(ctx, motoboy.Email, courierResetSubject, body); err != nil {
		log.Err(err).Str("func", "*courierAuthService.RequestPasswordReset").Msg("reset e-mail was not sent")
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return nil
}

func (c *courierAuthService) VerifyResetToken(ctx context.Context, token string) (string, error) {
	t, err := c.tokens.Verify(token, models.PurposeCourierReset)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("courier reset token rejected")
		return "", ErrInvalidResetToken
	}
	return t.Subject, nil
}

func (c *courierAuthService) ResetPassword(ctx context.Context, token string, form models.PasswordForm) error {
	log := logger.FromContext(ctx)

	email, err := c.VerifyResetToken(ctx, token)
	if err != nil {
		return err
	}

	motoboy, err := c.motoboyRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrMotoboyNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("courier search by e-mail failed: %w", err)
	}

	hash, err := c.hasher.Hash(form.Senha)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = c.motoboyRepository.UpdatePassword(ctx, motoboy.ID.String(), hash); err != nil {
		log.Err(err).Str("func", "*courierAuthService.ResetPassword").Str("id", motoboy.ID.String()).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Str("id", motoboy.ID.String()).Msg("courier password reset")
	return nil
}
