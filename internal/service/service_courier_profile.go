// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/store"
	"github.com/leanttro/leanttro-web/internal/utils"
	"github.com/leanttro/leanttro-web/internal/validators"
	"github.com/leanttro/leanttro-web/models"
)

type courierProfileService struct {
	motoboyRepository store.MotoboyRepository
	files             store.FileStorage

	systemDomains []string
	now           func() time.Time

	logger *logger.Logger
}

// NewCourierProfileService constructs a CourierProfileService. systemDomains
// can never be claimed as a personal domain.
func NewCourierProfileService(repositories *store.Repositories, systemDomains []string, logger *logger.Logger) CourierProfileService {
	domains := make([]string, 0, len(systemDomains))
	for _, d := range systemDomains {
		domains = append(domains, utils.NormalizeHost(d))
	}

	return &courierProfileService{
		motoboyRepository: repositories.MotoboyRepository,
		files:             repositories.FileStorage,
		systemDomains:     domains,
		now:               time.Now,
		logger:            logger,
	}
}

func (c *courierProfileService) Profile(ctx context.Context, id string) (models.Motoboy, error) {
	motoboy, err := c.motoboyRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrMotoboyNotFound) {
			return models.Motoboy{}, ErrProfileNotFound
		}
		return models.Motoboy{}, fmt.Errorf("courier search by id failed: %w", err)
	}

	decorateMotoboy(&motoboy, c.files, c.now())
	return motoboy, nil
}

// UpdateProfile normalises phones and the personal domain, uploads the new
// photo if any and saves the profile. The login e-mail is required and must
// not belong to another courier (ErrEmailTaken). A failed photo upload keeps
// the old photo and does not fail the update.
func (c *courierProfileService) UpdateProfile(ctx context.Context, id string, form models.ProfileForm, photo *models.FileUpload) error {
	log := logger.FromContext(ctx)

	email := normalizeEmail(form.Email)
	if err := c.ensureEmailFree(ctx, id, email); err != nil {
		return err
	}

	domain := normalizeDomain(form.DominioProprio)
	if err := c.ensureDomainFree(ctx, id, domain); err != nil {
		return err
	}

	update := models.MotoboyUpdate{
		NomeCompleto:      strings.TrimSpace(form.Nome),
		Email:             email,
		TipoSanguineo:     strings.TrimSpace(form.Sangue),
		AlergiasCondicoes: strings.TrimSpace(form.Alergias),
		ContatoNome:       strings.TrimSpace(form.ContatoNome),
		ContatoTelefone:   normalizePhone(form.ContatoTel),
		ContatoNome2:      strings.TrimSpace(form.ContatoNome2),
		ContatoTelefone2:  normalizePhone(form.ContatoTel2),
		PlanoSaude:        strings.TrimSpace(form.Plano),
		DominioProprio:    domain,
	}
	if birth := strings.TrimSpace(form.Nascimento); birth != "" {
		update.DataNascimento = &birth
	}

	if photo != nil && photo.Filename != "" {
		fileID, err := c.files.Upload(ctx, *photo)
		if err != nil {
			log.Err(err).Str("func", "*courierProfileService.UpdateProfile").Str("id", id).Msg("photo upload failed, keeping the old photo")
		} else {
			update.Foto = &fileID
		}
	}

	if err := c.motoboyRepository.Update(ctx, id, update); err != nil {
		if errors.Is(err, store.ErrMotoboyNotFound) {
			return ErrProfileNotFound
		}
		log.Err(err).Str("func", "*courierProfileService.UpdateProfile").Str("id", id).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}

	return nil
}

func (c *courierProfileService) ensureDomainFree(ctx context.Context, id, domain string) error {
	if domain == "" {
		return nil
	}

	for _, d := range c.systemDomains {
		if domain == d || strings.HasSuffix(domain, "."+d) {
			return ErrDomainTaken
		}
	}

	owner, err := c.motoboyRepository.FindByDomain(ctx, domain)
	switch {
	case errors.Is(err, store.ErrMotoboyNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("domain availability check failed: %w", err)
	case owner.ID.String() != id:
		return ErrDomainTaken
	default:
		return nil
	}
}

func (c *courierProfileService) ensureEmailFree(ctx context.Context, id, email string) error {
	if email == "" {
		return invalidForm(validators.ErrInvalidEmail)
	}

	owner, err := c.motoboyRepository.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrMotoboyNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("e-mail availability check failed: %w", err)
	case owner.ID.String() != id:
		return ErrEmailTaken
	default:
		return nil
	}
}
