// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/leanttro/leanttro-web/internal/adapter"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/models"
)

// motoboyRepository is the backend implementation of [MotoboyRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of backend interactions.
type motoboyRepository struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger
}

// NewMotoboyRepository constructs a [MotoboyRepository] backed by the given
// adapter.
func NewMotoboyRepository(backend adapter.BackendAdapter, logger *logger.Logger) MotoboyRepository {
	logger.Debug().Msg("creating motoboy repository")
	return &motoboyRepository{
		backend: backend,
		logger:  logger,
	}
}

func (r *motoboyRepository) FindBySlug(ctx context.Context, slug string) (models.Motoboy, error) {
	return r.findOne(ctx, "slug", slug)
}

func (r *motoboyRepository) FindByEmail(ctx context.Context, email string) (models.Motoboy, error) {
	return r.findOne(ctx, "email", email)
}

func (r *motoboyRepository) FindByDomain(ctx context.Context, domain string) (models.Motoboy, error) {
	return r.findOne(ctx, "dominio_proprio", domain)
}

// FindByID fetches the courier by primary key. The backend answers 403
// instead of 404 for ids the token cannot see; both mean not found.
func (r *motoboyRepository) FindByID(ctx context.Context, id string) (models.Motoboy, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Motoboy{}, ErrMotoboyNotFound
	}

	raw, err := r.backend.Get(ctx, models.CollectionMotoboys, id)
	if err != nil {
		if isMissingItem(err) {
			return models.Motoboy{}, ErrMotoboyNotFound
		}
		log.Err(err).Str("func", "*motoboyRepository.FindByID").Str("id", id).Msg("backend error")
		return models.Motoboy{}, fmt.Errorf("%w: %w", ErrQueryingBackend, err)
	}

	return decodeItem[models.Motoboy](raw)
}

// Create inserts the courier and returns the stored record. When the
// backend does not echo the item, the submitted fields are returned.
func (r *motoboyRepository) Create(ctx context.Context, motoboy models.NewMotoboy) (models.Motoboy, error) {
	log := logger.FromContext(ctx)

	raw, err := r.backend.Create(ctx, models.CollectionMotoboys, motoboy)
	if err != nil {
		log.Err(err).Str("func", "*motoboyRepository.Create").Str("slug", motoboy.Slug).Msg("backend error")
		return models.Motoboy{}, fmt.Errorf("%w: %w", ErrSavingItem, err)
	}

	if raw == nil {
		return models.Motoboy{
			Status:       motoboy.Status,
			Slug:         motoboy.Slug,
			NomeCompleto: motoboy.NomeCompleto,
			Email:        motoboy.Email,
			Senha:        motoboy.Senha,
		}, nil
	}

	return decodeItem[models.Motoboy](raw)
}

func (r *motoboyRepository) Update(ctx context.Context, id string, update models.MotoboyUpdate) error {
	return r.patch(ctx, "*motoboyRepository.Update", id, update)
}

func (r *motoboyRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return r.patch(ctx, "*motoboyRepository.UpdatePassword", id, models.MotoboyPasswordUpdate{Senha: passwordHash})
}

func (r *motoboyRepository) patch(ctx context.Context, fn, id string, payload any) error {
	log := logger.FromContext(ctx)

	if err := r.backend.Update(ctx, models.CollectionMotoboys, id, payload); err != nil {
		if isMissingItem(err) {
			return ErrMotoboyNotFound
		}
		log.Err(err).Str("func", fn).Str("id", id).Msg("backend error")
		return fmt.Errorf("%w: %w", ErrSavingItem, err)
	}

	return nil
}

func (r *motoboyRepository) findOne(ctx context.Context, field, value string) (models.Motoboy, error) {
	log := logger.FromContext(ctx)

	if value == "" {
		return models.Motoboy{}, ErrMotoboyNotFound
	}

	query := adapter.NewQuery().Eq(field, value).WithLimit(1)
	raw, err := r.backend.List(ctx, models.CollectionMotoboys, query)
	if err != nil {
		log.Err(err).Str("func", "*motoboyRepository.findOne").Str("field", field).Msg("backend error")
		return models.Motoboy{}, fmt.Errorf("%w: %w", ErrQueryingBackend, err)
	}
	if len(raw) == 0 {
		return models.Motoboy{}, ErrMotoboyNotFound
	}

	return decodeItem[models.Motoboy](raw[0])
}
