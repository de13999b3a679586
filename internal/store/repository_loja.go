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

// lojaRepository is the backend implementation of [LojaRepository].
type lojaRepository struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger
}

// NewLojaRepository constructs a [LojaRepository] backed by the given
// adapter.
func NewLojaRepository(backend adapter.BackendAdapter, logger *logger.Logger) LojaRepository {
	logger.Debug().Msg("creating loja repository")
	return &lojaRepository{
		backend: backend,
		logger:  logger,
	}
}

func (r *lojaRepository) FindBySlug(ctx context.Context, slug string) (models.Loja, error) {
	return r.findOne(ctx, "slug", slug)
}

func (r *lojaRepository) FindByResetToken(ctx context.Context, token string) (models.Loja, error) {
	return r.findOne(ctx, "reset_token", token)
}

func (r *lojaRepository) Create(ctx context.Context, loja models.NewLoja) (models.Loja, error) {
	log := logger.FromContext(ctx)

	raw, err := r.backend.Create(ctx, models.CollectionLojas, loja)
	if err != nil {
		log.Err(err).Str("func", "*lojaRepository.Create").Str("slug", loja.Slug).Msg("backend error")
		return models.Loja{}, fmt.Errorf("%w: %w", ErrSavingItem, err)
	}

	if raw == nil {
		return models.Loja{
			Status:            loja.Status,
			Nome:              loja.Nome,
			Slug:              loja.Slug,
			EmailAdmin:        loja.EmailAdmin,
			SenhaAdmin:        loja.SenhaAdmin,
			WhatsappComercial: loja.WhatsappComercial,
			CorPrimaria:       loja.CorPrimaria,
		}, nil
	}

	return decodeItem[models.Loja](raw)
}

func (r *lojaRepository) Update(ctx context.Context, id string, update models.LojaUpdate) error {
	log := logger.FromContext(ctx)

	if err := r.backend.Update(ctx, models.CollectionLojas, id, update); err != nil {
		if isMissingItem(err) {
			return ErrLojaNotFound
		}
		log.Err(err).Str("func", "*lojaRepository.Update").Str("id", id).Msg("backend error")
		return fmt.Errorf("%w: %w", ErrSavingItem, err)
	}

	return nil
}

func (r *lojaRepository) findOne(ctx context.Context, field, value string) (models.Loja, error) {
	log := logger.FromContext(ctx)

	if value == "" {
		return models.Loja{}, ErrLojaNotFound
	}

	query := adapter.NewQuery().Eq(field, value).WithLimit(1)
	raw, err := r.backend.List(ctx, models.CollectionLojas, query)
	if err != nil {
		log.Err(err).Str("func", "*lojaRepository.findOne").Str("field", field).Msg("backend error")
		return models.Loja{}, fmt.Errorf("%w: %w", ErrQueryingBackend, err)
	}
	if len(raw) == 0 {
		return models.Loja{}, ErrLojaNotFound
	}

	return decodeItem[models.Loja](raw[0])
}
