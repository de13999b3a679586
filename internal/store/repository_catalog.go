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

type catalogRepository struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] backed by the given
// adapter.
func NewCatalogRepository(backend adapter.BackendAdapter, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		backend: backend,
		logger:  logger,
	}
}

func (r *catalogRepository) Categories(ctx context.Context, lojaID string) ([]models.Categoria, error) {
	query := adapter.NewQuery().Eq("loja", lojaID).SortBy("ordem")
	return listItems[models.Categoria](ctx, r.backend, models.CollectionCategorias, query)
}

func (r *catalogRepository) PublishedProducts(ctx context.Context, lojaID string) ([]models.Produto, error) {
	query := adapter.NewQuery().Eq("loja", lojaID).Eq("status", models.StatusPublished)
	return listItems[models.Produto](ctx, r.backend, models.CollectionProdutos, query)
}

func (r *catalogRepository) LatestPosts(ctx context.Context, lojaID string, limit int) ([]models.Post, error) {
	query := adapter.NewQuery().Eq("loja", lojaID).SortBy("-date_created").WithLimit(limit)
	return listItems[models.Post](ctx, r.backend, models.CollectionPosts, query)
}

func listItems[T any](ctx context.Context, backend adapter.BackendAdapter, collection string, query adapter.Query) ([]T, error) {
	raw, err := backend.List(ctx, collection, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("collection", collection).Msg("backend error")
		return nil, fmt.Errorf("%w: %w", ErrQueryingBackend, err)
	}

	return decodeItems[T](raw)
}
