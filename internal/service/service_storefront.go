// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/store"
	"github.com/leanttro/leanttro-web/internal/validators"
	"github.com/leanttro/leanttro-web/models"
	"golang.org/x/sync/errgroup"
)

// storefrontPosts is how many blog posts the public page shows.
const storefrontPosts = 3

type storefrontService struct {
	lojaRepository    store.LojaRepository
	catalogRepository store.CatalogRepository
	files             store.FileStorage

	logger *logger.Logger
}

// NewStorefrontService constructs a StorefrontService.
func NewStorefrontService(repositories *store.Repositories, logger *logger.Logger) StorefrontService {
	return &storefrontService{
		lojaRepository:    repositories.LojaRepository,
		catalogRepository: repositories.CatalogRepository,
		files:             repositories.FileStorage,
		logger:            logger,
	}
}

func (s *storefrontService) Storefront(ctx context.Context, slug, categoria string) (models.Storefront, error) {
	loja, err := s.lojaRepository.FindBySlug(ctx, validators.NormalizeSlug(slug))
	if err != nil {
		if errors.Is(err, store.ErrLojaNotFound) {
			return models.Storefront{}, ErrStoreNotFound
		}
		return models.Storefront{}, fmt.Errorf("store search by slug failed: %w", err)
	}

	return s.StorefrontFor(ctx, loja, categoria)
}

// StorefrontFor fetches categories, published products and the latest posts
// concurrently. Any failed fetch fails the page.
func (s *storefrontService) StorefrontFor(ctx context.Context, loja models.Loja, categoria string) (models.Storefront, error) {
	log := logger.FromContext(ctx)

	var (
		categorias []models.Categoria
		produtos   []models.Produto
		posts      []models.Post
	)

	lojaID := loja.ID.String()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categorias, err = s.catalogRepository.Categories(gctx, lojaID)
		return err
	})
	g.Go(func() (err error) {
		produtos, err = s.catalogRepository.PublishedProducts(gctx, lojaID)
		return err
	})
	g.Go(func() (err error) {
		posts, err = s.catalogRepository.LatestPosts(gctx, lojaID, storefrontPosts)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Err(err).Str("func", "*storefrontService.StorefrontFor").Str("slug", loja.Slug).Msg("catalog fetch failed")
		return models.Storefront{}, fmt.Errorf("catalog fetch for store %q failed: %w", loja.Slug, err)
	}

	decorateLoja(&loja, s.files)

	novidades := make([]models.Produto, 0)
	for i := range produtos {
		decorateProduto(&produtos[i], s.files)
		if produtos[i].Destaque {
			novidades = append(novidades, produtos[i])
		}
	}
	for i := range posts {
		decoratePost(&posts[i], s.files)
	}

	categoria = strings.TrimSpace(categoria)
	exibidos := produtos
	if categoria != "" {
		exibidos = make([]models.Produto, 0, len(produtos))
		for _, p := range produtos {
			if p.Categoria.String() == categoria {
				exibidos = append(exibidos, p)
			}
		}
	}

	return models.Storefront{
		Loja:                 loja,
		Layout:               loja.Layout(),
		Categorias:           categorias,
		Produtos:             exibidos,
		Novidades:            novidades,
		Posts:                posts,
		CategoriaSelecionada: categoria,
	}, nil
}
