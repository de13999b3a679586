// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the repositories of the application on top of the
// headless-CMS backend. Every record lives in the backend; repositories only
// translate between backend items and [models] types and map backend
// failures to the sentinel errors of this package.
package store

import (
	"context"

	"github.com/leanttro/leanttro-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MotoboyRepository manages courier profiles (collection "motoboys").
type MotoboyRepository interface {
	// FindBySlug returns the courier owning the sticker code slug.
	// Returns [ErrMotoboyNotFound] when no courier matches.
	FindBySlug(ctx context.Context, slug string) (models.Motoboy, error)
	// FindByEmail returns the courier registered with email.
	FindByEmail(ctx context.Context, email string) (models.Motoboy, error)
	// FindByDomain returns the courier whose personal domain equals domain.
	FindByDomain(ctx context.Context, domain string) (models.Motoboy, error)
	// FindByID returns the courier with the given primary key.
	FindByID(ctx context.Context, id string) (models.Motoboy, error)
	// Create inserts a new courier and returns the stored record.
	Create(ctx context.Context, motoboy models.NewMotoboy) (models.Motoboy, error)
	// Update applies profile changes to the courier with the given id.
	Update(ctx context.Context, id string, update models.MotoboyUpdate) error
	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

// LojaRepository manages storefronts (collection "lojas").
type LojaRepository interface {
	// FindBySlug returns the store with the given slug.
	// Returns [ErrLojaNotFound] when no store matches.
	FindBySlug(ctx context.Context, slug string) (models.Loja, error)
	// FindByResetToken returns the store whose pending reset token id equals
	// token.
	FindByResetToken(ctx context.Context, token string) (models.Loja, error)
	// Create inserts a new store and returns the stored record.
	Create(ctx context.Context, loja models.NewLoja) (models.Loja, error)
	// Update applies a partial update to the store with the given id.
	Update(ctx context.Context, id string, update models.LojaUpdate) error
}

// CatalogRepository reads the catalog of a store.
type CatalogRepository interface {
	// Categories returns the categories of a store ordered by "ordem".
	Categories(ctx context.Context, lojaID string) ([]models.Categoria, error)
	// PublishedProducts returns the published products of a store.
	PublishedProducts(ctx context.Context, lojaID string) ([]models.Produto, error)
	// LatestPosts returns at most limit posts, newest first.
	LatestPosts(ctx context.Context, lojaID string, limit int) ([]models.Post, error)
}

// FileStorage proxies uploads to the backend file store.
type FileStorage interface {
	// Upload stores the file and returns its backend file id.
	Upload(ctx context.Context, file models.FileUpload) (string, error)
	// URL returns the public URL of a stored file, or "" for an empty id.
	URL(fileID string) string
}
