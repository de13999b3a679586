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
	"golang.org/x/sync/errgroup"
)

// dashboardPosts is how many recent posts the admin panel lists.
const dashboardPosts = 5

// storeAdminService is the concrete implementation of StoreAdminService.
//
// Password-reset links carry a signed token whose subject is the store id
// and whose "jti" is persisted in the store's reset_token field. The field
// is cleared when the password changes, so every link works once.
type storeAdminService struct {
	lojaRepository    store.LojaRepository
	motoboyRepository store.MotoboyRepository
	catalogRepository store.CatalogRepository
	files             store.FileStorage

	hasher crypto.PasswordHasher
	tokens ResetTokenIssuer
	mailer mailer.Mailer

	logger *logger.Logger
}

// NewStoreAdminService constructs a StoreAdminService.
func NewStoreAdminService(
	repositories *store.Repositories,
	hasher crypto.PasswordHasher,
	tokens ResetTokenIssuer,
	mailer mailer.Mailer,
	logger *logger.Logger,
) StoreAdminService {
	return &storeAdminService{
		lojaRepository:    repositories.LojaRepository,
		motoboyRepository: repositories.MotoboyRepository,
		catalogRepository: repositories.CatalogRepository,
		files:             repositories.FileStorage,
		hasher:            hasher,
		tokens:            tokens,
		mailer:            mailer,
		logger:            logger,
	}
}

// Register creates a store with the default colour. A slug already used by
// a store or a courier yields ErrSlugTaken.
func (s *storeAdminService) Register(ctx context.Context, form models.StoreSignupForm) (models.Loja, error) {
	log := logger.FromContext(ctx)

	slug := validators.NormalizeSlug(form.Slug)

	_, err := s.lojaRepository.FindBySlug(ctx, slug)
	if err == nil {
		return models.Loja{}, ErrSlugTaken
	}
	if !errors.Is(err, store.ErrLojaNotFound) {
		return models.Loja{}, fmt.Errorf("slug availability check failed: %w", err)
	}

	_, err = s.motoboyRepository.FindBySlug(ctx, slug)
	if err == nil {
		return models.Loja{}, ErrSlugTaken
	}
	if !errors.Is(err, store.ErrMotoboyNotFound) {
		return models.Loja{}, fmt.Errorf("slug availability check failed: %w", err)
	}

	hash, err := s.hasher.Hash(form.Senha)
	if err != nil {
		return models.Loja{}, fmt.Errorf("password hashing failed: %w", err)
	}

	loja, err := s.lojaRepository.Create(ctx, models.NewLoja{
		Status:            models.StatusPublished,
		Nome:              strings.TrimSpace(form.Nome),
		Slug:              slug,
		EmailAdmin:        normalizeEmail(form.Email),
		SenhaAdmin:        hash,
		WhatsappComercial: normalizePhone(form.Whatsapp),
		CorPrimaria:       models.DefaultPrimaryColor,
	})
	if err != nil {
		log.Err(err).Str("func", "*storeAdminService.Register").Str("slug", slug).Msg("store creation ended with error")
		return models.Loja{}, fmt.Errorf("store creation ended with error: %w", err)
	}

	log.Info().Str("slug", slug).Msg("store registered")
	return loja, nil
}

func (s *storeAdminService) Store(ctx context.Context, slug string) (models.Loja, error) {
	loja, err := s.findStore(ctx, slug)
	if err != nil {
		return models.Loja{}, err
	}

	decorateLoja(&loja, s.files)
	return loja, nil
}

func (s *storeAdminService) Login(ctx context.Context, slug, password string) (models.Loja, error) {
	loja, err := s.findStore(ctx, slug)
	if err != nil {
		return models.Loja{}, err
	}

	if !s.hasher.Compare(loja.SenhaAdmin, password) {
		logger.FromContext(ctx).Info().Str("slug", loja.Slug).Msg("wrong store admin password")
		return models.Loja{}, ErrWrongCredentials
	}

	return loja, nil
}

func (s *storeAdminService) Dashboard(ctx context.Context, slug string) (models.StoreDashboard, error) {
	loja, err := s.findStore(ctx, slug)
	if err != nil {
		return models.StoreDashboard{}, err
	}

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
		posts, err = s.catalogRepository.LatestPosts(gctx, lojaID, dashboardPosts)
		return err
	})
	if err = g.Wait(); err != nil {
		return models.StoreDashboard{}, fmt.Errorf("dashboard fetch for store %q failed: %w", loja.Slug, err)
	}

	destaques := 0
	for _, p := range produtos {
		if p.Destaque {
			destaques++
		}
	}
	for i := range posts {
		decoratePost(&posts[i], s.files)
	}
	decorateLoja(&loja, s.files)

	return models.StoreDashboard{
		Loja:            loja,
		TotalProdutos:   len(produtos),
		TotalDestaques:  destaques,
		TotalCategorias: len(categorias),
		UltimosPosts:    posts,
	}, nil
}

// RequestPasswordReset mails a one-time reset link when email matches the
// store's admin e-mail (case-insensitively).
func (s *storeAdminService) RequestPasswordReset(ctx context.Context, slug, email, baseURL string) error {
	log := logger.FromContext(ctx)

	loja, err := s.findStore(ctx, slug)
	if err != nil {
		return err
	}

	email = normalizeEmail(email)
	if email == "" || !strings.EqualFold(email, strings.TrimSpace(loja.EmailAdmin)) {
		return ErrEmailMismatch
	}

	token, err := s.tokens.Issue(models.PurposeStoreReset, loja.ID.String())
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	jti := token.ID
	if err = s.lojaRepository.Update(ctx, loja.ID.String(), models.LojaUpdate{ResetToken: &jti}); err != nil {
		log.Err(err).Str("func", "*storeAdminService.RequestPasswordReset").Str("slug", loja.Slug).Msg("storing reset token failed")
		return fmt.Errorf("storing reset token failed: %w", err)
	}

	body, err := renderMail(storeResetMail, resetMailData{
		Nome: loja.Nome,
		Link: fmt.Sprintf("%s/%s/nova-senha/%s", strings.TrimRight(baseURL, "/"), loja.Slug, token.String()),
	})
	if err != nil {
		return err
	}

	if err = s.mailer.Send(ctx, loja.EmailAdmin, storeResetSubject, body); err != nil {
		log.Err(err).Str("func", "*storeAdminService.RequestPasswordReset").Str("slug", loja.Slug).Msg("reset e-mail was not sent")
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return nil
}

// VerifyResetToken accepts the token only while its id is still the pending
// reset_token of the store it names, and that store is the one at slug.
func (s *storeAdminService) VerifyResetToken(ctx context.Context, slug, token string) (models.Loja, error) {
	log := logger.FromContext(ctx)

	t, err := s.tokens.Verify(token, models.PurposeStoreReset)
	if err != nil || t.ID == "" {
		log.Debug().Err(err).Msg("store reset token rejected")
		return models.Loja{}, ErrInvalidResetToken
	}

	loja, err := s.lojaRepository.FindByResetToken(ctx, t.ID)
	if err != nil {
		if errors.Is(err, store.ErrLojaNotFound) {
			return models.Loja{}, ErrInvalidResetToken
		}
		return models.Loja{}, fmt.Errorf("store search by reset token failed: %w", err)
	}

	if loja.ID.String() != t.Subject || loja.Slug != validators.NormalizeSlug(slug) {
		log.Warn().Str("slug", slug).Msg("reset token used on another store")
		return models.Loja{}, ErrInvalidResetToken
	}

	return loja, nil
}

func (s *storeAdminService) ResetPassword(ctx context.Context, slug, token string, form models.PasswordForm) error {
	log := logger.FromContext(ctx)

	loja, err := s.VerifyResetToken(ctx, slug, token)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(form.Senha)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	err = s.lojaRepository.Update(ctx, loja.ID.String(), models.LojaUpdate{
		SenhaAdmin:      &hash,
		ClearResetToken: true,
	})
	if err != nil {
		log.Err(err).Str("func", "*storeAdminService.ResetPassword").Str("slug", loja.Slug).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Str("slug", loja.Slug).Msg("store password reset")
	return nil
}

func (s *storeAdminService) findStore(ctx context.Context, slug string) (models.Loja, error) {
	loja, err := s.lojaRepository.FindBySlug(ctx, validators.NormalizeSlug(slug))
	if err != nil {
		if errors.Is(err, store.ErrLojaNotFound) {
			return models.Loja{}, ErrStoreNotFound
		}
		return models.Loja{}, fmt.Errorf("store search by slug failed: %w", err)
	}
	return loja, nil
}
