// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/leanttro/leanttro-web/internal/adapter"
	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/models"
	"golang.org/x/text/unicode/norm"
)

const defaultUploadName = "upload"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

type fileStorage struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger
}

// NewFileStorage constructs a [FileStorage] that proxies uploads to the
// backend file store.
func NewFileStorage(backend adapter.BackendAdapter, logger *logger.Logger) FileStorage {
	logger.Debug().Msg("creating file storage")
	return &fileStorage{
		backend: backend,
		logger:  logger,
	}
}

func (s *fileStorage) Upload(ctx context.Context, file models.FileUpload) (string, error) {
	log := logger.FromContext(ctx)

	if file.Content == nil {
		return "", ErrEmptyFile
	}

	name := SecureFilename(file.Filename)
	id, err := s.backend.UploadFile(ctx, name, file.ContentType, file.Content)
	if err != nil {
		log.Err(err).Str("func", "*fileStorage.Upload").Str("filename", name).Msg("backend error")
		return "", fmt.Errorf("%w: %w", ErrUploadingFile, err)
	}

	log.Debug().Str("file_id", id).Msg("file uploaded")
	return id, nil
}

func (s *fileStorage) URL(fileID string) string {
	return s.backend.AssetURL(fileID)
}

// SecureFilename reduces a client supplied file name to a safe ASCII name:
// directory parts are dropped, accents are removed, whitespace becomes "_"
// and anything outside [A-Za-z0-9_.-] is stripped. A name that ends up
// empty becomes "upload".
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsSpace(r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	name = unsafeFilenameChars.ReplaceAllString(b.String(), "")
	name = strings.Trim(name, "._")
	if name == "" {
		return defaultUploadName
	}

	return name
}
