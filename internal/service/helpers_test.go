// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/leanttro/leanttro-web/internal/mock"
	"github.com/leanttro/leanttro-web/internal/store"
	"go.uber.org/mock/gomock"
)

const (
	testSecret  = "test-secret"
	testBaseURL = "https://sos.leanttro.com"
	testAssets  = "https://api.test/assets/"
)

// fixedNow is the clock of every test that derives ages.
var fixedNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

type repoMocks struct {
	motoboys *mock.MockMotoboyRepository
	lojas    *mock.MockLojaRepository
	catalog  *mock.MockCatalogRepository
	files    *mock.MockFileStorage
}

func newRepoMocks(t *testing.T) (*store.Repositories, repoMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := repoMocks{
		motoboys: mock.NewMockMotoboyRepository(ctrl),
		lojas:    mock.NewMockLojaRepository(ctrl),
		catalog:  mock.NewMockCatalogRepository(ctrl),
		files:    mock.NewMockFileStorage(ctrl),
	}
	m.files.EXPECT().URL(gomock.Any()).DoAndReturn(func(id string) string {
		if id == "" {
			return ""
		}
		return testAssets + id
	}).AnyTimes()

	return &store.Repositories{
		MotoboyRepository: m.motoboys,
		LojaRepository:    m.lojas,
		CatalogRepository: m.catalog,
		FileStorage:       m.files,
	}, m
}
