package store

import (
	"github.com/leanttro/leanttro-web/internal/adapter"
	"github.com/leanttro/leanttro-web/internal/logger"
)

// Repositories aggregates every repository of the application.
type Repositories struct {
	MotoboyRepository MotoboyRepository
	LojaRepository    LojaRepository
	CatalogRepository CatalogRepository
	FileStorage       FileStorage
}

// NewRepositories wires all repositories to the same backend adapter.
func NewRepositories(backend adapter.BackendAdapter, logger *logger.Logger) *Repositories {
	return &Repositories{
		MotoboyRepository: NewMotoboyRepository(backend, logger),
		LojaRepository:    NewLojaRepository(backend, logger),
		CatalogRepository: NewCatalogRepository(backend, logger),
		FileStorage:       NewFileStorage(backend, logger),
	}
}
