package ports

import (
	"context"

	"go.trai.ch/dynver/internal/core/domain"
)

// Repository lists the versions a version repository offers for a module.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// ID returns the stable identifier used to key cached listings.
	ID() domain.RepositoryID

	// ListVersions queries the repository. An unknown module yields an empty set.
	ListVersions(ctx context.Context, module domain.ModuleIdentifier) (domain.VersionSet, error)
}

// RepositoryFactory builds repositories from their configuration.
type RepositoryFactory interface {
	// Build returns the repository described by spec.
	Build(spec domain.RepositorySpec) (Repository, error)
}
