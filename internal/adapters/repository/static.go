package repository

import (
	"context"

	"go.trai.ch/dynver/internal/core/domain"
)

// Static lists versions declared inline in the configuration.
type Static struct {
	id       domain.RepositoryID
	versions map[domain.ModuleIdentifier]domain.VersionSet
}

// NewStatic creates a Static repository.
func NewStatic(id domain.RepositoryID, versions map[domain.ModuleIdentifier][]string) *Static {
	sets := make(map[domain.ModuleIdentifier]domain.VersionSet, len(versions))
	for module, list := range versions {
		sets[module] = domain.NewVersionSet(list...)
	}
	return &Static{id: id, versions: sets}
}

// ID returns the repository id.
func (s *Static) ID() domain.RepositoryID {
	return s.id
}

// ListVersions returns the declared versions, or an empty set for unknown modules.
func (s *Static) ListVersions(ctx context.Context, module domain.ModuleIdentifier) (domain.VersionSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.VersionSet{}, err
	}
	return s.versions[module], nil
}
