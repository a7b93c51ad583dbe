// Package ports defines the core interfaces for the application.
package ports

import (
	"time"

	"go.trai.ch/dynver/internal/core/domain"
)

// VersionCacheStore holds the latest version listing per cache key.
//
// Implementations must be safe for concurrent use. Put replaces the entry for a
// key atomically and the last completed Put wins; timestamps are not compared.
// Entries are never removed.
//
//go:generate go run go.uber.org/mock/mockgen -source=version_cache.go -destination=mocks/mock_version_cache.go -package=mocks
type VersionCacheStore interface {
	// Put stores or replaces the listing for key.
	Put(key domain.CacheKey, versions domain.VersionSet, capturedAt time.Time)

	// Get returns the entry for key, or false if key was never written.
	Get(key domain.CacheKey) (domain.CacheEntry, bool)
}

// ModuleVersionsCache is the resolution-facing view of the cache.
// It stamps new listings with the session clock and evaluates hits as of the
// current clock reading.
type ModuleVersionsCache interface {
	// CacheVersionList records the versions a repository listed for a module.
	CacheVersionList(repository domain.RepositoryID, module domain.ModuleIdentifier, versions domain.VersionSet) error

	// CachedVersionList returns the cached listing, or false on a miss.
	CachedVersionList(
		repository domain.RepositoryID,
		module domain.ModuleIdentifier,
	) (domain.CachedVersionList, bool, error)
}
