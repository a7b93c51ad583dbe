package versioncache

import (
	"fmt"

	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/dynver/internal/core/ports"
)

// Cache implements ports.ModuleVersionsCache on top of a VersionCacheStore.
// New listings are stamped with the session clock and hits are evaluated as of
// the clock reading at lookup time.
type Cache struct {
	store  ports.VersionCacheStore
	clock  ports.Clock
	logger ports.Logger
}

// NewCache creates a Cache.
func NewCache(store ports.VersionCacheStore, clock ports.Clock, logger ports.Logger) *Cache {
	return &Cache{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// CacheVersionList records the versions a repository listed for a module.
func (c *Cache) CacheVersionList(
	repository domain.RepositoryID,
	module domain.ModuleIdentifier,
	versions domain.VersionSet,
) error {
	key, err := domain.NewCacheKey(repository, module)
	if err != nil {
		return err
	}

	c.logger.Debug("caching version list",
		"repository", repository.String(),
		"module", module.String(),
		"versions", versions.Len(),
		"digest", fmt.Sprintf("%016x", versions.Digest()),
	)
	c.store.Put(key, versions, c.clock.Now())
	return nil
}

// CachedVersionList returns the cached listing for a module, or false on a miss.
func (c *Cache) CachedVersionList(
	repository domain.RepositoryID,
	module domain.ModuleIdentifier,
) (domain.CachedVersionList, bool, error) {
	key, err := domain.NewCacheKey(repository, module)
	if err != nil {
		return domain.CachedVersionList{}, false, err
	}

	entry, ok := c.store.Get(key)
	if !ok {
		return domain.CachedVersionList{}, false, nil
	}
	return domain.NewCachedVersionList(entry, c.clock.Now()), true, nil
}
