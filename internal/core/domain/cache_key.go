package domain

import "go.trai.ch/zerr"

// CacheKey identifies a cached version listing: one module as seen by one repository.
// It is a comparable value and can be used directly as a map key.
type CacheKey struct {
	repository RepositoryID
	module     ModuleIdentifier
}

// NewCacheKey builds a key from its two components.
// It rejects a missing repository id or module instead of producing a key
// that could never be looked up again.
func NewCacheKey(repository RepositoryID, module ModuleIdentifier) (CacheKey, error) {
	if repository.IsZero() {
		return CacheKey{}, zerr.With(zerr.Wrap(ErrMissingRepositoryID, "invalid cache key"), "module", module.String())
	}
	if module.IsZero() {
		return CacheKey{}, zerr.With(zerr.Wrap(ErrMissingModule, "invalid cache key"), "repository", repository.String())
	}
	return CacheKey{repository: repository, module: module}, nil
}

// Repository returns the repository component.
func (k CacheKey) Repository() RepositoryID {
	return k.repository
}

// Module returns the module component.
func (k CacheKey) Module() ModuleIdentifier {
	return k.module
}

// String returns a human readable form, e.g. "central/com.foo:bar".
func (k CacheKey) String() string {
	return k.repository.String() + "/" + k.module.String()
}
