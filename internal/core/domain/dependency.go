package domain

// DependencyRequest represents a declared intent to depend on some version of a module.
// This is the input representation before resolution (e.g., from dynver.yaml).
type DependencyRequest struct {
	// Module is the requested module.
	Module ModuleIdentifier

	// Selector is the requested version constraint (e.g., "1.+", "latest", "[1.0,2.0)").
	Selector InternedString

	// Changing marks modules whose published versions are expected to move,
	// which subjects them to the changing-modules timeout.
	Changing bool
}

// String returns the "group:name:selector" notation.
func (r DependencyRequest) String() string {
	return r.Module.String() + ":" + r.Selector.String()
}

// Resolution is the outcome of resolving one DependencyRequest.
type Resolution struct {
	Request    DependencyRequest
	Repository RepositoryID
	Version    string
	// FromCache is true when the listing that produced Version was reused from the cache.
	FromCache bool
}
