package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingRepositoryID is returned when a cache key is built without a repository identifier.
	ErrMissingRepositoryID = zerr.New("missing repository id")

	// ErrMissingModule is returned when a cache key is built without a module identifier.
	ErrMissingModule = zerr.New("missing module identifier")

	// ErrInvalidModuleNotation is returned when a module string is not in "group:name" form.
	ErrInvalidModuleNotation = zerr.New("invalid module notation, expected 'group:name'")

	// ErrInvalidSelector is returned when a version selector cannot be parsed.
	ErrInvalidSelector = zerr.New("invalid version selector")

	// ErrNoMatchingVersion is returned when no repository lists a version matching the request.
	ErrNoMatchingVersion = zerr.New("no matching version found")

	// ErrOfflineCacheMiss is returned in offline mode when no cached listing exists for a module.
	ErrOfflineCacheMiss = zerr.New("no cached version listing available in offline mode")

	// ErrListingFailed is returned when a repository cannot list the versions of a module.
	ErrListingFailed = zerr.New("failed to list module versions")

	// ErrNoRepositories is returned when the configuration declares no repositories.
	ErrNoRepositories = zerr.New("no repositories configured")

	// ErrUnknownRepositoryType is returned when a repository declares an unsupported type.
	ErrUnknownRepositoryType = zerr.New("unknown repository type, expected 'static', 'maven' or 'git'")

	// ErrDuplicateRepositoryID is returned when two repositories share the same id.
	ErrDuplicateRepositoryID = zerr.New("duplicate repository id")

	// ErrMissingRepositoryURL is returned when a remote repository has no url.
	ErrMissingRepositoryURL = zerr.New("missing repository url")

	// ErrInvalidDuration is returned when a policy timeout cannot be parsed.
	ErrInvalidDuration = zerr.New("invalid duration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoDependenciesSelected is returned when the module filter matches no configured dependency.
	ErrNoDependenciesSelected = zerr.New("no dependencies selected")
)
