package domain

// RepositoryKind is the transport a repository lists versions through.
type RepositoryKind string

const (
	// RepositoryKindStatic lists versions declared inline in the configuration.
	RepositoryKindStatic RepositoryKind = "static"
	// RepositoryKindMaven lists versions from maven-metadata.xml over HTTP.
	RepositoryKindMaven RepositoryKind = "maven"
	// RepositoryKindGit lists versions from the tags of a git remote.
	RepositoryKindGit RepositoryKind = "git"
)

// RepositorySpec describes a configured repository.
type RepositorySpec struct {
	ID   RepositoryID
	Kind RepositoryKind
	// URL is the base URL for maven repositories and a URL template for git
	// repositories ({group} and {name} are substituted).
	URL string
	// Versions holds the inline listings of a static repository.
	Versions map[ModuleIdentifier][]string
}

// Manifest is the loaded project configuration.
type Manifest struct {
	Policy       CachePolicy
	Repositories []RepositorySpec
	Dependencies []DependencyRequest
}
