// Package domain contains the core value objects of the dynamic version cache:
// repository and module identities, cache keys, cached version listings and
// the freshness policy used to judge them.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RepositoryID identifies a configured version repository.
// It is extracted once from a repository and carried as a plain value.
type RepositoryID struct {
	id InternedString
}

// NewRepositoryID creates a RepositoryID from its string form.
func NewRepositoryID(id string) RepositoryID {
	return RepositoryID{id: NewInternedString(id)}
}

// String returns the identifier.
func (r RepositoryID) String() string {
	return r.id.String()
}

// IsZero reports whether the identifier is missing.
func (r RepositoryID) IsZero() bool {
	return r.id.IsZero()
}

// ModuleIdentifier is the (group, name) pair identifying a module.
// Comparison is exact and case-sensitive.
type ModuleIdentifier struct {
	group InternedString
	name  InternedString
}

// NewModuleIdentifier creates a ModuleIdentifier. Both parts are required.
func NewModuleIdentifier(group, name string) (ModuleIdentifier, error) {
	if group == "" || name == "" {
		err := zerr.With(zerr.Wrap(ErrInvalidModuleNotation, "incomplete module identifier"), "group", group)
		return ModuleIdentifier{}, zerr.With(err, "name", name)
	}
	return ModuleIdentifier{
		group: NewInternedString(group),
		name:  NewInternedString(name),
	}, nil
}

// ParseModuleIdentifier parses the "group:name" notation.
func ParseModuleIdentifier(notation string) (ModuleIdentifier, error) {
	group, name, ok := strings.Cut(notation, ":")
	if !ok || strings.Contains(name, ":") {
		return ModuleIdentifier{}, zerr.With(zerr.Wrap(ErrInvalidModuleNotation, "cannot parse module"), "module", notation)
	}
	return NewModuleIdentifier(strings.TrimSpace(group), strings.TrimSpace(name))
}

// Group returns the module group.
func (m ModuleIdentifier) Group() string {
	return m.group.String()
}

// Name returns the module name.
func (m ModuleIdentifier) Name() string {
	return m.name.String()
}

// IsZero reports whether the identifier is missing.
func (m ModuleIdentifier) IsZero() bool {
	return m.group.IsZero() && m.name.IsZero()
}

// String returns the "group:name" notation.
func (m ModuleIdentifier) String() string {
	return m.Group() + ":" + m.Name()
}
