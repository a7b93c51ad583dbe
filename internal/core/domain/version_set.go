package domain

import (
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// VersionSet is an immutable set of version identifiers as listed by a repository.
// The zero value is the empty set.
type VersionSet struct {
	versions []string
}

// NewVersionSet creates a set from the given versions, dropping duplicates.
func NewVersionSet(versions ...string) VersionSet {
	if len(versions) == 0 {
		return VersionSet{}
	}
	sorted := slices.Clone(versions)
	slices.Sort(sorted)
	return VersionSet{versions: slices.Compact(sorted)}
}

// Len returns the number of versions in the set.
func (s VersionSet) Len() int {
	return len(s.versions)
}

// IsEmpty reports whether the repository listed no versions.
func (s VersionSet) IsEmpty() bool {
	return len(s.versions) == 0
}

// Contains reports whether the set holds the given version.
func (s VersionSet) Contains(version string) bool {
	_, found := slices.BinarySearch(s.versions, version)
	return found
}

// All yields the versions in lexical order.
func (s VersionSet) All() iter.Seq[string] {
	return slices.Values(s.versions)
}

// Slice returns a copy of the versions in lexical order.
func (s VersionSet) Slice() []string {
	return slices.Clone(s.versions)
}

// Equal reports whether both sets hold the same versions.
func (s VersionSet) Equal(other VersionSet) bool {
	return slices.Equal(s.versions, other.versions)
}

// Digest returns a content hash of the set, stable across processes.
func (s VersionSet) Digest() uint64 {
	d := xxhash.New()
	for _, v := range s.versions {
		_, _ = d.WriteString(v)
		// Separator keeps {"1.0", "1"} and {"1.01"} apart.
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
