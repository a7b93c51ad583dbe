package domain

import "time"

// CacheEntry is an immutable snapshot of a version listing and the instant it was captured.
// Writing to the cache replaces a whole entry; an entry is never modified.
type CacheEntry struct {
	versions   VersionSet
	capturedAt time.Time
}

// NewCacheEntry creates an entry. The timestamp is normally the session clock
// reading at the moment of caching.
func NewCacheEntry(versions VersionSet, capturedAt time.Time) CacheEntry {
	return CacheEntry{versions: versions, capturedAt: capturedAt}
}

// Versions returns the listed versions.
func (e CacheEntry) Versions() VersionSet {
	return e.versions
}

// CapturedAt returns the capture timestamp.
func (e CacheEntry) CapturedAt() time.Time {
	return e.capturedAt
}
