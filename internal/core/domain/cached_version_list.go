package domain

import "time"

// CachedVersionList is a cache hit evaluated as of a given instant.
// The same entry may be fresh for one caller and stale for another, so the
// maximum acceptable age is supplied per query. Values are built per lookup
// and are not meant to be stored.
type CachedVersionList struct {
	entry CacheEntry
	asOf  time.Time
}

// NewCachedVersionList wraps an entry with the instant it is evaluated at.
func NewCachedVersionList(entry CacheEntry, asOf time.Time) CachedVersionList {
	return CachedVersionList{entry: entry, asOf: asOf}
}

// Versions returns the cached versions unchanged.
func (l CachedVersionList) Versions() VersionSet {
	return l.entry.Versions()
}

// CapturedAt returns when the listing was cached.
func (l CachedVersionList) CapturedAt() time.Time {
	return l.entry.CapturedAt()
}

// AsOf returns the instant the list is evaluated at.
func (l CachedVersionList) AsOf() time.Time {
	return l.asOf
}

// AgeAt returns how old the listing is at now.
// A clock reading earlier than the capture yields zero, never a negative age.
func (l CachedVersionList) AgeAt(now time.Time) time.Duration {
	age := now.Sub(l.entry.CapturedAt())
	if age < 0 {
		return 0
	}
	return age
}

// Age returns the age of the listing at AsOf.
func (l CachedVersionList) Age() time.Duration {
	return l.AgeAt(l.asOf)
}

// IsFreshEnough reports whether the listing is at most maxAge old.
func (l CachedVersionList) IsFreshEnough(maxAge time.Duration) bool {
	return l.Age() <= maxAge
}
