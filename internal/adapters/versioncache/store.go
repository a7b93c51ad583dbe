// Package versioncache implements the in-memory cache of module version listings.
package versioncache

import (
	"sync"
	"time"

	"go.trai.ch/dynver/internal/core/domain"
)

// Store implements ports.VersionCacheStore in memory.
//
// Entries are immutable and published by swapping a pointer in a sync.Map, so
// a reader sees either the previous entry or the complete new one, and
// operations on different keys never wait on each other. The store lives for
// one session and never shrinks.
type Store struct {
	entries sync.Map // domain.CacheKey -> *domain.CacheEntry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Put stores or replaces the listing for key.
func (s *Store) Put(key domain.CacheKey, versions domain.VersionSet, capturedAt time.Time) {
	entry := domain.NewCacheEntry(versions, capturedAt)
	s.entries.Store(key, &entry)
}

// Get returns the entry for key, or false if key was never written.
func (s *Store) Get(key domain.CacheKey) (domain.CacheEntry, bool) {
	v, ok := s.entries.Load(key)
	if !ok {
		return domain.CacheEntry{}, false
	}
	return *v.(*domain.CacheEntry), true
}
