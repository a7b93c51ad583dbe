// Package clock implements the session clock used to timestamp cached listings.
package clock

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// BuildClock reports the instant the current build commenced.
// Every listing cached during one build is stamped with the same instant.
type BuildClock struct {
	source clockwork.Clock

	mu        sync.RWMutex
	commenced time.Time
}

// New creates a BuildClock backed by the real wall clock.
func New() *BuildClock {
	return NewWithSource(clockwork.NewRealClock())
}

// NewWithSource creates a BuildClock reading from source.
func NewWithSource(source clockwork.Clock) *BuildClock {
	return &BuildClock{
		source:    source,
		commenced: source.Now(),
	}
}

// Now returns the instant the current build commenced.
func (c *BuildClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.commenced
}

// Reset marks the start of a new build in a long-lived process.
func (c *BuildClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commenced = c.source.Now()
}
