package domain

import "time"

// DefaultCacheTimeout is the default max age of a cached listing.
const DefaultCacheTimeout = 24 * time.Hour

// CachePolicy decides how old a cached listing may be before it is listed again.
// It belongs to the resolution workflow; the cache itself never expires entries.
type CachePolicy struct {
	// DynamicVersionsTimeout applies to ordinary dynamic version requests.
	DynamicVersionsTimeout time.Duration
	// ChangingModulesTimeout applies to modules marked as changing.
	ChangingModulesTimeout time.Duration
}

// DefaultCachePolicy returns a policy with both timeouts set to DefaultCacheTimeout.
func DefaultCachePolicy() CachePolicy {
	return CachePolicy{
		DynamicVersionsTimeout: DefaultCacheTimeout,
		ChangingModulesTimeout: DefaultCacheTimeout,
	}
}

// MaxAge returns the acceptable age for a request.
func (p CachePolicy) MaxAge(changing bool) time.Duration {
	if changing {
		return p.ChangingModulesTimeout
	}
	return p.DynamicVersionsTimeout
}
