// Package resolver resolves dynamic version requests against repositories,
// reusing cached version listings that are fresh enough.
package resolver

import (
	"context"
	"errors"
	"strconv"

	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/dynver/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Options controls how listings are reused during resolution.
type Options struct {
	// Policy supplies the maximum acceptable listing age.
	Policy domain.CachePolicy
	// Offline reuses any cached listing regardless of age and never lists.
	Offline bool
	// Refresh ignores cached listings and always lists.
	Refresh bool
	// Parallelism bounds concurrent resolutions in ResolveAll.
	Parallelism int
}

// Resolver resolves dependency requests.
type Resolver struct {
	cache  ports.ModuleVersionsCache
	logger ports.Logger
	flight singleflight.Group
}

// NewResolver creates a Resolver backed by cache.
func NewResolver(cache ports.ModuleVersionsCache, logger ports.Logger) *Resolver {
	return &Resolver{cache: cache, logger: logger}
}

// Resolve walks repos in order and returns the highest version of the first
// repository whose listing satisfies the request.
func (r *Resolver) Resolve(
	ctx context.Context,
	repos []ports.Repository,
	request domain.DependencyRequest,
	opts Options,
) (domain.Resolution, error) {
	selector, err := ParseSelector(request.Selector.String())
	if err != nil {
		return domain.Resolution{}, zerr.With(err, "dependency", request.String())
	}

	if len(repos) == 0 {
		return domain.Resolution{}, domain.ErrNoRepositories
	}

	for _, repo := range repos {
		versions, fromCache, err := r.versions(ctx, repo, request, opts)
		if err != nil {
			return domain.Resolution{}, err
		}

		version, ok := selector.Select(versions)
		if !ok {
			continue
		}

		r.logger.Debug("resolved dependency",
			"dependency", request.String(),
			"repository", repo.ID().String(),
			"version", version,
			"cached", fromCache,
		)
		return domain.Resolution{
			Request:    request,
			Repository: repo.ID(),
			Version:    version,
			FromCache:  fromCache,
		}, nil
	}

	return domain.Resolution{}, zerr.With(zerr.Wrap(domain.ErrNoMatchingVersion, "cannot resolve dependency"), "dependency", request.String())
}

// versions returns the listing of request.Module in repo, and whether it came from the cache.
func (r *Resolver) versions(
	ctx context.Context,
	repo ports.Repository,
	request domain.DependencyRequest,
	opts Options,
) (domain.VersionSet, bool, error) {
	repoID := repo.ID()

	cached, ok, err := r.cache.CachedVersionList(repoID, request.Module)
	if err != nil {
		return domain.VersionSet{}, false, err
	}

	if ok && r.reusable(cached, request, opts) {
		r.logger.Debug("using cached version list",
			"repository", repoID.String(),
			"module", request.Module.String(),
			"age", cached.Age(),
		)
		return cached.Versions(), true, nil
	}

	if opts.Offline {
		missErr := zerr.With(zerr.Wrap(domain.ErrOfflineCacheMiss, "cannot list versions"), "repository", repoID.String())
		return domain.VersionSet{}, false, zerr.With(missErr, "module", request.Module.String())
	}

	key, err := domain.NewCacheKey(repoID, request.Module)
	if err != nil {
		return domain.VersionSet{}, false, err
	}

	result, err, _ := r.flight.Do(flightKey(key), func() (any, error) {
		return r.list(ctx, repo, request.Module, cached, ok)
	})
	if err != nil {
		return domain.VersionSet{}, false, err
	}
	return result.(domain.VersionSet), false, nil
}

// flightKey encodes key so that distinct (repository, module) pairs never collide,
// whatever characters their components contain.
func flightKey(key domain.CacheKey) string {
	module := key.Module()
	return strconv.Quote(key.Repository().String()) + "\x00" +
		strconv.Quote(module.Group()) + "\x00" + strconv.Quote(module.Name())
}

// reusable applies the freshness policy to a cached listing.
func (r *Resolver) reusable(cached domain.CachedVersionList, request domain.DependencyRequest, opts Options) bool {
	switch {
	case opts.Offline:
		return true
	case opts.Refresh:
		return false
	default:
		return cached.IsFreshEnough(opts.Policy.MaxAge(request.Changing))
	}
}

// list queries repo and writes the listing back to the cache.
func (r *Resolver) list(
	ctx context.Context,
	repo ports.Repository,
	module domain.ModuleIdentifier,
	previous domain.CachedVersionList,
	hadPrevious bool,
) (domain.VersionSet, error) {
	versions, err := repo.ListVersions(ctx, module)
	if err != nil {
		return domain.VersionSet{}, err
	}

	if hadPrevious && previous.Versions().Digest() != versions.Digest() {
		r.logger.Info("version list changed",
			"repository", repo.ID().String(),
			"module", module.String(),
			"previous", previous.Versions().Len(),
			"current", versions.Len(),
		)
	}

	if err := r.cache.CacheVersionList(repo.ID(), module, versions); err != nil {
		return domain.VersionSet{}, err
	}
	return versions, nil
}

// ResolveAll resolves every request with at most opts.Parallelism in flight.
// Results keep the order of requests. Failures are joined.
func (r *Resolver) ResolveAll(
	ctx context.Context,
	repos []ports.Repository,
	requests []domain.DependencyRequest,
	opts Options,
) ([]domain.Resolution, error) {
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = domain.DefaultParallelism
	}

	results := make([]domain.Resolution, len(requests))
	errs := make([]error, len(requests))

	var g errgroup.Group
	g.SetLimit(parallelism)

	for i, request := range requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], errs[i] = r.Resolve(ctx, repos, request, opts)
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
