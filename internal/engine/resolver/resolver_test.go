package resolver_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dynver/internal/adapters/versioncache"
	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/dynver/internal/core/ports"
	"go.trai.ch/dynver/internal/core/ports/mocks"
	"go.trai.ch/dynver/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl     *gomock.Controller
	clock    clockwork.FakeClock
	cache    *versioncache.Cache
	resolver *resolver.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	clk := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	cache := versioncache.NewCache(versioncache.NewStore(), clk, log)

	return &fixture{
		ctrl:     ctrl,
		clock:    clk,
		cache:    cache,
		resolver: resolver.NewResolver(cache, log),
	}
}

func (f *fixture) repo(id string) *mocks.MockRepository {
	repo := mocks.NewMockRepository(f.ctrl)
	repo.EXPECT().ID().Return(domain.NewRepositoryID(id)).AnyTimes()
	return repo
}

func request(t *testing.T, notation, selector string, changing bool) domain.DependencyRequest {
	t.Helper()
	module, err := domain.ParseModuleIdentifier(notation)
	require.NoError(t, err)
	return domain.DependencyRequest{
		Module:   module,
		Selector: domain.NewInternedString(selector),
		Changing: changing,
	}
}

func hourPolicy() resolver.Options {
	return resolver.Options{Policy: domain.CachePolicy{
		DynamicVersionsTimeout: time.Hour,
		ChangingModulesTimeout: time.Minute,
	}}
}

func TestResolve_ListsThenReusesFreshListing(t *testing.T) {
	f := newFixture(t)
	repo := f.repo("central")
	req := request(t, "com.foo:bar", "1.+", false)

	repo.EXPECT().ListVersions(gomock.Any(), req.Module).
		Return(domain.NewVersionSet("1.0", "1.1", "2.0"), nil).Times(1)

	first, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
	require.NoError(t, err)
	assert.Equal(t, "1.1", first.Version)
	assert.Equal(t, "central", first.Repository.String())
	assert.False(t, first.FromCache)

	f.clock.Advance(time.Hour)

	second, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
	require.NoError(t, err)
	assert.Equal(t, "1.1", second.Version)
	assert.True(t, second.FromCache)
}

func TestResolve_StaleListingIsRefetched(t *testing.T) {
	f := newFixture(t)
	repo := f.repo("central")
	req := request(t, "com.foo:bar", "latest", false)

	gomock.InOrder(
		repo.EXPECT().ListVersions(gomock.Any(), req.Module).Return(domain.NewVersionSet("1.0"), nil),
		repo.EXPECT().ListVersions(gomock.Any(), req.Module).Return(domain.NewVersionSet("1.0", "1.1"), nil),
	)

	_, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
	require.NoError(t, err)

	f.clock.Advance(time.Hour + time.Millisecond)

	res, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
	require.NoError(t, err)
	assert.Equal(t, "1.1", res.Version)
	assert.False(t, res.FromCache)

	cached, ok, err := f.cache.CachedVersionList(repo.ID(), req.Module)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), cached.Age())
}

func TestResolve_ChangingModulesUseChangingTimeout(t *testing.T) {
	f := newFixture(t)
	repo := f.repo("central")
	req := request(t, "com.foo:bar", "latest", true)

	repo.EXPECT().ListVersions(gomock.Any(), req.Module).Return(domain.NewVersionSet("1.0"), nil).Times(2)

	_, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
	require.NoError(t, err)

	f.clock.Advance(2 * time.Minute)

	res, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
	require.NoError(t, err)
	assert.False(t, res.FromCache)
}

func TestResolve_RefreshIgnoresCache(t *testing.T) {
	f := newFixture(t)
	repo := f.repo("central")
	req := request(t, "com.foo:bar", "latest", false)

	repo.EXPECT().ListVersions(gomock.Any(), req.Module).Return(domain.NewVersionSet("1.0"), nil).Times(2)

	opts := hourPolicy()
	_, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, opts)
	require.NoError(t, err)

	opts.Refresh = true
	res, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, opts)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
}

func TestResolve_OfflineReusesStaleListing(t *testing.T) {
	f := newFixture(t)
	repo := f.repo("central")
	req := request(t, "com.foo:bar", "latest", false)

	require.NoError(t, f.cache.CacheVersionList(repo.ID(), req.Module, domain.NewVersionSet("0.1")))
	f.clock.Advance(48 * time.Hour)

	opts := hourPolicy()
	opts.Offline = true

	res, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, opts)
	require.NoError(t, err)
	assert.Equal(t, "0.1", res.Version)
	assert.True(t, res.FromCache)
}

func TestResolve_OfflineMiss(t *testing.T) {
	f := newFixture(t)
	repo := f.repo("central")
	req := request(t, "com.foo:bar", "latest", false)

	opts := hourPolicy()
	opts.Offline = true

	_, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, opts)
	assert.ErrorIs(t, err, domain.ErrOfflineCacheMiss)
}

func TestResolve_FallsThroughRepositories(t *testing.T) {
	f := newFixture(t)
	local := f.repo("local")
	central := f.repo("central")
	req := request(t, "com.foo:bar", "[2.0,3.0)", false)

	gomock.InOrder(
		local.EXPECT().ListVersions(gomock.Any(), req.Module).Return(domain.NewVersionSet("1.0"), nil),
		central.EXPECT().ListVersions(gomock.Any(), req.Module).Return(domain.NewVersionSet("2.0", "2.5", "3.0"), nil),
	)

	res, err := f.resolver.Resolve(context.Background(), []ports.Repository{local, central}, req, hourPolicy())
	require.NoError(t, err)
	assert.Equal(t, "central", res.Repository.String())
	assert.Equal(t, "2.5", res.Version)
}

func TestResolve_NoMatch(t *testing.T) {
	f := newFixture(t)
	repo := f.repo("central")
	req := request(t, "com.foo:bar", "9.+", false)

	repo.EXPECT().ListVersions(gomock.Any(), req.Module).Return(domain.NewVersionSet(), nil)

	_, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
	assert.ErrorIs(t, err, domain.ErrNoMatchingVersion)
}

func TestResolve_Errors(t *testing.T) {
	f := newFixture(t)
	repo := f.repo("central")

	_, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, request(t, "com.foo:bar", "[1.0", false), hourPolicy())
	require.ErrorIs(t, err, domain.ErrInvalidSelector)

	_, err = f.resolver.Resolve(context.Background(), nil, request(t, "com.foo:bar", "1.0", false), hourPolicy())
	require.ErrorIs(t, err, domain.ErrNoRepositories)

	listErr := errors.New("boom")
	req := request(t, "com.foo:bar", "1.0", false)
	repo.EXPECT().ListVersions(gomock.Any(), req.Module).Return(domain.VersionSet{}, listErr)

	_, err = f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
	require.ErrorIs(t, err, listErr)

	_, ok, err := f.cache.CachedVersionList(repo.ID(), req.Module)
	require.NoError(t, err)
	assert.False(t, ok, "failed listings are not cached")
}

func TestResolveAll_PreservesOrderAndJoinsErrors(t *testing.T) {
	f := newFixture(t)
	repo := f.repo("central")

	a := request(t, "com.foo:a", "latest", false)
	b := request(t, "com.foo:b", "latest", false)
	c := request(t, "com.foo:c", "latest", false)

	repo.EXPECT().ListVersions(gomock.Any(), a.Module).Return(domain.NewVersionSet("1.0"), nil)
	repo.EXPECT().ListVersions(gomock.Any(), b.Module).Return(domain.NewVersionSet("2.0"), nil)
	repo.EXPECT().ListVersions(gomock.Any(), c.Module).Return(domain.NewVersionSet(), nil)

	opts := hourPolicy()
	opts.Parallelism = 2

	_, err := f.resolver.ResolveAll(context.Background(), []ports.Repository{repo}, []domain.DependencyRequest{a, b, c}, opts)
	require.ErrorIs(t, err, domain.ErrNoMatchingVersion)

	results, err := f.resolver.ResolveAll(context.Background(), []ports.Repository{repo}, []domain.DependencyRequest{b, a}, opts)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "2.0", results[0].Version)
	assert.Equal(t, "1.0", results[1].Version)
	assert.True(t, results[0].FromCache)
}

func TestResolveAll_CanceledContext(t *testing.T) {
	f := newFixture(t)
	repo := f.repo("central")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.resolver.ResolveAll(ctx, []ports.Repository{repo}, []domain.DependencyRequest{request(t, "com.foo:a", "latest", false)}, hourPolicy())
	assert.ErrorIs(t, err, context.Canceled)
}

// blockingRepository counts listings and blocks each one until release is closed.
type blockingRepository struct {
	id       domain.RepositoryID
	versions domain.VersionSet
	calls    atomic.Int32
	release  chan struct{}
}

func (r *blockingRepository) ID() domain.RepositoryID {
	return r.id
}

func (r *blockingRepository) ListVersions(ctx context.Context, _ domain.ModuleIdentifier) (domain.VersionSet, error) {
	r.calls.Add(1)
	select {
	case <-r.release:
		return r.versions, nil
	case <-ctx.Done():
		return domain.VersionSet{}, ctx.Err()
	}
}

func TestResolveAll_CollapsesConcurrentListings(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		repo := &blockingRepository{
			id:       domain.NewRepositoryID("central"),
			versions: domain.NewVersionSet("1.0", "1.1"),
			release:  make(chan struct{}),
		}

		requests := []domain.DependencyRequest{
			request(t, "com.foo:bar", "latest", false),
			request(t, "com.foo:bar", "1.0", false),
			request(t, "com.foo:bar", "[1.0,2.0)", false),
		}

		done := make(chan []domain.Resolution)
		go func() {
			results, err := f.resolver.ResolveAll(context.Background(), []ports.Repository{repo}, requests, hourPolicy())
			assert.NoError(t, err)
			done <- results
		}()

		synctest.Wait()
		assert.Equal(t, int32(1), repo.calls.Load())

		close(repo.release)
		results := <-done

		require.Len(t, results, 3)
		assert.Equal(t, "1.1", results[0].Version)
		assert.Equal(t, "1.0", results[1].Version)
		assert.Equal(t, "1.1", results[2].Version)
		assert.Equal(t, int32(1), repo.calls.Load())
	})
}

func TestResolve_CacheFailuresPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockModuleVersionsCache(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().ID().Return(domain.NewRepositoryID("central")).AnyTimes()

	req := request(t, "com.foo:bar", "latest", false)
	res := resolver.NewResolver(cache, log)

	lookupErr := errors.New("lookup failed")
	cache.EXPECT().CachedVersionList(domain.NewRepositoryID("central"), req.Module).
		Return(domain.CachedVersionList{}, false, lookupErr)

	_, err := res.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
	require.ErrorIs(t, err, lookupErr)

	writeErr := errors.New("write failed")
	gomock.InOrder(
		cache.EXPECT().CachedVersionList(gomock.Any(), req.Module).Return(domain.CachedVersionList{}, false, nil),
		repo.EXPECT().ListVersions(gomock.Any(), req.Module).Return(domain.NewVersionSet("1.0"), nil),
		cache.EXPECT().CacheVersionList(domain.NewRepositoryID("central"), req.Module, domain.NewVersionSet("1.0")).Return(writeErr),
	)

	_, err = res.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
	require.ErrorIs(t, err, writeErr)
}

func TestResolve_ConcurrentListingsKeepPairsApart(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		release := make(chan struct{})

		// Both pairs render as "a/x/y:z" when joined with a slash.
		nested := &blockingRepository{id: domain.NewRepositoryID("a/x"), versions: domain.NewVersionSet("1.0"), release: release}
		parent := &blockingRepository{id: domain.NewRepositoryID("a"), versions: domain.NewVersionSet("9.0"), release: release}

		nestedReq := request(t, "y:z", "latest", false)
		parentReq := request(t, "x/y:z", "latest", false)

		results := make([]domain.Resolution, 2)
		done := make(chan struct{}, 2)
		resolve := func(i int, repo ports.Repository, req domain.DependencyRequest) {
			res, err := f.resolver.Resolve(context.Background(), []ports.Repository{repo}, req, hourPolicy())
			assert.NoError(t, err)
			results[i] = res
			done <- struct{}{}
		}

		go resolve(0, nested, nestedReq)
		go resolve(1, parent, parentReq)

		synctest.Wait()
		close(release)
		<-done
		<-done

		assert.Equal(t, int32(1), nested.calls.Load())
		assert.Equal(t, int32(1), parent.calls.Load())
		assert.Equal(t, "1.0", results[0].Version)
		assert.Equal(t, "a/x", results[0].Repository.String())
		assert.Equal(t, "9.0", results[1].Version)

		cached, ok, err := f.cache.CachedVersionList(nested.id, nestedReq.Module)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []string{"1.0"}, cached.Versions().Slice())
	})
}
