// Package app implements the application layer for dynver.
package app

import (
	"context"

	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/dynver/internal/core/ports"
	"go.trai.ch/dynver/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// RunOptions controls a resolution run.
type RunOptions struct {
	// Modules restricts resolution to dependencies on these "group:name" modules.
	Modules []string
	// Offline resolves from cached listings only. It takes precedence over Refresh.
	Offline bool
	// Refresh lists every module again, ignoring cached listings.
	Refresh bool
	// Parallelism bounds concurrent resolutions. Zero uses the default.
	Parallelism int
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	factory      ports.RepositoryFactory
	resolver     *resolver.Resolver
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	factory ports.RepositoryFactory,
	res *resolver.Resolver,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		factory:      factory,
		resolver:     res,
		logger:       logger,
	}
}

// Resolve loads the configuration at configPath and resolves the selected dependencies.
func (a *App) Resolve(ctx context.Context, configPath string, opts RunOptions) ([]domain.Resolution, error) {
	if configPath == "" {
		configPath = domain.ConfigFileName
	}

	// 1. Load the configuration
	manifest, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Build the repositories in declaration order
	repos, err := a.buildRepositories(manifest.Repositories)
	if err != nil {
		return nil, err
	}

	// 3. Select the dependencies to resolve
	requests, err := a.selectDependencies(manifest.Dependencies, opts.Modules)
	if err != nil {
		return nil, err
	}

	// 4. Resolve
	resolutions, err := a.resolver.ResolveAll(ctx, repos, requests, resolver.Options{
		Policy:      manifest.Policy,
		Offline:     opts.Offline,
		Refresh:     opts.Refresh && !opts.Offline,
		Parallelism: opts.Parallelism,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "dependency resolution failed")
	}

	return resolutions, nil
}

func (a *App) buildRepositories(specs []domain.RepositorySpec) ([]ports.Repository, error) {
	if len(specs) == 0 {
		return nil, domain.ErrNoRepositories
	}

	repos := make([]ports.Repository, 0, len(specs))
	for _, spec := range specs {
		repo, err := a.factory.Build(spec)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

func (a *App) selectDependencies(deps []domain.DependencyRequest, modules []string) ([]domain.DependencyRequest, error) {
	if len(modules) == 0 {
		return deps, nil
	}

	wanted := make(map[domain.ModuleIdentifier]bool, len(modules))
	for _, notation := range modules {
		module, err := domain.ParseModuleIdentifier(notation)
		if err != nil {
			return nil, err
		}
		wanted[module] = false
	}

	selected := make([]domain.DependencyRequest, 0, len(modules))
	for _, dep := range deps {
		if _, ok := wanted[dep.Module]; ok {
			wanted[dep.Module] = true
			selected = append(selected, dep)
		}
	}

	for module, matched := range wanted {
		if !matched {
			a.logger.Warn("module is not a configured dependency", "module", module.String())
		}
	}

	if len(selected) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoDependenciesSelected, "nothing to resolve"), "modules", modules)
	}
	return selected, nil
}
