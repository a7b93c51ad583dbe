// Package config provides the configuration loader for dynver.
package config

import (
	"os"
	"strings"
	"time"

	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/dynver/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: logger}
}

// Load reads the configuration file at path.
func (l *FileConfigLoader) Load(path string) (*domain.Manifest, error) {
	manifest, err := Load(path)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("loaded configuration",
		"path", path,
		"repositories", len(manifest.Repositories),
		"dependencies", len(manifest.Dependencies),
	)
	return manifest, nil
}

// Load reads a configuration file from the given path and returns a domain.Manifest.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		readErr := zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "cannot load configuration"), "path", path)
		return nil, zerr.With(readErr, "cause", err.Error())
	}
	return Parse(data)
}

// Parse decodes and validates configuration content.
func Parse(data []byte) (*domain.Manifest, error) {
	var file Projectfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "cannot load configuration"), "cause", err.Error())
	}

	policy, err := parsePolicy(file.Policy)
	if err != nil {
		return nil, err
	}

	repositories, err := parseRepositories(file.Repositories)
	if err != nil {
		return nil, err
	}

	dependencies, err := parseDependencies(file.Dependencies)
	if err != nil {
		return nil, err
	}

	return &domain.Manifest{
		Policy:       policy,
		Repositories: repositories,
		Dependencies: dependencies,
	}, nil
}

func parsePolicy(dto PolicyDTO) (domain.CachePolicy, error) {
	policy := domain.DefaultCachePolicy()

	if dto.DynamicVersionsTimeout != "" {
		d, err := parseTimeout("dynamicVersionsTimeout", dto.DynamicVersionsTimeout)
		if err != nil {
			return domain.CachePolicy{}, err
		}
		policy.DynamicVersionsTimeout = d
	}

	if dto.ChangingModulesTimeout != "" {
		d, err := parseTimeout("changingModulesTimeout", dto.ChangingModulesTimeout)
		if err != nil {
			return domain.CachePolicy{}, err
		}
		policy.ChangingModulesTimeout = d
	}

	return policy, nil
}

func parseTimeout(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		invalidErr := zerr.With(zerr.Wrap(domain.ErrInvalidDuration, "invalid cache policy"), "field", field)
		return 0, zerr.With(invalidErr, "value", value)
	}
	return d, nil
}

func parseRepositories(dtos []RepositoryDTO) ([]domain.RepositorySpec, error) {
	if len(dtos) == 0 {
		return nil, domain.ErrNoRepositories
	}

	seen := make(map[string]bool, len(dtos))
	specs := make([]domain.RepositorySpec, 0, len(dtos))

	for _, dto := range dtos {
		id := strings.TrimSpace(dto.ID)
		if id == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingRepositoryID, "invalid repository"), "url", dto.URL)
		}
		if seen[id] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateRepositoryID, "invalid repository"), "repository", id)
		}
		seen[id] = true

		spec := domain.RepositorySpec{
			ID:   domain.NewRepositoryID(id),
			Kind: domain.RepositoryKind(strings.ToLower(strings.TrimSpace(dto.Type))),
			URL:  strings.TrimSpace(dto.URL),
		}

		switch spec.Kind {
		case domain.RepositoryKindStatic:
			versions, err := parseStaticVersions(id, dto.Versions)
			if err != nil {
				return nil, err
			}
			spec.Versions = versions
		case domain.RepositoryKindMaven, domain.RepositoryKindGit:
			if spec.URL == "" {
				return nil, zerr.With(zerr.Wrap(domain.ErrMissingRepositoryURL, "invalid repository"), "repository", id)
			}
		default:
			unknownErr := zerr.With(zerr.Wrap(domain.ErrUnknownRepositoryType, "invalid repository"), "repository", id)
			return nil, zerr.With(unknownErr, "type", dto.Type)
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

func parseStaticVersions(id string, raw map[string][]string) (map[domain.ModuleIdentifier][]string, error) {
	versions := make(map[domain.ModuleIdentifier][]string, len(raw))
	for notation, list := range raw {
		module, err := domain.ParseModuleIdentifier(notation)
		if err != nil {
			return nil, zerr.With(err, "repository", id)
		}
		versions[module] = list
	}
	return versions, nil
}

func parseDependencies(dtos []DependencyDTO) ([]domain.DependencyRequest, error) {
	requests := make([]domain.DependencyRequest, 0, len(dtos))
	for _, dto := range dtos {
		module, err := domain.ParseModuleIdentifier(dto.Module)
		if err != nil {
			return nil, err
		}

		selector := strings.TrimSpace(dto.Version)
		if selector == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSelector, "empty version selector"), "module", module.String())
		}

		requests = append(requests, domain.DependencyRequest{
			Module:   module,
			Selector: domain.NewInternedString(selector),
			Changing: dto.Changing,
		})
	}
	return requests, nil
}
