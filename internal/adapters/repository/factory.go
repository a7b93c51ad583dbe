// Package repository implements the version repositories dynver can list modules from.
package repository

import (
	"net/http"
	"time"

	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/dynver/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

// Factory implements ports.RepositoryFactory.
type Factory struct {
	httpClient *http.Client
	logger     ports.Logger
}

// NewFactory creates a Factory with a default HTTP client.
func NewFactory(logger ports.Logger) *Factory {
	return NewFactoryWithClient(&http.Client{Timeout: httpClientTimeout}, logger)
}

// NewFactoryWithClient creates a Factory using client for HTTP repositories.
func NewFactoryWithClient(client *http.Client, logger ports.Logger) *Factory {
	return &Factory{httpClient: client, logger: logger}
}

// Build returns the repository described by spec.
func (f *Factory) Build(spec domain.RepositorySpec) (ports.Repository, error) {
	switch spec.Kind {
	case domain.RepositoryKindStatic:
		return NewStatic(spec.ID, spec.Versions), nil
	case domain.RepositoryKindMaven:
		return NewMaven(spec.ID, spec.URL, f.httpClient), nil
	case domain.RepositoryKindGit:
		return NewGit(spec.ID, spec.URL, f.logger), nil
	default:
		unknownErr := zerr.With(zerr.Wrap(domain.ErrUnknownRepositoryType, "cannot build repository"), "repository", spec.ID.String())
		return nil, zerr.With(unknownErr, "type", string(spec.Kind))
	}
}
