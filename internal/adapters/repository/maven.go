package repository

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"strings"

	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/zerr"
)

const mavenMetadataFile = "maven-metadata.xml"

// mavenMetadata is the subset of maven-metadata.xml needed to list versions.
type mavenMetadata struct {
	XMLName    xml.Name `xml:"metadata"`
	Versioning struct {
		Versions []string `xml:"versions>version"`
	} `xml:"versioning"`
}

// Maven lists versions from the module-level maven-metadata.xml of a Maven layout repository.
type Maven struct {
	id         domain.RepositoryID
	baseURL    string
	httpClient *http.Client
}

// NewMaven creates a Maven repository rooted at baseURL.
func NewMaven(id domain.RepositoryID, baseURL string, client *http.Client) *Maven {
	return &Maven{
		id:         id,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// ID returns the repository id.
func (m *Maven) ID() domain.RepositoryID {
	return m.id
}

// metadataURL returns <base>/<group path>/<name>/maven-metadata.xml.
func (m *Maven) metadataURL(module domain.ModuleIdentifier) string {
	groupPath := strings.ReplaceAll(module.Group(), ".", "/")
	return m.baseURL + "/" + groupPath + "/" + module.Name() + "/" + mavenMetadataFile
}

// ListVersions fetches and parses the module metadata. A missing module yields an empty set.
func (m *Maven) ListVersions(ctx context.Context, module domain.ModuleIdentifier) (domain.VersionSet, error) {
	url := m.metadataURL(module)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return domain.VersionSet{}, m.listingError(listingFailure("request failed", err), module)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return domain.VersionSet{}, m.listingError(listingFailure("request failed", err), module)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return domain.VersionSet{}, nil
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.Wrap(domain.ErrListingFailed, "unexpected response"), "status_code", resp.StatusCode)
		return domain.VersionSet{}, m.listingError(zerr.With(statusErr, "url", url), module)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.VersionSet{}, m.listingError(listingFailure("request failed", err), module)
	}

	var metadata mavenMetadata
	if err := xml.Unmarshal(body, &metadata); err != nil {
		return domain.VersionSet{}, m.listingError(listingFailure("failed to parse maven metadata", err), module)
	}

	versions := make([]string, 0, len(metadata.Versioning.Versions))
	for _, v := range metadata.Versioning.Versions {
		if v = strings.TrimSpace(v); v != "" {
			versions = append(versions, v)
		}
	}
	return domain.NewVersionSet(versions...), nil
}

// listingFailure keeps ErrListingFailed in the chain and records the transport error as metadata.
func listingFailure(msg string, cause error) error {
	return zerr.With(zerr.Wrap(domain.ErrListingFailed, msg), "cause", cause.Error())
}

func (m *Maven) listingError(err error, module domain.ModuleIdentifier) error {
	return zerr.With(zerr.With(err, "repository", m.id.String()), "module", module.String())
}
