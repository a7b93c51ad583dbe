package repository

import (
	"context"
	"strings"

	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/dynver/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/src-d/go-git.v4"
	"gopkg.in/src-d/go-git.v4/config"
	"gopkg.in/src-d/go-git.v4/plumbing"
	"gopkg.in/src-d/go-git.v4/storage/memory"
)

const (
	remoteName = "origin"
	tagPrefix  = "refs/tags/"
)

// RefLister lists the references advertised by a git remote.
type RefLister func(ctx context.Context, url string) ([]*plumbing.Reference, error)

// Git lists versions from the tags of a git remote, one remote per module.
type Git struct {
	id          domain.RepositoryID
	urlTemplate string
	listRefs    RefLister
	logger      ports.Logger
}

// NewGit creates a Git repository. urlTemplate may contain {group} and {name}.
func NewGit(id domain.RepositoryID, urlTemplate string, logger ports.Logger) *Git {
	return NewGitWithLister(id, urlTemplate, listRemoteRefs, logger)
}

// NewGitWithLister creates a Git repository using a custom reference lister.
func NewGitWithLister(id domain.RepositoryID, urlTemplate string, lister RefLister, logger ports.Logger) *Git {
	return &Git{
		id:          id,
		urlTemplate: urlTemplate,
		listRefs:    lister,
		logger:      logger,
	}
}

// ID returns the repository id.
func (g *Git) ID() domain.RepositoryID {
	return g.id
}

// remoteURL expands the URL template for module.
func (g *Git) remoteURL(module domain.ModuleIdentifier) string {
	return strings.NewReplacer("{group}", module.Group(), "{name}", module.Name()).Replace(g.urlTemplate)
}

// ListVersions lists refs/tags/* of the module's remote, stripping a leading "v".
func (g *Git) ListVersions(ctx context.Context, module domain.ModuleIdentifier) (domain.VersionSet, error) {
	url := g.remoteURL(module)
	g.logger.Debug("listing git tags", "repository", g.id.String(), "url", url)

	refs, err := g.listRefs(ctx, url)
	if err != nil {
		listErr := zerr.With(listingFailure("failed to list remote tags", err), "repository", g.id.String())
		listErr = zerr.With(listErr, "module", module.String())
		return domain.VersionSet{}, zerr.With(listErr, "url", url)
	}

	versions := make([]string, 0, len(refs))
	for _, ref := range refs {
		name := ref.Name()
		if !name.IsTag() {
			continue
		}
		tag := strings.TrimPrefix(strings.TrimPrefix(name.String(), tagPrefix), "v")
		if tag != "" {
			versions = append(versions, tag)
		}
	}
	return domain.NewVersionSet(versions...), nil
}

// listRemoteRefs advertises the refs of url without cloning it.
func listRemoteRefs(ctx context.Context, url string) ([]*plumbing.Reference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, err := git.Init(memory.NewStorage(), nil)
	if err != nil {
		return nil, err
	}

	remote, err := repo.CreateRemote(&config.RemoteConfig{
		Name: remoteName,
		URLs: []string{url},
	})
	if err != nil {
		return nil, err
	}

	// remote.List takes no context; stop waiting on cancellation and let the
	// transport finish in the background.
	done := make(chan refsResult, 1)
	go func() {
		refs, err := remote.List(&git.ListOptions{})
		done <- refsResult{refs: refs, err: err}
	}()

	select {
	case res := <-done:
		return res.refs, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type refsResult struct {
	refs []*plumbing.Reference
	err  error
}
