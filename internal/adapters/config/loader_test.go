package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dynver/internal/adapters/config"
	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/dynver/internal/core/ports"
	"go.trai.ch/dynver/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var _ ports.ConfigLoader = (*config.FileConfigLoader)(nil)

const fullConfig = `
version: "1"
policy:
  dynamicVersionsTimeout: 10m
  changingModulesTimeout: 30s
repositories:
  - id: local
    type: static
    versions:
      com.foo:bar: ["1.0", "1.1", "2.0-SNAPSHOT"]
  - id: central
    type: Maven
    url: https://repo.maven.apache.org/maven2
  - id: forge
    type: git
    url: https://github.com/{group}/{name}.git
dependencies:
  - com.foo:bar:1.+
  - module: com.foo:baz
    version: "[1.0,2.0)"
    changing: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	manifest, err := config.Load(writeConfig(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, manifest.Policy.DynamicVersionsTimeout)
	assert.Equal(t, 30*time.Second, manifest.Policy.ChangingModulesTimeout)

	require.Len(t, manifest.Repositories, 3)
	local := manifest.Repositories[0]
	assert.Equal(t, domain.NewRepositoryID("local"), local.ID)
	assert.Equal(t, domain.RepositoryKindStatic, local.Kind)
	bar, err := domain.ParseModuleIdentifier("com.foo:bar")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0", "1.1", "2.0-SNAPSHOT"}, local.Versions[bar])

	assert.Equal(t, domain.RepositoryKindMaven, manifest.Repositories[1].Kind)
	assert.Equal(t, "https://repo.maven.apache.org/maven2", manifest.Repositories[1].URL)
	assert.Equal(t, domain.RepositoryKindGit, manifest.Repositories[2].Kind)

	require.Len(t, manifest.Dependencies, 2)
	assert.Equal(t, "com.foo:bar:1.+", manifest.Dependencies[0].String())
	assert.False(t, manifest.Dependencies[0].Changing)
	assert.Equal(t, "com.foo:baz:[1.0,2.0)", manifest.Dependencies[1].String())
	assert.True(t, manifest.Dependencies[1].Changing)
}

func TestLoad_DefaultPolicy(t *testing.T) {
	manifest, err := config.Parse([]byte(`
repositories:
  - id: local
    type: static
`))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCachePolicy(), manifest.Policy)
	assert.Empty(t, manifest.Dependencies)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := config.Load(path)
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, path, zErr.Metadata()["path"])
	assert.Contains(t, zErr.Metadata()["cause"], fs.ErrNotExist.Error())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   error
		wantCause string
	}{
		{
			name:    "no repositories",
			content: `dependencies: ["a:b:1.0"]`,
			wantErr: domain.ErrNoRepositories,
		},
		{
			name: "unknown type",
			content: `
repositories:
  - id: x
    type: ivy
`,
			wantErr: domain.ErrUnknownRepositoryType,
		},
		{
			name: "duplicate id",
			content: `
repositories:
  - id: x
    type: static
  - id: x
    type: static
`,
			wantErr: domain.ErrDuplicateRepositoryID,
		},
		{
			name: "missing id",
			content: `
repositories:
  - type: static
`,
			wantErr: domain.ErrMissingRepositoryID,
		},
		{
			name: "maven without url",
			content: `
repositories:
  - id: central
    type: maven
`,
			wantErr: domain.ErrMissingRepositoryURL,
		},
		{
			name: "bad duration",
			content: `
policy:
  dynamicVersionsTimeout: soon
repositories:
  - id: x
    type: static
`,
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name: "negative duration",
			content: `
policy:
  changingModulesTimeout: -1m
repositories:
  - id: x
    type: static
`,
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name: "bad static module",
			content: `
repositories:
  - id: x
    type: static
    versions:
      justaname: ["1.0"]
`,
			wantErr: domain.ErrInvalidModuleNotation,
		},
		{
			name: "short dependency notation",
			content: `
repositories:
  - id: x
    type: static
dependencies:
  - com.foo:bar
`,
			wantErr:   domain.ErrConfigParseFailed,
			wantCause: "expected 'group:name:selector'",
		},
		{
			name: "empty selector",
			content: `
repositories:
  - id: x
    type: static
dependencies:
  - module: com.foo:bar
`,
			wantErr: domain.ErrInvalidSelector,
		},
		{
			name:    "malformed yaml",
			content: "repositories: [",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantCause != "" {
				var zErr *zerr.Error
				require.True(t, errors.As(err, &zErr))
				assert.Contains(t, zErr.Metadata()["cause"], tt.wantCause)
			}
		})
	}
}

func TestParse_ErrorMetadata(t *testing.T) {
	_, err := config.Parse([]byte(`
repositories:
  - id: x
    type: ivy
`))
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	meta := zErr.Metadata()
	assert.Equal(t, "x", meta["repository"])
	assert.Equal(t, "ivy", meta["type"])
}

func TestFileConfigLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("loaded configuration", gomock.Any()).Times(1)

	loader := config.NewLoader(mockLogger)
	manifest, err := loader.Load(writeConfig(t, fullConfig))
	require.NoError(t, err)
	assert.Len(t, manifest.Repositories, 3)
}
