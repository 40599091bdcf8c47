//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestExpandEnv(t *testing.T) {
	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.ExpandEnv("")

		// then
		assert.Empty(t, result)
	})

	t.Run("should return inline value unchanged", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.ExpandEnv("Iv1.abc123")

		// then
		assert.Equal(t, "Iv1.abc123", result)
	})

	t.Run("should expand env var embedded in string", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_GHE_HOST", "ghe.example.com")
		raw := "https://${TEST_GHE_HOST}/api"

		// when
		result := entities.ExpandEnv(raw)

		// then
		assert.Equal(t, "https://ghe.example.com/api", result)
	})

	t.Run("should return empty for unset env var", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.ExpandEnv("${DEFINITELY_NOT_SET_VAR_12345}")

		// then
		assert.Empty(t, result)
	})
}

func TestReadSecretFile(t *testing.T) {
	t.Parallel()

	t.Run("should read secret from file when path exists", func(t *testing.T) {
		t.Parallel()

		// given
		secretFile := filepath.Join(t.TempDir(), "client.secret")
		require.NoError(t, os.WriteFile(secretFile, []byte("  file-based-secret  \n"), 0o600))

		// when
		result := entities.ReadSecretFile(secretFile)

		// then
		assert.Equal(t, "file-based-secret", result)
	})

	t.Run("should return value when it is not a file", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.ReadSecretFile("inline-secret")

		// then
		assert.Equal(t, "inline-secret", result)
	})

	t.Run("should return value when it names a directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		result := entities.ReadSecretFile(dir)

		// then
		assert.Equal(t, dir, result)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("should pass with empty settings", func(t *testing.T) {
		t.Parallel()

		// when
		err := entities.Validate(&entities.Settings{})

		// then
		require.NoError(t, err)
	})

	t.Run("should fail when connection id is empty", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{
			Connections: []entities.ConnectionSettings{{Provider: "GitHub"}},
		}

		// when
		err := entities.Validate(settings)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connections[0].id is required")
	})

	t.Run("should fail when connection provider is empty", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{
			Connections: []entities.ConnectionSettings{{ID: "PROJECT_EXT_1"}},
		}

		// when
		err := entities.Validate(settings)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connections[0].provider is required")
	})

	t.Run("should fail when a nested project id is duplicated", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{
			Projects: []entities.ProjectSettings{
				{ID: "Root", Projects: []entities.ProjectSettings{{ID: "Root"}}},
			},
		}

		// when
		err := entities.Validate(settings)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `projects[0].projects[0].id "Root" is duplicated`)
	})

	t.Run("should fail when a VCS root id is empty", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{
			Projects: []entities.ProjectSettings{
				{
					ID: "Root",
					BuildTypes: []entities.BuildTypeSettings{
						{ID: "Root_Build", VcsRoots: []entities.VcsRootSettings{{VcsName: entities.VcsNameGit}}},
					},
				},
			},
		}

		// when
		err := entities.Validate(settings)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "projects[0].build_types[0].vcs_roots[0].id is required")
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should load a valid settings file", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_GITHUB_CLIENT_SECRET", "s3cr3t")
		cfgFile := filepath.Join(t.TempDir(), "ghlink.yaml")
		content := `
connections:
  - id: PROJECT_EXT_1
    provider: GitHub
    name: GitHub.com
    parameters:
      clientId: Iv1.abc
      secure:clientSecret: ${TEST_GITHUB_CLIENT_SECRET}
projects:
  - id: Root
    build_types:
      - id: Root_Build
        vcs_roots:
          - id: Root_Widgets
            vcs_name: jetbrains.git
            properties:
              url: git@github.com:acme/widgets.git
    projects:
      - id: Root_Legacy
        archived: true
`
		require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		require.Len(t, settings.Connections, 1)
		assert.Equal(t, "GitHub", settings.Connections[0].Provider)
		assert.Equal(t, "Iv1.abc", settings.Connections[0].Parameters[entities.ParamClientID])
		assert.Equal(t, "s3cr3t", settings.Connections[0].Parameters[entities.ParamClientSecret])
		require.Len(t, settings.Projects, 1)
		root := settings.Projects[0].BuildTypes[0].VcsRoots[0]
		assert.Equal(t, "git@github.com:acme/widgets.git", root.Properties[entities.PropertyGitURL])
		require.Len(t, settings.Projects[0].Projects, 1)
		assert.True(t, settings.Projects[0].Projects[0].Archived)
	})

	t.Run("should read the client secret from a file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		secretFile := filepath.Join(tmpDir, "client.secret")
		require.NoError(t, os.WriteFile(secretFile, []byte("from-file\n"), 0o600))
		cfgFile := filepath.Join(tmpDir, "ghlink.yaml")
		content := "connections:\n  - id: c1\n    provider: GHE\n    parameters:\n      secure:clientSecret: " +
			secretFile + "\n"
		require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "from-file", settings.Connections[0].Parameters[entities.ParamClientSecret])
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := filepath.Join(t.TempDir(), "ghlink.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("projects: [unclosed"), 0o600))

		// when
		_, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}
