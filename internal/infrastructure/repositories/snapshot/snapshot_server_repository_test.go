//go:build unit

package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
	"github.com/rios0rios0/ghlink/internal/infrastructure/repositories"
	"github.com/rios0rios0/ghlink/internal/infrastructure/repositories/snapshot"
)

func newSettings() *entities.Settings {
	return &entities.Settings{
		Connections: []entities.ConnectionSettings{
			{
				ID:       "server-wide",
				Provider: "GitHub",
				Parameters: map[string]string{
					entities.ParamClientID:     "id",
					entities.ParamClientSecret: "secret",
				},
			},
			{
				ID:       "root-ghe",
				Project:  "Root",
				Provider: "GHE",
				Parameters: map[string]string{
					entities.ParamGitHubURL: "https://ghe.example.com",
				},
			},
			{ID: "team-gitlab", Project: "Team", Provider: "GitLabCom"},
		},
		Projects: []entities.ProjectSettings{
			{
				ID: "Root",
				BuildTypes: []entities.BuildTypeSettings{
					{
						ID: "Root_Build",
						VcsRoots: []entities.VcsRootSettings{
							{
								ID:         "Root_Widgets",
								VcsName:    entities.VcsNameGit,
								Properties: map[string]string{entities.PropertyGitURL: "git@github.com:acme/widgets.git"},
							},
						},
					},
				},
				Projects: []entities.ProjectSettings{
					{
						ID:         "Team",
						Archived:   true,
						BuildTypes: []entities.BuildTypeSettings{{ID: "Team_Build"}},
					},
				},
			},
		},
	}
}

func TestServerRepository(t *testing.T) {
	t.Parallel()

	t.Run("should build the project tree", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := snapshot.NewServerRepository(newSettings(), repositories.NewDefaultProviderKindRegistry())
		require.NoError(t, err)

		// when
		projects := repo.Projects()

		// then
		require.Len(t, projects, 1)
		root := projects[0]
		assert.Equal(t, "Root", root.ID())
		assert.Len(t, root.OwnBuildTypes(), 1)
		require.Len(t, root.BuildTypes(), 2)

		team := root.BuildTypes()[1]
		assert.Equal(t, "Team_Build", team.ID())
		assert.True(t, team.Project().IsArchived())

		roots := root.OwnBuildTypes()[0].VcsRootInstances()
		require.Len(t, roots, 1)
		assert.Equal(t, "Root_Widgets", roots[0].ID())
		assert.Equal(t, entities.VcsNameGit, roots[0].VcsName())
		url, ok := roots[0].Property(entities.PropertyGitURL)
		assert.True(t, ok)
		assert.Equal(t, "git@github.com:acme/widgets.git", url)
	})

	t.Run("should find nested projects by id", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := snapshot.NewServerRepository(newSettings(), repositories.NewDefaultProviderKindRegistry())
		require.NoError(t, err)

		// when
		project, findErr := repo.FindProject("Team")

		// then
		require.NoError(t, findErr)
		assert.Equal(t, "Team", project.ID())
	})

	t.Run("should return error for unknown project", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := snapshot.NewServerRepository(newSettings(), repositories.NewDefaultProviderKindRegistry())
		require.NoError(t, err)

		// when
		_, findErr := repo.FindProject("Missing")
		_, connErr := repo.AvailableConnections("Missing")

		// then
		require.Error(t, findErr)
		require.Error(t, connErr)
	})

	t.Run("should inherit connections from ancestors nearest first", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := snapshot.NewServerRepository(newSettings(), repositories.NewDefaultProviderKindRegistry())
		require.NoError(t, err)

		// when
		connections, connErr := repo.AvailableConnections("Team")

		// then
		require.NoError(t, connErr)
		require.Len(t, connections, 3)
		assert.Equal(t, "team-gitlab", connections[0].ID)
		assert.Equal(t, entities.ProviderKindOther, connections[0].Kind)
		assert.Equal(t, "root-ghe", connections[1].ID)
		assert.Equal(t, entities.ProviderKindGitHubEnterprise, connections[1].Kind)
		assert.Equal(t, "server-wide", connections[2].ID)
		assert.Equal(t, entities.ProviderKindGitHub, connections[2].Kind)
	})

	t.Run("should list every connection", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := snapshot.NewServerRepository(newSettings(), repositories.NewDefaultProviderKindRegistry())
		require.NoError(t, err)

		// when
		connections := repo.Connections()

		// then
		assert.Len(t, connections, 3)
	})

	t.Run("should fail when a connection refers to an unknown project", func(t *testing.T) {
		t.Parallel()

		// given
		settings := newSettings()
		settings.Connections[1].Project = "Nowhere"

		// when
		repo, err := snapshot.NewServerRepository(settings, repositories.NewDefaultProviderKindRegistry())

		// then
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.Contains(t, err.Error(), `unknown project "Nowhere"`)
	})

	t.Run("should build repositories through the factory", func(t *testing.T) {
		t.Parallel()

		// given
		factory := snapshot.NewServerRepositoryFactory(repositories.NewDefaultProviderKindRegistry())

		// when
		repo, err := factory(newSettings())

		// then
		require.NoError(t, err)
		assert.Len(t, repo.Projects(), 1)
	})
}
