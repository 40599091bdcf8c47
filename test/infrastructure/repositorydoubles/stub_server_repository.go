//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
	"github.com/rios0rios0/ghlink/internal/domain/repositories"
)

// SpyServerRepository implements repositories.ServerRepository as a configurable spy.
type SpyServerRepository struct {
	// --- Projects / FindProject ---
	TopProjects  []entities.Project
	ProjectsByID map[string]entities.Project

	// --- Connections / AvailableConnections ---
	AllConnections  []entities.OAuthConnection
	ConnectionsByID map[string][]entities.OAuthConnection // project id -> available connections
	AvailableErr    error
	// spy: project ids requested
	RequestedProjectIDs []string
}

var _ repositories.ServerRepository = (*SpyServerRepository)(nil)

func (s *SpyServerRepository) Projects() []entities.Project { return s.TopProjects }

func (s *SpyServerRepository) FindProject(id string) (entities.Project, error) {
	if p, ok := s.ProjectsByID[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("project %q not found", id)
}

func (s *SpyServerRepository) Connections() []entities.OAuthConnection { return s.AllConnections }

func (s *SpyServerRepository) AvailableConnections(projectID string) ([]entities.OAuthConnection, error) {
	s.RequestedProjectIDs = append(s.RequestedProjectIDs, projectID)
	if s.AvailableErr != nil {
		return nil, s.AvailableErr
	}
	return s.ConnectionsByID[projectID], nil
}

// Factory returns a ServerRepositoryFactory that always yields the spy.
func (s *SpyServerRepository) Factory() repositories.ServerRepositoryFactory {
	return func(_ *entities.Settings) (repositories.ServerRepository, error) {
		return s, nil
	}
}

// FailingServerRepositoryFactory returns a factory that always fails with err.
func FailingServerRepositoryFactory(err error) repositories.ServerRepositoryFactory {
	return func(_ *entities.Settings) (repositories.ServerRepository, error) {
		return nil, err
	}
}
