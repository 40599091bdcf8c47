package repositories

import (
	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

// ServerRepository gives read-only access to the server's project tree and
// the OAuth connections registered in it.
type ServerRepository interface {
	// Projects returns the top-level projects.
	Projects() []entities.Project
	// FindProject returns the project with the given id.
	FindProject(id string) (entities.Project, error)
	// Connections returns every connection registered on the server.
	Connections() []entities.OAuthConnection
	// AvailableConnections returns the connections registered in the project
	// and all its ancestors, nearest project first.
	AvailableConnections(projectID string) ([]entities.OAuthConnection, error)
}

// ServerRepositoryFactory builds a ServerRepository from loaded settings.
type ServerRepositoryFactory func(settings *entities.Settings) (ServerRepository, error)
