package snapshot

import (
	"fmt"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
	"github.com/rios0rios0/ghlink/internal/domain/repositories"
)

// ServerRepository is an in-memory project tree built from a settings snapshot.
type ServerRepository struct {
	roots       []*project
	projects    map[string]*project
	all         []entities.OAuthConnection
	connections map[string][]entities.OAuthConnection // keyed by owning project id
}

var _ repositories.ServerRepository = (*ServerRepository)(nil)

// KindResolver maps a provider type name to a provider kind.
type KindResolver interface {
	Get(name string) entities.ProviderKind
}

// NewServerRepositoryFactory returns a factory building snapshot repositories
// that resolve provider kinds with kinds.
func NewServerRepositoryFactory(kinds KindResolver) repositories.ServerRepositoryFactory {
	return func(settings *entities.Settings) (repositories.ServerRepository, error) {
		repo, err := NewServerRepository(settings, kinds)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}

// NewServerRepository builds the project tree and connection index from settings.
func NewServerRepository(settings *entities.Settings, kinds KindResolver) (*ServerRepository, error) {
	repo := &ServerRepository{
		projects:    make(map[string]*project),
		connections: make(map[string][]entities.OAuthConnection),
	}

	for _, ps := range settings.Projects {
		repo.roots = append(repo.roots, repo.addProject(ps, nil))
	}

	for _, cs := range settings.Connections {
		if cs.Project != "" {
			if _, ok := repo.projects[cs.Project]; !ok {
				return nil, fmt.Errorf("connection %q refers to unknown project %q", cs.ID, cs.Project)
			}
		}
		params := make(map[string]string, len(cs.Parameters))
		for key, value := range cs.Parameters {
			params[key] = value
		}
		connection := entities.OAuthConnection{
			ID:          cs.ID,
			ProjectID:   cs.Project,
			DisplayName: cs.Name,
			Kind:        kinds.Get(cs.Provider),
			Parameters:  params,
		}
		repo.all = append(repo.all, connection)
		repo.connections[cs.Project] = append(repo.connections[cs.Project], connection)
	}

	return repo, nil
}

func (r *ServerRepository) addProject(ps entities.ProjectSettings, parent *project) *project {
	p := &project{
		id:       ps.ID,
		archived: ps.Archived,
		parent:   parent,
	}
	r.projects[p.id] = p

	for _, bts := range ps.BuildTypes {
		bt := &buildType{id: bts.ID, project: p}
		for _, rs := range bts.VcsRoots {
			props := make(map[string]string, len(rs.Properties))
			for key, value := range rs.Properties {
				props[key] = value
			}
			bt.roots = append(bt.roots, &vcsRootInstance{
				id:         rs.ID,
				vcsName:    rs.VcsName,
				properties: props,
			})
		}
		p.buildTypes = append(p.buildTypes, bt)
	}

	for _, child := range ps.Projects {
		p.children = append(p.children, r.addProject(child, p))
	}
	return p
}

func (r *ServerRepository) Projects() []entities.Project {
	result := make([]entities.Project, 0, len(r.roots))
	for _, p := range r.roots {
		result = append(result, p)
	}
	return result
}

func (r *ServerRepository) FindProject(id string) (entities.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %q not found", id)
	}
	return p, nil
}

func (r *ServerRepository) Connections() []entities.OAuthConnection {
	return r.all
}

func (r *ServerRepository) AvailableConnections(projectID string) ([]entities.OAuthConnection, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %q not found", projectID)
	}

	var result []entities.OAuthConnection
	for ; p != nil; p = p.parent {
		result = append(result, r.connections[p.id]...)
	}
	// connections without an owning project belong to the server root
	result = append(result, r.connections[""]...)
	return result, nil
}
