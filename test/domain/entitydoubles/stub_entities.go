//go:build integration || unit || test

// Package entitydoubles provides hand-crafted stand-ins for the server objects
// the domain reads (projects, build types, VCS roots). No mock frameworks.
package entitydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

// StubVcsRoot implements entities.VcsRootInstance.
type StubVcsRoot struct {
	RootID     string
	Vcs        string
	Properties map[string]string
}

var _ entities.VcsRootInstance = (*StubVcsRoot)(nil)

func (r *StubVcsRoot) ID() string      { return r.RootID }
func (r *StubVcsRoot) VcsName() string { return r.Vcs }

func (r *StubVcsRoot) Property(key string) (string, bool) {
	value, ok := r.Properties[key]
	return value, ok
}

// StubProject implements entities.Project.
type StubProject struct {
	ProjectID string
	Archived  bool
	Own       []*StubBuildType
	Children  []*StubProject
}

var _ entities.Project = (*StubProject)(nil)

func (p *StubProject) ID() string       { return p.ProjectID }
func (p *StubProject) IsArchived() bool { return p.Archived }

func (p *StubProject) OwnBuildTypes() []entities.BuildType {
	result := make([]entities.BuildType, 0, len(p.Own))
	for _, bt := range p.Own {
		result = append(result, bt)
	}
	return result
}

func (p *StubProject) BuildTypes() []entities.BuildType {
	result := p.OwnBuildTypes()
	for _, child := range p.Children {
		result = append(result, child.BuildTypes()...)
	}
	return result
}

// AddBuildType attaches a new build type with the given roots to the project.
func (p *StubProject) AddBuildType(id string, roots ...*StubVcsRoot) *StubBuildType {
	bt := &StubBuildType{BuildTypeID: id, Owner: p, Roots: roots}
	p.Own = append(p.Own, bt)
	return bt
}

// StubBuildType implements entities.BuildType.
type StubBuildType struct {
	BuildTypeID string
	Owner       *StubProject
	Roots       []*StubVcsRoot
}

var _ entities.BuildType = (*StubBuildType)(nil)

func (b *StubBuildType) ID() string                { return b.BuildTypeID }
func (b *StubBuildType) Project() entities.Project { return b.Owner }

func (b *StubBuildType) VcsRootInstances() []entities.VcsRootInstance {
	result := make([]entities.VcsRootInstance, 0, len(b.Roots))
	for _, root := range b.Roots {
		result = append(result, root)
	}
	return result
}

// StubScope implements entities.HealthStatusScope.
type StubScope struct {
	Items []entities.BuildType
}

var _ entities.HealthStatusScope = (*StubScope)(nil)

func (s *StubScope) BuildTypes() []entities.BuildType { return s.Items }
