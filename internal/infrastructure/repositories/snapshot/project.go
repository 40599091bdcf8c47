package snapshot

import (
	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

type project struct {
	id         string
	archived   bool
	parent     *project
	children   []*project
	buildTypes []*buildType
}

func (p *project) ID() string       { return p.id }
func (p *project) IsArchived() bool { return p.archived }

func (p *project) OwnBuildTypes() []entities.BuildType {
	result := make([]entities.BuildType, 0, len(p.buildTypes))
	for _, bt := range p.buildTypes {
		result = append(result, bt)
	}
	return result
}

func (p *project) BuildTypes() []entities.BuildType {
	result := p.OwnBuildTypes()
	for _, child := range p.children {
		result = append(result, child.BuildTypes()...)
	}
	return result
}

type buildType struct {
	id      string
	project *project
	roots   []*vcsRootInstance
}

func (b *buildType) ID() string                { return b.id }
func (b *buildType) Project() entities.Project { return b.project }

func (b *buildType) VcsRootInstances() []entities.VcsRootInstance {
	result := make([]entities.VcsRootInstance, 0, len(b.roots))
	for _, root := range b.roots {
		result = append(result, root)
	}
	return result
}

type vcsRootInstance struct {
	id         string
	vcsName    string
	properties map[string]string
}

func (v *vcsRootInstance) ID() string      { return v.id }
func (v *vcsRootInstance) VcsName() string { return v.vcsName }

func (v *vcsRootInstance) Property(key string) (string, bool) {
	value, ok := v.properties[key]
	return value, ok
}
