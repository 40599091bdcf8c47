//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
	"github.com/rios0rios0/ghlink/test/domain/entitydoubles"
)

// VcsRootBuilder helps create test VCS roots with a fluent interface.
type VcsRootBuilder struct {
	*testkit.BaseBuilder
	id         string
	vcsName    string
	properties map[string]string
}

// NewVcsRootBuilder creates a new builder for a Git root fetching from github.com.
func NewVcsRootBuilder() *VcsRootBuilder {
	return &VcsRootBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "Root_Widgets",
		vcsName:     entities.VcsNameGit,
		properties: map[string]string{
			entities.PropertyGitURL: "git@github.com:acme/widgets.git",
		},
	}
}

// WithID sets the root id.
func (b *VcsRootBuilder) WithID(id string) *VcsRootBuilder {
	b.id = id
	return b
}

// WithVcsName sets the VCS system tag.
func (b *VcsRootBuilder) WithVcsName(vcsName string) *VcsRootBuilder {
	b.vcsName = vcsName
	return b
}

// WithURL sets the fetch URL.
func (b *VcsRootBuilder) WithURL(url string) *VcsRootBuilder {
	b.properties[entities.PropertyGitURL] = url
	return b
}

// WithoutURL removes the fetch URL.
func (b *VcsRootBuilder) WithoutURL() *VcsRootBuilder {
	delete(b.properties, entities.PropertyGitURL)
	return b
}

// WithProperty sets an arbitrary root property.
func (b *VcsRootBuilder) WithProperty(key, value string) *VcsRootBuilder {
	b.properties[key] = value
	return b
}

// Build creates the root (satisfies testkit.Builder interface).
func (b *VcsRootBuilder) Build() interface{} {
	return b.BuildVcsRoot()
}

// BuildVcsRoot creates the root with a concrete return type.
func (b *VcsRootBuilder) BuildVcsRoot() *entitydoubles.StubVcsRoot {
	properties := make(map[string]string, len(b.properties))
	for key, value := range b.properties {
		properties[key] = value
	}
	return &entitydoubles.StubVcsRoot{
		RootID:     b.id,
		Vcs:        b.vcsName,
		Properties: properties,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *VcsRootBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "Root_Widgets"
	b.vcsName = entities.VcsNameGit
	b.properties = map[string]string{
		entities.PropertyGitURL: "git@github.com:acme/widgets.git",
	}
	return b
}

// Clone creates a deep copy of the VcsRootBuilder.
func (b *VcsRootBuilder) Clone() testkit.Builder {
	properties := make(map[string]string, len(b.properties))
	for key, value := range b.properties {
		properties[key] = value
	}
	return &VcsRootBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		vcsName:     b.vcsName,
		properties:  properties,
	}
}
