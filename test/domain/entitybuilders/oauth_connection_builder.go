//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

// OAuthConnectionBuilder helps create test connections with a fluent interface.
type OAuthConnectionBuilder struct {
	*testkit.BaseBuilder
	id         string
	projectID  string
	kind       entities.ProviderKind
	parameters map[string]string
}

// NewOAuthConnectionBuilder creates a new builder for a github.com connection
// with complete credentials.
func NewOAuthConnectionBuilder() *OAuthConnectionBuilder {
	return &OAuthConnectionBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "PROJECT_EXT_1",
		kind:        entities.ProviderKindGitHub,
		parameters:  defaultConnectionParameters(),
	}
}

func defaultConnectionParameters() map[string]string {
	return map[string]string{
		entities.ParamClientID:     "client-id",
		entities.ParamClientSecret: "client-secret",
	}
}

// WithID sets the connection id.
func (b *OAuthConnectionBuilder) WithID(id string) *OAuthConnectionBuilder {
	b.id = id
	return b
}

// WithProjectID sets the owning project.
func (b *OAuthConnectionBuilder) WithProjectID(projectID string) *OAuthConnectionBuilder {
	b.projectID = projectID
	return b
}

// WithKind sets the provider kind.
func (b *OAuthConnectionBuilder) WithKind(kind entities.ProviderKind) *OAuthConnectionBuilder {
	b.kind = kind
	return b
}

// WithEnterpriseURL turns the connection into a GitHub Enterprise one pointing at url.
func (b *OAuthConnectionBuilder) WithEnterpriseURL(url string) *OAuthConnectionBuilder {
	b.kind = entities.ProviderKindGitHubEnterprise
	b.parameters[entities.ParamGitHubURL] = url
	return b
}

// WithParameter sets an arbitrary parameter.
func (b *OAuthConnectionBuilder) WithParameter(key, value string) *OAuthConnectionBuilder {
	b.parameters[key] = value
	return b
}

// WithoutParameter removes a parameter.
func (b *OAuthConnectionBuilder) WithoutParameter(key string) *OAuthConnectionBuilder {
	delete(b.parameters, key)
	return b
}

// Build creates the connection (satisfies testkit.Builder interface).
func (b *OAuthConnectionBuilder) Build() interface{} {
	return b.BuildConnection()
}

// BuildConnection creates the connection with a concrete return type.
func (b *OAuthConnectionBuilder) BuildConnection() entities.OAuthConnection {
	parameters := make(map[string]string, len(b.parameters))
	for key, value := range b.parameters {
		parameters[key] = value
	}
	return entities.OAuthConnection{
		ID:         b.id,
		ProjectID:  b.projectID,
		Kind:       b.kind,
		Parameters: parameters,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *OAuthConnectionBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "PROJECT_EXT_1"
	b.projectID = ""
	b.kind = entities.ProviderKindGitHub
	b.parameters = defaultConnectionParameters()
	return b
}

// Clone creates a deep copy of the OAuthConnectionBuilder.
func (b *OAuthConnectionBuilder) Clone() testkit.Builder {
	parameters := make(map[string]string, len(b.parameters))
	for key, value := range b.parameters {
		parameters[key] = value
	}
	return &OAuthConnectionBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		projectID:   b.projectID,
		kind:        b.kind,
		parameters:  parameters,
	}
}
