package repositories

import (
	"sort"
	"strings"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

const (
	providerGitHub           = "GitHub"
	providerGitHubEnterprise = "GHE"
)

// ProviderKindRegistry maps the provider type names used in settings files to
// provider kinds. Lookups are case-insensitive.
type ProviderKindRegistry struct {
	kinds map[string]entities.ProviderKind
}

// NewProviderKindRegistry creates an empty provider kind registry.
func NewProviderKindRegistry() *ProviderKindRegistry {
	return &ProviderKindRegistry{
		kinds: make(map[string]entities.ProviderKind),
	}
}

// NewDefaultProviderKindRegistry creates a registry with the GitHub kinds registered.
func NewDefaultProviderKindRegistry() *ProviderKindRegistry {
	reg := NewProviderKindRegistry()
	reg.Register(providerGitHub, entities.ProviderKindGitHub)
	reg.Register(providerGitHubEnterprise, entities.ProviderKindGitHubEnterprise)
	return reg
}

// Register adds a provider kind under the given type name (e.g. "GHE").
func (r *ProviderKindRegistry) Register(name string, kind entities.ProviderKind) {
	r.kinds[strings.ToLower(name)] = kind
}

// Get returns the kind registered under name. Unknown names map to
// entities.ProviderKindOther.
func (r *ProviderKindRegistry) Get(name string) entities.ProviderKind {
	kind, ok := r.kinds[strings.ToLower(name)]
	if !ok {
		return entities.ProviderKindOther
	}
	return kind
}

// Names returns the sorted list of registered type names.
func (r *ProviderKindRegistry) Names() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
