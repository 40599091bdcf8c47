package entities

// RootStatus classifies a VCS root in the connection report.
type RootStatus string

const (
	// RootStatusConnected means at least one usable connection targets the root's host.
	RootStatusConnected RootStatus = "connected"
	// RootStatusNoConnection means the root resolves but no usable connection targets its host.
	RootStatusNoConnection RootStatus = "no-connection"
	// RootStatusUnresolved means the root's URL references parameters or is not a repository URL.
	RootStatusUnresolved RootStatus = "unresolved"
)

// RootReport is one line of the connection report.
type RootReport struct {
	RootID      string              `yaml:"root"`
	BuildTypeID string              `yaml:"build_type"`
	URL         string              `yaml:"url"`
	Repository  *RepositoryIdentity `yaml:"repository,omitempty"`
	Connections []string            `yaml:"connections,omitempty"`
	Status      RootStatus          `yaml:"status"`
}
