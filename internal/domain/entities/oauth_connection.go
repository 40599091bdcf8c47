package entities

import "strings"

// ProviderKind discriminates the OAuth provider behind a connection.
type ProviderKind int

const (
	// ProviderKindOther is any provider that is not GitHub.
	ProviderKindOther ProviderKind = iota
	// ProviderKindGitHub is the public github.com cloud.
	ProviderKindGitHub
	// ProviderKindGitHubEnterprise is a self-hosted GitHub deployment.
	ProviderKindGitHubEnterprise
)

const (
	// ParamGitHubURL is the server URL of a GitHub Enterprise connection.
	ParamGitHubURL = "gitHubUrl"
	// ParamClientID is the OAuth application client id.
	ParamClientID = "clientId"
	// ParamClientSecret is the OAuth application client secret.
	ParamClientSecret = "secure:clientSecret"

	gitHubComHost = "github.com"
)

func (k ProviderKind) String() string {
	switch k {
	case ProviderKindGitHub:
		return "GitHub"
	case ProviderKindGitHubEnterprise:
		return "GHE"
	default:
		return "other"
	}
}

// OAuthConnection is a stored OAuth application registration.
type OAuthConnection struct {
	ID          string
	ProjectID   string
	DisplayName string
	Kind        ProviderKind
	Parameters  map[string]string
}

// Parameter returns the named parameter and whether it is set.
func (c OAuthConnection) Parameter(key string) (string, bool) {
	value, ok := c.Parameters[key]
	return value, ok
}

// HasCredentials reports whether both the client id and secret are set and non-empty.
func (c OAuthConnection) HasCredentials() bool {
	clientID, _ := c.Parameter(ParamClientID)
	clientSecret, _ := c.Parameter(ParamClientSecret)
	return clientID != "" && clientSecret != ""
}

// FindConnections returns, in order, the connections usable against host.
func FindConnections(connections []OAuthConnection, host string) []OAuthConnection {
	var result []OAuthConnection
	for _, connection := range connections {
		if IsConnectionToServer(connection, host) {
			result = append(result, connection)
		}
	}
	return result
}

// IsConnectionToServer reports whether connection targets host and carries
// complete credentials.
func IsConnectionToServer(connection OAuthConnection, host string) bool {
	switch connection.Kind {
	case ProviderKindGitHubEnterprise:
		url, ok := connection.Parameter(ParamGitHubURL)
		if !ok || !IsSameURL(host, url) {
			return false
		}
	case ProviderKindGitHub:
		if !IsSameURL(host, gitHubComHost) {
			return false
		}
	default:
		return false
	}
	return connection.HasCredentials()
}

// IsSameURL reports whether the configured URL contains host, ignoring case.
// This is a containment check, not URL equality: "github.com" matches
// "https://github.company.net".
func IsSameURL(host, configured string) bool {
	return strings.Contains(strings.ToLower(configured), strings.ToLower(host))
}
