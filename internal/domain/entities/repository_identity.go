package entities

import (
	"regexp"
	"strings"
)

// gitRepoURLPattern captures host, owner and name from the tail of a remote URL.
// Only the last three segments are anchored: for "https://host/org/sub/owner/name"
// the host is reported as "sub".
var gitRepoURLPattern = regexp.MustCompile(`([^/:@]+)[/:]([a-zA-Z0-9.\-_]+)/([a-zA-Z0-9.\-_]+)$`)

const gitSuffix = ".git"

// RepositoryIdentity identifies a repository hosted on GitHub or GitHub Enterprise.
type RepositoryIdentity struct {
	Host  string `yaml:"host"`
	Owner string `yaml:"owner"`
	Name  string `yaml:"name"`
}

func (r RepositoryIdentity) String() string {
	return r.Host + "/" + r.Owner + "/" + r.Name
}

// ParseGitRepoURL parses HTTPS (host/owner/name) and SCP-like (host:owner/name)
// remote URLs. It returns nil when the URL does not look like a hosted repository.
func ParseGitRepoURL(url string) *RepositoryIdentity {
	match := gitRepoURLPattern.FindStringSubmatch(url)
	if match == nil {
		return nil
	}

	return &RepositoryIdentity{
		Host:  match[1],
		Owner: match[2],
		Name:  strings.TrimSuffix(match[3], gitSuffix),
	}
}
