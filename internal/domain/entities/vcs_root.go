package entities

import "regexp"

const (
	// VcsNameGit is the VCS system tag carried by Git roots.
	VcsNameGit = "jetbrains.git"
	// PropertyGitURL holds the fetch URL of a Git root.
	PropertyGitURL = "url"
	// PropertyGitPushURL holds the optional push URL of a Git root. It is not
	// consulted when resolving repository identities.
	PropertyGitPushURL = "push_url"
)

// parameterReferencePattern matches %name% references that are resolved by the
// server only when a build starts.
var parameterReferencePattern = regexp.MustCompile(`%[^%\s]+%`)

// VcsRoot is a configured pointer to a version control repository.
type VcsRoot interface {
	// VcsName returns the VCS system tag (e.g. "jetbrains.git").
	VcsName() string
	// Property returns the named root property and whether it is set.
	Property(key string) (string, bool)
}

// VcsRootInstance is a VcsRoot bound to a particular build configuration.
type VcsRootInstance interface {
	VcsRoot
	ID() string
}

// GetGitHubInfo resolves the repository a Git root fetches from.
// The push URL is not consulted.
func GetGitHubInfo(root VcsRoot) *RepositoryIdentity {
	url, ok := gitFetchURL(root)
	if !ok {
		return nil
	}
	return GetGitHubInfoFromURL(url)
}

// GetGitHubInfoFromURL resolves the repository a raw remote URL points to.
func GetGitHubInfoFromURL(url string) *RepositoryIdentity {
	return ParseGitRepoURL(url)
}

// IsSuitableVcsRoot reports whether root is a Git root whose fetch URL is a
// literal value that parses as a hosted repository.
func IsSuitableVcsRoot(root VcsRoot) bool {
	url, ok := gitFetchURL(root)
	if !ok {
		return false
	}
	if HasParameterReferences(url) {
		return false
	}
	return GetGitHubInfoFromURL(url) != nil
}

// IsGitRootWithURL reports whether root is Git-tagged and carries a fetch URL.
func IsGitRootWithURL(root VcsRoot) bool {
	_, ok := gitFetchURL(root)
	return ok
}

// HasParameterReferences reports whether value contains unresolved %name% references.
func HasParameterReferences(value string) bool {
	return parameterReferencePattern.MatchString(value)
}

func gitFetchURL(root VcsRoot) (string, bool) {
	if root == nil || root.VcsName() != VcsNameGit {
		return "", false
	}
	return root.Property(PropertyGitURL)
}
