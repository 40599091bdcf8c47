package gitlocal

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
	"github.com/rios0rios0/ghlink/internal/domain/repositories"
)

// LocalRepository reads remotes of Git clones on disk with go-git.
type LocalRepository struct{}

var _ repositories.LocalRepository = (*LocalRepository)(nil)

// NewLocalRepository creates a new LocalRepository.
func NewLocalRepository() *LocalRepository {
	return &LocalRepository{}
}

// RemoteRoot opens the clone containing dir and exposes the given remote as a
// Git VCS root. The first configured URL of the remote is its fetch URL.
func (r *LocalRepository) RemoteRoot(dir, remoteName string) (entities.VcsRootInstance, error) {
	//nolint:exhaustruct // only DetectDotGit is relevant here
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return nil, fmt.Errorf("remote %q is not configured in %q", remoteName, dir)
		}
		return nil, fmt.Errorf("failed to read remote %q: %w", remoteName, err)
	}

	properties := make(map[string]string)
	if urls := remote.Config().URLs; len(urls) > 0 {
		properties[entities.PropertyGitURL] = urls[0]
		logger.Debugf("Remote %q fetches from %s", remoteName, urls[0])
	}

	return &remoteRoot{
		id:         remoteName,
		properties: properties,
	}, nil
}

// remoteRoot is a Git remote seen as a VCS root instance.
type remoteRoot struct {
	id         string
	properties map[string]string
}

func (r *remoteRoot) ID() string      { return r.id }
func (r *remoteRoot) VcsName() string { return entities.VcsNameGit }

func (r *remoteRoot) Property(key string) (string, bool) {
	value, ok := r.properties[key]
	return value, ok
}
