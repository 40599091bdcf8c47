//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/ghlink/internal/domain/entities"
	"github.com/rios0rios0/ghlink/internal/domain/repositories"
)

// StubLocalRepository implements repositories.LocalRepository.
type StubLocalRepository struct {
	Root      entities.VcsRootInstance
	RemoteErr error

	// spy: inputs received
	LastDir    string
	LastRemote string
}

var _ repositories.LocalRepository = (*StubLocalRepository)(nil)

func (s *StubLocalRepository) RemoteRoot(dir, remote string) (entities.VcsRootInstance, error) {
	s.LastDir = dir
	s.LastRemote = remote
	if s.RemoteErr != nil {
		return nil, s.RemoteErr
	}
	return s.Root, nil
}
