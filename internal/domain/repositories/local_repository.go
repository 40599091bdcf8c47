package repositories

import (
	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

// LocalRepository reads VCS roots from Git clones on disk.
type LocalRepository interface {
	// RemoteRoot returns the named remote of the clone containing dir as a Git VCS root.
	RemoteRoot(dir, remote string) (entities.VcsRootInstance, error)
}
