package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
	"github.com/rios0rios0/ghlink/internal/domain/repositories"
)

const defaultRemote = "origin"

// Local is the interface for the local command.
type Local interface {
	Execute(ctx context.Context, opts LocalOptions) (*entities.RootReport, error)
}

// LocalOptions holds runtime options for the local mode.
type LocalOptions struct {
	RepoDir   string
	Remote    string             // Defaults to "origin"
	Settings  *entities.Settings // Optional; when nil no connections are matched
	ProjectID string             // Restricts connections to those available to this project
}

// LocalCommand resolves the repository behind a remote of a local clone and,
// when settings are given, the connections usable against its host.
type LocalCommand struct {
	localRepository repositories.LocalRepository
	serverFactory   repositories.ServerRepositoryFactory
}

// NewLocalCommand creates a new LocalCommand.
func NewLocalCommand(
	localRepository repositories.LocalRepository,
	serverFactory repositories.ServerRepositoryFactory,
) *LocalCommand {
	return &LocalCommand{
		localRepository: localRepository,
		serverFactory:   serverFactory,
	}
}

// Execute is the entry point for the local mode.
func (it *LocalCommand) Execute(ctx context.Context, opts LocalOptions) (*entities.RootReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repoDir, err := filepath.Abs(opts.RepoDir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	remote := opts.Remote
	if remote == "" {
		remote = defaultRemote
	}

	root, err := it.localRepository.RemoteRoot(repoDir, remote)
	if err != nil {
		return nil, err
	}

	if !entities.IsGitRootWithURL(root) {
		return nil, fmt.Errorf("remote %q has no URL configured", remote)
	}

	connections, err := it.connections(opts)
	if err != nil {
		return nil, err
	}

	report := inspectRoot(root, "", connections)
	if report.Status == entities.RootStatusUnresolved {
		return nil, fmt.Errorf("remote URL %q does not point to a hosted repository", report.URL)
	}

	logger.Infof("Detected repository: %s", report.Repository)
	return &report, nil
}

func (it *LocalCommand) connections(opts LocalOptions) ([]entities.OAuthConnection, error) {
	if opts.Settings == nil {
		return nil, nil
	}

	server, err := it.serverFactory(opts.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load server snapshot: %w", err)
	}

	if opts.ProjectID == "" {
		return server.Connections(), nil
	}
	return server.AvailableConnections(opts.ProjectID)
}
