package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/ghlink/internal/domain/repositories"
	"github.com/rios0rios0/ghlink/internal/infrastructure/repositories/gitlocal"
	"github.com/rios0rios0/ghlink/internal/infrastructure/repositories/snapshot"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register provider kind registry with the GitHub kinds
	if err := container.Provide(NewDefaultProviderKindRegistry); err != nil {
		return err
	}

	// Snapshot server repositories are built per invocation from the loaded settings
	if err := container.Provide(func(kinds *ProviderKindRegistry) domainRepos.ServerRepositoryFactory {
		return snapshot.NewServerRepositoryFactory(kinds)
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.LocalRepository {
		return gitlocal.NewLocalRepository()
	}); err != nil {
		return err
	}

	return nil
}
