package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
	"github.com/rios0rios0/ghlink/internal/domain/repositories"
)

// Report is the interface for the report command.
type Report interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReportOptions) ([]entities.RootReport, error)
}

// ReportOptions holds runtime options for a single report.
type ReportOptions struct {
	ProjectID       string // If empty, every non-archived project on the server is inspected
	Recursive       bool   // Include subprojects of ProjectID
	IncludeArchived bool   // Include archived projects; only honored with ProjectID
}

// ReportCommand lists the GitHub repositories referenced by VCS roots and the
// OAuth connections usable against each of their hosts.
type ReportCommand struct {
	serverFactory repositories.ServerRepositoryFactory
}

// NewReportCommand creates a new ReportCommand.
func NewReportCommand(serverFactory repositories.ServerRepositoryFactory) *ReportCommand {
	return &ReportCommand{serverFactory: serverFactory}
}

// Execute walks the selected projects and reports every Git root once, in
// traversal order.
func (it *ReportCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReportOptions,
) ([]entities.RootReport, error) {
	server, err := it.serverFactory(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load server snapshot: %w", err)
	}

	var (
		buildTypes      []entities.BuildType
		includeArchived bool
		walk            func(RootVisitor)
	)
	if opts.ProjectID == "" {
		scope := serverScope{projects: server.Projects()}
		buildTypes = scope.BuildTypes()
		walk = func(visit RootVisitor) { FindSuitableRootsInScope(scope, visit) }
	} else {
		project, findErr := server.FindProject(opts.ProjectID)
		if findErr != nil {
			return nil, findErr
		}
		buildTypes = projectBuildTypes(project, opts.Recursive)
		includeArchived = opts.IncludeArchived
		walk = func(visit RootVisitor) {
			FindSuitableRootsInProject(project, opts.Recursive, opts.IncludeArchived, visit)
		}
	}

	owners := rootOwners(buildTypes, includeArchived)
	seen := make(map[string]bool)
	var (
		reports []entities.RootReport
		walkErr error
	)

	walk(func(root entities.VcsRootInstance) bool {
		if ctxErr := ctx.Err(); ctxErr != nil {
			walkErr = ctxErr
			return false
		}
		if seen[root.ID()] {
			return true
		}
		seen[root.ID()] = true

		owner := owners[root.ID()]
		connections, connErr := server.AvailableConnections(owner.Project().ID())
		if connErr != nil {
			walkErr = connErr
			return false
		}

		reports = append(reports, inspectRoot(root, owner.ID(), connections))
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	logger.Debugf("Inspected %d VCS roots in %d build types", len(reports), len(buildTypes))
	return reports, nil
}

// rootOwners maps each root id to the first build type it is attached to.
func rootOwners(buildTypes []entities.BuildType, includeArchived bool) map[string]entities.BuildType {
	owners := make(map[string]entities.BuildType)
	for _, bt := range buildTypes {
		if !includeArchived && bt.Project().IsArchived() {
			continue
		}
		for _, root := range bt.VcsRootInstances() {
			if _, ok := owners[root.ID()]; !ok {
				owners[root.ID()] = bt
			}
		}
	}
	return owners
}

// inspectRoot resolves root and matches its host against connections.
func inspectRoot(
	root entities.VcsRootInstance,
	buildTypeID string,
	connections []entities.OAuthConnection,
) entities.RootReport {
	url, _ := root.Property(entities.PropertyGitURL)
	report := entities.RootReport{
		RootID:      root.ID(),
		BuildTypeID: buildTypeID,
		URL:         url,
		Status:      entities.RootStatusUnresolved,
	}

	if !entities.IsSuitableVcsRoot(root) {
		logger.Debugf("Skipping VCS root %q: %q cannot be resolved statically", root.ID(), url)
		return report
	}

	report.Repository = entities.GetGitHubInfo(root)
	for _, connection := range entities.FindConnections(connections, report.Repository.Host) {
		report.Connections = append(report.Connections, connection.ID)
	}

	report.Status = entities.RootStatusNoConnection
	if len(report.Connections) > 0 {
		report.Status = entities.RootStatusConnected
	}
	return report
}
