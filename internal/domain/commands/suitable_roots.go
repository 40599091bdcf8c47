package commands

import (
	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

// RootVisitor is called for each Git root with a fetch URL. Returning false
// stops the traversal.
type RootVisitor func(root entities.VcsRootInstance) bool

// FindSuitableRoots visits the Git roots with a fetch URL attached to
// buildTypes, skipping build types of archived projects unless
// includeArchived is set. Traversal stops as soon as visit returns false.
func FindSuitableRoots(buildTypes []entities.BuildType, includeArchived bool, visit RootVisitor) {
	for _, bt := range buildTypes {
		if !includeArchived && bt.Project().IsArchived() {
			continue
		}
		for _, root := range bt.VcsRootInstances() {
			if !entities.IsGitRootWithURL(root) {
				continue
			}
			if !visit(root) {
				return
			}
		}
	}
}

// FindSuitableRootsInProject runs FindSuitableRoots over the project's own
// build types, or over its whole subtree when recursive is set.
func FindSuitableRootsInProject(
	project entities.Project,
	recursive, includeArchived bool,
	visit RootVisitor,
) {
	FindSuitableRoots(projectBuildTypes(project, recursive), includeArchived, visit)
}

// FindSuitableRootsInScope runs FindSuitableRoots over the scope's build
// types. Archived projects are always skipped.
func FindSuitableRootsInScope(scope entities.HealthStatusScope, visit RootVisitor) {
	FindSuitableRoots(scope.BuildTypes(), false, visit)
}

func projectBuildTypes(project entities.Project, recursive bool) []entities.BuildType {
	if recursive {
		return project.BuildTypes()
	}
	return project.OwnBuildTypes()
}

// serverScope is the health status scope covering every project on the server.
type serverScope struct {
	projects []entities.Project
}

func (s serverScope) BuildTypes() []entities.BuildType {
	var result []entities.BuildType
	for _, p := range s.projects {
		result = append(result, p.BuildTypes()...)
	}
	return result
}
