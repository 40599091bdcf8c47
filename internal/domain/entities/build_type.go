package entities

// Project groups build configurations and nested projects.
type Project interface {
	ID() string
	IsArchived() bool
	// OwnBuildTypes returns the build types declared directly in the project.
	OwnBuildTypes() []BuildType
	// BuildTypes returns the build types of the project and all its descendants.
	BuildTypes() []BuildType
}

// BuildType is a build configuration with its attached VCS root instances.
type BuildType interface {
	ID() string
	Project() Project
	VcsRootInstances() []VcsRootInstance
}

// HealthStatusScope is the set of build configurations under inspection.
type HealthStatusScope interface {
	BuildTypes() []BuildType
}
