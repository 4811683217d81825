// Package core provides shared types, errors and the input-format registry.
package core

// DependencyDescriptor describes one resolved dependency of a module.
type DependencyDescriptor struct {
	Group     string
	Name      string
	Version   string
	Artifacts []ArtifactDescriptor
}

// IsModule reports whether the descriptor has a group/name identity.
// File dependencies have neither and never appear in a manifest.
func (d DependencyDescriptor) IsModule() bool {
	return d.Group != "" && d.Name != ""
}

// ArtifactDescriptor describes a classified output attached to a dependency,
// e.g. the sources or javadoc jar.
type ArtifactDescriptor struct {
	Name       string
	Classifier string // may be empty
	Type       string
	Extension  string
}

// ProjectIdentity identifies the module a manifest is generated for.
type ProjectIdentity struct {
	Group   string
	Version string
}

// IsSubmodule reports whether d shares the project's group and version,
// i.e. it is released in lockstep with the project.
func (p ProjectIdentity) IsSubmodule(d DependencyDescriptor) bool {
	return p.Group == d.Group && p.Version == d.Version
}
