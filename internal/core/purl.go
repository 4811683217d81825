package core

import (
	"github.com/git-pkgs/purl"
)

const mavenType = "maven"

// PURL is a parsed Package URL.
type PURL = purl.PURL

// ParsePURL parses a Package URL string into its components.
// Supports both package PURLs (pkg:maven/junit/junit) and version PURLs (pkg:maven/junit/junit@4.12).
func ParsePURL(s string) (*PURL, error) {
	return purl.Parse(s)
}

// DescriptorFromPURL converts a package URL into a dependency descriptor.
// The classifier, type and extension qualifiers, when any is present,
// become a single artifact named after the package.
func DescriptorFromPURL(p *PURL) DependencyDescriptor {
	d := DependencyDescriptor{
		Group:   p.Namespace,
		Name:    p.Name,
		Version: p.Version,
	}

	classifier, typ, ext := p.Qualifier("classifier"), p.Qualifier("type"), p.Qualifier("extension")
	if classifier == "" && typ == "" && ext == "" {
		return d
	}
	if typ == "" {
		typ = "jar"
	}
	if ext == "" {
		ext = typ
	}
	d.Artifacts = []ArtifactDescriptor{{
		Name:       p.Name,
		Classifier: classifier,
		Type:       typ,
		Extension:  ext,
	}}
	return d
}

// PURL returns the maven package URL for the descriptor.
func (d DependencyDescriptor) PURL() string {
	return purl.New(mavenType, d.Group, d.Name, d.Version, nil).String()
}

// ArtifactPURLs returns one package URL per artifact, carrying the
// classifier and type as qualifiers.
func (d DependencyDescriptor) ArtifactPURLs() []string {
	purls := make([]string, 0, len(d.Artifacts))
	for _, a := range d.Artifacts {
		q := map[string]string{}
		if a.Classifier != "" {
			q["classifier"] = a.Classifier
		}
		if a.Type != "" {
			q["type"] = a.Type
		}
		if a.Extension != "" && a.Extension != a.Type {
			q["extension"] = a.Extension
		}
		purls = append(purls, purl.New(mavenType, d.Group, d.Name, d.Version, q).String())
	}
	return purls
}
