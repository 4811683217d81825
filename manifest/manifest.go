// Package manifest renders a module's resolved dependencies as a stable,
// human-diffable text file.
//
// The output is byte-identical for the same set of dependencies regardless of
// input order, duplicates or host platform, so it can be committed and diffed:
//
//	# Description
//	This file was generated by Shipkit Gradle plugin. ...
//
//	# Dependencies
//	 - junit:junit:4.12
//	   - junit::jar:jar
//	 - org.mockito:mockito-core
package manifest

import (
	"sort"
	"strings"

	"github.com/koral--/shipkit/internal/atomicfile"
	"github.com/koral--/shipkit/internal/core"
)

const (
	// Separator joins the segments of dependency and artifact lines.
	Separator = ":"

	// Newline is used for every line break, independent of platform.
	Newline = "\r\n"

	dependencyIndent = Newline + " - "
	artifactIndent   = Newline + "   - "
)

// DefaultFile is the conventional manifest location, relative to the module build directory.
const DefaultFile = "dependency-info.json"

const description = "This file was generated by Shipkit Gradle plugin. " +
	"It contains all declared dependencies of the project. See http://shipkit.org." + Newline +
	"The format of dependencies is: group:name:version" + Newline +
	"Each of the dependencies may contain artifacts (more nested) formatted like: artifactName:classifier:type:extension"

// EmptyManifest is the exact output for a module with no module dependencies.
const EmptyManifest = "# Description" + Newline +
	description + Newline + Newline +
	"# Dependencies"

// Serialize renders deps for the given project. Descriptors without a module
// identity are skipped. Dependencies of the project's own group and version
// render without their version.
func Serialize(deps []core.DependencyDescriptor, project core.ProjectIdentity) string {
	entries := collect(deps, project)

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(EmptyManifest)
	for _, k := range keys {
		b.WriteString(dependencyIndent)
		b.WriteString(k)
		for _, a := range sortedSet(entries[k]) {
			b.WriteString(artifactIndent)
			b.WriteString(a)
		}
	}
	return b.String()
}

// Count returns the number of dependency lines Serialize writes for deps.
func Count(deps []core.DependencyDescriptor, project core.ProjectIdentity) int {
	return len(collect(deps, project))
}

// collect maps each rendered dependency line to the set of its artifact lines.
// Descriptors sharing a line are merged.
func collect(deps []core.DependencyDescriptor, project core.ProjectIdentity) map[string]map[string]struct{} {
	entries := make(map[string]map[string]struct{}, len(deps))
	for _, d := range deps {
		if !d.IsModule() {
			continue
		}
		key := DependencyLine(d, project)
		artifacts, ok := entries[key]
		if !ok {
			artifacts = make(map[string]struct{}, len(d.Artifacts))
			entries[key] = artifacts
		}
		for _, a := range d.Artifacts {
			artifacts[ArtifactLine(a)] = struct{}{}
		}
	}
	return entries
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// DependencyLine renders d as group:name:version, or group:name when d is
// released together with project or has no version.
func DependencyLine(d core.DependencyDescriptor, project core.ProjectIdentity) string {
	line := d.Group + Separator + d.Name
	if d.Version == "" || project.IsSubmodule(d) {
		return line
	}
	return line + Separator + d.Version
}

// ArtifactLine renders a as name:classifier:type:extension.
func ArtifactLine(a core.ArtifactDescriptor) string {
	return a.Name + Separator + a.Classifier + Separator + a.Type + Separator + a.Extension
}

// Write serializes deps and atomically writes the manifest to path.
func Write(path string, deps []core.DependencyDescriptor, project core.ProjectIdentity) error {
	return atomicfile.Write(path, []byte(Serialize(deps, project)))
}
