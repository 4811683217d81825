// Package shipkit produces reproducible release metadata for multi-module
// projects: a persisted project version that can be overridden and
// incremented, and a deterministic manifest of a module's resolved
// dependencies.
//
// Basic usage:
//
//	import (
//		"github.com/koral--/shipkit"
//		_ "github.com/koral--/shipkit/all"
//	)
//
//	info, err := shipkit.ResolveVersion(os.Getenv("RELEASE_VERSION"), "version.properties")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	deps, err := shipkit.ReadDependencies("yaml", f)
//	if err != nil {
//		log.Fatal(err)
//	}
//	project := shipkit.ProjectIdentity{Group: "org.mockito", Version: info.Version}
//	if err := shipkit.WriteManifest("build/dependency-info.json", deps, project); err != nil {
//		log.Fatal(err)
//	}
//
// To bump the version file after a release:
//
//	res, err := shipkit.BumpVersionFile("version.properties")
//	fmt.Println(res.Previous, "->", res.Current)
package shipkit

import (
	"io"

	"github.com/koral--/shipkit/internal/core"
	"github.com/koral--/shipkit/manifest"
	"github.com/koral--/shipkit/version"
)

// Re-export types from internal/core
type (
	// DependencyDescriptor describes one resolved dependency.
	DependencyDescriptor = core.DependencyDescriptor

	// ArtifactDescriptor describes an artifact attached to a dependency.
	ArtifactDescriptor = core.ArtifactDescriptor

	// ProjectIdentity identifies the module a manifest is generated for.
	ProjectIdentity = core.ProjectIdentity

	// Reader is the interface implemented by all dependency input formats.
	Reader = core.Reader
)

// Re-export types from version
type (
	// VersionInfo is a resolved project version and where it came from.
	VersionInfo = version.Info

	// BumpResult reports a completed version bump.
	BumpResult = version.BumpResult
)

// Re-export errors
var (
	ErrVersionFileMissing   = core.ErrVersionFileMissing
	ErrVersionFileMalformed = core.ErrVersionFileMalformed
	ErrVersionNotBumpable   = core.ErrVersionNotBumpable
	ErrWriteFailure         = core.ErrWriteFailure
	ErrUnknownFormat        = core.ErrUnknownFormat
)

// Error types
type (
	VersionFileError = core.VersionFileError
	NotBumpableError = core.NotBumpableError
	WriteError       = core.WriteError
)

// ResolveVersion returns override when non-empty, otherwise the version
// stored in the file at path.
func ResolveVersion(override, path string) (VersionInfo, error) {
	return version.Resolve(override, path)
}

// BumpVersion returns the next version after current.
func BumpVersion(current string) (string, error) {
	return version.Bump(current)
}

// BumpVersionFile increments the version in the file at path and writes it back atomically.
func BumpVersionFile(path string) (BumpResult, error) {
	return version.BumpFile(path)
}

// SerializeManifest renders the dependency manifest for project.
func SerializeManifest(deps []DependencyDescriptor, project ProjectIdentity) string {
	return manifest.Serialize(deps, project)
}

// WriteManifest renders the dependency manifest and writes it atomically to path.
func WriteManifest(path string, deps []DependencyDescriptor, project ProjectIdentity) error {
	return manifest.Write(path, deps, project)
}

// NewReader creates a reader for a registered input format.
// Note: formats must be imported to be registered.
func NewReader(format string) (Reader, error) {
	return core.NewReader(format)
}

// ReadDependencies decodes a dependency listing in the given format.
func ReadDependencies(format string, r io.Reader) ([]DependencyDescriptor, error) {
	reader, err := core.NewReader(format)
	if err != nil {
		return nil, err
	}
	return reader.Read(r)
}

// SupportedFormats returns all registered input formats, sorted.
func SupportedFormats() []string {
	return core.SupportedFormats()
}

// FormatForPath guesses the input format from a file extension.
// Returns "" when no registered format matches.
func FormatForPath(path string) string {
	return core.FormatForPath(path)
}

// PURL represents a parsed Package URL. The purl input format reads the same type.
type PURL = core.PURL

// ParsePURL parses a Package URL string into its components.
// Supports both package PURLs (pkg:maven/junit/junit) and version PURLs (pkg:maven/junit/junit@4.12).
func ParsePURL(purlStr string) (*PURL, error) {
	return core.ParsePURL(purlStr)
}

// DescriptorFromPURL converts a parsed Package URL into a dependency descriptor,
// the same way the purl input format does.
func DescriptorFromPURL(p *PURL) DependencyDescriptor {
	return core.DescriptorFromPURL(p)
}
