// Package maven reads dependency listings written in Gradle/Maven coordinate
// notation, one dependency per line:
//
//	junit:junit:4.12
//	org.mockito:mockito-core:2.1.0:sources
//	com.example:native:1.0:linux@so
//
// Lines that are not coordinates (e.g. a path to a local jar) are kept as
// file dependencies without a module identity.
package maven

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/koral--/shipkit/internal/core"
)

const (
	format         = "gav"
	defaultArtType = "jar"
)

func init() {
	core.Register(format, []string{".gav", ".txt"}, func() core.Reader {
		return New()
	})
}

type Reader struct{}

func New() *Reader {
	return &Reader{}
}

func (r *Reader) Format() string {
	return format
}

// Read parses one notation per line. Blank lines and lines starting with #
// are skipped.
func (r *Reader) Read(in io.Reader) ([]core.DependencyDescriptor, error) {
	var deps []core.DependencyDescriptor
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d, ok := ParseNotation(line)
		if !ok {
			if strings.Contains(line, ":") {
				return nil, fmt.Errorf("line %d: invalid coordinates %q", lineNo, line)
			}
			d = core.DependencyDescriptor{Name: line}
		}
		deps = append(deps, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return deps, nil
}

// ParseCoordinates splits "group:artifact[:version]".
// Returns empty strings when the input has fewer than two segments.
func ParseCoordinates(s string) (groupID, artifactID, version string) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return "", "", ""
	}
	groupID, artifactID = parts[0], parts[1]
	if len(parts) > 2 {
		version = parts[2]
	}
	return groupID, artifactID, version
}

// ParseNotation parses "group:name[:version[:classifier]][@extension]".
// A classifier or extension yields a single artifact named after the dependency.
func ParseNotation(s string) (core.DependencyDescriptor, bool) {
	coords, ext, hasExt := strings.Cut(s, "@")
	if hasExt && ext == "" {
		return core.DependencyDescriptor{}, false
	}

	parts := strings.Split(coords, ":")
	if len(parts) < 2 || len(parts) > 4 {
		return core.DependencyDescriptor{}, false
	}
	for _, p := range parts {
		if p == "" {
			return core.DependencyDescriptor{}, false
		}
	}

	group, name, version := ParseCoordinates(coords)
	d := core.DependencyDescriptor{Group: group, Name: name, Version: version}

	classifier := ""
	if len(parts) == 4 {
		classifier = parts[3]
	}
	if classifier == "" && !hasExt {
		return d, true
	}

	if ext == "" {
		ext = defaultArtType
	}
	d.Artifacts = []core.ArtifactDescriptor{{
		Name:       name,
		Classifier: classifier,
		Type:       ext,
		Extension:  ext,
	}}
	return d, true
}
