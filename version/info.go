package version

import (
	"strings"

	"github.com/Masterminds/semver"
)

// Source tells where a resolved version came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceOverride Source = "override"
)

// Info is a resolved project version.
type Info struct {
	Version string
	Source  Source
	Path    string // version file path; empty for overrides
}

// Resolve returns override when it is non-empty, without touching the file.
// Otherwise the version is read from the file at path.
func Resolve(override, path string) (Info, error) {
	if v := strings.TrimSpace(override); v != "" {
		return Info{Version: v, Source: SourceOverride}, nil
	}

	f, err := Load(path)
	if err != nil {
		return Info{}, err
	}
	return Info{Version: f.Version, Source: SourceFile, Path: path}, nil
}

// Notable reports whether the version is a notable release: a final
// semantic version with a zero patch number, such as 2.1.0.
func (i Info) Notable() bool {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return false
	}
	return v.Patch() == 0 && v.Prerelease() == "" && v.Metadata() == ""
}
