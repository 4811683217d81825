package version

import (
	"math"
	"strconv"
	"strings"

	"github.com/koral--/shipkit/internal/core"
)

// Bump returns current with its last numeric component incremented:
// "2.1.0" becomes "2.1.1". Pre-release and build-metadata versions
// ("2.1.0-SNAPSHOT", "1.0.0+build.5") and versions that do not end in a
// number are rejected with core.ErrVersionNotBumpable.
func Bump(current string) (string, error) {
	if current == "" || strings.ContainsAny(current, "-+") {
		return "", &core.NotBumpableError{Version: current}
	}

	prefix, last := "", current
	if i := strings.LastIndexByte(current, '.'); i >= 0 {
		prefix, last = current[:i+1], current[i+1:]
	}
	if !isDigits(last) {
		return "", &core.NotBumpableError{Version: current}
	}

	n, err := strconv.ParseUint(last, 10, 64)
	if err != nil || n == math.MaxUint64 {
		return "", &core.NotBumpableError{Version: current}
	}
	return prefix + strconv.FormatUint(n+1, 10), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// BumpResult reports a completed bump.
type BumpResult struct {
	Path     string
	Previous string
	Current  string
}

// BumpFile increments the version stored at path and writes it back.
// The file is left untouched when any step fails.
func BumpFile(path string) (BumpResult, error) {
	f, err := Load(path)
	if err != nil {
		return BumpResult{}, err
	}

	next, err := Bump(f.Version)
	if err != nil {
		return BumpResult{}, err
	}

	if err := f.WriteBack(next); err != nil {
		return BumpResult{}, err
	}
	return BumpResult{Path: path, Previous: f.Version, Current: next}, nil
}
