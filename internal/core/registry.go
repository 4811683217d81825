package core

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Reader is the interface implemented by all dependency input formats.
type Reader interface {
	// Format returns the name this reader is registered under (e.g. "yaml", "purl").
	Format() string

	// Read decodes a dependency listing. Entries without a module identity are
	// returned as-is; filtering them is the serializer's job.
	Read(r io.Reader) ([]DependencyDescriptor, error)
}

// Factory creates a reader instance.
type Factory func() Reader

var (
	factories  = make(map[string]Factory)
	extensions = make(map[string][]string)
	mu         sync.RWMutex
)

// Register adds a reader factory to the global registry.
// exts are the file extensions (with leading dot) recognised for the format.
func Register(format string, exts []string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[format] = factory
	extensions[format] = exts
}

// NewReader creates a reader for the given format.
func NewReader(format string) (Reader, error) {
	mu.RLock()
	factory, ok := factories[format]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return factory(), nil
}

// SupportedFormats returns all registered format names, sorted.
func SupportedFormats() []string {
	mu.RLock()
	defer mu.RUnlock()

	formats := make([]string, 0, len(factories))
	for f := range factories {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Extensions returns the file extensions registered for a format.
func Extensions(format string) []string {
	mu.RLock()
	defer mu.RUnlock()
	return extensions[format]
}

// FormatForPath returns the format whose extensions match path, or "" if none does.
func FormatForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ""
	}

	mu.RLock()
	defer mu.RUnlock()

	for _, format := range sortedFormatsLocked() {
		for _, e := range extensions[format] {
			if e == ext {
				return format
			}
		}
	}
	return ""
}

func sortedFormatsLocked() []string {
	formats := make([]string, 0, len(extensions))
	for f := range extensions {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
