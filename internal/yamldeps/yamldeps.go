// Package yamldeps reads dependency listings from YAML documents:
//
//	dependencies:
//	  - group: junit
//	    name: junit
//	    version: "4.12"
//	    artifacts:
//	      - name: junit
//	        type: jar
//	        extension: jar
//	  - file: libs/local.jar
package yamldeps

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/koral--/shipkit/internal/core"
)

const format = "yaml"

func init() {
	core.Register(format, []string{".yaml", ".yml"}, func() core.Reader {
		return New()
	})
}

type document struct {
	Dependencies []dependency `yaml:"dependencies"`
}

type dependency struct {
	Group     string     `yaml:"group"`
	Name      string     `yaml:"name"`
	Version   string     `yaml:"version"`
	File      string     `yaml:"file"` // local file dependency, no module identity
	Artifacts []artifact `yaml:"artifacts"`
}

type artifact struct {
	Name       string `yaml:"name"`
	Classifier string `yaml:"classifier"`
	Type       string `yaml:"type"`
	Extension  string `yaml:"extension"`
}

type Reader struct{}

func New() *Reader {
	return &Reader{}
}

func (r *Reader) Format() string {
	return format
}

// Read decodes a single YAML document. An empty document yields no dependencies.
func (r *Reader) Read(in io.Reader) ([]core.DependencyDescriptor, error) {
	var doc document
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	deps := make([]core.DependencyDescriptor, 0, len(doc.Dependencies))
	for _, d := range doc.Dependencies {
		if d.File != "" && (d.Group != "" || d.Name != "") {
			return nil, fmt.Errorf("dependency %q: file and group/name are mutually exclusive", d.File)
		}
		if d.File != "" {
			deps = append(deps, core.DependencyDescriptor{})
			continue
		}
		desc := core.DependencyDescriptor{
			Group:   d.Group,
			Name:    d.Name,
			Version: d.Version,
		}
		for _, a := range d.Artifacts {
			desc.Artifacts = append(desc.Artifacts, core.ArtifactDescriptor(a))
		}
		deps = append(deps, desc)
	}
	return deps, nil
}
