// Package config loads shipkit settings from defaults, an optional YAML file
// and SHIPKIT_ environment variables, in increasing order of precedence.
package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/koral--/shipkit/manifest"
	"github.com/koral--/shipkit/version"
)

// EnvPrefix is the prefix of environment overrides: SHIPKIT_VERSION_FILE -> version.file.
const EnvPrefix = "SHIPKIT_"

// DefaultFile is the config file picked up from the working directory when present.
const DefaultFile = "shipkit.yaml"

type Config struct {
	Log      LogConfig      `koanf:"log"`
	Version  VersionConfig  `koanf:"version"`
	Project  ProjectConfig  `koanf:"project"`
	Manifest ManifestConfig `koanf:"manifest"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, text
}

type VersionConfig struct {
	File     string `koanf:"file"`
	Override string `koanf:"override"` // replaces the file's version when set
}

type ProjectConfig struct {
	Group   string `koanf:"group"`
	Version string `koanf:"version"` // defaults to the resolved version
}

type ManifestConfig struct {
	Input  string `koanf:"input"`
	Format string `koanf:"format"` // yaml, purl, gav; guessed from Input when empty
	Output string `koanf:"output"`
}

// Load reads configuration. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]string{
		"log.level":       "info",
		"log.format":      "text",
		"version.file":    version.DefaultFile,
		"manifest.output": filepath.Join("build", manifest.DefaultFile),
	}
	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return nil, err
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
