// Package cli implements the shipkit command line: the "bump version" and
// "write dependency manifest" tasks plus a few inspection commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	_ "github.com/koral--/shipkit/all"
	"github.com/koral--/shipkit/config"
	"github.com/koral--/shipkit/internal/core"
	"github.com/koral--/shipkit/internal/logging"
	"github.com/koral--/shipkit/manifest"
	"github.com/koral--/shipkit/version"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const usage = `usage: shipkit [-config file] [-log-level level] [-log-format text|json] <command> [flags]

commands:
  version         print the resolved project version
  bump-version    increment the version file
  write-manifest  write the dependency manifest
  deps            print module dependencies as package URLs
  formats         list dependency input formats
`

// UsageError is returned for invalid invocations.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usagef(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

type command struct {
	cfg    *config.Config
	log    *slog.Logger
	stdout io.Writer
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	err := run(args, stdout, stderr)
	if err == nil {
		return ExitSuccess
	}

	var uerr *UsageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "shipkit: %s\n\n%s", uerr.Message, usage)
		return ExitUsage
	}
	fmt.Fprintf(stderr, "shipkit: %v\n", err)
	return ExitFailure
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("shipkit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configPath := fs.String("config", "", "config file (default "+config.DefaultFile+" when present)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "log format: text, json")

	if err := fs.Parse(args); err != nil {
		return usagef("%v", err)
	}
	if fs.NArg() == 0 {
		return usagef("missing command")
	}

	path := *configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}

	c := &command{
		cfg:    cfg,
		log:    logging.New(stderr, cfg.Log.Level, cfg.Log.Format),
		stdout: stdout,
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	switch name {
	case "version":
		return c.version(rest)
	case "bump-version":
		return c.bumpVersion(rest)
	case "write-manifest":
		return c.writeManifest(rest)
	case "deps":
		return c.deps(rest)
	case "formats":
		return c.formats(rest)
	default:
		return usagef("unknown command %q", name)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usagef("%s: %v", fs.Name(), err)
	}
	if fs.NArg() != 0 {
		return usagef("%s: unexpected arguments: %q", fs.Name(), strings.Join(fs.Args(), " "))
	}
	return nil
}

// resolveVersion logs where the version came from, the way release builds
// report it before doing anything else.
func (c *command) resolveVersion(override, path string) (version.Info, error) {
	info, err := version.Resolve(override, path)
	if err != nil {
		return version.Info{}, err
	}
	if info.Source == version.SourceOverride {
		c.log.Info("using version supplied via override", "version", info.Version)
	} else {
		c.log.Info("using version from file", "version", info.Version, "file", info.Path)
	}
	return info, nil
}

func (c *command) version(args []string) error {
	fs := newFlagSet("version")
	file := fs.String("file", c.cfg.Version.File, "version file")
	override := fs.String("release-version", c.cfg.Version.Override, "use this version instead of the file")
	if err := parse(fs, args); err != nil {
		return err
	}

	info, err := c.resolveVersion(*override, *file)
	if err != nil {
		return err
	}
	c.log.Debug("version details", "source", info.Source, "notable", info.Notable())
	fmt.Fprintln(c.stdout, info.Version)
	return nil
}

func (c *command) bumpVersion(args []string) error {
	fs := newFlagSet("bump-version")
	file := fs.String("file", c.cfg.Version.File, "version file")
	if err := parse(fs, args); err != nil {
		return err
	}

	res, err := version.BumpFile(*file)
	if err != nil {
		return err
	}
	c.log.Info("bumped version", "file", res.Path, "previous", res.Previous, "version", res.Current)
	fmt.Fprintln(c.stdout, res.Current)
	return nil
}

func (c *command) writeManifest(args []string) error {
	fs := newFlagSet("write-manifest")
	input := fs.String("input", c.cfg.Manifest.Input, "dependency listing")
	format := fs.String("format", c.cfg.Manifest.Format, "input format (default: from the input file extension)")
	output := fs.String("output", c.cfg.Manifest.Output, "manifest path")
	group := fs.String("group", c.cfg.Project.Group, "project group")
	projectVersion := fs.String("project-version", c.cfg.Project.Version, "project version (default: resolved version)")
	file := fs.String("file", c.cfg.Version.File, "version file")
	override := fs.String("release-version", c.cfg.Version.Override, "use this version instead of the file")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *group == "" {
		return usagef("write-manifest: -group is required")
	}

	deps, err := c.readDependencies(*input, *format)
	if err != nil {
		return err
	}

	project := core.ProjectIdentity{Group: *group, Version: *projectVersion}
	if project.Version == "" {
		info, err := c.resolveVersion(*override, *file)
		if err != nil {
			return err
		}
		project.Version = info.Version
	}

	if err := manifest.Write(*output, deps, project); err != nil {
		return err
	}
	c.log.Info("wrote dependency manifest", "path", *output, "dependencies", manifest.Count(deps, project))
	return nil
}

func (c *command) deps(args []string) error {
	fs := newFlagSet("deps")
	input := fs.String("input", c.cfg.Manifest.Input, "dependency listing")
	format := fs.String("format", c.cfg.Manifest.Format, "input format (default: from the input file extension)")
	if err := parse(fs, args); err != nil {
		return err
	}

	deps, err := c.readDependencies(*input, *format)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{})
	var purls []string
	for _, d := range deps {
		if !d.IsModule() {
			continue
		}
		for _, p := range append([]string{d.PURL()}, d.ArtifactPURLs()...) {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				purls = append(purls, p)
			}
		}
	}
	sort.Strings(purls)
	for _, p := range purls {
		fmt.Fprintln(c.stdout, p)
	}
	return nil
}

func (c *command) formats(args []string) error {
	if err := parse(newFlagSet("formats"), args); err != nil {
		return err
	}
	for _, f := range core.SupportedFormats() {
		fmt.Fprintf(c.stdout, "%s\t%s\n", f, strings.Join(core.Extensions(f), " "))
	}
	return nil
}

func (c *command) readDependencies(input, format string) ([]core.DependencyDescriptor, error) {
	if input == "" {
		return nil, usagef("-input is required")
	}
	if format == "" {
		format = core.FormatForPath(input)
		if format == "" {
			return nil, usagef("cannot tell the format of %s; pass -format", input)
		}
	}

	reader, err := core.NewReader(format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	deps, err := reader.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	c.log.Debug("read dependencies", "input", input, "format", format, "count", len(deps))
	return deps, nil
}
