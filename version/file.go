// Package version reads, overrides and increments the project version kept in
// a key=value version file such as version.properties:
//
//	version=2.1.0
//	foo=bar
//
// Only the version line is interpreted. Every other line, comments and lines
// in any other properties or dotenv dialect included, survives a bump byte for
// byte.
package version

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/koral--/shipkit/internal/atomicfile"
	"github.com/koral--/shipkit/internal/core"
)

// Key is the version file key holding the version.
const Key = "version"

// DefaultFile is the conventional version file name, relative to the project root.
const DefaultFile = "version.properties"

// Entry is one line of a version file.
type Entry struct {
	Key   string // empty for comments and blank lines
	Value string // decoded for the version line, verbatim otherwise
	Raw   string
}

// File is a loaded version file.
type File struct {
	Path    string
	Version string
	Entries []Entry

	newline string
}

// Load reads the version file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &core.VersionFileError{Path: path, Kind: core.ErrVersionFileMissing, Err: err}
		}
		return nil, &core.VersionFileError{Path: path, Kind: core.ErrVersionFileMalformed, Reason: "unreadable", Err: err}
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*File, error) {
	f := &File{Path: path, newline: "\n"}
	text := string(data)
	if strings.Contains(text, "\r\n") {
		f.newline = "\r\n"
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	text = strings.TrimSuffix(text, "\n")

	found := false
	if text != "" {
		for _, raw := range strings.Split(text, "\n") {
			e := Entry{Raw: raw}
			if key, value, ok := splitLine(raw); ok {
				e.Key, e.Value = key, value
				if key == Key {
					v, err := decodeValue(value)
					if err != nil {
						return nil, &core.VersionFileError{Path: path, Kind: core.ErrVersionFileMalformed, Err: err}
					}
					e.Value = v
					f.Version = v
					found = true
				}
			}
			f.Entries = append(f.Entries, e)
		}
	}

	if !found {
		return nil, &core.VersionFileError{Path: path, Kind: core.ErrVersionFileMalformed, Reason: "no " + Key + " key"}
	}
	if f.Version = strings.TrimSpace(f.Version); f.Version == "" {
		return nil, &core.VersionFileError{Path: path, Kind: core.ErrVersionFileMalformed, Reason: "empty " + Key + " value"}
	}
	return f, nil
}

// splitLine splits a properties line into key and uninterpreted value. The key
// ends at the first '=', ':' or whitespace. Comments ('#' or '!') and blank
// lines have no key.
func splitLine(line string) (key, value string, ok bool) {
	s := strings.TrimSpace(line)
	if s == "" || s[0] == '#' || s[0] == '!' {
		return "", "", false
	}
	if rest, found := strings.CutPrefix(s, "export"); found && rest != "" && isBlank(rest[0]) {
		s = strings.TrimLeft(rest, " \t")
	}

	i := strings.IndexFunc(s, func(r rune) bool {
		return r == '=' || r == ':' || r == ' ' || r == '\t'
	})
	if i == 0 {
		return "", "", false
	}
	if i < 0 {
		return s, "", true
	}

	key, value = s[:i], strings.TrimLeft(s[i:], " \t")
	if value != "" && (value[0] == '=' || value[0] == ':') {
		value = strings.TrimLeft(value[1:], " \t")
	}
	return key, value, true
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// decodeValue unquotes the version value with dotenv rules. Dollar signs are
// kept literally instead of being expanded.
func decodeValue(value string) (string, error) {
	if !strings.HasPrefix(value, "'") {
		value = strings.ReplaceAll(value, "$", `\$`)
	}
	values, err := godotenv.Unmarshal(Key + "=" + value)
	if err != nil {
		return "", err
	}
	return values[Key], nil
}

// Render returns the file content with the version replaced by newVersion.
func (f *File) Render(newVersion string) []byte {
	return render(f.Entries, newVersion, f.newline)
}

// WriteBack atomically rewrites the file with newVersion.
func (f *File) WriteBack(newVersion string) error {
	return atomicfile.Write(f.Path, f.Render(newVersion))
}

// WriteBack atomically writes preserved to path with the version line set to
// newVersion. Lines other than the version line are written verbatim and in
// order; a version line is appended when preserved has none.
func WriteBack(path, newVersion string, preserved []Entry) error {
	return atomicfile.Write(path, render(preserved, newVersion, "\n"))
}

func render(entries []Entry, newVersion, newline string) []byte {
	var b strings.Builder
	written := false
	for _, e := range entries {
		switch {
		case e.Key == Key:
			b.WriteString(Key + "=" + newVersion)
			written = true
		case e.Raw == "" && e.Key != "":
			b.WriteString(e.Key + "=" + e.Value)
		default:
			b.WriteString(e.Raw)
		}
		b.WriteString(newline)
	}
	if !written {
		b.WriteString(Key + "=" + newVersion + newline)
	}
	return []byte(b.String())
}
