package shipkit_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/koral--/shipkit"
	_ "github.com/koral--/shipkit/all"
)

func TestSupportedFormats(t *testing.T) {
	formats := shipkit.SupportedFormats()

	expected := []string{"gav", "purl", "yaml"}
	if len(formats) != len(expected) {
		t.Fatalf("expected %d formats, got %d: %v", len(expected), len(formats), formats)
	}
	for i, f := range expected {
		if formats[i] != f {
			t.Errorf("expected format %q at position %d, got %q", f, i, formats[i])
		}
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"gav", false},
		{"purl", false},
		{"yaml", false},
		{"json", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			_, err := shipkit.NewReader(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewReader(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, shipkit.ErrUnknownFormat) {
				t.Errorf("NewReader(%q) error = %v, want ErrUnknownFormat", tt.format, err)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"deps.yaml", "yaml"},
		{"deps.yml", "yaml"},
		{"deps.purl", "purl"},
		{"deps.gav", "gav"},
		{"deps.txt", "gav"},
		{"deps.json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := shipkit.FormatForPath(tt.path); got != tt.want {
				t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// The same dependency set in every input format produces the same manifest.
func TestFormatsAgree(t *testing.T) {
	inputs := map[string]string{
		"yaml": `
dependencies:
  - group: org.mockito
    name: mockito-core
    version: 2.1.0
  - group: junit
    name: junit
    version: "4.12"
    artifacts:
      - {name: junit, classifier: "", type: jar, extension: jar}
  - file: libs/local.jar
`,
		"purl": `
pkg:maven/org.mockito/mockito-core@2.1.0
pkg:maven/junit/junit@4.12?type=jar
pkg:generic/local.jar
`,
		"gav": `
org.mockito:mockito-core:2.1.0
junit:junit:4.12@jar
libs/local.jar
`,
	}

	project := shipkit.ProjectIdentity{Group: "org.mockito", Version: "2.1.0"}
	want := "# Description\r\n" +
		"This file was generated by Shipkit Gradle plugin. It contains all declared dependencies of the project. See http://shipkit.org.\r\n" +
		"The format of dependencies is: group:name:version\r\n" +
		"Each of the dependencies may contain artifacts (more nested) formatted like: artifactName:classifier:type:extension\r\n" +
		"\r\n" +
		"# Dependencies" +
		"\r\n - junit:junit:4.12" +
		"\r\n   - junit::jar:jar" +
		"\r\n - org.mockito:mockito-core"

	for format, input := range inputs {
		t.Run(format, func(t *testing.T) {
			deps, err := shipkit.ReadDependencies(format, strings.NewReader(input))
			if err != nil {
				t.Fatalf("ReadDependencies failed: %v", err)
			}
			if got := shipkit.SerializeManifest(deps, project); got != want {
				t.Errorf("manifest = %q, want %q", got, want)
			}
		})
	}
}

func TestReleaseFlow(t *testing.T) {
	dir := t.TempDir()
	versionFile := filepath.Join(dir, "version.properties")
	if err := os.WriteFile(versionFile, []byte("version=2.1.0\nfoo=bar\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	info, err := shipkit.ResolveVersion("", versionFile)
	if err != nil {
		t.Fatalf("ResolveVersion failed: %v", err)
	}
	if info.Version != "2.1.0" || !info.Notable() {
		t.Errorf("ResolveVersion = %+v", info)
	}

	deps := []shipkit.DependencyDescriptor{
		{Group: "org.mockito", Name: "mockito-core", Version: info.Version},
	}
	out := filepath.Join(dir, "dependency-info.json")
	if err := shipkit.WriteManifest(out, deps, shipkit.ProjectIdentity{Group: "org.mockito", Version: info.Version}); err != nil {
		t.Fatalf("WriteManifest failed: %v", err)
	}
	data, _ := os.ReadFile(out)
	if !strings.HasSuffix(string(data), "\r\n - org.mockito:mockito-core") {
		t.Errorf("manifest = %q", data)
	}

	res, err := shipkit.BumpVersionFile(versionFile)
	if err != nil {
		t.Fatalf("BumpVersionFile failed: %v", err)
	}
	if res.Previous != "2.1.0" || res.Current != "2.1.1" {
		t.Errorf("BumpVersionFile = %+v", res)
	}
	data, _ = os.ReadFile(versionFile)
	if string(data) != "version=2.1.1\nfoo=bar\n" {
		t.Errorf("version file = %q", data)
	}
}

func TestErrors(t *testing.T) {
	_, err := shipkit.ResolveVersion("", filepath.Join(t.TempDir(), "missing.properties"))
	var vfe *shipkit.VersionFileError
	if !errors.As(err, &vfe) || !errors.Is(err, shipkit.ErrVersionFileMissing) {
		t.Errorf("ResolveVersion error = %v", err)
	}

	_, err = shipkit.BumpVersion("2.1.0-SNAPSHOT")
	var nbe *shipkit.NotBumpableError
	if !errors.As(err, &nbe) || nbe.Version != "2.1.0-SNAPSHOT" {
		t.Errorf("BumpVersion error = %v", err)
	}

	err = shipkit.WriteManifest(filepath.Join(t.TempDir(), "no", "such", "dir"), nil, shipkit.ProjectIdentity{})
	if !errors.Is(err, shipkit.ErrWriteFailure) {
		t.Errorf("WriteManifest error = %v", err)
	}
}

func TestParsePURL(t *testing.T) {
	if _, err := shipkit.ParsePURL("pkg:maven/junit/junit@4.12"); err != nil {
		t.Errorf("ParsePURL error = %v", err)
	}
	if _, err := shipkit.ParsePURL("maven/junit/junit"); err == nil {
		t.Error("expected error for PURL without pkg: prefix")
	}
}

func TestParsePURL_MatchesPurlFormat(t *testing.T) {
	const line = "pkg:maven/junit/junit@4.12?classifier=sources"

	p, err := shipkit.ParsePURL(line)
	if err != nil {
		t.Fatalf("ParsePURL error = %v", err)
	}
	if p.FullName() != "junit:junit" {
		t.Errorf("FullName() = %q, want %q", p.FullName(), "junit:junit")
	}
	if p.Qualifier("classifier") != "sources" {
		t.Errorf("Qualifier(classifier) = %q", p.Qualifier("classifier"))
	}

	deps, err := shipkit.ReadDependencies("purl", strings.NewReader(line+"\n"))
	if err != nil {
		t.Fatalf("ReadDependencies error = %v", err)
	}
	if len(deps) != 1 {
		t.Fatalf("expected 1 dependency, got %d", len(deps))
	}
	if got := shipkit.DescriptorFromPURL(p); !reflect.DeepEqual(got, deps[0]) {
		t.Errorf("DescriptorFromPURL = %+v, reader = %+v", got, deps[0])
	}
}
