package core

import (
	"reflect"
	"testing"
)

func TestParsePURL(t *testing.T) {
	tests := []struct {
		input    string
		wantType string
		wantNS   string
		wantName string
		wantVer  string
		wantFull string
		wantErr  bool
	}{
		// Package without version
		{"pkg:maven/junit/junit", "maven", "junit", "junit", "", "junit:junit", false},

		// Package with version
		{"pkg:maven/org.mockito/mockito-core@2.1.0", "maven", "org.mockito", "mockito-core", "2.1.0", "org.mockito:mockito-core", false},
		{"pkg:maven/org.apache.commons/commons-lang3@3.12.0", "maven", "org.apache.commons", "commons-lang3", "3.12.0", "org.apache.commons:commons-lang3", false},

		// No namespace
		{"pkg:generic/local-lib@1.0", "generic", "", "local-lib", "1.0", "local-lib", false},

		// Errors
		{"maven/junit/junit", "", "", "", "", "", true}, // missing pkg: prefix
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if p.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", p.Type, tt.wantType)
			}
			if p.Namespace != tt.wantNS {
				t.Errorf("Namespace = %q, want %q", p.Namespace, tt.wantNS)
			}
			if p.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", p.Name, tt.wantName)
			}
			if p.Version != tt.wantVer {
				t.Errorf("Version = %q, want %q", p.Version, tt.wantVer)
			}
			if p.FullName() != tt.wantFull {
				t.Errorf("FullName() = %q, want %q", p.FullName(), tt.wantFull)
			}
		})
	}
}

func TestDescriptorFromPURL(t *testing.T) {
	tests := []struct {
		purl string
		want DependencyDescriptor
	}{
		{
			"pkg:maven/junit/junit@4.12",
			DependencyDescriptor{Group: "junit", Name: "junit", Version: "4.12"},
		},
		{
			"pkg:maven/junit/junit@4.12?type=jar",
			DependencyDescriptor{Group: "junit", Name: "junit", Version: "4.12", Artifacts: []ArtifactDescriptor{
				{Name: "junit", Classifier: "", Type: "jar", Extension: "jar"},
			}},
		},
		{
			"pkg:maven/org.mockito/mockito-core@2.1.0?classifier=sources",
			DependencyDescriptor{Group: "org.mockito", Name: "mockito-core", Version: "2.1.0", Artifacts: []ArtifactDescriptor{
				{Name: "mockito-core", Classifier: "sources", Type: "jar", Extension: "jar"},
			}},
		},
		{
			"pkg:maven/com.example/native@1.0?classifier=linux&type=so&extension=so.1",
			DependencyDescriptor{Group: "com.example", Name: "native", Version: "1.0", Artifacts: []ArtifactDescriptor{
				{Name: "native", Classifier: "linux", Type: "so", Extension: "so.1"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.purl, func(t *testing.T) {
			p, err := ParsePURL(tt.purl)
			if err != nil {
				t.Fatalf("ParsePURL(%q) error = %v", tt.purl, err)
			}
			if got := DescriptorFromPURL(p); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DescriptorFromPURL() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDependencyDescriptor_PURL(t *testing.T) {
	d := DependencyDescriptor{
		Group:   "junit",
		Name:    "junit",
		Version: "4.12",
		Artifacts: []ArtifactDescriptor{
			{Name: "junit", Classifier: "sources", Type: "jar", Extension: "jar"},
		},
	}

	if got, want := d.PURL(), "pkg:maven/junit/junit@4.12"; got != want {
		t.Errorf("PURL() = %q, want %q", got, want)
	}

	purls := d.ArtifactPURLs()
	if len(purls) != 1 {
		t.Fatalf("expected 1 artifact purl, got %d", len(purls))
	}
	if want := "pkg:maven/junit/junit@4.12?classifier=sources&type=jar"; purls[0] != want {
		t.Errorf("ArtifactPURLs()[0] = %q, want %q", purls[0], want)
	}

	// Round trip back into a descriptor.
	p, err := ParsePURL(purls[0])
	if err != nil {
		t.Fatalf("ParsePURL(%q) error = %v", purls[0], err)
	}
	if got := DescriptorFromPURL(p); !reflect.DeepEqual(got, d) {
		t.Errorf("round trip = %+v, want %+v", got, d)
	}
}
