// Package purls reads dependency listings made of package URLs, one per line:
//
//	pkg:maven/junit/junit@4.12?type=jar
//	pkg:maven/org.mockito/mockito-core@2.1.0
//
// Package URLs without a namespace (pkg:generic/local.jar) have no module
// identity and are kept as file dependencies.
package purls

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/koral--/shipkit/internal/core"
)

const format = "purl"

func init() {
	core.Register(format, []string{".purl", ".purls"}, func() core.Reader {
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

// Read parses one package URL per line. Blank lines and lines starting with #
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
		p, err := core.ParsePURL(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		deps = append(deps, core.DescriptorFromPURL(p))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return deps, nil
}
