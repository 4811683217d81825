// Package all imports all supported dependency input formats.
//
// Import this package for its side effects to register all formats:
//
//	import (
//		"github.com/koral--/shipkit"
//		_ "github.com/koral--/shipkit/all"
//	)
//
//	// Now all formats are available
//	formats := shipkit.SupportedFormats()
//	// ["gav", "purl", "yaml"]
package all

import (
	_ "github.com/koral--/shipkit/internal/maven"
	_ "github.com/koral--/shipkit/internal/purls"
	_ "github.com/koral--/shipkit/internal/yamldeps"
)
