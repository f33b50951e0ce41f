package static

import "embed"

// FS holds the site's compiled assets, served under /static/.
//
//go:embed dist
var FS embed.FS
