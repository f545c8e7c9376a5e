// Package static holds the site's stylesheet and images.
package static

import "embed"

// FS exposes static assets for HTTP serving and export.
//
//go:embed css images
var FS embed.FS
