package static

import "embed"

// FS exposes the showcase stylesheet for HTTP serving.
//
//go:embed *.css
var FS embed.FS
