// Package web holds the embedded single-page screen.
package web

import "embed"

// FS contains index.html and the static/ assets
//
//go:embed index.html static
var FS embed.FS
