// Package web embeds the browser client served for non-API paths.
package web

import "embed"

// Static holds the client shell under the "static" directory.
//
//go:embed static
var Static embed.FS
