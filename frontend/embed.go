package frontend

import "embed"

// Assets is the built frontend served by the Wails asset server.
//
//go:embed all:dist
var Assets embed.FS
