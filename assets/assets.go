// Package assets loads the client's bundled and on-disk resources.
package assets

import (
	"embed"

	"github.com/automoto/emberveil/controls"
)

//go:embed all:layout
var layoutFS embed.FS

// TouchLayout loads the on-screen touch zones from the embedded TMX map.
func TouchLayout(path string) (*controls.Layout, error) {
	return controls.LoadLayout(layoutFS, path)
}
