// Package assets bundles the seating-chart documents shipped with the
// binary. Charts are authored offline; the filename (without extension) is
// the venue name the chart is registered under.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed charts/*.svg
var chartFiles embed.FS

// ChartsFS returns the bundled chart documents rooted at the directory
// containing the .svg files.
func ChartsFS() fs.FS {
	sub, err := fs.Sub(chartFiles, "charts")
	if err != nil {
		// The charts directory is embedded at compile time; a failure here
		// means the binary itself is broken.
		panic(err)
	}
	return sub
}
