// Package public embeds the static assets shipped with the site.
package public

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// AssetsFS exposes the files served under /assets.
func AssetsFS() (fs.FS, error) {
	return fs.Sub(static, "static/assets")
}
