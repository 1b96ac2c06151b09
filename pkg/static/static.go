package static

import (
	"embed"
	"io/fs"
)

//go:embed all:web
var webFS embed.FS

// WebFS returns the embedded UI rooted at the web directory.
func WebFS() (fs.FS, error) {
	return fs.Sub(webFS, "web")
}
