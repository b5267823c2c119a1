// Package templates embeds the default files devsetup writes on first run.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed config.toml
var files embed.FS

// Read returns the embedded template at path.
func Read(path string) ([]byte, error) {
	return fs.ReadFile(files, path)
}
