// Package web holds the browser chat widget served at "/".
package web

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed static
var embedded embed.FS

// Assets returns the widget bundle, read from dir when set and from the binary otherwise.
func Assets(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(embedded, "static")
}
