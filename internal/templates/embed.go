// Package templates holds the embedded starter files shipped with the CLI.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed starter.yml
var files embed.FS

// Starter returns the starter config template written by `plugconf init`.
func Starter() []byte {
	data, err := files.ReadFile("starter.yml")
	if err != nil {
		// The file is embedded at build time; failing to read it is a
		// packaging bug.
		panic(err)
	}
	return data
}

// FS returns the embedded template files, usable as bundled app resources.
func FS() fs.FS {
	return files
}
