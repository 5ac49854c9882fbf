// Package templates provides the artifacts written into a freshly created
// Vite project: the stylesheet fragment, component markup, Tailwind config and
// icon.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed files
var embedded embed.FS

// Artifact file names inside a bundle.
const (
	AppCSSFileName         = "App.css"
	AppJSXFileName         = "App.jsx"
	TailwindConfigFileName = "tailwind.config.js"
	IconFileName           = "tailwind.svg"
)

// FileNames lists every artifact a bundle must carry.
var FileNames = []string{
	AppCSSFileName,
	AppJSXFileName,
	TailwindConfigFileName,
	IconFileName,
}

// Bundle is a read-only set of template artifacts.
type Bundle struct {
	fsys fs.FS

	AppCSS         string
	AppJSX         string
	TailwindConfig string
}

// Default returns the bundle compiled into the binary.
func Default() (*Bundle, error) {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// FromDir loads a bundle from an on-disk directory holding the same files.
func FromDir(dir string) (*Bundle, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Resolve returns the bundle at dir, or the embedded bundle when dir is empty.
func Resolve(dir string) (*Bundle, error) {
	if strings.TrimSpace(dir) == "" {
		return Default()
	}
	return FromDir(dir)
}

// Load reads the text artifacts out of fsys and checks that the icon exists.
func Load(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{fsys: fsys}
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{AppCSSFileName, &b.AppCSS},
		{AppJSXFileName, &b.AppJSX},
		{TailwindConfigFileName, &b.TailwindConfig},
	} {
		data, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", f.name, err)
		}
		*f.dst = string(data)
	}
	if _, err := fs.Stat(fsys, IconFileName); err != nil {
		return nil, fmt.Errorf("reading template %s: %w", IconFileName, err)
	}
	return b, nil
}

// FS exposes the bundle's underlying files for binary copies.
func (b *Bundle) FS() fs.FS { return b.fsys }
