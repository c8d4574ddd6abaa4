package view

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileRenderer renders templates from the local filesystem
type FileRenderer struct {
	root string
}

// NewFileRenderer creates a FileRenderer. Relative paths are resolved against root;
// an empty root uses the working directory.
func NewFileRenderer(root string) *FileRenderer {
	return &FileRenderer{root: root}
}

// Render reads the template at path and substitutes data into it
func (r *FileRenderer) Render(path string, data map[string]any) (string, error) {
	full := path
	if r.root != "" && !filepath.IsAbs(path) {
		full = filepath.Join(r.root, path)
	}

	info, err := os.Stat(full)
	if err != nil {
		return "", notFound(path, err)
	}
	if info.IsDir() {
		return "", notFound(path, fs.ErrInvalid)
	}

	content, err := os.ReadFile(full)
	if err != nil {
		return "", notFound(path, err)
	}

	return Substitute(string(content), data), nil
}

// FSRenderer renders templates from an fs.FS, such as an embed.FS
type FSRenderer struct {
	fsys fs.FS
}

// NewFSRenderer creates an FSRenderer
func NewFSRenderer(fsys fs.FS) *FSRenderer {
	return &FSRenderer{fsys: fsys}
}

// Render reads the template at path and substitutes data into it
func (r *FSRenderer) Render(path string, data map[string]any) (string, error) {
	content, err := fs.ReadFile(r.fsys, path)
	if err != nil {
		return "", notFound(path, err)
	}
	return Substitute(string(content), data), nil
}
