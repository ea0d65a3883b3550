package app

import (
	"os"
	"path/filepath"
)

// Paths holds the resolved locations of the files shipped alongside the binary.
type Paths struct {
	Root     string // install dir (directory of the executable)
	Frontend string // <root>/frontend/
	Page     string // <root>/frontend/index.html
}

// NewPaths constructs all resolved paths from an install root.
func NewPaths(root string) *Paths {
	frontend := filepath.Join(root, "frontend")
	return &Paths{
		Root:     root,
		Frontend: frontend,
		Page:     filepath.Join(frontend, "index.html"),
	}
}

// InstallRoot returns the directory holding the running executable, with
// symlinks resolved so a binary linked into /usr/local/bin still finds its
// frontend/ dir. Falls back to the working directory.
func InstallRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// PageExists reports whether a regular file is present at path. Used by the
// config command only; the server never checks.
func PageExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
