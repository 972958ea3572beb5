package bundle

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workdir is the scoped temporary directory a bundle is assembled in. It is
// acquired once at pipeline start, passed explicitly through every stage, and
// removed on every exit path, success or failure.
type Workdir struct {
	path string
}

func NewWorkdir() (*Workdir, error) {
	path, err := os.MkdirTemp("", "tendies-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create working directory: %w", err)
	}
	return &Workdir{path: path}, nil
}

// Root returns the bundle root inside the working directory, creating it on
// first use.
func (w *Workdir) Root() (string, error) {
	root := filepath.Join(w.path, "bundle")
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("failed to create bundle root: %w", err)
	}
	return root, nil
}

// Path returns the working directory itself.
func (w *Workdir) Path() string {
	return w.path
}

// Close deletes the working directory and everything in it.
func (w *Workdir) Close() error {
	return os.RemoveAll(w.path)
}
