package bundle

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultLayoutPaths(t *testing.T) {
	root := t.TempDir()

	l, err := DefaultLayout(root)
	if err != nil {
		t.Fatalf("DefaultLayout failed: %v", err)
	}

	if got := l.LayerDir(LayerBackground); got != filepath.Join(root, "background") {
		t.Errorf("Unexpected background dir: %s", got)
	}
	if got := l.AssetsDir(LayerFloating); got != filepath.Join(root, "floating", "assets") {
		t.Errorf("Unexpected floating assets dir: %s", got)
	}
	if got := l.CAMLPath(LayerBackground); got != filepath.Join(root, "background", "main.caml") {
		t.Errorf("Unexpected caml path: %s", got)
	}
	if got := l.AssetPath(LayerBackground, "00000.jpg"); got != "background/assets/00000.jpg" {
		t.Errorf("Unexpected asset path: %s", got)
	}
}

func TestLayoutOrdersBackgroundFirst(t *testing.T) {
	l, err := DefaultLayout(t.TempDir())
	if err != nil {
		t.Fatalf("DefaultLayout failed: %v", err)
	}

	layers := l.Layers()
	if len(layers) != 2 || layers[0] != LayerBackground || layers[1] != LayerFloating {
		t.Errorf("Unexpected layer order: %v", layers)
	}
}

func TestLayoutRejectsCollision(t *testing.T) {
	_, err := NewLayout(t.TempDir(), map[string]string{
		LayerBackground: "assets",
		LayerFloating:   "assets",
	})
	if !errors.Is(err, ErrLayoutCollision) {
		t.Errorf("Expected ErrLayoutCollision, got %v", err)
	}
}

func TestLayoutNormalizesBeforeCollisionCheck(t *testing.T) {
	_, err := NewLayout(t.TempDir(), map[string]string{
		LayerBackground: "layers/one",
		LayerFloating:   "layers//one/",
	})
	if !errors.Is(err, ErrLayoutCollision) {
		t.Errorf("Expected ErrLayoutCollision for equivalent paths, got %v", err)
	}
}
