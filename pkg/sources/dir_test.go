package sources

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir, name string, shade uint8) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{shade, shade, shade, 255})
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", name, err)
	}
}

func TestDirSourceIteratesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "00001.png", 10)
	writeTestPNG(t, dir, "00000.png", 20)
	writeTestPNG(t, dir, "00002.png", 30)

	src, err := NewDirSource(dir, 24)
	if err != nil {
		t.Fatalf("NewDirSource failed: %v", err)
	}
	defer src.Close()

	if src.FPS() != 24 {
		t.Errorf("Expected FPS 24, got %f", src.FPS())
	}

	// Lexical order, not creation order
	expected := []uint8{20, 10, 30}
	for i, shade := range expected {
		img, err := src.Next()
		if err != nil {
			t.Fatalf("Next %d failed: %v", i, err)
		}
		r, _, _, _ := img.At(0, 0).RGBA()
		if uint8(r>>8) != shade {
			t.Errorf("Frame %d: expected shade %d, got %d", i, shade, uint8(r>>8))
		}
	}

	if _, err := src.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF after last frame, got %v", err)
	}
}

func TestDirSourceSkipsNonImages(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "00000.png", 10)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	src, err := NewDirSource(dir, 24)
	if err != nil {
		t.Fatalf("NewDirSource failed: %v", err)
	}
	defer src.Close()

	if _, err := src.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if _, err := src.Next(); err != io.EOF {
		t.Errorf("Expected only one frame, got %v", err)
	}
}

func TestDirSourceEmptyDirectory(t *testing.T) {
	src, err := NewDirSource(t.TempDir(), 24)
	if err != nil {
		t.Fatalf("NewDirSource failed: %v", err)
	}
	defer src.Close()

	// Zero frames surface as an immediate EOF; rejecting the empty sequence
	// is the descriptor builder's call
	if _, err := src.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}
