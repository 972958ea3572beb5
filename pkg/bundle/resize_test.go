package bundle

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func testFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 128, 255})
		}
	}
	return img
}

func TestResizeStretchesToTarget(t *testing.T) {
	r := NewResizer(64, 128)

	out, err := r.Resize(testFrame(32, 32))
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	bounds := out.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 128 {
		t.Errorf("Expected 64x128, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestResizeIsIdempotent(t *testing.T) {
	r := NewResizer(64, 128)

	src := testFrame(64, 128)
	out, err := r.Resize(src)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	// A frame already at the target size passes through unchanged
	if out != image.Image(src) {
		t.Error("Expected already-sized frame to be returned as-is")
	}
}

func TestResizeRejectsZeroArea(t *testing.T) {
	r := NewResizer(64, 128)

	_, err := r.Resize(image.NewRGBA(image.Rect(0, 0, 0, 10)))
	if !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("Expected ErrInvalidFrame, got %v", err)
	}
}
