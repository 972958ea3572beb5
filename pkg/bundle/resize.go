package bundle

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Resizer scales frames to the target pixel resolution. The scale factor
// (@2x/@3x) only affects naming and manifest metadata; the pixel grid is
// always the literal target resolution.
type Resizer struct {
	width  int
	height int
}

func NewResizer(width, height int) *Resizer {
	return &Resizer{width: width, height: height}
}

// Resize stretches a frame to exactly width x height. Frames that are already
// the target size pass through untouched, so resizing is idempotent. A frame
// with zero area aborts the build: skipping it would desynchronize descriptor
// timestamps from the asset files.
func (r *Resizer) Resize(img image.Image) (image.Image, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: source frame has zero area (%dx%d)", ErrInvalidFrame, bounds.Dx(), bounds.Dy())
	}

	if bounds.Dx() == r.width && bounds.Dy() == r.height {
		return img, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	// CatmullRom for high-quality scaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)

	return dst, nil
}
