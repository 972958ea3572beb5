package bundle

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
)

const assetQuality = 90

// AssetWriter persists resized frames as numbered JPEG files inside a layer's
// assets directory. File names are zero-padded so lexical order equals frame
// order, and the returned name list is exactly what the animation descriptor
// must reference.
type AssetWriter struct {
	dir   string
	names []string
}

// NewAssetWriter creates the assets directory if it does not exist.
func NewAssetWriter(dir string) (*AssetWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create assets directory: %w", err)
	}
	return &AssetWriter{dir: dir}, nil
}

// Write stores one frame as <index zero-padded to 5>.jpg and records its name.
// Frames must arrive in increasing index order; any write failure is fatal to
// the whole run, partial bundles are not a valid deliverable.
func (w *AssetWriter) Write(index int, img image.Image) (string, error) {
	name := fmt.Sprintf("%05d.jpg", index)

	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create asset %s: %w", name, err)
	}

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: assetQuality}); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode asset %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to flush asset %s: %w", name, err)
	}

	w.names = append(w.names, name)
	return name, nil
}

// Names returns the ordered list of written asset file names.
func (w *AssetWriter) Names() []string {
	return w.names
}

// Dir returns the assets directory path.
func (w *AssetWriter) Dir() string {
	return w.dir
}
