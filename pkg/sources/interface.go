package sources

import "image"

// Source supplies an ordered, finite sequence of decoded frames plus the
// source frame rate. Next returns io.EOF after the last frame.
type Source interface {
	FPS() float64
	Next() (image.Image, error)
	Close() error
}
