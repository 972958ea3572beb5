package bundle

import "errors"

// Sentinel errors for pipeline failures. Every stage fails fast: a bundle
// whose manifests disagree with the files on disk is worse than no bundle.
var (
	ErrInvalidFrame     = errors.New("invalid frame")
	ErrInvalidFrameRate = errors.New("invalid frame rate")
	ErrEmptySequence    = errors.New("empty frame sequence")
	ErrMissingAsset     = errors.New("missing asset")
	ErrLayoutCollision  = errors.New("layout collision")
	ErrArchiveWrite     = errors.New("archive write failed")
)
