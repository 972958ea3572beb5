package sources

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// VideoSource decodes a video file into an ordered frame sequence using
// ffmpeg. Frames are extracted to a private temp directory as PNGs and
// streamed from there; Close removes the directory.
type VideoSource struct {
	dir *DirSource
	tmp string
}

// NewVideoSource probes the video's frame rate and extracts every frame.
func NewVideoSource(ctx context.Context, path string) (*VideoSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input video not found: %w", err)
	}
	for _, tool := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(tool); err != nil {
			return nil, fmt.Errorf("%s is required but not found in PATH", tool)
		}
	}

	fps, err := probeFPS(ctx, path)
	if err != nil {
		return nil, err
	}

	tmp, err := os.MkdirTemp("", "tendies-frames-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create frames directory: %w", err)
	}

	if err := extractFrames(ctx, path, tmp); err != nil {
		os.RemoveAll(tmp)
		return nil, err
	}

	dir, err := NewDirSource(tmp, fps)
	if err != nil {
		os.RemoveAll(tmp)
		return nil, err
	}

	return &VideoSource{dir: dir, tmp: tmp}, nil
}

func (s *VideoSource) FPS() float64 {
	return s.dir.FPS()
}

func (s *VideoSource) Next() (image.Image, error) {
	return s.dir.Next()
}

func (s *VideoSource) Close() error {
	return os.RemoveAll(s.tmp)
}

// probeFPS reads the video stream's frame rate via ffprobe. The rate comes
// back as a rational like "30000/1001".
func probeFPS(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseRational(strings.TrimSpace(out.String()))
}

func parseRational(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return strconv.ParseFloat(s, 64)
	}

	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("bad frame rate %q: %w", s, err)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, fmt.Errorf("bad frame rate %q", s)
	}
	return n / d, nil
}

func extractFrames(ctx context.Context, path, dir string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-v", "error",
		"-i", path,
		"-vsync", "0",
		filepath.Join(dir, "%05d.png"),
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg frame extraction failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
