package bundle

import (
	"fmt"
	"os"

	"howett.net/plist"
)

// Keyframe pairs one asset file name with the absolute time offset (seconds)
// at which it becomes visible.
type Keyframe struct {
	Asset string  `plist:"asset"`
	Time  float64 `plist:"time"`
}

// Descriptor is the per-layer keyframe animation: an explicit (asset, time)
// pair for every frame. Consumers with minimal CAML parsers can render it
// without understanding implicit frame-rate playback.
type Descriptor struct {
	Keyframes []Keyframe
	Duration  float64
	FPS       float64
}

// BuildDescriptor derives the keyframe animation from the realized asset list.
// Keyframe i sits at i/fps, timestamps strictly increase from 0, and the total
// duration is len(assets)/fps.
func BuildDescriptor(assets []string, fps float64) (*Descriptor, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("%w: %f fps", ErrInvalidFrameRate, fps)
	}
	if len(assets) == 0 {
		return nil, fmt.Errorf("%w: an animation with zero keyframes is not a valid descriptor", ErrEmptySequence)
	}

	frameDuration := 1.0 / fps
	keyframes := make([]Keyframe, len(assets))
	for i, name := range assets {
		keyframes[i] = Keyframe{
			Asset: "assets/" + name,
			Time:  float64(i) * frameDuration,
		}
	}

	return &Descriptor{
		Keyframes: keyframes,
		Duration:  float64(len(assets)) * frameDuration,
		FPS:       fps,
	}, nil
}

type camlContents struct {
	Type          string     `plist:"type"`
	ImageFormat   string     `plist:"imageFormat"`
	FrameDuration float64    `plist:"frameDuration"`
	Duration      float64    `plist:"duration"`
	Loop          bool       `plist:"loop"`
	Keyframes     []Keyframe `plist:"keyframes"`
}

type camlLayer struct {
	Name     string        `plist:"name"`
	Type     string        `plist:"type"`
	Bounds   string        `plist:"bounds"`
	Position string        `plist:"position"`
	Contents *camlContents `plist:"contents,omitempty"`
}

type camlView struct {
	BackgroundColor     string      `plist:"backgroundColor"`
	DrawsAsynchronously bool        `plist:"drawsAsynchronously"`
	Sublayers           []camlLayer `plist:"sublayers"`
}

type camlDocument struct {
	View camlView `plist:"view"`
}

// WriteCAML serializes the descriptor as a layer tree plist (main.caml). The
// single content layer fills the document bounds and loops forever.
func (d *Descriptor) WriteCAML(path string, width, height int) error {
	doc := camlDocument{
		View: camlView{
			BackgroundColor: "0 0 0 0",
			Sublayers: []camlLayer{
				{
					Name:     "ContentLayer",
					Type:     "CALayer",
					Bounds:   fmt.Sprintf("{{0, 0}, {%d, %d}}", width, height),
					Position: "{{0, 0}}",
					Contents: &camlContents{
						Type:          "ImageKeyframeSequence",
						ImageFormat:   "jpg",
						FrameDuration: 1.0 / d.FPS,
						Duration:      d.Duration,
						Loop:          true,
						Keyframes:     d.Keyframes,
					},
				},
			},
		},
	}
	return writeCAMLDocument(path, doc)
}

// WriteEmptyCAML emits a layer tree with no sublayers, used for a floating
// layer that carries no content of its own.
func WriteEmptyCAML(path string) error {
	return writeCAMLDocument(path, camlDocument{
		View: camlView{
			BackgroundColor: "0 0 0 0",
			Sublayers:       []camlLayer{},
		},
	})
}

func writeCAMLDocument(path string, doc camlDocument) error {
	data, err := plist.MarshalIndent(doc, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal caml: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write caml: %w", err)
	}
	return nil
}
