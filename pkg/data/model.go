package data

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BuildParams are the user-supplied knobs of one bundle build.
type BuildParams struct {
	Name        string
	Width       int
	Height      int
	ScaleFactor int
	Identifier  int
}

// Validate checks the parameters before any stage runs.
func (p BuildParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Width, validation.Required, validation.Min(1)),
		validation.Field(&p.Height, validation.Required, validation.Min(1)),
		validation.Field(&p.ScaleFactor, validation.Required, validation.Min(1)),
		validation.Field(&p.Identifier, validation.Min(1)),
	)
}

// ResolutionClass is the logical screen class string recorded throughout the
// manifests, e.g. "1290w-2796h@3x~iphone".
func (p BuildParams) ResolutionClass(deviceClass string) string {
	return fmt.Sprintf("%dw-%dh@%dx~%s", p.Width, p.Height, p.ScaleFactor, deviceClass)
}

// WallpaperFolderName is the .wallpaper bundle name recorded in the manifests.
func (p BuildParams) WallpaperFolderName(deviceClass string) string {
	return fmt.Sprintf("%s-%s.wallpaper", p.Name, p.ResolutionClass(deviceClass))
}

// LayerFileName is the per-layer .ca bundle name recorded in Wallpaper.plist,
// e.g. "Ocean_Background-1290w-2796h@3x~iphone.ca".
func (p BuildParams) LayerFileName(layer, deviceClass string) string {
	title := strings.ToUpper(layer[:1]) + layer[1:]
	return fmt.Sprintf("%s_%s-%s.ca", p.Name, title, p.ResolutionClass(deviceClass))
}

// Wallpaper is one finished build recorded in the library.
type Wallpaper struct {
	ID          string
	Name        string
	Identifier  int
	Width       int
	Height      int
	ScaleFactor int
	FrameCount  int
	Duration    float64
	OutputPath  string
	CreatedAt   time.Time
}
