package data

import "testing"

func validParams() BuildParams {
	return BuildParams{
		Name:        "Ocean",
		Width:       1290,
		Height:      2796,
		ScaleFactor: 3,
		Identifier:  9136,
	}
}

func TestValidateAcceptsGoodParams(t *testing.T) {
	if err := validParams().Validate(); err != nil {
		t.Errorf("Expected valid params, got %v", err)
	}
}

func TestValidateRejectsBadParams(t *testing.T) {
	cases := map[string]func(*BuildParams){
		"empty name":    func(p *BuildParams) { p.Name = "" },
		"zero width":    func(p *BuildParams) { p.Width = 0 },
		"zero height":   func(p *BuildParams) { p.Height = 0 },
		"zero scale":    func(p *BuildParams) { p.ScaleFactor = 0 },
		"negative size": func(p *BuildParams) { p.Width = -10 },
	}

	for name, mutate := range cases {
		params := validParams()
		mutate(&params)
		if err := params.Validate(); err == nil {
			t.Errorf("Expected %s to be rejected", name)
		}
	}
}

func TestResolutionClass(t *testing.T) {
	got := validParams().ResolutionClass("iphone")
	if got != "1290w-2796h@3x~iphone" {
		t.Errorf("Unexpected resolution class: %s", got)
	}
}

func TestDerivedNames(t *testing.T) {
	p := validParams()

	if got := p.WallpaperFolderName("iphone"); got != "Ocean-1290w-2796h@3x~iphone.wallpaper" {
		t.Errorf("Unexpected wallpaper folder name: %s", got)
	}
	if got := p.LayerFileName("background", "iphone"); got != "Ocean_Background-1290w-2796h@3x~iphone.ca" {
		t.Errorf("Unexpected background layer name: %s", got)
	}
	if got := p.LayerFileName("floating", "iphone"); got != "Ocean_Floating-1290w-2796h@3x~iphone.ca" {
		t.Errorf("Unexpected floating layer name: %s", got)
	}
}
