package bundle

import (
	"fmt"
	"path/filepath"
)

// Layer names are part of the on-disk contract with the consuming runtime.
const (
	LayerBackground = "background"
	LayerFloating   = "floating"
)

// Manifest file names at the bundle root, fixed and case-sensitive.
const (
	WallpaperPlistName    = "Wallpaper.plist"
	ProviderInfoPlistName = "providerInfo.plist"
	IndexXMLName          = "index.xml"
	AssetManifestName     = "assetManifest.caml"
	MainCAMLName          = "main.caml"
	RoleIdentifierName    = "com.apple.posterkit.role.identifier"
	DescriptorIDName      = "com.apple.posterkit.provider.descriptor.identifier"
	ContentsUserInfoName  = "com.apple.posterkit.provider.contents.userInfo"
)

// Layout maps each layer to its directory under the bundle root. The shape is
// a fixed contract, not configurable; the only checked degree of freedom is
// that no two layers resolve to the same path.
type Layout struct {
	root string
	dirs map[string]string // layer name -> relative dir
}

// NewLayout validates the layer set against the root. A collision between two
// layers is reported here, before any file is placed or archived.
func NewLayout(root string, layerDirs map[string]string) (*Layout, error) {
	seen := make(map[string]string, len(layerDirs))
	for name, dir := range layerDirs {
		clean := filepath.Clean(dir)
		if prev, ok := seen[clean]; ok {
			return nil, fmt.Errorf("%w: layers %q and %q both resolve to %q", ErrLayoutCollision, prev, name, clean)
		}
		seen[clean] = name
	}

	dirs := make(map[string]string, len(layerDirs))
	for name, dir := range layerDirs {
		dirs[name] = filepath.Clean(dir)
	}

	return &Layout{root: root, dirs: dirs}, nil
}

// DefaultLayout is the standard background + floating shape.
func DefaultLayout(root string) (*Layout, error) {
	return NewLayout(root, map[string]string{
		LayerBackground: LayerBackground,
		LayerFloating:   LayerFloating,
	})
}

func (l *Layout) Root() string {
	return l.root
}

// Layers returns the layer names in a stable order: background first.
func (l *Layout) Layers() []string {
	names := make([]string, 0, len(l.dirs))
	if _, ok := l.dirs[LayerBackground]; ok {
		names = append(names, LayerBackground)
	}
	for name := range l.dirs {
		if name != LayerBackground {
			names = append(names, name)
		}
	}
	return names
}

// LayerDir returns the absolute directory for a layer.
func (l *Layout) LayerDir(layer string) string {
	return filepath.Join(l.root, l.dirs[layer])
}

// AssetsDir returns the absolute assets directory for a layer.
func (l *Layout) AssetsDir(layer string) string {
	return filepath.Join(l.LayerDir(layer), "assets")
}

// CAMLPath returns the absolute main.caml path for a layer.
func (l *Layout) CAMLPath(layer string) string {
	return filepath.Join(l.LayerDir(layer), MainCAMLName)
}

// RootFile returns the absolute path of a root-level manifest file.
func (l *Layout) RootFile(name string) string {
	return filepath.Join(l.root, name)
}

// AssetPath returns a layer asset path relative to the bundle root, as
// referenced by the asset manifest.
func (l *Layout) AssetPath(layer, asset string) string {
	return filepath.ToSlash(filepath.Join(l.dirs[layer], "assets", asset))
}
