package bundle

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"howett.net/plist"

	"github.com/posterforge/tendies/pkg/config"
	"github.com/posterforge/tendies/pkg/data"
)

// Manifests emits every root-level manifest of the bundle. All content is
// derived from the realized on-disk artifacts: asset lists come from the
// writers, and every referenced path is checked against disk before anything
// is written. Manifests and files can therefore never drift apart.
type Manifests struct {
	layout *Layout
	params data.BuildParams
	cfg    *config.Config
	now    func() time.Time
}

func NewManifests(layout *Layout, params data.BuildParams, cfg *config.Config) *Manifests {
	return &Manifests{
		layout: layout,
		params: params,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Write produces Wallpaper.plist, providerInfo.plist, index.xml,
// assetManifest.caml and the PosterKit sidecar files. layerAssets maps each
// layer to the asset names its writer reported; duration is the background
// animation's total length in seconds.
func (m *Manifests) Write(layerAssets map[string][]string, duration float64) error {
	assetPaths, err := m.verifyAssets(layerAssets)
	if err != nil {
		return err
	}

	if err := m.writeWallpaperPlist(); err != nil {
		return err
	}
	if err := m.writeProviderInfo(); err != nil {
		return err
	}
	if err := m.writeIndexXML(duration); err != nil {
		return err
	}
	if err := m.writeAssetManifest(assetPaths); err != nil {
		return err
	}
	return m.writeSidecars()
}

// verifyAssets resolves each reported asset name to its root-relative path and
// confirms it exists on disk.
func (m *Manifests) verifyAssets(layerAssets map[string][]string) ([]string, error) {
	var paths []string
	for _, layer := range m.layout.Layers() {
		for _, name := range layerAssets[layer] {
			rel := m.layout.AssetPath(layer, name)
			abs := m.layout.RootFile(rel)
			if _, err := os.Stat(abs); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrMissingAsset, rel)
			}
			paths = append(paths, rel)
		}
	}
	return paths, nil
}

type wallpaperVariant struct {
	BackgroundAnimationFileName string `plist:"backgroundAnimationFileName"`
	FloatingAnimationFileName   string `plist:"floatingAnimationFileNameKey"`
	Identifier                  int    `plist:"identifier"`
	Name                        string `plist:"name"`
	Type                        string `plist:"type"`
}

type wallpaperAssets struct {
	LockAndHome map[string]wallpaperVariant `plist:"lockAndHome"`
}

type wallpaperPlist struct {
	AppearanceAware    int               `plist:"appearanceAware"`
	Assets             wallpaperAssets   `plist:"assets"`
	ContentVersion     float64           `plist:"contentVersion"`
	Family             string            `plist:"family"`
	Identifier         int               `plist:"identifier"`
	LogicalScreenClass string            `plist:"logicalScreenClass"`
	Name               string            `plist:"name"`
	ProminentColor     map[string]string `plist:"preferredProminentColor"`
	Version            int               `plist:"version"`
}

func (m *Manifests) writeWallpaperPlist() error {
	appearanceAware := 0
	if m.cfg.AppearanceAware {
		appearanceAware = 1
	}

	doc := wallpaperPlist{
		AppearanceAware: appearanceAware,
		Assets: wallpaperAssets{
			LockAndHome: map[string]wallpaperVariant{
				"default": {
					BackgroundAnimationFileName: m.params.LayerFileName(LayerBackground, m.cfg.DeviceClass),
					FloatingAnimationFileName:   m.params.LayerFileName(LayerFloating, m.cfg.DeviceClass),
					Identifier:                  m.params.Identifier,
					Name:                        m.params.Name,
					Type:                        "LayeredAnimation",
				},
			},
		},
		ContentVersion:     m.cfg.ContentVersion,
		Family:             m.params.Name,
		Identifier:         m.params.Identifier,
		LogicalScreenClass: m.params.ResolutionClass(m.cfg.DeviceClass),
		Name:               m.params.Name,
		ProminentColor: map[string]string{
			"default": m.cfg.ProminentColor.Default,
			"dark":    m.cfg.ProminentColor.Dark,
		},
		Version: 1,
	}
	return m.writePlist(WallpaperPlistName, doc)
}

type providerInfoPlist struct {
	Identifier  int       `plist:"identifier"`
	LastUseDate time.Time `plist:"kConfigurationLastUseDateKey"`
}

func (m *Manifests) writeProviderInfo() error {
	return m.writePlist(ProviderInfoPlistName, providerInfoPlist{
		Identifier:  m.params.Identifier,
		LastUseDate: m.now(),
	})
}

type indexXML struct {
	AssetManifest         string  `plist:"assetManifest"`
	DocumentWidth         float64 `plist:"documentWidth"`
	DocumentHeight        float64 `plist:"documentHeight"`
	DocumentResizesToView bool    `plist:"documentResizesToView"`
	GeometryFlipped       bool    `plist:"geometryFlipped"`
	LoopStart             float64 `plist:"loopStart"`
	LoopEnd               float64 `plist:"loopEnd"`
	LoopingEnabled        bool    `plist:"loopingEnabled"`
	MultitouchEnabled     bool    `plist:"multitouchEnabled"`
}

func (m *Manifests) writeIndexXML(duration float64) error {
	return m.writePlist(IndexXMLName, indexXML{
		AssetManifest:         AssetManifestName,
		DocumentWidth:         float64(m.params.Width),
		DocumentHeight:        float64(m.params.Height),
		DocumentResizesToView: true,
		LoopStart:             0,
		LoopEnd:               duration,
		LoopingEnabled:        true,
	})
}

type assetManifest struct {
	Assets []string `plist:"assets"`
}

func (m *Manifests) writeAssetManifest(paths []string) error {
	if paths == nil {
		paths = []string{}
	}
	return m.writePlist(AssetManifestName, assetManifest{Assets: paths})
}

type contentsUserInfo struct {
	EnvironmentOverrides []byte `plist:"posterEnvironmentOverrides"`
	RepresentingFileName string `plist:"wallpaperRepresentingFileName"`
	RepresentingID       string `plist:"wallpaperRepresentingIdentifier"`
}

// writeSidecars emits the PosterKit role and descriptor identifier files plus
// the contents userInfo plist.
func (m *Manifests) writeSidecars() error {
	role := []byte(m.cfg.RoleIdentifier)
	if err := os.WriteFile(m.layout.RootFile(RoleIdentifierName), role, 0644); err != nil {
		return fmt.Errorf("failed to write role identifier: %w", err)
	}

	descriptorID := []byte(strings.ToUpper(uuid.NewString()))
	if err := os.WriteFile(m.layout.RootFile(DescriptorIDName), descriptorID, 0644); err != nil {
		return fmt.Errorf("failed to write descriptor identifier: %w", err)
	}

	return m.writePlist(ContentsUserInfoName, contentsUserInfo{
		EnvironmentOverrides: []byte("e30="), // base64 of an empty dict
		RepresentingFileName: m.params.WallpaperFolderName(m.cfg.DeviceClass),
		RepresentingID:       strconv.Itoa(m.params.Identifier),
	})
}

func (m *Manifests) writePlist(name string, doc any) error {
	raw, err := plist.MarshalIndent(doc, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(m.layout.RootFile(name), raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
