package bundle

import (
	"archive/zip"
	"fmt"
	"io"

	"howett.net/plist"
)

// Report summarizes a verified archive.
type Report struct {
	Entries int
	Assets  int
	Missing []string
	Layers  []string
}

// Inspect opens a .tendies archive and checks that the fixed layout is intact
// and that every asset path listed in assetManifest.caml exists among the
// archive entries. Missing assets are reported, not fatal; a missing manifest
// is.
func Inspect(archivePath string) (*Report, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer r.Close()

	entries := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		if !f.FileInfo().IsDir() {
			entries[f.Name] = f
		}
	}

	for _, required := range []string{WallpaperPlistName, ProviderInfoPlistName, IndexXMLName, AssetManifestName} {
		if _, ok := entries[required]; !ok {
			return nil, fmt.Errorf("archive is missing %s", required)
		}
	}

	report := &Report{Entries: len(entries)}
	for _, layer := range []string{LayerBackground, LayerFloating} {
		if _, ok := entries[layer+"/"+MainCAMLName]; ok {
			report.Layers = append(report.Layers, layer)
		}
	}

	manifest, err := readAssetManifest(entries[AssetManifestName])
	if err != nil {
		return nil, err
	}

	report.Assets = len(manifest.Assets)
	for _, path := range manifest.Assets {
		if _, ok := entries[path]; !ok {
			report.Missing = append(report.Missing, path)
		}
	}
	return report, nil
}

func readAssetManifest(f *zip.File) (*assetManifest, error) {
	src, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open asset manifest: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset manifest: %w", err)
	}

	var manifest assetManifest
	if _, err := plist.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse asset manifest: %w", err)
	}
	return &manifest, nil
}
