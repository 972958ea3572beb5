package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/posterforge/tendies/pkg/bundle"
	"github.com/posterforge/tendies/pkg/config"
	"github.com/posterforge/tendies/pkg/data"
	"github.com/posterforge/tendies/pkg/sources"
)

// BuildProgress reports pipeline progress for one layer
type BuildProgress struct {
	Layer  string
	Stage  string // "decoding", "writing", "manifests", "archiving", "complete", "error"
	Frames int
	Error  error
}

// Builder runs the bundle synthesis pipeline: frames in, .tendies out. Each
// stage fully consumes its input before the next starts; the two layers are
// independent and run concurrently, the assembler waits for both.
type Builder struct {
	background   sources.Source
	floating     sources.Source
	repo         *data.Repository
	cfg          *config.Config
	log          zerolog.Logger
	progressChan chan BuildProgress
}

func NewBuilder(background sources.Source, cfg *config.Config, log zerolog.Logger) *Builder {
	return &Builder{
		background:   background,
		cfg:          cfg,
		log:          log,
		progressChan: make(chan BuildProgress, 100),
	}
}

// WithFloating supplies a frame source for the floating layer. Without one the
// layer is emitted empty (transparent).
func (b *Builder) WithFloating(src sources.Source) *Builder {
	b.floating = src
	return b
}

// WithRepository records finished builds in the wallpaper library.
func (b *Builder) WithRepository(repo *data.Repository) *Builder {
	b.repo = repo
	return b
}

// ProgressChannel returns the channel for receiving build progress updates
func (b *Builder) ProgressChannel() <-chan BuildProgress {
	return b.progressChan
}

type layerResult struct {
	assets   []string
	duration float64
}

// Build assembles and archives one bundle, returning the library record. The
// working directory is removed on every exit path.
func (b *Builder) Build(ctx context.Context, params data.BuildParams, outputDir string) (*data.Wallpaper, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid build parameters: %w", err)
	}

	workdir, err := bundle.NewWorkdir()
	if err != nil {
		return nil, err
	}
	defer workdir.Close()

	root, err := workdir.Root()
	if err != nil {
		return nil, err
	}

	layout, err := bundle.DefaultLayout(root)
	if err != nil {
		return nil, err
	}

	b.log.Info().
		Str("name", params.Name).
		Int("width", params.Width).
		Int("height", params.Height).
		Int("scale", params.ScaleFactor).
		Msg("starting bundle build")

	var backgroundRes, floatingRes *layerResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := b.buildLayer(gctx, b.background, layout, bundle.LayerBackground, params)
		if err != nil {
			return err
		}
		backgroundRes = res
		return nil
	})
	g.Go(func() error {
		res, err := b.buildFloating(gctx, layout, params)
		if err != nil {
			return err
		}
		floatingRes = res
		return nil
	})

	if err := g.Wait(); err != nil {
		b.sendProgress(BuildProgress{Stage: "error", Error: err})
		return nil, err
	}

	b.sendProgress(BuildProgress{Stage: "manifests"})
	layerAssets := map[string][]string{
		bundle.LayerBackground: backgroundRes.assets,
		bundle.LayerFloating:   floatingRes.assets,
	}
	manifests := bundle.NewManifests(layout, params, b.cfg)
	if err := manifests.Write(layerAssets, backgroundRes.duration); err != nil {
		b.sendProgress(BuildProgress{Stage: "error", Error: err})
		return nil, err
	}

	b.sendProgress(BuildProgress{Stage: "archiving"})
	outPath := filepath.Join(outputDir, params.Name+".tendies")
	if err := bundle.Archive(root, outPath); err != nil {
		b.sendProgress(BuildProgress{Stage: "error", Error: err})
		return nil, err
	}

	wallpaper := &data.Wallpaper{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Identifier:  params.Identifier,
		Width:       params.Width,
		Height:      params.Height,
		ScaleFactor: params.ScaleFactor,
		FrameCount:  len(backgroundRes.assets),
		Duration:    backgroundRes.duration,
		OutputPath:  outPath,
		CreatedAt:   time.Now(),
	}

	if b.repo != nil {
		if err := b.repo.SaveWallpaper(wallpaper); err != nil {
			b.log.Warn().Err(err).Msg("failed to record wallpaper in library")
		}
	}

	b.sendProgress(BuildProgress{Stage: "complete", Frames: wallpaper.FrameCount})
	b.log.Info().Str("output", outPath).Int("frames", wallpaper.FrameCount).Msg("bundle complete")

	return wallpaper, nil
}

// buildLayer resizes and writes every frame of one layer, then derives its
// animation descriptor from the realized asset list.
func (b *Builder) buildLayer(ctx context.Context, src sources.Source, layout *bundle.Layout, layer string, params data.BuildParams) (*layerResult, error) {
	if src.FPS() <= 0 {
		return nil, fmt.Errorf("%w: %f fps", bundle.ErrInvalidFrameRate, src.FPS())
	}

	resizer := bundle.NewResizer(params.Width, params.Height)
	writer, err := bundle.NewAssetWriter(layout.AssetsDir(layer))
	if err != nil {
		return nil, err
	}

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", layer, err)
		}

		resized, err := resizer.Resize(img)
		if err != nil {
			return nil, fmt.Errorf("layer %s frame %d: %w", layer, i, err)
		}

		if _, err := writer.Write(i, resized); err != nil {
			return nil, fmt.Errorf("layer %s: %w", layer, err)
		}

		b.sendProgress(BuildProgress{Layer: layer, Stage: "writing", Frames: i + 1})
	}

	desc, err := bundle.BuildDescriptor(writer.Names(), src.FPS())
	if err != nil {
		return nil, fmt.Errorf("layer %s: %w", layer, err)
	}
	if err := desc.WriteCAML(layout.CAMLPath(layer), params.Width, params.Height); err != nil {
		return nil, fmt.Errorf("layer %s: %w", layer, err)
	}

	b.log.Debug().Str("layer", layer).Int("frames", len(writer.Names())).Msg("layer assembled")

	return &layerResult{assets: writer.Names(), duration: desc.Duration}, nil
}

// buildFloating builds the floating layer from its source when present, or
// emits the empty transparent layer.
func (b *Builder) buildFloating(ctx context.Context, layout *bundle.Layout, params data.BuildParams) (*layerResult, error) {
	if b.floating != nil {
		return b.buildLayer(ctx, b.floating, layout, bundle.LayerFloating, params)
	}

	if _, err := bundle.NewAssetWriter(layout.AssetsDir(bundle.LayerFloating)); err != nil {
		return nil, err
	}
	if err := bundle.WriteEmptyCAML(layout.CAMLPath(bundle.LayerFloating)); err != nil {
		return nil, err
	}
	return &layerResult{}, nil
}

func (b *Builder) sendProgress(progress BuildProgress) {
	select {
	case b.progressChan <- progress:
	default:
		// Drop if no listener is keeping up
	}
}
