package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/posterforge/tendies/pkg/app"
	"github.com/posterforge/tendies/pkg/config"
	"github.com/posterforge/tendies/pkg/data"
	"github.com/posterforge/tendies/pkg/services"
	"github.com/posterforge/tendies/pkg/sources"
)

var buildCmd = &cobra.Command{
	Use:   "build [input.mp4]",
	Short: "Build a .tendies bundle from a video or frame directory",
	Long:  "Decode the input video, resize every frame to the target resolution and assemble the complete wallpaper package",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		scale, _ := cmd.Flags().GetInt("scale")
		identifier, _ := cmd.Flags().GetInt("identifier")
		outputDir, _ := cmd.Flags().GetString("output")
		floatingPath, _ := cmd.Flags().GetString("floating")
		framesDir, _ := cmd.Flags().GetString("frames-dir")
		framesFPS, _ := cmd.Flags().GetFloat64("fps")
		configPath, _ := cmd.Flags().GetString("config")
		showProgress, _ := cmd.Flags().GetBool("progress")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if len(args) == 0 && framesDir == "" {
			cobra.CheckErr(fmt.Errorf("either an input video or --frames-dir is required"))
		}

		ctx := context.Background()

		cfg := config.Default()
		if configPath != "" {
			var err error
			cfg, err = config.Load(configPath)
			cobra.CheckErr(err)
		}

		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

		// Background frame source
		var background sources.Source
		var err error
		if framesDir != "" {
			background, err = sources.NewDirSource(framesDir, framesFPS)
		} else {
			fmt.Printf("🎞  Decoding %s...\n", args[0])
			background, err = sources.NewVideoSource(ctx, args[0])
		}
		cobra.CheckErr(err)
		defer background.Close()

		if name == "" {
			if len(args) > 0 {
				base := filepath.Base(args[0])
				name = strings.TrimSuffix(base, filepath.Ext(base))
			} else {
				name = filepath.Base(framesDir)
			}
		}

		params := data.BuildParams{
			Name:        name,
			Width:       width,
			Height:      height,
			ScaleFactor: scale,
			Identifier:  identifier,
		}

		builder := services.NewBuilder(background, cfg, log)

		if floatingPath != "" {
			fmt.Printf("🎞  Decoding floating layer %s...\n", floatingPath)
			floating, err := sources.NewVideoSource(ctx, floatingPath)
			cobra.CheckErr(err)
			defer floating.Close()
			builder.WithFloating(floating)
		}

		repo, err := data.NewRepository()
		if err != nil {
			log.Warn().Err(err).Msg("wallpaper library unavailable")
		} else {
			defer repo.Close()
			builder.WithRepository(repo)
		}

		var wallpaper *data.Wallpaper
		if showProgress {
			wallpaper, err = app.NewBuildApp(builder, params, outputDir).Run(ctx)
		} else {
			go func() {
				for progress := range builder.ProgressChannel() {
					if progress.Layer != "" && progress.Frames%25 == 0 {
						fmt.Printf("  %s: %d frames\n", progress.Layer, progress.Frames)
					}
				}
			}()
			wallpaper, err = builder.Build(ctx, params, outputDir)
		}
		cobra.CheckErr(err)

		fmt.Printf("✅ Created %s (%d frames, %.2fs loop)\n", wallpaper.OutputPath, wallpaper.FrameCount, wallpaper.Duration)
	},
}

func init() {
	buildCmd.Flags().StringP("name", "n", "", "Wallpaper display name (default: input file name)")
	buildCmd.Flags().Int("width", 1290, "Target width in pixels")
	buildCmd.Flags().Int("height", 2796, "Target height in pixels")
	buildCmd.Flags().Int("scale", 3, "Scale factor (@Nx)")
	buildCmd.Flags().Int("identifier", 9136, "Numeric wallpaper identifier")
	buildCmd.Flags().StringP("output", "o", ".", "Output directory")
	buildCmd.Flags().String("floating", "", "Optional video for the floating layer")
	buildCmd.Flags().String("frames-dir", "", "Use a directory of pre-decoded frames instead of a video")
	buildCmd.Flags().Float64("fps", 30, "Frame rate for --frames-dir input")
	buildCmd.Flags().StringP("config", "c", "", "YAML manifest override file")
	buildCmd.Flags().Bool("progress", false, "Show a live progress view")
	buildCmd.Flags().BoolP("verbose", "v", false, "Verbose logging")
}
