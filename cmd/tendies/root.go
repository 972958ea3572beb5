package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tendies",
	Short: "Build iOS animated-wallpaper bundles from video",
	Long:  "Convert a video into a .tendies animated-wallpaper package: layered assets, keyframe animation descriptors, property-list manifests and a final archive",
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
