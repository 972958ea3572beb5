package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/posterforge/tendies/pkg/data"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List previously built wallpapers",
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := data.NewRepository()
		cobra.CheckErr(err)
		defer repo.Close()

		wallpapers, err := repo.ListWallpapers()
		cobra.CheckErr(err)

		if len(wallpapers) == 0 {
			fmt.Println("📭 No wallpapers in your library yet. Run 'tendies build' first.")
			return
		}

		fmt.Printf("🖼  %d wallpaper(s) in library:\n\n", len(wallpapers))
		for _, w := range wallpapers {
			fmt.Printf("  %s  %dx%d@%dx  %d frames  %.2fs\n", w.Name, w.Width, w.Height, w.ScaleFactor, w.FrameCount, w.Duration)
			fmt.Printf("    %s (built %s)\n", w.OutputPath, w.CreatedAt.Format("2006-01-02 15:04"))
		}
	},
}
