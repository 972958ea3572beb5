package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/posterforge/tendies/pkg/bundle"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.tendies]",
	Short: "Verify a .tendies archive",
	Long:  "Check that the archive carries the fixed bundle layout and that every asset listed in its manifest is present",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report, err := bundle.Inspect(args[0])
		cobra.CheckErr(err)

		fmt.Printf("📦 %s\n", args[0])
		fmt.Printf("  entries: %d\n", report.Entries)
		fmt.Printf("  layers:  %s\n", strings.Join(report.Layers, ", "))
		fmt.Printf("  assets:  %d listed in manifest\n", report.Assets)

		if len(report.Missing) > 0 {
			for _, path := range report.Missing {
				fmt.Printf("  ❌ missing: %s\n", path)
			}
			cobra.CheckErr(fmt.Errorf("%d asset(s) listed in the manifest are absent from the archive", len(report.Missing)))
		}

		fmt.Println("✅ Archive is self-consistent")
	},
}
