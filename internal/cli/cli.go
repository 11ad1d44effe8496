// Package cli provides the command-line interface for umark.
package cli

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/umami-mobile/umark/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "umark",
	Short: "Generate the Umami U-mark icon assets",
	Long: `Generate the Umami U-mark icon assets.

Every asset (app icon, splash icon, favicon, Android adaptive-icon layers)
is rendered from one parametric description of the mark, so all platform
sizes stay visually consistent.

Run without arguments to write the full set into assets/images.`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}
