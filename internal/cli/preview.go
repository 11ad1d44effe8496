package cli

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"github.com/umami-mobile/umark/internal/batch"
	"github.com/umami-mobile/umark/internal/preview"
)

var previewOut string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a labeled contact sheet of all assets",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewOut, "out", "preview.png", "contact sheet path")
}

func runPreview(cmd *cobra.Command, args []string) error {
	sheet := preview.Sheet(batch.Assets())

	f, err := os.Create(previewOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", previewOut, err)
	}
	if err := png.Encode(f, sheet); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", previewOut, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", previewOut, err)
	}

	bounds := sheet.Bounds()
	fmt.Printf("wrote %s (%dx%d)\n", previewOut, bounds.Dx(), bounds.Dy())
	return nil
}
