package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/umami-mobile/umark/internal/batch"
)

var (
	outDir  string
	withICO bool
	debug   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render and write all icon assets",
	Long: `Render and write all icon assets.

Writes the fixed set of PNG outputs (and optionally a multi-size
favicon.ico) into the output directory, creating it if absent. Existing
files are overwritten.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&outDir, "out", batch.DefaultDir, "output directory")
	generateCmd.Flags().BoolVar(&withICO, "ico", false, "also write a multi-size favicon.ico")
	generateCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging to ./umark-debug.log")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	writer := batch.NewWriter(outDir)

	if debug {
		f, err := os.OpenFile("./umark-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		} else {
			defer f.Close()
			writer.Logger = batch.NewFileLogger(f)
			writer.Logger.Infof("cli", "debug logging enabled")
		}
	}

	written, err := writer.GenerateAll()
	for _, out := range written {
		fmt.Printf("wrote %s (%dx%d)\n", out.Path, out.Width, out.Height)
	}
	if err != nil {
		return fmt.Errorf("generate assets: %w", err)
	}

	if withICO {
		out, err := writer.GenerateICO()
		if err != nil {
			return fmt.Errorf("generate favicon.ico: %w", err)
		}
		fmt.Printf("wrote %s (%dx%d)\n", out.Path, out.Width, out.Height)
	}
	return nil
}
