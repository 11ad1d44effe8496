// Package batch renders the fixed table of icon assets and persists them.
package batch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/umami-mobile/umark/internal/logo"
)

// DefaultDir is the destination the generator writes into when no override
// is given, relative to the project root.
var DefaultDir = filepath.Join("assets", "images")

// Asset is one entry of the output table.
type Asset struct {
	Name   string
	Render func() *image.NRGBA
}

// Written reports one persisted file.
type Written struct {
	Path   string
	Width  int
	Height int
}

// Assets returns the output table. Every entry re-derives its geometry from
// its own size, so the emitted assets stay proportionally identical.
func Assets() []Asset {
	return []Asset{
		{"icon.png", func() *image.NRGBA { return logo.Build(1024, logo.DefaultOptions()) }},
		{"splash-icon.png", func() *image.NRGBA { return logo.Build(1024, logo.DefaultOptions()) }},
		{"favicon.png", func() *image.NRGBA { return logo.Build(48, logo.DefaultOptions()) }},
		{"android-icon-foreground.png", func() *image.NRGBA {
			opts := logo.DefaultOptions()
			opts.IncludeBackground = false
			return logo.Build(512, opts)
		}},
		{"android-icon-monochrome.png", func() *image.NRGBA {
			return logo.Build(432, logo.Options{Primary: color.NRGBA{A: 255}})
		}},
		{"android-icon-background.png", func() *image.NRGBA {
			return logo.SolidBackground(512, logo.Background)
		}},
	}
}

// Writer persists rendered assets under Dir, creating it if absent.
// Existing files are overwritten without confirmation.
type Writer struct {
	Dir    string
	Logger Logger
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{Dir: dir, Logger: NoopLogger{}}
}

// GenerateAll renders and writes every table entry sequentially. The first
// failure aborts the run; files already written stay on disk.
func (w *Writer) GenerateAll() ([]Written, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	written := make([]Written, 0, len(Assets()))
	for _, asset := range Assets() {
		img := asset.Render()
		destination := filepath.Join(w.Dir, asset.Name)
		if err := w.writePNG(destination, img); err != nil {
			return written, err
		}
		bounds := img.Bounds()
		written = append(written, Written{Path: destination, Width: bounds.Dx(), Height: bounds.Dy()})
		w.Logger.Infof("batch", "wrote %s (%dx%d)", destination, bounds.Dx(), bounds.Dy())
	}
	return written, nil
}

func (w *Writer) writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
