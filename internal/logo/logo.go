// Package logo renders the Umami U mark: a bold U with wavy cutouts on a
// soft gray backdrop. All offsets derive from the requested canvas size so
// the proportions stay consistent across platforms.
package logo

import (
	"image"
	"image/color"
	"image/draw"
)

// Options control a single render.
type Options struct {
	Primary           color.NRGBA
	Background        color.NRGBA
	IncludeBackground bool
}

// DefaultOptions returns the reference palette with an opaque background.
func DefaultOptions() Options {
	return Options{Primary: Primary, Background: Background, IncludeBackground: true}
}

// Build renders the U mark onto a fresh size x size canvas. It is a pure
// function: identical arguments produce pixel-identical canvases. Sizes
// below ~20px are accepted but produce visually degenerate marks.
func Build(size int, opts Options) *image.NRGBA {
	g := newGeometry(size)

	// Outer U minus the padded inner outline leaves the stroke of the U.
	mark := g.outer().mask(size)
	subtractMask(mark, g.inner().mask(size))

	// Waves clipped to the stroke, then carved out of it.
	waves := waveMask(size, g)
	multiplyMask(waves, mark)
	subtractMask(mark, waves)

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if opts.IncludeBackground {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	draw.DrawMask(img, img.Bounds(), image.NewUniform(opts.Primary), image.Point{}, mark, image.Point{}, draw.Over)
	return img
}

// SolidBackground returns a flat fill, used for the Android adaptive-icon
// background layer.
func SolidBackground(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
