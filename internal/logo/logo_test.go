package logo

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCanvasSize(t *testing.T) {
	for _, size := range []int{32, 48, 333, 432, 512, 1024} {
		img := Build(size, DefaultOptions())
		require.Equal(t, size, img.Bounds().Dx(), "size %d", size)
		require.Equal(t, size, img.Bounds().Dy(), "size %d", size)
	}
}

func TestBuildCorners(t *testing.T) {
	const size = 256

	t.Run("with background", func(t *testing.T) {
		img := Build(size, DefaultOptions())
		for _, p := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
			assert.Equal(t, Background, img.NRGBAAt(p[0], p[1]), "corner %v", p)
		}
	})

	t.Run("transparent", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IncludeBackground = false
		img := Build(size, opts)
		for _, p := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
			assert.Equal(t, uint8(0), img.NRGBAAt(p[0], p[1]).A, "corner %v", p)
		}
	})
}

func TestBuildDeterministic(t *testing.T) {
	first := Build(512, DefaultOptions())
	second := Build(512, DefaultOptions())
	require.True(t, bytes.Equal(first.Pix, second.Pix), "identical inputs must produce pixel-identical canvases")
}

func TestBuildDrawsTheMark(t *testing.T) {
	img := Build(512, DefaultOptions())
	found := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == Primary.R && img.Pix[i+1] == Primary.G && img.Pix[i+2] == Primary.B {
			found++
		}
	}
	// The stroke covers a substantial share of a 512x512 canvas.
	assert.Greater(t, found, 512*512/20, "expected a visible mark")
}

func TestBuildTinySizesDoNotPanic(t *testing.T) {
	// Degenerate geometry is accepted, not an error.
	for size := 1; size <= 24; size++ {
		img := Build(size, DefaultOptions())
		require.Equal(t, size, img.Bounds().Dx(), "size %d", size)
	}
}

func TestMonochromeHasNoPrimaryPixels(t *testing.T) {
	img := Build(432, Options{
		Primary:           color.NRGBA{A: 255},
		IncludeBackground: false,
	})
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 0 {
			continue
		}
		require.NotEqual(t,
			[3]uint8{Primary.R, Primary.G, Primary.B},
			[3]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2]},
			"monochrome layer must not contain the default primary color")
		require.Equal(t, uint8(0), img.Pix[i], "foreground must be black")
		require.Equal(t, uint8(0), img.Pix[i+1])
		require.Equal(t, uint8(0), img.Pix[i+2])
	}
}

func TestSolidBackground(t *testing.T) {
	img := SolidBackground(512, Background)
	require.Equal(t, 512, img.Bounds().Dx())
	require.Equal(t, 512, img.Bounds().Dy())
	assert.Equal(t, Background, img.NRGBAAt(0, 0))
	assert.Equal(t, Background, img.NRGBAAt(511, 511))
	assert.Equal(t, Background, img.NRGBAAt(256, 256))
}
