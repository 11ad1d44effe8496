// Package preview composes a labeled contact sheet of the generated assets
// so the whole set can be reviewed at a glance.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/umami-mobile/umark/internal/batch"
	"github.com/umami-mobile/umark/internal/logo"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	columns  = 3
	tileSize = 256
	tilePad  = 16
	labelH   = 24
)

// Slightly darker than the logo background so transparent layers read.
var sheetBackground = color.NRGBA{R: 214, G: 217, B: 219, A: 255}

// Sheet renders every asset into a fixed grid with filename labels.
// Tiles are downscaled to a common size; the source sizes differ per asset.
func Sheet(assets []batch.Asset) *image.NRGBA {
	rows := (len(assets) + columns - 1) / columns
	if rows == 0 {
		rows = 1
	}
	cellW := tileSize + 2*tilePad
	cellH := tileSize + labelH + 2*tilePad

	img := image.NewNRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	for i, asset := range assets {
		cell := image.Rect(
			(i%columns)*cellW, (i/columns)*cellH,
			(i%columns+1)*cellW, (i/columns+1)*cellH,
		)
		tile := inset(cell, tilePad)
		area, label := splitHorizontal(tile, tile.Dy()-labelH)

		rendered := asset.Render()
		xdraw.CatmullRom.Scale(img, centerSquare(area), rendered, rendered.Bounds(), xdraw.Over, nil)
		drawLabelCentered(img, asset.Name, label)
	}
	return img
}

// drawLabelCentered draws text centered in rect with the bitmap face.
func drawLabelCentered(img *image.NRGBA, text string, rect image.Rectangle) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(logo.Primary),
		Face: face,
	}
	textWidth := drawer.MeasureString(text).Ceil()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	baseline := rect.Min.Y + (rect.Dy()+face.Metrics().Ascent.Ceil())/2
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}
