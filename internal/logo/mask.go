package logo

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Number of sample points per wave polyline.
const waveSamples = 18

// mask rasterizes the outline into an alpha stencil.
func (o outline) mask(size int) *image.Alpha {
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)

	fillBox(dc, o.leftX1, o.top, o.leftX2, o.barBottom)
	fillBox(dc, o.rightX1, o.top, o.rightX2, o.barBottom)

	// Rounded base: the upper half of the ellipse spanning the full outline
	// width, closed across its diameter.
	cx := float64(o.leftX1+o.rightX2) / 2
	cy := float64(o.barBottom + o.radius)
	rx := float64(o.rightX2-o.leftX1) / 2
	ry := float64(o.radius)
	if rx > 0 && ry > 0 {
		dc.NewSubPath()
		dc.DrawEllipticalArc(cx, cy, rx, ry, math.Pi, 2*math.Pi)
		dc.ClosePath()
		dc.Fill()
	}
	return dc.AsMask()
}

// fillBox fills a box given inclusive corners. Boxes collapsed by the inner
// inset at tiny sizes are skipped rather than drawn inverted.
func fillBox(dc *gg.Context, x1, y1, x2, y2 int) {
	if x2 < x1 || y2 < y1 {
		return
	}
	dc.DrawRectangle(float64(x1), float64(y1), float64(x2-x1+1), float64(y2-y1+1))
	dc.Fill()
}

// waveMask draws the four sinusoidal strokes that get carved out of the U.
func waveMask(size int, g geometry) *image.Alpha {
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(math.Max(float64(int(float64(size)*0.028)), 6))
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapButt)

	startX := float64(g.leftX1) + float64(g.padding)*0.65
	endX := float64(g.rightX2) - float64(g.padding)*0.35
	baseY := float64(g.barBottom) + float64(g.radius)*0.28
	rise := float64(size) * 0.14
	amplitudes := []float64{
		float64(size) * 0.020,
		float64(size) * 0.024,
		float64(size) * 0.028,
		float64(size) * 0.032,
	}

	for idx, amplitude := range amplitudes {
		for step := 0; step < waveSamples; step++ {
			t := float64(step) / float64(waveSamples-1)
			x := startX + (endX-startX)*t
			y := baseY + float64(idx)*(float64(g.padding)*0.22) +
				amplitude*math.Sin(2*math.Pi*(t+float64(idx)*0.06)) -
				t*rise
			if step == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
	}
	return dc.AsMask()
}

// subtractMask subtracts b from a in place, clamping at zero.
func subtractMask(a, b *image.Alpha) {
	for i := range a.Pix {
		if b.Pix[i] >= a.Pix[i] {
			a.Pix[i] = 0
		} else {
			a.Pix[i] -= b.Pix[i]
		}
	}
}

// multiplyMask scales a by b in place, normalized to the 0-255 range.
func multiplyMask(a, b *image.Alpha) {
	for i := range a.Pix {
		a.Pix[i] = uint8(uint16(a.Pix[i]) * uint16(b.Pix[i]) / 255)
	}
}
