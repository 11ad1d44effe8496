package logo

import "math"

// geometry holds the offsets derived for one canvas size. Every value is a
// fixed fraction of size; nothing is configurable independently, which keeps
// proportions identical across all emitted asset sizes.
type geometry struct {
	size      int
	centerX   float64
	top       int
	barBottom int
	barWidth  int
	gap       int
	padding   int
	radius    int
	arcBottom int

	leftX1, leftX2   int
	rightX1, rightX2 int
}

func newGeometry(size int) geometry {
	g := geometry{
		size:      size,
		centerX:   float64(size) / 2,
		top:       int(float64(size) * 0.15),
		barBottom: int(float64(size) * 0.62),
		barWidth:  int(float64(size) * 0.195),
		gap:       int(float64(size) * 0.22),
		padding:   int(float64(size) * 0.088),
		radius:    int(float64(size) * 0.186),
	}

	// Make sure the bottom arc fits inside the canvas.
	g.arcBottom = g.barBottom + 2*g.radius
	if g.arcBottom > size {
		overflow := g.arcBottom - size
		g.radius = max(g.radius-int(math.Ceil(float64(overflow)/2)), g.padding+4)
		g.arcBottom = g.barBottom + 2*g.radius
	}

	g.leftX1 = int(g.centerX - float64(g.gap)/2 - float64(g.barWidth))
	g.leftX2 = int(g.centerX - float64(g.gap)/2)
	g.rightX1 = int(g.centerX + float64(g.gap)/2)
	g.rightX2 = int(g.centerX + float64(g.gap)/2 + float64(g.barWidth))
	return g
}

// outline is one U silhouette: two vertical pillars joined by a half-ellipse
// base. The outer outline and its padded inner counterpart differ only in
// these offsets.
type outline struct {
	leftX1, leftX2   int
	rightX1, rightX2 int
	top, barBottom   int
	radius           int
}

func (g geometry) outer() outline {
	return outline{
		leftX1: g.leftX1, leftX2: g.leftX2,
		rightX1: g.rightX1, rightX2: g.rightX2,
		top: g.top, barBottom: g.barBottom,
		radius: g.radius,
	}
}

// inner shrinks the outline by padding on every side; the subtraction of
// inner from outer defines the stroke weight of the U.
func (g geometry) inner() outline {
	return outline{
		leftX1: g.leftX1 + g.padding, leftX2: g.leftX2 - g.padding,
		rightX1: g.rightX1 + g.padding, rightX2: g.rightX2 - g.padding,
		top: g.top + g.padding, barBottom: g.barBottom + g.padding,
		radius: max(g.radius-g.padding, 8),
	}
}
