/*
Copyright (c) 2013 Nicolas Thery <nthery@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package raster2d rasterizes alpha-blended 2D triangles into a raster.Raster
// with a scanline DDA, one sample per pixel.
package raster2d

import (
	"math"

	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/raster"
)

// Vertex is one corner of an alpha triangle: a 2D position, a color and an
// alpha in [0,1] (0 fully opaque, 1 fully transparent, matching the blend
// weight used by PutPixel).
type Vertex[T geom.Real] struct {
	XY  geom.Vector2[T]
	RGB geom.RGBColor[T]
	A   T
}

// Triangle is three vertices in no particular winding order; Rasterize sorts
// them itself.
type Triangle[T geom.Real] struct {
	V1, V2, V3 Vertex[T]
}

// compareAndSwapY swaps p1 and p2 so that p1.XY.Y <= p2.XY.Y.
func compareAndSwapY[T geom.Real](p1, p2 *Vertex[T]) {
	if p2.XY.Y < p1.XY.Y {
		*p1, *p2 = *p2, *p1
	}
}

// PutPixel blends c into the pixel at (x,y) with weight alpha: 0 replaces
// the existing pixel outright, 1 leaves it untouched. A pixel outside the
// raster is silently skipped, on top of the once-per-scanline clip that
// drawSpan already applies.
func PutPixel[T geom.Real](r *raster.Raster[geom.RGBColor[T]], x, y int, c geom.RGBColor[T], alpha T) {
	existing, err := r.At(x, y)
	if err != nil {
		return
	}
	opaque := 1 - alpha
	r.Set(x, y, geom.RGBColor[T]{
		R: existing.R*alpha + c.R*opaque,
		G: existing.G*alpha + c.G*opaque,
		B: existing.B*alpha + c.B*opaque,
	})
}

// drawSpan draws one horizontal (or, if swapXY, vertical) span of a
// scanline, interpolating color and alpha linearly from (x1,c1,a1) to
// (x2,c2,a2). Bounds clipping happens once against x1/x2 rather than per
// pixel.
func drawSpan[T geom.Real](r *raster.Raster[geom.RGBColor[T]], x1, x2, y T, c1, c2 geom.RGBColor[T], a1, a2 T, swapXY bool) {
	limit := r.Height()
	if swapXY {
		limit = r.Width()
	}
	if y < 0 || int(y) >= limit {
		return
	}

	dx := x2 - x1
	if dx < 0 {
		x1, x2 = x2, x1
		c1, c2 = c2, c1
		a1, a2 = a2, a1
		dx = x2 - x1
	}

	aStep := (a2 - a1) / dx
	cStep := c2.Sub(c1).Scale(1 / dx)

	a := a1
	c := c1

	if x1 < 0 {
		a = a1 - x1*aStep
		c = c1.Sub(cStep.Scale(x1))
		x1 = 0
	}
	// The original clips x2 against the image's true width regardless of
	// swapXY; put_alpha_pixel_unchecked would otherwise run past the pixel
	// slice when drawing a swapped (near-horizontal) triangle's long axis.
	width := T(r.Width())
	if x2+0.5 >= width {
		x2 = width - 1
	}

	endX := int(x2 + 0.5)
	for px := int(x1 + 0.5); px <= endX; px++ {
		if swapXY {
			PutPixel(r, int(y), px, c, a)
		} else {
			PutPixel(r, px, int(y), c, a)
		}
		a += aStep
		c = c.Add(cStep)
	}
}

// Rasterize draws tri into r with per-pixel alpha blending, scanning the
// triangle top to bottom in two segments split at the middle vertex.
func Rasterize[T geom.Real](r *raster.Raster[geom.RGBColor[T]], tri Triangle[T]) {
	p1, p2, p3 := tri.V1, tri.V2, tri.V3

	compareAndSwapY(&p1, &p2)
	compareAndSwapY(&p2, &p3)
	compareAndSwapY(&p1, &p2)

	// A near-horizontal top edge makes dp1.Y close to zero, blowing up the
	// per-scanline gradient. Swap x and y for the whole triangle, rasterize
	// column-major, and swap back when plotting.
	swapXY := false
	if T(math.Abs(float64(p2.XY.Y-p1.XY.Y))) < 1 {
		swapXY = true
		p1.XY.X, p1.XY.Y = p1.XY.Y, p1.XY.X
		p2.XY.X, p2.XY.Y = p2.XY.Y, p2.XY.X
		p3.XY.X, p3.XY.Y = p3.XY.Y, p3.XY.X

		compareAndSwapY(&p1, &p2)
		compareAndSwapY(&p2, &p3)
		compareAndSwapY(&p1, &p2)
	}

	dp1 := p2.XY.Sub(p1.XY)
	dp2 := p3.XY.Sub(p1.XY)
	da1 := p2.A - p1.A
	da2 := p3.A - p1.A
	dc1 := p2.RGB.Sub(p1.RGB)
	dc2 := p3.RGB.Sub(p1.RGB)

	dp1dy := dp1.Div(dp1.Y)
	dp2dy := dp2.Div(dp2.Y)
	dc1dy := dc1.Scale(1 / dp1.Y)
	dc2dy := dc2.Scale(1 / dp2.Y)
	da1dy := da1 / dp1.Y
	da2dy := da2 / dp2.Y

	y := p1.XY.Y
	x1 := p1.XY.X
	x2 := x1
	a1 := p1.A
	a2 := a1
	c1 := p1.RGB
	c2 := c1

	if y < p2.XY.Y {
		for ; y <= p2.XY.Y; y += 1 {
			drawSpan(r, x1, x2, y, c1, c2, a1, a2, swapXY)

			x1 += dp1dy.X
			x2 += dp2dy.X
			a1 += da1dy
			a2 += da2dy
			c1 = c1.Add(dc1dy)
			c2 = c2.Add(dc2dy)
		}
	}

	if y < p3.XY.Y {
		dp3 := p3.XY.Sub(p2.XY)
		dc3 := p3.RGB.Sub(p2.RGB)
		da3 := p3.A - p2.A
		dp3dy := dp3.Div(dp3.Y)
		dc3dy := dc3.Scale(1 / dp3.Y)
		da3dy := da3 / dp3.Y

		x1 = p3.XY.X + (y-p3.XY.Y)*dp3dy.X

		for ; y <= p3.XY.Y; y += 1 {
			drawSpan(r, x1, x2, y, c1, c2, a1, a2, swapXY)

			x1 += dp3dy.X
			x2 += dp2dy.X
			a1 += da3dy
			a2 += da2dy
			c1 = c1.Add(dc3dy)
			c2 = c2.Add(dc2dy)
		}
	}
}
