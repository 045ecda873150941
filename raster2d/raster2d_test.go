package raster2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/raster"
)

func TestRasterizeOpaqueTriangleFillsInteriorPixel(t *testing.T) {
	r := raster.New[geom.RGBColor[float64]](10, 10)
	red := geom.RGBColor[float64]{R: 1}
	tri := Triangle[float64]{
		V1: Vertex[float64]{XY: geom.Vector2[float64]{X: 1, Y: 1}, RGB: red, A: 0},
		V2: Vertex[float64]{XY: geom.Vector2[float64]{X: 8, Y: 1}, RGB: red, A: 0},
		V3: Vertex[float64]{XY: geom.Vector2[float64]{X: 4, Y: 8}, RGB: red, A: 0},
	}
	Rasterize(r, tri)

	c, err := r.At(4, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9, "interior pixel should be opaque red")
}

func TestRasterizeFullyTransparentTriangleLeavesBackgroundUntouched(t *testing.T) {
	r := raster.New[geom.RGBColor[float64]](10, 10)
	background := geom.RGBColor[float64]{G: 1}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			r.Set(x, y, background)
		}
	}

	tri := Triangle[float64]{
		V1: Vertex[float64]{XY: geom.Vector2[float64]{X: 1, Y: 1}, RGB: geom.RGBColor[float64]{R: 1}, A: 1},
		V2: Vertex[float64]{XY: geom.Vector2[float64]{X: 8, Y: 1}, RGB: geom.RGBColor[float64]{R: 1}, A: 1},
		V3: Vertex[float64]{XY: geom.Vector2[float64]{X: 4, Y: 8}, RGB: geom.RGBColor[float64]{R: 1}, A: 1},
	}
	Rasterize(r, tri)

	c, _ := r.At(4, 2)
	assert.InDelta(t, 0.0, c.R, 1e-9, "fully transparent triangle should not touch the background")
	assert.InDelta(t, 1.0, c.G, 1e-9, "fully transparent triangle should not touch the background")
}

func TestRasterizeHandlesNearHorizontalTopEdge(t *testing.T) {
	r := raster.New[geom.RGBColor[float64]](10, 10)
	red := geom.RGBColor[float64]{R: 1}
	// p1.XY.Y and p2.XY.Y differ by less than 1, forcing the x/y swap path.
	tri := Triangle[float64]{
		V1: Vertex[float64]{XY: geom.Vector2[float64]{X: 1, Y: 4}, RGB: red, A: 0},
		V2: Vertex[float64]{XY: geom.Vector2[float64]{X: 8, Y: 4.2}, RGB: red, A: 0},
		V3: Vertex[float64]{XY: geom.Vector2[float64]{X: 4, Y: 9}, RGB: red, A: 0},
	}

	Rasterize(r, tri)

	c, err := r.At(4, 6)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9, "interior pixel of near-horizontal-top triangle should be opaque red")
}

func TestDrawSpanClipsOutOfRangeXOnce(t *testing.T) {
	r := raster.New[geom.RGBColor[float64]](4, 4)
	c1 := geom.RGBColor[float64]{R: 1}
	c2 := geom.RGBColor[float64]{B: 1}

	drawSpan(r, -2, 6, 1, c1, c2, 0, 0, false)

	for x := 0; x < 4; x++ {
		if c, err := r.At(x, 1); err != nil || c.R+c.B == 0 {
			t.Fatalf("At(%d,1) error = %v, want the whole row written", x, err)
		}
	}
}

func TestDrawSpanOutOfRangeYIsNoop(t *testing.T) {
	r := raster.New[geom.RGBColor[float64]](4, 4)
	drawSpan(r, 0, 3, 10, geom.RGBColor[float64]{R: 1}, geom.RGBColor[float64]{R: 1}, 0, 0, false)

	c, _ := r.At(0, 0)
	assert.InDelta(t, 0.0, c.R, 1e-9, "out-of-range scanline should not have written pixel data")
}

func TestPutPixelBlendsByAlpha(t *testing.T) {
	r := raster.New[geom.RGBColor[float64]](1, 1)
	r.Set(0, 0, geom.RGBColor[float64]{G: 1})

	PutPixel(r, 0, 0, geom.RGBColor[float64]{R: 1}, 0.5)

	c, _ := r.At(0, 0)
	assert.InDelta(t, 0.5, c.R, 1e-9, "PutPixel blend should be half red half green")
	assert.InDelta(t, 0.5, c.G, 1e-9, "PutPixel blend should be half red half green")
}
