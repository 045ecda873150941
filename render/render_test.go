package render

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
	"github.com/nthery/amethyst/sampler"
	"github.com/nthery/amethyst/texture"
)

// alwaysMiss never reports an intersection, exercising the background path.
type alwaysMiss[T geom.Real] struct{}

func (alwaysMiss[T]) IntersectsRay(r line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	return false
}

// singleHit reports a fixed hit at a fixed point/normal every time, regardless
// of the ray, to keep SampleScene's control flow deterministic under test.
type singleHit[T geom.Real] struct {
	point  geom.Point3[T]
	normal geom.Vector3[T]
}

func (s singleHit[T]) IntersectsRay(r line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	info.SetFirstPoint(s.point)
	info.SetNormal(s.normal)
	info.SetFirstDistance(1)
	return true
}

func constantBrightness[T geom.Real](c geom.RGBColor[T]) BrightnessFunc[T] {
	return func(point geom.Point3[T], normal geom.Vector3[T]) geom.RGBColor[T] { return c }
}

func constantBackground[T geom.Real](c geom.RGBColor[T]) BackgroundFunc[T] {
	return func(x, y int, l line.UnitLine3[T]) geom.RGBColor[T] { return c }
}

func TestSampleSceneReturnsBackgroundOnMiss(t *testing.T) {
	bg := geom.RGBColor[float64]{R: 0.25, G: 0.5, B: 0.75}
	p := Params[float64]{
		Scene:        alwaysMiss[float64]{},
		SceneTexture: texture.NewLambertian[float64](geom.RGBColor[float64]{R: 1}, rand.New(rand.NewPCG(1, 1))),
		Brightness:   constantBrightness[float64](geom.RGBColor[float64]{R: 1, G: 1, B: 1}),
		Background:   constantBackground[float64](bg),
		MaxDepth:     4,
	}
	ray := line.NewRay3(line.NewUnitLine3(geom.Point3[float64]{}, geom.Vector3[float64]{Z: -1}), 0)

	got := SampleScene(p, 0, 0, ray, p.MaxDepth)
	assert.InDelta(t, bg.R, got.R, 1e-9, "SampleScene() on a miss should return the background color")
	assert.InDelta(t, bg.G, got.G, 1e-9, "SampleScene() on a miss should return the background color")
	assert.InDelta(t, bg.B, got.B, 1e-9, "SampleScene() on a miss should return the background color")
}

func TestSampleSceneAtZeroDepthSkipsScatter(t *testing.T) {
	albedo := geom.RGBColor[float64]{R: 0.4, G: 0.4, B: 0.4}
	p := Params[float64]{
		Scene:        singleHit[float64]{point: geom.Point3[float64]{Z: 1}, normal: geom.Vector3[float64]{Z: 1}},
		SceneTexture: texture.NewLambertian[float64](albedo, rand.New(rand.NewPCG(2, 2))),
		Brightness:   constantBrightness[float64](geom.RGBColor[float64]{R: 1, G: 1, B: 1}),
		Background:   constantBackground[float64](geom.RGBColor[float64]{}),
		MaxDepth:     0,
	}
	ray := line.NewRay3(line.NewUnitLine3(geom.Point3[float64]{Z: 5}, geom.Vector3[float64]{Z: -1}), 0)

	got := SampleScene(p, 0, 0, ray, 0)
	assert.InDelta(t, albedo.R, got.R, 1e-9, "SampleScene() at depth 0 should return exactly the local albedo")
	assert.InDelta(t, albedo.G, got.G, 1e-9, "SampleScene() at depth 0 should return exactly the local albedo")
	assert.InDelta(t, albedo.B, got.B, 1e-9, "SampleScene() at depth 0 should return exactly the local albedo")
}

func TestRenderColorFuncAveragesSamplesAcrossFramebuffer(t *testing.T) {
	fb := newFakeFramebuffer[float64](4, 3)
	colorFn := func(x, y float64) geom.RGBColor[float64] {
		return geom.RGBColor[float64]{R: x, G: y, B: 1}
	}
	newGen := func() sampler.Generator2D[float64] {
		return sampler.NewRandom2D[float64](rand.New(rand.NewPCG(3, 3)))
	}

	err := RenderColorFunc[float64](context.Background(), colorFn, newGen, 4, fb, 2)
	require.NoError(t, err)

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			c := fb.At(x, y)
			assert.InDelta(t, 1.0, c.B, 1e-9, "pixel (%d,%d) blue channel should average to 1 across every jittered sample", x, y)
		}
	}
}

type fakeFramebuffer[T geom.Real] struct {
	width, height int
	pixels        []geom.RGBColor[T]
}

func newFakeFramebuffer[T geom.Real](width, height int) *fakeFramebuffer[T] {
	return &fakeFramebuffer[T]{width: width, height: height, pixels: make([]geom.RGBColor[T], width*height)}
}

func (f *fakeFramebuffer[T]) SetPixel(x, y int, c geom.RGBColor[T]) { f.pixels[y*f.width+x] = c }
func (f *fakeFramebuffer[T]) At(x, y int) geom.RGBColor[T]         { return f.pixels[y*f.width+x] }
func (f *fakeFramebuffer[T]) Width() int                            { return f.width }
func (f *fakeFramebuffer[T]) Height() int                           { return f.height }
