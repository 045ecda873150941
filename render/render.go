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

// Package render drives the pixel loop and the recursive path-tracing
// integrator that turns a scene, a camera and a material into pixel
// colors. The pixel loop is striped across goroutines the same way the
// legacy raytracer package split an image into horizontal bands, except
// errors from a worker now propagate through an errgroup instead of a
// best-effort channel join.
package render

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
	"github.com/nthery/amethyst/sampler"
	"github.com/nthery/amethyst/shape"
	"github.com/nthery/amethyst/texture"
)

// Framebuffer is the output sink the pixel loop writes into. raster.Raster
// implements this, but render never imports raster directly so that either
// package can be tested in isolation.
type Framebuffer[T geom.Real] interface {
	SetPixel(x, y int, c geom.RGBColor[T])
	Width() int
	Height() int
}

// Camera is the narrow projection contract Render needs: turn a pixel
// coordinate and a sample time into a world-space ray.
type Camera[T geom.Real] interface {
	GetRayPixel(px, py, time T) line.Ray3[T]
	Width() int
	Height() int
}

// BrightnessFunc computes the incident light at a shading point, given its
// position and surface normal. A constant function models ambient-only
// shading; a point-light implementation would fall off with distance and
// check for occluders.
type BrightnessFunc[T geom.Real] func(point geom.Point3[T], normal geom.Vector3[T]) geom.RGBColor[T]

// BackgroundFunc computes the color a ray that misses every shape should
// report, given the pixel it originated from and the ray's line (time is
// dropped since a background has no notion of motion).
type BackgroundFunc[T geom.Real] func(x, y int, l line.UnitLine3[T]) geom.RGBColor[T]

// DefaultBackground is a vertical sky gradient from white straight down,
// through an even mix at the horizon, to a pale blue straight up, keyed off
// the ray direction's y component.
func DefaultBackground[T geom.Real](x, y int, l line.UnitLine3[T]) geom.RGBColor[T] {
	dir := l.Direction().Unit()
	t := T(0.5) * (dir.Y + 1)
	white := geom.RGBColor[T]{R: 1, G: 1, B: 1}
	sky := geom.RGBColor[T]{R: 0.5, G: 0.7, B: 1.0}
	return white.Lerp(sky, t)
}

// Scene is the narrow query surface SampleScene needs from the aggregate
// scene graph: a single ray/scene intersection test.
type Scene[T geom.Real] interface {
	IntersectsRay(r line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool
}

var _ Scene[float64] = (shape.Shape[float64])(nil)

// Params bundles everything SampleScene needs beyond the ray itself, so
// that recursive calls don't have to thread a long, repeated argument
// list. MaxDepth bounds the scattered-ray recursion; a texture whose
// ScatterRay keeps succeeding forever (e.g. a mirror sphere facing
// another mirror sphere) would otherwise never terminate.
type Params[T geom.Real] struct {
	Scene        Scene[T]
	SceneTexture texture.Texture[T]
	Requirements capability.Requirements
	Brightness   BrightnessFunc[T]
	Background   BackgroundFunc[T]
	MaxDepth     int
}

// SampleScene traces one ray and returns the color it sees: the local
// shading at the nearest hit plus whatever light its scattered ray
// brings back, attenuated by the material, or the background color on a
// miss.
func SampleScene[T geom.Real](p Params[T], x, y int, ray line.Ray3[T], depth int) geom.RGBColor[T] {
	var info isect.Info[T]
	if !p.Scene.IntersectsRay(ray, &info, p.Requirements) {
		return p.Background(x, y, ray.Line)
	}

	light := p.Brightness(info.FirstPoint(), info.NormalOrDefault())
	local := p.SceneTexture.GetColor(info.FirstPoint(), info.UVOrDefault(), info.NormalOrDefault())

	reflected := geom.RGBColor[T]{}
	if depth > 0 {
		if scattered, attenuation, ok := p.SceneTexture.ScatterRay(ray, &info); ok {
			reflected = attenuation.Mul(SampleScene(p, x, y, scattered, depth-1))
		}
	}

	return light.Mul(local).Add(reflected)
}

// ColorFunc samples the scene at a continuous pixel coordinate, typically
// a closure over a camera ray and the path integrator.
type ColorFunc[T geom.Real] func(x, y T) geom.RGBColor[T]

// RenderColorFunc is the generic pixel loop: for each pixel it asks gen for
// spp sub-pixel offsets in [0,1)^2, queries colorFn at the offset pixel
// coordinate, and writes the average into fb. It knows nothing about
// cameras, scenes or materials — colorFn is the only collaborator.
// Rows are striped across workers goroutines joined through an errgroup,
// the same banded-concurrency shape the legacy channel-join renderer used,
// except a worker's error now aborts the remaining workers via ctx instead
// of being silently dropped.
func RenderColorFunc[T geom.Real](
	ctx context.Context,
	colorFn ColorFunc[T],
	newGen func() sampler.Generator2D[T],
	spp int,
	fb Framebuffer[T],
	workers int,
) error {
	if workers < 1 {
		workers = 1
	}
	height := fb.Height()
	width := fb.Width()

	g, ctx := errgroup.WithContext(ctx)
	rowsPerWorker := (height + workers - 1) / workers

	for w := 0; w < workers; w++ {
		yStart := w * rowsPerWorker
		yEnd := yStart + rowsPerWorker
		if yEnd > height {
			yEnd = height
		}
		if yStart >= yEnd {
			continue
		}
		g.Go(func() error {
			gen := newGen()
			for y := yStart; y < yEnd; y++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				for x := 0; x < width; x++ {
					offsets := gen.Samples(spp)
					sum := geom.RGBColor[T]{}
					for _, o := range offsets {
						sum = sum.Add(colorFn(T(x)+o.X, T(y)+o.Y))
					}
					fb.SetPixel(x, y, sum.Scale(1/T(len(offsets))))
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Render builds the per-pixel color function as
// SampleScene(x, y, camera.GetRayPixel(x, y, 0), ...) and drives it through
// RenderColorFunc. newGen must return a fresh, independently-seeded
// generator each call: one is requested per worker goroutine so that no
// PRNG is ever touched from more than one goroutine, mirroring the
// per-thread sample ownership every scatter texture already assumes.
//
// Every scattering texture in p.Scene's graph owns its own *rand.Rand, so
// with workers > 1 the caller must ensure no two workers reach the same
// Lambertian/Metal instance: either render single-threaded (workers=1), or
// build one complete scene+texture graph per worker. Sharing a scattering
// texture between workers races on its internal generator.
func Render[T geom.Real](
	ctx context.Context,
	cam Camera[T],
	p Params[T],
	newGen func() sampler.Generator2D[T],
	spp int,
	fb Framebuffer[T],
	workers int,
) error {
	colorFn := func(x, y T) geom.RGBColor[T] {
		ray := cam.GetRayPixel(x, y, 0)
		return SampleScene(p, int(x), int(y), ray, p.MaxDepth)
	}
	return RenderColorFunc(ctx, colorFn, newGen, spp, fb, workers)
}
