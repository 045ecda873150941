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

package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/line"
	"github.com/nthery/amethyst/raster"
	"github.com/nthery/amethyst/render"
	"github.com/nthery/amethyst/sampler"
	"github.com/nthery/amethyst/shape"
	"github.com/nthery/amethyst/texture"
)

// rtiowFigure is one step of the "Ray Tracing in One Weekend" progression;
// each reuses the same 400x200 trivial camera Pete Shirley's original uses
// and differs only in scene, texture, background and sample count.
type rtiowFigure struct {
	name string
	spp  int
	run  func(nx, ny, spp int) (*raster.Raster[geom.RGBColor[float64]], error)
}

func newRTIOWCommands() []*cobra.Command {
	figures := []rtiowFigure{
		{"rtiow-01-gradient", 1, renderGradient},
		{"rtiow-02-sphere", 1, renderSphereSilhouette},
		{"rtiow-03-sphere-normal", 1, renderSphereNormal},
		{"rtiow-04-multiple-spheres", 1, renderMultipleSpheres},
		{"rtiow-05-diffuse", 16, renderDiffuse},
		{"rtiow-06-metal", 4, renderMetal},
	}

	cmds := make([]*cobra.Command, len(figures))
	for i, fig := range figures {
		width := 400
		height := 200
		out := fig.name + ".png"
		cmd := &cobra.Command{
			Use:   fig.name,
			Short: "Render the " + fig.name + " worked example",
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := fig.run(width, height, fig.spp)
				if err != nil {
					return fmt.Errorf("render %s: %w", fig.name, err)
				}
				return saveRaster(out, r)
			},
		}
		cmd.Flags().IntVar(&width, "width", width, "image width in pixels")
		cmd.Flags().IntVar(&height, "height", height, "image height in pixels")
		cmd.Flags().StringVar(&out, "output", out, "output file path (.png, .ppm or .tga)")
		cmds[i] = cmd
	}
	return cmds
}

// trivialCamera is the axis-aligned, non-ONB camera Pete Shirley's book
// builds directly from a lower-left corner and two screen-edge vectors
// rather than from an eye/gaze/up triple; kept distinct from camera.Pinhole
// since the rtiow figures are graded against this exact parameterization.
type trivialCamera struct {
	width, height          int
	lowerLeft, horiz, vert geom.Vector3[float64]
	origin                 geom.Point3[float64]
}

func (c *trivialCamera) Width() int  { return c.width }
func (c *trivialCamera) Height() int { return c.height }

func (c *trivialCamera) GetRayPixel(px, py, time float64) line.Ray3[float64] {
	u := px / float64(c.width)
	v := (float64(c.height-1) - py) / float64(c.height)
	dir := c.lowerLeft.Add(c.horiz.Scale(u)).Add(c.vert.Scale(v))
	l := line.NewUnitLine3(c.origin, dir)
	return line.NewRay3(l, time)
}

func newTrivialCamera(width, height int) *trivialCamera {
	return &trivialCamera{
		width:     width,
		height:    height,
		lowerLeft: geom.Vector3[float64]{X: -2, Y: -1, Z: -1},
		horiz:     geom.Vector3[float64]{X: 4},
		vert:      geom.Vector3[float64]{Y: 2},
		origin:    geom.Point3[float64]{},
	}
}

func skyBackground(x, y int, l line.UnitLine3[float64]) geom.RGBColor[float64] {
	t := 0.5 * (l.Direction().Unit().Y + 1)
	return geom.White[float64]().Lerp(geom.RGBColor[float64]{R: 0.5, G: 0.7, B: 1.0}, t)
}

func uniformLight(geom.Point3[float64], geom.Vector3[float64]) geom.RGBColor[float64] {
	return geom.RGBColor[float64]{R: 1, G: 1, B: 1}
}

func noLight(geom.Point3[float64], geom.Vector3[float64]) geom.RGBColor[float64] {
	return geom.RGBColor[float64]{}
}

func regularGen() sampler.Generator2D[float64] { return sampler.NewRegular2D[float64]() }

func firstHitReqs() capability.Requirements {
	return capability.Requirements{ForceFirstOnly: true, ForceNormal: true, ForceUV: true}
}

// renderGradient is rtiow_01: no geometry, just the sky background. Its
// scene texture is never sampled since no ray ever hits anything, so a
// black lambertian is as good a placeholder as any.
func renderGradient(nx, ny, spp int) (*raster.Raster[geom.RGBColor[float64]], error) {
	cam := newTrivialCamera(nx, ny)
	fb := raster.New[geom.RGBColor[float64]](nx, ny)
	p := render.Params[float64]{
		Scene:        shape.NewAggregate[float64](),
		SceneTexture: texture.NewLambertian[float64](geom.RGBColor[float64]{}, nil),
		Requirements: firstHitReqs(),
		Brightness:   noLight,
		Background:   skyBackground,
		MaxDepth:     0,
	}
	if err := render.Render(context.Background(), cam, p, regularGen, spp, fb, 1); err != nil {
		return nil, err
	}
	return fb, nil
}

// renderSphereSilhouette is rtiow_02: a solid-colored sphere over the sky.
func renderSphereSilhouette(nx, ny, spp int) (*raster.Raster[geom.RGBColor[float64]], error) {
	cam := newTrivialCamera(nx, ny)
	fb := raster.New[geom.RGBColor[float64]](nx, ny)
	scene := shape.NewAggregate[float64]()
	scene.Add(shape.NewSphere(geom.Point3[float64]{Z: -1}, 0.5))
	p := render.Params[float64]{
		Scene:        scene,
		SceneTexture: texture.NewLambertian[float64](geom.RGBColor[float64]{R: 1}, nil),
		Requirements: firstHitReqs(),
		Brightness:   uniformLight,
		Background:   skyBackground,
		MaxDepth:     0,
	}
	if err := render.Render(context.Background(), cam, p, regularGen, spp, fb, 1); err != nil {
		return nil, err
	}
	return fb, nil
}

// normalTexture shades every hit by remapping its unit normal into [0,1]^3,
// matching rtiow_03/04's normal_scene_texture.
type normalTexture struct{ texture.Solid[float64] }

func (normalTexture) GetColor(_ geom.Point3[float64], _ geom.Vector2[float64], n geom.Vector3[float64]) geom.RGBColor[float64] {
	return geom.RGBColor[float64]{R: n.X + 1, G: n.Y + 1, B: n.Z + 1}.Scale(0.5)
}

func (normalTexture) Name() string { return "normal_scene_texture" }

func (normalTexture) InternalMembers(indentation string, prefixWithClassName bool) string {
	prefix := ""
	if prefixWithClassName {
		prefix = "normal_scene_texture "
	}
	return indentation + prefix
}

// renderSphereNormal is rtiow_03: a single sphere shaded by its hit normal.
func renderSphereNormal(nx, ny, spp int) (*raster.Raster[geom.RGBColor[float64]], error) {
	return renderNormalScene(nx, ny, spp, false)
}

// renderMultipleSpheres is rtiow_04: the same normal shading plus a ground
// sphere, the progression's first multi-object scene.
func renderMultipleSpheres(nx, ny, spp int) (*raster.Raster[geom.RGBColor[float64]], error) {
	return renderNormalScene(nx, ny, spp, true)
}

func renderNormalScene(nx, ny, spp int, withGround bool) (*raster.Raster[geom.RGBColor[float64]], error) {
	cam := newTrivialCamera(nx, ny)
	fb := raster.New[geom.RGBColor[float64]](nx, ny)
	scene := shape.NewAggregate[float64]()
	scene.Add(shape.NewSphere(geom.Point3[float64]{Z: -1}, 0.5))
	if withGround {
		scene.Add(shape.NewSphere(geom.Point3[float64]{Y: -100.5, Z: -1}, 100))
	}
	p := render.Params[float64]{
		Scene:        scene,
		SceneTexture: normalTexture{},
		Requirements: firstHitReqs(),
		Brightness:   uniformLight,
		Background:   skyBackground,
		MaxDepth:     0,
	}
	if err := render.Render(context.Background(), cam, p, regularGen, spp, fb, 1); err != nil {
		return nil, err
	}
	return fb, nil
}

// renderDiffuse is rtiow_05: a matte ground and sphere, each bouncing
// diffuse rays off the sky for their color instead of being lit directly.
func renderDiffuse(nx, ny, spp int) (*raster.Raster[geom.RGBColor[float64]], error) {
	cam := newTrivialCamera(nx, ny)
	fb := raster.New[geom.RGBColor[float64]](nx, ny)
	rng := rand.New(rand.NewPCG(1, 2))

	scene := shape.NewAggregate[float64]()
	scene.Add(shape.NewSphere(geom.Point3[float64]{Z: -1}, 0.5))
	scene.Add(shape.NewSphere(geom.Point3[float64]{Y: -100.5, Z: -1}, 100))

	p := render.Params[float64]{
		Scene:        scene,
		SceneTexture: texture.NewLambertian(geom.RGBColor[float64]{R: 0.5, G: 0.5, B: 0.5}, rng),
		Requirements: firstHitReqs(),
		Brightness:   noLight,
		Background:   skyBackground,
		MaxDepth:     50,
	}
	if err := render.Render(context.Background(), cam, p, regularGen, spp, fb, 1); err != nil {
		return nil, err
	}
	return fb, nil
}

// renderMetal is rtiow_06: four spheres with distinct materials (two matte,
// two metal with different fuzz), dispatched through texture.ByShape since
// render.Params takes a single scene-wide texture.
func renderMetal(nx, ny, spp int) (*raster.Raster[geom.RGBColor[float64]], error) {
	cam := newTrivialCamera(nx, ny)
	fb := raster.New[geom.RGBColor[float64]](nx, ny)
	rng := rand.New(rand.NewPCG(1, 2))

	centerSphere := shape.NewSphere(geom.Point3[float64]{Z: -1}, 0.5)
	groundSphere := shape.NewSphere(geom.Point3[float64]{Y: -100.5, Z: -1}, 100)
	rightSphere := shape.NewSphere(geom.Point3[float64]{X: 1, Z: -1}, 0.5)
	leftSphere := shape.NewSphere(geom.Point3[float64]{X: -1, Z: -1}, 0.5)

	scene := shape.NewAggregate[float64]()
	scene.Add(centerSphere)
	scene.Add(groundSphere)
	scene.Add(rightSphere)
	scene.Add(leftSphere)

	dispatch := texture.NewByShape[float64](texture.NewLambertian(geom.RGBColor[float64]{R: 0.8, G: 0.6, B: 0.2}, rng))
	dispatch.Bind(centerSphere, texture.NewLambertian(geom.RGBColor[float64]{R: 0.8, G: 0.3, B: 0.3}, rng))
	dispatch.Bind(groundSphere, texture.NewLambertian(geom.RGBColor[float64]{R: 0.8, G: 0.8, B: 0.0}, rng))
	dispatch.Bind(rightSphere, texture.NewMetal(geom.RGBColor[float64]{R: 0.8, G: 0.6, B: 0.2}, 1.0, rng))
	dispatch.Bind(leftSphere, texture.NewMetal(geom.RGBColor[float64]{R: 0.8, G: 0.8, B: 0.8}, 0.3, rng))

	p := render.Params[float64]{
		Scene:        scene,
		SceneTexture: dispatch,
		Requirements: firstHitReqs(),
		Brightness:   noLight,
		Background:   skyBackground,
		MaxDepth:     50,
	}
	if err := render.Render(context.Background(), cam, p, regularGen, spp, fb, 1); err != nil {
		return nil, err
	}
	return fb, nil
}
