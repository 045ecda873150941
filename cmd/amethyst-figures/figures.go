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

	"github.com/spf13/cobra"

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
	"github.com/nthery/amethyst/raster"
	"github.com/nthery/amethyst/render"
	"github.com/nthery/amethyst/sampler"
	"github.com/nthery/amethyst/shape"
)

// newFigure31Command reproduces figure_3_1.cpp: a sphere and a triangle
// shaded by hit-shape identity, no lighting at all, rather than the rtiow
// progression's camera-plus-material path. It exercises shape.Triangle,
// which the rtiow figures never touch.
func newFigure31Command() *cobra.Command {
	out := "figure_3_1.png"
	size := 500
	cmd := &cobra.Command{
		Use:   "figure-3-1",
		Short: "Render figure 3.1 from Realistic Ray Tracing (sphere + triangle by shape identity)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fb, err := renderFigure31(size)
			if err != nil {
				return err
			}
			return saveRaster(out, fb)
		},
	}
	cmd.Flags().IntVar(&size, "size", size, "image width and height in pixels")
	cmd.Flags().StringVar(&out, "output", out, "output file path (.png, .ppm or .tga)")
	return cmd
}

func renderFigure31(size int) (*raster.Raster[geom.RGBColor[float64]], error) {
	sphere := shape.NewSphere(geom.Point3[float64]{X: 250, Y: 250, Z: -1000}, 150)
	triangle := shape.NewTriangle(
		geom.Point3[float64]{X: 300, Y: 600, Z: -800},
		geom.Point3[float64]{X: 0, Y: 100, Z: -1000},
		geom.Point3[float64]{X: 450, Y: 20, Z: -1000},
	)

	scene := shape.NewAggregate[float64]()
	scene.Add(sphere)
	scene.Add(triangle)

	dark := geom.RGBColor[float64]{R: 0.5, G: 0.5, B: 0.5}
	blue := geom.RGBColor[float64]{B: 0.7}
	red := geom.RGBColor[float64]{R: 0.7}
	black := geom.RGBColor[float64]{}

	reqs := capability.Requirements{ForceFirstOnly: true}

	colorFn := func(x, y float64) geom.RGBColor[float64] {
		l := line.NewUnitLine3(
			geom.Point3[float64]{X: 500 * x / float64(size), Y: 500 * (float64(size) - y) / float64(size)},
			geom.Vector3[float64]{Z: -1},
		)
		var info isect.Info[float64]
		ray := line.NewRay3(l, 0)
		if !scene.IntersectsRay(ray, &info, reqs) {
			return dark
		}
		switch info.Shape() {
		case isect.Shape(sphere):
			return blue
		case isect.Shape(triangle):
			return red
		default:
			return black
		}
	}

	fb := raster.New[geom.RGBColor[float64]](size, size)
	newGen := func() sampler.Generator2D[float64] { return sampler.NewRegular2D[float64]() }
	if err := render.RenderColorFunc(context.Background(), colorFn, newGen, 1, fb, 1); err != nil {
		return nil, err
	}
	return fb, nil
}
