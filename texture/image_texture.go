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

package texture

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

// Image is a UV-mapped texture backed by a decoded raster image: (u,v) in
// [0,1]^2 is mapped to a pixel with v flipped, since image rows run top
// down while UV's v runs bottom up. Never scatters a ray.
type Image[T geom.Real] struct {
	img    image.Image
	bounds image.Rectangle
	path   string
}

// LoadImage decodes the file at path (any format imaging supports: PNG,
// JPEG, GIF, BMP, TIFF) into an Image texture.
func LoadImage[T geom.Real](path string) (*Image[T], error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: load image %q: %w", path, err)
	}
	return NewImage[T](img, path), nil
}

// NewImage wraps an already-decoded image as a texture.
func NewImage[T geom.Real](img image.Image, path string) *Image[T] {
	return &Image[T]{img: img, bounds: img.Bounds(), path: path}
}

func (im *Image[T]) GetColor(location geom.Point3[T], uv geom.Vector2[T], normal geom.Vector3[T]) geom.RGBColor[T] {
	w := im.bounds.Dx()
	h := im.bounds.Dy()
	if w == 0 || h == 0 {
		return geom.Black[T]()
	}
	u := float64(uv.X)
	v := float64(uv.Y)
	x := im.bounds.Min.X + int(u*float64(w))
	y := im.bounds.Min.Y + int((1-v)*float64(h))
	x = clampInt(x, im.bounds.Min.X, im.bounds.Max.X-1)
	y = clampInt(y, im.bounds.Min.Y, im.bounds.Max.Y-1)

	r, g, b, _ := im.img.At(x, y).RGBA()
	return geom.RGBColor[T]{
		R: T(r) / 65535,
		G: T(g) / 65535,
		B: T(b) / 65535,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (im *Image[T]) ScatterRay(line.Ray3[T], *isect.Info[T]) (line.Ray3[T], geom.RGBColor[T], bool) {
	return line.Ray3[T]{}, geom.RGBColor[T]{}, false
}

func (im *Image[T]) Capabilities() Capabilities { return Diffuse }

func (im *Image[T]) Name() string { return "image_texture" }

func (im *Image[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	prefix := ""
	if prefixWithClassName {
		prefix = "image_texture "
	}
	return fmt.Sprintf("%s%spath=%s size=%dx%d", indentation, prefix, im.path, im.bounds.Dx(), im.bounds.Dy())
}
