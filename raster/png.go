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

package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/nthery/amethyst/geom"
)

// ToImage converts r into a stdlib image.Image, clamping each channel to
// [0,1] and scaling to 8 bits, for handing off to any encoder or to
// disintegration/imaging.
func ToImage[T geom.Real](r *Raster[geom.RGBColor[T]]) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width(), r.Height()))
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			c, _ := r.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: to8Bit(c.R),
				G: to8Bit(c.G),
				B: to8Bit(c.B),
				A: 255,
			})
		}
	}
	return img
}

// FromImage copies img into a new raster, dropping alpha; the inverse of
// ToImage, used to turn a decoded PNG/JPEG/BMP back into render output.
func FromImage[T geom.Real](img image.Image) *Raster[geom.RGBColor[T]] {
	bounds := img.Bounds()
	out := New[geom.RGBColor[T]](bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out.Set(x-bounds.Min.X, y-bounds.Min.Y, geom.RGBColor[T]{
				R: from16Bit[T](r),
				G: from16Bit[T](g),
				B: from16Bit[T](b),
			})
		}
	}
	return out
}

func from16Bit[T geom.Real](v uint32) T { return T(v) / 65535 }

// WritePNG encodes r as a PNG via the standard library's encoder, the same
// format the teacher's goray command writes.
func WritePNG[T geom.Real](w io.Writer, r *Raster[geom.RGBColor[T]]) error {
	return png.Encode(w, ToImage(r))
}

// ReadPNG decodes a PNG into a raster.
func ReadPNG[T geom.Real](r io.Reader) (*Raster[geom.RGBColor[T]], error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, parseError("ReadPNG: %v", err)
	}
	return FromImage[T](img), nil
}
