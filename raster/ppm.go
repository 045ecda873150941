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
	"bufio"
	"fmt"
	"io"

	"github.com/nthery/amethyst/geom"
)

func to8Bit[T geom.Real](c T) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}

func from8Bit[T geom.Real](b uint8) T { return T(b) / 255 }

// WritePPM encodes r in the ASCII "P3" variant: header
// "P3\n<w> <h>\n255\n", then one line per row of space-separated "R G B"
// triplets, each channel converted from a [0,1] float to an 8-bit byte.
func WritePPM[T geom.Real](w io.Writer, r *Raster[geom.RGBColor[T]]) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", r.Width(), r.Height()); err != nil {
		return err
	}
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			c, err := r.At(x, y)
			if err != nil {
				return err
			}
			if x != 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d %d %d", to8Bit(c.R), to8Bit(c.G), to8Bit(c.B)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPPM decodes the ASCII "P3" variant written by WritePPM.
func ReadPPM[T geom.Real](r io.Reader) (*Raster[geom.RGBColor[T]], error) {
	br := bufio.NewReader(r)

	var magic string
	var width, height, maxVal int
	if _, err := fmt.Fscan(br, &magic, &width, &height, &maxVal); err != nil {
		return nil, parseError("ReadPPM: malformed header: %v", err)
	}
	if magic != "P3" {
		return nil, parseError("ReadPPM: unsupported magic %q, want P3", magic)
	}
	if width <= 0 || height <= 0 {
		return nil, parseError("ReadPPM: invalid dimensions %dx%d", width, height)
	}
	if maxVal <= 0 || maxVal > 65535 {
		return nil, parseError("ReadPPM: invalid max value %d", maxVal)
	}

	out := New[geom.RGBColor[T]](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var ri, gi, bi int
			if _, err := fmt.Fscan(br, &ri, &gi, &bi); err != nil {
				return nil, parseError("ReadPPM: truncated pixel data at (%d,%d): %v", x, y, err)
			}
			out.Set(x, y, geom.RGBColor[T]{
				R: T(ri) / T(maxVal),
				G: T(gi) / T(maxVal),
				B: T(bi) / T(maxVal),
			})
		}
	}
	return out, nil
}
