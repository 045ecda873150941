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
	"io"

	"github.com/nthery/amethyst/geom"
)

// tgaHeaderSize is the 18-byte uncompressed-RGB targa header: a 12-byte
// fixed preamble (id length, color map type/spec, image type, origin),
// 2 bytes width, 2 bytes height, 1 byte pixel depth, 1 byte attributes.
const tgaHeaderSize = 18

// WriteTGA encodes r as an uncompressed 24-bit targa image: the 18-byte
// header (attribute byte 32, meaning top-left origin — no row flip needed
// since this writer always emits rows in on-disk top-to-bottom order),
// followed by raw B,G,R bytes per pixel, no compression.
func WriteTGA[T geom.Real](w io.Writer, r *Raster[geom.RGBColor[T]]) error {
	bw := bufio.NewWriter(w)

	header := [tgaHeaderSize]byte{
		0, 0, 2, // id length, color map type, image type (2 = uncompressed RGB)
		0, 0, 0, 0, 0, // color map spec (unused)
		0, 0, 0, 0, // x/y origin
	}
	width, height := r.Width(), r.Height()
	header[12] = byte(width & 0xff)
	header[13] = byte((width >> 8) & 0xff)
	header[14] = byte(height & 0xff)
	header[15] = byte((height >> 8) & 0xff)
	header[16] = 24 // pixel size
	header[17] = 32 // attributes: top-left origin

	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, err := r.At(x, y)
			if err != nil {
				return err
			}
			if err := bw.WriteByte(to8Bit(c.B)); err != nil {
				return err
			}
			if err := bw.WriteByte(to8Bit(c.G)); err != nil {
				return err
			}
			if err := bw.WriteByte(to8Bit(c.R)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ReadTGA decodes an uncompressed 24-bit targa image, flipping rows to
// top-to-bottom order if the attribute byte indicates a bottom-left
// origin (attribute == 0).
func ReadTGA[T geom.Real](r io.Reader) (*Raster[geom.RGBColor[T]], error) {
	header := make([]byte, tgaHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, parseError("ReadTGA: short header: %v", err)
	}
	if header[2] != 2 {
		return nil, parseError("ReadTGA: unsupported image type %d, want 2 (uncompressed RGB)", header[2])
	}
	width := int(header[12]) | int(header[13])<<8
	height := int(header[14]) | int(header[15])<<8
	if width <= 0 || height <= 0 {
		return nil, parseError("ReadTGA: invalid dimensions %dx%d", width, height)
	}
	pixelSize := header[16]
	attribute := header[17]
	if pixelSize != 24 || (attribute != 32 && attribute != 0) {
		return nil, parseError("ReadTGA: unsupported pixel size %d / attribute %d", pixelSize, attribute)
	}
	flip := attribute == 0

	out := New[geom.RGBColor[T]](width, height)
	br := bufio.NewReader(r)
	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, parseError("ReadTGA: truncated pixel data at row %d: %v", y, err)
		}
		destY := y
		if flip {
			destY = height - 1 - y
		}
		for x := 0; x < width; x++ {
			b, g, rr := row[x*3], row[x*3+1], row[x*3+2]
			out.Set(x, destY, geom.RGBColor[T]{R: from8Bit[T](rr), G: from8Bit[T](g), B: from8Bit[T](b)})
		}
	}
	return out, nil
}
