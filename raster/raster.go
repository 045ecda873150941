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

// Package raster implements a row-major 2D pixel buffer with bounds-checked
// access and scanline assignment, plus PPM and TGA encoders/decoders.
package raster

import "fmt"

// ErrorKind classifies a raster error, mirroring the exception hierarchy the
// original raster/image_io headers threw (out_of_range, size_mismatch,
// parse_error) as a Go error instead of a panic.
type ErrorKind int

const (
	OutOfRange ErrorKind = iota
	SizeMismatch
	ParseError
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "out of range"
	case SizeMismatch:
		return "size mismatch"
	case ParseError:
		return "parse error"
	default:
		return "unknown raster error"
	}
}

// Error is the error type every raster/image-IO operation in this package
// returns; Kind lets callers distinguish a bad index from a malformed file
// without parsing the message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("raster: %s: %s", e.Kind, e.Message) }

func outOfRange(format string, args ...any) error {
	return &Error{Kind: OutOfRange, Message: fmt.Sprintf(format, args...)}
}

func sizeMismatch(format string, args ...any) error {
	return &Error{Kind: SizeMismatch, Message: fmt.Sprintf(format, args...)}
}

func parseError(format string, args ...any) error {
	return &Error{Kind: ParseError, Message: fmt.Sprintf(format, args...)}
}

// Raster is a row-major 2D buffer of T, data[y*width+x]. Unlike the
// original's raster<T>, out-of-range access is a returned error rather
// than a thrown exception, matching the core's exception-free style.
type Raster[T any] struct {
	width, height int
	data           []T
}

// New allocates a width by height raster with every element at T's zero
// value.
func New[T any](width, height int) *Raster[T] {
	if width <= 0 || height <= 0 {
		return &Raster[T]{}
	}
	return &Raster[T]{width: width, height: height, data: make([]T, width*height)}
}

func (r *Raster[T]) Width() int  { return r.width }
func (r *Raster[T]) Height() int { return r.height }

// Empty reports whether the raster holds no data.
func (r *Raster[T]) Empty() bool { return len(r.data) == 0 }

func (r *Raster[T]) inRange(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// At returns the element at (x,y).
func (r *Raster[T]) At(x, y int) (T, error) {
	if !r.inRange(x, y) {
		var zero T
		return zero, outOfRange("At(%d,%d): index out of range for %dx%d raster", x, y, r.width, r.height)
	}
	return r.data[x+y*r.width], nil
}

// Set writes v at (x,y).
func (r *Raster[T]) Set(x, y int, v T) error {
	if !r.inRange(x, y) {
		return outOfRange("Set(%d,%d): index out of range for %dx%d raster", x, y, r.width, r.height)
	}
	r.data[x+y*r.width] = v
	return nil
}

// SetPixel is the unchecked Framebuffer-compatible sibling of Set: out of
// range writes are silently dropped rather than erroring, so Raster can
// satisfy render.Framebuffer's SetPixel signature without threading an
// error back through the pixel loop.
func (r *Raster[T]) SetPixel(x, y int, v T) {
	if r.inRange(x, y) {
		r.data[x+y*r.width] = v
	}
}

// Raw exposes the backing slice for read-only bulk access (encoders,
// contiguous reinterpretation). Mutating the returned slice mutates the
// raster.
func (r *Raster[T]) Raw() []T { return r.data }

// Scanline is a view onto one row of a raster, letting row-wise code index
// without repeating the y coordinate.
type Scanline[T any] struct {
	raster *Raster[T]
	row    int
}

// Scanline returns a view onto row y.
func (r *Raster[T]) Scanline(y int) (Scanline[T], error) {
	if y < 0 || y >= r.height {
		return Scanline[T]{}, outOfRange("Scanline(%d): index out of range for height %d", y, r.height)
	}
	return Scanline[T]{raster: r, row: y}, nil
}

func (s Scanline[T]) At(x int) (T, error)    { return s.raster.At(x, s.row) }
func (s Scanline[T]) Set(x int, v T) error   { return s.raster.Set(x, s.row, v) }
func (s Scanline[T]) Width() int             { return s.raster.width }

// AssignScanline copies src's row srcY into dst's row dstY; the two
// rasters must have equal width.
func AssignScanline[T any](dst *Raster[T], dstY int, src *Raster[T], srcY int) error {
	if dst.width != src.width {
		return sizeMismatch("AssignScanline: widths differ (%d vs %d)", dst.width, src.width)
	}
	srcLine, err := src.Scanline(srcY)
	if err != nil {
		return err
	}
	dstLine, err := dst.Scanline(dstY)
	if err != nil {
		return err
	}
	for x := 0; x < dst.width; x++ {
		v, err := srcLine.At(x)
		if err != nil {
			return err
		}
		if err := dstLine.Set(x, v); err != nil {
			return err
		}
	}
	return nil
}

// SubRaster returns a new raster holding the inclusive rectangle
// (x1,y1)-(x2,y2) copied out of r.
func SubRaster[T any](r *Raster[T], x1, y1, x2, y2 int) (*Raster[T], error) {
	if !r.inRange(x1, y1) || !r.inRange(x2, y2) {
		return nil, outOfRange("SubRaster(%d,%d,%d,%d): index out of range for %dx%d raster", x1, y1, x2, y2, r.width, r.height)
	}
	if x1 > x2 || y1 > y2 {
		return nil, outOfRange("SubRaster(%d,%d,%d,%d): dimensions incorrectly ordered", x1, y1, x2, y2)
	}
	xRange := x2 - x1 + 1
	yRange := y2 - y1 + 1
	out := New[T](xRange, yRange)
	for y := 0; y < yRange; y++ {
		for x := 0; x < xRange; x++ {
			v, _ := r.At(x+x1, y+y1)
			out.Set(x, y, v)
		}
	}
	return out, nil
}
