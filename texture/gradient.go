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

import "github.com/nthery/amethyst/geom"

// Gradient is a piecewise-linear interpolation across an ordered list of
// colors evenly spaced across [0,1], used by the noise and marble
// procedural textures to turn a scalar noise value into a color.
type Gradient[T geom.Real] struct {
	stops []geom.RGBColor[T]
}

// NewGradient builds a gradient from two or more color stops.
func NewGradient[T geom.Real](stops ...geom.RGBColor[T]) Gradient[T] {
	return Gradient[T]{stops: stops}
}

// At returns the interpolated color at t, clamped to [0,1].
func (g Gradient[T]) At(t T) geom.RGBColor[T] {
	if len(g.stops) == 0 {
		return geom.Black[T]()
	}
	if len(g.stops) == 1 {
		return g.stops[0]
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	segments := T(len(g.stops) - 1)
	scaled := t * segments
	idx := int(scaled)
	if idx >= len(g.stops)-1 {
		idx = len(g.stops) - 2
	}
	local := scaled - T(idx)
	return g.stops[idx].Lerp(g.stops[idx+1], local)
}
