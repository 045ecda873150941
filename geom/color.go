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

package geom

// RGBColor is a linear, unclamped RGB color. Unlike Vector3 its
// multiplication by another color is always componentwise (Hadamard); there
// is no cross product or notion of length.
type RGBColor[T Real] struct {
	R, G, B T
}

// Black is the zero color, the default additive identity used as the
// accumulator seed throughout the renderer.
func Black[T Real]() RGBColor[T] { return RGBColor[T]{} }

// White is the color with every channel at full intensity.
func White[T Real]() RGBColor[T] { return RGBColor[T]{1, 1, 1} }

func (c RGBColor[T]) Add(o RGBColor[T]) RGBColor[T] {
	return RGBColor[T]{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c RGBColor[T]) Sub(o RGBColor[T]) RGBColor[T] {
	return RGBColor[T]{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul is the Hadamard (componentwise) product of two colors, distinct from
// Scale which multiplies every channel by the same scalar.
func (c RGBColor[T]) Mul(o RGBColor[T]) RGBColor[T] {
	return RGBColor[T]{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c RGBColor[T]) Scale(s T) RGBColor[T] {
	return RGBColor[T]{c.R * s, c.G * s, c.B * s}
}

func (c RGBColor[T]) Div(s T) RGBColor[T] {
	r := 1 / s
	return RGBColor[T]{c.R * r, c.G * r, c.B * r}
}

// Clamp returns c with every channel restricted to [lo, hi].
func (c RGBColor[T]) Clamp(lo, hi T) RGBColor[T] {
	clampOne := func(v T) T {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	return RGBColor[T]{clampOne(c.R), clampOne(c.G), clampOne(c.B)}
}

// Lerp linearly interpolates between c and o, t=0 returning c and t=1
// returning o, used by the default sky-gradient background.
func (c RGBColor[T]) Lerp(o RGBColor[T], t T) RGBColor[T] {
	return c.Scale(1 - t).Add(o.Scale(t))
}
