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

// Package geom defines the fixed-dimension numeric vector/point/color
// algebra shared by every higher layer of the ray tracer: coord2/3 are the
// plain storage substrate, point2/3 and vector2/3 are semantic wrappers
// that keep affine locations and free directions from being mixed up, and
// rgbcolor is the color arithmetic type.
package geom

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Real is the scalar type every algebra, shape and color type in this
// module is generic over.
type Real interface {
	constraints.Float
}

// Epsilon is the default numerical tolerance used throughout the geometry
// and shape packages for containment and near-zero tests.
const Epsilon = 1e-10

// FloatsEqual reports whether lhs and rhs are within epsilon of each other.
func FloatsEqual[T Real](lhs, rhs, epsilon T) bool {
	d := lhs - rhs
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

// RandomUnitSphereSample returns a vector uniformly distributed in the unit
// ball via rejection sampling.
func RandomUnitSphereSample[T Real](rng *rand.Rand) Vector3[T] {
	for {
		v := Vector3[T]{
			X: T(rng.Float64())*2 - 1,
			Y: T(rng.Float64())*2 - 1,
			Z: T(rng.Float64())*2 - 1,
		}
		if v.Dot(v) < 1 {
			return v
		}
	}
}
