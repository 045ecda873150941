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

// Point2 is an affine location in the plane. Subtracting two points yields a
// Vector2; adding a Vector2 to a point yields a point. Points are never
// implicitly convertible to vectors.
type Point2[T Real] struct {
	X, Y T
}

// Point3 is an affine location in space.
type Point3[T Real] struct {
	X, Y, Z T
}

func (p Point2[T]) Add(v Vector2[T]) Point2[T]    { return Point2[T]{p.X + v.X, p.Y + v.Y} }
func (p Point2[T]) Sub(o Point2[T]) Vector2[T]    { return Vector2[T]{p.X - o.X, p.Y - o.Y} }
func (p Point2[T]) SubVec(v Vector2[T]) Point2[T] { return Point2[T]{p.X - v.X, p.Y - v.Y} }

func (p Point3[T]) Add(v Vector3[T]) Point3[T] { return Point3[T]{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }
func (p Point3[T]) Sub(o Point3[T]) Vector3[T] {
	return Vector3[T]{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}
func (p Point3[T]) SubVec(v Vector3[T]) Point3[T] {
	return Point3[T]{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Get returns the i'th component (0=X, 1=Y, 2=Z).
func (p Point3[T]) Get(i int) T {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// AsVector reinterprets the point as a vector from the origin, the one
// documented escape hatch for mixing the two (e.g. ONB transforms).
func (p Point3[T]) AsVector() Vector3[T] { return Vector3[T]{p.X, p.Y, p.Z} }

// PointFromVector builds a point from a vector relative to the origin.
func PointFromVector[T Real](v Vector3[T]) Point3[T] { return Point3[T]{v.X, v.Y, v.Z} }

// SquaredLength returns the squared length of a vector, a free function
// matching the original engine's `squared_length` helper used throughout
// the shape contract for epsilon-adjusted containment tests.
func SquaredLength[T Real](v Vector3[T]) T { return v.Dot(v) }
