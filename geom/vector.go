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

import "math"

// Vector2 is a free vector in the plane: it supports scale, dot product and
// unit-length normalization, but not affine point arithmetic.
type Vector2[T Real] struct {
	X, Y T
}

// Vector3 is a free vector in space.
type Vector3[T Real] struct {
	X, Y, Z T
}

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vector2[T]) Scale(s T) Vector2[T]        { return Vector2[T]{v.X * s, v.Y * s} }
func (v Vector2[T]) Div(s T) Vector2[T]          { r := 1 / s; return Vector2[T]{v.X * r, v.Y * r} }
func (v Vector2[T]) Negate() Vector2[T]          { return Vector2[T]{-v.X, -v.Y} }
func (v Vector2[T]) Dot(o Vector2[T]) T          { return v.X*o.X + v.Y*o.Y }
func (v Vector2[T]) Length() T                   { return T(math.Sqrt(float64(v.Dot(v)))) }
func (v Vector2[T]) Unit() Vector2[T]            { return v.Div(v.Length()) }

func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}
func (v Vector3[T]) Scale(s T) Vector3[T] { return Vector3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3[T]) Div(s T) Vector3[T] {
	r := 1 / s
	return Vector3[T]{v.X * r, v.Y * r, v.Z * r}
}
func (v Vector3[T]) Negate() Vector3[T] { return Vector3[T]{-v.X, -v.Y, -v.Z} }
func (v Vector3[T]) Dot(o Vector3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}
func (v Vector3[T]) Length() T        { return T(math.Sqrt(float64(v.Dot(v)))) }
func (v Vector3[T]) SquaredLength() T { return v.Dot(v) }
func (v Vector3[T]) Unit() Vector3[T] { return v.Div(v.Length()) }

// Reflect mirrors v about the plane whose normal is n, assuming n is unit
// length. Used to compute the specular bounce of an incident ray direction
// off a surface normal.
func (v Vector3[T]) Reflect(n Vector3[T]) Vector3[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Get returns the i'th component (0=X, 1=Y, 2=Z).
func (v Vector3[T]) Get(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Set returns a copy of v with its i'th component replaced.
func (v Vector3[T]) Set(i int, val T) Vector3[T] {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// AbsGreatest returns the index (0,1,2) of the component with greatest
// absolute value.
func (v Vector3[T]) AbsGreatest() int {
	ax, ay, az := abs(v.X), abs(v.Y), abs(v.Z)
	if az > ay && az > ax {
		return 2
	}
	if ay > ax {
		return 1
	}
	return 0
}

// MinAbsIndex returns the index (0,1,2) of the component with smallest
// absolute value, matching the original engine's tie-break order
// (x before y before z).
func (v Vector3[T]) MinAbsIndex() int {
	ax, ay, az := abs(v.X), abs(v.Y), abs(v.Z)
	if ax <= ay {
		if ax <= az {
			return 0
		}
		return 2
	}
	if ay <= az {
		return 1
	}
	return 2
}

func abs[T Real](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// PerpVector returns an arbitrary unit vector perpendicular to v. It picks
// the coordinate of smallest absolute value and builds the perpendicular
// from the other two, so the result stays well-conditioned even when v is
// nearly axis-aligned.
func PerpVector[T Real](v Vector3[T]) Vector3[T] {
	u := v.Unit()
	switch u.MinAbsIndex() {
	case 0:
		return Vector3[T]{0, v.Z, -v.Y}.Unit()
	case 1:
		return Vector3[T]{v.Z, 0, -v.X}.Unit()
	default:
		return Vector3[T]{v.Y, -v.X, 0}.Unit()
	}
}

// PerpVector2 returns the unit vector perpendicular to v in the plane.
func PerpVector2[T Real](v Vector2[T]) Vector2[T] {
	return Vector2[T]{v.Y, -v.X}.Unit()
}

// BestPlanarProjection returns the two coordinate axes (0=X,1=Y,2=Z) onto
// which normal projects with the largest area, i.e. the two axes orthogonal
// to the normal's dominant component.
func BestPlanarProjection[T Real](normal Vector3[T]) (axis1, axis2 int) {
	az, ay, ax := abs(normal.Z), abs(normal.Y), abs(normal.X)
	if az > ay && az > ax {
		return 0, 1
	}
	if ay > ax {
		return 0, 2
	}
	return 1, 2
}

// indexToModify mirrors the original engine's lookup table: given the axis
// pair returned by BestPlanarProjection, it names the axis of that pair to
// bump by one when constructing a vector that is not parallel to normal.
var indexToModify = [3][3]int{{0, 0, 2}, {0, 0, 1}, {2, 1, 0}}

// CalculatePerpendicularVectors builds two orthonormal tangent vectors u, v
// such that (u, v, normal) forms a right-handed, mutually orthogonal set.
func CalculatePerpendicularVectors[T Real](normal Vector3[T]) (u, v Vector3[T]) {
	i1, i2 := BestPlanarProjection(normal)
	i3 := indexToModify[i1][i2]

	vn := normal
	vn = vn.Set(i3, vn.Get(i3)+1)

	v = normal.Cross(vn).Unit()
	u = v.Cross(normal).Unit()
	return u, v
}
