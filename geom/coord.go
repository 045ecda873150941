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

// Coord2 is a bare container of 2 scalars, the storage substrate for
// Point2 and Vector2. It carries no affine-vs-linear semantics of its own.
type Coord2[T Real] struct {
	X, Y T
}

// Coord3 is a bare container of 3 scalars, the storage substrate for
// Point3 and Vector3.
type Coord3[T Real] struct {
	X, Y, Z T
}

// Get returns the i'th component (0=X, 1=Y).
func (c Coord2[T]) Get(i int) T {
	if i == 0 {
		return c.X
	}
	return c.Y
}

// Set returns a copy of c with its i'th component replaced.
func (c Coord2[T]) Set(i int, v T) Coord2[T] {
	switch i {
	case 0:
		c.X = v
	default:
		c.Y = v
	}
	return c
}

// Get returns the i'th component (0=X, 1=Y, 2=Z).
func (c Coord3[T]) Get(i int) T {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// Set returns a copy of c with its i'th component replaced.
func (c Coord3[T]) Set(i int, v T) Coord3[T] {
	switch i {
	case 0:
		c.X = v
	case 1:
		c.Y = v
	default:
		c.Z = v
	}
	return c
}
