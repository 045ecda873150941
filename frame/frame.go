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

// Package frame implements orthonormal bases and the coordinate frames
// built on top of them, used to move points, vectors and raw coordinate
// triples between a shape's local space and the world.
package frame

import "github.com/nthery/amethyst/geom"

// ONB is a set of three mutually perpendicular unit vectors u, v, w.
type ONB[T geom.Real] struct {
	u, v, w geom.Vector3[T]
}

// NewAxisAlignedONB returns the basis aligned with the world axes:
// u=(1,0,0), v=(0,1,0), w=(0,0,1).
func NewAxisAlignedONB[T geom.Real]() ONB[T] {
	return ONB[T]{
		u: geom.Vector3[T]{X: 1},
		v: geom.Vector3[T]{Y: 1},
		w: geom.Vector3[T]{Z: 1},
	}
}

// NewONBFromW builds a basis where only the direction of w matters; u and v
// are arbitrary vectors completing the right-handed triple.
func NewONBFromW[T geom.Real](a geom.Vector3[T]) ONB[T] {
	w := a.Unit()
	v := geom.PerpVector(w)
	u := v.Cross(w)
	return ONB[T]{u: u, v: v, w: w}
}

// NewONBFromWV builds a basis where a is in the direction of w, b is in the
// direction of v, and u is the normal to the plane they define.
func NewONBFromWV[T geom.Real](a, b geom.Vector3[T]) ONB[T] {
	w := a.Unit()
	v := b.Unit()
	u := v.Cross(w)
	return ONB[T]{u: u, v: v, w: w}
}

// NewONBFromUVW builds a basis where all three axes are fully specified.
func NewONBFromUVW[T geom.Real](a, b, c geom.Vector3[T]) ONB[T] {
	return ONB[T]{u: a.Unit(), v: b.Unit(), w: c.Unit()}
}

func (b ONB[T]) U() geom.Vector3[T] { return b.u }
func (b ONB[T]) V() geom.Vector3[T] { return b.v }
func (b ONB[T]) W() geom.Vector3[T] { return b.w }

// IntoVector converts a world-space vector into this basis' local space.
func (b ONB[T]) IntoVector(v geom.Vector3[T]) geom.Vector3[T] {
	return geom.Vector3[T]{X: v.Dot(b.u), Y: v.Dot(b.v), Z: v.Dot(b.w)}
}

// OutofVector converts a local-space vector back into world space.
func (b ONB[T]) OutofVector(v geom.Vector3[T]) geom.Vector3[T] {
	return b.u.Scale(v.X).Add(b.v.Scale(v.Y)).Add(b.w.Scale(v.Z))
}

// Frame is a complete coordinate system: an orthonormal basis plus an
// origin. It supports only rotation and translation, never skew or scale.
type Frame[T geom.Real] struct {
	basis  ONB[T]
	origin geom.Point3[T]
}

// NewFrame builds a frame whose w axis points along w and whose origin is
// origin; u and v are chosen arbitrarily to complete the basis.
func NewFrame[T geom.Real](origin geom.Point3[T], w geom.Vector3[T]) Frame[T] {
	return Frame[T]{basis: NewONBFromW(w), origin: origin}
}

// NewFrameWV builds a frame from an origin and two vectors defining the
// w/v plane, as in NewONBFromWV.
func NewFrameWV[T geom.Real](origin geom.Point3[T], a, b geom.Vector3[T]) Frame[T] {
	return Frame[T]{basis: NewONBFromWV(a, b), origin: origin}
}

// NewFrameUVW builds a frame from an origin and three fully specified axes.
func NewFrameUVW[T geom.Real](origin geom.Point3[T], a, b, c geom.Vector3[T]) Frame[T] {
	return Frame[T]{basis: NewONBFromUVW(a, b, c), origin: origin}
}

func (f Frame[T]) Basis() ONB[T]          { return f.basis }
func (f Frame[T]) Origin() geom.Point3[T] { return f.origin }
func (f Frame[T]) U() geom.Vector3[T]     { return f.basis.u }
func (f Frame[T]) V() geom.Vector3[T]     { return f.basis.v }
func (f Frame[T]) W() geom.Vector3[T]     { return f.basis.w }

// TransformVector rotates v from world space into this frame's local space.
func (f Frame[T]) TransformVector(v geom.Vector3[T]) geom.Vector3[T] {
	return f.basis.IntoVector(v)
}

// TransformPoint moves p from world space into this frame's local space.
func (f Frame[T]) TransformPoint(p geom.Point3[T]) geom.Point3[T] {
	v := p.Sub(f.origin)
	return geom.PointFromVector(f.basis.IntoVector(v))
}

// InverseTransformVector rotates v from this frame's local space back into
// world space.
func (f Frame[T]) InverseTransformVector(v geom.Vector3[T]) geom.Vector3[T] {
	return f.basis.OutofVector(v)
}

// InverseTransformPoint moves p from this frame's local space back into
// world space.
func (f Frame[T]) InverseTransformPoint(p geom.Point3[T]) geom.Point3[T] {
	v := f.basis.OutofVector(p.AsVector())
	return f.origin.Add(v)
}

// InverseTransformNormal rotates a normal from local into world space and
// renormalizes it; normals are rotated only, never scaled or skewed.
func (f Frame[T]) InverseTransformNormal(n geom.Vector3[T]) geom.Vector3[T] {
	return f.InverseTransformVector(n).Unit()
}

// Combined returns the single frame equivalent to applying inner first and
// then outer.
func Combined[T geom.Real](outer, inner Frame[T]) Frame[T] {
	return NewFrameUVW(
		outer.InverseTransformPoint(inner.Origin()),
		outer.InverseTransformVector(inner.U()),
		outer.InverseTransformVector(inner.V()),
		outer.InverseTransformVector(inner.W()),
	)
}
