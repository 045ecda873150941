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

package shape

import (
	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

// Rectangle is a plane bounded to the parallelogram spanned by its u and v
// tangent vectors: the set where 0<u<1 and 0<v<1.
type Rectangle[T geom.Real] struct {
	*Plane[T]
}

// NewRectangle builds the rectangle anchored at p spanned by u and v.
func NewRectangle[T geom.Real](p geom.Point3[T], u, v geom.Vector3[T]) *Rectangle[T] {
	return &Rectangle[T]{Plane: NewPlaneUV(p, u, v)}
}

// Inside reports whether p lies within the rectangle's (u,v) region.
func (r *Rectangle[T]) Inside(p geom.Point3[T]) bool {
	uv, ok := r.extractUV(p)
	if !ok {
		return false
	}
	return uv.X > 0 && uv.Y > 0 && uv.X < 1 && uv.Y < 1
}

// IntersectsSphere reports whether any of the rectangle's 4 corners lies
// inside the sphere.
func (r *Rectangle[T]) IntersectsSphere(center geom.Point3[T], radius T) bool {
	p1 := r.Point
	p2 := r.Point.Add(r.UVector)
	p4 := r.Point.Add(r.VVector)
	p3 := p2.Add(r.VVector)
	corners := [4]geom.Point3[T]{p1, p2, p3, p4}
	for _, c := range corners {
		if squaredLength(c.Sub(center)) <= radius*radius {
			return true
		}
	}
	return false
}

// IntersectsPlane reports whether any of the rectangle's 4 edges or 2
// diagonals crosses the other plane.
func (r *Rectangle[T]) IntersectsPlane(origin geom.Point3[T], normal geom.Vector3[T]) bool {
	p1 := r.Point
	p2 := r.Point.Add(r.UVector)
	p4 := r.Point.Add(r.VVector)
	p3 := p2.Add(r.VVector)
	other := NewPlane(origin, normal)

	var unused T
	segments := [6][2]geom.Point3[T]{
		{p1, p2}, {p1, p4}, {p2, p3}, {p4, p3}, {p2, p4}, {p1, p3},
	}
	for _, seg := range segments {
		if other.QuickIntersection(line.NewUnitLine3Segment(seg[0], seg[1]), 0, &unused) {
			return true
		}
	}
	return false
}

// IntersectsLine performs the full intersection query, delegating to the
// base plane and rejecting hits outside the rectangle's (u,v) region.
func (r *Rectangle[T]) IntersectsLine(l line.UnitLine3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	if !reqs.Satisfiable(r.IntersectionCapabilities()) {
		return false
	}
	var tmp isect.Info[T]
	tmpReqs := reqs
	tmpReqs.ForceUV = true
	if !r.Plane.IntersectsLine(l, &tmp, tmpReqs) {
		return false
	}
	if !tmp.HaveUV() {
		return false
	}
	uv := tmp.UV()
	if !(uv.X > 0 && uv.Y > 0 && uv.X < 1 && uv.Y < 1) {
		return false
	}
	tmp.SetShape(r)
	*info = tmp
	return true
}

// IntersectsRay adapts the ray contract, discarding the time component.
func (r *Rectangle[T]) IntersectsRay(ray line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	return defaultIntersectsRay[T](r, ray, info, reqs)
}

// QuickIntersection fills only distance.
func (r *Rectangle[T]) QuickIntersection(l line.UnitLine3[T], time T, distance *T) bool {
	var planeDist T
	if !r.Plane.QuickIntersection(l, time, &planeDist) {
		return false
	}
	uv := r.extractUVUnchecked(l.PointAt(planeDist))
	if uv.X > 0 && uv.Y > 0 && uv.X < 1 && uv.Y < 1 {
		*distance = planeDist
		return true
	}
	return false
}

// IntersectionCapabilities matches the underlying plane's.
func (r *Rectangle[T]) IntersectionCapabilities() capability.Intersection {
	return r.Plane.IntersectionCapabilities()
}

// ObjectCapabilities reports a rectangle's intrinsic properties: bounded
// and polygonizable unlike the infinite plane it derives from.
func (r *Rectangle[T]) ObjectCapabilities() capability.Object {
	caps := r.Plane.ObjectCapabilities()
	caps &^= capability.NotFinite
	caps |= capability.Boundable | capability.Polygonization
	return caps
}

func (r *Rectangle[T]) Name() string { return "rectangle" }

// InternalMembers renders the rectangle's fields for debugging/inspection.
func (r *Rectangle[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	return r.Plane.InternalMembers(indentation, prefixWithClassName)
}
