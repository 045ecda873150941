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

// Triangle is a plane bounded to the parallelogram half spanned by its u
// and v tangent vectors: the set where u>0, v>0 and u+v<1.
type Triangle[T geom.Real] struct {
	*Plane[T]
}

// NewTriangle builds the triangle with corners c1, c2, c3.
func NewTriangle[T geom.Real](c1, c2, c3 geom.Point3[T]) *Triangle[T] {
	return &Triangle[T]{Plane: NewPlaneThroughPoints(c1, c2, c3)}
}

// Inside reports whether p lies within the triangle's barycentric region.
func (tr *Triangle[T]) Inside(p geom.Point3[T]) bool {
	uv, ok := tr.extractUV(p)
	if !ok {
		return false
	}
	return uv.X > 0 && uv.Y > 0 && uv.X+uv.Y < 1
}

// IntersectsSphere reports whether any corner of the triangle lies inside
// the sphere.
func (tr *Triangle[T]) IntersectsSphere(center geom.Point3[T], radius T) bool {
	corners := [3]geom.Point3[T]{
		tr.Point,
		tr.Point.Add(tr.UVector),
		tr.Point.Add(tr.VVector),
	}
	for _, c := range corners {
		if squaredLength(c.Sub(center)) <= radius*radius {
			return true
		}
	}
	return false
}

// IntersectsPlane reports whether any of the triangle's 3 edges crosses
// the other plane.
func (tr *Triangle[T]) IntersectsPlane(origin geom.Point3[T], normal geom.Vector3[T]) bool {
	p1 := tr.Point
	p2 := tr.Point.Add(tr.UVector)
	p3 := tr.Point.Add(tr.VVector)
	other := NewPlane(origin, normal)

	var unused T
	edges := [3]line.UnitLine3[T]{
		line.NewUnitLine3Segment(p1, p2),
		line.NewUnitLine3Segment(p1, p3),
		line.NewUnitLine3Segment(p2, p3),
	}
	for _, e := range edges {
		if other.QuickIntersection(e, 0, &unused) {
			return true
		}
	}
	return false
}

// IntersectsLine performs the full intersection query, delegating to the
// base plane for the geometric solve and rejecting hits outside the
// triangle's barycentric region.
func (tr *Triangle[T]) IntersectsLine(l line.UnitLine3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	if !reqs.Satisfiable(tr.IntersectionCapabilities()) {
		return false
	}
	var tmp isect.Info[T]
	tmpReqs := reqs
	tmpReqs.ForceUV = true
	if !tr.Plane.IntersectsLine(l, &tmp, tmpReqs) {
		return false
	}
	if !tmp.HaveUV() {
		return false
	}
	uv := tmp.UV()
	if !(uv.X > 0 && uv.Y > 0 && uv.X+uv.Y < 1) {
		return false
	}
	tmp.SetShape(tr)
	*info = tmp
	return true
}

// IntersectsRay adapts the ray contract, discarding the time component.
func (tr *Triangle[T]) IntersectsRay(r line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	return defaultIntersectsRay[T](tr, r, info, reqs)
}

// QuickIntersection fills only distance, using the unchecked UV extractor
// since the hit point is guaranteed to lie on the plane already.
func (tr *Triangle[T]) QuickIntersection(l line.UnitLine3[T], time T, distance *T) bool {
	var planeDist T
	if !tr.Plane.QuickIntersection(l, time, &planeDist) {
		return false
	}
	p := l.PointAt(planeDist)
	uv := tr.extractUVUnchecked(p)
	if uv.X > 0 && uv.Y > 0 && uv.X+uv.Y < 1 {
		*distance = planeDist
		return true
	}
	return false
}

// IntersectionCapabilities matches the underlying plane's.
func (tr *Triangle[T]) IntersectionCapabilities() capability.Intersection {
	return tr.Plane.IntersectionCapabilities()
}

// ObjectCapabilities reports a triangle's intrinsic properties: unlike an
// infinite plane it is boundable and admits polygonization.
func (tr *Triangle[T]) ObjectCapabilities() capability.Object {
	caps := tr.Plane.ObjectCapabilities()
	caps &^= capability.NotFinite
	caps |= capability.Boundable | capability.Polygonization
	return caps
}

func (tr *Triangle[T]) Name() string { return "triangle" }

// InternalMembers renders the triangle's fields for debugging/inspection.
func (tr *Triangle[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	return tr.Plane.InternalMembers(indentation, prefixWithClassName)
}
