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
	"fmt"
	"math"

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

// Disc is a plane bounded to the circular region of given radius around
// its origin.
type Disc[T geom.Real] struct {
	*Plane[T]
	Radius        T
	radiusSquared T
}

// NewDisc builds a disc centered at p with the given radius and normal.
func NewDisc[T geom.Real](p geom.Point3[T], radius T, normal geom.Vector3[T]) *Disc[T] {
	return &Disc[T]{Plane: NewPlane(p, normal), Radius: radius, radiusSquared: radius * radius}
}

// NewDiscWithU builds a disc with an explicit u tangent vector, letting
// the caller control the disc's (u,v) orientation for texture mapping.
func NewDiscWithU[T geom.Real](p geom.Point3[T], radius T, normal, u geom.Vector3[T]) *Disc[T] {
	n := normal.Unit()
	uu := u.Unit()
	v := n.Cross(uu)
	return &Disc[T]{Plane: NewPlaneUV(p, uu, v), Radius: radius, radiusSquared: radius * radius}
}

// Inside reports whether p lies within the disc's radius, in-plane.
func (d *Disc[T]) Inside(p geom.Point3[T]) bool {
	uv, ok := d.extractUV(p)
	if !ok {
		return false
	}
	return uv.X*uv.X+uv.Y*uv.Y < d.radiusSquared
}

// IntersectsSphere reports whether the sphere reaches within radius of the
// disc, via a Pythagorean projection of the sphere onto the disc's plane.
func (d *Disc[T]) IntersectsSphere(center geom.Point3[T], radius T) bool {
	sv := center.Sub(d.Point)
	projectedN := sv.Dot(d.Normal)
	projectedNSquared := projectedN * projectedN
	sphereRadiusSquared := radius * radius

	if sphereRadiusSquared < projectedNSquared {
		return false
	}
	projectedRadius := T(math.Sqrt(float64(sphereRadiusSquared - projectedNSquared)))

	projU := sv.Dot(d.UVector)
	projV := sv.Dot(d.VVector)
	distToProjectedCenter := T(math.Sqrt(float64(projU*projU + projV*projV)))

	return d.Radius+projectedRadius+T(Epsilon) > distToProjectedCenter
}

// IntersectsPlane reports whether the other plane crosses within radius of
// the disc's origin. The original engine left this as an unimplemented
// stub; a non-parallel plane always crosses the disc's own plane along a
// line, so the disc intersects it iff that line passes within radius+eps
// of the disc's projected origin.
func (d *Disc[T]) IntersectsPlane(origin geom.Point3[T], normal geom.Vector3[T]) bool {
	n1, n2 := d.Normal, normal.Unit()
	dir := n1.Cross(n2)
	lenSq := dir.Dot(dir)
	if lenSq < T(Epsilon)*T(Epsilon) {
		// Parallel planes: they only "intersect" the disc if the two origin
		// points coincide.
		return squaredLength(d.Point.Sub(origin)) < T(Epsilon)
	}

	// A point on both planes: solve the 2-plane linear system restricted to
	// the plane spanned by n1 and n2 (the classical two-plane intersection
	// formula).
	d1 := d.Point.Sub(geom.Point3[T]{}).Dot(n1)
	d2 := origin.Sub(geom.Point3[T]{}).Dot(n2)
	n1n2 := n1.Dot(n2)
	det := 1 - n1n2*n1n2
	c1 := (d1 - d2*n1n2) / det
	c2 := (d2 - d1*n1n2) / det
	p0 := geom.PointFromVector(n1.Scale(c1).Add(n2.Scale(c2)))

	// Distance from the disc's origin to that line.
	toOrigin := d.Point.Sub(p0)
	dirUnit := dir.Div(T(math.Sqrt(float64(lenSq))))
	perp := toOrigin.Sub(dirUnit.Scale(toOrigin.Dot(dirUnit)))
	return perp.Length() < d.Radius+T(Epsilon)
}

func (d *Disc[T]) intersectLineUV(l line.UnitLine3[T]) (T, geom.Point3[T], bool) {
	t, ok := d.intersectLine(l)
	if !ok {
		return 0, geom.Point3[T]{}, false
	}
	return t, l.PointAt(t), true
}

// IntersectsLine performs the full intersection query.
func (d *Disc[T]) IntersectsLine(l line.UnitLine3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	if !reqs.Satisfiable(d.IntersectionCapabilities()) {
		return false
	}
	t, hit, ok := d.intersectLineUV(l)
	if !ok {
		return false
	}
	uv := d.extractUVUnchecked(hit)
	if !(uv.X*uv.X+uv.Y*uv.Y < d.radiusSquared+T(Epsilon)) {
		return false
	}
	recordHit[T](info, reqs, d, t, hit, l,
		func() geom.Vector3[T] { return d.Normal },
		func() (geom.Vector2[T], bool) { return uv, true },
	)
	return true
}

// IntersectsRay adapts the ray contract, discarding the time component.
func (d *Disc[T]) IntersectsRay(r line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	return defaultIntersectsRay[T](d, r, info, reqs)
}

// QuickIntersection fills only distance.
func (d *Disc[T]) QuickIntersection(l line.UnitLine3[T], time T, distance *T) bool {
	var planeDist T
	if !d.Plane.QuickIntersection(l, time, &planeDist) {
		return false
	}
	interV := d.Point.Sub(l.PointAt(planeDist))
	if interV.Dot(interV) < d.radiusSquared+T(Epsilon) {
		*distance = planeDist
		return true
	}
	return false
}

// IntersectionCapabilities matches the underlying plane's.
func (d *Disc[T]) IntersectionCapabilities() capability.Intersection {
	return d.Plane.IntersectionCapabilities()
}

// ObjectCapabilities reports a disc's intrinsic properties: bounded and
// polygonizable unlike the infinite plane it derives from.
func (d *Disc[T]) ObjectCapabilities() capability.Object {
	caps := d.Plane.ObjectCapabilities()
	caps &^= capability.NotFinite
	caps |= capability.Boundable | capability.Polygonization
	return caps
}

func (d *Disc[T]) Name() string { return "disc" }

// InternalMembers renders the disc's fields for debugging/inspection.
func (d *Disc[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	base := d.Plane.InternalMembers(indentation, true)
	return fmt.Sprintf("%s radius=%v", base, d.Radius)
}
