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

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

// Plane is an infinite flat surface carrying its own (u,v) tangent frame,
// used both standalone and as the base for triangle, disc and rectangle,
// which bound the plane's parameterization to a finite region.
type Plane[T geom.Real] struct {
	Point    geom.Point3[T]
	Normal   geom.Vector3[T]
	UVector  geom.Vector3[T]
	VVector  geom.Vector3[T]
	nzU, nzV int
}

// NewPlane builds a plane through p with the given normal, deriving an
// arbitrary orthogonal (u,v) tangent frame from it.
func NewPlane[T geom.Real](p geom.Point3[T], normal geom.Vector3[T]) *Plane[T] {
	n := normal.Unit()
	v := n.Cross(geom.PerpVector(n)).Unit()
	u := v.Cross(n)
	pl := &Plane[T]{Point: p, Normal: n, UVector: u, VVector: v}
	pl.setupNonZeroIndices()
	return pl
}

// NewPlaneUV builds a plane through p with explicit (possibly non-unit,
// non-orthogonal) u/v tangent vectors, the normal derived as their cross
// product. This is how triangle and rectangle construct their base plane.
func NewPlaneUV[T geom.Real](p geom.Point3[T], u, v geom.Vector3[T]) *Plane[T] {
	n := u.Cross(v).Unit()
	pl := &Plane[T]{Point: p, Normal: n, UVector: u, VVector: v}
	pl.setupNonZeroIndices()
	return pl
}

// NewPlaneThroughPoints builds the plane through three points, with u/v
// spanning p2-p1 and p3-p1.
func NewPlaneThroughPoints[T geom.Real](p1, p2, p3 geom.Point3[T]) *Plane[T] {
	return NewPlaneUV(p1, p2.Sub(p1), p3.Sub(p1))
}

func (p *Plane[T]) setupNonZeroIndices() {
	eps := T(Epsilon)
	p.nzU = 0
	for i := 0; i < 3; i++ {
		if abs(p.UVector.Get(i)) > eps {
			p.nzU = i
			break
		}
	}
	p.nzV = 0
	for i := 0; i < 3; i++ {
		if i == p.nzU {
			continue
		}
		if abs(p.VVector.Get(i)) > eps {
			p.nzV = i
			break
		}
	}
}

// Inside reports whether p lies on the plane within epsilon.
func (pl *Plane[T]) Inside(p geom.Point3[T]) bool {
	d := p.Sub(pl.Point).Dot(pl.Normal)
	eps := T(Epsilon)
	return d < eps && d > -eps
}

// IntersectsSphere reports whether the sphere crosses the plane.
func (pl *Plane[T]) IntersectsSphere(center geom.Point3[T], radius T) bool {
	d := center.Sub(pl.Point).Dot(pl.Normal)
	maxDist := radius + T(Epsilon)
	return d < maxDist && d > -maxDist
}

// IntersectsPlane reports whether two planes cross. Parallel planes count
// as intersecting only when their two origin points coincide.
func (pl *Plane[T]) IntersectsPlane(origin geom.Point3[T], normal geom.Vector3[T]) bool {
	proj := pl.Normal.Dot(normal)
	if proj < 0 {
		proj = -proj
	}
	if proj < 1-T(Epsilon) {
		return true
	}
	return squaredLength(pl.Point.Sub(origin)) < T(Epsilon)
}

// intersectLine solves for the line parameter t at which it crosses the
// plane. Both branches compute the same quotient. A line exactly parallel
// to the plane divides by zero and yields +/-Inf, which line.Inside
// rejects; a nearly parallel line yields a large finite t, rejected only
// if it falls outside the line's limits.
func (pl *Plane[T]) intersectLine(l line.UnitLine3[T]) (T, bool) {
	ctheta := l.Direction().Dot(pl.Normal)
	var t T
	if ctheta > 0 {
		t = pl.Point.Sub(l.Origin()).Dot(pl.Normal) / ctheta
	} else {
		t = pl.Point.Sub(l.Origin()).Dot(pl.Normal.Negate()) / -ctheta
	}
	if !l.Inside(t) {
		return 0, false
	}
	return t, true
}

// QuickIntersection fills only distance.
func (pl *Plane[T]) QuickIntersection(l line.UnitLine3[T], time T, distance *T) bool {
	t, ok := pl.intersectLine(l)
	if !ok {
		return false
	}
	*distance = t
	return true
}

// extractUV solves the plane's local 2x2 system for a point known to lie on
// the plane, using whichever pair of non-degenerate axes setupNonZeroIndices
// picked. It reports false if the point is not actually on the plane.
func (pl *Plane[T]) extractUV(point geom.Point3[T]) (geom.Vector2[T], bool) {
	if !pl.Inside(point) {
		return geom.Vector2[T]{}, false
	}
	return pl.extractUVUnchecked(point), true
}

// extractUVUnchecked is the same solve without the on-plane guard, for
// callers (triangle, disc) that already know the point lies on the plane.
func (pl *Plane[T]) extractUVUnchecked(point geom.Point3[T]) geom.Vector2[T] {
	diff := point.Sub(pl.Point)
	uScalar := pl.UVector.Get(pl.nzV) / pl.UVector.Get(pl.nzU)
	v := (diff.Get(pl.nzV) - diff.Get(pl.nzU)*uScalar) /
		(pl.VVector.Get(pl.nzV) - pl.VVector.Get(pl.nzU)*uScalar)
	u := (diff.Get(pl.nzU) - v*pl.VVector.Get(pl.nzU)) / pl.UVector.Get(pl.nzU)
	return geom.Vector2[T]{X: u, Y: v}
}

// IntersectsLine performs the full intersection query.
func (pl *Plane[T]) IntersectsLine(l line.UnitLine3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	if !reqs.Satisfiable(pl.IntersectionCapabilities()) {
		return false
	}
	t, ok := pl.intersectLine(l)
	if !ok {
		return false
	}
	hit := l.PointAt(t)
	recordHit[T](info, reqs, pl, t, hit, l,
		func() geom.Vector3[T] { return pl.Normal },
		func() (geom.Vector2[T], bool) { return pl.extractUV(hit) },
	)
	return true
}

// IntersectsRay adapts the ray contract, discarding the time component.
func (pl *Plane[T]) IntersectsRay(r line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	return defaultIntersectsRay[T](pl, r, info, reqs)
}

// IntersectionCapabilities reports what a plane can fill in on a hit.
func (pl *Plane[T]) IntersectionCapabilities() capability.Intersection {
	return capability.HitFirst | capability.HitAll | capability.Normal | capability.UV
}

// ObjectCapabilities reports a plane's intrinsic properties: it is
// unbounded, hence NotFinite rather than Boundable.
func (pl *Plane[T]) ObjectCapabilities() capability.Object {
	return capability.NotFinite | capability.Simple | capability.Implicit
}

func (pl *Plane[T]) Name() string { return "plane" }

// InternalMembers renders the plane's fields for debugging/inspection.
func (pl *Plane[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	prefix := ""
	if prefixWithClassName {
		prefix = "plane "
	}
	return fmt.Sprintf("%s%spoint=%v normal=%v u=%v v=%v nz=(%d,%d)",
		indentation, prefix, pl.Point, pl.Normal, pl.UVector, pl.VVector, pl.nzU, pl.nzV)
}
