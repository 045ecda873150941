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

// Package shape implements the geometric primitives and their shared
// intersection contract: sphere, plane, triangle, disc, rectangle, and the
// aggregate composite that forwards queries to a set of children.
package shape

import (
	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

// Epsilon is the tolerance used by every containment and near-zero test in
// this package, matching the geometry package's default.
const Epsilon = geom.Epsilon

// Shape is the uniform contract every primitive and the aggregate
// composite implement. A Shape never returns an error: a miss is simply
// false, and a query with unsatisfiable requirements returns false without
// filling the record, per the renderer's exception-free intersection
// pipeline.
type Shape[T geom.Real] interface {
	// Inside reports whether p lies within the shape, epsilon-tolerant.
	Inside(p geom.Point3[T]) bool

	// IntersectsSphere is a coarse bounding overlap test against a sphere.
	IntersectsSphere(center geom.Point3[T], radius T) bool

	// IntersectsPlane is a coarse bounding overlap test against a plane.
	IntersectsPlane(origin geom.Point3[T], normal geom.Vector3[T]) bool

	// IntersectsLine performs the full intersection query. On success it
	// sets Shape, FirstDistance, FirstPoint and Ray on info, plus every
	// field reqs forces that the shape's capabilities advertise.
	IntersectsLine(l line.UnitLine3[T], info *isect.Info[T], reqs capability.Requirements) bool

	// IntersectsRay is the time-carrying variant, identical in contract.
	IntersectsRay(r line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool

	// QuickIntersection fills only distance, the fastest path, used for
	// shadow rays where no other field is needed.
	QuickIntersection(l line.UnitLine3[T], time T, distance *T) bool

	IntersectionCapabilities() capability.Intersection
	ObjectCapabilities() capability.Object

	Name() string

	// InternalMembers renders the shape's fields for debugging/inspection,
	// prefixed with indentation and optionally the shape's class name.
	InternalMembers(indentation string, prefixWithClassName bool) string
}

// defaultIntersectsRay adapts a line-based shape to the ray contract by
// discarding the ray's time component; none of the primitives in this
// package are time-varying.
func defaultIntersectsRay[T geom.Real](s Shape[T], r line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	return s.IntersectsLine(r.Line, info, reqs)
}

func squaredLength[T geom.Real](v geom.Vector3[T]) T { return v.Dot(v) }

// recordHit fills info with a successful hit at distance t/point hit along
// l, plus normal and uv when reqs forces them, and appends a matching
// single-hit sub-record to info's all-hits list when the caller asked for
// every hit rather than just the nearest. normal and uv are lazy since
// some shapes (e.g. plane-derived ones) compute uv via a fallible solve
// that only the caller knows is needed.
func recordHit[T geom.Real](
	info *isect.Info[T],
	reqs capability.Requirements,
	s isect.Shape,
	t T,
	hit geom.Point3[T],
	l line.UnitLine3[T],
	normal func() geom.Vector3[T],
	uv func() (geom.Vector2[T], bool),
) {
	info.SetShape(s)
	info.SetFirstDistance(t)
	info.SetFirstPoint(hit)
	info.SetRay(l)

	var gotUV bool
	var uvVal geom.Vector2[T]
	if reqs.ForceNormal {
		info.SetNormal(normal())
	}
	if reqs.ForceUV {
		if uvVal, gotUV = uv(); gotUV {
			info.SetUV(uvVal)
		}
	}

	if !reqs.NeedsAllHits {
		return
	}
	var sub isect.Info[T]
	sub.SetShape(s)
	sub.SetFirstDistance(t)
	sub.SetFirstPoint(hit)
	sub.SetRay(l)
	if reqs.ForceNormal {
		sub.SetNormal(normal())
	}
	if reqs.ForceUV && gotUV {
		sub.SetUV(uvVal)
	}
	info.AppendIntersection(sub)
}

func abs[T geom.Real](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
