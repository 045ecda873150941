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

// Sphere is the simplest implicit primitive: a center and a radius.
type Sphere[T geom.Real] struct {
	Center geom.Point3[T]
	Radius T
}

// NewSphere builds a sphere centered at c with radius r.
func NewSphere[T geom.Real](c geom.Point3[T], r T) *Sphere[T] {
	return &Sphere[T]{Center: c, Radius: r}
}

// Inside reports whether p lies within the sphere, with the radius
// inflated by 2*r*epsilon + epsilon^2 so that points essentially on the
// surface are treated as inside.
func (s *Sphere[T]) Inside(p geom.Point3[T]) bool {
	d := squaredLength(p.Sub(s.Center))
	eps := T(Epsilon)
	inflated := s.Radius*s.Radius + 2*s.Radius*eps + eps*eps
	return d < inflated
}

// IntersectsSphere reports whether the two spheres overlap.
func (s *Sphere[T]) IntersectsSphere(center geom.Point3[T], radius T) bool {
	d := s.Center.Sub(center).Length()
	return d <= s.Radius+radius
}

// IntersectsPlane reports whether the sphere crosses the plane, i.e. the
// center's distance to the plane is no larger than the radius.
func (s *Sphere[T]) IntersectsPlane(origin geom.Point3[T], normal geom.Vector3[T]) bool {
	d := s.Center.Sub(origin).Dot(normal)
	return abs(d) <= s.Radius
}

// quickSphereIntersectionTest solves the sphere/line quadratic, returning
// the nearest valid root. It always tries the smaller root first since the
// quadratic's leading coefficient A = dot(d,d) is never negative.
func quickSphereIntersectionTest[T geom.Real](s *Sphere[T], l line.UnitLine3[T]) (T, bool) {
	d := l.Direction()
	oc := l.Origin().Sub(s.Center)

	a := d.Dot(d)
	b := 2 * d.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := T(math.Sqrt(float64(disc)))

	t1 := (-b - sq) / (2 * a)
	if l.Inside(t1) {
		return t1, true
	}
	t2 := (-b + sq) / (2 * a)
	if l.Inside(t2) {
		return t2, true
	}
	return 0, false
}

// QuickIntersection fills only distance, the fastest intersection path.
func (s *Sphere[T]) QuickIntersection(l line.UnitLine3[T], time T, distance *T) bool {
	t, ok := quickSphereIntersectionTest(s, l)
	if !ok {
		return false
	}
	*distance = t
	return true
}

// uvAt computes the sphere's spherical (u,v) parameterization of a surface
// point, following the original engine's theta/phi convention.
func (s *Sphere[T]) uvAt(hit geom.Point3[T]) geom.Vector2[T] {
	pv := hit.Sub(s.Center).Div(s.Radius)
	theta := T(math.Acos(float64(pv.Y)))
	phi := T(math.Atan2(float64(pv.Z), float64(pv.X)))
	u := (math.Pi - phi) / (2 * math.Pi)
	v := 1 - theta/math.Pi
	return geom.Vector2[T]{X: T(u), Y: v}
}

// IntersectsLine performs the full intersection query.
func (s *Sphere[T]) IntersectsLine(l line.UnitLine3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	if !reqs.Satisfiable(s.IntersectionCapabilities()) {
		return false
	}
	t, ok := quickSphereIntersectionTest(s, l)
	if !ok {
		return false
	}
	hit := l.PointAt(t)
	recordHit[T](info, reqs, s, t, hit, l,
		func() geom.Vector3[T] { return hit.Sub(s.Center).Unit() },
		func() (geom.Vector2[T], bool) { return s.uvAt(hit), true },
	)
	return true
}

// IntersectsRay adapts the ray contract, discarding the time component.
func (s *Sphere[T]) IntersectsRay(r line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	return defaultIntersectsRay[T](s, r, info, reqs)
}

// IntersectionCapabilities reports what a sphere can fill in on a hit. A
// single implicit surface only ever produces one hit along a line, so that
// lone hit trivially satisfies a HitAll query as well as HitFirst.
func (s *Sphere[T]) IntersectionCapabilities() capability.Intersection {
	return capability.HitFirst | capability.HitAll | capability.Normal | capability.UV
}

// ObjectCapabilities reports a sphere's intrinsic properties.
func (s *Sphere[T]) ObjectCapabilities() capability.Object {
	return capability.Boundable | capability.Simple | capability.Implicit
}

func (s *Sphere[T]) Name() string { return "sphere" }

// InternalMembers renders the sphere's fields for debugging/inspection.
func (s *Sphere[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	prefix := ""
	if prefixWithClassName {
		prefix = "sphere "
	}
	return fmt.Sprintf("%s%scenter=%v radius=%v", indentation, prefix, s.Center, s.Radius)
}
