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
	"strings"

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

// Aggregate is a composite shape forwarding every query to its children
// and combining their results: the nearest hit by default, or every hit
// when the caller's requirements ask for it.
type Aggregate[T geom.Real] struct {
	children []Shape[T]
}

// NewAggregate builds an empty aggregate ready to receive children via Add.
func NewAggregate[T geom.Real]() *Aggregate[T] {
	return &Aggregate[T]{}
}

// Add appends a child shape.
func (a *Aggregate[T]) Add(s Shape[T]) { a.children = append(a.children, s) }

// Len reports the number of children.
func (a *Aggregate[T]) Len() int { return len(a.children) }

// Child returns the child at index i.
func (a *Aggregate[T]) Child(i int) Shape[T] { return a.children[i] }

// Inside reports whether p lies within any child.
func (a *Aggregate[T]) Inside(p geom.Point3[T]) bool {
	for _, c := range a.children {
		if c.Inside(p) {
			return true
		}
	}
	return false
}

// IntersectsSphere reports whether any child crosses the sphere.
func (a *Aggregate[T]) IntersectsSphere(center geom.Point3[T], radius T) bool {
	for _, c := range a.children {
		if c.IntersectsSphere(center, radius) {
			return true
		}
	}
	return false
}

// IntersectsPlane reports whether any child crosses the plane.
func (a *Aggregate[T]) IntersectsPlane(origin geom.Point3[T], normal geom.Vector3[T]) bool {
	for _, c := range a.children {
		if c.IntersectsPlane(origin, normal) {
			return true
		}
	}
	return false
}

// QuickIntersection returns the minimum distance among every child that
// hits the line; the line's own limits bound what counts as a hit so no
// extra range check is needed on the winning distance.
func (a *Aggregate[T]) QuickIntersection(l line.UnitLine3[T], time T, distance *T) bool {
	hitSomething := false
	closest := l.Limits().End() + 1
	for _, c := range a.children {
		var d T
		if c.QuickIntersection(l, time, &d) && d < closest {
			closest = d
			hitSomething = true
		}
	}
	if hitSomething {
		*distance = closest
	}
	return hitSomething
}

// IntersectsLine queries every child, keeping the nearest hit, or
// accumulating every hit into info's all-hits list when the caller's
// requirements ask for it.
func (a *Aggregate[T]) IntersectsLine(l line.UnitLine3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	if !reqs.Satisfiable(a.IntersectionCapabilities()) {
		return false
	}
	info.Reset()
	intersectsSomething := false

	for _, c := range a.children {
		var tmp isect.Info[T]
		if !c.IntersectsLine(l, &tmp, reqs) {
			continue
		}

		if intersectsSomething && reqs.NeedsContainers {
			tmp.AppendContainer(a)
		}

		if !reqs.NeedsAllHits {
			if !intersectsSomething || tmp.FirstDistance() < info.FirstDistance() {
				*info = tmp
			}
		} else {
			info.AppendIntersection(tmp)
			if !intersectsSomething {
				if tmp.HaveShape() {
					info.SetShape(tmp.Shape())
				}
				if tmp.HaveFirstDistance() {
					info.SetFirstDistance(tmp.FirstDistance())
				}
			} else if tmp.HaveFirstDistance() && info.HaveFirstDistance() && tmp.FirstDistance() < info.FirstDistance() {
				info.SetFirstDistance(tmp.FirstDistance())
				if tmp.HaveShape() {
					info.SetShape(tmp.Shape())
				}
			}
		}
		intersectsSomething = true
	}

	return intersectsSomething
}

// IntersectsRay adapts the ray contract, discarding the time component.
func (a *Aggregate[T]) IntersectsRay(r line.Ray3[T], info *isect.Info[T], reqs capability.Requirements) bool {
	return defaultIntersectsRay[T](a, r, info, reqs)
}

// IntersectionCapabilities is the AND-fold of every child's capabilities:
// the aggregate can only promise a field if every child can supply it.
func (a *Aggregate[T]) IntersectionCapabilities() capability.Intersection {
	caps := capability.AllIntersection
	for _, c := range a.children {
		caps &= c.IntersectionCapabilities()
	}
	return caps
}

// ObjectCapabilities folds every child's object capabilities into a
// composite description, starting from the aggregate's baseline.
func (a *Aggregate[T]) ObjectCapabilities() capability.Object {
	caps := capability.StartFold()
	for _, c := range a.children {
		caps = capability.FoldChild(caps, c.ObjectCapabilities())
	}
	return caps
}

func (a *Aggregate[T]) Name() string { return "aggregate" }

// InternalMembers renders the aggregate's capabilities and every child's
// debug dump, indented one level further.
func (a *Aggregate[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	var b strings.Builder
	fmtLine := func(s string) { b.WriteString(indentation); b.WriteString(s); b.WriteByte('\n') }
	fmtLine("intersection_capabilities set")
	fmtLine("object_capabilities set")
	for _, c := range a.children {
		b.WriteString(c.InternalMembers(indentation+"  ", true))
		b.WriteByte('\n')
	}
	return b.String()
}
