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

// Package isect defines the intersection-result accumulator shared by every
// shape query: an optional-field record with presence flags, mutated in
// place by the shape being tested or by an aggregate combining its
// children's results.
package isect

import (
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/line"
)

// Shape is the narrow, non-owning reference to the primitive that produced
// a hit. It is satisfied implicitly by every concrete shape type; isect
// does not depend on the shape package to avoid an import cycle (shapes
// need to fill in an Info).
type Shape interface {
	Name() string
}

// Info is the intersection accumulator passed by reference through a
// query. Every optional field has a matching Have* flag; readers must
// check presence before trusting a field's value, since the zero value of
// a field is not a sentinel for "absent".
type Info[T geom.Real] struct {
	shape      Shape
	haveShape  bool

	firstDistance     T
	haveFirstDistance bool

	firstPoint     geom.Point3[T]
	haveFirstPoint bool

	normal     geom.Vector3[T]
	haveNormal bool

	uv     geom.Vector2[T]
	haveUV bool

	localCoordinates     geom.Point3[T]
	haveLocalCoordinates bool

	containerStack []Shape
	allHits        []Info[T]

	ray line.UnitLine3[T]
}

// Reset clears every field back to the empty state, for reuse across
// queries without reallocating the backing slices.
func (i *Info[T]) Reset() {
	*i = Info[T]{containerStack: i.containerStack[:0], allHits: i.allHits[:0]}
}

func (i *Info[T]) HaveShape() bool { return i.haveShape }
func (i *Info[T]) Shape() Shape    { return i.shape }
func (i *Info[T]) SetShape(s Shape) {
	i.shape = s
	i.haveShape = true
}

func (i *Info[T]) HaveFirstDistance() bool  { return i.haveFirstDistance }
func (i *Info[T]) FirstDistance() T         { return i.firstDistance }
func (i *Info[T]) SetFirstDistance(d T) {
	i.firstDistance = d
	i.haveFirstDistance = true
}

func (i *Info[T]) HaveFirstPoint() bool       { return i.haveFirstPoint }
func (i *Info[T]) FirstPoint() geom.Point3[T] { return i.firstPoint }
func (i *Info[T]) SetFirstPoint(p geom.Point3[T]) {
	i.firstPoint = p
	i.haveFirstPoint = true
}

func (i *Info[T]) HaveNormal() bool       { return i.haveNormal }
func (i *Info[T]) Normal() geom.Vector3[T] { return i.normal }
func (i *Info[T]) SetNormal(n geom.Vector3[T]) {
	i.normal = n
	i.haveNormal = true
}

func (i *Info[T]) HaveUV() bool       { return i.haveUV }
func (i *Info[T]) UV() geom.Vector2[T] { return i.uv }
func (i *Info[T]) SetUV(uv geom.Vector2[T]) {
	i.uv = uv
	i.haveUV = true
}

// UVOrDefault returns the hit's uv coordinate, or the zero coordinate when
// the query didn't request UV computation. Lets shading code that doesn't
// strictly need UV (e.g. a solid color texture) skip the presence check.
func (i *Info[T]) UVOrDefault() geom.Vector2[T] {
	if i.haveUV {
		return i.uv
	}
	return geom.Vector2[T]{}
}

// NormalOrDefault returns the hit's surface normal, or the zero vector when
// the query didn't request normal computation.
func (i *Info[T]) NormalOrDefault() geom.Vector3[T] {
	if i.haveNormal {
		return i.normal
	}
	return geom.Vector3[T]{}
}

func (i *Info[T]) HaveLocalCoordinates() bool       { return i.haveLocalCoordinates }
func (i *Info[T]) LocalCoordinates() geom.Point3[T] { return i.localCoordinates }
func (i *Info[T]) SetLocalCoordinates(p geom.Point3[T]) {
	i.localCoordinates = p
	i.haveLocalCoordinates = true
}

func (i *Info[T]) Ray() line.UnitLine3[T]     { return i.ray }
func (i *Info[T]) SetRay(r line.UnitLine3[T]) { i.ray = r }

// ContainerStack returns the ordered list of enclosing aggregates this hit
// was traversed through, outermost first.
func (i *Info[T]) ContainerStack() []Shape { return i.containerStack }

// AppendContainer records that the hit lies inside the given aggregate,
// pushing it onto the end of the container stack (the caller is
// responsible for calling this in traversal order, innermost last).
func (i *Info[T]) AppendContainer(s Shape) {
	i.containerStack = append(i.containerStack, s)
}

// AllHits returns every sub-intersection recorded so far; only populated
// when the query's requirements asked for all hits rather than the
// nearest.
func (i *Info[T]) AllHits() []Info[T] { return i.allHits }

// AppendIntersection records a full sub-intersection record, used by
// aggregates accumulating every child hit under NeedsAllHits.
func (i *Info[T]) AppendIntersection(sub Info[T]) {
	i.allHits = append(i.allHits, sub)
}
