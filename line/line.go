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

// Package line implements the parametric ray type shared by the camera,
// shape and renderer packages: an origin, a direction and an interval of
// valid parameter values gating where along that direction the line is
// considered to exist.
package line

import (
	"math"

	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/interval"
)

// InfiniteInterval returns the interval spanning every representable t,
// the default limits of a freshly constructed Line.
func InfiniteInterval[T geom.Real]() interval.Interval[T] {
	m := maxReal[T]()
	return interval.New(-m, m)
}

// maxReal returns the largest finite value of T.
func maxReal[T geom.Real]() T {
	if tiny := T(1e-10); 1+tiny == 1 {
		return T(math.MaxFloat32)
	}
	m := math.MaxFloat64
	return T(m)
}

// SegmentOne returns the (0,1) interval used by the two-point constructor,
// restricting the line to the segment between its two defining points.
func SegmentOne[T geom.Real]() interval.Interval[T] {
	var tiny T
	return interval.New(tiny, T(1))
}

// Line3 is a ray in space: a point of origin, a (not necessarily unit)
// direction, and an interval of valid t values along that direction.
type Line3[T geom.Real] struct {
	origin    geom.Point3[T]
	direction geom.Vector3[T]
	limits    interval.Interval[T]
	infinite  bool
}

// NewLine3 builds a line through o along v, with limits defaulting to
// (-inf, inf) when omitted.
func NewLine3[T geom.Real](o geom.Point3[T], v geom.Vector3[T], limits ...interval.Interval[T]) Line3[T] {
	lim := InfiniteInterval[T]()
	if len(limits) > 0 {
		lim = limits[0]
	}
	return Line3[T]{
		origin:    o,
		direction: v,
		limits:    lim,
		infinite:  isInfiniteLimits(lim),
	}
}

// NewLine3Segment builds the line through p1 and p2, limited to the
// segment between them (t in [0,1]).
func NewLine3Segment[T geom.Real](p1, p2 geom.Point3[T]) Line3[T] {
	return NewLine3(p1, p2.Sub(p1), SegmentOne[T]())
}

func isInfiniteLimits[T geom.Real](lim interval.Interval[T]) bool {
	if lim.IsEmpty() {
		return false
	}
	m := maxReal[T]()
	return lim.Begin() <= -m && lim.End() >= m
}

func (l Line3[T]) Origin() geom.Point3[T]       { return l.origin }
func (l Line3[T]) Direction() geom.Vector3[T]   { return l.direction }
func (l Line3[T]) Limits() interval.Interval[T] { return l.limits }
func (l Line3[T]) Infinite() bool               { return l.infinite }

// PointAt returns origin + direction*t.
func (l Line3[T]) PointAt(t T) geom.Point3[T] {
	return l.origin.Add(l.direction.Scale(t))
}

// Minimum returns the point at the lower limit.
func (l Line3[T]) Minimum() geom.Point3[T] { return l.PointAt(l.limits.Begin()) }

// Maximum returns the point at the upper limit.
func (l Line3[T]) Maximum() geom.Point3[T] { return l.PointAt(l.limits.End()) }

// Inside reports whether t falls within the line's valid parameter range.
func (l Line3[T]) Inside(t T) bool { return l.limits.Inside(t) }

// UnitLine3 is a Line3 whose direction is normalized to unit length, with
// the original (pre-normalization) length cached so that limits expressed
// in the caller's original units can be rescaled into unit-direction
// parameter space. Sphere/plane/triangle intersection math is simplest
// when the direction is unit length, but camera rays and shading
// computations want distances in the caller's original units, hence the
// two parallel representations.
type UnitLine3[T geom.Real] struct {
	origin    geom.Point3[T]
	direction geom.Vector3[T]
	length    T
	limits    interval.Interval[T]
	infinite  bool
}

// NewUnitLine3 builds a unit-direction line from an arbitrary-length
// direction vector, rescaling limits (expressed in v's original units)
// into the unit-direction parameter domain.
func NewUnitLine3[T geom.Real](o geom.Point3[T], v geom.Vector3[T], limits ...interval.Interval[T]) UnitLine3[T] {
	lim := InfiniteInterval[T]()
	if len(limits) > 0 {
		lim = limits[0]
	}
	l := v.Length()
	infinite := isInfiniteLimits(lim)
	if !infinite && l != 0 {
		lim = interval.New(lim.Begin()*l, lim.End()*l)
	}
	dir := v
	if l != 0 {
		dir = v.Unit()
	}
	return UnitLine3[T]{
		origin:    o,
		direction: dir,
		length:    l,
		limits:    lim,
		infinite:  infinite,
	}
}

// NewUnitLine3Segment builds the unit-direction line through p1 and p2,
// limited to the segment between them.
func NewUnitLine3Segment[T geom.Real](p1, p2 geom.Point3[T]) UnitLine3[T] {
	return NewUnitLine3(p1, p2.Sub(p1), SegmentOne[T]())
}

// FromLine3 converts an arbitrary-direction line into unit-direction form.
func FromLine3[T geom.Real](l Line3[T]) UnitLine3[T] {
	return NewUnitLine3(l.Origin(), l.Direction(), l.Limits())
}

func (l UnitLine3[T]) Origin() geom.Point3[T]       { return l.origin }
func (l UnitLine3[T]) Direction() geom.Vector3[T]   { return l.direction }
func (l UnitLine3[T]) Limits() interval.Interval[T] { return l.limits }
func (l UnitLine3[T]) Infinite() bool               { return l.infinite }

// NormalLength returns the length of the direction vector the line was
// constructed from, before normalization.
func (l UnitLine3[T]) NormalLength() T { return l.length }

// PointAt returns origin + direction*t, where t is expressed in
// unit-direction parameter space (i.e. t is a distance along the line).
func (l UnitLine3[T]) PointAt(t T) geom.Point3[T] {
	return l.origin.Add(l.direction.Scale(t))
}

// PointAtScaled returns the point at t expressed in the line's original
// (pre-normalization) parameter units.
func (l UnitLine3[T]) PointAtScaled(t T) geom.Point3[T] {
	return l.origin.Add(l.direction.Scale(t * l.length))
}

// Minimum returns the point at the lower limit.
func (l UnitLine3[T]) Minimum() geom.Point3[T] { return l.PointAt(l.limits.Begin()) }

// Maximum returns the point at the upper limit.
func (l UnitLine3[T]) Maximum() geom.Point3[T] { return l.PointAt(l.limits.End()) }

// Inside reports whether t falls within the line's valid parameter range.
func (l UnitLine3[T]) Inside(t T) bool { return l.limits.Inside(t) }

// ToLine3 converts back to the arbitrary-direction representation, with
// limits rescaled back into the original (non-unit) parameter units.
func (l UnitLine3[T]) ToLine3() Line3[T] {
	if l.infinite || l.length == 0 {
		return NewLine3(l.origin, l.direction.Scale(l.length))
	}
	lim := interval.New(l.limits.Begin()/l.length, l.limits.End()/l.length)
	return NewLine3(l.origin, l.direction.Scale(l.length), lim)
}

// Ray3 is a UnitLine3 carrying a sample time, the one additional piece of
// state a camera attaches to a ray for (potential) time-varying shading.
// Motion blur itself is out of scope; the time scalar is carried through
// the intersection pipeline unevaluated by any shape in this package.
type Ray3[T geom.Real] struct {
	Line UnitLine3[T]
	Time T
}

// NewRay3 builds a ray from a unit line and a sample time in [0,1].
func NewRay3[T geom.Real](l UnitLine3[T], time T) Ray3[T] {
	return Ray3[T]{Line: l, Time: time}
}
