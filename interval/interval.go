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

// Package interval implements a closed-ish numeric range type used to gate
// the valid parameter domain of lines and rays. An Interval always stores
// its bounds in sorted order and tracks emptiness explicitly, since a
// construction like New(5, 5) is not the same thing as an interval that
// happens to have equal bounds: it is empty.
package interval

import "golang.org/x/exp/constraints"

// Ordered is the scalar type an Interval is generic over.
type Ordered interface {
	constraints.Float
}

// Interval is a range [begin, end] (or the empty range) over an ordered
// scalar. The zero value is NOT a valid empty interval; use Empty().
type Interval[T Ordered] struct {
	begin, end T
	empty      bool
}

// New builds an interval from two bounds in either order: whichever is
// smaller becomes begin.
func New[T Ordered](a, b T) Interval[T] {
	if b < a {
		a, b = b, a
	}
	return Interval[T]{begin: a, end: b, empty: !(a < b)}
}

// Empty returns the empty interval.
func Empty[T Ordered]() Interval[T] {
	return Interval[T]{empty: true}
}

// IsEmpty reports whether i is the empty interval.
func (i Interval[T]) IsEmpty() bool { return i.empty }

// Begin returns the lower bound. Undefined for an empty interval.
func (i Interval[T]) Begin() T { return i.begin }

// End returns the upper bound. Undefined for an empty interval.
func (i Interval[T]) End() T { return i.end }

// Length returns end-begin, 0 for an empty interval.
func (i Interval[T]) Length() T {
	if i.empty {
		return 0
	}
	return i.end - i.begin
}

// Inside reports whether d lies strictly between begin and end. An empty
// interval contains nothing.
func (i Interval[T]) Inside(d T) bool {
	if i.empty {
		return false
	}
	return i.begin < d && d < i.end
}

// Outside reports whether d lies strictly outside [begin, end]. Comparisons
// with an empty interval always yield false, not true: there is no range to
// be outside of.
func (i Interval[T]) Outside(d T) bool {
	if i.empty {
		return false
	}
	return d < i.begin || i.end < d
}

// Overlaps reports whether i and o share any point: equal intervals, either
// endpoint of o inside or on i, or full containment in either direction.
func (i Interval[T]) Overlaps(o Interval[T]) bool {
	if i.empty || o.empty {
		return false
	}
	switch {
	case i.begin == o.begin && i.end == o.end:
		return true
	case i.begin <= o.begin && o.begin <= i.end:
		return true
	case i.begin <= o.end && o.end <= i.end:
		return true
	case o.begin <= i.begin && i.end <= o.end:
		return true
	case i.begin <= o.begin && o.end <= i.end:
		return true
	default:
		return false
	}
}

// Subset reports whether i is entirely contained within o.
func (i Interval[T]) Subset(o Interval[T]) bool {
	if i.empty {
		return true
	}
	if o.empty {
		return false
	}
	return o.begin <= i.begin && i.end <= o.end
}

// Overlap returns the interval of points shared by i and o, or Empty() if
// they do not overlap.
func (i Interval[T]) Overlap(o Interval[T]) Interval[T] {
	if !i.Overlaps(o) {
		return Empty[T]()
	}
	lo := i.begin
	if o.begin > lo {
		lo = o.begin
	}
	hi := i.end
	if o.end < hi {
		hi = o.end
	}
	return New(lo, hi)
}

// Sub returns the residue of i after removing the portion covered by o,
// matching the original engine's operator-: if i's begin comes at or before
// o's begin, the residue is i's left remainder up to o; else if o's end
// comes at or before i's end, the residue is i's right remainder from o;
// otherwise o covers i entirely and the result is empty. When o lies
// strictly inside i only the left remainder is returned (a single Interval
// cannot represent two disjoint pieces).
func (i Interval[T]) Sub(o Interval[T]) Interval[T] {
	if i.empty {
		return Empty[T]()
	}
	if !i.Overlaps(o) {
		return i
	}
	if i.begin <= o.begin {
		return New(i.begin, o.begin)
	}
	if o.end <= i.end {
		return New(o.end, i.end)
	}
	return Empty[T]()
}

// Less reports whether every point of i is less than every point of o.
func (i Interval[T]) Less(o Interval[T]) bool {
	return !i.empty && !o.empty && i.end < o.begin
}

// Greater reports whether every point of i is greater than every point of o.
func (i Interval[T]) Greater(o Interval[T]) bool {
	return !i.empty && !o.empty && i.begin > o.end
}

// LessScalar reports whether every point of i is less than d.
func (i Interval[T]) LessScalar(d T) bool {
	return !i.empty && i.end < d
}

// GreaterScalar reports whether every point of i is greater than d.
func (i Interval[T]) GreaterScalar(d T) bool {
	return !i.empty && i.begin > d
}

// Scale returns the interval with both bounds multiplied by s. If s is
// negative the bounds are re-sorted so begin remains the smaller value.
func (i Interval[T]) Scale(s T) Interval[T] {
	if i.empty {
		return i
	}
	return New(i.begin*s, i.end*s)
}
