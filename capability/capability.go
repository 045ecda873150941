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

// Package capability defines the bit-flag sets that describe what a shape
// can compute on intersection and what a caller requires, plus the object
// metadata bits an aggregate uses to fold its children's properties.
package capability

// Intersection is a bitset of the fields a shape can fill in on a
// successful intersection query.
type Intersection uint32

const (
	HitFirst Intersection = 1 << iota
	HitAll
	Normal
	UV
	LocalSystem
)

// AllIntersection is the intersection-capability set an aggregate starts
// from before AND-ing in each child's capabilities.
const AllIntersection Intersection = HitFirst | HitAll | Normal | UV | LocalSystem

// Has reports whether every bit set in want is also set in c.
func (c Intersection) Has(want Intersection) bool { return c&want == want }

// Object is a bitset describing intrinsic properties of a shape, used by
// aggregates to fold per-child metadata into a composite description.
type Object uint32

const (
	Boundable Object = 1 << iota
	NotFinite
	Movable
	Simple
	Container
	Implicit
	Polygonization
)

// All is the object-capability set an aggregate starts from before
// clearing bits that its children don't uniformly support.
const All Object = Boundable | NotFinite | Movable | Simple | Container | Implicit | Polygonization

// Has reports whether every bit set in want is also set in o.
func (o Object) Has(want Object) bool { return o&want == want }

// StartFold returns the aggregate object-capability set before any child
// is folded in: every bit set except MOVABLE and SIMPLE, with CONTAINER
// added and IMPLICIT cleared.
func StartFold() Object {
	return (All &^ Movable &^ Simple &^ Implicit) | Container
}

// FoldChild updates the running aggregate object-capability set acc with
// one child's capabilities. A child that is NOT_FINITE clears BOUNDABLE
// from the aggregate, and a child that is BOUNDABLE clears NOT_FINITE —
// these are independent checks, not an either/or, since a mixed set of
// children can clear both. IMPLICIT and MOVABLE are unioned in from any
// child that has them; POLYGONIZATION is cleared if any child lacks it.
func FoldChild(acc Object, child Object) Object {
	if child.Has(NotFinite) {
		acc &^= Boundable
	}
	if child.Has(Boundable) {
		acc &^= NotFinite
	}
	if child.Has(Movable) {
		acc |= Movable
	}
	if !child.Has(Polygonization) {
		acc &^= Polygonization
	}
	if child.Has(Implicit) {
		acc |= Implicit
	}
	return acc
}

// Requirements is the caller's declared needs for an intersection query.
// Shapes must honor at least the forced fields when their capabilities
// advertise support; an unsatisfiable forced field means the shape returns
// false rather than filling a partial record.
type Requirements struct {
	ForceNormal     bool
	ForceUV         bool
	ForceFirstOnly  bool
	NeedsAllHits    bool
	NeedsContainers bool
}

// Satisfiable reports whether caps can satisfy every field r forces.
func (r Requirements) Satisfiable(caps Intersection) bool {
	if r.ForceNormal && !caps.Has(Normal) {
		return false
	}
	if r.ForceUV && !caps.Has(UV) {
		return false
	}
	if r.NeedsAllHits && !caps.Has(HitAll) {
		return false
	}
	return true
}
