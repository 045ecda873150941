package interval

import "testing"

func TestNewSortsBounds(t *testing.T) {
	i := New(5.0, 2.0)
	if i.Begin() != 2 || i.End() != 5 {
		t.Fatalf("New(5,2) = [%v,%v], want [2,5]", i.Begin(), i.End())
	}
}

func TestNewDegenerateBoundsIsEmpty(t *testing.T) {
	i := New(5.0, 5.0)
	if !i.IsEmpty() {
		t.Fatalf("New(5,5) is not empty")
	}
}

func TestEmptyContainsNothing(t *testing.T) {
	e := Empty[float64]()
	if !e.IsEmpty() {
		t.Fatalf("Empty() is not empty")
	}
	if e.Inside(0) {
		t.Fatalf("Empty().Inside(0) = true, want false")
	}
	if e.Outside(0) {
		t.Fatalf("Empty().Outside(0) = true, want false")
	}
}

func TestInsideOutsideAreStrict(t *testing.T) {
	i := New(1.0, 3.0)
	cases := []struct {
		d              float64
		inside, outide bool
	}{
		{0, false, true},
		{1, false, false},
		{2, true, false},
		{3, false, false},
		{4, false, true},
	}
	for _, c := range cases {
		if got := i.Inside(c.d); got != c.inside {
			t.Fatalf("Inside(%v) = %v, want %v", c.d, got, c.inside)
		}
		if got := i.Outside(c.d); got != c.outide {
			t.Fatalf("Outside(%v) = %v, want %v", c.d, got, c.outide)
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		a, b Interval[float64]
		want bool
	}{
		{New(0.0, 5.0), New(4.0, 10.0), true},
		{New(0.0, 5.0), New(5.0, 10.0), true},
		{New(0.0, 5.0), New(6.0, 10.0), false},
		{New(0.0, 10.0), New(2.0, 4.0), true},
		{New(2.0, 4.0), New(0.0, 10.0), true},
		{New(0.0, 5.0), New(0.0, 5.0), true},
	}
	for _, c := range cases {
		if got := c.a.Overlaps(c.b); got != c.want {
			t.Fatalf("%v.Overlaps(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSubset(t *testing.T) {
	outer := New(0.0, 10.0)
	inner := New(2.0, 4.0)
	if !inner.Subset(outer) {
		t.Fatalf("inner should be a subset of outer")
	}
	if outer.Subset(inner) {
		t.Fatalf("outer should not be a subset of inner")
	}
}

func TestOverlap(t *testing.T) {
	a := New(0.0, 5.0)
	b := New(3.0, 8.0)
	got := a.Overlap(b)
	if got.Begin() != 3 || got.End() != 5 {
		t.Fatalf("Overlap = [%v,%v], want [3,5]", got.Begin(), got.End())
	}

	c := New(6.0, 8.0)
	if !a.Overlap(c).IsEmpty() {
		t.Fatalf("non-overlapping intervals should produce an empty overlap")
	}
}

func TestSubLeftResidue(t *testing.T) {
	a := New(0.0, 10.0)
	b := New(6.0, 12.0)
	got := a.Sub(b)
	if got.Begin() != 0 || got.End() != 6 {
		t.Fatalf("a.Sub(b) = [%v,%v], want [0,6]", got.Begin(), got.End())
	}
}

func TestSubRightResidue(t *testing.T) {
	a := New(5.0, 15.0)
	b := New(0.0, 10.0)
	got := a.Sub(b)
	if got.Begin() != 10 || got.End() != 15 {
		t.Fatalf("a.Sub(b) = [%v,%v], want [10,15]", got.Begin(), got.End())
	}
}

func TestSubNoOverlapReturnsSelf(t *testing.T) {
	a := New(0.0, 5.0)
	b := New(10.0, 15.0)
	got := a.Sub(b)
	if got.Begin() != 0 || got.End() != 5 {
		t.Fatalf("a.Sub(b) = [%v,%v], want [0,5] (unchanged)", got.Begin(), got.End())
	}
}

func TestLessAndGreater(t *testing.T) {
	a := New(0.0, 5.0)
	b := New(6.0, 10.0)
	if !a.Less(b) {
		t.Fatalf("a should be Less than b")
	}
	if !b.Greater(a) {
		t.Fatalf("b should be Greater than a")
	}
	if a.Greater(b) || b.Less(a) {
		t.Fatalf("ordering should not hold in reverse")
	}
}

func TestScaleNegative(t *testing.T) {
	a := New(1.0, 4.0)
	got := a.Scale(-2.0)
	if got.Begin() != -8 || got.End() != -2 {
		t.Fatalf("a.Scale(-2) = [%v,%v], want [-8,-2]", got.Begin(), got.End())
	}
}
