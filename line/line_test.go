package line

import (
	"testing"

	"github.com/nthery/amethyst/geom"
)

func TestLine3PointAt(t *testing.T) {
	l := NewLine3(geom.Point3[float64]{}, geom.Vector3[float64]{X: 1})
	got := l.PointAt(5)
	want := geom.Point3[float64]{X: 5}
	if got != want {
		t.Fatalf("PointAt(5) = %v, want %v", got, want)
	}
}

func TestLine3DefaultLimitsAreInfinite(t *testing.T) {
	l := NewLine3(geom.Point3[float64]{}, geom.Vector3[float64]{X: 1})
	if !l.Infinite() {
		t.Fatalf("line with default limits should report Infinite() = true")
	}
}

func TestLine3SegmentLimitsAreNotInfinite(t *testing.T) {
	l := NewLine3Segment(geom.Point3[float64]{}, geom.Point3[float64]{X: 10})
	if l.Infinite() {
		t.Fatalf("segment line should report Infinite() = false")
	}
	if !l.Inside(0.5) {
		t.Fatalf("0.5 should be inside a (0,1) segment")
	}
	if l.Inside(1.5) {
		t.Fatalf("1.5 should be outside a (0,1) segment")
	}
}

func TestUnitLine3NormalizesDirection(t *testing.T) {
	l := NewUnitLine3(geom.Point3[float64]{}, geom.Vector3[float64]{X: 3, Y: 4})
	if !geom.FloatsEqual(l.Direction().Length(), 1, 1e-9) {
		t.Fatalf("UnitLine3 direction should be unit length, got %v", l.Direction().Length())
	}
	if !geom.FloatsEqual(l.NormalLength(), 5, 1e-9) {
		t.Fatalf("NormalLength() = %v, want 5", l.NormalLength())
	}
}

func TestUnitLine3RescalesLimits(t *testing.T) {
	l := NewUnitLine3Segment(geom.Point3[float64]{}, geom.Point3[float64]{X: 10})
	// The segment spans 10 units of the original direction; in unit-direction
	// parameter space that is t in (0, 10).
	if !l.Inside(5) {
		t.Fatalf("midpoint of the segment should be inside the rescaled limits")
	}
	if l.Inside(15) {
		t.Fatalf("15 should fall outside the rescaled limits")
	}
}

func TestUnitLine3PointAtScaledMatchesOriginalUnits(t *testing.T) {
	l := NewUnitLine3(geom.Point3[float64]{}, geom.Vector3[float64]{X: 2})
	got := l.PointAtScaled(3)
	want := geom.Point3[float64]{X: 6}
	if !geom.FloatsEqual(got.X, want.X, 1e-9) {
		t.Fatalf("PointAtScaled(3) = %v, want %v", got, want)
	}
}

func TestUnitLine3ToLine3RoundTrips(t *testing.T) {
	orig := NewLine3Segment(geom.Point3[float64]{}, geom.Point3[float64]{X: 4})
	back := FromLine3(orig).ToLine3()
	if !geom.FloatsEqual(back.Limits().Begin(), orig.Limits().Begin(), 1e-9) {
		t.Fatalf("round-tripped limits.Begin() = %v, want %v", back.Limits().Begin(), orig.Limits().Begin())
	}
	if !geom.FloatsEqual(back.Limits().End(), orig.Limits().End(), 1e-9) {
		t.Fatalf("round-tripped limits.End() = %v, want %v", back.Limits().End(), orig.Limits().End())
	}
}
