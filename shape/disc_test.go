package shape

import (
	"testing"

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

func TestDiscTouchingSphereIntersects(t *testing.T) {
	d := NewDisc(geom.Point3[float64]{}, 1.0, geom.Vector3[float64]{X: 1})
	if !d.IntersectsSphere(geom.Point3[float64]{Y: 1}, 1.0) {
		t.Fatalf("a disc of radius 1 at the origin should touch a sphere of radius 1 centered at (0,1,0)")
	}
}

func TestDiscNonTouchingSphereMisses(t *testing.T) {
	d := NewDisc(geom.Point3[float64]{}, 1.0, geom.Vector3[float64]{X: 1})
	if d.IntersectsSphere(geom.Point3[float64]{Y: 5}, 1.0) {
		t.Fatalf("a distant sphere should not intersect the disc")
	}
}

func TestDiscInsideRadius(t *testing.T) {
	d := NewDisc(geom.Point3[float64]{}, 1.0, geom.Vector3[float64]{Z: 1})
	if !d.Inside(geom.Point3[float64]{X: 0.5}) {
		t.Fatalf("(0.5,0,0) should be inside a unit disc centered at the origin")
	}
	if d.Inside(geom.Point3[float64]{X: 2}) {
		t.Fatalf("(2,0,0) should be outside a unit disc")
	}
}

func TestDiscIntersectsLineWithinRadius(t *testing.T) {
	d := NewDisc(geom.Point3[float64]{}, 1.0, geom.Vector3[float64]{Z: 1})
	l := line.NewUnitLine3(geom.Point3[float64]{X: 0.5, Z: 5}, geom.Vector3[float64]{Z: -1})

	var info isect.Info[float64]
	if !d.IntersectsLine(l, &info, capability.Requirements{}) {
		t.Fatalf("expected a hit within the disc's radius")
	}
}

func TestDiscIntersectsLineOutsideRadiusMisses(t *testing.T) {
	d := NewDisc(geom.Point3[float64]{}, 1.0, geom.Vector3[float64]{Z: 1})
	l := line.NewUnitLine3(geom.Point3[float64]{X: 5, Z: 5}, geom.Vector3[float64]{Z: -1})

	var info isect.Info[float64]
	if d.IntersectsLine(l, &info, capability.Requirements{}) {
		t.Fatalf("expected no hit outside the disc's radius")
	}
}

func TestDiscIntersectsNonParallelPlane(t *testing.T) {
	d := NewDisc(geom.Point3[float64]{}, 1.0, geom.Vector3[float64]{Z: 1})
	if !d.IntersectsPlane(geom.Point3[float64]{}, geom.Vector3[float64]{X: 1}) {
		t.Fatalf("a plane through the disc's center, non-parallel to it, should intersect")
	}
}

func TestDiscDoesNotIntersectDistantParallelPlane(t *testing.T) {
	d := NewDisc(geom.Point3[float64]{}, 1.0, geom.Vector3[float64]{Z: 1})
	if d.IntersectsPlane(geom.Point3[float64]{Z: 5}, geom.Vector3[float64]{Z: 1}) {
		t.Fatalf("a distinct parallel plane should never intersect the disc")
	}
}
