package shape

import (
	"testing"

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

func TestTriangleInsideBarycentricRegion(t *testing.T) {
	tr := NewTriangle(
		geom.Point3[float64]{},
		geom.Point3[float64]{X: 1},
		geom.Point3[float64]{Y: 1},
	)
	if !tr.Inside(geom.Point3[float64]{X: 0.2, Y: 0.2}) {
		t.Fatalf("(0.2,0.2) should be inside the triangle")
	}
	if tr.Inside(geom.Point3[float64]{X: 0.8, Y: 0.8}) {
		t.Fatalf("(0.8,0.8) should be outside the triangle (u+v >= 1)")
	}
}

func TestTriangleIntersectsLineRejectsOutsideHitPoint(t *testing.T) {
	tr := NewTriangle(
		geom.Point3[float64]{},
		geom.Point3[float64]{X: 1},
		geom.Point3[float64]{Y: 1},
	)
	// This line crosses the triangle's plane (z=0) well outside the
	// triangle's bounds.
	l := line.NewUnitLine3(geom.Point3[float64]{X: 5, Y: 5, Z: 5}, geom.Vector3[float64]{Z: -1})

	var info isect.Info[float64]
	if tr.IntersectsLine(l, &info, capability.Requirements{}) {
		t.Fatalf("expected no hit outside the triangle's barycentric region")
	}
}

func TestTriangleIntersectsLineHitsInsideBounds(t *testing.T) {
	tr := NewTriangle(
		geom.Point3[float64]{},
		geom.Point3[float64]{X: 1},
		geom.Point3[float64]{Y: 1},
	)
	l := line.NewUnitLine3(geom.Point3[float64]{X: 0.2, Y: 0.2, Z: 5}, geom.Vector3[float64]{Z: -1})

	var info isect.Info[float64]
	if !tr.IntersectsLine(l, &info, capability.Requirements{}) {
		t.Fatalf("expected a hit inside the triangle's bounds")
	}
	if !geom.FloatsEqual(info.FirstPoint().Z, 0, 1e-9) {
		t.Fatalf("hit point = %v, want z=0", info.FirstPoint())
	}
}
