package shape

import (
	"testing"

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

func TestPlaneHitFromAbove(t *testing.T) {
	p := NewPlane(geom.Point3[float64]{}, geom.Vector3[float64]{Y: 1})
	l := line.NewUnitLine3(geom.Point3[float64]{Y: 5}, geom.Vector3[float64]{Y: -1})

	var info isect.Info[float64]
	if !p.IntersectsLine(l, &info, capability.Requirements{ForceNormal: true}) {
		t.Fatalf("expected a hit")
	}
	hit := info.FirstPoint()
	if !geom.FloatsEqual(hit.Y, 0, 1e-9) {
		t.Fatalf("hit point = %v, want y=0", hit)
	}
}

func TestPlaneParallelLineMisses(t *testing.T) {
	p := NewPlane(geom.Point3[float64]{}, geom.Vector3[float64]{Y: 1})
	l := line.NewUnitLine3(geom.Point3[float64]{Y: 5}, geom.Vector3[float64]{X: 1})

	var info isect.Info[float64]
	if p.IntersectsLine(l, &info, capability.Requirements{}) {
		t.Fatalf("expected no hit for a line parallel to the plane")
	}
}

func TestPlaneUVRoundTrips(t *testing.T) {
	p := NewPlane(geom.Point3[float64]{}, geom.Vector3[float64]{Z: 1})
	pt := p.Point.Add(p.UVector.Scale(2)).Add(p.VVector.Scale(-3))

	uv, ok := p.extractUV(pt)
	if !ok {
		t.Fatalf("expected the constructed point to be on the plane")
	}
	if !geom.FloatsEqual(uv.X, 2, 1e-9) || !geom.FloatsEqual(uv.Y, -3, 1e-9) {
		t.Fatalf("uv = %v, want (2,-3)", uv)
	}
}

func TestPlaneInsideIsEpsilonBand(t *testing.T) {
	p := NewPlane(geom.Point3[float64]{}, geom.Vector3[float64]{Y: 1})
	if !p.Inside(geom.Point3[float64]{X: 3, Z: -2}) {
		t.Fatalf("a point on the plane should be inside")
	}
	if p.Inside(geom.Point3[float64]{Y: 1}) {
		t.Fatalf("a point well off the plane should not be inside")
	}
}
