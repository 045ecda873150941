package frame

import (
	"testing"

	"github.com/nthery/amethyst/geom"
)

func TestNewAxisAlignedONBIsIdentity(t *testing.T) {
	b := NewAxisAlignedONB[float64]()
	v := geom.Vector3[float64]{X: 1, Y: 2, Z: 3}
	got := b.IntoVector(v)
	if got != v {
		t.Fatalf("axis-aligned ONB should be an identity transform, got %v want %v", got, v)
	}
}

func TestONBFromWIsOrthonormal(t *testing.T) {
	b := NewONBFromW(geom.Vector3[float64]{X: 1, Y: 1, Z: 1})
	if !geom.FloatsEqual(b.U().Dot(b.V()), 0, 1e-9) {
		t.Fatalf("u and v should be orthogonal")
	}
	if !geom.FloatsEqual(b.U().Dot(b.W()), 0, 1e-9) {
		t.Fatalf("u and w should be orthogonal")
	}
	if !geom.FloatsEqual(b.V().Dot(b.W()), 0, 1e-9) {
		t.Fatalf("v and w should be orthogonal")
	}
	for _, axis := range []geom.Vector3[float64]{b.U(), b.V(), b.W()} {
		if !geom.FloatsEqual(axis.Length(), 1, 1e-9) {
			t.Fatalf("axis %v should be unit length", axis)
		}
	}
}

func TestONBIntoOutofRoundTrips(t *testing.T) {
	b := NewONBFromW(geom.Vector3[float64]{X: 2, Y: -1, Z: 3})
	v := geom.Vector3[float64]{X: 5, Y: -3, Z: 2}
	local := b.IntoVector(v)
	back := b.OutofVector(local)
	if !geom.FloatsEqual(back.X, v.X, 1e-9) || !geom.FloatsEqual(back.Y, v.Y, 1e-9) || !geom.FloatsEqual(back.Z, v.Z, 1e-9) {
		t.Fatalf("round trip through ONB should be lossless: got %v want %v", back, v)
	}
}

func TestFrameTransformPointRoundTrips(t *testing.T) {
	f := NewFrame(geom.Point3[float64]{X: 1, Y: 2, Z: 3}, geom.Vector3[float64]{Z: 1})
	p := geom.Point3[float64]{X: 10, Y: 20, Z: 30}
	local := f.TransformPoint(p)
	back := f.InverseTransformPoint(local)
	if !geom.FloatsEqual(back.X, p.X, 1e-9) || !geom.FloatsEqual(back.Y, p.Y, 1e-9) || !geom.FloatsEqual(back.Z, p.Z, 1e-9) {
		t.Fatalf("round trip through Frame should be lossless: got %v want %v", back, p)
	}
}

func TestInverseTransformNormalStaysUnit(t *testing.T) {
	f := NewFrame(geom.Point3[float64]{}, geom.Vector3[float64]{X: 1, Y: 2, Z: 3})
	n := f.InverseTransformNormal(geom.Vector3[float64]{Z: 1})
	if !geom.FloatsEqual(n.Length(), 1, 1e-9) {
		t.Fatalf("InverseTransformNormal should return a unit vector, got length %v", n.Length())
	}
}

func TestCombinedFrameMatchesSequentialTransform(t *testing.T) {
	outer := NewFrame(geom.Point3[float64]{X: 1}, geom.Vector3[float64]{Z: 1})
	inner := NewFrame(geom.Point3[float64]{Y: 1}, geom.Vector3[float64]{X: 1})
	combined := Combined(outer, inner)

	p := geom.Point3[float64]{X: 1, Y: 1, Z: 1}
	viaCombined := combined.InverseTransformPoint(p)
	viaSequential := outer.InverseTransformPoint(inner.InverseTransformPoint(p))

	if !geom.FloatsEqual(viaCombined.X, viaSequential.X, 1e-9) ||
		!geom.FloatsEqual(viaCombined.Y, viaSequential.Y, 1e-9) ||
		!geom.FloatsEqual(viaCombined.Z, viaSequential.Z, 1e-9) {
		t.Fatalf("Combined frame transform = %v, want %v", viaCombined, viaSequential)
	}
}
