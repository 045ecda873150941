package isect

import (
	"testing"

	"github.com/nthery/amethyst/geom"
)

type stubShape string

func (s stubShape) Name() string { return string(s) }

func TestInfoZeroValueHasNothing(t *testing.T) {
	var info Info[float64]
	if info.HaveShape() || info.HaveFirstDistance() || info.HaveNormal() || info.HaveUV() {
		t.Fatalf("zero-value Info should have no fields present")
	}
}

func TestInfoSetAndHave(t *testing.T) {
	var info Info[float64]
	info.SetShape(stubShape("sphere"))
	info.SetFirstDistance(2.5)
	info.SetFirstPoint(geom.Point3[float64]{X: 1, Y: 2, Z: 3})
	info.SetNormal(geom.Vector3[float64]{Z: 1})

	if !info.HaveShape() || info.Shape().Name() != "sphere" {
		t.Fatalf("shape not recorded correctly")
	}
	if !info.HaveFirstDistance() || info.FirstDistance() != 2.5 {
		t.Fatalf("first distance not recorded correctly")
	}
	if !info.HaveFirstPoint() {
		t.Fatalf("first point should be present")
	}
	if !info.HaveNormal() {
		t.Fatalf("normal should be present")
	}
	if info.HaveUV() {
		t.Fatalf("uv was never set, should still be absent")
	}
}

func TestAppendContainerOrdersOutermostFirst(t *testing.T) {
	var info Info[float64]
	info.AppendContainer(stubShape("outer"))
	info.AppendContainer(stubShape("inner"))

	stack := info.ContainerStack()
	if len(stack) != 2 || stack[0].Name() != "outer" || stack[1].Name() != "inner" {
		t.Fatalf("container stack = %v, want [outer inner]", stack)
	}
}

func TestAppendIntersectionAccumulatesAllHits(t *testing.T) {
	var info Info[float64]
	var sub1, sub2 Info[float64]
	sub1.SetFirstDistance(1)
	sub2.SetFirstDistance(2)
	info.AppendIntersection(sub1)
	info.AppendIntersection(sub2)

	hits := info.AllHits()
	if len(hits) != 2 {
		t.Fatalf("len(AllHits()) = %d, want 2", len(hits))
	}
	if hits[0].FirstDistance() != 1 || hits[1].FirstDistance() != 2 {
		t.Fatalf("all hits recorded out of order: %v", hits)
	}
}

func TestResetClearsFields(t *testing.T) {
	var info Info[float64]
	info.SetShape(stubShape("x"))
	info.AppendContainer(stubShape("outer"))
	info.Reset()
	if info.HaveShape() {
		t.Fatalf("Reset should clear HaveShape")
	}
	if len(info.ContainerStack()) != 0 {
		t.Fatalf("Reset should clear the container stack")
	}
}
