package shape

import (
	"testing"

	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

func TestAggregateReturnsNearestChildHit(t *testing.T) {
	agg := NewAggregate[float64]()
	agg.Add(NewSphere(geom.Point3[float64]{Z: -5}, 1.0))
	agg.Add(NewSphere(geom.Point3[float64]{Z: 0}, 1.0))

	l := line.NewUnitLine3(geom.Point3[float64]{Z: 5}, geom.Vector3[float64]{Z: -1})

	var info isect.Info[float64]
	if !agg.IntersectsLine(l, &info, capability.Requirements{}) {
		t.Fatalf("expected a hit")
	}
	if !geom.FloatsEqual(info.FirstDistance(), 4, 1e-9) {
		t.Fatalf("first distance = %v, want 4 (nearer sphere)", info.FirstDistance())
	}
}

func TestAggregateQuickIntersectionMatchesMinChildDistance(t *testing.T) {
	agg := NewAggregate[float64]()
	agg.Add(NewSphere(geom.Point3[float64]{Z: -5}, 1.0))
	agg.Add(NewSphere(geom.Point3[float64]{Z: 0}, 1.0))

	l := line.NewUnitLine3(geom.Point3[float64]{Z: 5}, geom.Vector3[float64]{Z: -1})

	var info isect.Info[float64]
	agg.IntersectsLine(l, &info, capability.Requirements{})

	var quick float64
	if !agg.QuickIntersection(l, 0, &quick) {
		t.Fatalf("expected quick intersection to hit")
	}
	if !geom.FloatsEqual(quick, info.FirstDistance(), 1e-9) {
		t.Fatalf("quick distance %v != aggregate first distance %v", quick, info.FirstDistance())
	}
}

func TestAggregateInsideIsAnyChild(t *testing.T) {
	agg := NewAggregate[float64]()
	agg.Add(NewSphere(geom.Point3[float64]{X: 10}, 1.0))
	agg.Add(NewSphere(geom.Point3[float64]{}, 1.0))

	if !agg.Inside(geom.Point3[float64]{}) {
		t.Fatalf("origin should be inside the second child sphere")
	}
	if agg.Inside(geom.Point3[float64]{X: 100}) {
		t.Fatalf("(100,0,0) should not be inside any child")
	}
}

func TestAggregateObjectCapabilitiesClearBoundableWhenAnyChildIsPlane(t *testing.T) {
	agg := NewAggregate[float64]()
	agg.Add(NewSphere(geom.Point3[float64]{}, 1.0))
	agg.Add(NewPlane(geom.Point3[float64]{}, geom.Vector3[float64]{Y: 1}))

	caps := agg.ObjectCapabilities()
	if caps.Has(capability.Boundable) {
		t.Fatalf("an aggregate containing an infinite plane should not be boundable")
	}
	if !caps.Has(capability.Container) {
		t.Fatalf("an aggregate should always report Container")
	}
}

func TestAggregateAppendsContainerToHitsAfterTheFirst(t *testing.T) {
	agg := NewAggregate[float64]()
	agg.Add(NewSphere(geom.Point3[float64]{Z: -5}, 1.0))
	agg.Add(NewSphere(geom.Point3[float64]{Z: 0}, 1.0))

	l := line.NewUnitLine3(geom.Point3[float64]{Z: 5}, geom.Vector3[float64]{Z: -1})

	var info isect.Info[float64]
	reqs := capability.Requirements{NeedsAllHits: true, NeedsContainers: true}
	if !agg.IntersectsLine(l, &info, reqs) {
		t.Fatalf("expected a hit")
	}
	hits := info.AllHits()
	if len(hits) != 2 {
		t.Fatalf("len(AllHits()) = %d, want 2", len(hits))
	}
	if len(hits[0].ContainerStack()) != 0 {
		t.Fatalf("first recorded hit should have no container appended")
	}
	if len(hits[1].ContainerStack()) != 1 {
		t.Fatalf("second recorded hit should have the aggregate appended to its container stack")
	}
}
