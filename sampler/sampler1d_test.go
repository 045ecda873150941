package sampler

import (
	"math/rand/v2"
	"testing"
)

func TestRandom1DProducesRequestedCountInRange(t *testing.T) {
	g := NewRandom1D[float64](rand.New(rand.NewPCG(1, 1)))
	samples := g.Samples(50)
	if len(samples) != 50 {
		t.Fatalf("Samples(50) returned %d samples", len(samples))
	}
	for _, s := range samples {
		if s < 0 || s >= 1 {
			t.Fatalf("sample %v out of [0,1)", s)
		}
	}
}

func TestRegular1DIsEvenlySpacedAndMonotonic(t *testing.T) {
	g := NewRegular1D[float64]()
	samples := g.Samples(5)
	if len(samples) != 5 {
		t.Fatalf("Samples(5) returned %d samples", len(samples))
	}
	if samples[0] != 0 {
		t.Fatalf("first regular sample = %v, want 0", samples[0])
	}
	if samples[4] >= 1 {
		t.Fatalf("last regular sample = %v, want < 1", samples[4])
	}
	for i := 1; i < len(samples); i++ {
		if samples[i] <= samples[i-1] {
			t.Fatalf("regular samples not monotonically increasing: %v", samples)
		}
	}
}

func TestJitter1DStaysWithinItsCell(t *testing.T) {
	g := NewJitter1D[float64](rand.New(rand.NewPCG(2, 2)))
	n := 8
	samples := g.Samples(n)
	for x, s := range samples {
		lo := float64(x) / float64(n)
		hi := float64(x+1) / float64(n)
		if s < lo || s >= hi {
			t.Fatalf("jittered sample %d = %v outside cell [%v,%v)", x, s, lo, hi)
		}
	}
}

func TestPoisson1DReturnsRequestedCountWithinRange(t *testing.T) {
	g := NewPoisson1D[float64](rand.New(rand.NewPCG(3, 3)), 0.05)
	samples := g.Samples(10)
	if len(samples) != 10 {
		t.Fatalf("Samples(10) returned %d samples", len(samples))
	}
	for _, s := range samples {
		if s < 0 || s >= 1 {
			t.Fatalf("poisson sample %v out of [0,1)", s)
		}
	}
}

func TestPoisson1DShrinksDistanceUnderContention(t *testing.T) {
	// A distance too large to fit n samples in [0,1) forces the shrink path;
	// this must still terminate and return the requested count.
	g := NewPoisson1D[float64](rand.New(rand.NewPCG(4, 4)), 0.3)
	samples := g.Samples(20)
	if len(samples) != 20 {
		t.Fatalf("Samples(20) returned %d samples, shrink path did not converge", len(samples))
	}
}
