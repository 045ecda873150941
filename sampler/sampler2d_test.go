package sampler

import (
	"math/rand/v2"
	"testing"
)

func TestRandom2DProducesRequestedCountInUnitSquare(t *testing.T) {
	g := NewRandom2D[float64](rand.New(rand.NewPCG(1, 1)))
	samples := g.Samples(30)
	if len(samples) != 30 {
		t.Fatalf("Samples(30) returned %d samples", len(samples))
	}
	for _, s := range samples {
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("sample %v out of [0,1)^2", s)
		}
	}
}

func TestRegular2DCoversGrid(t *testing.T) {
	g := NewRegular2D[float64]()
	samples := g.Samples(9)
	if len(samples) != 9 {
		t.Fatalf("Samples(9) returned %d samples, want 9", len(samples))
	}
	if samples[0].X != 0 || samples[0].Y != 0 {
		t.Fatalf("first regular sample = %v, want origin", samples[0])
	}
}

func TestJitter2DStaysWithinItsCell(t *testing.T) {
	g := NewJitter2D[float64](rand.New(rand.NewPCG(2, 2)))
	samples := g.Samples(16)
	for _, s := range samples {
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("jittered sample %v outside unit square", s)
		}
	}
}

func TestNRooks2DHasUniqueRowAndColumnPerSample(t *testing.T) {
	g := NewNRooks2D[float64](rand.New(rand.NewPCG(3, 3)))
	n := 8
	samples := g.Samples(n)
	if len(samples) != n {
		t.Fatalf("Samples(%d) returned %d samples", n, len(samples))
	}
	seenXCells := map[int]bool{}
	seenYCells := map[int]bool{}
	for _, s := range samples {
		xCell := int(s.X * float64(n))
		yCell := int(s.Y * float64(n))
		if seenXCells[xCell] {
			t.Fatalf("n-rooks sample reused x cell %d", xCell)
		}
		if seenYCells[yCell] {
			t.Fatalf("n-rooks sample reused y cell %d", yCell)
		}
		seenXCells[xCell] = true
		seenYCells[yCell] = true
	}
}

func TestMultiJitter2DRoundsUpToPerfectSquare(t *testing.T) {
	g := NewMultiJitter2D[float64](rand.New(rand.NewPCG(4, 4)))
	samples := g.Samples(10) // not a perfect square, rounds up to 16
	if len(samples) != 16 {
		t.Fatalf("Samples(10) returned %d samples, want 16 (rounded up to 4x4)", len(samples))
	}
	for _, s := range samples {
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("multi-jittered sample %v outside unit square", s)
		}
	}
}

func TestPoisson2DReturnsRequestedCountWithinRange(t *testing.T) {
	g := NewPoisson2D[float64](rand.New(rand.NewPCG(5, 5)), 0.1)
	samples := g.Samples(12)
	if len(samples) != 12 {
		t.Fatalf("Samples(12) returned %d samples", len(samples))
	}
	for _, s := range samples {
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("poisson sample %v out of [0,1)^2", s)
		}
	}
}

func TestPoisson2DShrinksDistanceUnderContention(t *testing.T) {
	g := NewPoisson2D[float64](rand.New(rand.NewPCG(6, 6)), 0.5)
	samples := g.Samples(20)
	if len(samples) != 20 {
		t.Fatalf("Samples(20) returned %d samples, shrink path did not converge", len(samples))
	}
}
