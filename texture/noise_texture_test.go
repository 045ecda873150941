package texture

import (
	"math/rand/v2"
	"testing"

	"github.com/nthery/amethyst/geom"
)

func TestNoiseGetColorIsDeterministicForFixedSeed(t *testing.T) {
	n1 := NewNoise[float64](1, rand.New(rand.NewPCG(42, 42)))
	n2 := NewNoise[float64](1, rand.New(rand.NewPCG(42, 42)))

	p := geom.Point3[float64]{X: 1.3, Y: -2.7, Z: 0.4}
	c1 := n1.GetColor(p, geom.Vector2[float64]{}, geom.Vector3[float64]{})
	c2 := n2.GetColor(p, geom.Vector2[float64]{}, geom.Vector3[float64]{})
	if c1 != c2 {
		t.Fatalf("identically-seeded noise textures disagree: %v vs %v", c1, c2)
	}
}

func TestNoiseGetColorStaysWithinGradientRange(t *testing.T) {
	n := NewNoise[float64](2, rand.New(rand.NewPCG(1, 2)))
	for _, p := range []geom.Point3[float64]{
		{X: 0, Y: 0, Z: 0},
		{X: 5, Y: -3, Z: 8},
		{X: -12, Y: 4, Z: -1},
	} {
		c := n.GetColor(p, geom.Vector2[float64]{}, geom.Vector3[float64]{})
		for _, channel := range []float64{c.R, c.G, c.B} {
			if channel < -0.01 || channel > 1.01 {
				t.Fatalf("noise color channel %v out of expected gradient range for point %v", channel, p)
			}
		}
	}
}

func TestNoiseNeverScatters(t *testing.T) {
	n := NewNoise[float64](1, rand.New(rand.NewPCG(1, 2)))
	if n.Capabilities().Has(Reflective) {
		t.Fatalf("a solid procedural texture should not advertise reflective scattering")
	}
	if !n.Capabilities().Has(Diffuse) {
		t.Fatalf("a solid procedural texture should advertise diffuse")
	}
}

func TestMarbleGetColorIsDeterministicForFixedSeed(t *testing.T) {
	m1 := NewMarble[float64](0.5, 1, 4, rand.New(rand.NewPCG(9, 9)))
	m2 := NewMarble[float64](0.5, 1, 4, rand.New(rand.NewPCG(9, 9)))

	p := geom.Point3[float64]{X: 2, Y: 1, Z: 0}
	c1 := m1.GetColor(p, geom.Vector2[float64]{}, geom.Vector3[float64]{})
	c2 := m2.GetColor(p, geom.Vector2[float64]{}, geom.Vector3[float64]{})
	if c1 != c2 {
		t.Fatalf("identically-seeded marble textures disagree: %v vs %v", c1, c2)
	}
}
