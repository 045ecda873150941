/*
Copyright (c) 2013 Nicolas Thery <nthery@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package sampler

import (
	"math"
	"math/rand/v2"

	"github.com/nthery/amethyst/geom"
)

// Random2D draws n independent uniform samples in [0,1)^2.
type Random2D[T geom.Real] struct{ rng *rand.Rand }

func NewRandom2D[T geom.Real](rng *rand.Rand) *Random2D[T] {
	return &Random2D[T]{rng: defaultRNG(rng)}
}

func (g *Random2D[T]) Samples(n int) []geom.Vector2[T] {
	out := make([]geom.Vector2[T], n)
	for i := range out {
		out[i] = geom.Vector2[T]{X: T(g.rng.Float64()), Y: T(g.rng.Float64())}
	}
	return out
}

// Regular2D lays n samples out on a grid whose dimensions are derived from
// sqrt(n), favoring width over height when n isn't a perfect square.
type Regular2D[T geom.Real] struct{}

func NewRegular2D[T geom.Real]() *Regular2D[T] { return &Regular2D[T]{} }

func (g *Regular2D[T]) Samples(n int) []geom.Vector2[T] {
	height := int(math.Sqrt(float64(n)))
	if height < 1 {
		height = 1
	}
	width := n / height
	out := make([]geom.Vector2[T], 0, width*height)
	var scalarX, scalarY T
	if width > 1 {
		scalarX = T(nearOne) / T(width-1)
	}
	if height > 1 {
		scalarY = T(nearOne) / T(height-1)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out = append(out, geom.Vector2[T]{X: T(x) * scalarX, Y: T(y) * scalarY})
		}
	}
	return out
}

// Jitter2D stratifies the unit square into a width*height grid, favoring
// width over height, and draws one uniform sample within each cell.
type Jitter2D[T geom.Real] struct{ rng *rand.Rand }

func NewJitter2D[T geom.Real](rng *rand.Rand) *Jitter2D[T] {
	return &Jitter2D[T]{rng: defaultRNG(rng)}
}

func (g *Jitter2D[T]) Samples(n int) []geom.Vector2[T] {
	height := int(math.Sqrt(float64(n)))
	if height < 1 {
		height = 1
	}
	width := n / height
	out := make([]geom.Vector2[T], 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px, py := g.rng.Float64(), g.rng.Float64()
			out = append(out, geom.Vector2[T]{
				X: (T(x) + T(px)) / T(width),
				Y: (T(y) + T(py)) / T(height),
			})
		}
	}
	return out
}

// NRooks2D places n samples so that no two share a row or column of an
// n-cell grid (the "N-rooks" or Latin hypercube pattern).
type NRooks2D[T geom.Real] struct{ rng *rand.Rand }

func NewNRooks2D[T geom.Real](rng *rand.Rand) *NRooks2D[T] {
	return &NRooks2D[T]{rng: defaultRNG(rng)}
}

func (g *NRooks2D[T]) Samples(n int) []geom.Vector2[T] {
	out := make([]geom.Vector2[T], n)
	for i := 0; i < n; i++ {
		px, py := g.rng.Float64(), g.rng.Float64()
		out[i] = geom.Vector2[T]{
			X: (T(px) + T(i)) / T(n),
			Y: (T(py) + T(i)) / T(n),
		}
	}
	for i := n - 1; i > 0; i-- {
		target := int(g.rng.Float64() * float64(i))
		out[i].X, out[target].X = out[target].X, out[i].X
	}
	return out
}

// MultiJitter2D builds a canonical multi-jittered pattern (Chiu, Shirley &
// Wang): a jittered grid where every row and column additionally carries
// exactly one sample, produced by independently shuffling the y coordinates
// along each row and the x coordinates along each column. n is rounded up
// to the next perfect square.
type MultiJitter2D[T geom.Real] struct{ rng *rand.Rand }

func NewMultiJitter2D[T geom.Real](rng *rand.Rand) *MultiJitter2D[T] {
	return &MultiJitter2D[T]{rng: defaultRNG(rng)}
}

func (g *MultiJitter2D[T]) Samples(n int) []geom.Vector2[T] {
	sqrtSamples := int(math.Sqrt(float64(n)))
	if sqrtSamples*sqrtSamples != n {
		sqrtSamples++
		n = sqrtSamples * sqrtSamples
	}

	out := make([]geom.Vector2[T], n)
	subcellWidth := T(1) / T(n)

	for y := 0; y < sqrtSamples; y++ {
		linearY := y * sqrtSamples
		for x := 0; x < sqrtSamples; x++ {
			px, py := T(g.rng.Float64()), T(g.rng.Float64())
			out[linearY+x] = geom.Vector2[T]{
				X: subcellWidth * (T(x) + px + T(linearY)),
				Y: subcellWidth * (T(y) + py + T(x*sqrtSamples)),
			}
		}
	}

	for y := 0; y < sqrtSamples; y++ {
		linearY := y * sqrtSamples
		for current := sqrtSamples - 1; current > 0; current-- {
			px, py := g.rng.Float64(), g.rng.Float64()

			targetX := int(px * float64(current))
			out[linearY+current].Y, out[linearY+targetX].Y = out[linearY+targetX].Y, out[linearY+current].Y

			targetY := int(py * float64(current))
			x := y
			out[current*sqrtSamples+x].X, out[targetY*sqrtSamples+x].X =
				out[targetY*sqrtSamples+x].X, out[current*sqrtSamples+x].X
		}
	}
	return out
}

// Poisson2D draws n samples with minimum pairwise Euclidean distance,
// shrinking the distance by 0.9 whenever more than n/2 restarts are needed
// to place all the samples.
type Poisson2D[T geom.Real] struct {
	rng      *rand.Rand
	distance T
}

func NewPoisson2D[T geom.Real](rng *rand.Rand, distance T) *Poisson2D[T] {
	return &Poisson2D[T]{rng: defaultRNG(rng), distance: distance}
}

func (g *Poisson2D[T]) Samples(n int) []geom.Vector2[T] {
	samples := make([]geom.Vector2[T], n)
	gathered := 0
	badAttempts := 0
	restarts := 0
	distance := g.distance

	for gathered < n {
		next := geom.Vector2[T]{X: T(g.rng.Float64()), Y: T(g.rng.Float64())}
		samples[gathered] = next

		current := 0
		for ; current < gathered; current++ {
			if next.Sub(samples[current]).Length() < distance {
				badAttempts++
				break
			}
		}

		if current == gathered {
			gathered++
			badAttempts = 0
		} else if badAttempts > n {
			gathered = 0
			restarts++
			if restarts > n/2 {
				distance *= 0.9
				restarts = 0
			}
		}
	}
	return samples
}
