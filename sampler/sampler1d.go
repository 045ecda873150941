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

// Random1D draws n independent uniform samples in [0,1).
type Random1D[T geom.Real] struct{ rng *rand.Rand }

func NewRandom1D[T geom.Real](rng *rand.Rand) *Random1D[T] {
	return &Random1D[T]{rng: defaultRNG(rng)}
}

func (g *Random1D[T]) Samples(n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(g.rng.Float64())
	}
	return out
}

// Regular1D emits n evenly spaced samples from 0 to nearOne.
type Regular1D[T geom.Real] struct{}

func NewRegular1D[T geom.Real]() *Regular1D[T] { return &Regular1D[T]{} }

func (g *Regular1D[T]) Samples(n int) []T {
	out := make([]T, n)
	if n <= 1 {
		return out
	}
	scalar := T(nearOne) / T(n-1)
	for x := 0; x < n; x++ {
		out[x] = T(x) * scalar
	}
	return out
}

// Jitter1D stratifies [0,1) into n equal cells and draws one uniform
// sample within each.
type Jitter1D[T geom.Real] struct{ rng *rand.Rand }

func NewJitter1D[T geom.Real](rng *rand.Rand) *Jitter1D[T] {
	return &Jitter1D[T]{rng: defaultRNG(rng)}
}

func (g *Jitter1D[T]) Samples(n int) []T {
	out := make([]T, n)
	for x := 0; x < n; x++ {
		out[x] = (T(x) + T(g.rng.Float64())) / T(n)
	}
	return out
}

// Poisson1D draws n samples with minimum pairwise distance, shrinking the
// distance by 0.9 whenever a round of attempts repeatedly fails to place
// all n samples.
type Poisson1D[T geom.Real] struct {
	rng      *rand.Rand
	distance T
}

func NewPoisson1D[T geom.Real](rng *rand.Rand, distance T) *Poisson1D[T] {
	return &Poisson1D[T]{rng: defaultRNG(rng), distance: distance}
}

func (g *Poisson1D[T]) Samples(n int) []T {
	samples := make([]T, n)
	gathered := 0
	badAttempts := 0
	restarts := 0
	distance := g.distance

	for gathered < n {
		next := T(g.rng.Float64())
		samples[gathered] = next
		ok := true
		for i := 0; i < gathered; i++ {
			if T(math.Abs(float64(next-samples[i]))) < distance {
				ok = false
				break
			}
		}
		if ok {
			gathered++
			badAttempts = 0
			continue
		}
		badAttempts++
		if badAttempts > n {
			gathered = 0
			restarts++
			if restarts > n/2 {
				distance *= 0.9
				restarts = 0
			}
			badAttempts = 0
		}
	}
	return samples
}
