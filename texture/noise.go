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

package texture

import (
	"math"
	"math/rand/v2"

	"github.com/nthery/amethyst/geom"
)

// perlinNoise is a gradient (Perlin-style) solid noise field: a shuffled
// permutation table and a table of random unit gradients, combined at a
// sample point via the 8 surrounding lattice corners weighted by a cubic
// falloff.
type perlinNoise[T geom.Real] struct {
	perm     []int
	gradient []geom.Vector3[T]
	size     int
}

// newPerlinNoise builds a noise field with arraySize lattice entries (at
// least 16), seeded from rng.
func newPerlinNoise[T geom.Real](rng *rand.Rand, arraySize int) *perlinNoise[T] {
	if arraySize < 16 {
		arraySize = 16
	}
	n := &perlinNoise[T]{
		perm:     make([]int, arraySize),
		gradient: make([]geom.Vector3[T], arraySize),
		size:     arraySize,
	}
	for i := range n.perm {
		n.perm[i] = i
		n.gradient[i] = geom.RandomUnitSphereSample[T](rng).Unit()
	}
	for i := arraySize - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i))
		n.perm[i], n.perm[j] = n.perm[j], n.perm[i]
	}
	return n
}

func (n *perlinNoise[T]) phiHash(i int) int {
	j := i % n.size
	if j < 0 {
		j += n.size
	}
	return n.perm[j]
}

func (n *perlinNoise[T]) latticeGradient(i, j, k int) geom.Vector3[T] {
	index := n.phiHash(i + n.phiHash(j+n.phiHash(k)))
	return n.gradient[index]
}

func weighting[T geom.Real](d T) T {
	if d < 0 {
		d = -d
	}
	if d < 1 {
		return 2*d*d*d - 3*d*d + 1
	}
	return 0
}

// Value samples the noise field at p, in roughly [-1,1].
func (n *perlinNoise[T]) Value(p geom.Vector3[T]) T {
	floorX := int(math.Floor(float64(p.X)))
	floorY := int(math.Floor(float64(p.Y)))
	floorZ := int(math.Floor(float64(p.Z)))

	var val T
	for i := floorX; i <= floorX+1; i++ {
		for j := floorY; j <= floorY+1; j++ {
			for k := floorZ; k <= floorZ+1; k++ {
				u, v, w := p.X-T(i), p.Y-T(j), p.Z-T(k)
				weight := weighting(u) * weighting(v) * weighting(w)
				val += weight * n.latticeGradient(i, j, k).Dot(geom.Vector3[T]{X: u, Y: v, Z: w})
			}
		}
	}
	return val
}

// Turbulence sums Value at levels+1 frequencies, each d times the one
// before and weighted by 1/d times the previous weight (a fractal sum),
// taking the absolute value of each octave so the result stays
// non-negative.
func (n *perlinNoise[T]) Turbulence(p geom.Vector3[T], levels int, d T) T {
	var result T
	scalar := T(1)
	point := p
	for i := 0; i <= levels; i++ {
		val := n.Value(point)
		if val < 0 {
			val = -val
		}
		result += scalar * val
		scalar /= d
		point = point.Scale(d)
	}
	return result
}
