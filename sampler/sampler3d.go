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
	"math/rand/v2"

	"github.com/nthery/amethyst/geom"
)

// Random3D draws n independent uniform samples in [0,1)^3.
type Random3D[T geom.Real] struct{ rng *rand.Rand }

func NewRandom3D[T geom.Real](rng *rand.Rand) *Random3D[T] {
	return &Random3D[T]{rng: defaultRNG(rng)}
}

func (g *Random3D[T]) Samples(n int) []geom.Vector3[T] {
	out := make([]geom.Vector3[T], n)
	for i := range out {
		out[i] = geom.Vector3[T]{X: T(g.rng.Float64()), Y: T(g.rng.Float64()), Z: T(g.rng.Float64())}
	}
	return out
}

// Sphere3D draws n samples uniformly from the solid unit sphere by
// rejection, reusing the same rejection-sampling helper the renderer's
// diffuse scatter uses for its random bounce direction.
type Sphere3D[T geom.Real] struct{ rng *rand.Rand }

func NewSphere3D[T geom.Real](rng *rand.Rand) *Sphere3D[T] {
	return &Sphere3D[T]{rng: defaultRNG(rng)}
}

func (g *Sphere3D[T]) Samples(n int) []geom.Vector3[T] {
	out := make([]geom.Vector3[T], n)
	for i := range out {
		out[i] = geom.RandomUnitSphereSample[T](g.rng)
	}
	return out
}
