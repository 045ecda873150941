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

// Package sampler generates the sub-pixel and hemisphere sample points the
// renderer averages over: 1D and 2D stratified/random/low-discrepancy
// patterns in [0,1), and a 3D pattern in [-1,1]^3 for sphere sampling.
package sampler

import (
	"math/rand/v2"

	"github.com/nthery/amethyst/geom"
)

// nearOne scales a regular grid's last sample just under 1 rather than
// exactly at it, matching the teacher lineage's NEAR_ONE constant so a
// regular pattern never emits a boundary sample outside [0,1).
const nearOne = 0.9999999

// Generator1D produces exactly n samples in [0,1).
type Generator1D[T geom.Real] interface {
	Samples(n int) []T
}

// Generator2D produces samples in [0,1)^2 for a requested count n.
// Random2D, NRooks2D and Poisson2D return exactly n samples; Regular2D and
// Jitter2D return a floor(sqrt n) by n/floor(sqrt n) grid, which holds
// fewer than n when n is not a multiple of floor(sqrt n); MultiJitter2D
// rounds n up to the next perfect square.
type Generator2D[T geom.Real] interface {
	Samples(n int) []geom.Vector2[T]
}

// Generator3D produces exactly n 3D samples: Random3D in [0,1)^3, Sphere3D
// inside the unit sphere (so within [-1,1]^3).
type Generator3D[T geom.Real] interface {
	Samples(n int) []geom.Vector3[T]
}

func defaultRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(0xC0FFEE, 0xF00D))
}
