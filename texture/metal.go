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
	"fmt"
	"math/rand/v2"

	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

// Metal is a fuzzy material: like Lambertian, it scatters toward the hit
// point plus the normal plus a unit-ball jitter, but the jitter is scaled
// down by fuzz, so with fuzz 0 the scattered ray runs along the normal.
// fuzz is clamped to [0,1] at construction.
type Metal[T geom.Real] struct {
	albedo geom.RGBColor[T]
	fuzz   T
	rng    *rand.Rand
}

// NewMetal builds a metal material with the given albedo and fuzziness.
// rng, if nil, defaults to a freshly seeded generator; see NewLambertian's
// note on per-worker instances.
func NewMetal[T geom.Real](albedo geom.RGBColor[T], fuzz T, rng *rand.Rand) *Metal[T] {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(3, 4))
	}
	return &Metal[T]{albedo: albedo, fuzz: fuzz, rng: rng}
}

func (m *Metal[T]) GetColor(location geom.Point3[T], uv geom.Vector2[T], normal geom.Vector3[T]) geom.RGBColor[T] {
	return m.albedo
}

func (m *Metal[T]) ScatterRay(incident line.Ray3[T], info *isect.Info[T]) (line.Ray3[T], geom.RGBColor[T], bool) {
	return diffuseScatter(m.rng, incident, info, m.albedo, m.fuzz)
}

func (m *Metal[T]) Capabilities() Capabilities { return Diffuse | Reflective }

func (m *Metal[T]) Name() string { return "metal" }

func (m *Metal[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	prefix := ""
	if prefixWithClassName {
		prefix = "metal "
	}
	return fmt.Sprintf("%s%salbedo=%v fuzz=%v", indentation, prefix, m.albedo, m.fuzz)
}
