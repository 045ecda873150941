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

// Lambertian is an ideal matte diffuse material: it scatters toward a point
// jittered by a full unit-ball sample around the hit normal, attenuating by
// a fixed albedo.
type Lambertian[T geom.Real] struct {
	albedo geom.RGBColor[T]
	rng    *rand.Rand
}

// NewLambertian builds a lambertian material with the given albedo. rng, if
// nil, defaults to a freshly seeded generator; callers rendering
// concurrently must give each worker its own Lambertian instance (and
// hence its own rng) rather than share one across goroutines.
func NewLambertian[T geom.Real](albedo geom.RGBColor[T], rng *rand.Rand) *Lambertian[T] {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &Lambertian[T]{albedo: albedo, rng: rng}
}

func (l *Lambertian[T]) GetColor(location geom.Point3[T], uv geom.Vector2[T], normal geom.Vector3[T]) geom.RGBColor[T] {
	return l.albedo
}

func (l *Lambertian[T]) ScatterRay(incident line.Ray3[T], info *isect.Info[T]) (line.Ray3[T], geom.RGBColor[T], bool) {
	return diffuseScatter(l.rng, incident, info, l.albedo, 1)
}

func (l *Lambertian[T]) Capabilities() Capabilities { return Diffuse | Reflective }

func (l *Lambertian[T]) Name() string { return "lambertian" }

func (l *Lambertian[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	prefix := ""
	if prefixWithClassName {
		prefix = "lambertian "
	}
	return fmt.Sprintf("%s%salbedo=%v", indentation, prefix, l.albedo)
}
