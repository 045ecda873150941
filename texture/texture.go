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

// Package texture couples a surface hit to a shaded color and, optionally,
// an outgoing scattered ray: the material side of the shading contract that
// the renderer drives once per bounce.
package texture

import (
	"math/rand/v2"

	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

// Capabilities is a bitset describing the kinds of scattering a texture can
// produce, used by the renderer to decide whether recursing is worthwhile
// and by aggregated/composite textures folding their children's behavior.
type Capabilities uint32

const (
	Diffuse Capabilities = 1 << iota
	Reflective
	Emissive
	Refractive
)

// Has reports whether every bit set in want is also set in c.
func (c Capabilities) Has(want Capabilities) bool { return c&want == want }

// Texture is the material contract: a color at a shading point, and an
// optional scattered ray for recursive path tracing.
type Texture[T geom.Real] interface {
	// GetColor returns the local color contribution at the given
	// location, UV coordinate and surface normal.
	GetColor(location geom.Point3[T], uv geom.Vector2[T], normal geom.Vector3[T]) geom.RGBColor[T]

	// ScatterRay attempts to produce the next ray to trace, and the
	// attenuation to apply to whatever color it returns. Returning false
	// terminates recursion along this path.
	ScatterRay(incident line.Ray3[T], info *isect.Info[T]) (scattered line.Ray3[T], attenuation geom.RGBColor[T], ok bool)

	Capabilities() Capabilities

	Name() string
	InternalMembers(indentation string, prefixWithClassName bool) string
}

// perfectReflection mirrors the incident ray's direction off the hit
// normal, producing a candidate scattered ray with the incident ray's
// limits and time carried over. Lambertian and metal only keep this ray's
// limits/time, replacing its direction with a perturbed diffuse target;
// a mirror texture would use the reflected direction unchanged.
func perfectReflection[T geom.Real](incident line.Ray3[T], info *isect.Info[T]) (line.Ray3[T], bool) {
	if !info.HaveFirstPoint() || !info.HaveNormal() {
		return line.Ray3[T]{}, false
	}
	p := info.FirstPoint()
	n := info.Normal()
	d := incident.Line.Direction().Reflect(n)
	l := line.NewUnitLine3(p, d, incident.Line.Limits())
	return line.NewRay3(l, incident.Time), true
}

// diffuseTarget computes the lambertian-style perturbed target point a
// scattered ray aims at: the hit point nudged along the normal and jittered
// by a (possibly scaled) point sampled from the unit ball.
func diffuseTarget[T geom.Real](info *isect.Info[T], jitter geom.Vector3[T]) geom.Point3[T] {
	p := info.FirstPoint()
	n := info.Normal()
	return p.Add(n).Add(jitter)
}

// sphereJitter draws one sample from the unit ball using rng, scaled by
// factor (1 for lambertian, the fuzz factor for metal).
func sphereJitter[T geom.Real](rng *rand.Rand, factor T) geom.Vector3[T] {
	return geom.RandomUnitSphereSample[T](rng).Scale(factor)
}

// diffuseScatter is the shared lambertian/metal scatter_ray body: it
// differs only in the scale applied to the unit-ball jitter (1 for
// lambertian, fuzz for metal).
func diffuseScatter[T geom.Real](
	rng *rand.Rand,
	incident line.Ray3[T],
	info *isect.Info[T],
	albedo geom.RGBColor[T],
	jitterScale T,
) (line.Ray3[T], geom.RGBColor[T], bool) {
	reflected, ok := perfectReflection(incident, info)
	if !ok {
		return line.Ray3[T]{}, geom.RGBColor[T]{}, false
	}
	p := info.FirstPoint()
	target := diffuseTarget(info, sphereJitter[T](rng, jitterScale))
	dir := target.Sub(p)
	l := line.NewUnitLine3(p, dir, reflected.Line.Limits())
	return line.NewRay3(l, reflected.Time), albedo, true
}
