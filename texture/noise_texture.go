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
)

// Noise is a procedural solid texture driven directly by a Perlin noise
// field: the location is scaled, the raw noise value remapped from
// [-1,1] to [0,1], and the result looked up in a color gradient.
type Noise[T geom.Real] struct {
	Solid[T]
	scale  T
	noise  *perlinNoise[T]
	colors Gradient[T]
}

// NewNoise builds a noise texture with the default red-to-blue gradient.
func NewNoise[T geom.Real](scale T, rng *rand.Rand) *Noise[T] {
	return NewNoiseGradient(NewGradient(
		geom.RGBColor[T]{R: 0.8, G: 0, B: 0},
		geom.RGBColor[T]{R: 0, G: 0, B: 0.8},
	), scale, rng)
}

// NewNoiseGradient builds a noise texture that interpolates through an
// arbitrary color gradient.
func NewNoiseGradient[T geom.Real](colors Gradient[T], scale T, rng *rand.Rand) *Noise[T] {
	if rng == nil {
		rng = rand.New(rand.NewPCG(5, 6))
	}
	return &Noise[T]{scale: scale, noise: newPerlinNoise[T](rng, 256), colors: colors}
}

func (n *Noise[T]) GetColor(location geom.Point3[T], uv geom.Vector2[T], normal geom.Vector3[T]) geom.RGBColor[T] {
	v := geom.Vector3[T]{X: location.X * n.scale, Y: location.Y * n.scale, Z: location.Z * n.scale}
	noisy := (n.noise.Value(v) + 1) / 2
	return n.colors.At(noisy)
}

func (n *Noise[T]) Name() string { return "noise_texture" }

func (n *Noise[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	prefix := ""
	if prefixWithClassName {
		prefix = "noise_texture "
	}
	return fmt.Sprintf("%s%sscale=%v", indentation, prefix, n.scale)
}
