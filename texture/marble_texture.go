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
	"math"
	"math/rand/v2"

	"github.com/nthery/amethyst/geom"
)

// Marble is a procedural solid texture that perturbs a sine wave along X
// by a turbulent noise field, producing veined bands; line_width controls
// the frequency of the veins and octaves the turbulence's fractal depth.
type Marble[T geom.Real] struct {
	Solid[T]
	freq    T
	scale   T
	octaves int
	noise   *perlinNoise[T]
	colors  Gradient[T]
}

// NewMarble builds a marble texture with the default dark-veined gradient.
func NewMarble[T geom.Real](lineWidth, scale T, octaves int, rng *rand.Rand) *Marble[T] {
	return NewMarbleGradient(NewGradient(
		geom.RGBColor[T]{R: 0.06, G: 0.04, B: 0.02},
		geom.RGBColor[T]{R: 0.4, G: 0.2, B: 0.1},
		geom.RGBColor[T]{R: 0.8, G: 0.8, B: 0.8},
	), lineWidth, scale, octaves, rng)
}

// NewMarbleGradient builds a marble texture with an arbitrary color
// gradient.
func NewMarbleGradient[T geom.Real](colors Gradient[T], lineWidth, scale T, octaves int, rng *rand.Rand) *Marble[T] {
	if rng == nil {
		rng = rand.New(rand.NewPCG(7, 8))
	}
	return &Marble[T]{
		freq:    T(math.Pi) / lineWidth,
		scale:   scale,
		octaves: octaves,
		noise:   newPerlinNoise[T](rng, 16),
		colors:  colors,
	}
}

func (m *Marble[T]) GetColor(location geom.Point3[T], uv geom.Vector2[T], normal geom.Vector3[T]) geom.RGBColor[T] {
	v := geom.Vector3[T]{X: location.X * m.freq, Y: location.Y * m.freq, Z: location.Z * m.freq}
	turb := m.scale * m.noise.Turbulence(v, m.octaves, 2)
	noisy := (T(math.Sin(float64(v.X+turb))) + 1) / 2
	return m.colors.At(noisy)
}

func (m *Marble[T]) Name() string { return "marble_texture" }

func (m *Marble[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	prefix := ""
	if prefixWithClassName {
		prefix = "marble_texture "
	}
	return fmt.Sprintf("%s%sline_width=%v scale=%v octaves=%d", indentation, prefix, math.Pi/float64(m.freq), m.scale, m.octaves)
}
