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
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/isect"
	"github.com/nthery/amethyst/line"
)

// ByShape dispatches to a per-primitive texture keyed on the hit shape's
// identity, falling back to Default when the shape wasn't registered. The
// renderer's entry point takes a single scene-wide texture; this is how a
// scene built from heterogeneous materials (one Lambertian sphere, one
// Metal sphere, ...) still presents as one texture to render.Render.
type ByShape[T geom.Real] struct {
	Default Texture[T]
	byShape map[isect.Shape]Texture[T]
}

// NewByShape builds a dispatcher falling back to def when a hit shape has
// no registered texture.
func NewByShape[T geom.Real](def Texture[T]) *ByShape[T] {
	return &ByShape[T]{Default: def, byShape: make(map[isect.Shape]Texture[T])}
}

// Bind associates s with t; s is compared by interface identity, so it must
// be the same shape value the scene graph's aggregate holds.
func (b *ByShape[T]) Bind(s isect.Shape, t Texture[T]) {
	b.byShape[s] = t
}

func (b *ByShape[T]) resolve(info *isect.Info[T]) Texture[T] {
	if info.HaveShape() {
		if t, ok := b.byShape[info.Shape()]; ok {
			return t
		}
	}
	return b.Default
}

// GetColor always returns Default's color: the Texture interface passes no
// intersection record here, so the hit shape is unknown. Only ScatterRay
// dispatches by shape.
func (b *ByShape[T]) GetColor(location geom.Point3[T], uv geom.Vector2[T], normal geom.Vector3[T]) geom.RGBColor[T] {
	return b.Default.GetColor(location, uv, normal)
}

// ScatterRay resolves the texture bound to info's shape and delegates.
func (b *ByShape[T]) ScatterRay(ray line.Ray3[T], info *isect.Info[T]) (line.Ray3[T], geom.RGBColor[T], bool) {
	return b.resolve(info).ScatterRay(ray, info)
}

func (b *ByShape[T]) Capabilities() Capabilities {
	c := b.Default.Capabilities()
	for _, t := range b.byShape {
		c |= t.Capabilities()
	}
	return c
}

func (b *ByShape[T]) Name() string { return "by_shape_texture" }

func (b *ByShape[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	prefix := ""
	if prefixWithClassName {
		prefix = "by_shape_texture "
	}
	return indentation + prefix + "dispatches by hit shape identity"
}
