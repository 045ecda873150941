package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/nthery/amethyst/geom"
)

func solidColorImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestImageGetColorSamplesBackingImage(t *testing.T) {
	img := solidColorImage(4, 4, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	tex := NewImage[float64](img, "solid-red.png")

	c := tex.GetColor(geom.Point3[float64]{}, geom.Vector2[float64]{X: 0.5, Y: 0.5}, geom.Vector3[float64]{})
	if !geom.FloatsEqual(c.R, 1, 1e-6) || !geom.FloatsEqual(c.G, 0, 1e-6) || !geom.FloatsEqual(c.B, 0, 1e-6) {
		t.Fatalf("GetColor() = %v, want pure red", c)
	}
}

func TestImageGetColorFlipsVCoordinate(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255}) // top row (image-space y=0)
	img.Set(0, 1, color.RGBA{B: 255, A: 255}) // bottom row (image-space y=1)
	tex := NewImage[float64](img, "two-rows.png")

	// uv.y=1 should map to the image's top row (v runs bottom-up).
	top := tex.GetColor(geom.Point3[float64]{}, geom.Vector2[float64]{X: 0.5, Y: 0.999}, geom.Vector3[float64]{})
	if !geom.FloatsEqual(top.R, 1, 1e-6) {
		t.Fatalf("uv.y near 1 sampled %v, want the image's top (red) row", top)
	}

	bottom := tex.GetColor(geom.Point3[float64]{}, geom.Vector2[float64]{X: 0.5, Y: 0}, geom.Vector3[float64]{})
	if !geom.FloatsEqual(bottom.B, 1, 1e-6) {
		t.Fatalf("uv.y=0 sampled %v, want the image's bottom (blue) row", bottom)
	}
}

func TestImageNeverScatters(t *testing.T) {
	img := solidColorImage(1, 1, color.RGBA{A: 255})
	tex := NewImage[float64](img, "black.png")
	if tex.Capabilities().Has(Reflective) {
		t.Fatalf("an image texture should not advertise reflective scattering")
	}
}
