package raster

import (
	"bytes"
	"testing"

	"github.com/nthery/amethyst/geom"
)

func TestPNGRoundTripsThroughReadAndWrite(t *testing.T) {
	r := New[geom.RGBColor[float64]](3, 2)
	r.Set(0, 0, geom.RGBColor[float64]{R: 1, G: 0.5, B: 0.25})
	r.Set(2, 1, geom.RGBColor[float64]{R: 0, G: 1, B: 1})

	var buf bytes.Buffer
	if err := WritePNG(&buf, r); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	got, err := ReadPNG[float64](&buf)
	if err != nil {
		t.Fatalf("ReadPNG() error = %v", err)
	}
	if got.Width() != 3 || got.Height() != 2 {
		t.Fatalf("ReadPNG() size = %dx%d, want 3x2", got.Width(), got.Height())
	}
	c, _ := got.At(0, 0)
	if !geom.FloatsEqual(c.R, 1, 1.0/255) || !geom.FloatsEqual(c.G, 0.5, 1.0/255) || !geom.FloatsEqual(c.B, 0.25, 1.0/255) {
		t.Fatalf("round-tripped pixel (0,0) = %v, want approximately (1,0.5,0.25)", c)
	}
}

func TestReadPNGRejectsGarbageInput(t *testing.T) {
	_, err := ReadPNG[float64](bytes.NewReader([]byte("not a png")))
	if err == nil {
		t.Fatalf("ReadPNG() accepted garbage input, want an error")
	}
	if rerr, ok := err.(*Error); !ok || rerr.Kind != ParseError {
		t.Fatalf("ReadPNG() error = %v, want ParseError", err)
	}
}
