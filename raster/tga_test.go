package raster

import (
	"bytes"
	"testing"

	"github.com/nthery/amethyst/geom"
)

func TestWriteTGAHeaderFields(t *testing.T) {
	r := New[geom.RGBColor[float64]](10, 20)
	var buf bytes.Buffer
	if err := WriteTGA(&buf, r); err != nil {
		t.Fatalf("WriteTGA() error = %v", err)
	}
	header := buf.Bytes()[:tgaHeaderSize]
	if header[2] != 2 {
		t.Fatalf("image type byte = %d, want 2", header[2])
	}
	width := int(header[12]) | int(header[13])<<8
	height := int(header[14]) | int(header[15])<<8
	if width != 10 || height != 20 {
		t.Fatalf("header dimensions = %dx%d, want 10x20", width, height)
	}
	if header[16] != 24 {
		t.Fatalf("pixel size byte = %d, want 24", header[16])
	}
	if header[17] != 32 {
		t.Fatalf("attribute byte = %d, want 32 (top-left origin)", header[17])
	}
}

func TestTGARoundTripsThroughReadAndWrite(t *testing.T) {
	r := New[geom.RGBColor[float64]](2, 2)
	r.Set(0, 0, geom.RGBColor[float64]{R: 1})
	r.Set(1, 0, geom.RGBColor[float64]{G: 1})
	r.Set(0, 1, geom.RGBColor[float64]{B: 1})
	r.Set(1, 1, geom.RGBColor[float64]{R: 1, G: 1, B: 1})

	var buf bytes.Buffer
	if err := WriteTGA(&buf, r); err != nil {
		t.Fatalf("WriteTGA() error = %v", err)
	}

	got, err := ReadTGA[float64](&buf)
	if err != nil {
		t.Fatalf("ReadTGA() error = %v", err)
	}
	c, _ := got.At(0, 0)
	if !geom.FloatsEqual(c.R, 1, 1.0/255) {
		t.Fatalf("round-tripped pixel (0,0) = %v, want red", c)
	}
}

func TestReadTGAFlipsBottomOriginImages(t *testing.T) {
	r := New[geom.RGBColor[float64]](1, 2)
	r.Set(0, 0, geom.RGBColor[float64]{R: 1}) // top row on write
	r.Set(0, 1, geom.RGBColor[float64]{B: 1}) // bottom row on write

	var buf bytes.Buffer
	if err := WriteTGA(&buf, r); err != nil {
		t.Fatalf("WriteTGA() error = %v", err)
	}
	raw := buf.Bytes()
	raw[17] = 0 // rewrite the attribute byte to claim bottom-left origin

	got, err := ReadTGA[float64](bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadTGA() error = %v", err)
	}
	// The on-disk first scanline (red) was really the image's bottom row,
	// so after the flip it must land at y=1, and the disk's second
	// scanline (blue) lands at y=0.
	top, _ := got.At(0, 0)
	bottom, _ := got.At(0, 1)
	if !geom.FloatsEqual(top.B, 1, 1.0/255) {
		t.Fatalf("flipped top row = %v, want blue", top)
	}
	if !geom.FloatsEqual(bottom.R, 1, 1.0/255) {
		t.Fatalf("flipped bottom row = %v, want red", bottom)
	}
}
