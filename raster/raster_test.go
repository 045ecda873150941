package raster

import "testing"

func TestSetAndAtRoundTrip(t *testing.T) {
	r := New[int](3, 2)
	if err := r.Set(1, 1, 42); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := r.At(1, 1)
	if err != nil {
		t.Fatalf("At() error = %v", err)
	}
	if got != 42 {
		t.Fatalf("At(1,1) = %d, want 42", got)
	}
}

func TestAtOutOfRangeReturnsError(t *testing.T) {
	r := New[int](2, 2)
	if _, err := r.At(2, 0); err == nil {
		t.Fatalf("At(2,0) on a 2x2 raster succeeded, want an out-of-range error")
	} else if rerr, ok := err.(*Error); !ok || rerr.Kind != OutOfRange {
		t.Fatalf("At(2,0) error = %v, want OutOfRange", err)
	}
}

func TestSetPixelSilentlyDropsOutOfRangeWrites(t *testing.T) {
	r := New[int](2, 2)
	r.SetPixel(5, 5, 99) // must not panic
	if v, _ := r.At(0, 0); v != 0 {
		t.Fatalf("SetPixel out of range corrupted in-range data: At(0,0) = %d", v)
	}
}

func TestScanlineReadsAndWritesOneRow(t *testing.T) {
	r := New[int](3, 2)
	line, err := r.Scanline(1)
	if err != nil {
		t.Fatalf("Scanline() error = %v", err)
	}
	if err := line.Set(0, 7); err != nil {
		t.Fatalf("Scanline.Set() error = %v", err)
	}
	if v, _ := r.At(0, 1); v != 7 {
		t.Fatalf("value written through scanline not visible via At(): got %d", v)
	}
}

func TestAssignScanlineCopiesRow(t *testing.T) {
	src := New[int](3, 1)
	src.Set(0, 0, 1)
	src.Set(1, 0, 2)
	src.Set(2, 0, 3)

	dst := New[int](3, 2)
	if err := AssignScanline(dst, 1, src, 0); err != nil {
		t.Fatalf("AssignScanline() error = %v", err)
	}
	for x, want := range []int{1, 2, 3} {
		got, _ := dst.At(x, 1)
		if got != want {
			t.Fatalf("dst.At(%d,1) = %d, want %d", x, got, want)
		}
	}
}

func TestAssignScanlineRejectsWidthMismatch(t *testing.T) {
	src := New[int](3, 1)
	dst := New[int](4, 1)
	err := AssignScanline(dst, 0, src, 0)
	if err == nil {
		t.Fatalf("AssignScanline with mismatched widths succeeded, want an error")
	}
	if rerr, ok := err.(*Error); !ok || rerr.Kind != SizeMismatch {
		t.Fatalf("AssignScanline() error = %v, want SizeMismatch", err)
	}
}

func TestSubRasterExtractsRegion(t *testing.T) {
	src := New[int](4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, y*4+x)
		}
	}
	sub, err := SubRaster(src, 1, 1, 2, 2)
	if err != nil {
		t.Fatalf("SubRaster() error = %v", err)
	}
	if sub.Width() != 2 || sub.Height() != 2 {
		t.Fatalf("SubRaster size = %dx%d, want 2x2", sub.Width(), sub.Height())
	}
	got, _ := sub.At(0, 0)
	if got != 5 {
		t.Fatalf("SubRaster.At(0,0) = %d, want 5 (source (1,1))", got)
	}
}
