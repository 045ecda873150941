package raster

import (
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/render"
)

// Compile-time check that Raster satisfies render's narrow output sink
// without raster needing to import render for anything else.
var _ render.Framebuffer[float64] = (*Raster[geom.RGBColor[float64]])(nil)
