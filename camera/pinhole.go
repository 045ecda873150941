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

// Package camera implements the pinhole projection used to turn a 2D
// sample (a point on the virtual screen) into a world-space ray.
package camera

import (
	"fmt"

	"github.com/nthery/amethyst/frame"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/interval"
	"github.com/nthery/amethyst/line"
)

// Pinhole is a simple projective camera: an eye point, a viewing frame
// derived from a gaze direction and an up vector, and a virtual screen at
// some distance in front of the eye.
type Pinhole[T geom.Real] struct {
	viewingFrame frame.Frame[T]
	llCorner     geom.Vector2[T]
	urCorner     geom.Vector2[T]
	vscreenSize  geom.Vector2[T]
	distance     T
	width        int
	height       int
	shutter      interval.Interval[T]
}

// NewPinhole builds a pinhole camera looking from eye along gaze, with up
// orienting the screen's vertical axis. The virtual screen is
// screenWidth x screenHeight units, distance in front of the eye. shutter,
// when non-empty, remaps a ray's [0,1] sample time into the shutter's open
// interval for motion blur sampling.
func NewPinhole[T geom.Real](
	eye geom.Point3[T],
	gaze, up geom.Vector3[T],
	screenWidth, screenHeight, distance T,
	width, height int,
	shutter interval.Interval[T],
) *Pinhole[T] {
	ll := geom.Vector2[T]{X: -screenWidth / 2, Y: -screenHeight / 2}
	ur := geom.Vector2[T]{X: screenWidth / 2, Y: screenHeight / 2}
	return &Pinhole[T]{
		viewingFrame: frame.NewFrameWV(eye, gaze, up),
		llCorner:     ll,
		urCorner:     ur,
		vscreenSize:  ur.Sub(ll),
		distance:     distance,
		width:        width,
		height:       height,
		shutter:      shutter,
	}
}

func (p *Pinhole[T]) adjustedTime(t T) T {
	if p.shutter.IsEmpty() {
		return t
	}
	return p.shutter.Begin() + t*(p.shutter.End()-p.shutter.Begin())
}

// GetRaySample builds the ray through a sample point expressed in [0,1]^2
// screen coordinates, (0,0) at the upper-left corner of the image and (1,1)
// at the lower-right.
func (p *Pinhole[T]) GetRaySample(sample geom.Vector2[T], time T) line.Ray3[T] {
	viewPoint := geom.Point3[T]{
		X: p.llCorner.X + (1-sample.X)*p.vscreenSize.X,
		Y: p.llCorner.Y + (1-sample.Y)*p.vscreenSize.Y,
		Z: p.distance,
	}
	dir := p.viewingFrame.InverseTransformPoint(viewPoint).Sub(p.viewingFrame.Origin())
	l := line.NewUnitLine3(p.viewingFrame.Origin(), dir)
	return line.NewRay3(l, p.adjustedTime(time))
}

// GetRayPixel builds the ray through pixel (px,py) in continuous image
// coordinates (0,0 top-left, width-1,height-1 bottom-right), flipping both
// axes so that screen x increases rightward and y increases upward.
func (p *Pinhole[T]) GetRayPixel(px, py, time T) line.Ray3[T] {
	sx := (T(p.width) - px) / T(p.width-1)
	sy := (T(p.height) - py) / T(p.height-1)

	viewPoint := geom.Point3[T]{
		X: p.llCorner.X + p.vscreenSize.X*sx,
		Y: p.llCorner.Y + p.vscreenSize.Y*sy,
		Z: p.distance,
	}
	dir := p.viewingFrame.InverseTransformPoint(viewPoint).Sub(p.viewingFrame.Origin())
	l := line.NewUnitLine3(p.viewingFrame.Origin(), dir)
	return line.NewRay3(l, p.adjustedTime(time))
}

// Width returns the camera's image width in pixels.
func (p *Pinhole[T]) Width() int { return p.width }

// Height returns the camera's image height in pixels.
func (p *Pinhole[T]) Height() int { return p.height }

func (p *Pinhole[T]) Name() string { return "pinhole_camera" }

// InternalMembers renders the camera's fields for debugging/inspection.
func (p *Pinhole[T]) InternalMembers(indentation string, prefixWithClassName bool) string {
	prefix := ""
	if prefixWithClassName {
		prefix = "pinhole_camera "
	}
	return fmt.Sprintf("%s%sframe=%v dist=%v size=%v ll=%v ur=%v",
		indentation, prefix, p.viewingFrame, p.distance, p.vscreenSize, p.llCorner, p.urCorner)
}
