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

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nthery/amethyst/camera"
	"github.com/nthery/amethyst/capability"
	"github.com/nthery/amethyst/geom"
	"github.com/nthery/amethyst/interval"
	"github.com/nthery/amethyst/line"
	"github.com/nthery/amethyst/raster"
	"github.com/nthery/amethyst/render"
	"github.com/nthery/amethyst/sampler"
	"github.com/nthery/amethyst/shape"
	"github.com/nthery/amethyst/texture"
)

// colorConfig is a red/green/blue triplet in [0,1], the YAML counterpart of
// the legacy JSON-driven raytracer.Color.
type colorConfig struct {
	R, G, B float64
}

func (c colorConfig) Validate() error {
	for _, ch := range []float64{c.R, c.G, c.B} {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("color channel out of range: %#v", c)
		}
	}
	return nil
}

func (c colorConfig) rgb() geom.RGBColor[float64] { return geom.RGBColor[float64]{R: c.R, G: c.G, B: c.B} }

// vectorConfig is a YAML-friendly Vector3.
type vectorConfig struct {
	X, Y, Z float64
}

func (v vectorConfig) vec() geom.Vector3[float64]  { return geom.Vector3[float64]{X: v.X, Y: v.Y, Z: v.Z} }
func (v vectorConfig) point() geom.Point3[float64] { return geom.Point3[float64]{X: v.X, Y: v.Y, Z: v.Z} }

// materialConfig names one of the scene's textures and its parameters.
// Kind selects lambertian (matte, diffuse only) or metal (specular, with
// fuzz in [0,1]); an empty kind falls back to the scene's default material.
type materialConfig struct {
	Kind  string      `yaml:"kind"`
	Color colorConfig `yaml:"color"`
	Fuzz  float64     `yaml:"fuzz"`
}

func (m materialConfig) Validate() error {
	switch m.Kind {
	case "", "lambertian", "metal":
	default:
		return fmt.Errorf("unknown material kind %q", m.Kind)
	}
	if m.Fuzz < 0 || m.Fuzz > 1 {
		return fmt.Errorf("material fuzz out of range: %v", m.Fuzz)
	}
	return m.Color.Validate()
}

// build constructs a fresh *rand.Rand for this material's own texture
// instance: render.Render dedicates one worker goroutine per PRNG, so
// distinct textures built from the same seed stream must never share a
// generator.
func (m materialConfig) build(seed uint64) texture.Texture[float64] {
	rng := rand.New(rand.NewPCG(seed, seed^0xF00D))
	switch m.Kind {
	case "metal":
		return texture.NewMetal(m.Color.rgb(), m.Fuzz, rng)
	default:
		return texture.NewLambertian(m.Color.rgb(), rng)
	}
}

// sphereConfig is one scene object, with an optional per-sphere material
// overriding the scene's default (mirroring rtiow_06_metal.cpp's mix of a
// scene-wide texture and per-shape shared_ptr<texture> overrides).
type sphereConfig struct {
	Center   vectorConfig    `yaml:"center"`
	Radius   float64         `yaml:"radius"`
	Material *materialConfig `yaml:"material"`
}

func (s sphereConfig) Validate() error {
	if s.Radius <= 0 {
		return fmt.Errorf("sphere radius must be positive, got %v", s.Radius)
	}
	if s.Material != nil {
		if err := s.Material.Validate(); err != nil {
			return fmt.Errorf("invalid sphere material: %w", err)
		}
	}
	return nil
}

// cameraConfig describes a pinhole camera by eye/gaze/up rather than the
// rtiow progression's hardcoded lower-left-corner/horizontal/vertical basis.
type cameraConfig struct {
	Eye          vectorConfig `yaml:"eye"`
	Gaze         vectorConfig `yaml:"gaze"`
	Up           vectorConfig `yaml:"up"`
	ScreenWidth  float64      `yaml:"screen_width"`
	ScreenHeight float64      `yaml:"screen_height"`
	Distance     float64      `yaml:"distance"`
}

func (c cameraConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("camera screen size must be positive, got %vx%v", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Distance <= 0 {
		return fmt.Errorf("camera distance must be positive, got %v", c.Distance)
	}
	gaze, up := c.Gaze.vec(), c.Up.vec()
	if gaze == (geom.Vector3[float64]{}) {
		return fmt.Errorf("camera gaze must be non-zero")
	}
	if up == (geom.Vector3[float64]{}) {
		return fmt.Errorf("camera up must be non-zero")
	}
	if up.Unit().Cross(gaze.Unit()) == (geom.Vector3[float64]{}) {
		return fmt.Errorf("camera up must not be parallel to gaze")
	}
	return nil
}

// sceneConfig is the top-level YAML document rendered by the "scene"
// subcommand.
type sceneConfig struct {
	Width         int            `yaml:"width"`
	Height        int            `yaml:"height"`
	Samples       int            `yaml:"samples"`
	MaxDepth      int            `yaml:"max_depth"`
	Seed          uint64         `yaml:"seed"`
	Camera        cameraConfig   `yaml:"camera"`
	Background    [2]colorConfig `yaml:"background"`
	Light         colorConfig    `yaml:"light"`
	Material      materialConfig `yaml:"material"`
	Spheres       []sphereConfig `yaml:"spheres"`
}

func (s *sceneConfig) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene width/height must be positive, got %vx%v", s.Width, s.Height)
	}
	if s.Samples <= 0 {
		return fmt.Errorf("scene samples must be positive, got %v", s.Samples)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("scene max_depth cannot be negative, got %v", s.MaxDepth)
	}
	if err := s.Camera.Validate(); err != nil {
		return fmt.Errorf("invalid scene camera: %w", err)
	}
	for _, c := range s.Background {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid scene background: %w", err)
		}
	}
	if err := s.Light.Validate(); err != nil {
		return fmt.Errorf("invalid scene light: %w", err)
	}
	if err := s.Material.Validate(); err != nil {
		return fmt.Errorf("invalid scene material: %w", err)
	}
	if len(s.Spheres) == 0 {
		return fmt.Errorf("scene must have at least one sphere")
	}
	for i, sp := range s.Spheres {
		if err := sp.Validate(); err != nil {
			return fmt.Errorf("invalid scene sphere %d: %w", i, err)
		}
	}
	return nil
}

func loadSceneConfig(path string) (*sceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	cfg := &sceneConfig{
		Width:    400,
		Height:   200,
		Samples:  1,
		MaxDepth: 10,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse scene file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return cfg, nil
}

func (s *sceneConfig) backgroundFunc() render.BackgroundFunc[float64] {
	top, bottom := s.Background[0].rgb(), s.Background[1].rgb()
	return func(x, y int, l line.UnitLine3[float64]) geom.RGBColor[float64] {
		t := 0.5 * (l.Direction().Unit().Y + 1)
		return bottom.Lerp(top, t)
	}
}

// render builds the camera, scene graph and texture dispatch described by
// the config and renders it into a fresh raster.
func (s *sceneConfig) render(ctx context.Context, workers int) (*raster.Raster[geom.RGBColor[float64]], error) {
	cam := camera.NewPinhole[float64](
		s.Camera.Eye.point(),
		s.Camera.Gaze.vec(), s.Camera.Up.vec(),
		s.Camera.ScreenWidth, s.Camera.ScreenHeight, s.Camera.Distance,
		s.Width, s.Height,
		interval.Empty[float64](),
	)

	scene := shape.NewAggregate[float64]()
	dispatch := texture.NewByShape[float64](s.Material.build(s.Seed))
	for i, sp := range s.Spheres {
		sphere := shape.NewSphere(sp.Center.point(), sp.Radius)
		scene.Add(sphere)
		if sp.Material != nil {
			dispatch.Bind(sphere, sp.Material.build(s.Seed+1+uint64(i)))
		}
	}

	light := s.Light.rgb()
	p := render.Params[float64]{
		Scene:        scene,
		SceneTexture: dispatch,
		Requirements: capability.Requirements{ForceFirstOnly: true, ForceNormal: true, ForceUV: true},
		Brightness: func(geom.Point3[float64], geom.Vector3[float64]) geom.RGBColor[float64] {
			return light
		},
		Background: s.backgroundFunc(),
		MaxDepth:   s.MaxDepth,
	}

	fb := raster.New[geom.RGBColor[float64]](s.Width, s.Height)
	newGen := func() sampler.Generator2D[float64] { return sampler.NewRegular2D[float64]() }
	if err := render.Render(ctx, cam, p, newGen, s.Samples, fb, workers); err != nil {
		return nil, err
	}
	return fb, nil
}

func newSceneCommand() *cobra.Command {
	var out string
	var workers int
	cmd := &cobra.Command{
		Use:   "scene <config.yaml>",
		Short: "Render an arbitrary YAML-described scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSceneConfig(args[0])
			if err != nil {
				return err
			}
			fb, err := cfg.render(cmd.Context(), workers)
			if err != nil {
				return fmt.Errorf("render scene: %w", err)
			}
			return saveRaster(out, fb)
		},
	}
	cmd.Flags().StringVar(&out, "output", "scene.png", "output file path (.png, .ppm or .tga)")
	cmd.Flags().IntVar(&workers, "workers", 1, "number of rendering goroutines")
	return cmd
}
