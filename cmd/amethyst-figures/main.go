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

/*
amethyst-figures renders the worked examples that exercise the ray tracing
core end to end: the rtiow_01..rtiow_06 progression from Peter Shirley's
"Ray Tracing in One Weekend", reimplemented on top of this module's camera,
shape, texture and render packages, plus a "scene" command that renders an
arbitrary YAML-described scene.
*/
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "amethyst-figures",
		Short: "Render the Amethyst worked examples",
	}
	root.AddCommand(newRTIOWCommands()...)
	root.AddCommand(newFigure31Command())
	root.AddCommand(newSceneCommand())

	if err := root.Execute(); err != nil {
		log.Fatalf("amethyst-figures: %v", err)
	}
}
