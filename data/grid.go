/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"image"
)

// ColorGrid is a grid of Color values in row-major order. Shadow
// images and the results of stacking them are represented as grids.
type ColorGrid struct {
	Width  int
	Height int
	Pix    []Color
}

// NewColorGrid returns a black grid of the given dimensions.
func NewColorGrid(width, height int) *ColorGrid {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &ColorGrid{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

// NewConstantColorGrid returns a grid of the given dimensions with
// every element set to c.
func NewConstantColorGrid(width, height int, c Color) *ColorGrid {
	g := NewColorGrid(width, height)
	for i := range g.Pix {
		g.Pix[i] = c
	}

	return g
}

// NewColorGridFromImage maps every pixel of img onto its Color.
func NewColorGridFromImage(img image.Image) *ColorGrid {
	bounds := img.Bounds()
	g := NewColorGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Pix[y*g.Width+x] = ColorOf(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return g
}

// At returns the colour at (x, y).
func (g *ColorGrid) At(x, y int) Color {
	return g.Pix[y*g.Width+x]
}

// Set sets the colour at (x, y).
func (g *ColorGrid) Set(x, y int, c Color) {
	g.Pix[y*g.Width+x] = c
}

// Row returns the colours of row y. The returned slice aliases the
// grid's storage.
func (g *ColorGrid) Row(y int) []Color {
	return g.Pix[y*g.Width : (y+1)*g.Width]
}

// DimsMatch returns a bool indicating whether grids
// g and other have the same dimensions.
func (g *ColorGrid) DimsMatch(other *ColorGrid) bool {
	return g.Width == other.Width && g.Height == other.Height
}

// Copy returns a deep copy of g.
func (g *ColorGrid) Copy() *ColorGrid {
	res := NewColorGrid(g.Width, g.Height)
	copy(res.Pix, g.Pix)

	return res
}

// Image renders g as an RGBA image.
func (g *ColorGrid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i, c := range g.Pix {
		r, gr, b := c.Channels()
		off := (i/g.Width)*img.Stride + (i%g.Width)*4
		img.Pix[off] = r
		img.Pix[off+1] = gr
		img.Pix[off+2] = b
		img.Pix[off+3] = 255
	}

	return img
}
